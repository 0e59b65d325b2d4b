package battle

import (
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
)

type history struct {
	States  []*State    `json:"states"`
	Actions [][2]Action `json:"actions"`
}

// Fingerprint hashes the full state and action history.
// Two replays with the same seed and actions produce the same fingerprint.
func (b *Battle) Fingerprint() ([32]byte, error) {
	raw, err := json.Marshal(history{States: b.States, Actions: b.Actions})
	if err != nil {
		return [32]byte{}, fmt.Errorf("encoding battle history: %w", err)
	}
	return blake2b.Sum256(raw), nil
}

// FingerprintHex is Fingerprint encoded as lowercase hex.
func (b *Battle) FingerprintHex() (string, error) {
	sum, err := b.Fingerprint()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
