package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/roster"
)

// BattleRecord is the stored summary of a finished battle.
// The full history is not stored; Seed, Agents and Teams replay it and
// Fingerprint checks the replay.
type BattleRecord struct {
	ID            uuid.UUID      `json:"id"`
	Players       [2]string      `json:"players"`
	Agents        [2]string      `json:"agents"`
	Seed          uint64         `json:"seed"`
	Phase         string         `json:"phase"`
	Outcome       int            `json:"outcome"`
	Turns         int            `json:"turns"`
	ElapsedMillis int            `json:"elapsed_ms"`
	Ticks         int            `json:"ticks"`
	Fingerprint   string         `json:"fingerprint"`
	Teams         [2]roster.Team `json:"teams"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RecordOf summarizes a battle that has been played.
func RecordOf(b *battle.Battle, teams [2]roster.Team, agents [2]string, seed uint64) (BattleRecord, error) {
	fp, err := b.FingerprintHex()
	if err != nil {
		return BattleRecord{}, err
	}
	s := b.State()
	return BattleRecord{
		Players:       [2]string{s.Players[0].Name, s.Players[1].Name},
		Agents:        agents,
		Seed:          seed,
		Phase:         s.Phase.Kind.String(),
		Outcome:       int(s.Phase.Outcome),
		Turns:         s.Turn,
		ElapsedMillis: s.ElapsedMillis,
		Ticks:         len(b.Actions),
		Fingerprint:   fp,
		Teams:         teams,
	}, nil
}

// BattleRepository stores battle records in PostgreSQL.
type BattleRepository struct {
	pool *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(pool *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{pool: pool}
}

// Save inserts rec, assigning an ID when it has none. CreatedAt is set by the database.
func (r *BattleRepository) Save(ctx context.Context, rec *BattleRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	teams, err := json.Marshal(rec.Teams)
	if err != nil {
		return fmt.Errorf("encoding teams of battle %s: %w", rec.ID, err)
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO battles (id, player0, player1, agent0, agent1, seed, phase, outcome,
		                      turns, elapsed_ms, ticks, fingerprint, teams)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING created_at`,
		rec.ID, rec.Players[0], rec.Players[1], rec.Agents[0], rec.Agents[1], int64(rec.Seed),
		rec.Phase, rec.Outcome, rec.Turns, rec.ElapsedMillis, rec.Ticks, rec.Fingerprint, teams,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting battle %s: %w", rec.ID, err)
	}

	slog.Debug("battle saved", "id", rec.ID, "phase", rec.Phase, "turns", rec.Turns)
	return nil
}

const battleColumns = `id, player0, player1, agent0, agent1, seed, phase, outcome,
	turns, elapsed_ms, ticks, fingerprint, teams, created_at`

// Get returns the record with id or ErrNotFound.
func (r *BattleRepository) Get(ctx context.Context, id uuid.UUID) (*BattleRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+battleColumns+` FROM battles WHERE id = $1`, id)
	rec, err := scanBattle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("battle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying battle %s: %w", id, err)
	}
	return rec, nil
}

// ListRecent returns up to limit records, newest first.
func (r *BattleRepository) ListRecent(ctx context.Context, limit int) ([]BattleRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+battleColumns+` FROM battles ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query battles: %w", err)
	}
	defer rows.Close()

	var result []BattleRecord
	for rows.Next() {
		rec, err := scanBattle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan battles: %w", err)
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func scanBattle(row pgx.Row) (*BattleRecord, error) {
	var (
		rec   BattleRecord
		seed  int64
		teams []byte
	)
	err := row.Scan(&rec.ID, &rec.Players[0], &rec.Players[1], &rec.Agents[0], &rec.Agents[1],
		&seed, &rec.Phase, &rec.Outcome, &rec.Turns, &rec.ElapsedMillis, &rec.Ticks,
		&rec.Fingerprint, &teams, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.Seed = uint64(seed)
	if err := json.Unmarshal(teams, &rec.Teams); err != nil {
		return nil, fmt.Errorf("decoding teams of battle %s: %w", rec.ID, err)
	}
	return &rec, nil
}
