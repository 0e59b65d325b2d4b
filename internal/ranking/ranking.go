package ranking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/model"
)

// Entry is one ranked species at its best IV spread under the cap,
// with its first listed fast and charge moves.
type Entry struct {
	Rank       int       `json:"rank"`
	SpeciesID  int       `json:"species_id"`
	Species    string    `json:"species"`
	CP         int       `json:"cp"`
	SCP        int       `json:"scp"`
	Level      float64   `json:"level"`
	IVs        model.IVs `json:"ivs"`
	FastMove   string    `json:"fast_move"`
	ChargeMove string    `json:"charge_move"`
	Power      float64   `json:"power,omitempty"` // damage per tick, power ranking only
}

// ErrInvalidLimits is returned for a cap no creature can be built under.
var ErrInvalidLimits = errors.New("invalid ranking limits")

// Limits are the league caps a ranking is computed for.
type Limits struct {
	CP    int
	Level float64
}

// Validate requires a positive CP cap and a level cap on the half-level grid.
func (l Limits) Validate() error {
	if l.CP <= 0 || !data.IsValidLevel(l.Level) {
		return fmt.Errorf("%w: cp must be > 0 and level a half step in [%g, %g], got cp=%d level=%g",
			ErrInvalidLimits, data.MinLevel, data.MaxLevel, l.CP, l.Level)
	}
	return nil
}

// build returns the species at its max-SCP spread, or nil if it cannot fit the cap.
func build(sp *data.Species, lim Limits) (*model.Pokemon, Result, error) {
	res, ok := MaxSCPIVs(lim.CP, lim.Level, sp)
	if !ok {
		return nil, Result{}, nil
	}
	p, err := model.NewPokemon(sp, res.Level, res.IVs, sp.DefaultFastMove(), sp.DefaultChargeMove())
	if err != nil {
		return nil, Result{}, fmt.Errorf("building %s: %w", sp.Name, err)
	}
	return p, res, nil
}

func entryOf(p *model.Pokemon, res Result) Entry {
	return Entry{
		SpeciesID:  p.Species.ID,
		Species:    p.Species.Name,
		CP:         p.CP(),
		SCP:        res.SCP,
		Level:      res.Level,
		IVs:        res.IVs,
		FastMove:   p.FastMove.Name,
		ChargeMove: p.ChargeMoves[0].Name,
	}
}

// SCPRanking ranks species by their best SCP under the cap, using up to workers goroutines.
// Species that exceed the cap even at level 1 are left out.
func SCPRanking(ctx context.Context, species []*data.Species, lim Limits, workers int) ([]Entry, error) {
	if err := lim.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	slots := make([]*Entry, len(species))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, sp := range species {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, res, err := build(sp, lim)
			if err != nil || p == nil {
				return err
			}
			e := entryOf(p, res)
			slots[i] = &e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scp ranking: %w", err)
	}

	entries := collect(slots)
	slices.SortStableFunc(entries, func(a, b Entry) int { return b.SCP - a.SCP })
	number(entries)

	slog.Info("scp ranking computed",
		"species", len(species),
		"ranked", len(entries),
		"cp", lim.CP,
		"level", lim.Level,
		"elapsed", time.Since(start))
	return entries, nil
}

// PowerRanking ranks species by damage per tick against opponent, each at its
// max-SCP spread. seed makes the estimate reproducible.
func PowerRanking(ctx context.Context, species []*data.Species, opponent *model.Pokemon, lim Limits, workers int, seed uint64) ([]Entry, error) {
	if err := lim.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	slots := make([]*Entry, len(species))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, sp := range species {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, res, err := build(sp, lim)
			if err != nil || p == nil {
				return err
			}
			power, err := battle.PowerPerTurn(p, opponent, seed)
			if err != nil {
				return fmt.Errorf("power of %s: %w", sp.Name, err)
			}
			e := entryOf(p, res)
			e.Power = power
			slots[i] = &e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("power ranking: %w", err)
	}

	entries := collect(slots)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Power > b.Power:
			return -1
		case a.Power < b.Power:
			return 1
		default:
			return b.SCP - a.SCP
		}
	})
	number(entries)

	slog.Info("power ranking computed",
		"species", len(species),
		"ranked", len(entries),
		"opponent", opponent.Name(),
		"cp", lim.CP,
		"elapsed", time.Since(start))
	return entries, nil
}

func collect(slots []*Entry) []Entry {
	entries := make([]Entry, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

func number(entries []Entry) {
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

// Top truncates a ranking to its first n entries; n <= 0 keeps everything.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
