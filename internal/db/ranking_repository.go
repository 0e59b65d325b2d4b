package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/pvpsim/internal/model"
	"github.com/udisondev/pvpsim/internal/ranking"
)

// RankingRepository stores computed SCP rankings per league cap.
type RankingRepository struct {
	pool *pgxpool.Pool
}

// NewRankingRepository creates a new RankingRepository.
func NewRankingRepository(pool *pgxpool.Pool) *RankingRepository {
	return &RankingRepository{pool: pool}
}

// Replace stores entries as the ranking for lim, dropping the previous one.
func (r *RankingRepository) Replace(ctx context.Context, lim ranking.Limits, entries []ranking.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "cp", lim.CP, "error", err)
		}
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM rankings WHERE cp_limit = $1 AND level_limit = $2`, lim.CP, lim.Level); err != nil {
		return fmt.Errorf("deleting ranking cp %d: %w", lim.CP, err)
	}

	if len(entries) > 0 {
		rows := make([][]any, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []any{
				lim.CP, lim.Level, e.Rank, e.SpeciesID, e.Species, e.CP, e.SCP, e.Level,
				int16(e.IVs.Attack), int16(e.IVs.Defense), int16(e.IVs.Stamina),
				e.FastMove, e.ChargeMove,
			})
		}

		// Bulk insert using COPY
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"rankings"},
			[]string{"cp_limit", "level_limit", "rank", "species_id", "species", "cp", "scp", "level",
				"attack_iv", "defense_iv", "stamina_iv", "fast_move", "charge_move"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting ranking cp %d: %w", lim.CP, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Debug("ranking stored", "cp", lim.CP, "level", lim.Level, "entries", len(entries))
	return nil
}

// Load returns the stored ranking for lim ordered by rank, or ErrNotFound.
func (r *RankingRepository) Load(ctx context.Context, lim ranking.Limits) ([]ranking.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rank, species_id, species, cp, scp, level, attack_iv, defense_iv, stamina_iv,
		        fast_move, charge_move
		 FROM rankings WHERE cp_limit = $1 AND level_limit = $2 ORDER BY rank`, lim.CP, lim.Level)
	if err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}
	defer rows.Close()

	var result []ranking.Entry
	for rows.Next() {
		var (
			e       ranking.Entry
			a, d, s int16
		)
		if err := rows.Scan(&e.Rank, &e.SpeciesID, &e.Species, &e.CP, &e.SCP, &e.Level,
			&a, &d, &s, &e.FastMove, &e.ChargeMove); err != nil {
			return nil, fmt.Errorf("scan rankings: %w", err)
		}
		e.IVs = model.IVs{Attack: int(a), Defense: int(d), Stamina: int(s)}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("ranking cp %d level %.1f: %w", lim.CP, lim.Level, ErrNotFound)
	}
	return result, nil
}
