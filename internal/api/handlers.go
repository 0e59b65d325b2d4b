package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udisondev/pvpsim/internal/ai"
	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/db"
	"github.com/udisondev/pvpsim/internal/ranking"
	"github.com/udisondev/pvpsim/internal/roster"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

type battleRequest struct {
	Team0  roster.Team `json:"team0"`
	Team1  roster.Team `json:"team1"`
	Agent0 string      `json:"agent0"`
	Agent1 string      `json:"agent1"`
	Seed   *uint64     `json:"seed"`
}

type pokemonSummary struct {
	Species string `json:"species"`
	CP      int    `json:"cp"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"max_hp"`
	Energy  int    `json:"energy"`
}

type playerSummary struct {
	Name      string           `json:"name"`
	Remaining int              `json:"remaining"`
	TotalHP   int              `json:"total_hp"`
	Shields   int              `json:"shields"`
	Team      []pokemonSummary `json:"team"`
}

type battleResponse struct {
	Record  *db.BattleRecord `json:"record"`
	Result  string           `json:"result"`
	Players [2]playerSummary `json:"players"`
}

func summarize(s *battle.State) [2]playerSummary {
	var out [2]playerSummary
	for i := range s.Players {
		p := s.Player(i)
		ps := playerSummary{
			Name:      p.Name,
			Remaining: p.Remaining(),
			TotalHP:   p.TotalHP(),
			Shields:   p.Shields,
			Team:      make([]pokemonSummary, 0, len(p.Team)),
		}
		for k := range p.Team {
			bp := &p.Team[k]
			ps.Team = append(ps.Team, pokemonSummary{
				Species: bp.Name(),
				CP:      bp.Pokemon.CP(),
				HP:      bp.HP,
				MaxHP:   bp.MaxHP(),
				Energy:  bp.Energy,
			})
		}
		out[i] = ps
	}
	return out
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func internalError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func (s *Server) health(c *gin.Context) {
	if s.stores.Health != nil {
		if err := s.stores.Health.Ping(c.Request.Context()); err != nil {
			slog.Warn("health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) createBattle(c *gin.Context) {
	var req battleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("decoding request: %w", err))
		return
	}

	team0, err := req.Team0.Build()
	if err != nil {
		badRequest(c, fmt.Errorf("team0: %w", err))
		return
	}
	team1, err := req.Team1.Build()
	if err != nil {
		badRequest(c, fmt.Errorf("team1: %w", err))
		return
	}

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}
	agents := [2]string{presetName(req.Agent0), presetName(req.Agent1)}
	a0, err := ai.Preset(agents[0], seed)
	if err != nil {
		badRequest(c, fmt.Errorf("agent0: %w", err))
		return
	}
	a1, err := ai.Preset(agents[1], seed+1)
	if err != nil {
		badRequest(c, fmt.Errorf("agent1: %w", err))
		return
	}

	b, err := battle.New(teamName(req.Team0, "player0"), team0, teamName(req.Team1, "player1"), team1,
		battle.WithSeed(seed),
		battle.WithRules(s.rules),
		battle.WithAgents(a0, a1))
	if err != nil {
		badRequest(c, err)
		return
	}
	ph := b.Start()

	rec, err := db.RecordOf(b, [2]roster.Team{req.Team0, req.Team1}, agents, seed)
	if err != nil {
		internalError(c, "summarizing battle", err)
		return
	}
	if err := s.stores.Battles.Save(c.Request.Context(), &rec); err != nil {
		internalError(c, "saving battle", err)
		return
	}

	slog.Info("battle played",
		"id", rec.ID,
		"phase", ph.String(),
		"turns", rec.Turns,
		"seed", seed)

	c.JSON(http.StatusCreated, battleResponse{
		Record:  &rec,
		Result:  ph.String(),
		Players: summarize(b.State()),
	})
}

func (s *Server) getBattle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("parsing battle id: %w", err))
		return
	}

	rec, err := s.stores.Battles.Get(c.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "battle not found"})
		return
	}
	if err != nil {
		internalError(c, "loading battle", err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) listBattles(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil {
		badRequest(c, err)
		return
	}
	limit = max(1, min(limit, maxListLimit))

	recs, err := s.stores.Battles.ListRecent(c.Request.Context(), limit)
	if err != nil {
		internalError(c, "listing battles", err)
		return
	}
	if recs == nil {
		recs = []db.BattleRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"battles": recs})
}

func (s *Server) getRankings(c *gin.Context) {
	cp, err := queryInt(c, "cp", s.ranking.CPLimit)
	if err != nil {
		badRequest(c, err)
		return
	}
	top, err := queryInt(c, "top", s.ranking.Top)
	if err != nil {
		badRequest(c, err)
		return
	}
	level := s.ranking.LevelLimit
	if raw := c.Query("level"); raw != "" {
		level, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, fmt.Errorf("parsing level: %w", err))
			return
		}
	}
	lim := ranking.Limits{CP: cp, Level: level}
	if err := lim.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	entries, err := s.loadRanking(c, lim)
	if err != nil {
		internalError(c, "building ranking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cp":      lim.CP,
		"level":   lim.Level,
		"entries": ranking.Top(entries, top),
	})
}

// loadRanking returns the stored ranking or computes and stores it.
// Concurrent misses for the same cap share one computation, which outlives
// the request that started it.
func (s *Server) loadRanking(c *gin.Context, lim ranking.Limits) ([]ranking.Entry, error) {
	ctx := c.Request.Context()

	entries, err := s.stores.Rankings.Load(ctx, lim)
	if err == nil {
		return entries, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	key := fmt.Sprintf("%d/%g", lim.CP, lim.Level)
	v, err, _ := s.rankings.Do(key, func() (any, error) {
		sctx := context.WithoutCancel(ctx)
		slog.Info("computing ranking", "cp", lim.CP, "level", lim.Level)
		entries, err := ranking.SCPRanking(sctx, data.AllSpecies(), lim, s.ranking.Workers)
		if err != nil {
			return nil, err
		}
		if err := s.stores.Rankings.Replace(sctx, lim, entries); err != nil {
			slog.Error("storing ranking", "cp", lim.CP, "level", lim.Level, "err", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ranking.Entry), nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return v, nil
}

func presetName(name string) string {
	if name == "" {
		return ai.PresetBasic
	}
	return name
}

func teamName(t roster.Team, def string) string {
	if t.Name == "" {
		return def
	}
	return t.Name
}
