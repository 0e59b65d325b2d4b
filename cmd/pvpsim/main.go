package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/pvpsim/internal/ai"
	"github.com/udisondev/pvpsim/internal/api"
	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/config"
	"github.com/udisondev/pvpsim/internal/data"
	"github.com/udisondev/pvpsim/internal/db"
	"github.com/udisondev/pvpsim/internal/model"
	"github.com/udisondev/pvpsim/internal/ranking"
	"github.com/udisondev/pvpsim/internal/roster"
)

const ConfigPath = "config/pvpsim.yaml"

var errUsage = errors.New("usage: pvpsim <battle|rank|serve|migrate> [flags]")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := ConfigPath
	if p := os.Getenv("PVPSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	if err := data.Load(); err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "battle":
		return runBattle(args[1:], cfg, out)
	case "rank":
		return runRank(ctx, args[1:], cfg, out)
	case "serve":
		return runServe(ctx, cfg)
	case "migrate":
		return runMigrate(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func runBattle(args []string, cfg config.Simulator, out io.Writer) error {
	fs := flag.NewFlagSet("battle", flag.ContinueOnError)
	pathA := fs.String("a", "", "roster file of player 0 (yaml, toml or json)")
	pathB := fs.String("b", "", "roster file of player 1")
	agent0 := fs.String("agent0", ai.PresetBasic, "agent preset of player 0")
	agent1 := fs.String("agent1", ai.PresetBasic, "agent preset of player 1")
	seed := fs.Uint64("seed", 1, "random seed")
	verbose := fs.Bool("log", false, "print every tick's messages")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pathA == "" || *pathB == "" {
		return errors.New("battle: -a and -b are required")
	}

	var (
		teams   [2]*roster.Team
		members [2][]*model.Pokemon
	)
	for i, path := range [2]string{*pathA, *pathB} {
		t, err := roster.Load(path)
		if err != nil {
			return fmt.Errorf("loading roster %s: %w", path, err)
		}
		m, err := t.Build()
		if err != nil {
			return fmt.Errorf("building team %s: %w", t.Name, err)
		}
		teams[i], members[i] = t, m
	}

	a0, err := ai.Preset(*agent0, *seed)
	if err != nil {
		return err
	}
	a1, err := ai.Preset(*agent1, *seed+1)
	if err != nil {
		return err
	}

	b, err := battle.New(teams[0].Name, members[0], teams[1].Name, members[1],
		battle.WithSeed(*seed),
		battle.WithRules(battle.NewRules(cfg.Battle)),
		battle.WithAgents(a0, a1))
	if err != nil {
		return fmt.Errorf("creating battle: %w", err)
	}
	ph := b.Start()

	if *verbose {
		for _, s := range b.States[1:] {
			for _, msg := range s.Messages {
				fmt.Fprintf(out, "[%5.1fs] %s\n", float64(s.ElapsedMillis)/1000, msg)
			}
		}
	}

	fp, err := b.FingerprintHex()
	if err != nil {
		return err
	}
	s := b.State()
	fmt.Fprintf(out, "%s vs %s: %s after %d turns (%.1fs)\n",
		teams[0].Name, teams[1].Name, ph, s.Turn, float64(s.ElapsedMillis)/1000)
	for i := range s.Players {
		p := s.Player(i)
		fmt.Fprintf(out, "  %s: %d left, %d HP, %d shields\n", p.Name, p.Remaining(), p.TotalHP(), p.Shields)
	}
	fmt.Fprintf(out, "fingerprint %s\n", fp)
	return nil
}

func runRank(ctx context.Context, args []string, cfg config.Simulator, out io.Writer) error {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	cp := fs.Int("cp", cfg.Ranking.CPLimit, "league CP cap")
	level := fs.Float64("level", cfg.Ranking.LevelLimit, "level cap")
	top := fs.Int("top", cfg.Ranking.Top, "rows to print, 0 for all")
	workers := fs.Int("workers", cfg.Ranking.Workers, "parallel species")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lim := ranking.Limits{CP: *cp, Level: *level}
	if err := lim.Validate(); err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	entries, err := ranking.SCPRanking(ctx, data.AllSpecies(), lim, *workers)
	if err != nil {
		return fmt.Errorf("ranking species: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSPECIES\tCP\tSCP\tLEVEL\tIVS\tFAST\tCHARGE")
	for _, e := range ranking.Top(entries, *top) {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.1f\t%d/%d/%d\t%s\t%s\n",
			e.Rank, e.Species, e.CP, e.SCP, e.Level,
			e.IVs.Attack, e.IVs.Defense, e.IVs.Stamina,
			e.FastMove, e.ChargeMove)
	}
	return w.Flush()
}

func runServe(ctx context.Context, cfg config.Simulator) error {
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	server := api.NewServer(cfg, api.Stores{
		Battles:  db.NewBattleRepository(database.Pool()),
		Rankings: db.NewRankingRepository(database.Pool()),
		Health:   database,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting http api", "addr", cfg.HTTP.Addr())
		if err := server.Run(gctx); err != nil {
			return fmt.Errorf("http api: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("pvpsim stopped")
	return nil
}

func runMigrate(ctx context.Context, cfg config.Simulator) error {
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
