package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-console/console"
	"github.com/saeidalz13/battleship-console/db"
	"github.com/saeidalz13/battleship-console/db/sqlc"
	"github.com/saeidalz13/battleship-console/engine"
	"github.com/saeidalz13/battleship-console/internal/config"
	cerr "github.com/saeidalz13/battleship-console/internal/error"
	"github.com/saeidalz13/battleship-console/internal/i18n"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error("bad configuration", "err", err)
		return 2
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Error("failed to open log file", "file", cfg.LogFile, "err", err)
		return 1
	}
	defer logFile.Close()

	level := log.DebugLevel
	if cfg.Stage == config.StageProd {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
		Level:           level,
	})
	logger.Info("starting", "stage", cfg.Stage, "lang", cfg.Language, "seed", cfg.Seed)

	catalog, err := i18n.Load(cfg.Language, cfg.LangDir)
	if err != nil {
		logger.Error("failed to load language pack", "lang", cfg.Language, "err", err)
		return 1
	}
	if cfg.LangDir != "" {
		exportPack(catalog, cfg.LangDir, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := console.New(os.Stdin, os.Stdout, catalog, logger)
	ui.Welcome()

	human := mb.NewPlayer(mb.DefaultHumanName, mb.NewDefaultBoard(logger))
	computer := mb.NewPlayer(mb.DefaultOpponentName, mb.NewDefaultBoard(logger))
	if err := askNames(ctx, ui, cfg, human, computer); err != nil {
		logger.Warn("game abandoned before it started", "err", err)
		ui.Goodbye()
		return 0
	}
	ui.SetPlayers(human, computer)
	ui.ShowRules()

	opts := []engine.Option{engine.WithLogger(logger), engine.WithObserver(ui)}

	if cfg.DatabaseURL != "" {
		dbm := sqlc.NewDbManager(db.MustConnectToDb(cfg.DatabaseURL, logger))
		defer dbm.Close()
		opts = append(opts, engine.WithRecorder(dbm.Analytics))
		defer reportHistory(dbm.Analytics, human.Name(), logger)
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))
	eng, err := engine.New(
		&engine.Side{Player: human, Strategy: engine.NewHumanStrategy(ui, logger)},
		&engine.Side{Player: computer, Strategy: engine.NewRandomStrategy(rnd, logger), Background: true, ShotDelay: cfg.ShotDelay},
		opts...,
	)
	if err != nil {
		logger.Error("failed to create game", "err", err)
		return 1
	}

	if _, err := eng.Run(ctx); err != nil {
		switch {
		case errors.Is(err, cerr.ErrInputClosed), errors.Is(err, context.Canceled):
			logger.Info("game abandoned", "game", eng.Game().Uuid, "err", err)
			ui.Goodbye()
			return 0
		case cerr.IsFatal(err):
			logger.Error("game aborted", "game", eng.Game().Uuid, "err", err)
			return 1
		default:
			logger.Error("game failed", "game", eng.Game().Uuid, "err", err)
			return 1
		}
	}

	ui.Goodbye()
	return 0
}

func askNames(ctx context.Context, ui *console.Console, cfg config.Config, human, computer *mb.Player) error {
	if cfg.PlayerName != "" {
		human.SetName(cfg.PlayerName)
	} else {
		name, err := ui.AskName(ctx, i18n.KeyAskUserName, human.Name())
		if err != nil {
			return err
		}
		human.SetName(name)
	}

	if cfg.OpponentName != "" {
		computer.SetName(cfg.OpponentName)
		return nil
	}
	name, err := ui.AskName(ctx, i18n.KeyAskOpponentName, computer.Name())
	if err != nil {
		return err
	}
	computer.SetName(name)
	return nil
}

// exportPack writes the active pack into dir when it has no file for it yet,
// so it can be edited and loaded on the next start.
func exportPack(catalog *i18n.Catalog, dir string, logger *log.Logger) {
	path := filepath.Join(dir, i18n.PackFileName(catalog.Lang()))
	if _, err := os.Stat(path); err == nil {
		return
	}

	saved, err := catalog.Save(dir)
	if err != nil {
		logger.Warn("failed to export language pack", "dir", dir, "err", err)
		return
	}
	logger.Info("language pack exported", "file", saved)
}

func reportHistory(analytics *sqlc.AnalyticsManager, name string, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	played, err := analytics.GetGamesPlayedCount(ctx)
	if err != nil {
		logger.Warn("failed to count games", "err", err)
		return
	}
	wins, err := analytics.GetWinsByPlayer(ctx, name)
	if err != nil {
		logger.Warn("failed to count wins", "player", name, "err", err)
		return
	}
	logger.Info("history", "gamesPlayed", played, "player", name, "wins", wins)
}
