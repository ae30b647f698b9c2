package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/draftboardhq/bigboard/internal/api/adp"
	"github.com/draftboardhq/bigboard/internal/api/nflfastr"
	"github.com/draftboardhq/bigboard/internal/api/sportsbook"
	"github.com/draftboardhq/bigboard/internal/config"
	"github.com/draftboardhq/bigboard/internal/models"
	"github.com/draftboardhq/bigboard/internal/report"
	"github.com/draftboardhq/bigboard/internal/repository/memory"
	"github.com/draftboardhq/bigboard/internal/scheduler"
	"github.com/draftboardhq/bigboard/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	leagueSize := flag.Int("league-size", 14, "league size, affects ADP bucketing and replacement baselines")
	outPath := flag.String("out", "fantasy_big_board.xlsx", "output workbook path")
	schedule := flag.String("schedule", "", "optional cron expression; empty runs once and exits")
	flag.Parse()

	if *leagueSize <= 0 {
		return fmt.Errorf("league size must be positive, got %d", *leagueSize)
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	var adpEntries []models.ADPEntry
	if cfg.ADP.CSVPath != "" {
		adpEntries, err = adp.LoadCSV(cfg.ADP.CSVPath)
		if err != nil {
			return err
		}
		slog.Info("Loaded ADP data", "entries", len(adpEntries))
	}

	oddsClient := sportsbook.NewClient(cfg.Sportsbook)
	oddsAPI := sportsbook.NewAPI(oddsClient)
	pbpClient := nflfastr.NewClient(cfg.NFLFastR)
	repo := memory.NewRepository()

	boardService := service.NewBoardService(oddsAPI, pbpClient, repo, adpEntries)

	runOnce := func() error {
		board, err := boardService.BuildBoard(*leagueSize)
		if err != nil {
			return err
		}

		if err := report.WriteWorkbook(board, *outPath); err != nil {
			return err
		}

		slog.Info("Big board exported",
			"path", *outPath,
			"ranked", len(board.Ranked),
			"flagged", len(board.Flagged))
		return nil
	}

	if *schedule == "" {
		return runOnce()
	}

	sched, err := scheduler.NewScheduler(*schedule, func() {
		if err := runOnce(); err != nil {
			slog.Error("Scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Running on schedule", "cron", *schedule)
	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
