package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/sheikh-saqib/budget-ledger/internal/budget"
	"github.com/sheikh-saqib/budget-ledger/internal/config"
	"github.com/sheikh-saqib/budget-ledger/internal/events/kafka"
	interfaces "github.com/sheikh-saqib/budget-ledger/internal/interfaces"
	"github.com/sheikh-saqib/budget-ledger/internal/script"
	"github.com/sheikh-saqib/budget-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/budget-ledger/internal/storage/postgres"
)

var rootCmd = &cobra.Command{
	Use:   "budget",
	Short: "Category budget ledger with a spend chart",
	Long: `Budget keeps a ledger per spending category and summarizes spend
across categories as a text bar chart.

Operations are read from a YAML script, every recorded entry is journaled
(memory or Postgres) and optionally published to Kafka.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openBook wires the journal store and event publisher selected by cfg.
// The returned cleanup closes whatever was opened.
func openBook(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*budget.Book, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", "error", err)
			}
		}
	}

	var store interfaces.LedgerStore
	switch cfg.Store {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("open database: %w", err)
		}
		closers = append(closers, db.Close)

		pg := postgres.NewPostgresLedgerStore(db)
		if err := pg.Migrate(ctx); err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("migrate journal: %w", err)
		}
		store = pg
		logger.Info("journaling to postgres")
	default:
		store = memory.NewMemoryLedgerStore()
	}

	var publisher interfaces.EventPublisher
	if cfg.EventsEnabled() {
		p := kafka.NewPublisher(cfg.KafkaBrokers)
		closers = append(closers, p.Close)
		publisher = p
		logger.Info("publishing events", "brokers", cfg.KafkaBrokers)
	}

	return budget.NewBook(store, publisher, logger), cleanup, nil
}

// loadAndApply parses the script at path and applies it to a freshly wired Book.
func loadAndApply(ctx context.Context, path string) (*budget.Book, func(), error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, func() {}, err
	}
	logger := newLogger(cfg)

	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	defer f.Close()

	s, err := script.Parse(f)
	if err != nil {
		return nil, func() {}, err
	}

	book, cleanup, err := openBook(ctx, cfg, logger)
	if err != nil {
		return nil, cleanup, err
	}

	res, err := s.Apply(ctx, book)
	if err != nil {
		return nil, cleanup, err
	}
	for _, rejected := range res.Rejected {
		logger.Warn("operation rejected", "error", rejected)
	}
	logger.Debug("script applied", "applied", res.Applied, "rejected", len(res.Rejected))
	return book, cleanup, nil
}
