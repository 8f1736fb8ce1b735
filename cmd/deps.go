package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/engpower/internal/bank"
	"github.com/abhisek/engpower/internal/config"
	"github.com/abhisek/engpower/internal/quiz"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/store"
)

// deps is everything a command needs to reach persisted game state.
type deps struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	writer *store.AsyncWriter
	engine *session.Engine

	logFile io.Closer
}

// loadConfig reads configuration with the command's flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{
		File:   file,
		Flags:  cmd.Flags(),
		DotEnv: []string{".env"},
	})
}

// resolveDBPath returns the configured database path, falling back to
// ENGPOWER_DB and then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// loadBank returns the configured bank or the built-in one.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.Bank == "" {
		return bank.Default(), nil
	}
	b, err := bank.LoadFile(cfg.Bank)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", cfg.Bank, err)
	}
	return b, nil
}

// openLogger opens the JSON log file. The terminal belongs to the game,
// so logs never go to stderr.
func openLogger(cfg config.Config, dbPath string) (*slog.Logger, io.Closer, error) {
	path := cfg.Log.File
	if path == "" {
		path = filepath.Join(filepath.Dir(dbPath), "engpower.log")
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, f, nil
}

// openDeps loads config, opens the store and builds the engine. Callers
// must Close the result so queued writes reach the database.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logger, logFile, err := openLogger(cfg, dbPath)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	b, err := loadBank(cfg)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	writer := store.NewAsyncWriter(st.KV(), logger)
	engine, err := session.NewEngine(cmd.Context(), session.Options{
		Bank:       b,
		Quiz:       quiz.Config{ReviewProbability: cfg.ReviewProbability},
		Gateway:    writer,
		SessionLog: st.SessionLog(),
		Logger:     logger,
	})
	if err != nil {
		writer.Close()
		st.Close()
		logFile.Close()
		return nil, fmt.Errorf("start engine: %w", err)
	}

	logger.Debug("dependencies ready", "db", dbPath, "bank_items", b.Len())
	return &deps{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		writer:  writer,
		engine:  engine,
		logFile: logFile,
	}, nil
}

// Close drains pending writes, then closes the store and the log file.
func (d *deps) Close() error {
	return errors.Join(d.writer.Close(), d.store.Close(), d.logFile.Close())
}
