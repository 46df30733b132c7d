package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"mangatrade"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/storage"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// migrationsDir is the directory inside mangatrade.Migrations holding the SQL files.
const migrationsDir = "migrations"

// gooseLogger adapts goose's printf style logging to slog.
type gooseLogger struct {
	l *slog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// Migrate applies all pending goose migrations. It must be called on a
// non-transactional Store.
func (s *Store) Migrate(ctx context.Context) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	ctx = logger.WithFields(ctx, zap.String("component", "goose"), zap.String("dialect", s.Dialect.Goose))
	goose.SetLogger(gooseLogger{l: logger.Slog(ctx)})
	goose.SetBaseFS(mangatrade.Migrations)
	if err := goose.SetDialect(s.Dialect.Goose); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", s.Dialect.Goose, err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}

	return nil
}
