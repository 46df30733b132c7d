// Package sqlstore implements storage.Storage on top of database/sql and goqu.
// The same query code serves every SQL backend; backend packages (postgres,
// sqlite) only open the connection and pick the Dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"mangatrade/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

// Dialect captures the few places where the supported SQL engines differ.
type Dialect struct {
	// Name is the goqu dialect used to render queries.
	Name string
	// Goose is the dialect name understood by goose migrations.
	Goose string
	// PositionFunc is the SQL function returning the 1-based position of a
	// substring, or 0 when absent. It gives literal substring matching
	// without LIKE wildcards or engine-specific case folding.
	PositionFunc string
}

var (
	// Postgres is the dialect for PostgreSQL backends.
	Postgres = Dialect{Name: "postgres", Goose: "postgres", PositionFunc: "STRPOS"} //nolint: gochecknoglobals
	// SQLite is the dialect for SQLite backends.
	SQLite = Dialect{Name: "sqlite3", Goose: "sqlite3", PositionFunc: "INSTR"} //nolint: gochecknoglobals
)

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used by this package to
// construct queries. Both a goqu database handle and a transaction handle
// implement this interface.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// preparedBuilder makes every dataset render placeholders and pass values as
// bound arguments. Interpolated literals break on values such as NUL bytes,
// which SQLite treats as the end of the statement.
type preparedBuilder struct {
	b Builder
}

func (p preparedBuilder) From(table ...interface{}) *goqu.SelectDataset {
	return p.b.From(table...).Prepared(true)
}

func (p preparedBuilder) Insert(table interface{}) *goqu.InsertDataset {
	return p.b.Insert(table).Prepared(true)
}

func (p preparedBuilder) Delete(table interface{}) *goqu.DeleteDataset {
	return p.b.Delete(table).Prepared(true)
}

// Store implements the storage.Storage and storage.TxStorage interfaces.
type Store struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
	// Dialect describes the SQL engine behind DB.
	Dialect Dialect

	// release frees backend resources that outlive the *sql.DB (e.g. a pgx pool).
	release func()
}

var (
	_ storage.Storage   = (*Store)(nil)
	_ storage.TxStorage = (*Store)(nil)
)

// New wraps an opened database handle. release, when non-nil, is invoked by
// Close after the handle has been closed.
func New(db *sql.DB, dialect Dialect, release func()) *Store {
	return &Store{
		DB:      db,
		Builder: preparedBuilder{b: goqu.Dialect(dialect.Name).DB(db)},
		Dialect: dialect,
		release: release,
	}
}

// Close closes the database handle and releases backend resources.
func (s *Store) Close() error {
	var err error
	if db, ok := s.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if s.release != nil {
		s.release()
	}
	if err != nil {
		return fmt.Errorf("could not close database: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when the Store is not in a transactional context.
func (s *Store) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when the Store is not in a transactional context.
func (s *Store) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction and returns a transactional Store
// that can be used to execute subsequent operations within that transaction.
// If called while already inside a transaction, ErrAlreadyInTx is returned.
func (s *Store) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Store{
		DB:      tx,
		Builder: preparedBuilder{b: goqu.NewTx(s.Dialect.Name, tx)},
		Dialect: s.Dialect,
	}, nil
}

// WithTx is a helper that starts a transaction, executes the provided callback
// with a transactional storage handle, and commits if the callback returns nil.
// If the callback returns an error, the transaction is rolled back.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Ping verifies the database is reachable. Inside a transaction it only
// checks that the transaction is still usable.
func (s *Store) Ping(ctx context.Context) error {
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("could not ping database: %w", err)
		}

		return nil
	}

	var one int
	if err := s.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("could not ping database: %w", err)
	}

	return nil
}
