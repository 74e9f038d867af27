package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed schema.sql
var Schema string

// pq error codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Setup().Fatal("error connect database", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

type txKey struct{}

// Conn returns the transaction bound to ctx, or db when there is none.
func Conn(ctx context.Context, db *sqlx.DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction runs fn in a transaction carried by ctx. Nested calls join
// the outer transaction, so only the outermost call commits.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// IsUniqueViolation reports whether err is a postgres unique_violation, and on which constraint.
func IsUniqueViolation(err error) (string, bool) {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != uniqueViolation {
		return "", false
	}
	return pqErr.Constraint, true
}

// IsForeignKeyViolation reports whether err is a postgres foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == foreignKeyViolation
}

// Translate maps driver errors onto the error taxonomy.
func Translate(err error, notFoundMsg, defaultMsg string) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return errors.NotFound(notFoundMsg)
	}
	if _, ok := IsUniqueViolation(err); ok {
		return errors.Conflict(defaultMsg)
	}
	if errors.KindOf(err) != errors.KindInternal {
		return err
	}
	return errors.InternalServerError(defaultMsg)
}
