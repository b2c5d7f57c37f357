package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// PeopleDB wraps the shared database connection used by the user and group
// repositories.
type PeopleDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewPeopleDB opens the database connection and verifies it with a ping.
func NewPeopleDB(log *zerolog.Logger) (*PeopleDB, error) {
	// Get the database connection string from the environment
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Error().Msg("DATABASE_URL environment variable is not set")
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	// Open the database connection
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		return nil, err
	}

	return &PeopleDB{
		DB:  db,
		Log: log,
	}, nil
}

func (d *PeopleDB) Close() error {
	if err := d.DB.Close(); err != nil {
		return err
	}
	d.Log.Info().Msg("database connection closed")
	return nil
}

// Migrate runs all pending goose migrations embedded in the binary.
func (d *PeopleDB) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(d.DB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func (d *PeopleDB) execQuery(tx *sql.Tx, query string, args ...interface{}) error {
	if d.DB == nil {
		return fmt.Errorf("database connection is not established")
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// CommitTransaction commits the transaction, rolling back on failure.
func (d *PeopleDB) CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
