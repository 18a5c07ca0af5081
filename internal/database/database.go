package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// SupportedProviders lists every provider accepted in configuration.
var SupportedProviders = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

// DriverName maps a configured provider to the registered sql driver.
func DriverName(provider string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s (supported: %v)", provider, SupportedProviders)
	}
}

// Placeholder returns the statement builder placeholder format for
// provider. Only postgres uses $1-style placeholders.
func Placeholder(provider string) sq.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return sq.Dollar
	default:
		return sq.Question
	}
}

// Open connects to the database behind url and verifies the connection
// with a ping before handing it out.
func Open(ctx context.Context, provider, url string) (*sql.DB, error) {
	driver, err := DriverName(provider)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
