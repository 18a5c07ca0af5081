package database

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		provider string
		driver   string
	}{
		{"postgresql", "pgx"},
		{"postgres", "pgx"},
		{"mysql", "mysql"},
		{"sqlite", "sqlite3"},
		{"sqlite3", "sqlite3"},
	}
	for _, tt := range tests {
		driver, err := DriverName(tt.provider)
		require.NoError(t, err)
		assert.Equal(t, tt.driver, driver)
	}

	_, err := DriverName("mongodb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, sq.Dollar, Placeholder("postgresql"))
	assert.Equal(t, sq.Dollar, Placeholder("postgres"))
	assert.Equal(t, sq.Question, Placeholder("mysql"))
	assert.Equal(t, sq.Question, Placeholder("sqlite"))
}
