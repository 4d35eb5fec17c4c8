package database

import (
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLog records every statement sqlmock was asked to match.
type queryLog struct {
	mu   sync.Mutex
	seen []string
}

func (l *queryLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.seen...)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *queryLog) {
	t.Helper()

	log := &queryLog{}
	matcher := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		log.mu.Lock()
		log.seen = append(log.seen, actualSQL)
		log.mu.Unlock()
		return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock, log
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
