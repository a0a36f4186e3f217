package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"foodies/config"
	"foodies/internal/infra/persistence/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const secretHash = "$2a$10$SECRETBCRYPTHASHVALUE"

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	SQL   string `json:"sql"`
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()

	var records []logRecord
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec logRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	return records
}

// dryRunDB renders statements without a server; failure is attached to every insert.
func dryRunDB(t *testing.T, queryLog logger.Interface, failure error) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=foodies dbname=foodies sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 queryLog,
	})
	require.NoError(t, err)

	if failure != nil {
		require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:fail", func(tx *gorm.DB) {
			_ = tx.AddError(failure)
		}))
	}

	return db
}

func newTestQueryLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg)
}

func TestQueryLogger_FailedInsertOmitsBoundValues(t *testing.T) {
	var buf bytes.Buffer
	db := dryRunDB(t, newTestQueryLogger(&buf, false), assert.AnError)

	err := db.Create(&model.UserModel{Name: "alice", Email: "alice@example.com", PasswordHash: secretHash}).Error
	require.ErrorIs(t, err, assert.AnError)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0].Level)
	assert.Equal(t, "Query failed", records[0].Msg)
	assert.Contains(t, records[0].SQL, `INSERT INTO "users"`)
	assert.Contains(t, records[0].SQL, "$1")
	assert.NotContains(t, buf.String(), secretHash)
	assert.NotContains(t, buf.String(), "alice@example.com")
}

func TestQueryLogger_DebugQueriesOmitBoundValues(t *testing.T) {
	var buf bytes.Buffer
	db := dryRunDB(t, newTestQueryLogger(&buf, true), nil)

	require.NoError(t, db.Create(&model.UserModel{Name: "alice", Email: "alice@example.com", PasswordHash: secretHash}).Error)

	records := decodeRecords(t, &buf)
	require.NotEmpty(t, records)
	assert.Equal(t, "Query", records[0].Msg)
	assert.NotContains(t, buf.String(), secretHash)
}

func TestQueryLogger_ConstraintViolationsAreNotErrors(t *testing.T) {
	duplicate := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "follows_pkey"}

	t.Run("quiet at the default level", func(t *testing.T) {
		var buf bytes.Buffer
		db := dryRunDB(t, newTestQueryLogger(&buf, false), duplicate)

		err := db.Create(&model.FollowModel{}).Error
		require.ErrorIs(t, err, duplicate)
		assert.Empty(t, buf.String())
	})

	t.Run("debug level in debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		db := dryRunDB(t, newTestQueryLogger(&buf, true), duplicate)

		require.Error(t, db.Create(&model.FollowModel{}).Error)

		records := decodeRecords(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "DEBUG", records[0].Level)
		assert.Equal(t, "Query rejected by constraint", records[0].Msg)
	})
}

func TestQueryLogger_SlowQueryWarns(t *testing.T) {
	var buf bytes.Buffer
	queryLog := newTestQueryLogger(&buf, false)

	queryLog.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT * FROM "recipes"`, 3
	}, nil)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0].Level)
	assert.Equal(t, "Slow query", records[0].Msg)
}

func TestQueryLogger_ParamsFilterDropsValues(t *testing.T) {
	filter, ok := newTestQueryLogger(&bytes.Buffer{}, false).(gorm.ParamsFilter)
	require.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), `UPDATE "users" SET "refresh_token"=$1`, "digest")

	assert.Equal(t, `UPDATE "users" SET "refresh_token"=$1`, sql)
	assert.Empty(t, params)
}
