// Package dbtest wires the resources used by tests: an in-memory SQLite database
// in place of MySQL and a miniredis server in place of redis.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-server/persistence/v1/schema"
	"github.com/ribgsilva/notes-server/sys"
	"go.uber.org/zap/zaptest"

	_ "github.com/mattn/go-sqlite3"
)

// Secret is the token secret set in the configs returned by New.
const Secret = "test-secret"

var counter atomic.Int64

// Env is everything a test needs to build stores and handlers.
type Env struct {
	Res   sys.Resources
	Cfg   sys.Config
	Redis *miniredis.Miniredis
}

// Config returns the configs used by tests.
func Config() sys.Config {
	var cfg sys.Config
	cfg.Auth.Secret = Secret
	cfg.Auth.TokenTTL = time.Hour
	cfg.Database.PingTimeout = 2 * time.Second
	cfg.Database.OperationTimeout = 5 * time.Second
	cfg.Cache.PingTimeout = 2 * time.Second
	cfg.Cache.OperationTimeout = 2 * time.Second
	cfg.Cache.CacheTTL = 24 * time.Hour
	cfg.Messaging.MaxWorkers = 2
	cfg.Messaging.ShutdownTimeout = 2 * time.Second
	return cfg
}

// New opens a fresh database with the schema created and a fresh redis.
// Everything is closed when the test ends.
func New(t testing.TB) Env {
	t.Helper()
	cfg := Config()

	s := miniredis.RunT(t)
	cfg.Cache.ConnectionURL = s.Addr()

	// each database is private to the test, a single connection keeps it alive
	dsn := fmt.Sprintf("file:notes%d?mode=memory&cache=shared", counter.Add(1))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("could not open database: %s", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("could not connect to database: %s", err)
	}
	if err := schema.Create(ctx, db); err != nil {
		t.Fatalf("could not create schema: %s", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.ConnectionURL})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return Env{
		Res: sys.Resources{
			Log:      zaptest.NewLogger(t).Sugar(),
			Cache:    rdb,
			Database: db,
		},
		Cfg:   cfg,
		Redis: s,
	}
}
