// Package database opens the MySQL connection pool shared by the whole process.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/ribgsilva/notes-server/sys"
)

// DSN builds the driver connection string from the database configs.
func DSN(cfg sys.Config) string {
	c := mysql.NewConfig()
	c.User = cfg.Database.User
	c.Passwd = cfg.Database.Pass
	c.Net = "tcp"
	c.Addr = cfg.Database.Host
	c.DBName = cfg.Database.Name
	c.ParseTime = true
	// report matched rows instead of changed rows, the upsert relies on it
	c.ClientFoundRows = true
	return c.FormatDSN()
}

// Open creates the connection pool and makes sure the database answers a ping.
func Open(ctx context.Context, cfg sys.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	if err := StatusCheck(ctx, db, cfg); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// StatusCheck pings the database within the configured ping timeout.
func StatusCheck(ctx context.Context, db *sql.DB, cfg sys.Config) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, cfg.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	return nil
}
