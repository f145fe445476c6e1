// Package database owns the SQL connection pool and the transaction
// helper the rental workflow builds its atomic batches on.
package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/rentora/video-store/internal/config"
)

// Open builds the MySQL DSN from the loaded configuration and
// verifies connectivity before handing the pool out. parseTime is on
// so rental timestamps scan straight into time.Time, and sessions
// run in UTC to match the fee arithmetic on checkout/return dates.
func Open(cfg config.Config) (*sql.DB, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Collation = "utf8mb4_general_ci"

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, err
	}

	// Small API, small pool. Recycling connections hourly keeps the
	// pool healthy across MySQL-side idle timeouts.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
