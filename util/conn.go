package util

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/slog"
)

const (
	DriverPostgres  = "postgres"
	DriverMysql     = "mysql"
	ApplicationName = "pgdatadiff"
)

// DbConfig describes one side of a run.
type DbConfig struct {
	Dsn                string
	MaxConnections     int
	AcceptInvalidCerts bool
}

// DetectDriver returns DriverMysql for mysql:// connection strings and DriverPostgres otherwise.
func DetectDriver(dsn string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(dsn)), "mysql://") {
		return DriverMysql
	}
	return DriverPostgres
}

// DriverDsn rewrites a user supplied connection string into the form the driver expects.
func DriverDsn(cfg DbConfig) (driver string, dsn string, err error) {
	driver = DetectDriver(cfg.Dsn)
	switch driver {
	case DriverMysql:
		dsn, err = MysqlDsn(cfg.Dsn, cfg.AcceptInvalidCerts)
	default:
		dsn, err = PgsqlDsn(cfg.Dsn, cfg.AcceptInvalidCerts)
	}
	return
}

// OpenDb opens a connection pool and pings it, a failure here is fatal to the run.
func OpenDb(ctx context.Context, cfg DbConfig) (*sql.DB, string, error) {
	driver, dsn, err := DriverDsn(cfg)
	if err != nil {
		return nil, driver, fmt.Errorf("OpenDb:Dsn -> %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, driver, fmt.Errorf("OpenDb:Open -> %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConnections) //pool size is the only throttle on concurrent queries
	db.SetMaxIdleConns(cfg.MaxConnections)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(time.Minute * 10)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, driver, fmt.Errorf("OpenDb:Ping -> %w", err)
	}
	slog.Debugf("opened %s pool, max connections %d", driver, cfg.MaxConnections)
	return db, driver, nil
}
