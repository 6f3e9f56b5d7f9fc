package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Params describes how to reach the gym database. DSN, when set, is used
// verbatim instead of the connection string assembled from the other fields.
type Params struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	DSN      string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowQuery       time.Duration

	Logger *zap.Logger
}

// Open connects to the database and verifies the connection with a ping.
// On failure the handle is nil; the caller owns a successful handle and must
// release it with Close.
func Open(p Params) (*gorm.DB, error) {
	dialector, err := dialectorFor(p)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if p.Logger != nil {
		cfg.Logger = NewGormLogger(p.Logger, p.SlowQuery)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.Driver, err)
	}

	if p.Driver == DriverSQLite {
		// One connection: ":memory:" is per-connection and SQLite has a single writer anyway.
		sqlDB.SetMaxOpenConns(1)
	} else {
		if p.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(p.MaxOpenConns)
		}
		if p.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(p.MaxIdleConns)
		}
	}
	if p.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", p.Driver, err)
	}

	if p.Logger != nil {
		p.Logger.Info("database connection established",
			zap.String("driver", p.Driver),
			zap.String("host", p.Host),
			zap.String("database", p.Name),
		)
	}
	return db, nil
}

// Close releases the pool behind db. A nil handle is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(p Params) (gorm.Dialector, error) {
	switch p.Driver {
	case DriverMySQL, "":
		dsn := p.DSN
		if dsn == "" {
			dsn = mysqlDSN(p)
		}
		return gormmysql.Open(dsn), nil

	case DriverPostgres:
		dsn := p.DSN
		if dsn == "" {
			dsn = postgresDSN(p)
		}
		return postgres.Open(dsn), nil

	case DriverSQLite:
		dsn := p.DSN
		if dsn == "" {
			dsn = p.Name
		}
		if dsn == "" {
			return nil, fmt.Errorf("sqlite: database file name is empty")
		}
		return gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        sqliteDSN(dsn),
		}), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", p.Driver)
	}
}

func mysqlDSN(p Params) string {
	port := p.Port
	if port == "" {
		port = "3306"
	}

	c := mysql.NewConfig()
	c.User = p.User
	c.Passwd = p.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(p.Host, port)
	c.DBName = p.Name
	c.ParseTime = true
	c.Loc = time.UTC
	return c.FormatDSN()
}

func postgresDSN(p Params) string {
	port := p.Port
	if port == "" {
		port = "5432"
	}
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, port),
		Path:     "/" + p.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// sqliteDSN turns on foreign key enforcement for every pooled connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
