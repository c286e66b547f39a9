package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultURI — база по умолчанию: файл app.db в рабочем каталоге.
const DefaultURI = "sqlite:///app.db"

// Options — параметры подключения к базе.
type Options struct {
	// URI — строка подключения.
	//   postgres://... или postgresql://... — PostgreSQL через pgxpool
	//   sqlite:///path/to/file.db или просто путь — файл SQLite
	URI string

	// MaxConns — размер пула (только для PostgreSQL).
	MaxConns int32

	// LogQueries включает логирование SQL запросов gorm.
	LogQueries bool
}

// DB — подключение к базе: ORM-сессия поверх пула соединений.
type DB struct {
	Gorm *gorm.DB

	// Dialect — "postgres" или "sqlite".
	Dialect string

	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Open открывает базу по URI.
func Open(ctx context.Context, opts Options) (*DB, error) {
	uri := opts.URI
	if uri == "" {
		uri = DefaultURI
	}

	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if opts.LogQueries {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	if isPostgres(uri) {
		return openPostgres(ctx, uri, opts.MaxConns, cfg)
	}
	return openSQLite(ctx, uri, cfg)
}

func isPostgres(uri string) bool {
	return strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://")
}

func openPostgres(ctx context.Context, dsn string, maxConns int32, cfg *gorm.Config) (*DB, error) {
	pool, err := NewPool(ctx, dsn, maxConns)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return &DB{Gorm: gdb, Dialect: "postgres", pool: pool, sqlDB: sqlDB}, nil
}

func openSQLite(ctx context.Context, uri string, cfg *gorm.Config) (*DB, error) {
	dsn := sqliteDSN(uri)

	gdb, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite допускает одного писателя: одно соединение
	// избавляет от "database is locked".
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &DB{Gorm: gdb, Dialect: "sqlite", sqlDB: sqlDB}, nil
}

// sqliteDSN превращает URI в DSN драйвера и включает проверку внешних ключей.
func sqliteDSN(uri string) string {
	dsn := strings.TrimPrefix(uri, "sqlite:///")
	dsn = strings.TrimPrefix(dsn, "sqlite://")

	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)"
	}
	return dsn
}

// NewPool создаёт пул соединений PostgreSQL.
func NewPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

// Ping проверяет доступность базы (используется /healthz).
func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		return db.pool.Ping(ctx)
	}
	return db.sqlDB.PingContext(ctx)
}

// Close закрывает соединения.
func (db *DB) Close() error {
	err := db.sqlDB.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}
