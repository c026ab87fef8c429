package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"exchange_calculator/internal/config"
	"exchange_calculator/internal/models"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Хранилище таблицы курсов
type DB struct {
	conn   *sql.DB
	driver string
	logger *logrus.Logger
}

// Открываем хранилище: Postgres или файл sqlite
func New(cfg *config.DatabaseConfig, logger *logrus.Logger) (*DB, error) {
	var dsn string
	switch cfg.Driver {
	case DriverPostgres:
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
	case DriverSQLite:
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", cfg.Path)
		if cfg.Path == ":memory:" {
			dsn = ":memory:"
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite: одно соединение, иначе у каждого соединения своя in-memory база
	if cfg.Driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	// Проверяем соединение
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{
		conn:   conn,
		driver: cfg.Driver,
		logger: logger,
	}

	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// Закрываем соединение с базой данных
func (db *DB) Close() error {
	return db.conn.Close()
}

// Создаём необходимые таблицы
func (db *DB) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS rates (
		external_id VARCHAR(10) PRIMARY KEY,
		position INTEGER NOT NULL,
		cash_sell DOUBLE PRECISION NOT NULL,
		cashless_sell DOUBLE PRECISION NOT NULL,
		cash_buy DOUBLE PRECISION NOT NULL,
		cashless_buy DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

	if _, err := db.conn.Exec(query); err != nil {
		return fmt.Errorf("failed to execute table query %s: %w", query, err)
	}

	return nil
}

// Получаем курсы в том порядке, в котором они были сохранены
func (db *DB) ListRates(ctx context.Context) ([]models.RateQuote, error) {
	query := `SELECT external_id, cash_sell, cashless_sell, cash_buy, cashless_buy FROM rates ORDER BY position ASC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	var quotes []models.RateQuote
	for rows.Next() {
		var q models.RateQuote
		if err := rows.Scan(&q.ExternalID, &q.CashSell, &q.CashlessSell, &q.CashBuy, &q.CashlessBuy); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rates: %w", err)
	}

	return quotes, nil
}

// Заменяем таблицу курсов целиком в одной транзакции
func (db *DB) ReplaceRates(ctx context.Context, quotes []models.RateQuote) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rates`); err != nil {
		return fmt.Errorf("failed to clear rates: %w", err)
	}

	insert := db.rebind(`INSERT INTO rates (external_id, position, cash_sell, cashless_sell, cash_buy, cashless_buy, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`)
	now := time.Now().UTC()
	for i, q := range quotes {
		if _, err := tx.ExecContext(ctx, insert, q.ExternalID, i, q.CashSell, q.CashlessSell, q.CashBuy, q.CashlessBuy, now); err != nil {
			return fmt.Errorf("failed to insert rate %s: %w", q.ExternalID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rates: %w", err)
	}

	db.logger.WithField("count", len(quotes)).Debug("Rates replaced in storage")
	return nil
}

// Postgres ждёт плейсхолдеры $1, $2, ...; sqlite принимает ?
func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
