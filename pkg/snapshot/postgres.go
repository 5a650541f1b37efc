package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/acc-api/internal/models"
)

// Postgres keeps the snapshot in a single-row blob table. The ledger is an
// opaque document to the database; there is no per-entity schema.
type Postgres struct {
	db  *sqlx.DB
	key string
}

// PostgresOptions configures the Postgres-backed snapshot store.
type PostgresOptions struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	Key          string
}

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgres connects, verifies the server, and ensures the snapshot table.
func NewPostgres(opts PostgresOptions) (*Postgres, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		opts.Host,
		opts.Port,
		opts.User,
		opts.Password,
		opts.Name,
		opts.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(snapshotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure snapshot table: %w", err)
	}

	key := opts.Key
	if key == "" {
		key = "acc:ledger"
	}
	return &Postgres{db: db, key: key}, nil
}

// NewPostgresWithDB wraps an existing connection; used by tests.
func NewPostgresWithDB(db *sqlx.DB, key string) *Postgres {
	if key == "" {
		key = "acc:ledger"
	}
	return &Postgres{db: db, key: key}
}

// Load implements Store.
func (p *Postgres) Load(ctx context.Context) (*models.Ledger, error) {
	var data []byte
	err := p.db.QueryRowxContext(ctx, `SELECT data FROM ledger_snapshots WHERE key = $1`, p.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}
	return Decode(data)
}

// Save implements Store.
func (p *Postgres) Save(ctx context.Context, ledger models.Ledger) error {
	data, err := Encode(ledger)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO ledger_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		p.key, data)
	if err != nil {
		return fmt.Errorf("write snapshot row: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
