// Package store persists generated grids in Postgres and caches dictionary
// pattern-query results in Redis, narrowed from this lineage's combined
// Postgres+Redis data layer down to the two concerns this module's domain
// actually needs.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/wordgrid/engine/pkg/grid"
)

// Store wraps a Postgres handle and a Redis client.
type Store struct {
	db    *sql.DB
	redis *redis.Client
}

// New opens and pings both backing stores, configuring the same connection
// pool limits this lineage always used for its Postgres handle.
func New(postgresURL, redisURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: failed to parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("store: failed to ping redis: %w", err)
	}

	return &Store{db: db, redis: rdb}, nil
}

// NewWithClients builds a Store from already-constructed clients, bypassing
// New's dial/ping step. The httpapi tests call it with nil clients to
// exercise handler branches that never reach either backing store.
func NewWithClients(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, redis: rdb}
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	return s.redis.Close()
}

// InitSchema creates the grids table.
func (s *Store) InitSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS grids (
			id VARCHAR(36) PRIMARY KEY,
			snapshot JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// SaveGrid persists g under a newly generated id, returning that id.
func (s *Store) SaveGrid(g *grid.Grid) (string, error) {
	id := uuid.New().String()
	payload, err := json.Marshal(g.Snapshot())
	if err != nil {
		return "", fmt.Errorf("store: failed to marshal grid snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO grids (id, snapshot) VALUES ($1, $2)
	`, id, payload)
	if err != nil {
		return "", fmt.Errorf("store: failed to save grid: %w", err)
	}
	return id, nil
}

// LoadGrid reconstructs the grid saved under id. It returns (nil, nil) if no
// row with that id exists.
func (s *Store) LoadGrid(id string) (*grid.Grid, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT snapshot FROM grids WHERE id = $1`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to load grid %s: %w", id, err)
	}

	var snap grid.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("store: failed to unmarshal grid snapshot: %w", err)
	}
	return grid.FromSnapshot(snap), nil
}

// patternKey builds the Redis key under which a pattern's match set is
// cached, scoped by generation so a dictionary rebuilt with different words
// never serves stale results under the same pattern string.
func patternKey(pattern string, generation int) string {
	return fmt.Sprintf("pattern:%d:%s", generation, pattern)
}

// CachePattern stores the words matching pattern under the dictionary
// generation id, expiring after ttl.
func (s *Store) CachePattern(ctx context.Context, pattern string, generation int, words []string, ttl time.Duration) error {
	payload, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("store: failed to marshal pattern result: %w", err)
	}
	return s.redis.Set(ctx, patternKey(pattern, generation), payload, ttl).Err()
}

// CachedPattern returns the cached match set for pattern under generation,
// and whether it was present.
func (s *Store) CachedPattern(ctx context.Context, pattern string, generation int) ([]string, bool, error) {
	payload, err := s.redis.Get(ctx, patternKey(pattern, generation)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: failed to read cached pattern: %w", err)
	}
	var words []string
	if err := json.Unmarshal(payload, &words); err != nil {
		return nil, false, fmt.Errorf("store: failed to unmarshal cached pattern: %w", err)
	}
	return words, true, nil
}
