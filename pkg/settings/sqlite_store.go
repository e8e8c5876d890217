package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type SqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{db: db}
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := "SELECT value FROM settings WHERE key = ?"

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		err := fmt.Errorf("could not read settings key %s: %w", key, err)
		log.Error(err)
		return nil, err
	}
	return value, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().Unix())
	if err != nil {
		err := fmt.Errorf("could not write settings key %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
