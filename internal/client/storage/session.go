package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tasknotes/internal/common"
	"github.com/dmitrijs2005/tasknotes/internal/dbx"
)

const usernameKey = "username"

// SessionStore keeps the login session: the bearer token under
// common.TokenStorageKey and the user name next to it.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Token returns the stored bearer token, "" when there is none.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Username returns the stored user name, "" when there is none.
func (s *SessionStore) Username(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, usernameKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save stores token and username in a single transaction.
func (s *SessionStore) Save(ctx context.Context, username, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, usernameKey, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenStorageKey, []byte(token))
	})
}

// Clear removes the session.
func (s *SessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, usernameKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.TokenStorageKey)
	})
}
