package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_EmptyByDefault(t *testing.T) {
	s := NewSessionStore(openTestDB(t))
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	name, err := s.Username(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestSessionStore_SaveThenClear(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "alice", "abc123"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	name, err := s.Username(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	// the token lives under the fixed "token" key
	raw, err := NewSQLiteRepository(db).Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc123"), raw)

	require.NoError(t, s.Clear(ctx))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionStore_ClearKeepsOtherKeys(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStore(db)
	ctx := context.Background()

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "theme", []byte("dark")))
	require.NoError(t, s.Save(ctx, "bob", "t"))
	require.NoError(t, s.Clear(ctx))

	v, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), v)
}

func TestSessionStore_ReadFailure(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStore(db)
	require.NoError(t, db.Close())

	_, err := s.Token(context.Background())
	require.Error(t, err)
}
