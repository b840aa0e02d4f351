package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/bankingapplication/bank-ui/internal/domain/auth"
	"github.com/bankingapplication/bank-ui/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID: id,
		Identity: domainauth.Identity{
			Username: "john.doe",
			Email:    "john.doe@example.com",
			Roles:    []string{"USER"},
		},
		Tokens: domainauth.TokenPair{
			AccessToken:  "access-token-value",
			RefreshToken: "refresh-token-value",
		},
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	session := testSession("test-session-1")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Identity, retrieved.Identity)
	assert.Equal(t, session.Tokens, retrieved.Tokens)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	err := store.Save(ctx, testSession("test-session-delete"))
	require.NoError(t, err)

	_, err = store.Get(ctx, "test-session-delete")
	require.NoError(t, err)

	err = store.Delete(ctx, "test-session-delete")
	require.NoError(t, err)

	_, err = store.Get(ctx, "test-session-delete")
	assert.Equal(t, ErrNotFound, err)

	// All three keys must be gone, not just some.
	exists := client.Exists(ctx,
		"bankui:session:test-session-delete:identity",
		"bankui:session:test-session-delete:access_token",
		"bankui:session:test-session-delete:refresh_token",
	).Val()
	assert.Equal(t, int64(0), exists)
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 100*time.Millisecond)
	ctx := context.Background()

	err := store.Save(ctx, testSession("test-session-ttl"))
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = store.Get(ctx, "test-session-ttl")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_CorruptIdentityIsFailClosed(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	err := store.Save(ctx, testSession("corrupt-session"))
	require.NoError(t, err)

	// Corrupt the identity fragment behind the store's back.
	err = client.Set(ctx, "bankui:session:corrupt-session:identity", "{not-json", 30*time.Minute).Err()
	require.NoError(t, err)

	_, err = store.Get(ctx, "corrupt-session")
	assert.Equal(t, ErrNotFound, err)

	// The cleanup must have removed the token fragments too.
	exists := client.Exists(ctx, "bankui:session:corrupt-session:access_token").Val()
	assert.Equal(t, int64(0), exists)
}

func TestSessionStore_MissingTokenIsFailClosed(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	err := store.Save(ctx, testSession("tokenless-session"))
	require.NoError(t, err)

	err = client.Del(ctx, "bankui:session:tokenless-session:access_token").Err()
	require.NoError(t, err)

	_, err = store.Get(ctx, "tokenless-session")
	assert.Equal(t, ErrNotFound, err)

	exists := client.Exists(ctx, "bankui:session:tokenless-session:identity").Val()
	assert.Equal(t, int64(0), exists)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, 30*time.Minute, "test-prefix:")
	ctx := context.Background()

	session := testSession("prefix-test")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	exists := client.Exists(ctx, "test-prefix:prefix-test:identity").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	session := testSession("")

	err := store.Save(ctx, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestSessionStore_SaveWithoutAccessToken(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	session := testSession("no-token")
	session.Tokens = domainauth.TokenPair{}

	err := store.Save(ctx, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no access token")
}

func TestSessionStore_GetEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.Equal(t, ErrNotFound, err)
}
