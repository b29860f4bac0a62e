package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessionSigner("secret", time.Hour)
	token, err := s.Issue(7, "alice")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "7", claims.Subject)
}

func TestSessionRejectsTampering(t *testing.T) {
	s := NewSessionSigner("secret", time.Hour)
	token, err := s.Issue(7, "alice")
	require.NoError(t, err)

	other := NewSessionSigner("other-secret", time.Hour)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = s.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionExpires(t *testing.T) {
	s := NewSessionSigner("secret", time.Hour)
	issued := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }
	token, err := s.Issue(7, "alice")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSessionRejectsMissingUser(t *testing.T) {
	s := NewSessionSigner("secret", time.Hour)
	token, err := s.Issue(0, "ghost")
	require.NoError(t, err)
	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

type pose struct {
	Name string `json:"name"`
	Hold int    `json:"hold"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, "test:"), mr
}

func TestCacheSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "pose", pose{"Tree Pose", 30}, time.Minute))
	assert.True(t, mr.Exists("test:pose"))

	var got pose
	found, err := c.Get(ctx, "pose", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, pose{"Tree Pose", 30}, got)

	require.NoError(t, c.Delete(ctx, "pose"))
	found, err = c.Get(ctx, "pose", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheExpires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, c.Set(ctx, "pose", pose{"Crow Pose", 20}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got pose
	found, err := c.Get(ctx, "pose", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRememberLoadsOnce(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	calls := 0
	load := func() ([]pose, error) {
		calls++
		return []pose{{"Downward Dog", 60}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, "poses", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []pose{{"Downward Dog", 60}}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestRememberWithoutRedis(t *testing.T) {
	ctx := context.Background()
	var c *Cache
	calls := 0
	load := func() (int, error) { calls++; return 42, nil }

	for i := 0; i < 2; i++ {
		got, err := Remember(ctx, c, "answer", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	}
	assert.Equal(t, 2, calls, "disabled cache always loads")
}

func TestRememberSurvivesRedisOutage(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	mr.Close()

	got, err := Remember(ctx, c, "answer", time.Minute, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestRememberPropagatesLoadError(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	boom := errors.New("db down")

	_, err := Remember(ctx, c, "answer", time.Minute, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("test:answer"))
}
