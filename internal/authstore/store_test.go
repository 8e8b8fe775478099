package authstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexterm/internal/api"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	os.Setenv(BaseDirEnv, dir)
	t.Cleanup(func() { os.Unsetenv(BaseDirEnv) })

	s, err := NewStore()
	require.NoError(t, err)
	return s
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	sess, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sess.Token)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := api.Session{
		Token: "tok-123",
		User:  api.User{ID: "u1", Email: "ada@example.com", Name: "Ada"},
	}
	require.NoError(t, s.Save(in))

	out, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)

	// Session file must not be world-readable.
	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_EmptyTokenTreatedAsAbsent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(api.Session{User: api.User{Email: "x@example.com"}}))

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.baseDir, 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o600))

	_, _, err := s.Load()
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(api.Session{Token: "tok"}))
	require.NoError(t, s.Clear())

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing twice is a no-op.
	require.NoError(t, s.Clear())
}
