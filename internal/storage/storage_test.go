package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(t.TempDir(), "http://localhost:1816", "test-secret")
}

func TestSignUpload(t *testing.T) {
	s := newTestStore(t)

	signed, err := s.SignUpload("foto.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(signed.Path, ".png"))
	assert.Contains(t, signed.SignedURL, "/api/uploads/"+signed.Path+"?token=")
	assert.Equal(t, "http://localhost:1816/public/images/"+signed.Path, signed.PublicURL)
	assert.True(t, s.VerifyToken(signed.Path, signed.Token))
}

func TestSignUploadRejectsUnsupportedType(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SignUpload("virus.exe", "application/octet-stream")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSignUploadDefaultsExtension(t *testing.T) {
	s := newTestStore(t)
	signed, err := s.SignUpload("sinextension", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(signed.Path, ".jpg"))
}

func TestVerifyToken(t *testing.T) {
	s := newTestStore(t)
	signed, err := s.SignUpload("foto.jpg", "image/jpeg")
	require.NoError(t, err)

	// Token is bound to the object path.
	assert.False(t, s.VerifyToken("otro.jpg", signed.Token))
	assert.False(t, s.VerifyToken(signed.Path, "garbage"))
	assert.False(t, s.VerifyToken(signed.Path, "123.deadbeef"))

	expired := s.signToken(signed.Path, time.Now().Add(-time.Minute))
	assert.False(t, s.VerifyToken(signed.Path, expired))

	other := NewLocalStore(s.root, s.baseURL, "other-secret")
	assert.False(t, other.VerifyToken(signed.Path, signed.Token))
}

func TestPutAndRemove(t *testing.T) {
	s := newTestStore(t)
	signed, err := s.SignUpload("foto.webp", "image/webp")
	require.NoError(t, err)

	require.NoError(t, s.Put(signed.Path, signed.Token, strings.NewReader("imagen")))

	data, err := os.ReadFile(filepath.Join(s.root, signed.Path))
	require.NoError(t, err)
	assert.Equal(t, "imagen", string(data))

	require.NoError(t, s.Remove(signed.Path))
	_, err = os.Stat(filepath.Join(s.root, signed.Path))
	assert.True(t, os.IsNotExist(err))
}

func TestPutRejectsBadToken(t *testing.T) {
	s := newTestStore(t)
	err := s.Put("foto.jpg", "bogus", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestTraversalRejected(t *testing.T) {
	s := newTestStore(t)
	for _, p := range []string{"../escape.jpg", "/etc/passwd", "a/../../b.jpg", ""} {
		err := s.Remove(p)
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}
