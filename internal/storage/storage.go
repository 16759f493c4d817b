package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

// ErrInvalidPath rejects object paths that escape the store root.
var ErrInvalidPath = errors.New("invalid object path")

// ErrUnsupportedType rejects uploads outside the allowed image types.
var ErrUnsupportedType = errors.New("unsupported content type")

const uploadTokenTTL = 15 * time.Minute

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// LocalStore keeps product images on local disk and hands out signed
// one-shot upload URLs, mirroring the hosted object store it replaces:
// sign-upload, upload, public URL, delete-by-path.
type LocalStore struct {
	root    string
	baseURL string
	secret  string
}

func NewLocalStore(root, baseURL, secret string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/"), secret: secret}
}

// SignedUpload is the contract returned to the admin UI.
type SignedUpload struct {
	SignedURL string `json:"signedUrl"`
	Token     string `json:"token"`
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
}

// SignUpload validates the content type, allocates a unique object
// path and returns a signed PUT URL valid for 15 minutes.
func (s *LocalStore) SignUpload(filename, contentType string) (*SignedUpload, error) {
	if contentType != "" && !allowedTypes[contentType] {
		return nil, ErrUnsupportedType
	}
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	objectPath := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), common.RandomHex(6), ext)
	token := s.signToken(objectPath, time.Now().Add(uploadTokenTTL))
	return &SignedUpload{
		SignedURL: fmt.Sprintf("%s/api/uploads/%s?token=%s", s.baseURL, objectPath, token),
		Token:     token,
		Path:      objectPath,
		PublicURL: s.PublicURL(objectPath),
	}, nil
}

// PublicURL returns the browse URL for a stored object.
func (s *LocalStore) PublicURL(objectPath string) string {
	return s.baseURL + "/public/images/" + objectPath
}

// Put writes an uploaded object after verifying its signed token.
func (s *LocalStore) Put(objectPath, token string, r io.Reader) error {
	if !s.VerifyToken(objectPath, token) {
		return ErrInvalidPath
	}
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

// Remove deletes an object by path.
func (s *LocalStore) Remove(objectPath string) error {
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// VerifyToken checks an upload token for path match and expiry.
// Failures are indistinguishable from each other.
func (s *LocalStore) VerifyToken(objectPath, token string) bool {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return false
	}
	exp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return false
	}
	want := s.mac(objectPath, exp)
	got, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}

func (s *LocalStore) signToken(objectPath string, expiry time.Time) string {
	exp := expiry.Unix()
	return fmt.Sprintf("%d.%s", exp, hex.EncodeToString(s.mac(objectPath, exp)))
}

func (s *LocalStore) mac(objectPath string, exp int64) []byte {
	h := hmac.New(sha256.New, []byte(s.secret))
	fmt.Fprintf(h, "%s.%d", objectPath, exp)
	return h.Sum(nil)
}

// resolve maps an object path onto the store root, rejecting
// traversal attempts.
func (s *LocalStore) resolve(objectPath string) (string, error) {
	if objectPath == "" || strings.Contains(objectPath, "..") || strings.HasPrefix(objectPath, "/") {
		return "", ErrInvalidPath
	}
	full := filepath.Join(s.root, filepath.FromSlash(objectPath))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", ErrInvalidPath
	}
	return full, nil
}
