// Package sealer encrypts history records at rest with NaCl secretbox.
package sealer

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

const (
	KeySize   = 32
	nonceSize = 24
)

// ErrOpen is returned when a sealed payload fails authentication.
var ErrOpen = errors.New("sealed payload cannot be opened with this key")

type SecretBox struct {
	key   [KeySize]byte
	nonce io.Reader
}

var _ ports.Sealer = (*SecretBox)(nil)

func New(key [KeySize]byte) *SecretBox {
	return &SecretBox{key: key, nonce: rand.Reader}
}

// LoadOrCreateKey reads a hex-encoded key from path. A missing file is
// created with a fresh random key, readable only by the owner.
func LoadOrCreateKey(path string) (*SecretBox, error) {
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return parseKey(path, b)
	case !errors.Is(err, os.ErrNotExist):
		return nil, &domain.OpError{Op: "sealer.readkey", Kind: domain.KindExecution, Path: path, Err: err}
	}

	var key [KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, &domain.OpError{Op: "sealer.genkey", Kind: domain.KindExecution, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, &domain.OpError{Op: "sealer.mkdir", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key[:])+"\n"), 0o600); err != nil {
		return nil, &domain.OpError{Op: "sealer.writekey", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return New(key), nil
}

func parseKey(path string, b []byte) (*SecretBox, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(string(b)))
	if err == nil && len(raw) != KeySize {
		err = fmt.Errorf("key is %d bytes, want %d", len(raw), KeySize)
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sealer.parsekey",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
		}
	}

	var key [KeySize]byte
	copy(key[:], raw)
	return New(key), nil
}

// Seal returns nonce || box.
func (s *SecretBox) Seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(s.nonce, nonce[:]); err != nil {
		return nil, &domain.OpError{Op: "sealer.seal", Kind: domain.KindExecution, Err: err}
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &s.key), nil
}

func (s *SecretBox) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, &domain.OpError{
			Op:   "sealer.open",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("payload too short (%d bytes): %w", len(sealed), ErrOpen),
		}
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, &domain.OpError{Op: "sealer.open", Kind: domain.KindExecution, Err: ErrOpen}
	}
	return plain, nil
}
