// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential stores the admin bearer token at rest. The token
// is sealed with age to an x25519 identity generated on first login;
// both live under the configured credentials directory with 0600
// permissions. The CAREWELL_TOKEN environment variable bypasses the
// store entirely, which CI and the mock-server integration tests rely
// on.
package credential

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
)

const (
	identityFile = "identity.txt"
	tokenFile    = "token.age"
)

// EnvToken is the environment variable that overrides the sealed
// store when set.
const EnvToken = "CAREWELL_TOKEN"

// ErrNoToken is returned when no token has been saved and the
// environment provides none.
var ErrNoToken = errors.New("not logged in")

// Store seals and unseals the bearer token under one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SaveToken seals the token to the store's identity, generating the
// identity on first use. Overwrites any previously saved token.
func (store *Store) SaveToken(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to save an empty token")
	}
	if err := os.MkdirAll(store.dir, 0700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	identity, err := store.loadOrGenerateIdentity()
	if err != nil {
		return err
	}

	var sealed bytes.Buffer
	writer, err := age.Encrypt(&sealed, identity.Recipient())
	if err != nil {
		return fmt.Errorf("sealing token: %w", err)
	}
	if _, err := io.WriteString(writer, token); err != nil {
		return fmt.Errorf("sealing token: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("sealing token: %w", err)
	}

	path := filepath.Join(store.dir, tokenFile)
	if err := os.WriteFile(path, sealed.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Token unseals and returns the saved token. Returns [ErrNoToken]
// when nothing has been saved.
func (store *Store) Token() (string, error) {
	sealed, err := os.ReadFile(filepath.Join(store.dir, tokenFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("reading sealed token: %w", err)
	}

	identity, err := store.loadIdentity()
	if err != nil {
		return "", err
	}

	reader, err := age.Decrypt(bytes.NewReader(sealed), identity)
	if err != nil {
		return "", fmt.Errorf("unsealing token: %w", err)
	}
	token, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("unsealing token: %w", err)
	}
	return string(token), nil
}

// HasToken reports whether a sealed token exists on disk.
func (store *Store) HasToken() bool {
	_, err := os.Stat(filepath.Join(store.dir, tokenFile))
	return err == nil
}

// Clear removes the sealed token. The identity stays so a later login
// reuses it. Idempotent.
func (store *Store) Clear() error {
	err := os.Remove(filepath.Join(store.dir, tokenFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing sealed token: %w", err)
	}
	return nil
}

func (store *Store) loadIdentity() (*age.X25519Identity, error) {
	path := filepath.Join(store.dir, identityFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading identity: %w", err)
	}
	identity, err := age.ParseX25519Identity(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing identity at %s: %w", path, err)
	}
	return identity, nil
}

func (store *Store) loadOrGenerateIdentity() (*age.X25519Identity, error) {
	identity, err := store.loadIdentity()
	if err == nil {
		return identity, nil
	}
	identity, err = age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity: %w", err)
	}
	path := filepath.Join(store.dir, identityFile)
	if err := os.WriteFile(path, []byte(identity.String()+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("writing identity: %w", err)
	}
	return identity, nil
}

// Source adapts a store to the client's token interface. The
// environment override wins; a store miss or unseal failure yields an
// empty token so requests go out unauthenticated and the server's 401
// drives the login prompt.
type Source struct {
	Store *Store
}

// Token implements the token lookup used on every request.
func (source Source) Token() string {
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	if source.Store == nil {
		return ""
	}
	token, err := source.Store.Token()
	if err != nil {
		return ""
	}
	return token
}
