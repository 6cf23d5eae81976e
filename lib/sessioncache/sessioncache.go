// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package sessioncache persists the dashboard's last known
// collections between runs so the next launch paints real data
// immediately while the live fetch runs behind it. Snapshots are
// deterministic CBOR, zstd-compressed, with a blake3 digest over the
// compressed payload. Any corruption — truncated file, flipped bit,
// unknown format version — reads as a plain cache miss, never an
// error the user sees.
package sessioncache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/carewell-health/carewell/lib/codec"
)

// ErrMiss is returned when no usable snapshot exists: nothing was
// ever saved, the format is unknown, or the digest check failed.
var ErrMiss = errors.New("no usable snapshot")

// magic identifies the snapshot format. Bump the trailing digit on
// incompatible changes; old files then read as misses.
var magic = []byte("CWSNAP1\n")

const digestSize = 32

type envelope struct {
	SavedAt int64            `cbor:"savedAt"`
	Payload codec.RawMessage `cbor:"payload"`
}

// Cache reads and writes snapshots under one directory, one file per
// named collection.
type Cache struct {
	dir string
}

// New returns a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Save snapshots v under name. The write is atomic: a temp file is
// renamed into place so a crash mid-write leaves the previous
// snapshot intact.
func (cache *Cache) Save(name string, v any) error {
	payload, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", name, err)
	}
	sealed, err := codec.Marshal(envelope{
		SavedAt: time.Now().Unix(),
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", name, err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("initializing compressor: %w", err)
	}
	compressed := encoder.EncodeAll(sealed, nil)
	encoder.Close()

	digest := blake3.Sum256(compressed)

	var file bytes.Buffer
	file.Write(magic)
	file.Write(digest[:])
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(compressed)))
	file.Write(length[:])
	file.Write(compressed)

	if err := os.MkdirAll(cache.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	path := cache.path(name)
	temp := path + ".tmp"
	if err := os.WriteFile(temp, file.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}
	if err := os.Rename(temp, path); err != nil {
		return fmt.Errorf("committing snapshot %s: %w", name, err)
	}
	return nil
}

// Load reads the snapshot saved under name into v and returns its
// save time. Returns [ErrMiss] when no usable snapshot exists.
func (cache *Cache) Load(name string, v any) (time.Time, error) {
	data, err := os.ReadFile(cache.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, ErrMiss
		}
		return time.Time{}, fmt.Errorf("reading snapshot %s: %w", name, err)
	}

	if len(data) < len(magic)+digestSize+8 || !bytes.Equal(data[:len(magic)], magic) {
		return time.Time{}, ErrMiss
	}
	data = data[len(magic):]
	var digest [digestSize]byte
	copy(digest[:], data[:digestSize])
	data = data[digestSize:]
	length := binary.BigEndian.Uint64(data[:8])
	data = data[8:]
	if uint64(len(data)) != length {
		return time.Time{}, ErrMiss
	}
	if blake3.Sum256(data) != digest {
		return time.Time{}, ErrMiss
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("initializing decompressor: %w", err)
	}
	defer decoder.Close()
	sealed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return time.Time{}, ErrMiss
	}

	var outer envelope
	if err := codec.Unmarshal(sealed, &outer); err != nil {
		return time.Time{}, ErrMiss
	}
	if err := codec.Unmarshal(outer.Payload, v); err != nil {
		return time.Time{}, ErrMiss
	}
	return time.Unix(outer.SavedAt, 0), nil
}

// LoadWithin is [Cache.Load] with a freshness bound: snapshots older
// than maxAge read as misses.
func (cache *Cache) LoadWithin(name string, maxAge time.Duration, v any) (time.Time, error) {
	savedAt, err := cache.Load(name, v)
	if err != nil {
		return time.Time{}, err
	}
	if time.Since(savedAt) > maxAge {
		return time.Time{}, ErrMiss
	}
	return savedAt, nil
}

// Invalidate removes the snapshot saved under name. Idempotent.
func (cache *Cache) Invalidate(name string) error {
	err := os.Remove(cache.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing snapshot %s: %w", name, err)
	}
	return nil
}

func (cache *Cache) path(name string) string {
	return filepath.Join(cache.dir, name+".snap")
}
