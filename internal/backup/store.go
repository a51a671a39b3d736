// Package backup stores tracker snapshots (exported armor payloads and full
// database dumps) outside the live SQLite file. Three drivers are provided:
// an in-memory store for tests, a local directory, and an S3-compatible
// bucket for off-machine copies.
package backup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Driver identifies a snapshot storage backend.
type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
)

// Info describes one stored snapshot.
type Info struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store is the snapshot storage interface. Keys are relative slash-separated
// paths; writing an existing key replaces it.
type Store interface {
	Driver() Driver
	Put(ctx context.Context, key string, data []byte) (Info, error)
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Delete(ctx context.Context, key string) error
}

// SnapshotKey builds the timestamped object key used for automatic snapshot
// names, e.g. "snapshots/20260831T120000Z-armors.json".
func SnapshotKey(kind string, now time.Time) string {
	return fmt.Sprintf("snapshots/%s-%s.json", now.UTC().Format("20060102T150405Z"), kind)
}

// sanitizeKey rejects empty keys, absolute paths and traversal so filesystem
// drivers cannot be walked out of their root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty snapshot key")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("absolute snapshot key %q", key)
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("snapshot key %q escapes the root", key)
	}
	return clean, nil
}
