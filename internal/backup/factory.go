package backup

import (
	"context"
	"fmt"
)

// Options selects and configures a snapshot driver.
type Options struct {
	Driver Driver
	Dir    string // filesystem driver root
	S3     S3Config
}

// Open constructs the snapshot store named by opts.Driver. An empty driver
// disables backups; callers get a nil store and should skip snapshot writes.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "":
		return nil, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFilesystem:
		return NewFSStore(opts.Dir)
	case DriverS3:
		return NewS3Store(ctx, opts.S3)
	}
	return nil, fmt.Errorf("unknown backup driver %q", opts.Driver)
}
