// Package size sums the on-disk size of a directory tree.
package size

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"textsearch/internal/walk"
)

const bytesPerGB = 1 << 30

// Folder returns the total size in bytes of every regular file under root.
// Files whose metadata cannot be read count as zero bytes. The whole tree is
// swept on every call.
func Folder(ctx context.Context, root string, logger *log.Logger) uint64 {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var total uint64
	for path := range walk.Files(ctx, root, walk.Filter{}, logger) {
		info, err := os.Lstat(path)
		if err != nil {
			logger.Printf("size: stat %s: %v", path, err)
			continue
		}
		if n := info.Size(); n > 0 {
			total += uint64(n)
		}
	}
	return total
}

// Aggregator binds Folder to a fixed root.
type Aggregator struct {
	root   string
	logger *log.Logger
}

// NewAggregator returns an Aggregator rooted at root.
func NewAggregator(root string, logger *log.Logger) *Aggregator {
	return &Aggregator{root: root, logger: logger}
}

// FolderSize implements domain.FolderSizer.
func (a *Aggregator) FolderSize(ctx context.Context) uint64 {
	return Folder(ctx, a.root, a.logger)
}

// FormatGB renders n in gibibytes with two decimals, always labelled "GB".
func FormatGB(n uint64) string {
	return fmt.Sprintf("%.2f GB", float64(n)/bytesPerGB)
}
