package domain

import (
	"context"
	"fmt"
)

// Match is a single matching line accepted into a search's result list.
// Seq is 1-based and scoped to the whole search, not to the file.
type Match struct {
	Seq  int
	Path string
	Line string
}

// Render formats the match the way it is shown to users.
func (m Match) Render() string {
	return fmt.Sprintf("[%d] Found data: %s", m.Seq, m.Line)
}

// LineMatcher scans one file for a literal substring.
// seq is the last sequence number already handed out; next is the last one
// assigned by this call (equal to seq when nothing matched).
type LineMatcher interface {
	Match(ctx context.Context, path, query string, seq int) (records []Match, next int, err error)
}

// Searcher runs a bounded search and returns the rendered result batch.
type Searcher interface {
	Search(ctx context.Context, query string) []string
}

// FolderSizer reports the total size in bytes of every file under the root.
type FolderSizer interface {
	FolderSize(ctx context.Context) uint64
}
