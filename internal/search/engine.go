// Package search implements the bounded, directory-scoped search engine.
package search

import (
	"context"
	"io"
	"log"
	"time"

	"textsearch/internal/domain"
	"textsearch/internal/walk"
)

// Defaults used when Config leaves a field unset.
const (
	DefaultExt        = ".txt"
	DefaultMaxResults = 10
	DefaultTruncated  = "Only the first 10 results are shown for now; follow the link for more."
	DefaultNoResults  = "No data found."
)

// Config configures an Engine. MaxFiles and Timeout of zero disable the
// corresponding budget.
type Config struct {
	Root       string
	Ext        string
	MaxResults int
	MaxFiles   int
	Timeout    time.Duration
	Truncated  string
	NoResults  string
}

type state int

const (
	stateScanning state = iota
	stateCapped
	stateExhausted
)

func (s state) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateCapped:
		return "capped"
	case stateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Engine searches the files under a root for a literal substring and returns
// at most MaxResults rendered matches. It holds no per-call state.
type Engine struct {
	cfg     Config
	matcher domain.LineMatcher
	logger  *log.Logger
}

// New creates an engine. Unset Config fields take the package defaults.
func New(cfg Config, m domain.LineMatcher, logger *log.Logger) *Engine {
	if cfg.Ext == "" {
		cfg.Ext = DefaultExt
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Truncated == "" {
		cfg.Truncated = DefaultTruncated
	}
	if cfg.NoResults == "" {
		cfg.NoResults = DefaultNoResults
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{cfg: cfg, matcher: m, logger: logger}
}

// Search never fails: per-file errors are logged and the affected file
// contributes whatever it matched before the failure. The result is the
// rendered matches, followed by the truncation notice when the cap was hit,
// or the single no-results sentinel when nothing matched.
func (e *Engine) Search(ctx context.Context, query string) []string {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	acc := newAccumulator(e.cfg.MaxResults)
	st := stateScanning
	scanned := 0
	for path := range walk.Files(ctx, e.cfg.Root, walk.Filter{Ext: e.cfg.Ext}, e.logger) {
		if e.cfg.MaxFiles > 0 && scanned >= e.cfg.MaxFiles {
			e.logger.Printf("search: file budget of %d reached, stopping", e.cfg.MaxFiles)
			st = stateExhausted
			break
		}
		scanned++
		records, next, err := e.matcher.Match(ctx, path, query, acc.seq)
		if err != nil {
			e.logger.Printf("search: error processing file: %v", err)
		}
		acc.add(records, next)
		if acc.full() {
			st = stateCapped
			break
		}
		if ctx.Err() != nil {
			e.logger.Printf("search: stopping after %d files: %v", scanned, ctx.Err())
			st = stateExhausted
			break
		}
	}
	if st == stateScanning {
		st = stateExhausted
	}
	e.logger.Printf("search: %q %s after %d files with %d matches", query, st, scanned, len(acc.records))

	var out []string
	switch st {
	case stateCapped:
		acc.truncate()
		out = append(acc.render(), e.cfg.Truncated)
	default:
		out = acc.render()
		if len(out) == 0 {
			out = append(out, e.cfg.NoResults)
		}
	}
	return out
}
