package matcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"textsearch/internal/domain"
)

// DefaultPerFileCap is the number of matches after which a file scan stops.
const DefaultPerFileCap = 10

const maxLineBytes = 1024 * 1024

// ErrInvalidEncoding is returned when a line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("line is not valid UTF-8")

// Matcher scans a file line by line for a literal, case-sensitive substring.
type Matcher struct {
	perFileCap int
}

// New creates a matcher that accepts at most perFileCap matches per file.
func New(perFileCap int) *Matcher {
	if perFileCap <= 0 {
		perFileCap = DefaultPerFileCap
	}
	return &Matcher{perFileCap: perFileCap}
}

// Match implements domain.LineMatcher. Records collected before a read
// failure are returned together with the error.
func (m *Matcher) Match(ctx context.Context, path, query string, seq int) ([]domain.Match, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, seq, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []domain.Match
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return records, seq, err
		}
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return records, seq, fmt.Errorf("read %s: %w", path, ErrInvalidEncoding)
		}
		if !strings.Contains(line, query) {
			continue
		}
		seq++
		records = append(records, domain.Match{Seq: seq, Path: path, Line: line})
		if len(records) == m.perFileCap {
			return records, seq, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return records, seq, fmt.Errorf("read %s: %w", path, err)
	}
	return records, seq, nil
}
