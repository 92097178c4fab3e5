package search

import "textsearch/internal/domain"

// accumulator holds the ordered results and running sequence number of one
// search call. Only the engine goroutine running that call writes to it.
type accumulator struct {
	cap     int
	seq     int
	records []domain.Match
}

func newAccumulator(limit int) *accumulator {
	return &accumulator{cap: limit, records: make([]domain.Match, 0, limit)}
}

// add appends one file's records and advances the counter to next.
func (a *accumulator) add(records []domain.Match, next int) {
	a.records = append(a.records, records...)
	if next > a.seq {
		a.seq = next
	}
}

func (a *accumulator) full() bool { return len(a.records) >= a.cap }

// truncate drops everything past the cap.
func (a *accumulator) truncate() {
	if len(a.records) > a.cap {
		a.records = a.records[:a.cap]
	}
}

func (a *accumulator) render() []string {
	out := make([]string, 0, len(a.records)+1)
	for _, r := range a.records {
		out = append(out, r.Render())
	}
	return out
}
