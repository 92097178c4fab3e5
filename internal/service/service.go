package service

import (
	"context"

	"textsearch/internal/domain"
	"textsearch/internal/size"
)

// Page is everything a front-end needs to render one response.
type Page struct {
	Query      string
	Results    []string
	FolderSize string
	// Bytes is the raw folder size behind FolderSize.
	Bytes uint64
}

// Service combines the search engine with the folder size sweep. Each call
// recomputes everything; nothing is cached between calls.
type Service struct {
	searcher domain.Searcher
	sizer    domain.FolderSizer
}

func New(searcher domain.Searcher, sizer domain.FolderSizer) *Service {
	return &Service{searcher: searcher, sizer: sizer}
}

// Index returns the landing page: folder size only, no results.
func (s *Service) Index(ctx context.Context) Page {
	n := s.sizer.FolderSize(ctx)
	return Page{Results: []string{}, FolderSize: size.FormatGB(n), Bytes: n}
}

// Search runs query and returns its results with the current folder size.
func (s *Service) Search(ctx context.Context, query string) Page {
	results := s.searcher.Search(ctx, query)
	n := s.sizer.FolderSize(ctx)
	return Page{Query: query, Results: results, FolderSize: size.FormatGB(n), Bytes: n}
}
