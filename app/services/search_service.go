package services

import (
	"travelthreads/app/metrics"
	"travelthreads/app/search"
	"travelthreads/app/thread"
)

// Snapshotter provides the tree to search.
type Snapshotter interface {
	Snapshot() thread.Tree
}

// SearchService runs the search engine over the current snapshot.
type SearchService struct {
	threads Snapshotter
	engine  *search.Engine
}

// NewSearchService creates a SearchService. A nil engine uses the built-in
// keyword table.
func NewSearchService(threads Snapshotter, engine *search.Engine) *SearchService {
	if engine == nil {
		engine = search.NewEngine(nil)
	}
	return &SearchService{threads: threads, engine: engine}
}

// Search ranks posts and replies against query, refined by chip when set.
func (s *SearchService) Search(query, chip string) search.Result {
	if chip != "" {
		query = search.RefineQuery(query, chip)
	}
	res := s.engine.Search(query, search.FromTree(s.threads.Snapshot()))

	metrics.Searches.Inc()
	metrics.SearchMatches.Observe(float64(len(res.Matches)))
	return res
}
