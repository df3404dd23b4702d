package search

// Result is everything a search produces for one query.
type Result struct {
	Query   string   `json:"query"`
	Matches []Match  `json:"matches"`
	Chips   []string `json:"chips"`
	Summary string   `json:"summary"`
}

// Engine runs ranking, chip extraction and summarization with one keyword
// table. It holds no other state and is safe for concurrent use.
type Engine struct {
	table *Table
}

// NewEngine returns an engine using table, or the built-in table when nil.
func NewEngine(table *Table) *Engine {
	if table == nil {
		table = DefaultTable()
	}
	return &Engine{table: table}
}

// Table returns the keyword table in use.
func (e *Engine) Table() *Table {
	return e.table
}

// Search ranks docs against query and derives chips and a summary.
func (e *Engine) Search(query string, docs []Document) Result {
	matches := Rank(query, docs)
	return Result{
		Query:   query,
		Matches: matches,
		Chips:   ExtractChips(e.table, query, matches),
		Summary: Summarize(e.table, query, matches),
	}
}
