package controllers

import (
	"net/http"

	"travelthreads/app/services"
)

// SearchController serves search results
type SearchController struct {
	searches *services.SearchService
}

func NewSearchController(searches *services.SearchService) *SearchController {
	return &SearchController{searches: searches}
}

// Search ranks posts and replies for q, optionally refined by chip
func (sc *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sendJSON(w, sc.searches.Search(q.Get("q"), q.Get("chip")))
}
