package routes

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelthreads/app/controllers"
	"travelthreads/app/middleware"
	"travelthreads/app/services"
)

// SetupRoutes wires the JSON API and the metrics endpoint.
func SetupRoutes(threads *services.ThreadService, searches *services.SearchService, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Recoverer(logger), middleware.Logger(logger), middleware.Metrics, middleware.ContentTypeJSON)

	tc := controllers.NewThreadController(threads)
	sc := controllers.NewSearchController(searches)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", tc.Index).Methods(http.MethodGet)
	api.HandleFunc("/posts", tc.Create).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId}", tc.Show).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId}/like", tc.ToggleLike).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId}/replies", tc.Reply).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId}/replies/{replyId}/replies", tc.ReplyToReply).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId}/replies/{replyId}/collapse", tc.ToggleCollapse).Methods(http.MethodPost)
	api.HandleFunc("/search", sc.Search).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}
