package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelthreads/app/ids"
	"travelthreads/app/logging"
	"travelthreads/app/models"
	"travelthreads/app/repositories/mock"
	"travelthreads/app/seed"
	"travelthreads/app/services"
	"travelthreads/app/thread"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcomeResponse struct {
	Applied  bool             `json:"applied"`
	Mutation *models.Mutation `json:"mutation"`
}

func setupThreadService(t *testing.T) (*services.ThreadService, *mock.MutationRepository) {
	t.Helper()
	journal := mock.NewMutationRepository()
	m := thread.NewMutator(thread.WithIDs(ids.NewCounter("n")))
	svc := services.NewThreadService(seed.Default(), m, journal, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
	return svc, journal
}

func setupRouter(controller *ThreadController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/posts", controller.Index).Methods("GET")
	router.HandleFunc("/api/posts", controller.Create).Methods("POST")
	router.HandleFunc("/api/posts/{postId}", controller.Show).Methods("GET")
	router.HandleFunc("/api/posts/{postId}/like", controller.ToggleLike).Methods("POST")
	router.HandleFunc("/api/posts/{postId}/replies", controller.Reply).Methods("POST")
	router.HandleFunc("/api/posts/{postId}/replies/{replyId}/replies", controller.ReplyToReply).Methods("POST")
	router.HandleFunc("/api/posts/{postId}/replies/{replyId}/collapse", controller.ToggleCollapse).Methods("POST")
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeOutcome(t *testing.T, w *httptest.ResponseRecorder) outcomeResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out outcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestThreadController(t *testing.T) {
	svc, journal := setupThreadService(t)
	router := setupRouter(NewThreadController(svc))

	t.Run("list posts", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/posts", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var res struct {
			Posts []*models.Post `json:"posts"`
			Count int            `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 5, res.Count)
		assert.Equal(t, "post-bali", res.Posts[0].ID)
	})

	t.Run("filter posts", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/posts?filter=TOKYO", "")
		var res struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 1, res.Count)
	})

	t.Run("create post", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts", `{"text":"Грузия: нужен ли паспорт?"}`))
		assert.True(t, out.Applied)
		require.NotNil(t, out.Mutation)
		assert.Equal(t, models.MutationAddPost, out.Mutation.Kind)
		assert.Equal(t, 1, out.Mutation.Seq)
		assert.Equal(t, "Грузия: нужен ли паспорт?", svc.Snapshot().Posts()[0].Text)
	})

	t.Run("blank post is a no-op", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts", `{"text":"   "}`))
		assert.False(t, out.Applied)
		assert.Nil(t, out.Mutation)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/posts", `{"text":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid JSON")
	})

	t.Run("reply to post and reply", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts/post-tokyo/replies", `{"text":"а Pasmo?"}`))
		require.True(t, out.Applied)
		replyID := out.Mutation.NodeID

		out = decodeOutcome(t, do(router, http.MethodPost, "/api/posts/post-tokyo/replies/"+replyID+"/replies", `{"text":"тоже работает"}`))
		require.True(t, out.Applied)
		assert.Equal(t, replyID, out.Mutation.TargetID)

		r, ok := svc.Snapshot().Reply("post-tokyo", replyID)
		require.True(t, ok)
		assert.Len(t, r.Replies, 1)
	})

	t.Run("reply to missing post", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts/nope/replies", `{"text":"hi"}`))
		assert.False(t, out.Applied)
	})

	t.Run("collapse", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts/post-bali/replies/reply-bali-1/collapse", ""))
		require.True(t, out.Applied)
		assert.True(t, out.Mutation.Collapsed)

		w := do(router, http.MethodGet, "/api/posts/post-bali", "")
		require.Equal(t, http.StatusOK, w.Code)
		var res struct {
			Replies int            `json:"replies"`
			Visible []VisibleReply `json:"visible"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Replies)
		require.Len(t, res.Visible, 1, "children of a collapsed reply are hidden")
		assert.True(t, res.Visible[0].Collapsed)
		assert.Equal(t, 1, res.Visible[0].Children)
	})

	t.Run("like", func(t *testing.T) {
		out := decodeOutcome(t, do(router, http.MethodPost, "/api/posts/post-tokyo/like", ""))
		require.True(t, out.Applied)
		assert.True(t, out.Mutation.Liked)
		assert.Equal(t, 32, out.Mutation.Likes)
	})

	t.Run("show missing post", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/posts/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("every applied change is journaled", func(t *testing.T) {
		assert.Equal(t, 5, journal.Len())
	})
}

func TestThreadControllerStoppedService(t *testing.T) {
	svc := services.NewThreadService(seed.Default(), nil, nil, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	router := setupRouter(NewThreadController(svc))
	w := do(router, http.MethodPost, "/api/posts", `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodGet, "/api/posts", "")
	assert.Equal(t, http.StatusOK, w.Code, "reads keep working")
}
