package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"travelthreads/app/models"
	"travelthreads/app/services"
	"travelthreads/app/thread"
)

// ThreadController handles HTTP requests for posts and replies
type ThreadController struct {
	threads *services.ThreadService
}

// NewThreadController creates a new ThreadController
func NewThreadController(threads *services.ThreadService) *ThreadController {
	return &ThreadController{threads: threads}
}

type textRequest struct {
	Text string `json:"text"`
}

// VisibleReply is a reply as listed in a thread view.
type VisibleReply struct {
	ID        string `json:"id"`
	Handle    string `json:"handle"`
	Time      string `json:"time"`
	Text      string `json:"text"`
	Collapsed bool   `json:"collapsed"`
	Children  int    `json:"children"`
	Depth     int    `json:"depth"`
}

// Index lists the posts matching the quick filter
func (tc *ThreadController) Index(w http.ResponseWriter, r *http.Request) {
	posts := thread.Filter(tc.threads.Snapshot(), r.URL.Query().Get("filter"))
	sendJSON(w, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// Show returns one post with its replies in display order
func (tc *ThreadController) Show(w http.ResponseWriter, r *http.Request) {
	post, ok := tc.threads.Snapshot().Post(mux.Vars(r)["postId"])
	if !ok {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	visible := lo.Map(thread.Visible(post), func(v thread.VisibleReply, _ int) VisibleReply {
		return VisibleReply{
			ID:        v.Reply.ID,
			Handle:    v.Reply.Handle,
			Time:      v.Reply.Time,
			Text:      v.Reply.Text,
			Collapsed: v.Reply.Collapsed,
			Children:  len(v.Reply.Replies),
			Depth:     v.Depth,
		}
	})
	sendJSON(w, map[string]interface{}{
		"post":    post,
		"replies": post.ReplyCount(),
		"visible": visible,
	})
}

// Create adds a post
func (tc *ThreadController) Create(w http.ResponseWriter, r *http.Request) {
	tc.submitText(w, r, func(text string) thread.Op {
		return thread.Op{Kind: models.MutationAddPost, Text: text}
	})
}

// Reply adds a reply to a post
func (tc *ThreadController) Reply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tc.submitText(w, r, func(text string) thread.Op {
		return thread.Op{Kind: models.MutationAddReplyToPost, PostID: vars["postId"], Text: text}
	})
}

// ReplyToReply adds a reply under another reply
func (tc *ThreadController) ReplyToReply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tc.submitText(w, r, func(text string) thread.Op {
		return thread.Op{Kind: models.MutationAddReplyToReply, PostID: vars["postId"], ReplyID: vars["replyId"], Text: text}
	})
}

// ToggleCollapse flips a reply between collapsed and expanded
func (tc *ThreadController) ToggleCollapse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tc.submit(w, r, thread.Op{Kind: models.MutationToggleCollapse, PostID: vars["postId"], ReplyID: vars["replyId"]})
}

// ToggleLike flips the viewer's like on a post
func (tc *ThreadController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	tc.submit(w, r, thread.Op{Kind: models.MutationToggleLike, PostID: mux.Vars(r)["postId"]})
}

func (tc *ThreadController) submitText(w http.ResponseWriter, r *http.Request, build func(text string) thread.Op) {
	var body textRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	tc.submit(w, r, build(body.Text))
}

func (tc *ThreadController) submit(w http.ResponseWriter, r *http.Request, op thread.Op) {
	out, err := tc.threads.Submit(r.Context(), op)
	if err != nil {
		sendError(w, err.Error(), statusFor(err))
		return
	}
	sendJSON(w, out)
}
