package search

import (
	"strings"

	"travelthreads/app/models"
	"travelthreads/app/thread"
)

// Document is one searchable unit: a post or a reply.
type Document struct {
	ID     string   `json:"id"`
	PostID string   `json:"postId"`
	Handle string   `json:"handle"`
	Time   string   `json:"time"`
	Text   string   `json:"text"`
	Tags   []string `json:"tags,omitempty"`
	Reply  bool     `json:"reply,omitempty"`
}

// Haystack is the text a query is matched against.
func (d Document) Haystack() string {
	return d.Handle + " " + d.Text + " " + d.TagText()
}

// TagText joins the tags with spaces.
func (d Document) TagText() string {
	return strings.Join(d.Tags, " ")
}

// FromPost builds the document for a post, without its replies.
func FromPost(p *models.Post) Document {
	return Document{
		ID:     p.ID,
		PostID: p.ID,
		Handle: p.Handle,
		Time:   p.Time,
		Text:   p.Text,
		Tags:   p.Tags,
	}
}

// FromTree flattens a tree into documents: each post followed by its
// replies in depth-first display order.
func FromTree(t thread.Tree) []Document {
	var docs []Document
	t.Walk(func(post *models.Post, reply *models.Reply, _ int) {
		if reply == nil {
			docs = append(docs, FromPost(post))
			return
		}
		docs = append(docs, Document{
			ID:     reply.ID,
			PostID: post.ID,
			Handle: reply.Handle,
			Time:   reply.Time,
			Text:   reply.Text,
			Reply:  true,
		})
	})
	return docs
}
