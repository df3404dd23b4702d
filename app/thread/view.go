package thread

import (
	"strings"

	"github.com/samber/lo"

	"travelthreads/app/models"
)

// VisibleReply is a reply as a reader sees it, with its nesting depth.
type VisibleReply struct {
	Reply *models.Reply
	Depth int
}

// Visible lists the replies of post in display order, skipping the children
// of collapsed replies. Top-level replies have depth 0.
func Visible(post *models.Post) []VisibleReply {
	var out []VisibleReply
	stack := make([]VisibleReply, 0, len(post.Replies))
	for i := len(post.Replies) - 1; i >= 0; i-- {
		stack = append(stack, VisibleReply{Reply: post.Replies[i]})
	}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)
		if v.Reply.Collapsed {
			continue
		}
		for i := len(v.Reply.Replies) - 1; i >= 0; i-- {
			stack = append(stack, VisibleReply{Reply: v.Reply.Replies[i], Depth: v.Depth + 1})
		}
	}
	return out
}

// Filter returns the posts whose author, handle or text contains filter,
// ignoring case. A blank filter returns every post.
func Filter(t Tree, filter string) []*models.Post {
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return t.Posts()
	}
	return lo.Filter(t.posts, func(p *models.Post, _ int) bool {
		hay := strings.ToLower(p.Author + " " + p.Handle + " " + p.Text)
		return strings.Contains(hay, q)
	})
}
