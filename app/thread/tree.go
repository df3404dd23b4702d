// Package thread holds the discussion tree and the pure operations that
// derive a new tree from an old one.
//
// A Tree is a persistent value: every mutation copies the posts and replies
// on the path to the changed node and shares everything else with the
// previous version. Nodes reachable from a Tree are therefore shared between
// versions and must be treated as read-only.
package thread

import (
	"encoding/json"
	"fmt"
	"slices"

	"travelthreads/app/models"
)

// Tree is an immutable list of posts, newest first.
type Tree struct {
	posts []*models.Post
}

// NewTree wraps posts in a Tree. The slice is copied; the posts are not.
func NewTree(posts ...*models.Post) Tree {
	return Tree{posts: slices.Clone(posts)}
}

// Posts returns the posts in display order.
func (t Tree) Posts() []*models.Post {
	return slices.Clone(t.posts)
}

// Len returns the number of posts.
func (t Tree) Len() int {
	return len(t.posts)
}

// Same reports whether t and o are the same version, not merely equal ones.
func (t Tree) Same(o Tree) bool {
	if len(t.posts) != len(o.posts) {
		return false
	}
	return len(t.posts) == 0 || &t.posts[0] == &o.posts[0]
}

// Post looks up a post by identifier.
func (t Tree) Post(id string) (*models.Post, bool) {
	if i := t.postIndex(id); i >= 0 {
		return t.posts[i], true
	}
	return nil, false
}

// Reply looks up a reply anywhere in the thread of postID.
func (t Tree) Reply(postID, replyID string) (*models.Reply, bool) {
	post, ok := t.Post(postID)
	if !ok {
		return nil, false
	}
	path := locate(post.Replies, replyID)
	if path == nil {
		return nil, false
	}
	return path[len(path)-1].reply, true
}

// Walk visits every post and, after each post, its replies in depth-first
// display order. reply is nil when fn is called for the post itself; depth is
// 0 for posts and top-level replies alike.
func (t Tree) Walk(fn func(post *models.Post, reply *models.Reply, depth int)) {
	type entry struct {
		reply *models.Reply
		depth int
	}

	for _, post := range t.posts {
		fn(post, nil, 0)

		stack := make([]entry, 0, len(post.Replies))
		for i := len(post.Replies) - 1; i >= 0; i-- {
			stack = append(stack, entry{post.Replies[i], 0})
		}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			fn(post, e.reply, e.depth)
			for i := len(e.reply.Replies) - 1; i >= 0; i-- {
				stack = append(stack, entry{e.reply.Replies[i], e.depth + 1})
			}
		}
	}
}

func (t Tree) MarshalJSON() ([]byte, error) {
	if t.posts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.posts)
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return err
	}
	t.posts = posts
	return nil
}

func (t Tree) postIndex(id string) int {
	return slices.IndexFunc(t.posts, func(p *models.Post) bool { return p != nil && p.ID == id })
}

func (t Tree) withPost(i int, p *models.Post) Tree {
	posts := slices.Clone(t.posts)
	posts[i] = p
	return Tree{posts: posts}
}

// Validate checks every post and reply and that identifiers are unique among
// posts and among replies.
func Validate(t Tree) error {
	posts := make(map[string]struct{}, len(t.posts))
	for i, post := range t.posts {
		if post == nil {
			return fmt.Errorf("post #%d is nil", i)
		}
		if err := post.Validate(); err != nil {
			return err
		}
		if _, dup := posts[post.ID]; dup {
			return fmt.Errorf("duplicate post id %q", post.ID)
		}
		posts[post.ID] = struct{}{}
	}

	var err error
	replies := make(map[string]struct{})
	t.Walk(func(post *models.Post, reply *models.Reply, _ int) {
		if reply == nil || err != nil {
			return
		}
		if _, dup := replies[reply.ID]; dup {
			err = fmt.Errorf("post %q: duplicate reply id %q", post.ID, reply.ID)
			return
		}
		replies[reply.ID] = struct{}{}
	})
	return err
}
