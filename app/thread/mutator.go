package thread

import (
	"strings"

	"travelthreads/app/ids"
	"travelthreads/app/models"
)

const (
	// DefaultViewer is the author and handle given to nodes the viewer creates.
	DefaultViewer = "you"
	// DefaultTimeLabel is the creation-time label of new nodes.
	DefaultTimeLabel = "now"
)

// Op is a request to change a tree. Which fields matter depends on Kind.
type Op struct {
	Kind    models.MutationKind `json:"kind"`
	PostID  string              `json:"postId,omitempty"`
	ReplyID string              `json:"replyId,omitempty"`
	Text    string              `json:"text,omitempty"`
}

// OpFromMutation turns a recorded mutation back into the op that produced it.
func OpFromMutation(m *models.Mutation) Op {
	op := Op{Kind: m.Kind, PostID: m.PostID, ReplyID: m.TargetID, Text: m.Text}
	if m.Kind == models.MutationAddPost {
		op.PostID = ""
	}
	return op
}

// Mutator derives new trees from old ones. It never modifies its input.
type Mutator struct {
	ids       ids.Generator
	author    string
	handle    string
	timeLabel func() string
}

type Option func(*Mutator)

// WithIDs sets the identifier source for new posts and replies.
func WithIDs(g ids.Generator) Option {
	return func(m *Mutator) { m.ids = g }
}

// WithViewer sets the author and handle stamped on new posts and replies.
func WithViewer(author, handle string) Option {
	return func(m *Mutator) {
		m.author = author
		m.handle = handle
	}
}

// WithTimeLabel sets the function producing creation-time labels.
func WithTimeLabel(fn func() string) Option {
	return func(m *Mutator) { m.timeLabel = fn }
}

func NewMutator(opts ...Option) *Mutator {
	m := &Mutator{
		ids:       ids.Default(),
		author:    DefaultViewer,
		handle:    DefaultViewer,
		timeLabel: func() string { return DefaultTimeLabel },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply performs op on t. When op changes nothing, because the text is blank
// or a target does not exist, t itself is returned with a nil mutation.
func (m *Mutator) Apply(t Tree, op Op) (Tree, *models.Mutation) {
	switch op.Kind {
	case models.MutationAddPost:
		return m.addPost(t, op.Text)
	case models.MutationAddReplyToPost:
		return m.addReplyToPost(t, op.PostID, op.Text)
	case models.MutationAddReplyToReply:
		return m.addReplyToReply(t, op.PostID, op.ReplyID, op.Text)
	case models.MutationToggleCollapse:
		return m.toggleCollapse(t, op.PostID, op.ReplyID)
	case models.MutationToggleLike:
		return m.toggleLike(t, op.PostID)
	default:
		return t, nil
	}
}

// AddPost puts a new post with text in front of all others.
func (m *Mutator) AddPost(t Tree, text string) Tree {
	next, _ := m.addPost(t, text)
	return next
}

// AddReplyToPost appends a reply to the post's top-level replies.
func (m *Mutator) AddReplyToPost(t Tree, postID, text string) Tree {
	next, _ := m.addReplyToPost(t, postID, text)
	return next
}

// AddReplyToReply appends a reply under replyID and expands replyID so the
// new reply is visible.
func (m *Mutator) AddReplyToReply(t Tree, postID, replyID, text string) Tree {
	next, _ := m.addReplyToReply(t, postID, replyID, text)
	return next
}

// ToggleCollapse flips the collapsed flag of one reply.
func (m *Mutator) ToggleCollapse(t Tree, postID, replyID string) Tree {
	next, _ := m.toggleCollapse(t, postID, replyID)
	return next
}

// ToggleLike flips the viewer's like on a post.
func (m *Mutator) ToggleLike(t Tree, postID string) Tree {
	next, _ := m.toggleLike(t, postID)
	return next
}

func (m *Mutator) addPost(t Tree, text string) (Tree, *models.Mutation) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t, nil
	}

	post := &models.Post{
		ID:      m.ids.NewID(),
		Author:  m.author,
		Handle:  m.handle,
		Time:    m.timeLabel(),
		Text:    text,
		Replies: []*models.Reply{},
	}
	posts := make([]*models.Post, 0, len(t.posts)+1)
	posts = append(posts, post)
	posts = append(posts, t.posts...)

	return Tree{posts: posts}, &models.Mutation{
		Kind:   models.MutationAddPost,
		PostID: post.ID,
		NodeID: post.ID,
		Author: post.Author,
		Handle: post.Handle,
		Time:   post.Time,
		Text:   post.Text,
	}
}

func (m *Mutator) addReplyToPost(t Tree, postID, text string) (Tree, *models.Mutation) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t, nil
	}
	i := t.postIndex(postID)
	if i < 0 {
		return t, nil
	}

	reply := m.newReply(text)
	post := *t.posts[i]
	post.Replies = appended(post.Replies, reply)

	return t.withPost(i, &post), m.replyMutation(models.MutationAddReplyToPost, postID, "", reply)
}

func (m *Mutator) addReplyToReply(t Tree, postID, replyID, text string) (Tree, *models.Mutation) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t, nil
	}
	i := t.postIndex(postID)
	if i < 0 {
		return t, nil
	}
	path := locate(t.posts[i].Replies, replyID)
	if path == nil {
		return t, nil
	}

	reply := m.newReply(text)
	post := *t.posts[i]
	post.Replies = replaceAlong(post.Replies, path, func(r *models.Reply) {
		r.Replies = appended(r.Replies, reply)
		r.Collapsed = false
	})

	return t.withPost(i, &post), m.replyMutation(models.MutationAddReplyToReply, postID, replyID, reply)
}

func (m *Mutator) toggleCollapse(t Tree, postID, replyID string) (Tree, *models.Mutation) {
	i := t.postIndex(postID)
	if i < 0 {
		return t, nil
	}
	path := locate(t.posts[i].Replies, replyID)
	if path == nil {
		return t, nil
	}

	collapsed := !path[len(path)-1].reply.Collapsed
	post := *t.posts[i]
	post.Replies = replaceAlong(post.Replies, path, func(r *models.Reply) {
		r.Collapsed = collapsed
	})

	return t.withPost(i, &post), &models.Mutation{
		Kind:      models.MutationToggleCollapse,
		PostID:    postID,
		TargetID:  replyID,
		Collapsed: collapsed,
	}
}

func (m *Mutator) toggleLike(t Tree, postID string) (Tree, *models.Mutation) {
	i := t.postIndex(postID)
	if i < 0 {
		return t, nil
	}

	post := *t.posts[i]
	post.LikedByMe = !post.LikedByMe
	if post.LikedByMe {
		post.Likes++
	} else {
		post.Likes = max(0, post.Likes-1)
	}

	return t.withPost(i, &post), &models.Mutation{
		Kind:   models.MutationToggleLike,
		PostID: postID,
		Liked:  post.LikedByMe,
		Likes:  post.Likes,
	}
}

func (m *Mutator) newReply(text string) *models.Reply {
	return &models.Reply{
		ID:      m.ids.NewID(),
		Author:  m.author,
		Handle:  m.handle,
		Time:    m.timeLabel(),
		Text:    text,
		Replies: []*models.Reply{},
	}
}

func (m *Mutator) replyMutation(kind models.MutationKind, postID, targetID string, reply *models.Reply) *models.Mutation {
	return &models.Mutation{
		Kind:     kind,
		PostID:   postID,
		TargetID: targetID,
		NodeID:   reply.ID,
		Author:   reply.Author,
		Handle:   reply.Handle,
		Time:     reply.Time,
		Text:     reply.Text,
	}
}
