package models

import "time"

// Post represents a top-level discussion item with its reply thread.
type Post struct {
	ID        string   `json:"id" yaml:"id" validate:"required"`
	Author    string   `json:"author" yaml:"author" validate:"required,max=50"`
	Handle    string   `json:"handle" yaml:"handle" validate:"required,max=50"`
	Time      string   `json:"time" yaml:"time"`
	Text      string   `json:"text" yaml:"text" validate:"required"`
	Likes     int      `json:"likes" yaml:"likes" validate:"gte=0"`
	LikedByMe bool     `json:"likedByMe" yaml:"likedByMe"`
	Replies   []*Reply `json:"replies" yaml:"replies" validate:"-"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty" validate:"dive,required"`
}

// Reply represents a comment on a post or on another reply.
type Reply struct {
	ID        string   `json:"id" yaml:"id" validate:"required"`
	Author    string   `json:"author" yaml:"author" validate:"required,max=50"`
	Handle    string   `json:"handle" yaml:"handle" validate:"required,max=50"`
	Time      string   `json:"time" yaml:"time"`
	Text      string   `json:"text" yaml:"text" validate:"required"`
	Collapsed bool     `json:"collapsed" yaml:"collapsed"`
	Replies   []*Reply `json:"replies" yaml:"replies" validate:"-"`
}

// MutationKind names the operation a Mutation records.
type MutationKind string

const (
	MutationAddPost         MutationKind = "add_post"
	MutationAddReplyToPost  MutationKind = "add_reply_to_post"
	MutationAddReplyToReply MutationKind = "add_reply_to_reply"
	MutationToggleCollapse  MutationKind = "toggle_collapse"
	MutationToggleLike      MutationKind = "toggle_like"
)

// Mutation is the record emitted for every change applied to a discussion tree.
type Mutation struct {
	Seq        int          `json:"seq" validate:"gte=0"`
	Kind       MutationKind `json:"kind" validate:"required,oneof=add_post add_reply_to_post add_reply_to_reply toggle_collapse toggle_like"`
	PostID     string       `json:"postId,omitempty"`
	TargetID   string       `json:"targetId,omitempty"`
	NodeID     string       `json:"nodeId,omitempty"`
	Author     string       `json:"author,omitempty"`
	Handle     string       `json:"handle,omitempty"`
	Time       string       `json:"time,omitempty"`
	Text       string       `json:"text,omitempty"`
	Collapsed  bool         `json:"collapsed"`
	Liked      bool         `json:"liked"`
	Likes      int          `json:"likes" validate:"gte=0"`
	RecordedAt time.Time    `json:"recordedAt"`
}
