package models

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks the mutation carries the fields its kind needs.
func (m *Mutation) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}

	var missing []string
	need := func(field, value string) {
		if value == "" {
			missing = append(missing, field)
		}
	}

	switch m.Kind {
	case MutationAddPost:
		need("nodeId", m.NodeID)
		need("text", m.Text)
	case MutationAddReplyToPost:
		need("postId", m.PostID)
		need("nodeId", m.NodeID)
		need("text", m.Text)
	case MutationAddReplyToReply:
		need("postId", m.PostID)
		need("targetId", m.TargetID)
		need("nodeId", m.NodeID)
		need("text", m.Text)
	case MutationToggleCollapse:
		need("postId", m.PostID)
		need("targetId", m.TargetID)
	case MutationToggleLike:
		need("postId", m.PostID)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s mutation is missing %v", m.Kind, missing)
	}
	if m.RecordedAt.IsZero() {
		return errors.New("recorded_at cannot be zero")
	}
	return nil
}

// BeforeCreate sets up any necessary fields before the mutation is stored
func (m *Mutation) BeforeCreate() {
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now()
	}
}

// CreatesNode reports whether the mutation adds a post or a reply.
func (m *Mutation) CreatesNode() bool {
	switch m.Kind {
	case MutationAddPost, MutationAddReplyToPost, MutationAddReplyToReply:
		return true
	}
	return false
}
