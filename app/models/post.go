package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrEmptyText is returned when a body is empty once surrounding whitespace is removed.
var ErrEmptyText = errors.New("text cannot be empty")

// Validate checks the post and every reply below it.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Text) == "" {
		return ErrEmptyText
	}

	for _, reply := range p.Replies {
		if reply == nil {
			return fmt.Errorf("post %s: reply cannot be nil", p.ID)
		}
		if err := reply.Validate(); err != nil {
			return fmt.Errorf("post %s: %w", p.ID, err)
		}
	}
	return nil
}

// ReplyCount returns the number of replies in the whole thread, at any depth.
func (p *Post) ReplyCount() int {
	count := 0
	stack := append([]*Reply(nil), p.Replies...)
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, r.Replies...)
	}
	return count
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
