package models

import (
	"fmt"
	"strings"
)

// Validate checks the reply and all of its descendants.
func (r *Reply) Validate() error {
	stack := []*Reply{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := validate.Struct(cur); err != nil {
			return fmt.Errorf("reply %q: %w", cur.ID, err)
		}
		if strings.TrimSpace(cur.Text) == "" {
			return fmt.Errorf("reply %q: %w", cur.ID, ErrEmptyText)
		}
		for _, child := range cur.Replies {
			if child == nil {
				return fmt.Errorf("reply %q: child cannot be nil", cur.ID)
			}
			stack = append(stack, child)
		}
	}
	return nil
}

// HasChildren reports whether the collapsed flag has anything to hide.
func (r *Reply) HasChildren() bool {
	return len(r.Replies) > 0
}
