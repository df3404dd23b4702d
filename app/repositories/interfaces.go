package repositories

import (
	"errors"

	"travelthreads/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// MutationRepository defines the interface for the mutation journal
type MutationRepository interface {
	// Append assigns the next sequence number to m, validates and stores it.
	Append(m *models.Mutation) error
	// List returns up to limit mutations with a sequence above afterSeq, in
	// sequence order. A limit of zero or less means no limit.
	List(afterSeq, limit int) ([]*models.Mutation, error)
	// Get returns the mutation with the given sequence number.
	Get(seq int) (*models.Mutation, error)
	Close() error
}
