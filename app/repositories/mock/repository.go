package mock

import (
	"sync"

	"travelthreads/app/models"
	"travelthreads/app/repositories"
)

// MutationRepository is an in-memory journal. Err, when set, is returned by
// every Append.
type MutationRepository struct {
	mutations []*models.Mutation
	mutex     sync.RWMutex
	Err       error
}

func NewMutationRepository() *MutationRepository {
	return &MutationRepository{}
}

func (m *MutationRepository) Append(mutation *models.Mutation) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	mutation.BeforeCreate()
	if err := mutation.Validate(); err != nil {
		return err
	}
	mutation.Seq = len(m.mutations) + 1
	stored := *mutation
	m.mutations = append(m.mutations, &stored)
	return nil
}

func (m *MutationRepository) Get(seq int) (*models.Mutation, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if seq < 1 || seq > len(m.mutations) {
		return nil, repositories.ErrNotFound
	}
	stored := *m.mutations[seq-1]
	return &stored, nil
}

func (m *MutationRepository) List(afterSeq, limit int) ([]*models.Mutation, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var out []*models.Mutation
	for _, stored := range m.mutations {
		if stored.Seq <= afterSeq {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		c := *stored
		out = append(out, &c)
	}
	return out, nil
}

func (m *MutationRepository) Close() error {
	return nil
}

// Len returns the number of stored mutations.
func (m *MutationRepository) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.mutations)
}
