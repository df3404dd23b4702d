package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// MutationKeyPrefix prefixes every journaled mutation.
	MutationKeyPrefix = "mutation:"

	// MutationSeqKey holds the last assigned mutation sequence number.
	MutationSeqKey = "seq:mutation"
)

// mutationKey zero-pads seq so that key order is sequence order.
func mutationKey(seq int) []byte {
	return []byte(fmt.Sprintf("%s%010d", MutationKeyPrefix, seq))
}

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("corrupt sequence %s: %d bytes", seqKey, len(val))
			}
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
