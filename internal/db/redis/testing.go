package redis

import "github.com/redis/rueidis"

// NewStoreForTest builds a Store around an injected client, usually a
// rueidis mock.
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c}
}
