package storage

import (
	"context"

	"github.com/rl1809/tableside/internal/port"
)

// Namespaced prefixes every key with "namespace:" so several kiosks can share
// one backend. An empty namespace returns store unchanged.
func Namespaced(store port.KeyValueStore, namespace string) port.KeyValueStore {
	if namespace == "" {
		return store
	}
	return &namespacedStore{store: store, prefix: namespace + ":"}
}

type namespacedStore struct {
	store  port.KeyValueStore
	prefix string
}

func (n *namespacedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n *namespacedStore) Set(ctx context.Context, key, value string) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

func (n *namespacedStore) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.prefix+key)
}
