package di

import (
	"fmt"
	"slices"

	"github.com/sghaida/oofix/serrors"
)

// Registry maps string keys to interchangeable implementations of V.
// It is filled once at startup and read afterwards.
type Registry[V any] struct {
	items map[string]V
}

// NewRegistry returns an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{items: map[string]V{}}
}

// Provide stores val under key, replacing any previous value.
func (r *Registry[V]) Provide(key string, val V) *Registry[V] {
	r.items[key] = val
	return r
}

// Resolve returns the value for key. A missing key yields a
// serrors.ErrNotFound error; a panic inside the lookup is returned as an error.
func (r *Registry[V]) Resolve(key string) (val V, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero V
			val = zero
			err = serrors.Wrap(serrors.ErrNotFound, fmt.Errorf("%v", rec), "registry: resolving %q", key)
		}
	}()

	v, ok := r.items[key]
	if !ok {
		return v, serrors.With(serrors.ErrNotFound, "registry: key %q not provided", key)
	}

	return v, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry[V]) Keys() []string {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// MustGet returns the value for key or panics.
func (r *Registry[V]) MustGet(key string) V {
	v, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}

	return v
}
