package di

import "reflect"

// DependencyKey names a dependency recorded on a Service.
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// Service is a constructed value plus the dependencies injected into it.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Of wraps an already-built value.
func Of[T any](val *T) *Service[T] {
	return &Service[T]{Val: val, Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector binds one dependency into a Service.
type Injector[T any] func(*Service[T]) error

// With applies inj. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}

	return s, inj(s)
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}

	return s, nil
}

// Injecting returns an Injector that records dep.Val under key and hands it
// to bind. The key must not already be present on the target.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		switch {
		case s == nil || s.Val == nil:
			return &Error{Reason: ReasonNilTarget, Key: key}
		case dep == nil || dep.Val == nil:
			return &Error{Reason: ReasonNilDependency, Key: key}
		case bind == nil:
			return &Error{Reason: ReasonNilBind, Key: key}
		}

		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return &Error{Reason: ReasonDuplicateKey, Key: key}
		}

		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)

		return nil
	}
}

// Has reports whether key was injected.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil {
		return false
	}
	_, ok := s.Deps[key]

	return ok
}

// Require returns a ReasonMissing error for the first key that was never injected.
func (s *Service[T]) Require(keys ...DependencyKey) error {
	if s == nil || s.Val == nil {
		return &Error{Reason: ReasonNilTarget}
	}
	for _, k := range keys {
		if !s.Has(k) {
			return &Error{Reason: ReasonMissing, Key: k}
		}
	}

	return nil
}

// GetAs returns the dependency recorded under key as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil {
		return nil, &Error{Reason: ReasonMissing, Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, &Error{Reason: ReasonMissing, Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, &Error{Reason: ReasonWrongType, Key: key, GotType: reflect.TypeOf(raw).String()}
	}

	return d, nil
}
