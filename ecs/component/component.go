package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// Kind identifies a component type at runtime. Kinds are allocated process
// wide and never reused.
type Kind uint32

// Handle binds a component's Go type to its Kind. Each component file
// declares one package-level handle per type.
type Handle[T any] struct {
	kind Kind
}

func NewComponent[T any]() Handle[T] {
	return Handle[T]{kind: Kind(nextKind.Add(1))}
}

func (h Handle[T]) Kind() Kind {
	return h.kind
}

func (h Handle[T]) Valid() bool {
	return h.kind != 0
}

var nextKind atomic.Uint32
