package clix

import (
	"errors"
	"fmt"
)

var ErrNoBinding = errors.New("no such binding")

// Get reads a named binding from args as T. The second return is false when
// the name is unknown in any reachable scope, unbound, or bound to a
// different type.
func Get[T any](args Args, name string) (T, bool) {
	var zero T
	val, ok := args.Value(name)
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustGet reads a named binding from args as T, panicking when it is absent
// or the wrong type. The developer usually knows whether a binding can be
// absent, so this keeps action bodies free of plumbing.
func MustGet[T any](args Args, name string) T {
	val, ok := Get[T](args, name)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNoBinding, name))
	}
	return val
}

// GetAll reads an accumulating binding as a slice of T, dropping elements of
// other types. Absent or non-sequence bindings read as nil.
func GetAll[T any](args Args, name string) []T {
	val, ok := args.Value(name)
	if !ok {
		return nil
	}
	switch seq := val.(type) {
	case []T:
		return seq
	case []any:
		out := make([]T, 0, len(seq))
		for _, el := range seq {
			if typed, ok := el.(T); ok {
				out = append(out, typed)
			}
		}
		return out
	}
	return nil
}
