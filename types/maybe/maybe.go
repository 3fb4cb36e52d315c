package maybe

import "fmt"

type Maybe[T any] struct {
	value T
	valid bool
}

func Some[T any](value T) Maybe[T] {
	return Maybe[T]{
		value: value,
		valid: true,
	}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{
		valid: false,
	}
}

// At returns the element at index i, or None when i is out of range.
func At[T any](s []T, i int) Maybe[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

func (m Maybe[T]) IsValid() bool {
	return m.valid
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) ValueOrDefault(defaultValue T) T {
	if m.valid {
		return m.value
	}
	return defaultValue
}

// Format formats the value with format, or returns fallback if there is none.
func (m Maybe[T]) Format(format string, fallback string) string {
	if !m.valid {
		return fallback
	}
	return fmt.Sprintf(format, m.value)
}
