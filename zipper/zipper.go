// Package zipper provides an immutable focused cursor over a persistent list.
//
// A Zipper pairs a list with a focus position, so code that walks a sequence
// while editing around a point of interest can do so without mutation: every
// move and edit returns a new Zipper sharing structure with the old one.
package zipper

import (
	"github.com/benbjohnson/immutable"
)

// Zipper is a persistent list with a focus position. The zero value is an
// unusable Zipper; construct with FromSlice, Singleton or Empty.
type Zipper[T any] struct {
	items *immutable.List[T]
	pos   int
}

// Empty returns a Zipper over no elements.
func Empty[T any]() Zipper[T] {
	return Zipper[T]{items: immutable.NewList[T]()}
}

// Singleton returns a Zipper focused on its only element.
func Singleton[T any](value T) Zipper[T] {
	return Zipper[T]{items: immutable.NewList[T]().Append(value)}
}

// FromSlice returns a Zipper over values, focused on the first element.
func FromSlice[T any](values []T) Zipper[T] {
	b := immutable.NewListBuilder[T]()
	for _, v := range values {
		b.Append(v)
	}
	return Zipper[T]{items: b.List()}
}

func (z Zipper[T]) Len() int { return z.items.Len() }
func (z Zipper[T]) Pos() int { return z.pos }

// Focus returns the focused element, or false when the Zipper is empty.
func (z Zipper[T]) Focus() (T, bool) {
	if z.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return z.items.Get(z.pos), true
}

// Left moves the focus one element toward the front. At the front edge the
// move fails and the Zipper is returned unchanged.
func (z Zipper[T]) Left() (Zipper[T], bool) {
	if z.pos == 0 {
		return z, false
	}
	return Zipper[T]{items: z.items, pos: z.pos - 1}, true
}

// Right moves the focus one element toward the back. At the back edge the
// move fails and the Zipper is returned unchanged.
func (z Zipper[T]) Right() (Zipper[T], bool) {
	if z.pos >= z.items.Len()-1 {
		return z, false
	}
	return Zipper[T]{items: z.items, pos: z.pos + 1}, true
}

// First moves the focus to the front.
func (z Zipper[T]) First() Zipper[T] {
	return Zipper[T]{items: z.items}
}

// Last moves the focus to the back.
func (z Zipper[T]) Last() Zipper[T] {
	if z.items.Len() == 0 {
		return z
	}
	return Zipper[T]{items: z.items, pos: z.items.Len() - 1}
}

// Replace substitutes the focused element. An empty Zipper is returned
// unchanged.
func (z Zipper[T]) Replace(value T) Zipper[T] {
	if z.items.Len() == 0 {
		return z
	}
	return Zipper[T]{items: z.items.Set(z.pos, value), pos: z.pos}
}

// Insert places value at the focus position, shifting the focused element
// and everything after it one position back. The focus lands on the new
// element.
func (z Zipper[T]) Insert(value T) Zipper[T] {
	b := immutable.NewListBuilder[T]()
	iter := z.items.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if i == z.pos {
			b.Append(value)
		}
		b.Append(v)
	}
	if z.pos >= z.items.Len() {
		b.Append(value)
	}
	return Zipper[T]{items: b.List(), pos: z.pos}
}

// Delete removes the focused element, keeping the focus index except at the
// back edge, where the focus moves one element toward the front. Deleting
// from an empty Zipper fails.
func (z Zipper[T]) Delete() (Zipper[T], bool) {
	if z.items.Len() == 0 {
		return z, false
	}
	b := immutable.NewListBuilder[T]()
	iter := z.items.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if i != z.pos {
			b.Append(v)
		}
	}
	items := b.List()
	pos := z.pos
	if pos >= items.Len() && pos > 0 {
		pos--
	}
	return Zipper[T]{items: items, pos: pos}, true
}

// If f returns false, iteration will be stopped.
func (z Zipper[T]) Range(f func(int, T) bool) {
	iter := z.items.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v) {
			return
		}
	}
}

// ToSlice copies the elements into a fresh slice, front to back.
func (z Zipper[T]) ToSlice() []T {
	out := make([]T, 0, z.items.Len())
	iter := z.items.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		out = append(out, v)
	}
	return out
}
