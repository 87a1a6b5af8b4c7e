// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package adt

// OptionTag is the discriminant of an Option.
type OptionTag uint8

const (
	NoneTag OptionTag = iota
	SomeTag
)

// Option represents an optional value: either Some with exactly one payload,
// or None with none. The zero value is None.
type Option[A any] struct {
	tag   OptionTag
	value A
}

// Absent value: `None`
func None[A any]() Option[A] {
	return Option[A]{}
}

// Present value: `Some(5)`
//
// The value is wrapped verbatim; no validation is performed.
func Some[A any](value A) Option[A] {
	return Option[A]{tag: SomeTag, value: value}
}

// Tag returns the active discriminant of o.
func (o Option[A]) Tag() OptionTag { return o.tag }

func (o Option[A]) IsSome() bool { return o.tag == SomeTag }
func (o Option[A]) IsNone() bool { return o.tag == NoneTag }

// Get returns the payload and whether o is Some.
func (o Option[A]) Get() (A, bool) { return o.value, o.tag == SomeTag }

// GetOrElse returns the payload when o is Some, otherwise fallback.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.tag == SomeTag {
		return o.value
	}
	return fallback
}

// OrElse returns o when it is Some, otherwise alternative.
func (o Option[A]) OrElse(alternative Option[A]) Option[A] {
	if o.tag == SomeTag {
		return o
	}
	return alternative
}

// MatchOption folds o into a single result. Both branches are mandatory:
// whenNone is returned as-is for None, whenSome is applied to the payload
// for Some.
func MatchOption[A, O any](fa Option[A], whenNone O, whenSome func(A) O) O {
	if fa.tag == SomeTag {
		return whenSome(fa.value)
	}
	return whenNone
}

// MapOption applies f to the payload when o is Some.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.tag != SomeTag {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMapOption chains a computation that may itself produce None.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.tag != SomeTag {
		return None[B]()
	}
	return f(o.value)
}

// FilterOption keeps a Some payload only while pred holds for it.
func FilterOption[A any](o Option[A], pred func(A) bool) Option[A] {
	if o.tag != SomeTag || !pred(o.value) {
		return None[A]()
	}
	return o
}

// EqualOption compares two options structurally, using eq for the payloads.
func EqualOption[A any](a, b Option[A], eq func(A, A) bool) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag == NoneTag {
		return true
	}
	return eq(a.value, b.value)
}
