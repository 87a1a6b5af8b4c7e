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

// EitherTag is the discriminant of an Either.
type EitherTag uint8

const (
	LeftTag EitherTag = iota
	RightTag
)

// Either represents exactly one of two mutually exclusive outcomes. By
// convention Left carries failure information and Right carries success;
// the convention is the caller's to keep, nothing here enforces it.
// The zero value is Left with a zero payload.
type Either[L, R any] struct {
	tag   EitherTag
	left  L
	right R
}

// Failure outcome: `Left("E404")`
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{tag: LeftTag, left: value}
}

// Success outcome: `Right(42)`
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{tag: RightTag, right: value}
}

// Tag returns the active discriminant of e.
func (e Either[L, R]) Tag() EitherTag { return e.tag }

func (e Either[L, R]) IsLeft() bool  { return e.tag == LeftTag }
func (e Either[L, R]) IsRight() bool { return e.tag == RightTag }

// GetLeft returns the Left payload and whether e is Left.
func (e Either[L, R]) GetLeft() (L, bool) { return e.left, e.tag == LeftTag }

// GetRight returns the Right payload and whether e is Right.
func (e Either[L, R]) GetRight() (R, bool) { return e.right, e.tag == RightTag }

// MatchEither folds e into a single result. Both handlers are mandatory;
// exactly one is applied, to the payload of the active variant.
func MatchEither[L, R, O any](fa Either[L, R], whenLeft func(L) O, whenRight func(R) O) O {
	if fa.tag == LeftTag {
		return whenLeft(fa.left)
	}
	return whenRight(fa.right)
}

// MapLeft applies f to the Left payload, passing Right through unchanged.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.tag == LeftTag {
		return Left[L2, R](f(e.left))
	}
	return Right[L2](e.right)
}

// MapRight applies f to the Right payload, passing Left through unchanged.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.tag == RightTag {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}

// Swap exchanges the roles of Left and Right.
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.tag == LeftTag {
		return Right[R](e.left)
	}
	return Left[R, L](e.right)
}

// FromResult adapts a conventional (value, err) return into an Either.
// A non-nil err produces Left; otherwise the value produces Right.
func FromResult[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// FromOptions collapses a two-optional-slot result (the shape of many
// callback APIs) into exactly one of Left/Right. Inconsistent slot
// combinations, both present or neither, yield None.
func FromOptions[L, R any](err Option[L], ok Option[R]) Option[Either[L, R]] {
	switch {
	case err.IsSome() && ok.IsNone():
		return Some(Left[L, R](err.value))
	case err.IsNone() && ok.IsSome():
		return Some(Right[L](ok.value))
	}
	return None[Either[L, R]]()
}

// EqualEither compares two eithers structurally, using eqL/eqR for the
// payload of the active variant.
func EqualEither[L, R any](a, b Either[L, R], eqL func(L, L) bool, eqR func(R, R) bool) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag == LeftTag {
		return eqL(a.left, b.left)
	}
	return eqR(a.right, b.right)
}
