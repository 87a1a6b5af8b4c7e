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

// RemoteDataTag is the discriminant of a RemoteData.
type RemoteDataTag uint8

const (
	NotAskedTag RemoteDataTag = iota
	LoadingTag
	FailureTag
	SuccessTag
)

// RemoteData represents the four-state lifecycle of an asynchronous fetch
// as a single value, replacing the ad-hoc loading-flag-plus-nullable-result
// pair that admits illegal combinations. The zero value is NotAsked.
//
// Values do not self-transition. The usual caller-side sequence is
// NotAsked -> Loading -> (Failure | Success), with retries going back
// through Loading; sequencing is the caller's responsibility and is not
// validated here.
type RemoteData[E, D any] struct {
	tag  RemoteDataTag
	err  E
	data D
}

// Fetch not requested yet: `NotAsked`
func NotAsked[E, D any]() RemoteData[E, D] {
	return RemoteData[E, D]{}
}

// Fetch in flight: `Loading`
func Loading[E, D any]() RemoteData[E, D] {
	return RemoteData[E, D]{tag: LoadingTag}
}

// Fetch failed: `Failure(err)`
func Failure[E, D any](err E) RemoteData[E, D] {
	return RemoteData[E, D]{tag: FailureTag, err: err}
}

// Fetch succeeded: `Success(data)`
func Success[E, D any](data D) RemoteData[E, D] {
	return RemoteData[E, D]{tag: SuccessTag, data: data}
}

// Tag returns the active discriminant of rd.
func (rd RemoteData[E, D]) Tag() RemoteDataTag { return rd.tag }

func (rd RemoteData[E, D]) IsNotAsked() bool { return rd.tag == NotAskedTag }
func (rd RemoteData[E, D]) IsLoading() bool  { return rd.tag == LoadingTag }
func (rd RemoteData[E, D]) IsFailure() bool  { return rd.tag == FailureTag }
func (rd RemoteData[E, D]) IsSuccess() bool  { return rd.tag == SuccessTag }

// GetFailure returns the error payload and whether rd is Failure.
func (rd RemoteData[E, D]) GetFailure() (E, bool) { return rd.err, rd.tag == FailureTag }

// GetSuccess returns the data payload and whether rd is Success.
func (rd RemoteData[E, D]) GetSuccess() (D, bool) { return rd.data, rd.tag == SuccessTag }

// MatchRemoteData folds rd into a single result. All four handlers are
// mandatory; exactly the one matching the active variant is invoked, with
// the exact payload passed at construction.
func MatchRemoteData[E, D, O any](rd RemoteData[E, D], notAsked func() O, loading func() O, failure func(E) O, success func(D) O) O {
	switch rd.tag {
	case LoadingTag:
		return loading()
	case FailureTag:
		return failure(rd.err)
	case SuccessTag:
		return success(rd.data)
	}
	return notAsked()
}

// MapRemoteData applies f to the Success payload, passing the other three
// variants through unchanged.
func MapRemoteData[E, D, D2 any](rd RemoteData[E, D], f func(D) D2) RemoteData[E, D2] {
	switch rd.tag {
	case SuccessTag:
		return Success[E](f(rd.data))
	case FailureTag:
		return Failure[E, D2](rd.err)
	case LoadingTag:
		return Loading[E, D2]()
	}
	return NotAsked[E, D2]()
}

// MapFailure applies f to the Failure payload, passing the other three
// variants through unchanged.
func MapFailure[E, D, E2 any](rd RemoteData[E, D], f func(E) E2) RemoteData[E2, D] {
	switch rd.tag {
	case FailureTag:
		return Failure[E2, D](f(rd.err))
	case SuccessTag:
		return Success[E2](rd.data)
	case LoadingTag:
		return Loading[E2, D]()
	}
	return NotAsked[E2, D]()
}

// WithDefault returns the Success payload, or fallback for every other variant.
func (rd RemoteData[E, D]) WithDefault(fallback D) D {
	if rd.tag == SuccessTag {
		return rd.data
	}
	return fallback
}

// FromEither lifts a settled outcome into RemoteData: Left becomes Failure,
// Right becomes Success.
func FromEither[E, D any](e Either[E, D]) RemoteData[E, D] {
	if e.tag == LeftTag {
		return Failure[E, D](e.left)
	}
	return Success[E](e.right)
}

// ToEither extracts a settled outcome: Some(Left) for Failure, Some(Right)
// for Success, None while the fetch is unsettled.
func ToEither[E, D any](rd RemoteData[E, D]) Option[Either[E, D]] {
	switch rd.tag {
	case FailureTag:
		return Some(Left[E, D](rd.err))
	case SuccessTag:
		return Some(Right[E](rd.data))
	}
	return None[Either[E, D]]()
}

// ToOption keeps only the Success payload, discarding the error.
func ToOption[E, D any](rd RemoteData[E, D]) Option[D] {
	if rd.tag == SuccessTag {
		return Some(rd.data)
	}
	return None[D]()
}

// EqualRemoteData compares two values structurally, using eqE/eqD for the
// payload of the active variant.
func EqualRemoteData[E, D any](a, b RemoteData[E, D], eqE func(E, E) bool, eqD func(D, D) bool) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case FailureTag:
		return eqE(a.err, b.err)
	case SuccessTag:
		return eqD(a.data, b.data)
	}
	return true
}
