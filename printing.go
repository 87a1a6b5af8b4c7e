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

import (
	"fmt"
)

var _ fmt.Stringer = Option[int]{}
var _ fmt.Stringer = Either[int, int]{}
var _ fmt.Stringer = RemoteData[int, int]{}

var optionTagNames = [...]string{
	NoneTag: "None",
	SomeTag: "Some",
}

var eitherTagNames = [...]string{
	LeftTag:  "Left",
	RightTag: "Right",
}

var remoteDataTagNames = [...]string{
	NotAskedTag: "NotAsked",
	LoadingTag:  "Loading",
	FailureTag:  "Failure",
	SuccessTag:  "Success",
}

func (t OptionTag) String() string     { return optionTagNames[t] }
func (t EitherTag) String() string     { return eitherTagNames[t] }
func (t RemoteDataTag) String() string { return remoteDataTagNames[t] }

// String returns "None" or "Some(payload)".
func (o Option[A]) String() string {
	if o.tag == NoneTag {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// String returns "Left(payload)" or "Right(payload)".
func (e Either[L, R]) String() string {
	if e.tag == LeftTag {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// String returns the variant name, with the payload for Failure/Success.
func (rd RemoteData[E, D]) String() string {
	switch rd.tag {
	case FailureTag:
		return fmt.Sprintf("Failure(%v)", rd.err)
	case SuccessTag:
		return fmt.Sprintf("Success(%v)", rd.data)
	}
	return remoteDataTagNames[rd.tag]
}
