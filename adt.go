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

// adt provides closed, generic tagged-union (sum) types with total pattern-matching.
//
// Each type is a plain immutable value carrying an explicit discriminant tag,
// constructed only through the exported factory functions. Matching is a fold:
// one mandatory handler per variant, so a missing branch is a compile error
// rather than a runtime gap.
//
//
// Supported Types:
//
//   * Option[A]        — presence (Some) or absence (None) of a value
//   * Either[L, R]     — one of two mutually exclusive outcomes (Left/Right, conventionally error/success)
//   * RemoteData[E, D] — four-state lifecycle of an asynchronous fetch (NotAsked/Loading/Failure/Success)
//   * zipper.Zipper[T] — focused cursor over a persistent list (subpackage)
//
//
// Values of all types are safe to share across goroutines: once constructed,
// a value's variant and payload never change, and every combinator returns a
// fresh value.
//
// Equality is structural. The types are ordinary comparable structs whenever
// their payload types are comparable, so Some(5) == Some(5) holds; for
// non-comparable payloads use EqualOption, EqualEither or EqualRemoteData
// with a payload predicate.
//
// Failure information is ordinary data (Left, Failure), never a thrown or
// returned error: FromResult is the single adapter where a Go error enters
// the algebra.
package adt
