// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

import (
	"errors"
	"fmt"
)

// Cases is an explicit enumeration of a subset of A: representative
// values in order plus a membership predicate.
//
// Contains must agree with membership in Values for every value that can
// occur. The agreement is not checked; a hand-built Cases that violates it
// makes [MatchS] and [MatchM] disagree. Use [CasesOf], [BoolCases] or
// [RangeCases] to construct consistent values.
type Cases[A any] struct {
	Values   []A
	Contains func(A) bool
}

// CasesOf enumerates exactly the given values.
func CasesOf[A comparable](values ...A) Cases[A] {
	vs := append([]A(nil), values...)
	set := make(map[A]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return Cases[A]{
		Values: vs,
		Contains: func(a A) bool {
			_, ok := set[a]
			return ok
		},
	}
}

// BoolCases enumerates the whole bool domain.
func BoolCases() Cases[bool] {
	return Cases[bool]{
		Values:   []bool{false, true},
		Contains: func(bool) bool { return true },
	}
}

// Integer is the set of integer types enumerable by [RangeCases].
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// RangeCases enumerates the closed range [lo, hi] in ascending order.
// It is the enumeration of a bounded enum whose values are lo..hi.
// Panics if lo > hi.
func RangeCases[A Integer](lo, hi A) Cases[A] {
	if lo > hi {
		panic("selective: RangeCases with lo > hi")
	}
	var vs []A
	for v := lo; ; v++ {
		vs = append(vs, v)
		if v == hi {
			break
		}
	}
	return Cases[A]{
		Values:   vs,
		Contains: func(a A) bool { return a >= lo && a <= hi },
	}
}

// Covers validates that every value in domain is a member of c.
// It returns a *CoverageError naming the first missing value.
func (c Cases[A]) Covers(domain ...A) error {
	for _, a := range domain {
		if !c.Contains(a) {
			return &CoverageError{Value: a}
		}
	}
	return nil
}

// ErrCoverage is matched by every *CoverageError.
var ErrCoverage = errors.New("selective: value not covered by cases")

// CoverageError reports a value outside an enumeration that was required
// to be complete. [BindS] panics with it: the enumeration is a
// construction-time bug in the caller, not a runtime condition.
type CoverageError struct {
	Value any
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("selective: value %v not covered by cases", e.Value)
}

// Is reports whether target is [ErrCoverage].
func (e *CoverageError) Is(target error) bool {
	return target == ErrCoverage
}

// Eliminate runs handler in place of Left(target) in x's result and tags
// the outcome Right. Other Left values and all Right values pass through.
func Eliminate[W Selective, A comparable, B any](target A, handler F[W, B], x F[W, Either[A, B]]) F[W, Either[A, B]] {
	return Select(
		Map(x, func(e Either[A, B]) Either[struct{}, Either[A, B]] {
			if a, ok := e.GetLeft(); ok && a == target {
				return Left[struct{}, Either[A, B]](struct{}{})
			}
			return Right[struct{}](e)
		}),
		Map(handler, func(b B) func(struct{}) Either[A, B] {
			return constant[Either[A, B], struct{}](Right[A](b))
		}),
	)
}

// MatchS matches the result of x against every value in cases, producing
// Right(handler(a) result) for a matched value and Left(a) otherwise.
// Handlers for every case are constructed up front; a container may skip
// the effects of the handlers that do not match.
func MatchS[W Selective, A comparable, B any](cases Cases[A], x F[W, A], handler func(A) F[W, B]) F[W, Either[A, B]] {
	acc := Map(x, Left[A, B])
	for i := len(cases.Values) - 1; i >= 0; i-- {
		c := cases.Values[i]
		acc = Eliminate(c, handler(c), acc)
	}
	return acc
}

// BindS is dependent composition over a bounded domain enumerated by
// cases, expressed through [MatchS]. Evaluating a value that cases does
// not enumerate panics with a *[CoverageError].
func BindS[W Selective, A comparable, B any](cases Cases[A], x F[W, A], handler func(A) F[W, B]) F[W, B] {
	return Map(MatchS(cases, x, handler), func(e Either[A, B]) B {
		if b, ok := e.GetRight(); ok {
			return b
		}
		a, _ := e.GetLeft()
		panic(&CoverageError{Value: a})
	})
}

// MatchM is the monadic counterpart of [MatchS]: it sequences x into the
// handler directly when cases contains the value.
func MatchM[W Monad, A, B any](cases Cases[A], x F[W, A], handler func(A) F[W, B]) F[W, Either[A, B]] {
	return Bind(x, func(a A) F[W, Either[A, B]] {
		if cases.Contains(a) {
			return Map(handler(a), Right[A, B])
		}
		return Pure[W](Left[A, B](a))
	})
}
