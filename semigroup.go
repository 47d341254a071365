// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

import "github.com/hashicorp/go-multierror"

// Semigroup is an associative combine operation over E.
// Instances are zero-size types used as type parameters, so the
// operation is resolved at instantiation time.
type Semigroup[E any] interface {
	Combine(a, b E) E
}

// Monoid is a Semigroup with an identity element.
type Monoid[E any] interface {
	Semigroup[E]
	Empty() E
}

// Concat is the string concatenation monoid.
type Concat struct{}

func (Concat) Combine(a, b string) string { return a + b }
func (Concat) Empty() string              { return "" }

// Append is the slice concatenation monoid.
// Combine never aliases its operands.
type Append[T any] struct{}

func (Append[T]) Combine(a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func (Append[T]) Empty() []T { return nil }

// Number is the set of types with an additive monoid.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is the additive monoid.
type Sum[N Number] struct{}

func (Sum[N]) Combine(a, b N) N { return a + b }

func (Sum[N]) Empty() N {
	var zero N
	return zero
}

// Errors is the error accumulation monoid. nil is the identity;
// two non-nil errors are flattened into a *multierror.Error with the
// first operand's errors first.
type Errors struct{}

func (Errors) Combine(a, b error) error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	// A fresh accumulator keeps a *multierror.Error operand unmodified.
	return multierror.Append(&multierror.Error{}, a, b)
}

func (Errors) Empty() error { return nil }
