// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// Validation is either Failure(E) or Success(A).
type Validation[E, A any] struct {
	ok  bool
	err E
	val A
}

// Failure creates a failed Validation.
func Failure[A, E any](e E) Validation[E, A] {
	return Validation[E, A]{err: e}
}

// Success creates a successful Validation.
func Success[E, A any](a A) Validation[E, A] {
	return Validation[E, A]{ok: true, val: a}
}

// IsSuccess returns true if this is a Success value.
func (v Validation[E, A]) IsSuccess() bool { return v.ok }

// IsFailure returns true if this is a Failure value.
func (v Validation[E, A]) IsFailure() bool { return !v.ok }

// GetSuccess returns the Success value and true, or zero and false.
func (v Validation[E, A]) GetSuccess() (A, bool) {
	if v.ok {
		return v.val, true
	}
	var zero A
	return zero, false
}

// GetFailure returns the Failure value and true, or zero and false.
func (v Validation[E, A]) GetFailure() (E, bool) {
	if !v.ok {
		return v.err, true
	}
	var zero E
	return zero, false
}

// MatchValidation pattern matches on v, calling onFailure or onSuccess.
func MatchValidation[E, A, T any](v Validation[E, A], onFailure func(E) T, onSuccess func(A) T) T {
	if v.ok {
		return onSuccess(v.val)
	}
	return onFailure(v.err)
}

// ValidationF is the accumulating validation container. Independent
// composition combines the errors of both failed operands through S, first
// operand first. Select never sequences dependently:
//
//   - Success(Right(b)) yields b without evaluating the handler;
//   - Success(Left(a)) applies the handler to a, propagating its failure;
//   - Failure(e) yields Failure(e) without evaluating the handler.
//
// ValidationF satisfies the Selective laws but is not a Monad: no Bind
// agrees with its accumulating Ap.
type ValidationF[E any, S Semigroup[E]] struct{}

type validationK[E any] func() Validation[E, Erased]

func (ValidationF[E, S]) Pure(a Erased) Erased {
	return validationK[E](func() Validation[E, Erased] { return Success[E](a) })
}

func (ValidationF[E, S]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(validationK[E])
	return validationK[E](func() Validation[E, Erased] {
		v := mk()
		if !v.ok {
			return v
		}
		return Success[E](f(v.val))
	})
}

func (ValidationF[E, S]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(validationK[E]), m.(validationK[E])
	return validationK[E](func() Validation[E, Erased] {
		f, a := fk(), mk()
		switch {
		case !f.ok && !a.ok:
			return Failure[Erased](witness[S]().Combine(f.err, a.err))
		case !f.ok:
			return f
		case !a.ok:
			return a
		}
		return Success[E](f.val.(func(Erased) Erased)(a.val))
	})
}

func (ValidationF[E, S]) Delay(thunk func() Erased) Erased {
	return validationK[E](func() Validation[E, Erased] { return thunk().(validationK[E])() })
}

func (ValidationF[E, S]) Select(x, y Erased) Erased {
	xk, yk := x.(validationK[E]), y.(validationK[E])
	return validationK[E](func() Validation[E, Erased] {
		v := xk()
		if !v.ok {
			return v
		}
		e := v.val.(Either[Erased, Erased])
		if b, ok := e.GetRight(); ok {
			return Success[E](b)
		}
		a, _ := e.GetLeft()
		h := yk()
		if !h.ok {
			return h
		}
		return Success[E](h.val.(func(Erased) Erased)(a))
	})
}

// Valid creates a successful validation computation.
func Valid[S Semigroup[E], E, A any](a A) F[ValidationF[E, S], A] {
	return Pure[ValidationF[E, S]](a)
}

// Invalid creates a failed validation computation.
func Invalid[S Semigroup[E], A, E any](e E) F[ValidationF[E, S], A] {
	return F[ValidationF[E, S], A]{kind: validationK[E](func() Validation[E, Erased] {
		return Failure[Erased](e)
	})}
}

// Validate lifts a deferred Validation into the container.
func Validate[S Semigroup[E], E, A any](f func() Validation[E, A]) F[ValidationF[E, S], A] {
	return F[ValidationF[E, S], A]{kind: validationK[E](func() Validation[E, Erased] {
		v := f()
		if !v.ok {
			return Failure[Erased](v.err)
		}
		return Success[E, Erased](v.val)
	})}
}

// RunValidation evaluates m.
func RunValidation[E any, S Semigroup[E], A any](m F[ValidationF[E, S], A]) Validation[E, A] {
	v := m.kind.(validationK[E])()
	if !v.ok {
		return Failure[A](v.err)
	}
	return Success[E](cast[A](v.val))
}
