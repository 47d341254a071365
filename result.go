// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// EitherF is the failure-propagating container: the first Throw aborts
// the computation with an error of type E.
type EitherF[E any] struct{}

type eitherK[E any] func() Either[E, Erased]

func (EitherF[E]) Pure(a Erased) Erased {
	return eitherK[E](func() Either[E, Erased] { return Right[E](a) })
}

func (EitherF[E]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(eitherK[E])
	return eitherK[E](func() Either[E, Erased] { return MapEither(mk(), f) })
}

func (EitherF[E]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(eitherK[E]), m.(eitherK[E])
	return eitherK[E](func() Either[E, Erased] {
		f := fk()
		if e, ok := f.GetLeft(); ok {
			return Left[E, Erased](e)
		}
		g, _ := f.GetRight()
		return MapEither(mk(), g.(func(Erased) Erased))
	})
}

func (EitherF[E]) Delay(thunk func() Erased) Erased {
	return eitherK[E](func() Either[E, Erased] { return thunk().(eitherK[E])() })
}

func (EitherF[E]) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(eitherK[E])
	return eitherK[E](func() Either[E, Erased] {
		return FlatMapEither(mk(), func(a Erased) Either[E, Erased] {
			return f(a).(eitherK[E])()
		})
	})
}

func (w EitherF[E]) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Throw aborts the computation with err.
func Throw[A, E any](err E) F[EitherF[E], A] {
	return F[EitherF[E], A]{kind: eitherK[E](func() Either[E, Erased] { return Left[E, Erased](err) })}
}

// FromEither lifts an Either into the failure-propagating container.
func FromEither[E, A any](v Either[E, A]) F[EitherF[E], A] {
	return F[EitherF[E], A]{kind: eitherK[E](func() Either[E, Erased] {
		return MapEither(v, func(a A) Erased { return a })
	})}
}

// Catch runs m; if it fails, the error is passed to handler.
func Catch[E, A any](m F[EitherF[E], A], handler func(E) F[EitherF[E], A]) F[EitherF[E], A] {
	mk := m.kind.(eitherK[E])
	return F[EitherF[E], A]{kind: eitherK[E](func() Either[E, Erased] {
		r := mk()
		if e, ok := r.GetLeft(); ok {
			return handler(e).kind.(eitherK[E])()
		}
		return r
	})}
}

// RunEither runs a failure-propagating computation and returns Either.
func RunEither[E, A any](m F[EitherF[E], A]) Either[E, A] {
	return MapEither(m.kind.(eitherK[E])(), cast[A])
}
