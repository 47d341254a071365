// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// ReaderF is the environment-reading container: a function of a
// read-only environment R. It covers both plain functions of an
// environment and reader-style computations.
type ReaderF[R any] struct{}

type readerK[R any] func(R) Erased

func (ReaderF[R]) Pure(a Erased) Erased {
	return readerK[R](func(R) Erased { return a })
}

func (ReaderF[R]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(readerK[R])
	return readerK[R](func(env R) Erased { return f(mk(env)) })
}

func (ReaderF[R]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(readerK[R]), m.(readerK[R])
	return readerK[R](func(env R) Erased {
		f := fk(env).(func(Erased) Erased)
		return f(mk(env))
	})
}

func (ReaderF[R]) Delay(thunk func() Erased) Erased {
	return readerK[R](func(env R) Erased { return thunk().(readerK[R])(env) })
}

func (ReaderF[R]) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(readerK[R])
	return readerK[R](func(env R) Erased { return f(mk(env)).(readerK[R])(env) })
}

func (w ReaderF[R]) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Ask returns the current environment.
func Ask[R any]() F[ReaderF[R], R] {
	return F[ReaderF[R], R]{kind: readerK[R](func(env R) Erased { return env })}
}

// Asks projects the environment with f.
func Asks[R, A any](f func(R) A) F[ReaderF[R], A] {
	return F[ReaderF[R], A]{kind: readerK[R](func(env R) Erased { return f(env) })}
}

// Local runs m in an environment modified by f.
func Local[R, A any](f func(R) R, m F[ReaderF[R], A]) F[ReaderF[R], A] {
	mk := m.kind.(readerK[R])
	return F[ReaderF[R], A]{kind: readerK[R](func(env R) Erased { return mk(f(env)) })}
}

// RunReader runs a computation with the given environment.
func RunReader[R, A any](env R, m F[ReaderF[R], A]) A {
	return cast[A](m.kind.(readerK[R])(env))
}
