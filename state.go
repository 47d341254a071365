// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// StateF is the state-threading container: a computation that reads and
// replaces a state S as it runs.
type StateF[S any] struct{}

type stateK[S any] func(S) (Erased, S)

func (StateF[S]) Pure(a Erased) Erased {
	return stateK[S](func(s S) (Erased, S) { return a, s })
}

func (StateF[S]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(stateK[S])
	return stateK[S](func(s S) (Erased, S) {
		a, s1 := mk(s)
		return f(a), s1
	})
}

func (StateF[S]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(stateK[S]), m.(stateK[S])
	return stateK[S](func(s S) (Erased, S) {
		f, s1 := fk(s)
		a, s2 := mk(s1)
		return f.(func(Erased) Erased)(a), s2
	})
}

func (StateF[S]) Delay(thunk func() Erased) Erased {
	return stateK[S](func(s S) (Erased, S) { return thunk().(stateK[S])(s) })
}

func (StateF[S]) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(stateK[S])
	return stateK[S](func(s S) (Erased, S) {
		a, s1 := mk(s)
		return f(a).(stateK[S])(s1)
	})
}

func (w StateF[S]) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Get returns the current state.
func Get[S any]() F[StateF[S], S] {
	return F[StateF[S], S]{kind: stateK[S](func(s S) (Erased, S) { return s, s })}
}

// Gets projects the current state with f.
func Gets[S, A any](f func(S) A) F[StateF[S], A] {
	return F[StateF[S], A]{kind: stateK[S](func(s S) (Erased, S) { return f(s), s })}
}

// Put replaces the current state.
func Put[S any](s S) F[StateF[S], struct{}] {
	return F[StateF[S], struct{}]{kind: stateK[S](func(S) (Erased, S) { return struct{}{}, s })}
}

// Modify applies f to the state and returns the new state.
func Modify[S any](f func(S) S) F[StateF[S], S] {
	return F[StateF[S], S]{kind: stateK[S](func(s S) (Erased, S) {
		s1 := f(s)
		return s1, s1
	})}
}

// RunState runs a stateful computation and returns both the result and final state.
func RunState[S, A any](initial S, m F[StateF[S], A]) (A, S) {
	a, s := m.kind.(stateK[S])(initial)
	return cast[A](a), s
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, m F[StateF[S], A]) A {
	a, _ := RunState(initial, m)
	return a
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, m F[StateF[S], A]) S {
	_, s := RunState(initial, m)
	return s
}
