// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// OptionF is the optional-value container: a computation that produces a
// value or nothing. Nothing short-circuits the rest of the computation.
type OptionF struct{}

type optionK func() (Erased, bool)

func (OptionF) Pure(a Erased) Erased {
	return optionK(func() (Erased, bool) { return a, true })
}

func (OptionF) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(optionK)
	return optionK(func() (Erased, bool) {
		a, ok := mk()
		if !ok {
			return nil, false
		}
		return f(a), true
	})
}

func (OptionF) Ap(mf, m Erased) Erased {
	fk, mk := mf.(optionK), m.(optionK)
	return optionK(func() (Erased, bool) {
		f, ok := fk()
		if !ok {
			return nil, false
		}
		a, ok := mk()
		if !ok {
			return nil, false
		}
		return f.(func(Erased) Erased)(a), true
	})
}

func (OptionF) Delay(thunk func() Erased) Erased {
	return optionK(func() (Erased, bool) { return thunk().(optionK)() })
}

func (OptionF) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(optionK)
	return optionK(func() (Erased, bool) {
		a, ok := mk()
		if !ok {
			return nil, false
		}
		return f(a).(optionK)()
	})
}

func (w OptionF) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Some creates an optional computation holding a.
func Some[A any](a A) F[OptionF, A] {
	return Pure[OptionF](a)
}

// None creates an optional computation holding nothing.
func None[A any]() F[OptionF, A] {
	return F[OptionF, A]{kind: optionK(func() (Erased, bool) { return nil, false })}
}

// FromOption lifts a deferred (value, ok) pair into OptionF.
func FromOption[A any](f func() (A, bool)) F[OptionF, A] {
	return F[OptionF, A]{kind: optionK(func() (Erased, bool) { return f() })}
}

// RunOption evaluates m, returning its value and whether one exists.
func RunOption[A any](m F[OptionF, A]) (A, bool) {
	a, ok := m.kind.(optionK)()
	if !ok {
		var zero A
		return zero, false
	}
	return cast[A](a), true
}
