// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// ListF is the list-of-alternatives container: a nondeterministic
// computation producing every result of every combination of choices, in
// order.
type ListF struct{}

type listK func() []Erased

func (ListF) Pure(a Erased) Erased {
	return listK(func() []Erased { return []Erased{a} })
}

func (ListF) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(listK)
	return listK(func() []Erased {
		as := mk()
		out := make([]Erased, len(as))
		for i, a := range as {
			out[i] = f(a)
		}
		return out
	})
}

func (ListF) Ap(mf, m Erased) Erased {
	fk, mk := mf.(listK), m.(listK)
	return listK(func() []Erased {
		fs := fk()
		if len(fs) == 0 {
			return nil
		}
		as := mk()
		out := make([]Erased, 0, len(fs)*len(as))
		for _, f := range fs {
			for _, a := range as {
				out = append(out, f.(func(Erased) Erased)(a))
			}
		}
		return out
	})
}

func (ListF) Delay(thunk func() Erased) Erased {
	return listK(func() []Erased { return thunk().(listK)() })
}

func (ListF) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(listK)
	return listK(func() []Erased {
		var out []Erased
		for _, a := range mk() {
			out = append(out, f(a).(listK)()...)
		}
		return out
	})
}

func (w ListF) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Choose creates a computation with one alternative per value.
func Choose[A any](values ...A) F[ListF, A] {
	vs := append([]A(nil), values...)
	return F[ListF, A]{kind: listK(func() []Erased {
		out := make([]Erased, len(vs))
		for i, v := range vs {
			out[i] = v
		}
		return out
	})}
}

// RunList evaluates m and returns every alternative result.
func RunList[A any](m F[ListF, A]) []A {
	as := m.kind.(listK)()
	out := make([]A, len(as))
	for i, a := range as {
		out[i] = cast[A](a)
	}
	return out
}
