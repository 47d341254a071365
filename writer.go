// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// WriterF is the log-accumulating container: a computation paired with
// output combined through the monoid M, in evaluation order.
type WriterF[W any, M Monoid[W]] struct{}

type writerK[W any] func() (Erased, W)

func (WriterF[W, M]) Pure(a Erased) Erased {
	return writerK[W](func() (Erased, W) { return a, witness[M]().Empty() })
}

func (WriterF[W, M]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(writerK[W])
	return writerK[W](func() (Erased, W) {
		a, out := mk()
		return f(a), out
	})
}

func (WriterF[W, M]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(writerK[W]), m.(writerK[W])
	return writerK[W](func() (Erased, W) {
		f, out1 := fk()
		a, out2 := mk()
		return f.(func(Erased) Erased)(a), witness[M]().Combine(out1, out2)
	})
}

func (WriterF[W, M]) Delay(thunk func() Erased) Erased {
	return writerK[W](func() (Erased, W) { return thunk().(writerK[W])() })
}

func (WriterF[W, M]) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(writerK[W])
	return writerK[W](func() (Erased, W) {
		a, out1 := mk()
		b, out2 := f(a).(writerK[W])()
		return b, witness[M]().Combine(out1, out2)
	})
}

func (w WriterF[W, M]) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Tell appends w to the accumulated output.
func Tell[M Monoid[W], W any](w W) F[WriterF[W, M], struct{}] {
	return F[WriterF[W, M], struct{}]{kind: writerK[W](func() (Erased, W) { return struct{}{}, w })}
}

// Listen runs m and returns its output alongside the result.
func Listen[W any, M Monoid[W], A any](m F[WriterF[W, M], A]) F[WriterF[W, M], Pair[A, W]] {
	mk := m.kind.(writerK[W])
	return F[WriterF[W, M], Pair[A, W]]{kind: writerK[W](func() (Erased, W) {
		a, out := mk()
		return Pair[A, W]{Fst: cast[A](a), Snd: out}, out
	})}
}

// Censor runs m and applies f to its output.
func Censor[W any, M Monoid[W], A any](f func(W) W, m F[WriterF[W, M], A]) F[WriterF[W, M], A] {
	mk := m.kind.(writerK[W])
	return F[WriterF[W, M], A]{kind: writerK[W](func() (Erased, W) {
		a, out := mk()
		return a, f(out)
	})}
}

// RunWriter runs a writer computation and returns both result and output.
func RunWriter[W any, M Monoid[W], A any](m F[WriterF[W, M], A]) (A, W) {
	a, out := m.kind.(writerK[W])()
	return cast[A](a), out
}

// ExecWriter runs a writer computation and returns only the output.
func ExecWriter[W any, M Monoid[W], A any](m F[WriterF[W, M], A]) W {
	_, out := RunWriter(m)
	return out
}
