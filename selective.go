// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// Erased represents a type-erased value crossing a container witness.
// Witness methods process heterogeneous value types through one
// homogeneous representation; concrete types are recovered via type
// assertions at the typed boundary ([Map], [Select], ...).
type Erased = any

// Applicative is implemented by container witnesses that support pure
// values, mapping, and independent composition.
//
// A witness is a zero-size type naming a container shape. Its methods take
// and return erased kinds: the container-specific representation of a
// computation, e.g. a thunk. Kinds passed to a witness are always kinds
// previously produced by the same witness.
type Applicative interface {
	// Pure lifts a value into a kind that performs no effect.
	Pure(a Erased) Erased

	// Map applies f to the eventual result of m.
	Map(m Erased, f func(Erased) Erased) Erased

	// Ap composes a kind producing func(Erased) Erased with a kind
	// producing its argument. Both operands are always evaluated, mf first.
	Ap(mf, m Erased) Erased

	// Delay defers construction of a kind until evaluation. Self-referential
	// descriptions are tied through Delay; implementations must not call
	// thunk during Delay itself.
	Delay(thunk func() Erased) Erased
}

// Selective is implemented by container witnesses that support the choice
// operation.
//
// Select receives x producing Either[Erased, Erased] and y producing
// func(Erased) Erased. On Left(a) the function from y is applied to a.
// On Right(b) the result is b; y's effects may or may not be performed.
type Selective interface {
	Applicative
	Select(x, y Erased) Erased
}

// Monad is implemented by container witnesses that support dependent
// sequencing. Every Monad must define Select as [SelectMKind].
type Monad interface {
	Selective
	Bind(m Erased, f func(Erased) Erased) Erased
}

// F is an immutable description of a computation in container W that
// would, if evaluated, produce a value of type A. Constructing an F
// performs no effect; evaluation happens in the container's runner.
type F[W Selective, A any] struct {
	kind Erased
}

// Kind returns the erased container representation of m.
func (m F[W, A]) Kind() Erased { return m.kind }

// FromKind wraps an erased kind produced by witness W.
// It is the entry point for third-party container implementations.
func FromKind[W Selective, A any](kind Erased) F[W, A] {
	return F[W, A]{kind: kind}
}

// cast recovers a concrete value from an erased one.
// An erased nil is read back as the zero value of A.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// eraseFunc lifts func(A) B into the func(Erased) Erased shape.
func eraseFunc[A, B any](v Erased) Erased {
	f := cast[func(A) B](v)
	return func(a Erased) Erased { return f(cast[A](a)) }
}

// witness returns the zero value of W, which carries its method set.
func witness[W any]() W {
	var w W
	return w
}

// Pure lifts a value into W without effects.
func Pure[W Selective, A any](a A) F[W, A] {
	return F[W, A]{kind: witness[W]().Pure(a)}
}

// Map applies a pure function to the result of m.
func Map[W Selective, A, B any](m F[W, A], f func(A) B) F[W, B] {
	return F[W, B]{kind: witness[W]().Map(m.kind, func(a Erased) Erased {
		return f(cast[A](a))
	})}
}

// Ap is independent composition: it evaluates mf then m and applies the
// function to the value. Neither operand can depend on the other's result.
func Ap[W Selective, A, B any](mf F[W, func(A) B], m F[W, A]) F[W, B] {
	w := witness[W]()
	return F[W, B]{kind: w.Ap(w.Map(mf.kind, eraseFunc[A, B]), m.kind)}
}

// Lift2 combines two independent computations with a pure function.
func Lift2[W Selective, A, B, C any](f func(A, B) C, ma F[W, A], mb F[W, B]) F[W, C] {
	return Ap(Map(ma, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}), mb)
}

// Delay defers construction of m until evaluation.
// This is how recursive descriptions avoid infinite expansion.
func Delay[W Selective, A any](thunk func() F[W, A]) F[W, A] {
	return F[W, A]{kind: witness[W]().Delay(func() Erased { return thunk().kind })}
}

// Select is the choice operation. If x yields Left(a), the function held
// in y is applied to a. If x yields Right(b), the result is b, and the
// container is permitted to skip y's effects.
func Select[W Selective, A, B any](x F[W, Either[A, B]], y F[W, func(A) B]) F[W, B] {
	w := witness[W]()
	return F[W, B]{kind: w.Select(w.Map(x.kind, eraseEither[A, B]), w.Map(y.kind, eraseFunc[A, B]))}
}

// SelectM is Select defined through dependent sequencing: y is evaluated
// only when x yields Left.
func SelectM[W Monad, A, B any](x F[W, Either[A, B]], y F[W, func(A) B]) F[W, B] {
	w := witness[W]()
	return F[W, B]{kind: SelectMKind(w, w.Map(x.kind, eraseEither[A, B]), w.Map(y.kind, eraseFunc[A, B]))}
}

// SelectA is Select defined through independent composition: both operands
// are always evaluated.
func SelectA[W Selective, A, B any](x F[W, Either[A, B]], y F[W, func(A) B]) F[W, B] {
	w := witness[W]()
	return F[W, B]{kind: SelectAKind(w, w.Map(x.kind, eraseEither[A, B]), w.Map(y.kind, eraseFunc[A, B]))}
}

// SelectMKind is the erased sequencing-derived choice. Monad witnesses
// return it from their Select method.
func SelectMKind(w Monad, x, y Erased) Erased {
	return w.Bind(x, func(v Erased) Erased {
		e := v.(Either[Erased, Erased])
		if b, ok := e.GetRight(); ok {
			return w.Pure(b)
		}
		a, _ := e.GetLeft()
		return w.Map(y, func(f Erased) Erased {
			return f.(func(Erased) Erased)(a)
		})
	})
}

// SelectAKind is the erased non-skipping choice built from Ap alone.
func SelectAKind(w Applicative, x, y Erased) Erased {
	return w.Ap(w.Map(x, func(v Erased) Erased {
		e := v.(Either[Erased, Erased])
		return func(f Erased) Erased {
			if b, ok := e.GetRight(); ok {
				return b
			}
			a, _ := e.GetLeft()
			return f.(func(Erased) Erased)(a)
		}
	}), y)
}

// ApS is independent composition derived from Select.
// It satisfies the applicative laws for every lawful Selective.
func ApS[W Selective, A, B any](mf F[W, func(A) B], m F[W, A]) F[W, B] {
	return Select(
		Map(mf, Left[func(A) B, B]),
		Map(m, func(a A) func(func(A) B) B {
			return func(f func(A) B) B { return f(a) }
		}),
	)
}

// Bind sequences m with a computation chosen from its result.
func Bind[W Monad, A, B any](m F[W, A], f func(A) F[W, B]) F[W, B] {
	return F[W, B]{kind: witness[W]().Bind(m.kind, func(a Erased) Erased {
		return f(cast[A](a)).kind
	})}
}

// Then sequences two independent computations, discarding the first result.
func Then[W Selective, A, B any](m F[W, A], n F[W, B]) F[W, B] {
	return Ap(Map(m, func(A) func(B) B {
		return func(b B) B { return b }
	}), n)
}
