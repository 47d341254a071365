// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// Derived control combinators. Every function here is written against
// Select (and Pure/Map/Delay), so any conforming container gets them.

// Branch applies l if x yields Left and r if x yields Right.
// The handler that is not chosen is the one a container may skip.
func Branch[W Selective, A, B, C any](x F[W, Either[A, B]], l F[W, func(A) C], r F[W, func(B) C]) F[W, C] {
	inner := Select(
		Map(x, func(e Either[A, B]) Either[A, Either[B, C]] {
			if b, ok := e.GetRight(); ok {
				return Right[A](Left[B, C](b))
			}
			a, _ := e.GetLeft()
			return Left[A, Either[B, C]](a)
		}),
		Map(l, func(f func(A) C) func(A) Either[B, C] {
			return func(a A) Either[B, C] { return Right[B](f(a)) }
		}),
	)
	return Select(inner, r)
}

func constant[A, T any](a A) func(T) A {
	return func(T) A { return a }
}

// IfS selects t when x yields true and e otherwise.
func IfS[W Selective, A any](x F[W, bool], t, e F[W, A]) F[W, A] {
	return Branch(
		Map(x, func(b bool) Either[struct{}, struct{}] {
			if b {
				return Left[struct{}, struct{}](struct{}{})
			}
			return Right[struct{}](struct{}{})
		}),
		Map(t, constant[A, struct{}]),
		Map(e, constant[A, struct{}]),
	)
}

// WhenS runs act only when x yields true.
func WhenS[W Selective](x F[W, bool], act F[W, struct{}]) F[W, struct{}] {
	return IfS(x, act, Pure[W](struct{}{}))
}

// WhileS repeats x until it yields false.
// The description is a single knot tied through [Delay], so it builds in
// constant time; evaluation terminates iff x eventually yields false.
func WhileS[W Selective](x F[W, bool]) F[W, struct{}] {
	var loop F[W, struct{}]
	loop = WhenS(x, Delay(func() F[W, struct{}] { return loop }))
	return loop
}

// UntilRight evaluates x repeatedly until it yields Right(b). Each Left(a)
// is combined onto the front of the accumulator, so results
// [Left a1, Left a2, Right b] produce (a2 <> a1 <> empty, b).
func UntilRight[M Monoid[A], W Selective, A, B any](x F[W, Either[A, B]]) F[W, Pair[A, B]] {
	m := witness[M]()
	// step yields a function from the accumulator so far to the final pair.
	var step F[W, func(A) Pair[A, B]]
	step = Select(
		Map(x, func(e Either[A, B]) Either[A, func(A) Pair[A, B]] {
			if b, ok := e.GetRight(); ok {
				return Right[A](func(acc A) Pair[A, B] { return Pair[A, B]{Fst: acc, Snd: b} })
			}
			a, _ := e.GetLeft()
			return Left[A, func(A) Pair[A, B]](a)
		}),
		Map(Delay(func() F[W, func(A) Pair[A, B]] { return step }), func(k func(A) Pair[A, B]) func(A) func(A) Pair[A, B] {
			return func(a A) func(A) Pair[A, B] {
				return func(acc A) Pair[A, B] { return k(m.Combine(a, acc)) }
			}
		}),
	)
	return Map(step, func(k func(A) Pair[A, B]) Pair[A, B] { return k(m.Empty()) })
}

// appendLeft combines e1 in front of a Left payload.
func appendLeft[S Semigroup[E], E, A any](e1 E, v Either[E, A]) Either[E, A] {
	if e2, ok := v.GetLeft(); ok {
		return Left[E, A](witness[S]().Combine(e1, e2))
	}
	return v
}

// OrElse returns x's Right if present. Otherwise it evaluates y: a Right
// from y is returned as is, a Left is combined after x's error.
func OrElse[S Semigroup[E], W Selective, E, A any](x, y F[W, Either[E, A]]) F[W, Either[E, A]] {
	return Branch(
		x,
		Map(y, func(v Either[E, A]) func(E) Either[E, A] {
			return func(e1 E) Either[E, A] { return appendLeft[S](e1, v) }
		}),
		Pure[W](Right[E, A]),
	)
}

// AndAlso is the dual of OrElse: it returns x's Left if present, and
// otherwise combines the Right payloads of x and y.
func AndAlso[S Semigroup[A], W Selective, E, A any](x, y F[W, Either[E, A]]) F[W, Either[E, A]] {
	swap := func(v F[W, Either[E, A]]) F[W, Either[A, E]] { return Map(v, SwapEither[E, A]) }
	return Map(OrElse[S](swap(x), swap(y)), SwapEither[A, E])
}

// FoldS folds AndAlso over xs from the right, stopping at the first Left.
func FoldS[M Monoid[A], W Selective, E, A any](xs []F[W, Either[E, A]]) F[W, Either[E, A]] {
	acc := Pure[W](Right[E](witness[M]().Empty()))
	for i := len(xs) - 1; i >= 0; i-- {
		acc = AndAlso[M](xs[i], acc)
	}
	return acc
}

// Or is short-circuit disjunction: y is eligible to be skipped when x
// yields true.
func Or[W Selective](x, y F[W, bool]) F[W, bool] {
	return IfS(x, Pure[W](true), y)
}

// And is short-circuit conjunction: y is eligible to be skipped when x
// yields false.
func And[W Selective](x, y F[W, bool]) F[W, bool] {
	return IfS(x, y, Pure[W](false))
}

// AnyS reports whether p holds for some element, folding [Or] from the
// right so evaluation stops at the first true.
func AnyS[W Selective, A any](p func(A) F[W, bool], xs []A) F[W, bool] {
	acc := Pure[W](false)
	for i := len(xs) - 1; i >= 0; i-- {
		acc = Or(p(xs[i]), acc)
	}
	return acc
}

// AllS reports whether p holds for every element, folding [And] from the
// right so evaluation stops at the first false.
func AllS[W Selective, A any](p func(A) F[W, bool], xs []A) F[W, bool] {
	acc := Pure[W](true)
	for i := len(xs) - 1; i >= 0; i-- {
		acc = And(p(xs[i]), acc)
	}
	return acc
}
