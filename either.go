// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// Either is the discriminant inspected by [Select]: a value that is
// either Left (the handler must run) or Right (the handler may be skipped).
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left creates a Left value.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{isRight: false, left: a}
}

// Right creates a Right value.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{isRight: true, right: b}
}

// IsRight reports whether [Select] may skip its handler for e.
func (e Either[A, B]) IsRight() bool { return e.isRight }

// IsLeft reports whether [Select] must run its handler for e.
func (e Either[A, B]) IsLeft() bool { return !e.isRight }

// GetRight returns the finished result carried by e, if any.
func (e Either[A, B]) GetRight() (b B, ok bool) {
	if e.isRight {
		b, ok = e.right, true
	}
	return
}

// GetLeft returns the pending handler input carried by e, if any.
func (e Either[A, B]) GetLeft() (a A, ok bool) {
	if !e.isRight {
		a, ok = e.left, true
	}
	return
}

// MatchEither resolves e the way [Select] does when the handler is pure:
// onLeft plays the handler, onRight receives the finished result.
func MatchEither[A, B, T any](e Either[A, B], onLeft func(A) T, onRight func(B) T) T {
	if !e.isRight {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

// MapEither transforms a finished result and leaves a pending input alone.
func MapEither[A, B, C any](e Either[A, B], f func(B) C) Either[A, C] {
	return FlatMapEither(e, func(b B) Either[A, C] { return Right[A](f(b)) })
}

// FlatMapEither lets a finished result reopen the choice: f may turn it
// back into a pending handler input.
func FlatMapEither[A, B, C any](e Either[A, B], f func(B) Either[A, C]) Either[A, C] {
	if !e.isRight {
		return Left[A, C](e.left)
	}
	return f(e.right)
}

// MapLeftEither rewrites a pending handler input and leaves a finished
// result alone.
func MapLeftEither[A, C, B any](e Either[A, B], f func(A) C) Either[C, B] {
	if !e.isRight {
		return Left[C, B](f(e.left))
	}
	return Right[C](e.right)
}

// SwapEither flips which side asks for the handler.
func SwapEither[A, B any](e Either[A, B]) Either[B, A] {
	return MatchEither(e, Right[B, A], Left[B, A])
}

// Pair carries a handler input together with the value it was paired
// with, as the associativity reshaping and [UntilRight] need.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// eraseEither converts Either[A, B] into the Either[Erased, Erased] shape
// that witness Select implementations consume.
func eraseEither[A, B any](v Erased) Erased {
	e := cast[Either[A, B]](v)
	if e.isRight {
		return Right[Erased, Erased](e.right)
	}
	return Left[Erased, Erased](e.left)
}
