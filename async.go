// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AsyncF is the context-aware, failure-propagating container for
// computations that perform real effects.
//
// Ap evaluates both operands concurrently; the first failure cancels the
// context seen by the other operand and is returned. Select and Bind are
// sequential, so the handler of a Select is genuinely skipped on Right.
type AsyncF struct{}

type asyncK func(ctx context.Context) (Erased, error)

func (AsyncF) Pure(a Erased) Erased {
	return asyncK(func(context.Context) (Erased, error) { return a, nil })
}

func (AsyncF) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(asyncK)
	return asyncK(func(ctx context.Context) (Erased, error) {
		a, err := mk(ctx)
		if err != nil {
			return nil, err
		}
		return f(a), nil
	})
}

func (AsyncF) Ap(mf, m Erased) Erased {
	fk, mk := mf.(asyncK), m.(asyncK)
	return asyncK(func(ctx context.Context) (Erased, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var f, a Erased
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			f, err = fk(gctx)
			return err
		})
		g.Go(func() (err error) {
			a, err = mk(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return f.(func(Erased) Erased)(a), nil
	})
}

func (AsyncF) Delay(thunk func() Erased) Erased {
	return asyncK(func(ctx context.Context) (Erased, error) { return thunk().(asyncK)(ctx) })
}

func (AsyncF) Bind(m Erased, f func(Erased) Erased) Erased {
	mk := m.(asyncK)
	return asyncK(func(ctx context.Context) (Erased, error) {
		a, err := mk(ctx)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return f(a).(asyncK)(ctx)
	})
}

func (w AsyncF) Select(x, y Erased) Erased { return SelectMKind(w, x, y) }

// Async wraps an effectful function as a computation.
func Async[A any](f func(ctx context.Context) (A, error)) F[AsyncF, A] {
	return F[AsyncF, A]{kind: asyncK(func(ctx context.Context) (Erased, error) {
		a, err := f(ctx)
		if err != nil {
			return nil, err
		}
		return a, nil
	})}
}

// Fail creates a computation that fails with err.
func Fail[A any](err error) F[AsyncF, A] {
	return F[AsyncF, A]{kind: asyncK(func(context.Context) (Erased, error) { return nil, err })}
}

// RunAsync evaluates m under ctx.
func RunAsync[A any](ctx context.Context, m F[AsyncF, A]) (A, error) {
	a, err := m.kind.(asyncK)(ctx)
	if err != nil {
		var zero A
		return zero, err
	}
	return cast[A](a), nil
}
