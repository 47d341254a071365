// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	"code.hybscloud.com/selective"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// instance describes how to generate and observe computations in W.
type instance[W selective.Selective] struct {
	// leaf returns a random computation producing an int that performs an
	// effect observable through observe.
	leaf func(rng *rand.Rand, tag int) selective.F[W, int]
	// observe evaluates m and renders everything observable about it.
	observe func(m selective.F[W, int]) string
}

func optionInstance() instance[selective.OptionF] {
	return instance[selective.OptionF]{
		leaf: func(rng *rand.Rand, _ int) selective.F[selective.OptionF, int] {
			if rng.IntN(4) == 0 {
				return selective.None[int]()
			}
			return selective.Some(randInt(rng))
		},
		observe: func(m selective.F[selective.OptionF, int]) string {
			return fmt.Sprint(selective.RunOption(m))
		},
	}
}

func listInstance() instance[selective.ListF] {
	return instance[selective.ListF]{
		leaf: func(rng *rand.Rand, _ int) selective.F[selective.ListF, int] {
			vs := make([]int, rng.IntN(3))
			for i := range vs {
				vs[i] = randInt(rng)
			}
			return selective.Choose(vs...)
		},
		observe: func(m selective.F[selective.ListF, int]) string {
			return fmt.Sprint(selective.RunList(m))
		},
	}
}

func readerInstance() instance[selective.ReaderF[int]] {
	return instance[selective.ReaderF[int]]{
		leaf: func(rng *rand.Rand, _ int) selective.F[selective.ReaderF[int], int] {
			k, v := rng.IntN(5), randInt(rng)
			return selective.Asks(func(env int) int { return env*k + v })
		},
		observe: func(m selective.F[selective.ReaderF[int], int]) string {
			out := ""
			for env := range 3 {
				out += fmt.Sprint(selective.RunReader(env, m), " ")
			}
			return out
		},
	}
}

type logW = selective.WriterF[string, selective.Concat]

func writerInstance() instance[logW] {
	return instance[logW]{
		leaf: func(rng *rand.Rand, tag int) selective.F[logW, int] {
			v := randInt(rng)
			return selective.Map(selective.Tell[selective.Concat]("<"+strconv.Itoa(tag)+">"), func(struct{}) int { return v })
		},
		observe: func(m selective.F[logW, int]) string {
			return fmt.Sprint(selective.RunWriter(m))
		},
	}
}

func eitherInstance() instance[selective.EitherF[string]] {
	return instance[selective.EitherF[string]]{
		leaf: func(rng *rand.Rand, tag int) selective.F[selective.EitherF[string], int] {
			if rng.IntN(4) == 0 {
				return selective.Throw[int]("e" + strconv.Itoa(tag))
			}
			return selective.FromEither(selective.Right[string](randInt(rng)))
		},
		observe: func(m selective.F[selective.EitherF[string], int]) string {
			return fmt.Sprint(selective.RunEither(m))
		},
	}
}

func stateInstance() instance[selective.StateF[int]] {
	return instance[selective.StateF[int]]{
		leaf: func(rng *rand.Rand, _ int) selective.F[selective.StateF[int], int] {
			d, v := rng.IntN(7)-3, randInt(rng)
			return selective.Map(selective.Modify(func(s int) int { return s*2 + d }), func(s int) int { return s + v })
		},
		observe: func(m selective.F[selective.StateF[int], int]) string {
			out := ""
			for s := range 3 {
				out += fmt.Sprint(selective.RunState(s, m))
			}
			return out
		},
	}
}

type validW = selective.ValidationF[string, selective.Concat]

func validationInstance() instance[validW] {
	return instance[validW]{
		leaf: func(rng *rand.Rand, tag int) selective.F[validW, int] {
			if rng.IntN(4) == 0 {
				return selective.Invalid[selective.Concat, int]("<" + strconv.Itoa(tag) + ">")
			}
			return selective.Valid[selective.Concat, string](randInt(rng))
		},
		observe: func(m selective.F[validW, int]) string {
			return fmt.Sprint(selective.RunValidation(m))
		},
	}
}

// errAsyncLeaf is shared by every failing leaf so that the error Ap
// reports does not depend on scheduling.
var errAsyncLeaf = errors.New("leaf failed")

func asyncInstance() instance[selective.AsyncF] {
	return instance[selective.AsyncF]{
		leaf: func(rng *rand.Rand, _ int) selective.F[selective.AsyncF, int] {
			if rng.IntN(5) == 0 {
				return selective.Fail[int](errAsyncLeaf)
			}
			v := randInt(rng)
			return selective.Async(func(context.Context) (int, error) { return v, nil })
		},
		observe: func(m selective.F[selective.AsyncF, int]) string {
			return fmt.Sprint(selective.RunAsync(context.Background(), m))
		},
	}
}

func overInstance() instance[selective.OverF[int]] {
	return instance[selective.OverF[int]]{
		leaf: func(_ *rand.Rand, tag int) selective.F[selective.OverF[int], int] {
			return selective.Touch[selective.OverF[int], int](tag)
		},
		observe: func(m selective.F[selective.OverF[int], int]) string {
			return fmt.Sprint(selective.RunOver(m))
		},
	}
}

func underInstance() instance[selective.UnderF[int]] {
	return instance[selective.UnderF[int]]{
		leaf: func(rng *rand.Rand, tag int) selective.F[selective.UnderF[int], int] {
			if rng.IntN(2) == 0 {
				return selective.Pure[selective.UnderF[int]](randInt(rng))
			}
			return selective.Touch[selective.UnderF[int], int](tag)
		},
		observe: func(m selective.F[selective.UnderF[int], int]) string {
			return fmt.Sprint(selective.RunUnder(m))
		},
	}
}

// Generators derived from leaf.

func genEither[W selective.Selective](in instance[W], rng *rand.Rand, tag int) selective.F[W, selective.Either[int, int]] {
	return selective.Map(in.leaf(rng, tag), func(v int) selective.Either[int, int] {
		if v%2 == 0 {
			return selective.Left[int, int](v)
		}
		return selective.Right[int](v)
	})
}

func genFunc[W selective.Selective](in instance[W], rng *rand.Rand, tag int) selective.F[W, func(int) int] {
	k := rng.IntN(5) - 2
	return selective.Map(in.leaf(rng, tag), func(v int) func(int) int {
		return func(x int) int { return x*k + v }
	})
}

func randPure(rng *rand.Rand) func(int) int {
	a, b := rng.IntN(5)-2, randInt(rng)
	return func(x int) int { return x*a + b }
}

func same[W selective.Selective](t *testing.T, in instance[W], law string, left, right selective.F[W, int]) {
	t.Helper()
	l, r := in.observe(left), in.observe(right)
	if l != r {
		t.Fatalf("%s: %s != %s", law, l, r)
	}
}

// checkSelectLaws verifies the six choice laws over random operands.
func checkSelectLaws[W selective.Selective](t *testing.T, in instance[W]) {
	t.Run("ResultMapping", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x, y, f := genEither(in, rng, 1), genFunc(in, rng, 2), randPure(rng)
			left := selective.Map(selective.Select(x, y), f)
			right := selective.Select(
				selective.Map(x, func(e selective.Either[int, int]) selective.Either[int, int] {
					return selective.MapEither(e, f)
				}),
				selective.Map(y, func(g func(int) int) func(int) int {
					return func(a int) int { return f(g(a)) }
				}),
			)
			same(t, in, "result mapping", left, right)
		}
	})

	t.Run("DiscriminantRemapping", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x, y, f := genEither(in, rng, 1), genFunc(in, rng, 2), randPure(rng)
			left := selective.Select(
				selective.Map(x, func(e selective.Either[int, int]) selective.Either[int, int] {
					return selective.MapLeftEither(e, f)
				}),
				y,
			)
			right := selective.Select(x, selective.Map(y, func(g func(int) int) func(int) int {
				return func(a int) int { return g(f(a)) }
			}))
			same(t, in, "discriminant remapping", left, right)
		}
	})

	t.Run("HandlerRemapping", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x, y := genEither(in, rng, 1), in.leaf(rng, 2)
			k := rng.IntN(5) - 2
			f := func(a int) func(int) int { return func(c int) int { return a*k - c } }
			left := selective.Select(x, selective.Map(y, f))
			right := selective.Select(
				selective.Map(x, func(e selective.Either[int, int]) selective.Either[func(int) int, int] {
					return selective.MapLeftEither(e, func(c int) func(int) int {
						return func(a int) int { return f(a)(c) }
					})
				}),
				selective.Map(y, func(a int) func(func(int) int) int {
					return func(g func(int) int) int { return g(a) }
				}),
			)
			same(t, in, "handler remapping", left, right)
		}
	})

	t.Run("PureHandler", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x, f := genEither(in, rng, 1), randPure(rng)
			left := selective.Select(x, selective.Pure[W](f))
			right := selective.Map(x, func(e selective.Either[int, int]) int {
				return selective.MatchEither(e, f, func(b int) int { return b })
			})
			same(t, in, "pure handler", left, right)
		}
	})

	t.Run("PureLeft", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			v, y := randInt(rng), genFunc(in, rng, 2)
			left := selective.Select(selective.Pure[W](selective.Left[int, int](v)), y)
			right := selective.Map(y, func(g func(int) int) int { return g(v) })
			same(t, in, "pure left", left, right)
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x := genEither(in, rng, 1)
			ky := rng.IntN(5) - 2
			y := selective.Map(in.leaf(rng, 2), func(v int) selective.Either[int, func(int) int] {
				if v%2 == 0 {
					return selective.Left[int, func(int) int](v)
				}
				return selective.Right[int](func(b int) int { return b*ky + v })
			})
			kz := rng.IntN(5) - 2
			z := selective.Map(in.leaf(rng, 3), func(v int) func(int) func(int) int {
				return func(a int) func(int) int {
					return func(b int) int { return a*kz + b - v }
				}
			})

			left := selective.Select(x, selective.Select(y, z))

			fx := selective.Map(x, func(e selective.Either[int, int]) selective.Either[int, selective.Either[selective.Pair[int, int], int]] {
				return selective.MapEither(e, selective.Right[selective.Pair[int, int], int])
			})
			gy := selective.Map(y, func(e selective.Either[int, func(int) int]) func(int) selective.Either[selective.Pair[int, int], int] {
				return func(b int) selective.Either[selective.Pair[int, int], int] {
					if a, ok := e.GetLeft(); ok {
						return selective.Left[selective.Pair[int, int], int](selective.Pair[int, int]{Fst: a, Snd: b})
					}
					g, _ := e.GetRight()
					return selective.Right[selective.Pair[int, int]](g(b))
				}
			})
			hz := selective.Map(z, func(g func(int) func(int) int) func(selective.Pair[int, int]) int {
				return func(p selective.Pair[int, int]) int { return g(p.Fst)(p.Snd) }
			})
			right := selective.Select(selective.Select(fx, gy), hz)
			same(t, in, "associativity", left, right)
		}
	})
}

// checkApplicativeLaws verifies that ApS satisfies the applicative laws.
func checkApplicativeLaws[W selective.Selective](t *testing.T, in instance[W]) {
	t.Run("Identity", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			v := in.leaf(rng, 1)
			left := selective.ApS(selective.Pure[W](func(x int) int { return x }), v)
			same(t, in, "identity", left, v)
		}
	})

	t.Run("Homomorphism", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			f, x := randPure(rng), randInt(rng)
			left := selective.ApS(selective.Pure[W](f), selective.Pure[W](x))
			same(t, in, "homomorphism", left, selective.Pure[W](f(x)))
		}
	})

	t.Run("Interchange", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			u, y := genFunc(in, rng, 1), randInt(rng)
			left := selective.ApS(u, selective.Pure[W](y))
			right := selective.ApS(selective.Pure[W](func(g func(int) int) int { return g(y) }), u)
			same(t, in, "interchange", left, right)
		}
	})

	t.Run("Composition", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		compose := func(f func(int) int) func(func(int) int) func(int) int {
			return func(g func(int) int) func(int) int {
				return func(x int) int { return f(g(x)) }
			}
		}
		for range propertyN {
			u, v, w := genFunc(in, rng, 1), genFunc(in, rng, 2), in.leaf(rng, 3)
			left := selective.ApS(selective.ApS(selective.ApS(selective.Pure[W](compose), u), v), w)
			right := selective.ApS(u, selective.ApS(v, w))
			same(t, in, "composition", left, right)
		}
	})
}

// checkSelectM verifies that a Monad's Select agrees with SelectM.
func checkSelectM[W selective.Monad](t *testing.T, in instance[W]) {
	t.Run("SelectM", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(42, 0))
		for range propertyN {
			x, y := genEither(in, rng, 1), genFunc(in, rng, 2)
			same(t, in, "select == selectM", selective.Select(x, y), selective.SelectM(x, y))
		}
	})
}

func TestPropertyOption(t *testing.T) {
	in := optionInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyList(t *testing.T) {
	in := listInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyReader(t *testing.T) {
	in := readerInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyWriter(t *testing.T) {
	in := writerInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyEither(t *testing.T) {
	in := eitherInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyState(t *testing.T) {
	in := stateInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyAsync(t *testing.T) {
	in := asyncInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
	checkSelectM(t, in)
}

func TestPropertyValidation(t *testing.T) {
	in := validationInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
}

func TestPropertyOver(t *testing.T) {
	in := overInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
}

func TestPropertyUnder(t *testing.T) {
	in := underInstance()
	checkSelectLaws(t, in)
	checkApplicativeLaws(t, in)
}

// TestPropertyBranchReference: Branch via two Selects agrees with a
// direct evaluation of the chosen handler.
func TestPropertyBranchReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	in := stateInstance()
	for range propertyN {
		x, l, r := genEither(in, rng, 1), genFunc(in, rng, 2), genFunc(in, rng, 3)
		got := selective.Branch(x, l, r)
		want := selective.Bind(x, func(e selective.Either[int, int]) selective.F[selective.StateF[int], int] {
			if a, ok := e.GetLeft(); ok {
				return selective.Map(l, func(f func(int) int) int { return f(a) })
			}
			b, _ := e.GetRight()
			return selective.Map(r, func(f func(int) int) int { return f(b) })
		})
		same(t, in, "branch", got, want)
	}
}
