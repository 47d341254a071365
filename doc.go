// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selective provides selective composition of effectful
// computations in Go.
//
// Selective composition sits between independent composition, where the
// structure of a computation is fixed before it runs, and dependent
// sequencing, where any later effect may depend on any earlier result.
// The core operation [Select] lets a computation decide, from an already
// computed discriminant, whether a further effect is needed. A container
// is permitted, not required, to skip that effect. Containers that skip
// are used to run computations; containers that never skip are used to
// enumerate every effect a computation could perform without running it.
//
// # Containers and Witnesses
//
// Go has no higher-kinded type parameters, so a container shape is named
// by a zero-size witness type implementing [Applicative] and [Selective]
// (and [Monad] for sequencing containers). Witness methods operate on
// erased kinds; [F] is the typed handle built on top:
//
//   - [F]: F[W, A] describes a computation in container W producing A
//   - [Erased]: Type alias for any, marking the witness boundary
//   - [FromKind], [F.Kind]: Convert between typed handles and kinds
//
// Primitive operations:
//
//   - [Pure]: Lift a value without effects
//   - [Map]: Apply a pure function to the result
//   - [Ap], [Lift2], [Then]: Independent composition
//   - [Delay]: Defer construction for self-referential descriptions
//   - [Bind]: Dependent sequencing (Monad witnesses only)
//
// # Choice
//
//   - [Select]: If x yields Left(a), apply y's function to a; if Right(b),
//     yield b and optionally skip y
//   - [SelectM]: Select through Bind; never evaluates y on Right
//   - [SelectA]: Select through Ap; always evaluates y
//   - [SelectMKind], [SelectAKind]: Erased forms for witness implementations
//   - [ApS]: Independent composition derived from Select
//
// Every witness satisfies six laws. With f, g pure functions:
//
//	Map(Select(x, y), f)              == Select(Map(x, mapRight(f)), Map(y, post(f)))
//	Select(Map(x, mapLeft(f)), y)     == Select(x, Map(y, pre(f)))
//	Select(x, Map(y, f))              == Select(Map(x, mapLeft(flip(f))), Map(y, apply))
//	Select(x, Pure(f))                == Map(x, either(f, id))
//	Select(Pure(Left(v)), y)          == Map(y, applyTo(v))
//	Select(x, Select(y, z))           == Select(Select(Map(x, f), Map(y, g)), Map(z, h))
//
// No law governs a pure Right discriminant; that freedom is what lets
// [ValidationF] and [OverF] exist.
//
// # Derived Combinators
//
//   - [Branch]: Two-way choice built from two nested Selects
//   - [IfS], [WhenS]: Boolean choice
//   - [WhileS]: Repeat while a condition holds
//   - [UntilRight]: Repeat until Right, accumulating Lefts through a [Monoid]
//   - [OrElse], [AndAlso], [FoldS]: Error and result accumulation
//   - [Or], [And], [AnyS], [AllS]: Short-circuit boolean logic
//   - [Eliminate], [MatchS], [BindS]: Matching over an explicit [Cases]
//   - [MatchM]: Matching through Bind
//
// # Container Catalogue
//
// Sequencing containers define Select as SelectM:
//
//   - [OptionF]: [Some], [None], [FromOption], [RunOption]
//   - [ListF]: [Choose], [RunList]
//   - [ReaderF]: [Ask], [Asks], [Local], [RunReader]
//   - [WriterF]: [Tell], [Listen], [Censor], [RunWriter], [ExecWriter]
//   - [EitherF]: [Throw], [FromEither], [Catch], [RunEither]
//   - [StateF]: [Get], [Gets], [Put], [Modify], [RunState], [EvalState], [ExecState]
//   - [AsyncF]: [Async], [Fail], [RunAsync]; Ap runs operands concurrently
//
// Selective-only containers:
//
//   - [ValidationF]: [Valid], [Invalid], [Validate], [RunValidation];
//     accumulates failures, has no Bind
//   - [OverF]: Never skips; collects every reachable key ([RunOver])
//   - [UnderF]: Always skips; collects the keys every execution touches ([RunUnder])
//
// # Dependency Extraction
//
// A [Task] is a keyed computation written once, generically, and
// instantiated against any container:
//
//   - [Dependencies]: Every key the task could fetch (over-approximation)
//   - [DefiniteDependencies]: The keys the task always fetches
//
// # Example
//
//	func build[W selective.Selective](fetch func(string) selective.F[W, int]) selective.F[W, int] {
//		return selective.IfS(
//			selective.Map(fetch("flag"), func(v int) bool { return v != 0 }),
//			fetch("k1"),
//			fetch("k2"),
//		)
//	}
//
//	deps := selective.Dependencies(build[selective.OverF[string]])
//	// deps == [flag k1 k2]
//
//	store := map[string]int{"flag": 1, "k1": 10, "k2": 20}
//	v, err := selective.RunAsync(ctx, build[selective.AsyncF](func(k string) selective.F[selective.AsyncF, int] {
//		return selective.Async(func(context.Context) (int, error) { return store[k], nil })
//	}))
//	// v == 10; "k2" was never fetched
package selective
