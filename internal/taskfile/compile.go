// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskfile

import "code.hybscloud.com/selective"

// Compile translates e into a task description usable with any container.
// Conditionals become [selective.IfS], sums become independent
// composition, and any/all become the short-circuit folds.
//
// Compile panics if e is malformed; [File.Validate] rejects such files.
func Compile[W selective.Selective](e Expr) selective.Task[W, string, int] {
	return func(fetch func(string) selective.F[W, int]) selective.F[W, int] {
		return build(e, fetch)
	}
}

func build[W selective.Selective](e Expr, fetch func(string) selective.F[W, int]) selective.F[W, int] {
	switch e.form() {
	case formKey:
		return fetch(e.Key)
	case formConst:
		return selective.Pure[W](*e.Const)
	case formSum:
		acc := selective.Pure[W](0)
		for _, x := range e.Sum {
			acc = selective.Lift2(add, acc, build(x, fetch))
		}
		return acc
	case formIf:
		return selective.IfS(truth(build(e.If.Test, fetch)), build(e.If.Then, fetch), build(e.If.Else, fetch))
	case formAny:
		return selective.Map(selective.AnyS(predicate(fetch), e.Any), fromBool)
	case formAll:
		return selective.Map(selective.AllS(predicate(fetch), e.All), fromBool)
	}
	panic("taskfile: compile of malformed expression")
}

func add(a, b int) int { return a + b }

func truth[W selective.Selective](m selective.F[W, int]) selective.F[W, bool] {
	return selective.Map(m, func(v int) bool { return v != 0 })
}

func predicate[W selective.Selective](fetch func(string) selective.F[W, int]) func(Expr) selective.F[W, bool] {
	return func(e Expr) selective.F[W, bool] { return truth(build(e, fetch)) }
}

func fromBool(b bool) int {
	if b {
		return 1
	}
	return 0
}
