// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

// Task is a keyed computation: given fetch, which maps a key to the leaf
// effect producing that key's value, it describes how to compute a value.
//
// Go cannot pass a generic function uninstantiated, so a description
// meant for several containers is written as a generic function and
// instantiated once per container:
//
//	func build[W selective.Selective](fetch func(string) selective.F[W, int]) selective.F[W, int] {
//		return selective.IfS(
//			selective.Map(fetch("flag"), func(v int) bool { return v != 0 }),
//			fetch("k1"),
//			fetch("k2"),
//		)
//	}
//
//	selective.Dependencies(build[selective.OverF[string]]) // [flag k1 k2]
type Task[W Selective, K, V any] func(fetch func(K) F[W, V]) F[W, V]

// Dependencies runs task against the over-approximating collector with
// "touch key" as the leaf effect. The result holds every key reachable
// through either branch of every choice point, duplicates preserved, in
// traversal order.
func Dependencies[K, V any](task Task[OverF[K], K, V]) []K {
	return RunOver(task(Touch[OverF[K], V, K]))
}

// DefiniteDependencies runs task against the under-approximating
// collector. The result holds the keys touched on every execution.
func DefiniteDependencies[K, V any](task Task[UnderF[K], K, V]) []K {
	return RunUnder(task(Touch[UnderF[K], V, K]))
}
