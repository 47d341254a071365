// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selective

import "sync"

// Collectors are containers whose declared result type is phantom: they
// never run a computation, and their payload is the ordered sequence of
// keys touched by leaf effects, duplicates preserved, first operand before
// second.
//
//   - OverF never skips: Ap and Select merge both operands, so every key
//     reachable through either branch of a choice is collected. OverF.Map
//     never calls its function.
//   - UnderF skips the handler of every Select whose discriminant is not
//     known statically, so only keys touched on every execution are
//     collected.
//
// Both unfold each [Delay] at most once per traversal path: re-entering a
// deferred kind that is already being collected contributes nothing. This
// makes self-referential descriptions such as [WhileS] collectable.

// Collector is implemented by key-collecting container witnesses.
type Collector[K any] interface {
	Selective
	// Touch returns the kind of a leaf effect that touches k.
	Touch(k K) Erased
	// Keys returns the keys collected by evaluating kind m.
	Keys(m Erased) []K
}

// trace accumulates keys during one collection.
type trace[K any] struct {
	keys   []K
	active map[*deferred]struct{}
}

type collectK[K any] func(t *trace[K])

// deferred identifies one Delay site and memoises its constructed kind.
type deferred struct {
	once  sync.Once
	thunk func() Erased
	kind  Erased
}

func (d *deferred) force() Erased {
	d.once.Do(func() {
		d.kind = d.thunk()
		d.thunk = nil
	})
	return d.kind
}

func collectNone[K any](*trace[K]) {}

func collectPair[K any](a, b Erased) Erased {
	ak, bk := a.(collectK[K]), b.(collectK[K])
	return collectK[K](func(t *trace[K]) {
		ak(t)
		bk(t)
	})
}

func collectDelay[K any](thunk func() Erased) Erased {
	d := &deferred{thunk: thunk}
	return collectK[K](func(t *trace[K]) {
		if _, ok := t.active[d]; ok {
			return
		}
		if t.active == nil {
			t.active = make(map[*deferred]struct{})
		}
		t.active[d] = struct{}{}
		d.force().(collectK[K])(t)
		delete(t.active, d)
	})
}

func collectTouch[K any](k K) Erased {
	return collectK[K](func(t *trace[K]) { t.keys = append(t.keys, k) })
}

func collectKeys[K any](m Erased) []K {
	var t trace[K]
	m.(collectK[K])(&t)
	return t.keys
}

// OverF is the over-approximating collector.
type OverF[K any] struct{}

func (OverF[K]) Pure(Erased) Erased                         { return collectK[K](collectNone[K]) }
func (OverF[K]) Map(m Erased, _ func(Erased) Erased) Erased { return m }
func (OverF[K]) Ap(mf, m Erased) Erased                     { return collectPair[K](mf, m) }
func (OverF[K]) Delay(thunk func() Erased) Erased           { return collectDelay[K](thunk) }
func (OverF[K]) Select(x, y Erased) Erased                  { return collectPair[K](x, y) }
func (OverF[K]) Touch(k K) Erased                           { return collectTouch(k) }
func (OverF[K]) Keys(m Erased) []K                          { return collectKeys[K](m) }

// UnderF is the under-approximating collector.
//
// UnderF additionally tracks kinds whose value is statically known (built
// from Pure, Map and Ap alone). A Select whose discriminant is statically
// Left collects its handler, so Select(Pure(Left(v)), y) collects y's keys.
type UnderF[K any] struct{}

type underK[K any] struct {
	collect collectK[K]
	static  bool
	value   Erased
}

func underDynamic[K any](c collectK[K]) underK[K] {
	return underK[K]{collect: c}
}

func (UnderF[K]) Pure(a Erased) Erased {
	return underK[K]{collect: collectNone[K], static: true, value: a}
}

func (UnderF[K]) Map(m Erased, f func(Erased) Erased) Erased {
	mk := m.(underK[K])
	if !mk.static {
		return mk
	}
	return underK[K]{collect: mk.collect, static: true, value: f(mk.value)}
}

func (UnderF[K]) Ap(mf, m Erased) Erased {
	fk, mk := mf.(underK[K]), m.(underK[K])
	c := collectPair[K](fk.collect, mk.collect).(collectK[K])
	if !fk.static || !mk.static {
		return underDynamic(c)
	}
	return underK[K]{collect: c, static: true, value: fk.value.(func(Erased) Erased)(mk.value)}
}

func (UnderF[K]) Delay(thunk func() Erased) Erased {
	return underDynamic(collectDelay[K](func() Erased {
		return thunk().(underK[K]).collect
	}).(collectK[K]))
}

func (w UnderF[K]) Select(x, y Erased) Erased {
	xk := x.(underK[K])
	if !xk.static {
		return underDynamic(xk.collect)
	}
	e := xk.value.(Either[Erased, Erased])
	if b, ok := e.GetRight(); ok {
		return w.Pure(b)
	}
	a, _ := e.GetLeft()
	return w.Map(y, func(f Erased) Erased { return f.(func(Erased) Erased)(a) })
}

func (UnderF[K]) Touch(k K) Erased {
	return underDynamic(collectTouch(k).(collectK[K]))
}

func (UnderF[K]) Keys(m Erased) []K {
	return collectKeys[K](m.(underK[K]).collect)
}

// Touch creates a leaf effect that touches key k. The result type A is
// phantom.
func Touch[W Collector[K], A, K any](k K) F[W, A] {
	return F[W, A]{kind: witness[W]().Touch(k)}
}

// RunOver collects every key m could touch.
func RunOver[K, A any](m F[OverF[K], A]) []K {
	return OverF[K]{}.Keys(m.kind)
}

// RunUnder collects the keys m touches on every execution.
func RunUnder[K, A any](m F[UnderF[K], A]) []K {
	return UnderF[K]{}.Keys(m.kind)
}
