package ordmap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing"
)

func build(keys []int) Map[int, int] {
	m := Ordered[int, int]().Empty()
	for _, k := range keys {
		m = m.With(k, -k)
	}
	return m
}

func TestMapProperties(t *testing.T) {
	tracing.Select("ordered.avl").SetTraceLevel(tracing.LevelError)
	tracer().SetTraceLevel(tracing.LevelError)
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("m=build(ks)->m.Check()==nil",
		prop.ForAll(
			func(ks []int) bool {
				return build(ks).Check() == nil
			},
			gen.SliceOf(gen.IntRange(-1000, 1000)),
		))
	properties.Property("keys are strictly ascending",
		prop.ForAll(
			func(ks []int) bool {
				keys := build(ks).Keys()
				for i := 1; i < len(keys); i++ {
					if keys[i-1] >= keys[i] {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.IntRange(-1000, 1000)),
		))
	properties.Property("m.With(k,v).Find(k)==v",
		prop.ForAll(
			func(ks []int, k, v int) bool {
				found, err := build(ks).With(k, v).Find(k)
				return err == nil && found == v
			},
			gen.SliceOf(gen.IntRange(-100, 100)),
			gen.IntRange(-100, 100),
			gen.Int(),
		))
	properties.Property("m.WithDeleted(k) shrinks by one iff k is bound",
		prop.ForAll(
			func(ks []int, k int) bool {
				m := build(ks)
				r := m.WithDeleted(k)
				if !m.Mem(k) {
					return r.root == m.root
				}
				return !r.Mem(k) && r.Cardinal() == m.Cardinal()-1 && r.Check() == nil
			},
			gen.SliceOf(gen.IntRange(-50, 50)),
			gen.IntRange(-50, 50),
		))
	properties.Property("of-list equals incremental build",
		prop.ForAll(
			func(ks []int) bool {
				var bindings []ordered.Pair[int, int]
				for _, k := range ks {
					bindings = append(bindings, ordered.P(k, -k))
				}
				m := Ordered[int, int]().OfList(bindings...)
				eq := func(a, b int) bool { return a == b }
				return m.Check() == nil && m.Equal(build(ks), eq)
			},
			gen.SliceOf(gen.IntRange(-200, 200)),
		))
	properties.Property("m.With(k, m.Find(k)) is m",
		prop.ForAll(
			func(ks []int) bool {
				m := build(ks)
				for _, k := range ks {
					v, _ := m.Find(k)
					if m.With(k, v).root != m.root {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.IntRange(-100, 100)),
		))
	properties.TestingRun(t)
}
