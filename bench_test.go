package variant

import (
	"testing"
)

func BenchmarkEmplaceTrivial(b *testing.B) {
	u := NewUnion3[int64, float64, point](Options{})
	v := u.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.Alt0.Emplace(v, int64(i))
		_ = u.Alt2.Emplace(v, point{X: 1, Y: 2})
	}
}

func BenchmarkEmplaceDispatch(b *testing.B) {
	u := NewUnion3[int64, float64, point](Options{DisableFastPath: true})
	v := u.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.Alt0.Emplace(v, int64(i))
		_ = u.Alt2.Emplace(v, point{X: 1, Y: 2})
	}
}

func BenchmarkEmplaceSameAlternative(b *testing.B) {
	u := NewUnion2[string, []int](Options{})
	v := u.Alt0.New("start")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.Alt0.Emplace(v, "again")
	}
}

func BenchmarkEmplaceWithStrong(b *testing.B) {
	u := NewUnion2[string, rigged](Options{})
	v := u.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = u.Alt0.Emplace(v, "s")
		_ = u.Alt1.EmplaceWith(v, buildRigged(i))
	}
}

func BenchmarkCloneTrivial(b *testing.B) {
	u := NewUnion3[int64, float64, point](Options{})
	v := u.Alt2.New(point{X: 3, Y: 4})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Clone()
	}
}

func BenchmarkCloneString(b *testing.B) {
	u := NewUnion2[int, string](Options{})
	v := u.Alt1.New("azerty hello world random")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Clone()
	}
}

func BenchmarkSwapDistinct(b *testing.B) {
	u := NewUnion2[int, string](Options{})
	x, y := u.Alt0.New(1), u.Alt1.New("one")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Swap(x, y)
	}
}

func BenchmarkVisit(b *testing.B) {
	u := NewUnion3[int, float64, string](Options{})
	sum := 0
	vis, _ := NewVisitor(u.Set,
		On(u.Alt0, func(x *int) { sum += *x }),
		On(u.Alt2, func(s *string) { sum += len(*s) }),
		Default(func(int) { sum++ }),
	)
	vs := []*Variant{u.Alt0.New(1), u.Alt1.New(2), u.Alt2.New("three")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		vis.Apply(vs[i%len(vs)])
	}
	_ = sum
}

func BenchmarkHash(b *testing.B) {
	u := NewUnion3[int, point, string](Options{})
	vs := []*Variant{u.Alt0.New(15484565656), u.Alt1.New(point{X: 1, Y: 2}), u.Alt2.New("azerty")}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = vs[i%len(vs)].Hash()
	}
}
