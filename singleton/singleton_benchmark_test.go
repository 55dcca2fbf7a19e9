package singleton_test

import (
	"testing"

	"github.com/sghaida/gopatterns/singleton"
)

func BenchmarkInstance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = singleton.Instance()
	}
}

func BenchmarkInstance_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = singleton.Instance()
		}
	})
}
