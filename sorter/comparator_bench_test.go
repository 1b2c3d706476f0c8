package sorter

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchPaths(n int) []string {
	rng := rand.New(rand.NewSource(1))
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("dir%d/sub%02d/file%d.dat", rng.Intn(8), rng.Intn(20), rng.Intn(5000))
	}
	return paths
}

func benchmarkSort(b *testing.B, m Method) {
	src := benchPaths(2048)
	paths := make([]string, len(src))
	for b.Loop() {
		copy(paths, src)
		Sort(paths, m)
	}
}

func BenchmarkSortDefault(b *testing.B) { benchmarkSort(b, MethodDefault) }

func BenchmarkSortNatural(b *testing.B) { benchmarkSort(b, MethodNatural) }

func BenchmarkSortCollate(b *testing.B) { benchmarkSort(b, MethodCollate) }

func BenchmarkSortASCII(b *testing.B) { benchmarkSort(b, MethodASCII) }
