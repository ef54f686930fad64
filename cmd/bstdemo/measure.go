package main

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bstree/Trees"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// stats of one phase, in ms per tree.
type stats struct {
	avg, dev float64
}

type result struct {
	name        string
	append, del stats
	maxDepth    uint32
	left        uint32 // size of the last tree after the remove phase
	iterCount   int
}

func summarize(cs []float64) stats {
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	return stats{avg, math.Sqrt(sum / float64(len(cs)))}
}

func msPerOp(br testing.BenchmarkResult) float64 {
	return float64(br.T.Microseconds()) / 1000 / float64(br.N)
}

// measure times building trees of vs, then removing every value of a tree in shuffled order,
// rounds times each.
func measure(name string, vs []int, rounds int) result {
	order := slices.Clone(vs)
	rand.New(rand.NewSource(1)).Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	r := result{name: name}
	as := make([]float64, 0, rounds)
	ds := make([]float64, 0, rounds)
	for range rounds {
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				Trees.From[int, uint32](vs)
			}
		})
		as = append(as, msPerOp(br))
		r.iterCount += br.N

		br = testing.Benchmark(func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := Trees.From[int, uint32](vs)
				b.StartTimer()
				for _, v := range order {
					tree.Remove(v)
				}
				r.left = tree.Size()
			}
		})
		ds = append(ds, msPerOp(br))
	}
	r.append, r.del = summarize(as), summarize(ds)
	r.maxDepth = Trees.From[int, uint32](vs).MaxDepth()
	return r
}

func runMeasure(cctx *cli.Context) error {
	logger, err := newLogger(cctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	n, rounds := cctx.Int("n"), cctx.Int("rounds")
	// slot 0 of a uint32 indexed tree is never a node.
	if n <= 0 || uint64(n) >= math.MaxUint32 || rounds <= 0 {
		return fmt.Errorf("n and rounds must be positive and n below %d, got %d and %d", uint64(math.MaxUint32), n, rounds)
	}
	testing.Init()

	random := rand.New(rand.NewSource(0)).Perm(n)
	sorted := slices.Sorted(slices.Values(random))
	for _, in := range []struct {
		name string
		vs   []int
	}{{"random", random}, {"sorted", sorted}} {
		logger.Info("measuring", zap.String("input", in.name), zap.Int("n", n), zap.Int("rounds", rounds))
		r := measure(in.name, in.vs, rounds)
		fmt.Fprintf(cctx.App.Writer, "%s: append %fms/op stddev %f, remove %fms/op stddev %f, max depth %d, %d trees built\n",
			r.name, r.append.avg, r.append.dev, r.del.avg, r.del.dev, r.maxDepth, r.iterCount)
	}
	return nil
}
