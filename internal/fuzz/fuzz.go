// Package fuzz partitions randomized BigWord property checks across a
// worker pool, reporting any invariant that a random operand pair broke.
package fuzz

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/oisee/bigword"
	"github.com/oisee/bigword/internal/word"
)

// Failure names the invariant that failed and the operands that broke it.
type Failure struct {
	Property string
	Detail   string
}

// Report summarizes a fuzz run.
type Report struct {
	Checked  int64
	Failures []Failure
}

// Run partitions iterations trials across workers goroutines (defaulting
// to runtime.NumCPU() when workers <= 0), each trial drawing random
// BigWord[W] operands and checking the round-trip, associativity, and
// div/mod identity invariants. Every trial runs independently; a failing
// trial is recorded rather than aborting the run.
func Run[W word.Unsigned](iterations, workers int) Report {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	seeds := make(chan int64, iterations)
	for i := 0; i < iterations; i++ {
		seeds <- int64(i)
	}
	close(seeds)

	var (
		checked  atomic.Int64
		mu       sync.Mutex
		failures []Failure
		wg       sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				checked.Add(1)
				fs := checkTrial[W](seed)
				if len(fs) == 0 {
					continue
				}
				mu.Lock()
				failures = append(failures, fs...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return Report{Checked: checked.Load(), Failures: failures}
}

// checkTrial draws one trio of random operands and checks every property
// that applies to them.
func checkTrial[W word.Unsigned](seed int64) []Failure {
	rng := rand.New(rand.NewSource(seed))
	a := randomBigWord[W](rng)
	b := randomBigWord[W](rng)
	c := randomBigWord[W](rng)

	var fs []Failure

	if f := checkAssociativity(a, b, c); f != nil {
		fs = append(fs, *f)
	}
	if f := checkRoundTrip[W](a); f != nil {
		fs = append(fs, *f)
	}
	if f := checkDivModIdentity(a, b); f != nil {
		fs = append(fs, *f)
	}
	if f := checkNarrowMinValueRoundTrip[W](); f != nil {
		fs = append(fs, *f)
	}

	return fs
}

// checkNarrowMinValueRoundTrip exercises FromInt at a narrow signed type's
// minimum value, where negating within that type overflows and would
// silently hand back the wrong magnitude if FromInt didn't widen first.
func checkNarrowMinValueRoundTrip[W word.Unsigned]() *Failure {
	if b := bigword.FromInt[int8, W](math.MinInt8); !checkInt(b, math.MinInt8) {
		return &Failure{Property: "fromint-narrow-min-int8", Detail: b.String()}
	}
	if b := bigword.FromInt[int16, W](math.MinInt16); !checkInt16(b, math.MinInt16) {
		return &Failure{Property: "fromint-narrow-min-int16", Detail: b.String()}
	}
	if b := bigword.FromInt[int32, W](math.MinInt32); !checkInt32(b, math.MinInt32) {
		return &Failure{Property: "fromint-narrow-min-int32", Detail: b.String()}
	}
	return nil
}

func checkInt[W word.Unsigned](b *bigword.BigWord[W], want int8) bool {
	got, err := bigword.ToInt[int8](b)
	return err == nil && got == want
}

func checkInt16[W word.Unsigned](b *bigword.BigWord[W], want int16) bool {
	got, err := bigword.ToInt[int16](b)
	return err == nil && got == want
}

func checkInt32[W word.Unsigned](b *bigword.BigWord[W], want int32) bool {
	got, err := bigword.ToInt[int32](b)
	return err == nil && got == want
}

func checkAssociativity[W word.Unsigned](a, b, c *bigword.BigWord[W]) *Failure {
	left := a.Add(b)
	left.AddInPlace(c)

	right := b.Add(c)
	right = a.Add(right)

	if !left.Equal(right) {
		return &Failure{
			Property: "add-associativity",
			Detail:   fmt.Sprintf("(%s+%s)+%s = %s, %s+(%s+%s) = %s", a, b, c, left, a, b, c, right),
		}
	}
	return nil
}

func checkRoundTrip[W word.Unsigned](a *bigword.BigWord[W]) *Failure {
	v, err := a.Int64()
	if err != nil {
		return nil
	}
	back := bigword.FromInt[int64, W](v)
	if !back.Equal(a) {
		return &Failure{
			Property: "int64-round-trip",
			Detail:   fmt.Sprintf("%s -> %d -> %s", a, v, back),
		}
	}
	return nil
}

func checkDivModIdentity[W word.Unsigned](a, b *bigword.BigWord[W]) *Failure {
	if b.IsZero() {
		return nil
	}
	q, err := a.Div(b)
	if err != nil {
		return nil
	}
	r, err := a.Mod(b)
	if err != nil {
		return nil
	}
	recon := q.Mul(b)
	recon.AddInPlace(r)
	if !recon.Equal(a) {
		return &Failure{
			Property: "divmod-identity",
			Detail:   fmt.Sprintf("%s = %s*%s + %s, got %s", a, q, b, r, recon),
		}
	}
	return nil
}

func randomBigWord[W word.Unsigned](rng *rand.Rand) *bigword.BigWord[W] {
	v := rng.Int63()
	if rng.Intn(2) == 0 {
		v = -v
	}
	return bigword.FromInt[int64, W](v)
}
