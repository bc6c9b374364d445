package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter is a basic counter metric
type Counter struct {
	Value int64
}

// Add increments the counter by delta
func (c *Counter) Add(delta int64) {
	atomic.AddInt64(&c.Value, delta)
}

// Set sets the counter to val
func (c *Counter) Set(val int64) {
	atomic.StoreInt64(&c.Value, val)
}

// GetValue ...
func (c *Counter) GetValue() int64 {
	return atomic.LoadInt64(&c.Value)
}

// --

// Ratio is a basic ratio metric. The metric will report the percentage
// that Hit is called (vs Miss).
type Ratio struct {
	Numerator   int64
	Denominator int64
}

// Hit increments the ratio and total count.
func (r *Ratio) Hit() {
	atomic.AddInt64(&r.Numerator, 1)
	atomic.AddInt64(&r.Denominator, 1)
}

// Miss increments the total count without changing the numerator.
func (r *Ratio) Miss() {
	atomic.AddInt64(&r.Denominator, 1)
}

// Set allows you to set a custom numerator and denominator
func (r *Ratio) Set(num, den int64) {
	atomic.StoreInt64(&r.Numerator, num)
	atomic.StoreInt64(&r.Denominator, den)
}

// Total returns the number of Hit and Miss calls.
func (r *Ratio) Total() int64 {
	return atomic.LoadInt64(&r.Denominator)
}

// Value returns the current ratio as a percentage.
func (r *Ratio) Value() float64 {
	numerator, denominator := atomic.LoadInt64(&r.Numerator), atomic.LoadInt64(&r.Denominator)
	if denominator == 0 {
		return 0
	}
	return 100.0 * float64(numerator) / float64(denominator)
}

// --

// Breakdown is a metric that can be used to show how often different categories of
// a particular kind appear. Similar to Ratio, except you can "Hit" any one of the
// categories set via AddCategories.
type Breakdown struct {
	rw          sync.RWMutex
	Categories  []string
	Numerators  []int64
	Denominator int64
}

// AddCategories sets the categories to expect. Hit ignores names not added
// here; HitAndAdd adds them on the fly.
func (b *Breakdown) AddCategories(names ...string) {
	b.rw.Lock()
	defer b.rw.Unlock()
	for _, name := range names {
		if b.index(name) < 0 {
			b.Categories = append(b.Categories, name)
			b.Numerators = append(b.Numerators, 0)
		}
	}
}

func (b *Breakdown) index(name string) int {
	for idx, c := range b.Categories {
		if c == name {
			return idx
		}
	}
	return -1
}

// Hit increments the counter for the provided categories, and increments the total.
func (b *Breakdown) Hit(names ...string) {
	b.rw.RLock()
	defer b.rw.RUnlock()
	var found bool
	for _, name := range names {
		if idx := b.index(name); idx >= 0 {
			atomic.AddInt64(&b.Numerators[idx], 1)
			found = true
		}
	}
	if found {
		atomic.AddInt64(&b.Denominator, 1)
	}
}

// HitAndAdd increments the counter if the category exists. If it doesn't, it adds
// a new category, sets the counter to 1 and increments the total.
func (b *Breakdown) HitAndAdd(name string) {
	b.rw.RLock()
	if idx := b.index(name); idx >= 0 {
		atomic.AddInt64(&b.Numerators[idx], 1)
		atomic.AddInt64(&b.Denominator, 1)
		b.rw.RUnlock()
		return
	}
	b.rw.RUnlock()

	b.rw.Lock()
	defer b.rw.Unlock()
	// another goroutine may have added it between the locks
	if idx := b.index(name); idx >= 0 {
		b.Numerators[idx]++
	} else {
		b.Categories = append(b.Categories, name)
		b.Numerators = append(b.Numerators, 1)
	}
	b.Denominator++
}

// Count returns the number of hits for a category.
func (b *Breakdown) Count(name string) int64 {
	b.rw.RLock()
	defer b.rw.RUnlock()
	if idx := b.index(name); idx >= 0 {
		return atomic.LoadInt64(&b.Numerators[idx])
	}
	return 0
}

// Value returns a map of category to percentage value.
func (b *Breakdown) Value() map[string]float64 {
	b.rw.RLock()
	defer b.rw.RUnlock()

	values := make(map[string]float64)
	denominator := atomic.LoadInt64(&b.Denominator)
	for idx, c := range b.Categories {
		if denominator == 0 {
			values[c] = 0
			continue
		}
		values[c] = 100.0 * float64(atomic.LoadInt64(&b.Numerators[idx])) / float64(denominator)
	}
	return values
}

// Sorted returns the categories ordered by descending count.
func (b *Breakdown) Sorted() []string {
	b.rw.RLock()
	defer b.rw.RUnlock()

	cats := append([]string(nil), b.Categories...)
	counts := make(map[string]int64, len(cats))
	for idx, c := range b.Categories {
		counts[c] = atomic.LoadInt64(&b.Numerators[idx])
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return counts[cats[i]] > counts[cats[j]]
	})
	return cats
}

func (b *Breakdown) reset() {
	b.rw.Lock()
	defer b.rw.Unlock()
	for idx := range b.Numerators {
		b.Numerators[idx] = 0
	}
	b.Denominator = 0
}
