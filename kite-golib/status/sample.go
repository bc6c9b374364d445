package status

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

const maxSamples = 1000

// samplePercentiles are the percentiles reported by Values, in percent.
var samplePercentiles = []float64{25, 50, 75, 95, 99}

// SampleInt64 keeps a bounded uniform sample of recorded values and reports
// their percentiles.
type SampleInt64 struct {
	m          sync.Mutex
	sampleRate float64
	samples    []int64
	count      int64
	rand       *rand.Rand
}

func newSampleInt64() *SampleInt64 {
	return &SampleInt64{
		sampleRate: 1,
		rand:       rand.New(rand.NewSource(1)),
	}
}

// SetSampleRate sets the fraction of Record calls that are kept.
func (s *SampleInt64) SetSampleRate(rate float64) {
	s.m.Lock()
	defer s.m.Unlock()
	s.sampleRate = rate
}

// Record adds a value. Once maxSamples values are held, new values replace
// old ones at random so the sample stays uniform.
func (s *SampleInt64) Record(val int64) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.sampleRate < 1 && s.rand.Float64() >= s.sampleRate {
		return
	}
	s.count++
	if len(s.samples) < maxSamples {
		s.samples = append(s.samples, val)
		return
	}
	if idx := s.rand.Int63n(s.count); idx < maxSamples {
		s.samples[idx] = val
	}
}

// Count returns the number of values kept by Record.
func (s *SampleInt64) Count() int64 {
	s.m.Lock()
	defer s.m.Unlock()
	return s.count
}

func (s *SampleInt64) data() stats.Float64Data {
	s.m.Lock()
	defer s.m.Unlock()
	data := make(stats.Float64Data, 0, len(s.samples))
	for _, v := range s.samples {
		data = append(data, float64(v))
	}
	return data
}

// Values returns the sampled value at each of samplePercentiles, or zeros if
// nothing was recorded.
func (s *SampleInt64) Values() []int64 {
	data := s.data()
	ret := make([]int64, len(samplePercentiles))
	if len(data) == 0 {
		return ret
	}
	for i, p := range samplePercentiles {
		v, err := stats.PercentileNearestRank(data, p)
		if err != nil {
			continue
		}
		ret[i] = int64(v)
	}
	return ret
}

// Mean returns the mean of the sampled values.
func (s *SampleInt64) Mean() float64 {
	data := s.data()
	if len(data) == 0 {
		return 0
	}
	mean, _ := stats.Mean(data)
	return mean
}

// Max returns the largest sampled value.
func (s *SampleInt64) Max() int64 {
	data := s.data()
	if len(data) == 0 {
		return 0
	}
	max, _ := stats.Max(data)
	return int64(max)
}

type sampleSummary struct {
	Count       int64
	Mean        float64
	Percentiles map[string]int64
	Max         int64
}

// MarshalJSON encodes the count, mean, percentiles and max of the sample.
func (s *SampleInt64) MarshalJSON() ([]byte, error) {
	summary := sampleSummary{
		Count:       s.Count(),
		Mean:        s.Mean(),
		Percentiles: make(map[string]int64),
		Max:         s.Max(),
	}
	for i, v := range s.Values() {
		summary.Percentiles[fmt.Sprintf("p%d", int(samplePercentiles[i]))] = v
	}
	return json.Marshal(summary)
}

func (s *SampleInt64) reset() {
	s.m.Lock()
	defer s.m.Unlock()
	s.samples = nil
	s.count = 0
}

// --

// SampleDuration is a SampleInt64 of nanoseconds.
type SampleDuration struct {
	*SampleInt64
}

func newSampleDuration() *SampleDuration {
	return &SampleDuration{
		SampleInt64: newSampleInt64(),
	}
}

// RecordDuration adds a duration.
func (d *SampleDuration) RecordDuration(v time.Duration) {
	d.SampleInt64.Record(int64(v))
}

// DeferRecord records the time elapsed since start. It is meant to be
// used as `defer d.DeferRecord(time.Now())`.
func (d *SampleDuration) DeferRecord(start time.Time) {
	d.RecordDuration(time.Since(start))
}
