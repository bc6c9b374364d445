package status

import (
	"encoding/json"
	"sync"
)

// Section represents a grouping of Counters, Ratios, Breakdowns and samples.
type Section struct {
	Name string

	Counters   map[string]*Counter
	Ratios     map[string]*Ratio
	Breakdowns map[string]*Breakdown

	SampleInt64s    map[string]*SampleInt64
	SampleDurations map[string]*SampleDuration

	m sync.Mutex
}

// NewSection returns the section with the provided name, registering it on
// first use.
func NewSection(name string) *Section {
	s.m.Lock()
	defer s.m.Unlock()

	section, exists := s.Sections[name]
	if !exists {
		section = newEmptySection(name)
		s.Sections[name] = section
	}
	return section
}

func newEmptySection(name string) *Section {
	return &Section{
		Name: name,

		Counters:   make(map[string]*Counter),
		Ratios:     make(map[string]*Ratio),
		Breakdowns: make(map[string]*Breakdown),

		SampleInt64s:    make(map[string]*SampleInt64),
		SampleDurations: make(map[string]*SampleDuration),
	}
}

// MarshalJSON holds the section lock while encoding.
func (s *Section) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	// mask MarshalJSON so json.Marshal does not recurse into it
	type tmp Section
	return json.Marshal((*tmp)(s))
}

// Counter returns the counter with the provided name.
func (s *Section) Counter(name string) *Counter {
	s.m.Lock()
	defer s.m.Unlock()

	counter, exists := s.Counters[name]
	if !exists {
		counter = &Counter{}
		s.Counters[name] = counter
	}
	return counter
}

// Ratio returns the ratio metric with the provided name.
func (s *Section) Ratio(name string) *Ratio {
	s.m.Lock()
	defer s.m.Unlock()

	ratio, exists := s.Ratios[name]
	if !exists {
		ratio = &Ratio{}
		s.Ratios[name] = ratio
	}
	return ratio
}

// Breakdown returns the Breakdown metric with the provided name.
func (s *Section) Breakdown(name string) *Breakdown {
	s.m.Lock()
	defer s.m.Unlock()

	breakdown, exists := s.Breakdowns[name]
	if !exists {
		breakdown = &Breakdown{}
		s.Breakdowns[name] = breakdown
	}
	return breakdown
}

// SampleInt64 returns the SampleInt64 metric with the provided name.
func (s *Section) SampleInt64(name string) *SampleInt64 {
	s.m.Lock()
	defer s.m.Unlock()

	sample, exists := s.SampleInt64s[name]
	if !exists {
		sample = newSampleInt64()
		s.SampleInt64s[name] = sample
	}
	return sample
}

// SampleDuration returns the SampleDuration metric with the provided name.
func (s *Section) SampleDuration(name string) *SampleDuration {
	s.m.Lock()
	defer s.m.Unlock()

	sample, exists := s.SampleDurations[name]
	if !exists {
		sample = newSampleDuration()
		s.SampleDurations[name] = sample
	}
	return sample
}

// Percentiles returns the percentiles reported for Sample* metrics.
func (s *Section) Percentiles() []float64 {
	return samplePercentiles
}

// Reset zeroes every metric in the section. Registered metrics stay valid.
func (s *Section) Reset() {
	s.m.Lock()
	defer s.m.Unlock()

	for _, c := range s.Counters {
		c.Set(0)
	}
	for _, r := range s.Ratios {
		r.Set(0, 0)
	}
	for _, b := range s.Breakdowns {
		b.reset()
	}
	for _, sample := range s.SampleInt64s {
		sample.reset()
	}
	for _, sample := range s.SampleDurations {
		sample.reset()
	}
}
