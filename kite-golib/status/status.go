package status

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	humanize "github.com/dustin/go-humanize"
)

var s = newEmptyStatus()

// Status is the root level object containing all sections.
type Status struct {
	m        sync.Mutex
	Sections map[string]*Section
}

func newEmptyStatus() *Status {
	return &Status{
		Sections: make(map[string]*Section),
	}
}

// MarshalJSON allows for go-routine safe access to Sections.
func (s *Status) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	type tmp Status
	return json.Marshal((*tmp)(s))
}

// Get returns the *Status object
func Get() *Status {
	return s
}

func (s *Status) sorted() []*Section {
	s.m.Lock()
	defer s.m.Unlock()

	var sections []*Section
	for _, section := range s.Sections {
		sections = append(sections, section)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Name < sections[j].Name
	})
	return sections
}

// Render writes a plain text report of every section.
func (s *Status) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, section := range s.sorted() {
		section.render(tw)
	}
	return tw.Flush()
}

func sortedNames(names []string) []string {
	sort.Strings(names)
	return names
}

func (s *Section) render(w io.Writer) {
	s.m.Lock()
	defer s.m.Unlock()

	fmt.Fprintf(w, "%s\n", s.Name)

	var names []string
	for name := range s.Counters {
		names = append(names, name)
	}
	for _, name := range sortedNames(names) {
		fmt.Fprintf(w, "  %s\t%s\n", name, humanize.Comma(s.Counters[name].GetValue()))
	}

	names = names[:0]
	for name := range s.Ratios {
		names = append(names, name)
	}
	for _, name := range sortedNames(names) {
		r := s.Ratios[name]
		fmt.Fprintf(w, "  %s\t%.2f%%\tof %s\n", name, r.Value(), humanize.Comma(r.Total()))
	}

	names = names[:0]
	for name := range s.Breakdowns {
		names = append(names, name)
	}
	for _, name := range sortedNames(names) {
		b := s.Breakdowns[name]
		fmt.Fprintf(w, "  %s\t\t\n", name)
		values := b.Value()
		for _, cat := range b.Sorted() {
			fmt.Fprintf(w, "    %s\t%.2f%%\t%s\n", cat, values[cat], humanize.Comma(b.Count(cat)))
		}
	}

	names = names[:0]
	for name := range s.SampleInt64s {
		names = append(names, name)
	}
	for _, name := range sortedNames(names) {
		fmt.Fprintf(w, "  %s\t%s\n", name, summarize(s.SampleInt64s[name], humanize.Comma))
	}

	names = names[:0]
	for name := range s.SampleDurations {
		names = append(names, name)
	}
	for _, name := range sortedNames(names) {
		fmt.Fprintf(w, "  %s\t%s\n", name, summarize(s.SampleDurations[name].SampleInt64, func(v int64) string {
			return time.Duration(v).String()
		}))
	}
}

func summarize(sample *SampleInt64, format func(int64) string) string {
	count := sample.Count()
	if count == 0 {
		return "no samples"
	}
	values := sample.Values()
	parts := []string{"n=" + humanize.Comma(count), "mean=" + format(int64(sample.Mean()))}
	for i, p := range samplePercentiles {
		parts = append(parts, fmt.Sprintf("p%d=%s", int(p), format(values[i])))
	}
	parts = append(parts, "max="+format(sample.Max()))
	return strings.Join(parts, " ")
}
