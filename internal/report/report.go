package report

import (
	"strings"
	"time"
)

// Section names, in render order.
const (
	SectionStandings = "standings"
	SectionYesterday = "yesterday"
	SectionToday     = "today"
)

// Sections lists every section name in render order.
var Sections = []string{SectionStandings, SectionYesterday, SectionToday}

// Section is one rendered block. Err is set when Text is a placeholder.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Err  error  `json:"-"`
}

// Failed reports whether the section fell back to a placeholder.
func (s Section) Failed() bool {
	return s.Err != nil
}

// Report is the assembled daily update.
type Report struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sections    []Section `json:"sections"`
}

// Text joins the sections with blank-line separation, ready to post.
func (r Report) Text() string {
	parts := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, "\n")
}

// Failed returns the names of sections that rendered a placeholder.
func (r Report) Failed() []string {
	failed := make([]string, 0)
	for _, s := range r.Sections {
		if s.Failed() {
			failed = append(failed, s.Name)
		}
	}
	return failed
}

// Section returns the named section.
func (r Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
