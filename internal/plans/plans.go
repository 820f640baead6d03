// Package plans defines the reading-plan data model and its on-disk JSON
// store. A plan is an ordered collection of day entries, each owning one
// canonical chapter list produced by the reference resolver.
package plans

// Entry is one day of a reading plan. Chapters holds interchange strings
// "<book>:<chapter>" in display order with no duplicates.
type Entry struct {
	Day      int      `json:"day"`
	Chapters []string `json:"chapters"`
}

// Plan is a complete reading plan as persisted to disk.
type Plan struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Days    int     `json:"days"`
	Source  string  `json:"source"`
	Entries []Entry `json:"entries"`
}

// Entry returns the entry for the given plan day, or nil if the plan has
// no entry for that day.
func (p *Plan) Entry(day int) *Entry {
	for i := range p.Entries {
		if p.Entries[i].Day == day {
			return &p.Entries[i]
		}
	}
	return nil
}

// MaxDay returns the highest day number present in the plan, or 0 for an
// empty plan.
func (p *Plan) MaxDay() int {
	max := 0
	for _, e := range p.Entries {
		if e.Day > max {
			max = e.Day
		}
	}
	return max
}
