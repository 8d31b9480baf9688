package models

import "slices"

// Parable represents a single catalog entry
type Parable struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Reference        string   `json:"reference"`
	Order            int      `json:"order"`
	Gospels          []string `json:"gospels"`
	ShortDescription string   `json:"short_description"`
}

// Clone returns a copy that shares no memory with p
func (p Parable) Clone() Parable {
	p.Gospels = slices.Clone(p.Gospels)
	return p
}

// InGospel reports whether the parable is recorded in the named gospel
func (p Parable) InGospel(name string) bool {
	return slices.Contains(p.Gospels, name)
}

// Insights is the AI-generated commentary for a parable
type Insights struct {
	ScriptureText  string `json:"scripture_text"`
	Interpretation string `json:"interpretation"`
	Clarification  string `json:"clarification"`
	ModernExample  string `json:"modern_example"`
}
