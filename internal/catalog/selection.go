// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// Selection is an ordered set of catalog entry names. Toggling is
// idempotent in pairs: toggling the same name twice restores the previous
// state. Insertion order is preserved so selections render the way the
// user built them.
type Selection struct {
	names []string
	seen  map[string]bool
}

// NewSelection builds a selection from initial names, dropping duplicates
// and empty strings while preserving first-seen order.
func NewSelection(names ...string) *Selection {
	s := &Selection{seen: make(map[string]bool)}
	for _, n := range names {
		if n == "" || s.seen[n] {
			continue
		}
		s.seen[n] = true
		s.names = append(s.names, n)
	}
	return s
}

// Toggle adds name if absent, removes it if present.
func (s *Selection) Toggle(name string) {
	if name == "" {
		return
	}
	if s.seen[name] {
		delete(s.seen, name)
		for i, n := range s.names {
			if n == name {
				s.names = append(s.names[:i], s.names[i+1:]...)
				break
			}
		}
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}

// Contains reports whether name is selected.
func (s *Selection) Contains(name string) bool {
	return s.seen[name]
}

// Len returns the number of selected names.
func (s *Selection) Len() int {
	return len(s.names)
}

// Values returns the selected names in insertion order. The returned slice
// is a copy; mutating it does not affect the selection.
func (s *Selection) Values() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Normalize deduplicates a raw name list the same way NewSelection does.
// Handlers use it to sanitize incoming multi-select fields before they
// reach the prompt template.
func Normalize(names []string) []string {
	return NewSelection(names...).Values()
}
