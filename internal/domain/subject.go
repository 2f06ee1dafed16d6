package domain

import "sort"

// DefaultSubjects seeds every subject set. User additions are unioned with
// these, never replacing them.
var DefaultSubjects = []string{"Math", "Physics", "Chemistry", "Biology", "English", "GAT"}

// SubjectSet is the membership set of known subject names. Insertion order is
// irrelevant for membership; display order is alphabetical.
type SubjectSet struct {
	members map[string]bool
}

// NewSubjectSet builds a set from the defaults unioned with extra names.
func NewSubjectSet(extra ...string) *SubjectSet {
	s := &SubjectSet{members: make(map[string]bool)}
	for _, name := range DefaultSubjects {
		s.members[name] = true
	}
	for _, name := range extra {
		s.Add(name)
	}
	return s
}

// Add inserts a name. Empty names and duplicates are no-ops.
func (s *SubjectSet) Add(name string) {
	if name == "" {
		return
	}
	s.members[name] = true
}

// Contains reports membership.
func (s *SubjectSet) Contains(name string) bool {
	return s.members[name]
}

// Names returns all members sorted alphabetically.
func (s *SubjectSet) Names() []string {
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Added returns the members that are not defaults, sorted. These are the only
// names that need persisting.
func (s *SubjectSet) Added() []string {
	defaults := make(map[string]bool, len(DefaultSubjects))
	for _, name := range DefaultSubjects {
		defaults[name] = true
	}
	var extra []string
	for name := range s.members {
		if !defaults[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}
