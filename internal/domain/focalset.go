package domain

import (
	"sort"
	"strings"
)

// keySeparator joins labels into a canonical map key. The unit separator
// never appears in sane hypothesis labels.
const keySeparator = "\x1f"

// FocalSet is an immutable, deduplicated set of hypothesis labels. The zero
// value is the empty set. Labels are kept sorted so equal sets always
// produce the same canonical key.
type FocalSet struct {
	labels []string
}

// NewFocalSet builds a focal set from the given labels, deduplicating and
// sorting them.
func NewFocalSet(labels ...string) FocalSet {
	if len(labels) == 0 {
		return FocalSet{}
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return FocalSet{labels: out}
}

// Key returns the canonical map-key encoding of the set.
func (s FocalSet) Key() string {
	return strings.Join(s.labels, keySeparator)
}

// Labels returns a copy of the sorted labels.
func (s FocalSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Size returns the number of hypotheses in the set.
func (s FocalSet) Size() int {
	return len(s.labels)
}

// IsEmpty reports whether the set has no labels.
func (s FocalSet) IsEmpty() bool {
	return len(s.labels) == 0
}

// Contains reports whether label is a member of the set.
func (s FocalSet) Contains(label string) bool {
	i := sort.SearchStrings(s.labels, label)
	return i < len(s.labels) && s.labels[i] == label
}

// Equal reports set equality.
func (s FocalSet) Equal(o FocalSet) bool {
	if len(s.labels) != len(o.labels) {
		return false
	}
	for i, l := range s.labels {
		if o.labels[i] != l {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every label of s is a member of o.
func (s FocalSet) SubsetOf(o FocalSet) bool {
	for _, l := range s.labels {
		if !o.Contains(l) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and o share at least one label.
func (s FocalSet) Intersects(o FocalSet) bool {
	for _, l := range s.labels {
		if o.Contains(l) {
			return true
		}
	}
	return false
}

// Intersect returns the set of labels common to s and o.
func (s FocalSet) Intersect(o FocalSet) FocalSet {
	out := make([]string, 0, min(len(s.labels), len(o.labels)))
	for _, l := range s.labels {
		if o.Contains(l) {
			out = append(out, l)
		}
	}
	return FocalSet{labels: out}
}

// Union returns the set of labels present in s or o.
func (s FocalSet) Union(o FocalSet) FocalSet {
	return NewFocalSet(append(s.Labels(), o.labels...)...)
}

// Complement returns frame \ s.
func (s FocalSet) Complement(frame FocalSet) FocalSet {
	out := make([]string, 0, len(frame.labels))
	for _, l := range frame.labels {
		if !s.Contains(l) {
			out = append(out, l)
		}
	}
	return FocalSet{labels: out}
}

// String renders the set as "{a, b}".
func (s FocalSet) String() string {
	return "{" + strings.Join(s.labels, ", ") + "}"
}
