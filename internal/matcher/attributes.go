package matcher

import "algaid/internal/catalog"

// Attributes holds the observed value for each attribute reported so far.
type Attributes map[catalog.Attribute]string

// Get returns the observed value for attr.
func (a Attributes) Get(attr catalog.Attribute) (string, bool) {
	value, ok := a[attr]
	return value, ok
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Complete reports whether every recognized attribute has a value.
func (a Attributes) Complete() bool {
	for _, attr := range catalog.Attributes() {
		if _, ok := a[attr]; !ok {
			return false
		}
	}
	return true
}
