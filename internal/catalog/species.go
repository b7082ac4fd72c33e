package catalog

// SpeciesTemplate describes the expected traits of one species. An empty
// value leaves that attribute out of scoring.
type SpeciesTemplate struct {
	Name    string
	Color   string
	Texture string
	Shape   string
	Habitat string
	Length  LengthClass
}

// Expectation is one specified attribute of a template.
type Expectation struct {
	Attribute Attribute
	Value     string
}

// Expect returns the expected value for attr and whether it is specified.
func (t SpeciesTemplate) Expect(attr Attribute) (string, bool) {
	var value string
	switch attr {
	case AttrColor:
		value = t.Color
	case AttrTexture:
		value = t.Texture
	case AttrShape:
		value = t.Shape
	case AttrHabitat:
		value = t.Habitat
	case AttrLength:
		value = string(t.Length)
	}
	return value, value != ""
}

// Specified returns the attributes the template constrains, in canonical
// attribute order.
func (t SpeciesTemplate) Specified() []Expectation {
	out := make([]Expectation, 0, len(Attributes()))
	for _, attr := range Attributes() {
		if value, ok := t.Expect(attr); ok {
			out = append(out, Expectation{Attribute: attr, Value: value})
		}
	}
	return out
}

// Matchable reports whether at least one attribute is specified.
func (t SpeciesTemplate) Matchable() bool {
	for _, attr := range Attributes() {
		if _, ok := t.Expect(attr); ok {
			return true
		}
	}
	return false
}
