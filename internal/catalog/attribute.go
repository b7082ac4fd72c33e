package catalog

import (
	"fmt"
	"strings"
)

// Attribute names one descriptive trait of an alga.
type Attribute string

const (
	AttrColor   Attribute = "color"
	AttrTexture Attribute = "texture"
	AttrShape   Attribute = "shape"
	AttrHabitat Attribute = "habitat"
	AttrLength  Attribute = "length-class"
)

// Attributes lists every recognized attribute in canonical order.
func Attributes() []Attribute {
	return []Attribute{AttrColor, AttrTexture, AttrShape, AttrHabitat, AttrLength}
}

// ParseAttribute resolves a key to a recognized attribute.
func ParseAttribute(key string) (Attribute, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "length", "length_class":
		key = string(AttrLength)
	}
	for _, attr := range Attributes() {
		if string(attr) == key {
			return attr, true
		}
	}
	return "", false
}

// LengthClass is the approximate size bucket of a specimen.
type LengthClass string

const (
	LengthUnspecified LengthClass = ""
	LengthShort       LengthClass = "corta"
	LengthMedium      LengthClass = "media"
	LengthLong        LengthClass = "largo"
)

// ParseLengthClass accepts the catalog spelling or the English bucket name.
func ParseLengthClass(value string) (LengthClass, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return LengthUnspecified, nil
	case string(LengthShort), "short":
		return LengthShort, nil
	case string(LengthMedium), "medium":
		return LengthMedium, nil
	case string(LengthLong), "long":
		return LengthLong, nil
	default:
		return LengthUnspecified, fmt.Errorf("%w: %q", ErrInvalidLength, value)
	}
}
