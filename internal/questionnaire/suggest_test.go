package questionnaire_test

import (
	"testing"

	"algaid/internal/catalog"
	"algaid/internal/questionnaire"
)

func TestKnown(t *testing.T) {
	if !questionnaire.Known(catalog.AttrTexture, "cartilaginoso") {
		t.Fatal("expected cartilaginoso to be a texture value")
	}
	if questionnaire.Known(catalog.AttrTexture, "Cartilaginosa") {
		t.Fatal("labels are not values")
	}
	if questionnaire.Known(catalog.Attribute("smell"), "salty") {
		t.Fatal("unknown attribute has no values")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		attr  catalog.Attribute
		input string
		want  string
		ok    bool
	}{
		{catalog.AttrColor, "verd", "verde", true},
		{catalog.AttrTexture, "cartilagenoso", "cartilaginoso", true},
		{catalog.AttrHabitat, "intermarial", "intermareal", true},
		{catalog.AttrColor, "verde", "", false},
		{catalog.AttrColor, "amarillo", "", false},
		{catalog.AttrShape, "", "", false},
	}
	for _, tt := range tests {
		got, ok := questionnaire.Suggest(tt.attr, tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Suggest(%s, %q) = %q, %v; want %q, %v", tt.attr, tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClosestAmongCatalogValues(t *testing.T) {
	candidates := []string{"verde", "amarillo", "verde"}
	if got, ok := questionnaire.Closest("Amarilo", candidates); !ok || got != "amarillo" {
		t.Fatalf("expected amarillo, got %q (ok=%v)", got, ok)
	}
	if got, ok := questionnaire.Closest("verd", candidates); !ok || got != "verde" {
		t.Fatalf("expected duplicate candidates not to tie, got %q (ok=%v)", got, ok)
	}
	if _, ok := questionnaire.Closest("amarillo", candidates); ok {
		t.Fatal("expected no suggestion for an exact candidate")
	}
	if _, ok := questionnaire.Closest("ab", []string{"ac", "ad"}); ok {
		t.Fatal("expected equally close candidates to yield no suggestion")
	}
}
