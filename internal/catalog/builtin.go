package catalog

var builtin = []SpeciesTemplate{
	{Name: "Ulva lactuca", Color: "verde", Texture: "lisa", Shape: "hoja", Habitat: "intermareal"},
	{Name: "Porphyra umbilicalis", Color: "rojo", Texture: "gelatinosa", Habitat: "rocoso", Length: LengthShort},
	{Name: "Laminaria digitata", Color: "marron", Texture: "aspera", Shape: "cinta", Length: LengthLong},
	{Name: "Fucus vesiculosus", Color: "marron", Texture: "correosa", Shape: "ramificada", Habitat: "intermareal", Length: LengthMedium},
	{Name: "Chondrus crispus", Color: "rojo", Texture: "cartilaginoso", Habitat: "rocoso", Length: LengthShort},
	{Name: "Sargassum muticum", Color: "marron", Texture: "aspera", Shape: "ramificada", Habitat: "flotante", Length: LengthLong},
}

// Default returns the built-in catalog of six North Atlantic species.
func Default() *Catalog {
	return MustNew(builtin...)
}
