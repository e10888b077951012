package pokemon

// NamedResource is a PokeAPI name/url reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot associates a Pokémon with one of its elemental types.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot associates a Pokémon with one of its abilities.
type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// Stat is a base stat value such as hp or speed.
type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Name returns the stat's name, e.g. "special-attack".
func (s Stat) Name() string { return s.Stat.Name }

// MoveSlot associates a Pokémon with a learnable move.
type MoveSlot struct {
	Move NamedResource `json:"move"`
}

// Sprites holds the sprite image URLs. Either may be empty.
type Sprites struct {
	Front string `json:"front_default"`
	Back  string `json:"back_default"`
}

// Cries holds the battle cry audio URLs. Either may be empty.
type Cries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// Pokemon is the domain record as served by PokeAPI's /pokemon endpoint.
// Height is in decimeters and weight in hectograms.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []Stat        `json:"stats"`
	Moves     []MoveSlot    `json:"moves"`
	Sprite    Sprites       `json:"sprites"`
	Cries     Cries         `json:"cries"`
}
