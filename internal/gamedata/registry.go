package gamedata

import (
	"errors"
)

// Picker is the slice of math/rand used for catalog selection.
type Picker interface {
	Intn(n int) int
}

// CreatureRegistry holds loaded creature definitions.
type CreatureRegistry struct {
	creatures []CreatureDef
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	return &CreatureRegistry{creatures: creatures}
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.json.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	for _, c := range creatures {
		if len(c.Abilities) == 0 {
			return nil, errors.New("creature " + c.ID + " has no abilities")
		}
	}
	return NewCreatureRegistry(creatures), nil
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Pick selects a creature definition uniformly at random.
func (r *CreatureRegistry) Pick(rng Picker) *CreatureDef {
	if len(r.creatures) == 0 {
		return nil
	}
	return &r.creatures[rng.Intn(len(r.creatures))]
}

// At returns the definition at index i, wrapping around the catalog.
func (r *CreatureRegistry) At(i int) *CreatureDef {
	if len(r.creatures) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return &r.creatures[i%len(r.creatures)]
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Count returns the number of creatures in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}
