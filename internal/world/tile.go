// Package world provides the tile map the player explores.
package world

// TileType classifies a map symbol.
type TileType int

const (
	// TypeTrail - plain walkable ground
	TypeTrail TileType = iota
	// TypeWall - blocks movement and sight
	TypeWall
	// TypeStart - where the player spawns and returns after a defeat
	TypeStart
	// TypeEntrance - cave mouth, decorative
	TypeEntrance
	// TypeGrass - may trigger a wild battle on entry
	TypeGrass
	// TypeWater - shallows, walkable
	TypeWater
	// TypeTown - heals the team on entry
	TypeTown
	// TypeTrainer - a trainer spawn point
	TypeTrainer
)

// Default map symbols.
const (
	SymbolWall     = '#'
	SymbolTrail    = '.'
	SymbolStart    = 'S'
	SymbolEntrance = 'E'
	SymbolGrass    = 'G'
	SymbolWater    = 'W'
	SymbolTown     = 'T'
	SymbolTrainer  = 'R'
)

// String returns the tile type key.
func (t TileType) String() string {
	switch t {
	case TypeTrail:
		return "trail"
	case TypeWall:
		return "wall"
	case TypeStart:
		return "start"
	case TypeEntrance:
		return "entrance"
	case TypeGrass:
		return "grass"
	case TypeWater:
		return "water"
	case TypeTown:
		return "town"
	case TypeTrainer:
		return "trainer"
	default:
		return "unknown"
	}
}

// Label returns the display label for the tile type.
func (t TileType) Label() string {
	switch t {
	case TypeWall:
		return "Wall"
	case TypeStart:
		return "Island Gate"
	case TypeEntrance:
		return "Cave Entrance"
	case TypeGrass:
		return "Tall Grass"
	case TypeWater:
		return "Water"
	case TypeTown:
		return "Town Plaza"
	case TypeTrainer:
		return "Trainer"
	default:
		return "Trail"
	}
}

// IsPassable returns true if the player can stand on the tile.
// Only walls block movement and sight.
func (t TileType) IsPassable() bool {
	return t != TypeWall
}

// ParseTileType maps a type key (as used in map files) to a TileType.
func ParseTileType(key string) (TileType, bool) {
	for t := TypeTrail; t <= TypeTrainer; t++ {
		if t.String() == key {
			return t, true
		}
	}
	return TypeTrail, false
}

// Legend maps tile symbols to their classification.
type Legend map[rune]TileType

// DefaultLegend returns the standard symbol table.
func DefaultLegend() Legend {
	return Legend{
		SymbolWall:     TypeWall,
		SymbolTrail:    TypeTrail,
		SymbolStart:    TypeStart,
		SymbolEntrance: TypeEntrance,
		SymbolGrass:    TypeGrass,
		SymbolWater:    TypeWater,
		SymbolTown:     TypeTown,
		SymbolTrainer:  TypeTrainer,
	}
}

// Lookup classifies a symbol. Unknown symbols are trail.
func (l Legend) Lookup(symbol rune) TileType {
	if t, ok := l[symbol]; ok {
		return t
	}
	return TypeTrail
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit tile offset for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
