package world

// Tile is one grid cell of the world.
type Tile uint8

const (
	Ocean Tile = iota
	Grass
	Beach
	Rock
)

func (t Tile) String() string {
	switch t {
	case Ocean:
		return "ocean"
	case Grass:
		return "grass"
	case Beach:
		return "beach"
	case Rock:
		return "rock"
	default:
		return "unknown"
	}
}

// Walkable reports whether a land entity may stand on the tile.
func (t Tile) Walkable() bool {
	return t == Grass || t == Beach
}

// Swimmable reports whether the tile is open water.
func (t Tile) Swimmable() bool {
	return t == Ocean
}
