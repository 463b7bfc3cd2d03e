package world

import "strings"

// Kind enumerates what occupies a tile.
type Kind uint8

const (
	// Empty marks an unset cell. It is never a placement target.
	Empty Kind = iota
	// Highlight is the transient cursor overlay. It is never placed.
	Highlight
	Grass
	Water
	Concrete
	Road
	Residential
)

// Placeable lists the kinds a player may build, in selector order.
var Placeable = []Kind{Grass, Water, Concrete, Road, Residential}

var kindNames = map[Kind]string{
	Empty:       "empty",
	Highlight:   "highlight",
	Grass:       "grass",
	Water:       "water",
	Concrete:    "concrete",
	Road:        "road",
	Residential: "residential",
}

// Index is the kind's ordinal in the tile atlas and cost table:
// Highlight is 0, Grass 1 through Residential 5, Empty -1.
func (k Kind) Index() int { return int(k) - 1 }

// CanPlace reports whether k may be written by a build tool.
func (k Kind) CanPlace() bool { return k >= Grass && k <= Residential }

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a lower-case kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return Empty, false
}

// Tile is the stored content of a single grid cell.
type Tile struct {
	Kind      Kind
	Elevation int
}

// EmptyTile is returned for every read outside the grid.
var EmptyTile = Tile{Kind: Empty, Elevation: 0}
