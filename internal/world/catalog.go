package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KindInfo holds the presentation data for a tile kind.
type KindInfo struct {
	Label      string `yaml:"label"`
	Color      [3]int `yaml:"color"`
	AtlasIndex int    `yaml:"atlas_index"`
}

// Catalog maps tile kinds to labels, fallback colours and atlas slots.
type Catalog struct {
	kinds map[Kind]KindInfo
}

// DefaultCatalog returns the built-in presentation data.
func DefaultCatalog() *Catalog {
	return &Catalog{kinds: map[Kind]KindInfo{
		Highlight:   {Label: "Highlight", Color: [3]int{250, 240, 120}, AtlasIndex: Highlight.Index()},
		Grass:       {Label: "Grass", Color: [3]int{92, 168, 64}, AtlasIndex: Grass.Index()},
		Water:       {Label: "Water", Color: [3]int{56, 120, 200}, AtlasIndex: Water.Index()},
		Concrete:    {Label: "Concrete", Color: [3]int{160, 160, 164}, AtlasIndex: Concrete.Index()},
		Road:        {Label: "Road", Color: [3]int{60, 60, 66}, AtlasIndex: Road.Index()},
		Residential: {Label: "Residential", Color: [3]int{200, 110, 80}, AtlasIndex: Residential.Index()},
	}}
}

// LoadCatalog reads tile overrides from a YAML file on top of the defaults.
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML document of the form
//
//	tiles:
//	  road: {label: "Street", color: [40, 40, 40], atlas_index: 4}
//
// Unknown kind names are rejected. Omitted fields keep their defaults.
func ParseCatalog(data []byte) (*Catalog, error) {
	c := DefaultCatalog()
	var raw struct {
		Tiles map[string]yaml.Node `yaml:"tiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tile catalog: %w", err)
	}
	for name, node := range raw.Tiles {
		kind, ok := ParseKind(name)
		if !ok || kind == Empty {
			return nil, fmt.Errorf("tile catalog: unknown tile kind %q", name)
		}
		info := c.kinds[kind]
		if err := node.Decode(&info); err != nil {
			return nil, fmt.Errorf("tile catalog: %s: %w", name, err)
		}
		c.kinds[kind] = info
	}
	return c, nil
}

// Info returns the presentation data for k.
func (c *Catalog) Info(k Kind) KindInfo {
	if info, ok := c.kinds[k]; ok {
		return info
	}
	return KindInfo{Label: k.String(), AtlasIndex: k.Index()}
}

// Labels returns the display names of the placeable kinds in selector order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(Placeable))
	for i, k := range Placeable {
		labels[i] = c.Info(k).Label
	}
	return labels
}
