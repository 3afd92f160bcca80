package catalog

import (
	"fmt"
	"strings"
)

// Domain identifies one of the product verticals an analysis can target
type Domain string

const (
	Beard    Domain = "beard"
	Lipstick Domain = "lipstick"
)

// Domains lists every supported domain in display order
func Domains() []Domain {
	return []Domain{Beard, Lipstick}
}

// Valid reports whether d is a supported domain
func (d Domain) Valid() bool {
	return d == Beard || d == Lipstick
}

// ParseDomain converts user input into a Domain
func ParseDomain(s string) (Domain, error) {
	switch Domain(strings.ToLower(strings.TrimSpace(s))) {
	case Beard:
		return Beard, nil
	case Lipstick:
		return Lipstick, nil
	default:
		return "", fmt.Errorf("unsupported domain %q (supported: beard, lipstick)", s)
	}
}

// Entry is a recognized category name with its display metadata.
// Metadata is a description for beard entries and a hex color for lipstick shades.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Metadata string `json:"metadata" yaml:"metadata"`
}

// Catalog is an ordered set of entries
type Catalog []Entry

// Names returns the entry names in catalog order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		names = append(names, e.Name)
	}
	return names
}

// Lookup returns the entry with exactly the given name
func (c Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether name is exactly one of the catalog names
func (c Catalog) Contains(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Canonical maps a model-provided value onto a catalog name.
// An exact match wins; otherwise surrounding whitespace and case are ignored.
func (c Catalog) Canonical(value string) (string, bool) {
	if c.Contains(value) {
		return value, true
	}
	trimmed := strings.TrimSpace(value)
	for _, e := range c {
		if strings.EqualFold(e.Name, trimmed) {
			return e.Name, true
		}
	}
	return "", false
}

var beardStyles = Catalog{
	{Name: "Barbe Complète", Metadata: "Une barbe épaisse et complète qui couvre tout le visage"},
	{Name: "Barbe Courte", Metadata: "Style entretenu et court, parfait pour un look professionnel"},
	{Name: "Bouc", Metadata: "Barbe au menton avec moustache, sans poils sur les joues"},
	{Name: "Barbe de 3 Jours", Metadata: "Look légèrement négligé qui convient à de nombreux visages"},
	{Name: "Moustache", Metadata: "Focus sur la moustache, parfait pour un style distinctif"},
	{Name: "Collier", Metadata: "Barbe qui suit la ligne de la mâchoire sans moustache"},
}

var beardColors = Catalog{
	{Name: "Naturel", Metadata: "Gardez votre couleur naturelle"},
	{Name: "Noir", Metadata: "Teinte noire profonde"},
	{Name: "Brun Foncé", Metadata: "Couleur brune riche"},
	{Name: "Brun Clair", Metadata: "Teinte brune plus claire"},
	{Name: "Roux", Metadata: "Teinte rousse chaude"},
	{Name: "Gris/Poivre et Sel", Metadata: "Effet naturel de vieillissement élégant"},
}

var lipstickColors = Catalog{
	{Name: "Ruby", Metadata: "#932432"},
	{Name: "Terracotta", Metadata: "#B85C3C"},
	{Name: "Dusty Rose", Metadata: "#C48B99"},
	{Name: "Natural Nude", Metadata: "#BE8B7B"},
	{Name: "Berry Wine", Metadata: "#6E2F3D"},
	{Name: "Soft Coral", Metadata: "#DB8075"},
}

// lipstickHints are the short shade descriptions given to the model next to each name
var lipstickHints = map[string]string{
	"Ruby":         "rouge classique",
	"Terracotta":   "orangé nude",
	"Dusty Rose":   "rose naturel",
	"Natural Nude": "beige naturel",
	"Berry Wine":   "prune foncé",
	"Soft Coral":   "corail doux",
}

// BeardStyles returns the beard style catalog
func BeardStyles() Catalog { return beardStyles.clone() }

// BeardColors returns the beard color catalog
func BeardColors() Catalog { return beardColors.clone() }

// LipstickColors returns the lipstick shade catalog
func LipstickColors() Catalog { return lipstickColors.clone() }

// LipstickHint returns the short shade description for a lipstick name
func LipstickHint(name string) string {
	return lipstickHints[name]
}
