package catalog

// ProductGroup is a category of care products shown alongside beard recommendations
type ProductGroup struct {
	Category string  `json:"category" yaml:"category"`
	Products Catalog `json:"products" yaml:"products"`
}

var beardProducts = []ProductGroup{
	{
		Category: "Coloration",
		Products: Catalog{
			{Name: "L'Oréal Paris Barbe Longue", Metadata: "Coloration permanente spécifique pour barbes longues"},
			{Name: "L'Oréal Men Expert BarberClub", Metadata: "Gel de précision anti-poils blancs"},
			{Name: "L'Oréal Men Expert One-Twist", Metadata: "Application facile pour barbes courtes à moyennes"},
		},
	},
	{
		Category: "Entretien",
		Products: Catalog{
			{Name: "L'Oréal Men Expert Barber Club Huile", Metadata: "Huile nourrissante pour barbe et visage"},
			{Name: "L'Oréal Men Expert Barber Club Baume", Metadata: "Hydratation intense pour barbes sèches"},
			{Name: "L'Oréal Men Expert Barber Club Gel", Metadata: "Gel lavant 3-en-1 pour barbe, visage et cheveux"},
		},
	},
	{
		Category: "Coiffage",
		Products: Catalog{
			{Name: "L'Oréal Men Expert Barber Club Cire", Metadata: "Définition et maintien pour styles structurés"},
			{Name: "L'Oréal Men Expert Styling Spray", Metadata: "Fixation légère pour barbes et moustaches"},
			{Name: "L'Oréal Men Expert Barber Club Gel Coiffant", Metadata: "Pour dompter les barbes rebelles"},
		},
	},
}

// BeardProducts returns the care product groups in display order
func BeardProducts() []ProductGroup {
	out := make([]ProductGroup, 0, len(beardProducts))
	for _, g := range beardProducts {
		out = append(out, ProductGroup{Category: g.Category, Products: g.Products.clone()})
	}
	return out
}

func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Listing is the full set of catalogs for one domain, as served to the presentation layer
type Listing struct {
	Domain   Domain         `json:"domain" yaml:"domain"`
	Styles   Catalog        `json:"styles,omitempty" yaml:"styles,omitempty"`
	Colors   Catalog        `json:"colors" yaml:"colors"`
	Products []ProductGroup `json:"products,omitempty" yaml:"products,omitempty"`
}

// For returns the listing for a domain
func For(d Domain) Listing {
	switch d {
	case Beard:
		return Listing{Domain: d, Styles: BeardStyles(), Colors: BeardColors(), Products: BeardProducts()}
	default:
		return Listing{Domain: d, Colors: LipstickColors()}
	}
}
