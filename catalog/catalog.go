package catalog

import (
	"regexp"
	"strings"
)

// CraftCategory is one entry of the desired craft taxonomy. The database is
// reconciled to exactly this set, keyed by slug.
type CraftCategory struct {
	Name      string
	SubCrafts []string
}

var CraftCategories = []CraftCategory{
	{
		Name: "Weaving",
		SubCrafts: []string{
			"Pashmina Shawl",
			"Kani Shawl",
			"Carpet",
			"Namda",
		},
	},
	{
		Name: "Wood Work",
		SubCrafts: []string{
			"Walnut Wood Carving",
			"Khatamband",
			"Pinjrakari",
		},
	},
	{
		Name: "Papier Mache",
		SubCrafts: []string{
			"Decorative Boxes",
			"Ornaments",
		},
	},
	{
		Name: "Metal Work",
		SubCrafts: []string{
			"Copperware",
			"Silverware",
			"Engraving",
		},
	},
	{
		Name: "Embroidery",
		SubCrafts: []string{
			"Sozni",
			"Aari",
			"Crewel",
			"Chain Stitch",
		},
	},
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the deterministic reconciliation key from a display name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
