package ingredient

import "strings"

// Normalized is a purchasable quantity: how many of which purchase unit to
// actually buy, independent of the raw grams/ml the recipes asked for.
type Normalized struct {
	Quantity float64
	Unit     string
}

// Collapse thresholds. Kept as data so the heuristic nature of the values
// is visible and tests can exercise the boundaries.
var (
	meatCollapseGrams = 200.0
	eggsPerDozen      = 12.0
	eggsPerHalfDozen  = 6.0
	producePackCount  = 4.0
	yogurtPackCount   = 4.0
	rootVegMeshCount  = 3.0
)

// massOrVolumeUnits marks raw units that describe weight or volume rather
// than a count.
var massOrVolumeUnits = map[string]bool{
	"g": true, "kg": true, "ml": true, "l": true,
}

var (
	meatKeywords = []string{
		"pollo", "pavo", "ternera", "cerdo", "cordero", "carne", "lomo",
		"solomillo", "chuleta", "costilla", "pechuga", "muslo",
		"pescado", "merluza", "salmón", "bacalao", "lubina", "dorada",
	}
	eggKeywords     = []string{"huevo"}
	yogurtKeywords  = []string{"yogur"}
	produceKeywords = []string{"manzana", "naranja", "tomate", "pera", "plátano"}
	rootVegKeywords = []string{"zanahoria", "cebolla", "patata"}
	dryKeywords     = []string{
		"arroz", "pasta", "macarrón", "macarrones", "espagueti", "fideo",
		"harina", "azúcar", "lenteja", "garbanzo", "alubia",
	}
	oilKeywords = []string{"aceite"}
)

func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// NormalizeQuantity converts an accumulated raw quantity into a realistic
// purchase. The raw magnitude is deliberately discarded where the product
// is sold in fixed packages: 450 g of chicken across three recipes is still
// one tray at the store. Callers re-run this over the full raw total every
// time the total changes; the rules are not incremental.
func NormalizeQuantity(name string, total float64, unit string) Normalized {
	n := strings.ToLower(strings.TrimSpace(name))

	switch {
	case matchesAny(n, meatKeywords):
		// Large cuts: one package covers the week once the recipes ask
		// for a real amount of it.
		if total >= meatCollapseGrams || massOrVolumeUnits[unit] {
			return Normalized{Quantity: 1, Unit: "paquete"}
		}
		return Normalized{Quantity: total, Unit: "paquete"}

	case matchesAny(n, eggKeywords):
		if total >= eggsPerDozen {
			return Normalized{Quantity: 1, Unit: "docena"}
		}
		if total >= eggsPerHalfDozen {
			return Normalized{Quantity: 1, Unit: "media docena"}
		}
		return Normalized{Quantity: total, Unit: "unidad"}

	case matchesAny(n, yogurtKeywords):
		if total >= yogurtPackCount {
			return Normalized{Quantity: 1, Unit: "pack"}
		}
		return Normalized{Quantity: total, Unit: "unidad"}

	case matchesAny(n, produceKeywords):
		if total >= producePackCount {
			return Normalized{Quantity: 1, Unit: "pack"}
		}
		return Normalized{Quantity: total, Unit: "unidad"}

	case matchesAny(n, rootVegKeywords):
		if total >= rootVegMeshCount {
			return Normalized{Quantity: 1, Unit: "malla"}
		}
		return Normalized{Quantity: total, Unit: "unidad"}

	// "sal" only as the exact name: as a substring it would claim
	// salsa, salchichón...
	case n == "sal" || matchesAny(n, dryKeywords):
		return Normalized{Quantity: 1, Unit: "paquete"}

	case matchesAny(n, oilKeywords):
		return Normalized{Quantity: 1, Unit: "botella"}
	}

	// No rule: the original quantity passes through with the raw unit, or
	// the inferred one when the line carried none.
	if unit == "" {
		unit = InferUnit(n)
	}
	return Normalized{Quantity: total, Unit: unit}
}
