package ingredient

import "strings"

// unitRule associates name keywords with the purchase unit those products
// are naturally bought in. Rules are evaluated in order, first match wins.
type unitRule struct {
	keywords []string
	unit     string
}

// exactUnits resolves whole-name matches before the substring rules run.
// Needed for short words that are substrings of other products ("agua" is
// inside "aguacate").
var exactUnits = map[string]string{
	"agua": "l",
}

// unitRules maps product families to their natural purchase unit. Ordered:
// more specific families come before broader ones.
var unitRules = []unitRule{
	// Bottled liquids
	{[]string{"aceite", "vinagre", "vino", "refresco", "sidra", "cerveza"}, "botella"},
	// Milk and milk drinks come in cartons
	{[]string{"leche"}, "brick"},
	// Other liquids bought by the litre
	{[]string{"zumo", "jugo", "caldo", "agua mineral"}, "l"},
	// Meats, fish, cured meats, dairy blocks, dry staples and snacks are
	// packaged goods
	{[]string{
		"pollo", "pavo", "ternera", "cerdo", "cordero", "carne", "lomo",
		"pescado", "merluza", "salmón", "bacalao", "pescadilla",
		"jamón", "chorizo", "salchichón", "bacon", "beicon", "salchicha",
		"queso", "mantequilla",
		"arroz", "pasta", "macarrones", "espaguetis", "fideos", "harina",
		"azúcar", "lentejas", "garbanzos", "alubias",
		"galletas", "cereales", "patatas fritas",
	}, "paquete"},
	// Leafy greens and shellfish sold loose in bags
	{[]string{"lechuga", "espinacas", "acelgas", "canónigos", "rúcula",
		"mejillones", "almejas", "berberechos"}, "bolsa"},
	// Small berries and mushrooms come in trays
	{[]string{"fresas", "fresa", "frambuesas", "arándanos", "moras",
		"champiñones", "champiñón", "setas"}, "bandeja"},
	// Canned fish
	{[]string{"atún"}, "lata"},
	// Multi-unit fruit sold in packs
	{[]string{"manzana", "naranja", "tomate"}, "pack"},
	// Root vegetables sold in mesh bags
	{[]string{"zanahoria", "cebolla", "patata"}, "malla"},
	// Single-unit items
	{[]string{"huevo", "limón", "aguacate", "pan", "yogur"}, "unidad"},
}

// InferUnit guesses the most natural purchase unit for an ingredient name.
// Returns the empty string when nothing matches (no unit displayed).
func InferUnit(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if u, ok := exactUnits[n]; ok {
		return u
	}
	for _, rule := range unitRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.unit
			}
		}
	}
	return ""
}
