package ingredient

import "strings"

// DefaultPrice is the generic estimate used when no pricing rule matches.
const DefaultPrice = 2.00

type priceRule struct {
	keywords []string
	price    float64
}

// priceRules estimates what one purchase of the product costs at a
// supermarket: small-package retail prices, not per-kilo bulk prices.
// Canned tuna is priced as one can, chicken as one ~1kg tray. The numbers
// are hand-tuned heuristics; evaluated in order, first match wins.
var priceRules = []priceRule{
	// Meat and poultry, per tray/package
	{[]string{"pechuga", "pollo"}, 4.50},
	{[]string{"pavo"}, 4.80},
	{[]string{"ternera", "bistec", "filete", "solomillo"}, 6.50},
	{[]string{"cerdo", "lomo", "chuleta", "costilla"}, 4.20},
	{[]string{"cordero"}, 7.00},
	{[]string{"carne picada", "albóndiga", "hamburguesa", "carne"}, 4.00},
	{[]string{"jamón serrano", "jamón ibérico"}, 5.50},
	{[]string{"jamón", "fiambre", "mortadela"}, 2.80},
	{[]string{"chorizo", "salchichón", "fuet"}, 2.50},
	{[]string{"bacon", "beicon", "panceta"}, 2.20},
	{[]string{"salchicha"}, 2.00},

	// Fish, per tray; canned tuna per can
	{[]string{"atún"}, 1.50},
	{[]string{"salmón"}, 5.80},
	{[]string{"merluza", "pescadilla", "bacalao"}, 5.00},
	{[]string{"lubina", "dorada", "trucha"}, 4.50},
	{[]string{"gamba", "langostino"}, 6.00},
	{[]string{"mejillón", "almeja", "berberecho"}, 3.00},
	{[]string{"calamar", "sepia", "pulpo"}, 5.50},
	{[]string{"sardina", "boquerón", "anchoa"}, 2.80},
	{[]string{"pescado", "marisco"}, 4.50},

	// Dairy and eggs
	{[]string{"huevo"}, 2.20},
	{[]string{"leche"}, 1.10},
	{[]string{"yogur"}, 1.80},
	{[]string{"queso"}, 3.50},
	{[]string{"mantequilla"}, 2.50},
	{[]string{"nata"}, 1.50},

	// Fruit, per pack/mesh or per piece
	{[]string{"manzana"}, 2.50},
	{[]string{"plátano", "banana"}, 1.60},
	{[]string{"naranja", "mandarina"}, 2.80},
	{[]string{"pera"}, 2.40},
	{[]string{"uva"}, 2.90},
	{[]string{"fresa", "frambuesa", "arándano", "mora"}, 2.50},
	{[]string{"melón", "sandía"}, 3.50},
	{[]string{"limón", "lima"}, 0.50},
	{[]string{"aguacate"}, 1.20},
	{[]string{"kiwi", "mango", "piña"}, 2.20},

	// Vegetables
	{[]string{"tomate"}, 2.00},
	{[]string{"patata"}, 2.50},
	{[]string{"cebolla"}, 1.80},
	{[]string{"zanahoria"}, 1.20},
	{[]string{"lechuga", "ensalada"}, 1.00},
	{[]string{"espinaca", "acelga"}, 1.50},
	{[]string{"pimiento"}, 1.80},
	{[]string{"calabacín", "berenjena", "pepino"}, 1.40},
	{[]string{"brócoli", "coliflor"}, 1.90},
	{[]string{"champiñón", "seta"}, 1.80},
	{[]string{"ajo"}, 0.80},

	// Staples, per package
	{[]string{"arroz"}, 1.50},
	{[]string{"pasta", "macarrón", "macarrones", "espagueti", "fideo"}, 1.20},
	{[]string{"pan"}, 1.00},
	{[]string{"harina"}, 1.00},
	{[]string{"azúcar"}, 1.20},
	{[]string{"lenteja", "garbanzo", "alubia"}, 1.80},
	{[]string{"galleta", "cereal"}, 2.00},

	// Nuts and seeds
	{[]string{"almendra", "nuez", "avellana", "pistacho", "anacardo"}, 3.50},
	{[]string{"cacahuete", "pipa", "semilla"}, 1.80},

	// Oils and bottled liquids, per bottle
	{[]string{"aceite de oliva"}, 5.50},
	{[]string{"aceite"}, 3.50},
	{[]string{"vinagre"}, 1.20},
	{[]string{"vino"}, 4.00},

	// Condiments
	{[]string{"pimienta", "pimentón", "orégano", "comino", "canela",
		"tomillo", "romero", "especia"}, 1.50},
	{[]string{"salsa", "mostaza", "mayonesa", "kétchup", "ketchup"}, 1.80},
	{[]string{"miel"}, 3.00},
	{[]string{"caldo"}, 1.50},
	// "sal" last: it is a substring of salsa, salmón, salchicha...
	{[]string{"sal"}, 0.60},
}

// EstimatePrice returns the estimated cost of one purchase of the named
// ingredient. Unknown names get DefaultPrice; the result is always > 0.
func EstimatePrice(name string) float64 {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultPrice
	}
	for _, rule := range priceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.price
			}
		}
	}
	return DefaultPrice
}
