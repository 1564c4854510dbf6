package ingredient

import "strings"

// The closed grocery taxonomy. CategoryOther is the terminal fallback, so
// Categorize is total over arbitrary input.
const (
	CategoryMeat       = "Carnes y Aves"
	CategoryFish       = "Pescados y Mariscos"
	CategoryDairy      = "Lácteos y Huevos"
	CategoryFruit      = "Frutas"
	CategoryVegetables = "Verduras"
	CategoryGrains     = "Granos y Cereales"
	CategoryLegumes    = "Legumbres"
	CategoryNuts       = "Frutos Secos y Semillas"
	CategoryOils       = "Aceites y Grasas"
	CategorySpices     = "Condimentos y Especias"
	CategoryOther      = "Otros"
)

// Categories lists every category in display order.
var Categories = []string{
	CategoryMeat,
	CategoryFish,
	CategoryDairy,
	CategoryFruit,
	CategoryVegetables,
	CategoryGrains,
	CategoryLegumes,
	CategoryNuts,
	CategoryOils,
	CategorySpices,
	CategoryOther,
}

// exactCategory resolves whole-name matches before the substring pass.
// It exists for names that would otherwise be claimed by an earlier
// category's substring ("nuez moscada" is a spice, not a nut).
var exactCategory = map[string]string{
	"nuez moscada": CategorySpices,
	"agua":         CategoryOther,
	"maíz dulce":   CategoryVegetables,
	"chocolate":    CategoryOther, // contains "col"
}

type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is evaluated top to bottom; the first category with a
// matching keyword wins. Within the hazard pairs (judía verde vs judía,
// pimiento vs pimienta) the earlier category is the intended winner.
var categoryRules = []categoryRule{
	{CategoryMeat, []string{
		"pollo", "pavo", "ternera", "cerdo", "cordero", "conejo", "carne",
		"bistec", "filete", "chuleta", "lomo", "solomillo", "pechuga",
		"muslo", "costilla", "jamón", "chorizo", "salchichón", "salchicha",
		"morcilla", "bacon", "beicon", "panceta", "fuet", "mortadela",
		"albóndiga", "hamburguesa", "pato", "codorniz", "hígado",
	}},
	{CategoryFish, []string{
		"pescado", "merluza", "salmón", "atún", "bacalao", "lubina",
		"dorada", "sardina", "boquerón", "anchoa", "trucha", "rape",
		"lenguado", "rodaballo", "caballa", "pescadilla", "emperador",
		"gamba", "langostino", "cigala", "mejillón", "almeja", "berberecho",
		"calamar", "sepia", "pulpo", "centollo", "nécora", "marisco",
		"surimi", "cangrejo",
	}},
	{CategoryDairy, []string{
		"leche", "yogur", "queso", "mantequilla", "nata", "huevo",
		"requesón", "cuajada", "kéfir", "mascarpone", "mozzarella",
		"parmesano", "burrata", "flan", "natillas",
	}},
	{CategoryFruit, []string{
		"manzana", "plátano", "banana", "naranja", "pera", "uva", "fresa",
		"frambuesa", "arándano", "mora", "melón", "sandía", "melocotón",
		"albaricoque", "nectarina", "cereza", "ciruela", "kiwi", "mango",
		"piña", "papaya", "limón", "lima", "mandarina", "pomelo", "granada",
		"higo", "caqui", "aguacate", "coco", "fruta",
	}},
	{CategoryVegetables, []string{
		"judía verde", "judías verdes", "tomate", "lechuga", "ensalada",
		"espinaca", "acelga", "canónigo", "rúcula", "escarola", "endivia",
		"cebolla", "cebolleta", "ajo", "puerro", "patata", "boniato",
		"zanahoria", "calabacín", "calabaza", "berenjena", "pimiento",
		"pepino", "brócoli", "coliflor", "repollo", "col", "lombarda",
		"espárrago", "alcachofa", "champiñón", "seta", "apio", "rábano",
		"remolacha", "nabo", "guisante", "verdura", "hortaliza",
	}},
	{CategoryGrains, []string{
		"arroz", "pasta", "macarrón", "macarrones", "espagueti", "fideo",
		"tallarín", "cuscús", "quinoa", "pan", "harina", "avena", "cereal",
		"maíz", "trigo", "centeno", "espelta", "tortita", "galleta",
		"bizcocho", "masa",
	}},
	{CategoryLegumes, []string{
		"lenteja", "garbanzo", "alubia", "judía", "frijol", "haba", "soja",
		"edamame", "azuki", "legumbre",
	}},
	{CategoryNuts, []string{
		"almendra", "nuez", "nueces", "avellana", "cacahuete", "pistacho", "anacardo",
		"castaña", "piñón", "dátil", "pasas", "semilla", "pipa", "sésamo",
		"chía", "lino", "amapola",
	}},
	{CategoryOils, []string{
		"aceite", "oliva", "manteca", "margarina", "ghee", "sebo", "grasa",
	}},
	{CategorySpices, []string{
		"pimienta", "pimentón", "orégano", "comino", "canela", "azafrán",
		"perejil", "cilantro", "albahaca", "romero", "tomillo", "laurel",
		"curry", "cúrcuma", "jengibre", "vainilla", "clavo", "anís",
		"vinagre", "salsa", "mostaza", "mayonesa", "kétchup", "ketchup",
		"azúcar", "miel", "edulcorante", "levadura", "caldo", "especia",
		"condimento", "sal",
	}},
}

// Categorize maps an ingredient name to one of the fixed taxonomy values.
// Matching is case-insensitive: exact match first, then ordered substring
// matching. Unmatched input falls back to CategoryOther.
func Categorize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return CategoryOther
	}

	if cat, ok := exactCategory[n]; ok {
		return cat
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
