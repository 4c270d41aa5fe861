package models

// GlossaryEntry describes a scientific ingredient name in plain
// language.
type GlossaryEntry struct {
	SimpleName    string   `json:"simple_name"`
	Explanation   string   `json:"explanation"`
	Advantages    []string `json:"advantages"`
	Disadvantages []string `json:"disadvantages"`
}

// ScientificIngredients is static reference data mapping lowercase
// scientific ingredient names to consumer-friendly explanations. Not
// wired into any endpoint yet; kept for future ingredient lookups.
var ScientificIngredients = map[string]GlossaryEntry{
	"ascorbic acid": {
		SimpleName:    "Vitamin C",
		Explanation:   "A natural antioxidant vitamin that helps boost immunity and heal wounds",
		Advantages:    []string{"Boosts immune system", "Helps iron absorption", "Antioxidant properties", "Wound healing"},
		Disadvantages: []string{"Can cause stomach upset in large amounts", "May interact with some medications"},
	},
	"tocopherol": {
		SimpleName:    "Vitamin E",
		Explanation:   "A fat-soluble vitamin that acts as an antioxidant in the body",
		Advantages:    []string{"Protects cells from damage", "Good for skin health", "Supports immune function"},
		Disadvantages: []string{"Can thin blood in high doses", "May interfere with vitamin K"},
	},
	"sodium benzoate": {
		SimpleName:    "Preservative",
		Explanation:   "A chemical preservative that prevents bacteria and mold growth",
		Advantages:    []string{"Extends shelf life", "Prevents food spoilage", "Generally safe in small amounts"},
		Disadvantages: []string{"May cause allergies in some people", "Can form harmful compounds when mixed with vitamin C"},
	},
	"monosodium glutamate": {
		SimpleName:    "MSG (Flavor Enhancer)",
		Explanation:   "A salt that enhances savory flavors in food",
		Advantages:    []string{"Enhances taste", "Reduces need for salt", "Safe for most people"},
		Disadvantages: []string{"May cause headaches in sensitive people", "Can mask poor quality ingredients"},
	},
	"carrageenan": {
		SimpleName:    "Seaweed Extract Thickener",
		Explanation:   "A natural thickener extracted from red seaweed",
		Advantages:    []string{"Natural ingredient", "Good texture enhancer", "Dairy-free option"},
		Disadvantages: []string{"May cause digestive issues", "Some studies suggest inflammation risk"},
	},
	"xanthan gum": {
		SimpleName:    "Natural Thickener",
		Explanation:   "A natural thickener produced by fermenting corn sugar",
		Advantages:    []string{"Gluten-free", "Improves texture", "Natural fermentation product"},
		Disadvantages: []string{"May cause bloating", "Can have laxative effect in large amounts"},
	},
	"potassium sorbate": {
		SimpleName:    "Preservative",
		Explanation:   "A potassium salt that prevents mold and yeast growth",
		Advantages:    []string{"Effective preservative", "Generally safe", "Prevents spoilage"},
		Disadvantages: []string{"May cause skin irritation in some people", "Can affect taste in high concentrations"},
	},
	"citric acid": {
		SimpleName:    "Natural Acid",
		Explanation:   "A natural acid found in citrus fruits, used as preservative and flavor enhancer",
		Advantages:    []string{"Natural ingredient", "Preserves freshness", "Enhances flavor"},
		Disadvantages: []string{"Can erode tooth enamel", "May cause stomach irritation"},
	},
	"sodium nitrite": {
		SimpleName:    "Meat Preservative",
		Explanation:   "A salt that preserves meat and maintains pink color",
		Advantages:    []string{"Prevents dangerous bacteria", "Maintains meat color", "Extends shelf life"},
		Disadvantages: []string{"May form harmful compounds when heated", "Linked to health concerns in large amounts"},
	},
	"lecithin": {
		SimpleName:    "Natural Emulsifier",
		Explanation:   "A natural fat that helps mix oil and water-based ingredients",
		Advantages:    []string{"Natural ingredient", "Good for brain health", "Helps texture"},
		Disadvantages: []string{"May cause digestive upset", "Some people are allergic to soy lecithin"},
	},
}
