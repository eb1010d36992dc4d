package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/enum"
)

// openEndedMax is the sentinel upper bound of the last tier, meaning "and above".
const openEndedMax = 999

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default returns the production catalog. Package prices and tier boundaries
// come from the current price list; menu base costs are the kitchen's
// estimates per portion.
func Default() (*Catalog, error) {
	return New(defaultPackages(), defaultMenu(), defaultEquipment(), defaultKits())
}

// MustDefault is Default for wiring paths where the built-in data is known
// good (main, seed, tests).
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func defaultPackages() []CateringPackage {
	return []CateringPackage{
		{
			ID:   "prod_1",
			Name: "Package 1: Outdoor tasting tour",
			SubOptions: []SubOption{
				{ID: "cheese", Name: "Cheese tasting, seasonal dips and house ferments", Price: money(35)},
				{ID: "masabacha", Name: "Masabacha and house ferments", Price: money(35)},
				{ID: "extended", Name: "Extended tasting, wine included", Price: money(50)},
			},
		},
		{
			ID:   "prod_2",
			Name: "Package 2: Wine tastings",
			SubOptions: []SubOption{
				{ID: "wine_2", Name: "Tasting of 2 wines", Price: money(75)},
				{ID: "wine_3_4", Name: "Tasting of 3-4 wines", Price: money(90)},
			},
		},
		{
			ID:   "prod_3",
			Name: "Package 3: Cooking workshops and farm-to-table experience",
			PricingTiers: []PricingTier{
				{MinAttendees: 0, MaxAttendees: 9, Price: money(6000), FixedPrice: true},
				{MinAttendees: 10, MaxAttendees: 13, Price: money(600)},
				{MinAttendees: 14, MaxAttendees: 17, Price: money(550)},
				{MinAttendees: 18, MaxAttendees: openEndedMax, Price: money(550)},
			},
		},
		{
			ID:   "prod_4",
			Name: "Package 4: Full farm-to-table day (3 stations)",
			PricingTiers: []PricingTier{
				{MinAttendees: 0, MaxAttendees: 9, Price: money(1900)},
				{MinAttendees: 10, MaxAttendees: 13, Price: money(1500)},
				{MinAttendees: 14, MaxAttendees: 17, Price: money(1300)},
				{MinAttendees: 18, MaxAttendees: openEndedMax, Price: money(1300)},
			},
		},
		{
			ID:   "prod_5",
			Name: "Package 5: Farm-to-table day (2 stations)",
			PricingTiers: []PricingTier{
				{MinAttendees: 0, MaxAttendees: 9, Price: money(1500)},
				{MinAttendees: 10, MaxAttendees: 13, Price: money(950)},
				{MinAttendees: 14, MaxAttendees: 17, Price: money(750)},
				{MinAttendees: 18, MaxAttendees: openEndedMax, Price: money(750)},
			},
		},
		{
			ID:   "prod_6",
			Name: "Package 6: Deli experiences (Alhambra Deli)",
			PricingTiers: []PricingTier{
				{MinAttendees: 0, MaxAttendees: 9, Price: money(4500), FixedPrice: true},
				{MinAttendees: 10, MaxAttendees: 20, Price: money(400)},
				{MinAttendees: 21, MaxAttendees: 40, Price: money(380)},
				{MinAttendees: 41, MaxAttendees: openEndedMax, Price: money(380)},
			},
		},
		{
			ID:   "prod_7",
			Name: "Package 7: Culinary tours",
			PricingTiers: []PricingTier{
				{MinAttendees: 0, MaxAttendees: 9, Price: money(5500), FixedPrice: true},
				{MinAttendees: 10, MaxAttendees: 13, Price: money(550)},
				{MinAttendees: 14, MaxAttendees: 17, Price: money(500)},
				{MinAttendees: 18, MaxAttendees: openEndedMax, Price: money(500)},
			},
		},
	}
}

func defaultMenu() []MenuItem {
	return []MenuItem{
		// --- Starters (included) ---
		{
			ID: "tartare_winter", Category: enum.MenuCategoryStarters,
			Name: "Winter sea fish tartare: spoon portion with red grapefruit, mint and red onion",
			Price: money(0), BaseCost: money(18),
			Ingredients: []Ingredient{
				{Name: "fresh sea fish (fillet)", Unit: "g", QuantityPerPortion: qty("80")},
				{Name: "red grapefruit", Unit: "unit", QuantityPerPortion: qty("0.25")},
				{Name: "red onion", Unit: "g", QuantityPerPortion: qty("20")},
				{Name: "olive oil", Unit: "ml", QuantityPerPortion: qty("15")},
			},
		},
		{
			ID: "sashimi_sea", Category: enum.MenuCategoryStarters,
			Name: "Sea fish sashimi: fermented chili, ginger, lemon, red grapefruit",
			Price: money(0), BaseCost: money(20),
			Ingredients: []Ingredient{
				{Name: "fresh sea fish (fillet)", Unit: "g", QuantityPerPortion: qty("100")},
				{Name: "fermented chili", Unit: "tsp", QuantityPerPortion: qty("1")},
				{Name: "fresh ginger", Unit: "g", QuantityPerPortion: qty("5")},
			},
		},
		{ID: "tartare_green", Category: enum.MenuCategoryStarters, Name: "Sea fish tartare: green grapes, pistachio, cucumber and herbs", Price: money(0), BaseCost: money(18)},
		{ID: "cured_fish", Category: enum.MenuCategoryStarters, Name: "Cured fish: beetroot, green apple and fermented chili aioli", Price: money(0), BaseCost: money(15)},
		{ID: "bruschetta_basil", Category: enum.MenuCategoryStarters, Name: "Basil oil bruschetta: cheeses, walnuts and seasonal jam", Price: money(0), BaseCost: money(8)},
		{ID: "bruschetta_trout", Category: enum.MenuCategoryStarters, Name: "Cured trout bruschetta: fermented chili aioli and spring onion", Price: money(0), BaseCost: money(12)},
		{ID: "deli_meze", Category: enum.MenuCategoryStarters, Name: "Deli meze: roasted beets, eggplant in tahini, sardines, cured trout, tzatziki", Price: money(0), BaseCost: money(14)},

		// --- Salads (included) ---
		{ID: "salad_winter", Category: enum.MenuCategorySalads, Name: "Winter leaf salad: citrus, rocket, almonds, honey and yogurt stone", Price: money(0), BaseCost: money(12)},
		{ID: "salad_mozzarella", Category: enum.MenuCategorySalads, Name: "Mozzarella salad: arugula, fresh and roasted onion, cherry tomatoes, silan", Price: money(0), BaseCost: money(16)},
		{ID: "torn_mozzarella", Category: enum.MenuCategorySalads, Name: "Torn mozzarella: rocket, roasted and fresh tomatoes, silan and nut crumble", Price: money(0), BaseCost: money(15)},
		{ID: "salad_seasonal", Category: enum.MenuCategorySalads, Name: "Seasonal salad: roasted pumpkin, cherry tomatoes, roasted onion and raw tahini", Price: money(0), BaseCost: money(10)},
		{ID: "salad_green_cheese", Category: enum.MenuCategorySalads, Name: "Green salad with grilled cheese: pears, walnuts and wine dressing", Price: money(0), BaseCost: money(14)},
		{ID: "tartare_fennel", Category: enum.MenuCategorySalads, Name: "Fish, fennel and citrus tartare: fresh fish, young fennel, mint, toasted nuts", Price: money(0), BaseCost: money(18)},
		{ID: "jaffa_alhambra", Category: enum.MenuCategorySalads, Name: "Jaffa meets Alhambra: crushed potato, tzatziki, cured bonito", Price: money(0), BaseCost: money(16)},
		{ID: "salad_freekeh", Category: enum.MenuCategorySalads, Name: "Freekeh salad: smoked wheat, citrus, wild fennel, blood orange and sumac", Price: money(0), BaseCost: money(9)},
		{ID: "carpaccio_beets", Category: enum.MenuCategorySalads, Name: "Colorful beet carpaccio: mustard leaves, boucheron, cashews and honey", Price: money(0), BaseCost: money(11)},
		{ID: "confit_tomatoes", Category: enum.MenuCategorySalads, Name: "Tomato confit with jibneh: garlic, hot pepper and Wadi Attir cheese", Price: money(0), BaseCost: money(13)},
		{ID: "salad_quinoa", Category: enum.MenuCategorySalads, Name: "Red quinoa and sweet potato salad: feta, herbs, red onion and cucumber", Price: money(0), BaseCost: money(10)},

		// --- Mains (included) ---
		{
			ID: "steak_pumpkin", Category: enum.MenuCategoryMains,
			Name: "Pumpkin and leek steak: pumpkin cream, almonds, roasted leek and goat cheese",
			Price: money(0), BaseCost: money(22),
			Ingredients: []Ingredient{
				{Name: "chestnut pumpkin", Unit: "unit", QuantityPerPortion: qty("0.5")},
				{Name: "leek", Unit: "unit", QuantityPerPortion: qty("1")},
				{Name: "goat cheese", Unit: "g", QuantityPerPortion: qty("50")},
				{Name: "toasted almonds", Unit: "g", QuantityPerPortion: qty("20")},
			},
		},
		{ID: "pasta_tomatoes", Category: enum.MenuCategoryMains, Name: "Fermented tomato pasta: snow peas, green garlic and manchego", Price: money(0), BaseCost: money(18)},
		{ID: "fish_supplement", Category: enum.MenuCategoryMains, Name: "Sea fish supplement for the pasta", Price: money(25), BaseCost: money(12)},
		{ID: "leek_pumpkin_wrap", Category: enum.MenuCategoryMains, Name: "Wrapped leek and pumpkin: butter, white wine and sage", Price: money(0), BaseCost: money(20)},
		{ID: "roasted_root_veg", Category: enum.MenuCategoryMains, Name: "Fire-roasted root vegetables: beets, carrots and pumpkin", Price: money(0), BaseCost: money(12)},
		{ID: "pasta_beet_cream", Category: enum.MenuCategoryMains, Name: "Beet cream pasta: butter, white wine and a little garlic", Price: money(0), BaseCost: money(16)},
		{ID: "soup_changing", Category: enum.MenuCategoryMains, Name: "Rotating soups: organic, unspiced (brassica/sweet potato/beet/vegetable)", Price: money(0), BaseCost: money(8)},

		// --- Breads & deli (included) ---
		{ID: "deli_platter", Category: enum.MenuCategoryBreads, Name: "Deli platter: boutique cheeses, spreads, fermented vegetables and olives", Price: money(0), BaseCost: money(25)},
		{ID: "pastries_mix", Category: enum.MenuCategoryBreads, Name: "Savory and sweet pastries: filled croissants (cheese/mushroom/sweet)", Price: money(0), BaseCost: money(10)},
		{ID: "sourdough_breads", Category: enum.MenuCategoryBreads, Name: "Sourdough breads: baguettes, spelt, gluten-free and more", Price: money(0), BaseCost: money(6)},
		{ID: "burekas_tray", Category: enum.MenuCategoryBreads, Name: "House burekas and strip pastries: cheese and mushroom", Price: money(0), BaseCost: money(8)},
		{ID: "brioche_yeast", Category: enum.MenuCategoryBreads, Name: "Brioche challahs and yeast cakes: pecan, pistachio, ricotta, chocolate", Price: money(0), BaseCost: money(10)},

		// --- Desserts (included) ---
		{ID: "classic_sweets", Category: enum.MenuCategoryDesserts, Name: "Classic sweets: rugelach and chocolate chip cookies", Price: money(0), BaseCost: money(6)},
		{ID: "tiramisu", Category: enum.MenuCategoryDesserts, Name: "Tiramisu with Alhambra coffee", Price: money(0), BaseCost: money(12)},
		{ID: "chocolate_mousse", Category: enum.MenuCategoryDesserts, Name: "Chocolate mousse with nougat and olive oil", Price: money(0), BaseCost: money(14)},
		{ID: "basque_cheesecake", Category: enum.MenuCategoryDesserts, Name: "Whole basque cheesecake", Price: money(0), BaseCost: money(15)},

		// --- Drinks (paid supplements) ---
		{ID: "lemonade_jug", Category: enum.MenuCategoryDrinks, Name: "Jug of fresh lemonade with mint", Price: money(12), BaseCost: money(3)},
		{ID: "wine_red_boutique", Category: enum.MenuCategoryDrinks, Name: "Bottle of boutique winery red", Price: money(120), BaseCost: money(60)},
		{ID: "wine_white_boutique", Category: enum.MenuCategoryDrinks, Name: "Bottle of boutique winery white", Price: money(120), BaseCost: money(60)},
		{ID: "beer_keg", Category: enum.MenuCategoryDrinks, Name: "Local beer keg (20 liters)", Price: money(450), BaseCost: money(200)},
		{ID: "soft_drinks_free", Category: enum.MenuCategoryDrinks, Name: "Unlimited soft drinks", Price: money(15), BaseCost: money(5)},
	}
}

func defaultEquipment() []EquipmentItem {
	return []EquipmentItem{
		{ID: TablewareID, Name: "Full tableware set per diner (plates, glasses, cutlery)", Category: enum.EquipmentCategoryServing, Price: money(12)},
		{ID: "chair_plastic", Name: "Plastic chair", Category: enum.EquipmentCategorySeating, Price: money(5)},
		{ID: "chair_wood", Name: "Wooden chair", Category: enum.EquipmentCategorySeating, Price: money(12)},
		{ID: "table_round", Name: "Round table", Category: enum.EquipmentCategorySeating, Price: money(40)},
		{ID: TabunID, Name: "Mobile tabun oven", Category: enum.EquipmentCategoryKitchen, Price: money(450)},
		{ID: "cooling_unit", Name: "Cooling unit", Category: enum.EquipmentCategoryKitchen, Price: money(300)},
		{ID: "butcher_block", Name: "Serving butcher block", Category: enum.EquipmentCategoryServing, Price: money(25)},
		{ID: "cutlery_set", Name: "Full cutlery set (extra)", Category: enum.EquipmentCategoryServing, Price: money(8)},
		{ID: "wine_glass", Name: "Wine glass (extra)", Category: enum.EquipmentCategoryServing, Price: money(3)},
		{ID: "beer_tap", Name: "Mobile beer tap", Category: enum.EquipmentCategoryServing, Price: money(250)},
	}
}

func defaultKits() Kits {
	return Kits{
		Kitchen: []string{
			"toolbox",
			"large pasta pot",
			"large frying pan",
			"kettle",
			"gas burners + refill",
			"folding table",
			"knife set",
			"cutting board",
		},
		Serving: []string{
			"serving trays",
			"serving spoons",
			"tongs",
			"juice jugs",
			"aprons",
			"tablecloths",
			"disposables (cups/wine/cutlery/napkins)",
			"business cards and catalogs",
		},
		Consumables: []string{
			"olive oil",
			"silan",
			"tahini",
			"spice kit",
			"lemon",
			"garlic",
			"chopped mint",
			"house ferments",
			"machine coffee",
			"coffee cookies",
		},
	}
}
