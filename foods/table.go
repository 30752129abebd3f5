package foods

import (
	"fmt"
	"sort"
	"strings"

	"lg/macro-calc-api/nutrition"
)

// table is the built-in food list, per 100g, sorted by name at init.
var table = []FoodItem{
	local("almonds_raw", "Almonds, raw", DryFruit,
		nutrition.Nutrient{Kcal: 579, ProteinG: 21.2, CarbsG: 21.6, FatG: 49.9, FiberG: fiber(12.5)},
		[]Serving{{"g", 100}, {"oz", 28.35}, {"cup", 143}}),
	local("apple_raw", "Apple, raw", Fruit,
		nutrition.Nutrient{Kcal: 52, ProteinG: 0.3, CarbsG: 14, FatG: 0.2, FiberG: fiber(2.4)},
		[]Serving{{"g", 100}, {"piece", 182}, {"cup", 125}}),
	local("avocado_raw", "Avocado, raw", Fruit,
		nutrition.Nutrient{Kcal: 160, ProteinG: 2, CarbsG: 9, FatG: 15, FiberG: fiber(7)},
		[]Serving{{"g", 100}, {"piece", 200}}),
	local("banana_raw", "Banana, raw", Fruit,
		nutrition.Nutrient{Kcal: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3, FiberG: fiber(2.6)},
		[]Serving{{"g", 100}, {"piece", 118}}),
	local("beef_steak_cooked", "Beef, sirloin steak, cooked", Meat,
		nutrition.Nutrient{Kcal: 206, ProteinG: 30, CarbsG: 0, FatG: 9},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("blueberry_raw", "Blueberry, raw", Fruit,
		nutrition.Nutrient{Kcal: 57, ProteinG: 0.7, CarbsG: 14, FatG: 0.3, FiberG: fiber(2.4)},
		[]Serving{{"g", 100}, {"cup", 148}}),
	local("whole_wheat_bread", "Bread, whole wheat", Grain,
		nutrition.Nutrient{Kcal: 265, ProteinG: 13, CarbsG: 48, FatG: 3.4, FiberG: fiber(7)},
		[]Serving{{"g", 100}, {"slice", 32}}),
	local("broccoli_raw", "Broccoli, raw", Vegetable,
		nutrition.Nutrient{Kcal: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4, FiberG: fiber(2.6)},
		[]Serving{{"g", 100}, {"cup", 91}}),
	local("brown_rice_cooked", "Brown Rice, cooked", Grain,
		nutrition.Nutrient{Kcal: 111, ProteinG: 2.6, CarbsG: 23, FatG: 0.9, FiberG: fiber(1.8)},
		[]Serving{{"g", 100}, {"cup", 195}}),
	local("carrot_raw", "Carrot, raw", Vegetable,
		nutrition.Nutrient{Kcal: 41, ProteinG: 0.9, CarbsG: 10, FatG: 0.2, FiberG: fiber(2.8)},
		[]Serving{{"g", 100}, {"piece", 61}}),
	local("cashews_raw", "Cashews, raw", DryFruit,
		nutrition.Nutrient{Kcal: 553, ProteinG: 18.2, CarbsG: 30.2, FatG: 43.9, FiberG: fiber(3.3)},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("cheddar_cheese", "Cheese, cheddar", Dairy,
		nutrition.Nutrient{Kcal: 404, ProteinG: 25, CarbsG: 1.3, FatG: 33},
		[]Serving{{"g", 100}, {"oz", 28.35}, {"slice", 28}}),
	local("chicken_breast_cooked", "Chicken breast, cooked (skinless)", Meat,
		nutrition.Nutrient{Kcal: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
		[]Serving{{"g", 100}, {"oz", 28.35}, {"piece", 172}}),
	local("cucumber_raw", "Cucumber, raw (with peel)", Vegetable,
		nutrition.Nutrient{Kcal: 15, ProteinG: 0.7, CarbsG: 3.6, FatG: 0.1, FiberG: fiber(0.5)},
		[]Serving{{"g", 100}, {"piece", 200}}),
	local("dark_chocolate_70", "Dark Chocolate, 70-85% cacao", Other,
		nutrition.Nutrient{Kcal: 598, ProteinG: 7.8, CarbsG: 46, FatG: 43, FiberG: fiber(11)},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("egg_boiled", "Egg, whole, hard-boiled", Dairy,
		nutrition.Nutrient{Kcal: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11},
		[]Serving{{"g", 100}, {"piece", 50}}),
	local("ground_beef_cooked_90_10", "Ground Beef, 90% lean, cooked", Meat,
		nutrition.Nutrient{Kcal: 217, ProteinG: 26, CarbsG: 0, FatG: 12},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("milk_whole", "Milk, whole, 3.25% fat", Dairy,
		nutrition.Nutrient{Kcal: 61, ProteinG: 3.2, CarbsG: 4.8, FatG: 3.3},
		[]Serving{{"g", 100}, {"cup", 244}}),
	local("oats_raw", "Oats, rolled, raw", Grain,
		nutrition.Nutrient{Kcal: 389, ProteinG: 16.9, CarbsG: 66, FatG: 6.9, FiberG: fiber(10.6)},
		[]Serving{{"g", 100}, {"cup", 81}}),
	local("olive_oil", "Olive Oil", Other,
		nutrition.Nutrient{Kcal: 884, ProteinG: 0, CarbsG: 0, FatG: 100},
		[]Serving{{"g", 100}, {"tbsp", 14}}),
	local("orange_raw", "Orange, raw", Fruit,
		nutrition.Nutrient{Kcal: 47, ProteinG: 0.9, CarbsG: 12, FatG: 0.1, FiberG: fiber(2.4)},
		[]Serving{{"g", 100}, {"piece", 131}}),
	local("peanut_butter", "Peanut Butter, smooth", Other,
		nutrition.Nutrient{Kcal: 588, ProteinG: 25, CarbsG: 20, FatG: 50, FiberG: fiber(6)},
		[]Serving{{"g", 100}, {"tbsp", 16}}),
	local("peanuts_raw", "Peanuts, raw", DryFruit,
		nutrition.Nutrient{Kcal: 567, ProteinG: 25.8, CarbsG: 16.1, FatG: 49.2, FiberG: fiber(8.5)},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("pork_chop_cooked", "Pork chop, cooked", Meat,
		nutrition.Nutrient{Kcal: 221, ProteinG: 29, CarbsG: 0, FatG: 11},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("quinoa_cooked", "Quinoa, cooked", Grain,
		nutrition.Nutrient{Kcal: 120, ProteinG: 4.4, CarbsG: 21, FatG: 1.9, FiberG: fiber(2.8)},
		[]Serving{{"g", 100}, {"cup", 185}}),
	local("salmon_cooked", "Salmon, Atlantic, wild, cooked", Meat,
		nutrition.Nutrient{Kcal: 182, ProteinG: 25, CarbsG: 0, FatG: 8},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("spinach_raw", "Spinach, raw", Vegetable,
		nutrition.Nutrient{Kcal: 23, ProteinG: 2.9, CarbsG: 3.6, FatG: 0.4, FiberG: fiber(2.2)},
		[]Serving{{"g", 100}, {"cup", 30}}),
	local("strawberry_raw", "Strawberry, raw", Fruit,
		nutrition.Nutrient{Kcal: 32, ProteinG: 0.7, CarbsG: 8, FatG: 0.3, FiberG: fiber(2)},
		[]Serving{{"g", 100}, {"cup", 152}}),
	local("sweet_potato_cooked", "Sweet Potato, cooked, baked in skin", Vegetable,
		nutrition.Nutrient{Kcal: 90, ProteinG: 2, CarbsG: 21, FatG: 0.1, FiberG: fiber(3.3)},
		[]Serving{{"g", 100}, {"piece", 180}}),
	local("tomato_raw", "Tomato, raw", Vegetable,
		nutrition.Nutrient{Kcal: 18, ProteinG: 0.9, CarbsG: 3.9, FatG: 0.2, FiberG: fiber(1.2)},
		[]Serving{{"g", 100}, {"piece", 123}}),
	local("walnuts_raw", "Walnuts, raw", DryFruit,
		nutrition.Nutrient{Kcal: 654, ProteinG: 15.2, CarbsG: 13.7, FatG: 65.2, FiberG: fiber(6.7)},
		[]Serving{{"g", 100}, {"oz", 28.35}}),
	local("white_rice_cooked", "White Rice, cooked", Grain,
		nutrition.Nutrient{Kcal: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3},
		[]Serving{{"g", 100}, {"cup", 158}}),
	local("greek_yogurt_plain", "Yogurt, Greek, plain, non-fat", Dairy,
		nutrition.Nutrient{Kcal: 59, ProteinG: 10, CarbsG: 3.6, FatG: 0.4},
		[]Serving{{"g", 100}, {"cup", 227}}),
}

func init() {
	sort.SliceStable(table, func(i, j int) bool {
		return strings.ToLower(table[i].Name) < strings.ToLower(table[j].Name)
	})
}

func local(id, name string, cat Category, per100g nutrition.Nutrient, servings []Serving) FoodItem {
	return FoodItem{ID: id, Name: name, Category: cat, Per100g: per100g, Servings: servings, Source: SourceLocal}
}

func fiber(g float64) *float64 { return &g }

// clone copies f deeply enough that callers can't modify the table through
// its Servings slice or FiberG pointer.
func (f FoodItem) clone() FoodItem {
	f.Servings = append([]Serving(nil), f.Servings...)
	if f.Per100g.FiberG != nil {
		f.Per100g.FiberG = fiber(*f.Per100g.FiberG)
	}
	return f
}

// Table returns a copy of the built-in food list.
func Table() []FoodItem {
	out := make([]FoodItem, len(table))
	for i, f := range table {
		out[i] = f.clone()
	}
	return out
}

// Lookup finds a built-in food by id.
func Lookup(id string) (FoodItem, error) {
	for _, f := range table {
		if f.ID == id {
			return f.clone(), nil
		}
	}
	return FoodItem{}, fmt.Errorf("%q: %w", id, ErrNotFound)
}
