package provider

import "github.com/caltrack/caltrack/internal/core/domain"

type localFood struct {
	name    string
	per100g domain.Nutrients
}

// localFoods is the built-in table of common foods, all values per 100g
// (sodium in mg). Read-only after init; concurrent searches share it without
// locking.
var localFoods = []localFood{
	// proteins
	{"Chicken Breast", domain.Nutrients{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74}},
	{"Chicken Thigh", domain.Nutrients{Calories: 209, Protein: 26, Carbs: 0, Fat: 10.9, Fiber: 0, Sugar: 0, Sodium: 95}},
	{"Ground Beef", domain.Nutrients{Calories: 250, Protein: 26, Carbs: 0, Fat: 15, Fiber: 0, Sugar: 0, Sodium: 75}},
	{"Beef Steak", domain.Nutrients{Calories: 271, Protein: 25, Carbs: 0, Fat: 19, Fiber: 0, Sugar: 0, Sodium: 54}},
	{"Salmon", domain.Nutrients{Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0, Sugar: 0, Sodium: 59}},
	{"Tuna", domain.Nutrients{Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3, Fiber: 0, Sugar: 0, Sodium: 47}},
	{"Shrimp", domain.Nutrients{Calories: 99, Protein: 24, Carbs: 0.2, Fat: 0.3, Fiber: 0, Sugar: 0, Sodium: 111}},
	{"Egg", domain.Nutrients{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1, Sodium: 124}},
	{"Tofu", domain.Nutrients{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sugar: 0.6, Sodium: 7}},
	{"Turkey Breast", domain.Nutrients{Calories: 135, Protein: 30, Carbs: 0, Fat: 1, Fiber: 0, Sugar: 0, Sodium: 99}},
	{"Pork Chop", domain.Nutrients{Calories: 231, Protein: 25, Carbs: 0, Fat: 14, Fiber: 0, Sugar: 0, Sodium: 62}},
	// fruits
	{"Apple", domain.Nutrients{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Sodium: 1}},
	{"Banana", domain.Nutrients{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12, Sodium: 1}},
	{"Orange", domain.Nutrients{Calories: 47, Protein: 0.9, Carbs: 12, Fat: 0.1, Fiber: 2.4, Sugar: 9, Sodium: 0}},
	{"Strawberries", domain.Nutrients{Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3, Fiber: 2, Sugar: 4.9, Sodium: 1}},
	{"Blueberries", domain.Nutrients{Calories: 57, Protein: 0.7, Carbs: 14, Fat: 0.3, Fiber: 2.4, Sugar: 10, Sodium: 1}},
	{"Grapes", domain.Nutrients{Calories: 69, Protein: 0.7, Carbs: 18, Fat: 0.2, Fiber: 0.9, Sugar: 16, Sodium: 2}},
	{"Mango", domain.Nutrients{Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, Fiber: 1.6, Sugar: 14, Sodium: 1}},
	{"Pineapple", domain.Nutrients{Calories: 50, Protein: 0.5, Carbs: 13, Fat: 0.1, Fiber: 1.4, Sugar: 10, Sodium: 1}},
	{"Avocado", domain.Nutrients{Calories: 160, Protein: 2, Carbs: 8.5, Fat: 15, Fiber: 6.7, Sugar: 0.7, Sodium: 7}},
	{"Watermelon", domain.Nutrients{Calories: 30, Protein: 0.6, Carbs: 7.6, Fat: 0.2, Fiber: 0.4, Sugar: 6.2, Sodium: 1}},
	// vegetables
	{"Broccoli", domain.Nutrients{Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6, Sugar: 1.7, Sodium: 33}},
	{"Spinach", domain.Nutrients{Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4, Sodium: 79}},
	{"Carrot", domain.Nutrients{Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sugar: 4.7, Sodium: 69}},
	{"Tomato", domain.Nutrients{Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, Sugar: 2.6, Sodium: 5}},
	{"Potato", domain.Nutrients{Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 2.2, Sugar: 0.8, Sodium: 6}},
	{"Sweet Potato", domain.Nutrients{Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Fiber: 3, Sugar: 4.2, Sodium: 55}},
	{"Cucumber", domain.Nutrients{Calories: 15, Protein: 0.7, Carbs: 3.6, Fat: 0.1, Fiber: 0.5, Sugar: 1.7, Sodium: 2}},
	{"Lettuce", domain.Nutrients{Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, Fiber: 1.3, Sugar: 0.8, Sodium: 28}},
	{"Onion", domain.Nutrients{Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7, Sugar: 4.2, Sodium: 4}},
	{"Bell Pepper", domain.Nutrients{Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3, Fiber: 2.1, Sugar: 4.2, Sodium: 4}},
	// grains
	{"White Rice", domain.Nutrients{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0.1, Sodium: 1}},
	{"Brown Rice", domain.Nutrients{Calories: 112, Protein: 2.6, Carbs: 24, Fat: 0.9, Fiber: 1.8, Sugar: 0.4, Sodium: 5}},
	{"Oatmeal", domain.Nutrients{Calories: 68, Protein: 2.4, Carbs: 12, Fat: 1.4, Fiber: 1.7, Sugar: 0.3, Sodium: 49}},
	{"Pasta", domain.Nutrients{Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, Fiber: 1.8, Sugar: 0.6, Sodium: 1}},
	{"White Bread", domain.Nutrients{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7, Sugar: 5, Sodium: 491}},
	{"Whole Wheat Bread", domain.Nutrients{Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Fiber: 7, Sugar: 6, Sodium: 450}},
	{"Quinoa", domain.Nutrients{Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9, Fiber: 2.8, Sugar: 0.9, Sodium: 7}},
	{"Flour Tortilla", domain.Nutrients{Calories: 306, Protein: 8.2, Carbs: 49, Fat: 7.7, Fiber: 3.5, Sugar: 1.9, Sodium: 640}},
	// dairy
	{"Whole Milk", domain.Nutrients{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Fiber: 0, Sugar: 5.1, Sodium: 43}},
	{"Cheddar Cheese", domain.Nutrients{Calories: 403, Protein: 25, Carbs: 1.3, Fat: 33, Fiber: 0, Sugar: 0.5, Sodium: 621}},
	{"Greek Yogurt", domain.Nutrients{Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2, Sodium: 36}},
	{"Butter", domain.Nutrients{Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81, Fiber: 0, Sugar: 0.1, Sodium: 643}},
	{"Mozzarella", domain.Nutrients{Calories: 280, Protein: 28, Carbs: 3.1, Fat: 17, Fiber: 0, Sugar: 1.2, Sodium: 627}},
	// nuts
	{"Almonds", domain.Nutrients{Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 13, Sugar: 4.4, Sodium: 1}},
	{"Peanuts", domain.Nutrients{Calories: 567, Protein: 26, Carbs: 16, Fat: 49, Fiber: 8.5, Sugar: 4.7, Sodium: 18}},
	{"Walnuts", domain.Nutrients{Calories: 654, Protein: 15, Carbs: 14, Fat: 65, Fiber: 6.7, Sugar: 2.6, Sodium: 2}},
	{"Peanut Butter", domain.Nutrients{Calories: 598, Protein: 22, Carbs: 22, Fat: 51, Fiber: 5, Sugar: 10.5, Sodium: 426}},
	{"Cashews", domain.Nutrients{Calories: 553, Protein: 18, Carbs: 30, Fat: 44, Fiber: 3.3, Sugar: 5.9, Sodium: 12}},
	// fast food
	{"French Fries", domain.Nutrients{Calories: 312, Protein: 3.4, Carbs: 41, Fat: 15, Fiber: 3.8, Sugar: 0.3, Sodium: 210}},
	{"Hamburger", domain.Nutrients{Calories: 254, Protein: 13, Carbs: 30, Fat: 9.8, Fiber: 1.1, Sugar: 5.3, Sodium: 378}},
	{"Cheese Pizza", domain.Nutrients{Calories: 266, Protein: 11, Carbs: 33, Fat: 10, Fiber: 2.3, Sugar: 3.6, Sodium: 598}},
	{"Hot Dog", domain.Nutrients{Calories: 290, Protein: 10, Carbs: 4.2, Fat: 26, Fiber: 0, Sugar: 1.2, Sodium: 1090}},
	{"Fried Chicken", domain.Nutrients{Calories: 260, Protein: 19, Carbs: 13, Fat: 15, Fiber: 0.6, Sugar: 0, Sodium: 540}},
}
