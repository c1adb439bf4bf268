package catalog

import "github.com/panacureo/panacureo-backend/internal/domain"

// recipes is the built-in recipe catalog.
var recipes = []domain.Recipe{
	{
		ID:                 "mediterranean-salad",
		Title:              "Mediterranean Quinoa Salad",
		Description:        "A refreshing Mediterranean-inspired salad with protein-rich quinoa, fresh vegetables, and feta cheese.",
		Image:              "/images/recipes/mediterranean-salad.jpg",
		PrepTime:           15,
		CookTime:           15,
		Servings:           4,
		Difficulty:         domain.DifficultyEasy,
		MealType:           domain.MealTypeLunch,
		DietaryPreferences: []string{"Vegetarian", "Gluten-Free"},
		Tags:               []string{"Healthy", "High-Protein", "Mediterranean"},
		Ingredients: []domain.Ingredient{
			{Name: "Quinoa", Amount: "1 cup", Notes: "rinsed and drained"},
			{Name: "Water", Amount: "2 cups"},
			{Name: "Cherry tomatoes", Amount: "1 cup", Notes: "halved"},
			{Name: "Cucumber", Amount: "1 medium", Notes: "diced"},
			{Name: "Red bell pepper", Amount: "1", Notes: "diced"},
			{Name: "Red onion", Amount: "1/4 cup", Notes: "finely chopped"},
			{Name: "Kalamata olives", Amount: "1/3 cup", Notes: "pitted and halved"},
			{Name: "Feta cheese", Amount: "1/2 cup", Notes: "crumbled"},
			{Name: "Fresh parsley", Amount: "1/4 cup", Notes: "chopped"},
			{Name: "Extra virgin olive oil", Amount: "1/4 cup"},
			{Name: "Lemon juice", Amount: "2 tablespoons", Notes: "freshly squeezed"},
			{Name: "Garlic", Amount: "1 clove", Notes: "minced"},
			{Name: "Dried oregano", Amount: "1 teaspoon"},
			{Name: "Salt", Amount: "1/2 teaspoon"},
			{Name: "Black pepper", Amount: "1/4 teaspoon", Notes: "freshly ground"},
		},
		Instructions: []string{
			"In a medium saucepan, combine quinoa and water. Bring to a boil, then reduce heat to low, cover, and simmer for 15 minutes until water is absorbed.",
			"Remove from heat and let stand for 5 minutes, then fluff with a fork and let cool to room temperature.",
			"In a large bowl, combine the cooled quinoa, cherry tomatoes, cucumber, bell pepper, red onion, olives, feta cheese, and parsley.",
			"In a small bowl, whisk together olive oil, lemon juice, garlic, oregano, salt, and pepper.",
			"Pour the dressing over the salad and toss to combine.",
			"Serve immediately or refrigerate for up to 3 days.",
		},
		Nutrition: domain.Nutrition{Calories: 320, Protein: 9, Carbs: 32, Fat: 18, Fiber: 5, Sugar: 3},
	},
	{
		ID:                 "chicken-stir-fry",
		Title:              "Quick Chicken Stir-Fry",
		Description:        "A colorful and flavorful chicken stir-fry that comes together in minutes for a healthy weeknight dinner.",
		Image:              "/images/recipes/chicken-stir-fry.jpg",
		PrepTime:           15,
		CookTime:           10,
		Servings:           4,
		Difficulty:         domain.DifficultyMedium,
		MealType:           domain.MealTypeDinner,
		DietaryPreferences: []string{"Dairy-Free"},
		Tags:               []string{"Quick", "High-Protein", "Asian-Inspired"},
		Ingredients: []domain.Ingredient{
			{Name: "Boneless, skinless chicken breasts", Amount: "1 pound", Notes: "cut into bite-sized pieces"},
			{Name: "Broccoli florets", Amount: "2 cups"},
			{Name: "Red bell pepper", Amount: "1", Notes: "sliced"},
			{Name: "Carrots", Amount: "2 medium", Notes: "thinly sliced"},
			{Name: "Snow peas", Amount: "1 cup"},
			{Name: "Garlic", Amount: "3 cloves", Notes: "minced"},
			{Name: "Fresh ginger", Amount: "1 tablespoon", Notes: "grated"},
			{Name: "Vegetable oil", Amount: "2 tablespoons"},
			{Name: "Low-sodium soy sauce", Amount: "3 tablespoons"},
			{Name: "Honey", Amount: "1 tablespoon"},
			{Name: "Cornstarch", Amount: "1 teaspoon"},
			{Name: "Sesame oil", Amount: "1 teaspoon"},
			{Name: "Red pepper flakes", Amount: "1/4 teaspoon", Notes: "optional"},
			{Name: "Green onions", Amount: "2", Notes: "sliced, for garnish"},
			{Name: "Sesame seeds", Amount: "1 tablespoon", Notes: "for garnish"},
		},
		Instructions: []string{
			"In a small bowl, whisk together soy sauce, honey, cornstarch, sesame oil, and red pepper flakes (if using). Set aside.",
			"Heat 1 tablespoon of vegetable oil in a large wok or skillet over high heat. Add chicken and cook for 4-5 minutes until browned and cooked through. Remove from pan and set aside.",
			"Add the remaining 1 tablespoon of oil to the pan. Add garlic and ginger, stir for 30 seconds until fragrant.",
			"Add broccoli, bell pepper, and carrots to the pan. Stir-fry for 3-4 minutes.",
			"Add snow peas and cook for an additional 1-2 minutes until vegetables are crisp-tender.",
			"Return chicken to the pan. Pour in the sauce and toss everything together for 1-2 minutes until the sauce thickens and coats everything.",
			"Garnish with green onions and sesame seeds before serving.",
			"Serve hot with rice or noodles if desired.",
		},
		Nutrition: domain.Nutrition{Calories: 290, Protein: 35, Carbs: 15, Fat: 11, Fiber: 4, Sugar: 7},
	},
	{
		ID:                 "blueberry-pancakes",
		Title:              "Fluffy Blueberry Pancakes",
		Description:        "Light and fluffy pancakes studded with juicy blueberries, perfect for a weekend breakfast.",
		Image:              "/images/recipes/blueberry-pancakes.jpg",
		PrepTime:           10,
		CookTime:           15,
		Servings:           4,
		Difficulty:         domain.DifficultyEasy,
		MealType:           domain.MealTypeBreakfast,
		DietaryPreferences: []string{"Vegetarian"},
		Tags:               []string{"Sweet", "Weekend", "Family-Friendly"},
		Ingredients: []domain.Ingredient{
			{Name: "All-purpose flour", Amount: "1 1/2 cups"},
			{Name: "Baking powder", Amount: "1 tablespoon"},
			{Name: "Salt", Amount: "1/4 teaspoon"},
			{Name: "Sugar", Amount: "2 tablespoons"},
			{Name: "Eggs", Amount: "2", Notes: "beaten"},
			{Name: "Milk", Amount: "1 1/4 cups"},
			{Name: "Unsalted butter", Amount: "3 tablespoons", Notes: "melted, plus more for griddle"},
			{Name: "Vanilla extract", Amount: "1 teaspoon"},
			{Name: "Fresh blueberries", Amount: "1 cup"},
			{Name: "Maple syrup", Amount: "For serving"},
		},
		Instructions: []string{
			"In a large bowl, whisk together flour, baking powder, salt, and sugar.",
			"In a separate bowl, whisk together eggs, milk, melted butter, and vanilla.",
			"Pour the wet ingredients into the dry ingredients and stir until just combined. The batter should be slightly lumpy.",
			"Gently fold in the blueberries.",
			"Heat a griddle or large skillet over medium heat. Add a small amount of butter to coat.",
			"For each pancake, pour about 1/4 cup of batter onto the griddle. Cook until bubbles form on the surface and the edges look set, about 2-3 minutes.",
			"Flip the pancakes and cook for another 1-2 minutes until golden brown on the bottom.",
			"Serve warm with maple syrup and additional blueberries if desired.",
		},
		Nutrition: domain.Nutrition{Calories: 280, Protein: 8, Carbs: 42, Fat: 9, Fiber: 2, Sugar: 13},
	},
	{
		ID:                 "vegetable-curry",
		Title:              "Vegan Vegetable Curry",
		Description:        "A hearty and flavorful vegetable curry packed with nutrients and warming spices.",
		Image:              "/images/recipes/vegetable-curry.jpg",
		PrepTime:           20,
		CookTime:           30,
		Servings:           6,
		Difficulty:         domain.DifficultyMedium,
		MealType:           domain.MealTypeDinner,
		DietaryPreferences: []string{"Vegan", "Gluten-Free", "Dairy-Free"},
		Tags:               []string{"Hearty", "Spicy", "Indian-Inspired"},
		Ingredients: []domain.Ingredient{
			{Name: "Coconut oil", Amount: "2 tablespoons"},
			{Name: "Onion", Amount: "1 large", Notes: "diced"},
			{Name: "Garlic", Amount: "4 cloves", Notes: "minced"},
			{Name: "Fresh ginger", Amount: "1 tablespoon", Notes: "grated"},
			{Name: "Curry powder", Amount: "2 tablespoons"},
			{Name: "Ground cumin", Amount: "1 teaspoon"},
			{Name: "Ground turmeric", Amount: "1 teaspoon"},
			{Name: "Garam masala", Amount: "1 teaspoon"},
			{Name: "Red chili flakes", Amount: "1/4 teaspoon", Notes: "optional, to taste"},
			{Name: "Sweet potatoes", Amount: "2 medium", Notes: "peeled and cubed"},
			{Name: "Cauliflower", Amount: "1 head", Notes: "broken into florets"},
			{Name: "Red bell pepper", Amount: "1", Notes: "diced"},
			{Name: "Chickpeas", Amount: "1 15oz can", Notes: "drained and rinsed"},
			{Name: "Diced tomatoes", Amount: "1 14oz can"},
			{Name: "Coconut milk", Amount: "1 14oz can", Notes: "full-fat"},
			{Name: "Vegetable broth", Amount: "1 cup"},
			{Name: "Salt", Amount: "to taste"},
			{Name: "Black pepper", Amount: "to taste"},
			{Name: "Fresh cilantro", Amount: "1/4 cup", Notes: "chopped, for garnish"},
			{Name: "Lime wedges", Amount: "for serving"},
		},
		Instructions: []string{
			"Heat coconut oil in a large pot over medium heat. Add onion and saute for 3-4 minutes until softened.",
			"Add garlic and ginger, cook for another minute until fragrant.",
			"Stir in curry powder, cumin, turmeric, garam masala, and red chili flakes (if using). Cook for 30 seconds to toast the spices.",
			"Add sweet potatoes, cauliflower, and bell pepper. Stir to coat with the spices.",
			"Add chickpeas, diced tomatoes with their juice, coconut milk, and vegetable broth. Stir to combine.",
			"Bring to a simmer, then reduce heat to low. Cover and cook for 20-25 minutes, stirring occasionally, until the vegetables are tender.",
			"Season with salt and pepper to taste.",
			"Serve hot over rice, garnished with fresh cilantro and lime wedges on the side.",
		},
		Nutrition: domain.Nutrition{Calories: 310, Protein: 8, Carbs: 33, Fat: 18, Fiber: 9, Sugar: 8},
	},
	{
		ID:                 "chocolate-avocado-mousse",
		Title:              "Chocolate Avocado Mousse",
		Description:        "A rich and creamy chocolate mousse made with avocados for a healthier dessert option.",
		Image:              "/images/recipes/chocolate-avocado-mousse.jpg",
		PrepTime:           15,
		CookTime:           0,
		Servings:           4,
		Difficulty:         domain.DifficultyEasy,
		MealType:           domain.MealTypeDessert,
		DietaryPreferences: []string{"Vegan", "Gluten-Free", "Dairy-Free"},
		Tags:               []string{"Healthy Dessert", "No-Bake", "Quick"},
		Ingredients: []domain.Ingredient{
			{Name: "Ripe avocados", Amount: "2 large"},
			{Name: "Unsweetened cocoa powder", Amount: "1/2 cup"},
			{Name: "Maple syrup", Amount: "1/3 cup", Notes: "or to taste"},
			{Name: "Almond milk", Amount: "1/4 cup", Notes: "unsweetened"},
			{Name: "Vanilla extract", Amount: "1 teaspoon"},
			{Name: "Salt", Amount: "1/8 teaspoon"},
			{Name: "Dark chocolate chips", Amount: "2 tablespoons", Notes: "melted, plus more for garnish"},
			{Name: "Fresh berries", Amount: "For garnish", Notes: "optional"},
			{Name: "Mint leaves", Amount: "For garnish", Notes: "optional"},
		},
		Instructions: []string{
			"Cut avocados in half, remove the pits, and scoop the flesh into a food processor or blender.",
			"Add cocoa powder, maple syrup, almond milk, vanilla extract, salt, and melted chocolate to the food processor.",
			"Blend until smooth and creamy, stopping to scrape down the sides as needed.",
			"Taste and adjust sweetness if necessary by adding more maple syrup.",
			"Spoon the mousse into four serving glasses or bowls.",
			"Refrigerate for at least 30 minutes to set and chill.",
			"Before serving, garnish with additional dark chocolate shavings, fresh berries, and mint leaves if desired.",
		},
		Nutrition: domain.Nutrition{Calories: 240, Protein: 4, Carbs: 27, Fat: 15, Fiber: 9, Sugar: 14},
	},
	{
		ID:                 "honey-garlic-salmon",
		Title:              "Honey Garlic Glazed Salmon",
		Description:        "Perfectly seared salmon fillets brushed with a sweet and savory honey garlic glaze, ready in under 30 minutes.",
		Image:              "/images/recipes/honey-garlic-salmon.jpg",
		PrepTime:           10,
		CookTime:           15,
		Servings:           4,
		Difficulty:         domain.DifficultyMedium,
		MealType:           domain.MealTypeDinner,
		DietaryPreferences: []string{"Gluten-Free", "Dairy-Free"},
		Tags:               []string{"High-Protein", "Omega-3", "Quick", "Seafood"},
		Ingredients: []domain.Ingredient{
			{Name: "Salmon fillets", Amount: "4 (6 oz each)", Notes: "skin-on"},
			{Name: "Salt", Amount: "1/2 teaspoon"},
			{Name: "Black pepper", Amount: "1/4 teaspoon", Notes: "freshly ground"},
			{Name: "Olive oil", Amount: "1 tablespoon"},
			{Name: "Garlic", Amount: "4 cloves", Notes: "minced"},
			{Name: "Honey", Amount: "1/4 cup"},
			{Name: "Soy sauce", Amount: "2 tablespoons", Notes: "use tamari for gluten-free"},
			{Name: "Lemon juice", Amount: "1 tablespoon", Notes: "freshly squeezed"},
			{Name: "Red pepper flakes", Amount: "1/4 teaspoon", Notes: "optional"},
			{Name: "Fresh parsley", Amount: "2 tablespoons", Notes: "chopped, for garnish"},
			{Name: "Lemon wedges", Amount: "For serving"},
		},
		Instructions: []string{
			"Pat the salmon fillets dry with paper towels and season both sides with salt and pepper.",
			"In a small bowl, whisk together garlic, honey, soy sauce, lemon juice, and red pepper flakes (if using).",
			"Heat olive oil in a large non-stick skillet over medium-high heat.",
			"Place salmon in the skillet, skin-side down, and cook for 4-5 minutes until the skin is crispy.",
			"Flip the salmon and cook for another 2 minutes.",
			"Pour the honey garlic sauce over the salmon, reduce heat to medium-low, and cook for another 1-2 minutes, occasionally spooning the sauce over the salmon.",
			"Remove from heat when salmon is cooked through and the sauce has thickened slightly.",
			"Garnish with chopped parsley and serve immediately with lemon wedges and your favorite side dishes.",
		},
		Nutrition: domain.Nutrition{Calories: 385, Protein: 34, Carbs: 14, Fat: 22, Fiber: 0, Sugar: 12},
	},
}
