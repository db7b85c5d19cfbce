package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/blendbase/backend/config"
	"github.com/blendbase/backend/internal/database"
	"github.com/blendbase/backend/internal/models"
	"github.com/blendbase/backend/internal/service"
	"github.com/blendbase/backend/internal/types"
)

var seedRecipes = []types.CreateRecipeRequest{
	{
		Title:       "Berry Blast",
		Description: "A sweet mix of strawberries, blueberries and banana.",
		Directions:  "Blend all ingredients until smooth. Serve chilled.",
		PrepTime:    5,
		Servings:    2,
		Ingredients: models.IngredientList{
			{Amount: "1 cup", Name: "strawberries"},
			{Amount: "1/2 cup", Name: "blueberries"},
			{Amount: "1", Name: "banana"},
			{Amount: "1 cup", Name: "almond milk"},
		},
	},
	{
		Title:       "Green Detox",
		Description: "Kale, spinach and green apple with a hint of ginger.",
		Directions:  "Blend the greens with apple juice first, then add ice and blend again.",
		PrepTime:    10,
		Servings:    1,
		Ingredients: models.IngredientList{
			{Amount: "1 cup", Name: "kale"},
			{Amount: "1 cup", Name: "spinach"},
			{Amount: "1", Name: "green apple"},
			{Amount: "1 tsp", Name: "grated ginger"},
		},
	},
	{
		Title:       "Mango Magic",
		Description: "Tropical mango and pineapple with coconut water.",
		Directions:  "Blend mango and pineapple with coconut water and ice.",
		PrepTime:    5,
		Servings:    2,
		Ingredients: models.IngredientList{
			{Amount: "1 cup", Name: "mango chunks"},
			{Amount: "1/2 cup", Name: "pineapple"},
			{Amount: "1 cup", Name: "coconut water"},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)

	const seedEmail = "seed@blendbase.dev"
	if _, err := authService.Register(seedEmail, "seed-password-123", "blendbase"); err != nil {
		log.Printf("Seed user already present: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", seedEmail).First(&user).Error; err != nil {
		log.Fatalf("Failed to load seed user: %v", err)
	}

	ctx := context.Background()
	for i := range seedRecipes {
		recipe, err := recipeService.CreateRecipe(ctx, user.ID, "blendbase", &seedRecipes[i])
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", seedRecipes[i].Title, err)
		}
		log.Printf("Seeded recipe %s (%s)", recipe.Title, recipe.ID)
	}
}
