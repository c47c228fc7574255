package routes

import (
	"cooktok/internal/api/handlers"
	"cooktok/internal/middleware"
	"cooktok/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	CuisineHandler     handlers.CuisineHandler
	RecipeHandler      handlers.RecipeHandler
	SavedRecipeHandler handlers.SavedRecipeHandler
	MealPlanHandler    handlers.MealPlanHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Cuisines()
	c.Recipes()
	c.SavedRecipes()
	c.MealPlans()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Cuisines() {
	cuisines := c.App.Group("/api/v1/cuisines", c.Middleware.AuthMiddleware(c.JWTService))
	cuisines.Get("", c.CuisineHandler.GetCuisines)
	cuisines.Post("", c.CuisineHandler.AddCuisine)
	cuisines.Put("/:id", c.CuisineHandler.UpdateCuisine)
	cuisines.Delete("/:id", c.CuisineHandler.DeleteCuisine)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Post("/image", c.RecipeHandler.UploadRecipeImage)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) SavedRecipes() {
	saved := c.App.Group("/api/v1/saved-recipes", c.Middleware.AuthMiddleware(c.JWTService))
	saved.Get("", c.SavedRecipeHandler.GetSavedRecipes)
	saved.Post("", c.SavedRecipeHandler.SaveRecipe)
	saved.Delete("/:recipeId", c.SavedRecipeHandler.UnsaveRecipe)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Get("/week", c.MealPlanHandler.GetWeekPlan)
	mealPlans.Post("", c.MealPlanHandler.AddMealPlan)
	mealPlans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
