package config

import (
	"os"

	"cooktok/internal/api/handlers"
	"cooktok/internal/api/routes"
	"cooktok/internal/middleware"
	"cooktok/internal/utils"
	"cooktok/internal/utils/storage"
	"cooktok/pkg/cuisine"
	"cooktok/pkg/jwt"
	"cooktok/pkg/mealplan"
	"cooktok/pkg/recipe"
	"cooktok/pkg/savedrecipe"
	"cooktok/pkg/user"
	"cooktok/pkg/watch"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// media storage
	var mediaStorage storage.MediaStorage
	if utils.GetConfig("MEDIA_STORAGE") == "s3" {
		mediaStorage = storage.NewAwsS3()
	} else {
		mediaStorage, err = storage.NewLocalStorage(utils.GetConfig("MEDIA_DIR"))
		if err != nil {
			log.Fatalf("error creating media directory: %v", err)
		}
	}

	// change notification, shared by all repositories
	notifier := watch.NewNotifier()

	// Repository
	userRepository := user.NewUserRepository(db)
	cuisineRepository := cuisine.NewCuisineRepository(db, notifier)
	recipeRepository := recipe.NewRecipeRepository(db, notifier)
	savedRecipeRepository := savedrecipe.NewSavedRecipeRepository(db, notifier)
	mealPlanRepository := mealplan.NewMealPlanRepository(db, notifier)

	// Service
	jwtService := jwt.NewJWTService()
	authService := user.NewAuthService(userRepository)
	cuisineService := cuisine.NewCuisineService(cuisineRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, notifier)
	savedRecipeService := savedrecipe.NewSavedRecipeService(savedRecipeRepository, notifier)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, notifier)

	// Handler
	userHandler := handlers.NewUserHandler(authService, validator, jwtService)
	cuisineHandler := handlers.NewCuisineHandler(cuisineService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, mediaStorage, validator)
	savedRecipeHandler := handlers.NewSavedRecipeHandler(savedRecipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		CuisineHandler:     cuisineHandler,
		RecipeHandler:      recipeHandler,
		SavedRecipeHandler: savedRecipeHandler,
		MealPlanHandler:    mealPlanHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
