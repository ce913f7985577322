package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"local-guide/controllers"
	"local-guide/infra"
	"local-guide/middlewares"
	"local-guide/models"
	"local-guide/realtime"
	"local-guide/repositories"
	"local-guide/services"
)

func setupRouter(db *gorm.DB, hub *realtime.Hub) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	reviewRepository := repositories.NewReviewRepository(db)
	reviewService := services.NewReviewService(reviewRepository)
	reviewController := controllers.NewReviewController(reviewService)

	favoriteRepository := repositories.NewFavoriteRepository(db)
	favoriteService := services.NewFavoriteService(favoriteRepository, hub)
	favoriteController := controllers.NewFavoriteController(favoriteService)

	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	authRouter := api.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.GET("/profile", middlewares.AuthMiddleware(authService), authController.Profile)

	api.GET("/local-items", middlewares.OptionalAuthMiddleware(authService), itemController.FindAll)

	itemRouter := api.Group("/items/:itemId")
	itemRouter.GET("/reviews", reviewController.FindByItem)
	itemRouterWithAuth := api.Group("/items/:itemId", middlewares.AuthMiddleware(authService))
	itemRouterWithAuth.POST("/reviews", reviewController.Create)
	itemRouterWithAuth.POST("/favorite", favoriteController.Add)
	itemRouterWithAuth.DELETE("/favorite", favoriteController.Remove)

	r.GET("/ws", hub.ServeWS)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Review{}, &models.Favorite{})
		if err != nil {
			panic("Failed to migrate database")
		}

		seedFile := os.Getenv("SEED_FILE")
		if seedFile == "" {
			seedFile = "data.json"
		}
		if _, err := os.Stat(seedFile); err == nil {
			if _, err := infra.SeedItems(db, seedFile); err != nil {
				log.Printf("Catalog seeding failed: %v", err)
			}
		}
	}

	return db
}

func main() {
	db := initDB()

	hub := realtime.NewHub()
	go hub.Run()

	r := setupRouter(db, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
