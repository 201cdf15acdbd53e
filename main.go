package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/asadnavaid07/artstay-backend-asad/catalog"
	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/routes"
	"github.com/asadnavaid07/artstay-backend-asad/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.NewConfig()

	config.ConnectionDB(cfg)
	config.SetupDatabase()

	if err := services.SyncCraftCatalog(config.DB(), catalog.CraftCategories); err != nil {
		log.Fatalf("craft catalog sync failed: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r, config.DB(), cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
