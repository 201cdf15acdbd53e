// Command sync-crafts reconciles the craft taxonomy tables against either the
// built-in catalog or a spreadsheet export.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/asadnavaid07/artstay-backend-asad/catalog"
	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/services"
)

func main() {
	xlsxPath := flag.String("xlsx", "", "path to a craft catalog spreadsheet (defaults to the built-in catalog)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.NewConfig()

	config.ConnectionDB(cfg)
	config.SetupDatabase()

	categories := catalog.CraftCategories
	if *xlsxPath != "" {
		loaded, err := catalog.LoadFromExcel(*xlsxPath)
		if err != nil {
			log.Fatalf("failed to load catalog from %s: %v", *xlsxPath, err)
		}
		categories = loaded
	}

	if err := services.SyncCraftCatalog(config.DB(), categories); err != nil {
		log.Fatalf("craft catalog sync failed: %v", err)
	}
	fmt.Printf("✅ Craft catalog synced (%d categories)\n", len(categories))
}
