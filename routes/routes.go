package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/controller"
	"github.com/asadnavaid07/artstay-backend-asad/middleware"
	"github.com/asadnavaid07/artstay-backend-asad/services"
)

// SetupRoutes wires every endpoint onto the engine. Controllers get their
// service dependencies here and nowhere else.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	registerCtl := controller.NewRegisterController(services.NewRegistrationService(db))
	authCtl := controller.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	artisanCtl := controller.NewArtisanController(services.NewArtisanService(db))
	fairCtl := controller.NewFairController(services.NewFairService(db))
	transitCtl := controller.NewEcoTransitController(services.NewEcoTransitService(db))
	languageCtl := controller.NewLanguageController(services.NewLanguageService(db))
	vendorCtl := controller.NewVendorController(services.NewVendorService(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	register := r.Group("/register")
	{
		register.POST("/artisan", registerCtl.CreateArtisan)
		register.POST("/fair", registerCtl.CreateFair)
		register.POST("/eco-transit", registerCtl.CreateEcoTransit)
		register.POST("/shop", registerCtl.CreateShop)
		register.POST("/restaurant", registerCtl.CreateRestaurant)
		register.POST("/travel-planer", registerCtl.CreateTravelPlaner)
		register.POST("/hotel", registerCtl.CreateHotel)
		register.POST("/language-service", registerCtl.CreateLanguageService)

		// Profile updates need a session.
		authed := register.Group("", middleware.Auth(cfg.JWTSecret))
		authed.PATCH("/artisan", registerCtl.UpdateArtisan)
		authed.PATCH("/fair", registerCtl.UpdateFair)
		authed.PATCH("/eco-transit", registerCtl.UpdateEcoTransit)
		authed.PATCH("/shop", registerCtl.UpdateShop)
		authed.PATCH("/restaurant", registerCtl.UpdateRestaurant)
		authed.PATCH("/travel-planer", registerCtl.UpdateTravelPlaner)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
	}

	artisan := r.Group("/artisan")
	{
		artisan.POST("", registerCtl.CreateArtisan)
		artisan.GET("/pagination", artisanCtl.Pagination)
		artisan.GET("/all", artisanCtl.GetAll)
		artisan.GET("/detail/:accountId", artisanCtl.Detail)
		artisan.GET("/application-status/:accountId", artisanCtl.ApplicationStatus)
		artisan.GET("/account-portfolio/:accountId", artisanCtl.PortfolioByAccount)
		artisan.GET("/artisan-portfolio/:artisanId", artisanCtl.PortfolioByArtisan)
		artisan.GET("/bookings/:accountId", artisanCtl.BookingsByAccount)
		artisan.GET("/booked-dates/:artisanId", artisanCtl.BookedDates)
		artisan.GET("/:artisanId", artisanCtl.DetailByArtisanID)
		artisan.PATCH("/toggle-status", artisanCtl.ToggleStatus)
		artisan.POST("/portfolio", artisanCtl.ReplacePortfolio)
		artisan.POST("/create-booking", artisanCtl.CreateBooking)
		artisan.POST("/find-artisan", artisanCtl.FindByCraft)
		artisan.POST("/find-nearby-artisan", artisanCtl.FindNearby)
		artisan.POST("/find-traditional-tour", artisanCtl.FindTraditionalTour)
		artisan.POST("/find-sustainable-living-tour", artisanCtl.FindSustainableLivingTour)
	}

	fair := r.Group("/fair")
	{
		fair.POST("", registerCtl.CreateFair)
		fair.GET("/pagination", fairCtl.Pagination)
		fair.GET("/all", fairCtl.GetAll)
		fair.GET("/application-status/:accountId", fairCtl.ApplicationStatus)
		fair.GET("/profile/:accountId", fairCtl.Profile)
		fair.GET("/events/:accountId", fairCtl.EventsByAccount)
		fair.GET("/event/:eventId", fairCtl.EventByID)
		fair.GET("/bookings/:accountId", fairCtl.BookingsByAccount)
		fair.GET("/:fairId", fairCtl.Detail)
		fair.PATCH("/toggle-status", fairCtl.ToggleStatus)
		fair.POST("/create-event", middleware.Auth(cfg.JWTSecret), fairCtl.CreateEvent)
		fair.PATCH("/event", fairCtl.UpdateEvent)
		fair.POST("/create-booking", fairCtl.CreateBooking)
		fair.POST("/find-fair", fairCtl.FindFair)
	}

	transit := r.Group("/eco-transit")
	{
		transit.POST("", registerCtl.CreateEcoTransit)
		transit.GET("/all", transitCtl.GetAll)
		transit.GET("/filters", transitCtl.Filters)
		transit.GET("/application-status/:accountId", transitCtl.ApplicationStatus)
		transit.GET("/options/:transitId", transitCtl.OptionsByTransit)
		transit.GET("/bookings/:transitId", transitCtl.BookingsByTransit)
		transit.GET("/:transitId", transitCtl.Detail)
		transit.PATCH("/toggle-status", transitCtl.ToggleStatus)
		transit.POST("/option", transitCtl.CreateOption)
		transit.POST("/booking", transitCtl.CreateBooking)
		transit.POST("/find-eco-transit-adventure", transitCtl.FindAdventure)
	}

	language := r.Group("/language")
	{
		language.GET("/all", languageCtl.GetAll)
		language.GET("/filters", languageCtl.Filters)
		language.GET("/application-status/:accountId", languageCtl.ApplicationStatus)
		language.GET("/:id", languageCtl.GetByID)
		language.PATCH("/toggle-status", languageCtl.ToggleStatus)
		language.DELETE("/:id", languageCtl.Delete)
		language.POST("/create-booking", languageCtl.CreateBooking)
		language.POST("/find-language-exploration", languageCtl.FindExploration)
	}

	vendor := r.Group("/vendor")
	{
		vendor.POST("/register", vendorCtl.Register)
		vendor.POST("/login", vendorCtl.Login)
	}
}
