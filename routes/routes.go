package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"banquethall-backend/controllers"
	"banquethall-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public catalog/availability surface and the
// token-guarded admin surface onto one engine.
func SetupRouter(
	bc *controllers.BookingController,
	blc *controllers.BillController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter := middleware.NewRateLimiter(10, 5)

	api := r.Group("/api")
	{
		// Public surface: catalog reads, availability, the stripped-down
		// booking feed and login.
		halls := api.Group("/halls")
		{
			halls.GET("", controllers.GetHalls)
			halls.GET("/:id", controllers.GetHall)
		}

		api.GET("/services", controllers.GetServices)
		api.GET("/packages", controllers.GetPackages)
		api.GET("/shubh-dates", controllers.GetShubhDates)
		api.GET("/availability", bc.GetAvailability)
		api.GET("/public/bookings", bc.GetPublicBookings)
		api.GET("/settings", controllers.GetSettings)
		api.GET("/event-types", controllers.GetEventTypes)

		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Limit(), controllers.Login)
		}

		// Admin surface: everything below requires a bearer token.
		admin := api.Group("")
		admin.Use(middleware.RequireAuth())
		{
			admin.PUT("/halls/:id", controllers.UpdateHall)

			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			admin.POST("/packages", controllers.CreatePackage)
			admin.PUT("/packages/:id", controllers.UpdatePackage)
			admin.DELETE("/packages/:id", controllers.DeletePackage)

			admin.POST("/shubh-dates", controllers.CreateShubhDate)
			admin.DELETE("/shubh-dates/:id", controllers.DeleteShubhDate)

			bookings := admin.Group("/bookings")
			{
				bookings.GET("", bc.GetBookings)
				bookings.POST("", bc.CreateBooking)
				bookings.PUT("/:id", bc.UpdateBooking)
				bookings.DELETE("/:id", bc.DeleteBooking)
			}

			bills := admin.Group("/bills")
			{
				bills.GET("", blc.GetBills)
				bills.POST("", blc.CreateBill)
				bills.DELETE("/:id", blc.DeleteBill)
				bills.GET("/report/pdf", blc.GetBillsReportPDF)
				bills.GET("/:id/pdf", blc.GetBillPDF)
				bills.GET("/:id/reminder", blc.GetBillReminder)
			}

			admins := admin.Group("/admins")
			{
				admins.GET("", controllers.GetAdmins)
				admins.POST("", controllers.CreateAdmin)
				admins.DELETE("/:id", controllers.DeleteAdmin)
			}

			admin.PUT("/settings", controllers.UpdateSettings)
			admin.POST("/auth/change-password", controllers.ChangePassword)
			admin.POST("/upload-image", controllers.UploadImage)
			admin.POST("/reset-system", controllers.ResetSystem)
		}
	}

	return r
}
