package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jamtrips/internal/database"
	"jamtrips/internal/middleware"
	"jamtrips/internal/modules/auth"
	"jamtrips/internal/modules/booking"
	"jamtrips/internal/modules/catalog"
	"jamtrips/internal/modules/realtime"
	jwtsvc "jamtrips/internal/pkg/jwt"
	"jamtrips/internal/repository"
	"jamtrips/internal/upload"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "jamtrips.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tourRepo := repository.NewTourRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := realtime.NewHub()
	defer hub.Close()
	realtimeHandler := realtime.NewHandler(hub)

	uploadDir := os.Getenv("UPLOAD_DIR")
	uploads := upload.NewService(uploadDir, upload.StaticBase)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(tourRepo, hub)
	catalogHandler := catalog.NewHandler(catalogService, uploads)

	bookingService := booking.NewService(bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	if uploadDir == "" {
		uploadDir = upload.BaseDir
	}
	r.Static(upload.StaticBase, uploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		realtimeHandler.RegisterRoutes(v1)

		// admin panel (JWT + admin role)
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
