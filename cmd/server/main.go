package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "petapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"petapi/internal/auth"
	"petapi/internal/config"
	"petapi/internal/db"
	"petapi/internal/handler"
	"petapi/internal/model"
	"petapi/internal/repository"
	"petapi/internal/router"
	"petapi/internal/service"
)

// @title Pet Project API
// @version 1.0
// @description User registration and item management API with JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		// Items first, they reference users.
		for _, table := range []interface{}{&model.Item{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService, userService)
	itemHandler := handler.NewItemHandler(itemService)
	authHandler := handler.NewAuthHandler(authService)

	// Register routes
	router.Register(e, userHandler, itemHandler, authHandler, jwtService, userRepo)

	host := cfg.SwaggerHost
	if host == "" {
		host = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
