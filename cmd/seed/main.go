package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"petapi/internal/auth"
	"petapi/internal/config"
	"petapi/internal/db"
	"petapi/internal/model"
	"petapi/internal/repository"
)

// seedUser describes one demo user plus the items created for them.
type seedUser struct {
	Email    string
	Username string
	Password string
	Items    []seedItem
}

type seedItem struct {
	Title       string
	Description string
}

var demoUsers = []seedUser{
	{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "alice-secret",
		Items: []seedItem{
			{Title: "Garden gnome", Description: "Slightly weathered, still smiling"},
			{Title: "Coffee grinder"},
		},
	},
	{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "bob-secret",
		Items: []seedItem{
			{Title: "Record player", Description: "Belt drive, needs a new needle"},
		},
	},
	{
		Email:    "carol@example.com",
		Username: "carol",
		Password: "carol-secret",
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	ctx := context.Background()

	log.Println("Seeding demo users and items...")
	usersCreated, itemsCreated, err := seed(ctx, userRepo, itemRepo, hasher)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", usersCreated)
	log.Printf("  - New items created: %d", itemsCreated)
}

// seed inserts demo users and their items, skipping users that already
// exist and items for users that already own some.
func seed(ctx context.Context, users repository.UserRepository, items repository.ItemRepository, hasher *auth.PasswordHasher) (usersCreated, itemsCreated int, err error) {
	for _, demo := range demoUsers {
		user, err := users.FindByEmail(ctx, demo.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return usersCreated, itemsCreated, err
		}

		if user == nil {
			hash, err := hasher.Hash(demo.Password)
			if err != nil {
				return usersCreated, itemsCreated, err
			}
			user = &model.User{
				Email:        demo.Email,
				Username:     demo.Username,
				PasswordHash: hash,
				IsActive:     true,
			}
			if err := users.Create(ctx, user); err != nil {
				return usersCreated, itemsCreated, err
			}
			usersCreated++
		} else {
			log.Printf("User %s already exists, skipping", demo.Email)
		}

		owned, err := items.CountByOwner(ctx, user.ID)
		if err != nil {
			return usersCreated, itemsCreated, err
		}
		if owned > 0 {
			continue
		}

		for _, demoItem := range demo.Items {
			item := &model.Item{
				Title:       demoItem.Title,
				Description: demoItem.Description,
				OwnerID:     user.ID,
			}
			if err := items.Create(ctx, item); err != nil {
				return usersCreated, itemsCreated, err
			}
			itemsCreated++
		}
	}
	return usersCreated, itemsCreated, nil
}
