package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/samber/lo"

	"github.com/fitgenius/backend/config"
	"github.com/fitgenius/backend/internal/database"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/store"
)

type seedUser struct {
	username string
	profile  models.UserProfile
}

var testUsers = []seedUser{
	{
		username: "johndoe",
		profile: models.UserProfile{
			Age:           lo.ToPtr(34),
			Gender:        lo.ToPtr("male"),
			Height:        lo.ToPtr(180.0),
			Weight:        lo.ToPtr(82.5),
			ActivityLevel: lo.ToPtr("moderate"),
			FitnessGoals:  []string{"lose 5kg", "run a half marathon"},
		},
	},
	{
		username: "janesmith",
		profile: models.UserProfile{
			Age:                 lo.ToPtr(28),
			Gender:              lo.ToPtr("female"),
			Height:              lo.ToPtr(165.0),
			Weight:              lo.ToPtr(58.0),
			ActivityLevel:       lo.ToPtr("active"),
			FitnessGoals:        []string{"build muscle"},
			DietaryRestrictions: []string{"vegetarian"},
		},
	},
	{
		username: "bobwilson",
		profile: models.UserProfile{
			Age:           lo.ToPtr(52),
			ActivityLevel: lo.ToPtr("sedentary"),
			Allergies:     lo.ToPtr("peanuts"),
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreDriver == config.StoreMemory {
		log.Fatal("STORE_DRIVER is memory; seeded users would be lost on exit")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	s := store.NewGormStore(db)
	ctx := context.Background()
	if err := s.Migrate(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "testpassword123"
	}

	for _, u := range testUsers {
		if err := seed(ctx, s, u, password); err != nil {
			log.Fatalf("Failed to seed %s: %v", u.username, err)
		}
	}
	log.Printf("Seeded %d test users", len(testUsers))
}

func seed(ctx context.Context, s store.Store, u seedUser, password string) error {
	existing, err := s.GetUserByUsername(ctx, u.username)
	switch {
	case err == nil:
		log.Printf("User %s already exists (%s), skipping", u.username, existing.ID)
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	user, err := s.CreateUser(ctx, u.username, password)
	if err != nil {
		return err
	}

	profile := u.profile
	profile.UserID = user.ID
	if _, err := s.CreateProfile(ctx, profile); err != nil {
		return err
	}
	log.Printf("Created user %s (%s)", u.username, user.ID)
	return nil
}
