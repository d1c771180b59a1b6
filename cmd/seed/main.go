package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notely/internal/config"
	"notely/internal/db"
	"notely/internal/model"
	"notely/internal/repository"
)

// seedUser is a demo account with a known password and a few notes.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Notes    []model.Note
}

var seedUsers = []seedUser{
	{
		Name:     "Ann Example",
		Email:    "ann@example.com",
		Password: "secret1",
		Notes: []model.Note{
			{Title: "Groceries", Content: "Milk, eggs, coffee"},
			{Title: "Meeting notes", Content: "Follow up with the design team on Thursday"},
		},
	},
	{
		Name:     "Bob Example",
		Email:    "bob@example.com",
		Password: "secret2",
		Notes: []model.Note{
			{Title: "Reading list", Content: "The Go Programming Language, ch. 7"},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)
	ctx := context.Background()

	created, skipped, err := seed(ctx, userRepo, noteRepo)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users already present: %d", skipped)
}

// seed creates the demo users and their notes, skipping users that already
// exist so the script is safe to re-run.
func seed(ctx context.Context, userRepo repository.UserRepository, noteRepo repository.NoteRepository) (created int, skipped int, err error) {
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("error checking user %s: %w", su.Email, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", su.Email)
			skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, skipped, fmt.Errorf("error hashing password for %s: %w", su.Email, err)
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return created, skipped, fmt.Errorf("error creating user %s: %w", su.Email, err)
		}

		for _, n := range su.Notes {
			note := n
			note.UserID = user.ID
			if err := noteRepo.Create(ctx, &note); err != nil {
				return created, skipped, fmt.Errorf("error creating note for %s: %w", su.Email, err)
			}
		}
		created++
	}
	return created, skipped, nil
}
