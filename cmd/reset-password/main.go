// Command reset-password sets a user's password directly in the database and
// revokes their sessions. Usage: reset-password -email admin@example.com -password nueva
package main

import (
	"flag"
	"log"
	"strings"

	"go-inventario/internal/config"
	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	email := flag.String("email", cfg.Auth.AdminEmail, "user email")
	password := flag.String("password", cfg.Auth.AdminPassword, "new password")
	flag.Parse()

	if len(*password) < model.MinPasswordLength {
		log.Fatalf("password must be at least %d characters", model.MinPasswordLength)
	}

	db, err := database.Connect(database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal(err)
	}
	users := repository.NewUserRepo(db)

	user, err := users.FindByEmail(strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := users.UpdatePassword(user.ID, user.Password); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}
	if err := users.UpdateTokenVersion(user.ID, uuid.New().String()); err != nil {
		log.Fatalf("Failed to revoke sessions: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
