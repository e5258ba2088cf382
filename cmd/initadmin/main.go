// Command initadmin writes the admin credentials document. Run once to set
// up the admin login, or again to rotate the password.
package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"pubhouse-be/internal/auth"
	"pubhouse-be/internal/config"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("user", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	cfg := config.Load()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := auth.NewCredentialsRepository(filepath.Join(cfg.DataDir, "admin.json"))
	if err := repo.Save(context.Background(), auth.Credentials{
		Username:     *username,
		PasswordHash: hash,
	}); err != nil {
		log.Fatalf("failed to write admin credentials: %v", err)
	}

	log.Printf("admin credentials written for %q", *username)
}
