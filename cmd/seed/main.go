// Command seed creates (or reuses) a demo user and prints a bearer token for it.
//
//	SEED_EMAIL=demo@example.com SEED_PASSWORD=secret go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"feed-api/config"
	"feed-api/database"
	"feed-api/internal/models"
	"feed-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	email := strings.ToLower(envOr("SEED_EMAIL", "demo@example.com"))
	password := envOr("SEED_PASSWORD", "changeme")
	name := envOr("SEED_NAME", "Demo")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = database.DisconnectMongo(client) }()

	users := repository.NewUserRepository(client.Database(cfg.MongoDB))

	user, err := users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &models.User{Name: name, Email: email, PasswordHash: string(hash), Status: "active"}
		if err := users.Save(ctx, user); err != nil {
			log.Fatalf("save user: %v", err)
		}
		log.Printf("created user %s (%s)", user.ID.Hex(), email)
	case err != nil:
		log.Fatalf("find user: %v", err)
	default:
		log.Printf("reusing user %s (%s)", user.ID.Hex(), email)
	}

	claims := jwt.MapClaims{
		"uid": user.ID.Hex(),
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
