package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	account "rewear/internal/accountService"
	catalog "rewear/internal/catalogService"
	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/server"
	"rewear/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	swap "rewear/internal/swapService"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	repo, err := buildRepo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}

	jwtSecret := getEnv("JWT_SECRET", "dev-secret-change-me")

	catalogSvc := catalog.NewCatalogService(repo)
	swapSvc := swap.NewSwapService(repo)
	accountSvc := account.NewAccountService(repo, jwtSecret)

	if err := bootstrapAdmin(repo); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap admin: %v\n", err)
		os.Exit(1)
	}

	router := server.SetupRouter(catalogSvc, swapSvc, accountSvc, jwtSecret)

	port := getPort()
	fmt.Printf("Starting exchange server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the storage backend: SQLite when DB_PATH is set,
// otherwise the in-memory store.
func buildRepo() (repository.ExchangeDB, error) {
	if path := os.Getenv("DB_PATH"); path != "" {
		utils.Info("using sqlite storage", map[string]any{"path": path})
		return repository.NewSQLiteRepo(path)
	}
	utils.Info("using in-memory storage", nil)
	return repository.NewMemoryRepo(), nil
}

// bootstrapAdmin creates the moderation account from ADMIN_EMAIL and
// ADMIN_PASSWORD if it does not exist yet.
func bootstrapAdmin(repo repository.ExchangeDB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if _, err := repo.GetUserByEmail(email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := model.User{
		UserID:    utils.GenerateID(),
		Email:     email,
		Password:  string(hash),
		Name:      getEnv("ADMIN_NAME", "Admin"),
		Points:    model.StartingPoints,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.CreateUser(admin); err != nil {
		if errors.Is(err, exchangeerrors.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("creating admin user: %w", err)
	}

	utils.Info("bootstrapped admin user", map[string]any{"email": email})
	return nil
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
