package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	account "rewear/internal/accountService"
	"rewear/internal/auth"
	catalog "rewear/internal/catalogService"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/server"
	swap "rewear/internal/swapService"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "integration-test-secret"

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The repository is returned so tests can seed state
// directly.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	catalogSvc := catalog.NewCatalogService(repo)
	swapSvc := swap.NewSwapService(repo)
	accountSvc := account.NewAccountService(repo, testJWTSecret)

	router := server.SetupRouter(catalogSvc, swapSvc, accountSvc, testJWTSecret)
	return router, repo
}

// SeedUser adds a user with a known password hash and returns a valid token.
func SeedUser(t *testing.T, repo *repository.MemoryRepo, userID, email, role string, points int) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo.AddUser(model.User{
		UserID:    userID,
		Email:     email,
		Password:  string(hash),
		Name:      userID,
		Points:    points,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})

	token, err := auth.GenerateToken(testJWTSecret, userID, role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// SeedApprovedItem adds an approved, available item owned by uploaderID.
func SeedApprovedItem(t *testing.T, repo *repository.MemoryRepo, itemID, uploaderID string, pointValue int) {
	t.Helper()

	now := time.Now().UTC()
	repo.AddItem(model.Item{
		ItemID:      itemID,
		Title:       itemID + " title",
		Description: itemID + " integration test item",
		Category:    "clothing",
		Type:        "top",
		Size:        "M",
		Condition:   "good",
		Images:      []string{itemID + ".jpg"},
		UploaderID:  uploaderID,
		PointValue:  pointValue,
		Status:      model.ItemAvailable,
		IsApproved:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// ExecuteRequest executes an HTTP request with an optional bearer token and
// parses the JSON response envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data extracts the data object from a response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
