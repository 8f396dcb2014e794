package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var testHasher = auth.NewHasher(bcrypt.MinCost)

// setupServer builds a router against a fresh in-memory database.
func setupServer(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// a named shared-cache memory DB keeps the whole connection pool on one
	// database; the test name isolates tests from each other
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	if err := config.InitDB(dsn); err != nil {
		t.Fatalf("InitDB: %v", err)
	}

	tokens, err := auth.NewTokenService([]byte("test-secret"), time.Hour, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, tokens, testHasher)
	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// createUser inserts a user directly and returns it with an access token.
func createUser(t *testing.T, tokens *auth.TokenService, email string, role models.Role) (models.User, string) {
	t.Helper()
	hash, err := testHasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	user := models.User{Name: "Test " + email, Email: email, PasswordHash: hash, Role: role}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := tokens.IssueAccessToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	return user, token
}

// createRestaurant inserts a restaurant with a two-item menu.
func createRestaurant(t *testing.T) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name: "Test Kitchen",
		Menu: []models.MenuItem{
			{Name: "A", Price: 5},
			{Name: "B", Price: 3},
		},
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return restaurant
}
