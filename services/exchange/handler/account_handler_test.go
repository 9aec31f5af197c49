package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"
	"rewear/services/exchange/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test SignupHandler
func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/signup", handler.SignupHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			requestBody: helpers.SignupRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"},
			mockSetup: func() {
				mockService.EXPECT().
					Signup("alice@example.com", "password123", "Alice").
					Return(model.User{
						UserID: "user1",
						Email:  "alice@example.com",
						Name:   "Alice",
						Points: model.StartingPoints,
						Role:   model.RoleUser,
					}, "signed-token", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "signed-token", data["token"])
				user := data["user"].(map[string]any)
				require.Equal(t, "user1", user["user_id"])
				require.Equal(t, float64(model.StartingPoints), user["points"])
				// Password hash never leaves the server
				require.NotContains(t, user, "password")
			},
		},
		{
			name:           "invalid_email_rejected_by_binding",
			requestBody:    helpers.SignupRequest{Email: "not-an-email", Password: "password123", Name: "Alice"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "short_password_rejected_by_binding",
			requestBody:    helpers.SignupRequest{Email: "alice@example.com", Password: "short", Name: "Alice"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "email_taken",
			requestBody: helpers.SignupRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"},
			mockSetup: func() {
				mockService.EXPECT().
					Signup("alice@example.com", "password123", "Alice").
					Return(model.User{}, "", exchangeerrors.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "user already exists with this email",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", handler.LoginHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Login("bob@example.com", "password123").
			Return(model.User{UserID: "bob"}, "signed-token", nil)

		reqBody, _ := json.Marshal(helpers.LoginRequest{Email: "bob@example.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "signed-token", data["token"])
	})

	t.Run("bad_credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login("bob@example.com", "wrongpassword").
			Return(model.User{}, "", exchangeerrors.ErrInvalidCredentials)

		reqBody, _ := json.Marshal(helpers.LoginRequest{Email: "bob@example.com", Password: "wrongpassword"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing_fields", func(t *testing.T) {
		reqBody, _ := json.Marshal(helpers.LoginRequest{Email: "bob@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test MeHandler
func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(actorMiddleware("carol", model.RoleUser))
	router.GET("/auth/me", handler.MeHandler)

	t.Run("returns_profile_with_points", func(t *testing.T) {
		mockService.EXPECT().
			GetProfile("carol").
			Return(model.User{UserID: "carol", Points: 80}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, 80.0, data["points"])
	})

	t.Run("user_gone", func(t *testing.T) {
		mockService.EXPECT().
			GetProfile("carol").
			Return(model.User{}, exchangeerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
