package handler

import (
	"net/http"

	model "rewear/internal/models"
	"rewear/services/exchange/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Signup(email, password, name string) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
	GetProfile(userID string) (model.User, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// SignupHandler handles POST /auth/signup
func (h *AccountHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	user, token, err := h.service.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "SignupHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuthResponse{User: user, Token: token}, "user created successfully")
	helpers.LogSuccess("SignupHandler", "user created successfully", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuthResponse{User: user, Token: token}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
	})
}

// MeHandler handles GET /auth/me
func (h *AccountHandler) MeHandler(c *gin.Context) {
	userID := helpers.ActorID(c)

	user, err := h.service.GetProfile(userID)
	if err != nil {
		helpers.HandleServiceError(c, "MeHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}
