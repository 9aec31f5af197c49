package helpers

import model "rewear/internal/models"

// Request/Response DTOs
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Condition   string   `json:"condition" binding:"required"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" binding:"required,min=1,max=5"`
}

type CreateSwapRequest struct {
	ItemID        string `json:"item_id" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=direct points"`
	OfferedItemID string `json:"offered_item_id"`
	PointsOffered int    `json:"points_offered"`
	Message       string `json:"message" binding:"max=500"`
}

type RespondSwapRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}
