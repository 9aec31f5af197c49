package handler

import (
	"net/http"

	model "rewear/internal/models"
	swap "rewear/internal/swapService"
	"rewear/services/exchange/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type SwapServiceInterface interface {
	CreateSwap(in swap.CreateSwapInput) (model.Swap, error)
	RespondToSwap(swapID, ownerID, decision string) (model.Swap, error)
	GetUserSwaps(userID string) (model.UserSwaps, error)
}

type SwapHandler struct {
	service SwapServiceInterface
}

func NewSwapHandler(service SwapServiceInterface) *SwapHandler {
	return &SwapHandler{service: service}
}

// CreateSwapHandler handles POST /swaps
func (h *SwapHandler) CreateSwapHandler(c *gin.Context) {
	var req helpers.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSwapHandler", err)
		return
	}

	requesterID := helpers.ActorID(c)
	created, err := h.service.CreateSwap(swap.CreateSwapInput{
		RequesterID:   requesterID,
		ItemID:        req.ItemID,
		Type:          req.Type,
		OfferedItemID: req.OfferedItemID,
		PointsOffered: req.PointsOffered,
		Message:       req.Message,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateSwapHandler", err, map[string]any{
			"item_id":      req.ItemID,
			"requester_id": requesterID,
			"type":         req.Type,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "swap request created successfully")
	helpers.LogSuccess("CreateSwapHandler", "swap request created successfully", map[string]any{
		"swap_id":      created.SwapID,
		"item_id":      created.ItemID,
		"requester_id": created.RequesterID,
		"owner_id":     created.OwnerID,
		"type":         created.Type,
	})
}

// RespondToSwapHandler handles POST /swaps/:swap_id/respond
func (h *SwapHandler) RespondToSwapHandler(c *gin.Context) {
	var req helpers.RespondSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondToSwapHandler", err)
		return
	}

	swapID := c.Param("swap_id")
	ownerID := helpers.ActorID(c)

	resolved, err := h.service.RespondToSwap(swapID, ownerID, req.Decision)
	if err != nil {
		helpers.HandleServiceError(c, "RespondToSwapHandler", err, map[string]any{
			"swap_id":  swapID,
			"owner_id": ownerID,
			"decision": req.Decision,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, resolved, "swap "+req.Decision+" successfully")
	helpers.LogSuccess("RespondToSwapHandler", "swap resolved successfully", map[string]any{
		"swap_id":  resolved.SwapID,
		"decision": req.Decision,
		"status":   resolved.Status,
	})
}

// GetUserSwapsHandler handles GET /swaps
func (h *SwapHandler) GetUserSwapsHandler(c *gin.Context) {
	userID := helpers.ActorID(c)

	swaps, err := h.service.GetUserSwaps(userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserSwapsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if swaps.Sent == nil {
		swaps.Sent = []model.Swap{}
	}
	if swaps.Received == nil {
		swaps.Received = []model.Swap{}
	}

	utils.JSONResponse(c, http.StatusOK, swaps, "swaps retrieved successfully")
}
