package handler

import (
	"net/http"
	"strconv"

	catalog "rewear/internal/catalogService"
	model "rewear/internal/models"
	"rewear/services/exchange/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	CreateItem(uploaderID string, in catalog.NewItemInput) (model.Item, error)
	GetItems(filter model.ItemFilter) (model.ItemPage, error)
	GetItemByID(itemID string) (model.Item, error)
	GetUserItems(userID string) ([]model.Item, error)
	ApproveItem(itemID, adminID string) (model.Item, error)
	RejectItem(itemID, adminID string) (model.Item, error)
}

type ItemHandler struct {
	service CatalogServiceInterface
}

func NewItemHandler(service CatalogServiceInterface) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemHandler handles POST /items
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	uploaderID := helpers.ActorID(c)
	item, err := h.service.CreateItem(uploaderID, catalog.NewItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Size:        req.Size,
		Condition:   req.Condition,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateItemHandler", err, map[string]any{
			"uploader_id": uploaderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item created successfully and pending approval")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id":     item.ItemID,
		"uploader_id": uploaderID,
		"point_value": item.PointValue,
	})
}

// ListItemsHandler handles GET /items
func (h *ItemHandler) ListItemsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	filter := model.ItemFilter{
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
		Size:      c.Query("size"),
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
	}

	result, err := h.service.GetItems(filter)
	if err != nil {
		helpers.HandleServiceError(c, "ListItemsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		helpers.HandleServiceError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// MyItemsHandler handles GET /items/my-items
func (h *ItemHandler) MyItemsHandler(c *gin.Context) {
	userID := helpers.ActorID(c)

	items, err := h.service.GetUserItems(userID)
	if err != nil {
		helpers.HandleServiceError(c, "MyItemsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// ApproveItemHandler handles POST /items/:item_id/approve
func (h *ItemHandler) ApproveItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	adminID := helpers.ActorID(c)

	item, err := h.service.ApproveItem(itemID, adminID)
	if err != nil {
		helpers.HandleServiceError(c, "ApproveItemHandler", err, map[string]any{
			"item_id":  itemID,
			"admin_id": adminID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item approved successfully")
	helpers.LogSuccess("ApproveItemHandler", "item approved successfully", map[string]any{
		"item_id":  itemID,
		"admin_id": adminID,
	})
}

// RejectItemHandler handles POST /items/:item_id/reject
func (h *ItemHandler) RejectItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	adminID := helpers.ActorID(c)

	item, err := h.service.RejectItem(itemID, adminID)
	if err != nil {
		helpers.HandleServiceError(c, "RejectItemHandler", err, map[string]any{
			"item_id":  itemID,
			"admin_id": adminID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item rejected successfully")
	helpers.LogSuccess("RejectItemHandler", "item rejected successfully", map[string]any{
		"item_id":  itemID,
		"admin_id": adminID,
	})
}
