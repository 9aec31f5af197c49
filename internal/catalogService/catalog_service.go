package catalog

import (
	"fmt"
	"time"

	"rewear/internal/exchangeerrors"
	"rewear/internal/metrics"
	model "rewear/internal/models"
	"rewear/internal/pricing"
	"rewear/internal/repository"
	"rewear/utils"
)

// Field limits for item listings.
const (
	TitleMinLength       = 3
	TitleMaxLength       = 100
	DescriptionMinLength = 10
	DescriptionMaxLength = 1000
	MaxImages            = 5
	DefaultPageLimit     = 12
	MaxPageLimit         = 50
)

var validCategories = map[string]bool{
	"clothing":    true,
	"shoes":       true,
	"accessories": true,
	"bags":        true,
	"jewelry":     true,
	"other":       true,
}

var validConditions = map[string]bool{
	"new":      true,
	"like-new": true,
	"good":     true,
	"fair":     true,
}

// CatalogService defines the business logic for item listings and moderation
type CatalogService struct {
	repo repository.ExchangeDB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.ExchangeDB) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// NewItemInput carries the fields of a new listing
type NewItemInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Size        string
	Condition   string
	Tags        []string
	Images      []string
}

// CreateItem lists a new item for the uploader. The point value is
// computed once here and is immutable afterwards; the item starts
// available but unapproved.
func (s *CatalogService) CreateItem(uploaderID string, in NewItemInput) (model.Item, error) {
	if uploaderID == "" {
		return model.Item{}, fmt.Errorf("service: %w - empty uploader ID", exchangeerrors.ErrValidation)
	}
	if err := validateNewItem(in); err != nil {
		return model.Item{}, err
	}

	now := time.Now().UTC()
	item := model.Item{
		ItemID:      utils.GenerateID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Size:        in.Size,
		Condition:   in.Condition,
		Tags:        in.Tags,
		Images:      in.Images,
		UploaderID:  uploaderID,
		PointValue:  pricing.PointValue(in.Category, in.Condition),
		Status:      model.ItemAvailable,
		IsApproved:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("service: failed to create item for user %s: %w", uploaderID, err)
	}

	metrics.ItemsCreated.WithLabelValues(item.Category).Inc()
	return item, nil
}

// validateNewItem checks the listing fields against catalog limits
func validateNewItem(in NewItemInput) error {
	if len(in.Title) < TitleMinLength || len(in.Title) > TitleMaxLength {
		return fmt.Errorf("service: %w - title must be %d to %d characters", exchangeerrors.ErrValidation, TitleMinLength, TitleMaxLength)
	}
	if len(in.Description) < DescriptionMinLength || len(in.Description) > DescriptionMaxLength {
		return fmt.Errorf("service: %w - description must be %d to %d characters", exchangeerrors.ErrValidation, DescriptionMinLength, DescriptionMaxLength)
	}
	if !validCategories[in.Category] {
		return fmt.Errorf("service: %w - unknown category %q", exchangeerrors.ErrValidation, in.Category)
	}
	if !validConditions[in.Condition] {
		return fmt.Errorf("service: %w - unknown condition %q", exchangeerrors.ErrValidation, in.Condition)
	}
	if in.Size == "" {
		return fmt.Errorf("service: %w - size is required", exchangeerrors.ErrValidation)
	}
	if in.Type == "" {
		return fmt.Errorf("service: %w - type is required", exchangeerrors.ErrValidation)
	}
	if len(in.Images) < 1 || len(in.Images) > MaxImages {
		return fmt.Errorf("service: %w - between 1 and %d images required", exchangeerrors.ErrValidation, MaxImages)
	}
	return nil
}

// GetItems returns a page of approved, available items matching the filter
func (s *CatalogService) GetItems(filter model.ItemFilter) (model.ItemPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}

	items, total, err := s.repo.ListAvailableItems(filter)
	if err != nil {
		return model.ItemPage{}, fmt.Errorf("service: failed to list items: %w", err)
	}

	pages := (total + filter.Limit - 1) / filter.Limit
	return model.ItemPage{Items: items, Total: total, Pages: pages}, nil
}

// GetItemByID returns a single item
func (s *CatalogService) GetItemByID(itemID string) (model.Item, error) {
	if itemID == "" {
		return model.Item{}, fmt.Errorf("service: %w - empty item ID", exchangeerrors.ErrValidation)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// GetUserItems returns all items a user has listed, newest first
func (s *CatalogService) GetUserItems(userID string) ([]model.Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrValidation)
	}

	items, err := s.repo.ListItemsByUploader(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for user %s: %w", userID, err)
	}
	return items, nil
}

// ApproveItem opens the approval gate on an item. Only admins may approve.
func (s *CatalogService) ApproveItem(itemID, adminID string) (model.Item, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return model.Item{}, err
	}

	item, err := s.repo.ApproveItem(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to approve item %s: %w", itemID, err)
	}
	return item, nil
}

// RejectItem removes an item from the marketplace (terminal). Only admins
// may reject, and only items not currently held by a swap.
func (s *CatalogService) RejectItem(itemID, adminID string) (model.Item, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return model.Item{}, err
	}

	item, err := s.repo.RemoveItem(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to reject item %s: %w", itemID, err)
	}
	return item, nil
}

// requireAdmin verifies the acting user holds the admin role
func (s *CatalogService) requireAdmin(adminID string) error {
	if adminID == "" {
		return fmt.Errorf("service: %w - empty admin ID", exchangeerrors.ErrValidation)
	}

	actor, err := s.repo.GetUser(adminID)
	if err != nil || actor.Role != model.RoleAdmin {
		return fmt.Errorf("service: admin action by user %s: %w", adminID, exchangeerrors.ErrUnauthorized)
	}
	return nil
}
