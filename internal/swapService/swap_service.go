package swap

import (
	"fmt"
	"time"

	"rewear/internal/exchangeerrors"
	"rewear/internal/metrics"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/utils"
)

// MaxMessageLength caps the optional note attached to a swap request.
const MaxMessageLength = 500

// SwapService defines the business logic for the swap workflow
type SwapService struct {
	repo repository.ExchangeDB
}

// NewSwapService creates a new SwapService instance
func NewSwapService(repo repository.ExchangeDB) *SwapService {
	return &SwapService{
		repo: repo,
	}
}

// CreateSwapInput carries the caller's swap request. Exactly one of
// OfferedItemID or PointsOffered must be set, matching Type.
type CreateSwapInput struct {
	RequesterID   string
	ItemID        string
	Type          string
	OfferedItemID string
	PointsOffered int
	Message       string
}

// CreateSwap validates a swap request and records it, holding the target
// item. The business preconditions (item availability, ownership, offered
// item validity, points balance) are enforced inside the repository's
// atomic boundary so two concurrent requests cannot both hold one item.
func (s *SwapService) CreateSwap(in CreateSwapInput) (model.Swap, error) {
	if err := validateCreateSwap(in); err != nil {
		return model.Swap{}, err
	}

	now := time.Now().UTC()
	swap := model.Swap{
		SwapID:        utils.GenerateID(),
		RequesterID:   in.RequesterID,
		ItemID:        in.ItemID,
		OfferedItemID: in.OfferedItemID,
		PointsOffered: in.PointsOffered,
		Type:          in.Type,
		Message:       in.Message,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.CreateSwap(swap)
	if err != nil {
		return model.Swap{}, fmt.Errorf("service: failed to create swap for item %s by user %s: %w", in.ItemID, in.RequesterID, err)
	}

	metrics.SwapsCreated.WithLabelValues(created.Type).Inc()
	return created, nil
}

// validateCreateSwap checks input shape before any storage access
func validateCreateSwap(in CreateSwapInput) error {
	if in.RequesterID == "" || in.ItemID == "" {
		return fmt.Errorf("service: %w - missing requesterID or itemID", exchangeerrors.ErrValidation)
	}
	if len(in.Message) > MaxMessageLength {
		return fmt.Errorf("service: %w - message exceeds %d characters", exchangeerrors.ErrValidation, MaxMessageLength)
	}

	switch in.Type {
	case model.SwapDirect:
		if in.OfferedItemID == "" {
			return fmt.Errorf("service: %w - direct swap requires an offered item", exchangeerrors.ErrValidation)
		}
		if in.PointsOffered != 0 {
			return fmt.Errorf("service: %w - direct swap cannot offer points", exchangeerrors.ErrValidation)
		}
	case model.SwapPoints:
		if in.PointsOffered <= 0 {
			return fmt.Errorf("service: %w - points swap requires a positive points offer", exchangeerrors.ErrValidation)
		}
		if in.OfferedItemID != "" {
			return fmt.Errorf("service: %w - points swap cannot offer an item", exchangeerrors.ErrValidation)
		}
	default:
		return fmt.Errorf("service: %w - type must be direct or points", exchangeerrors.ErrValidation)
	}
	return nil
}

// RespondToSwap applies the owner's accept/reject decision. Acceptance
// settles in the same atomic step: items transition, points transfer,
// and the swap reaches completed together or the call fails with the
// pre-call state intact.
func (s *SwapService) RespondToSwap(swapID, ownerID, decision string) (model.Swap, error) {
	if swapID == "" || ownerID == "" {
		return model.Swap{}, fmt.Errorf("service: %w - missing swapID or ownerID", exchangeerrors.ErrValidation)
	}
	if decision != model.SwapStatusAccepted && decision != model.SwapStatusRejected {
		return model.Swap{}, fmt.Errorf("service: %w - decision must be accepted or rejected", exchangeerrors.ErrValidation)
	}

	swap, err := s.repo.ResolveSwap(swapID, ownerID, decision)
	if err != nil {
		return model.Swap{}, fmt.Errorf("service: failed to resolve swap %s: %w", swapID, err)
	}

	metrics.SwapsResolved.WithLabelValues(swap.Type, decision).Inc()
	return swap, nil
}

// GetUserSwaps returns the swaps a user has sent and received, newest first
func (s *SwapService) GetUserSwaps(userID string) (model.UserSwaps, error) {
	if userID == "" {
		return model.UserSwaps{}, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrValidation)
	}

	sent, err := s.repo.ListSwapsByRequester(userID)
	if err != nil {
		return model.UserSwaps{}, fmt.Errorf("service: failed to get sent swaps for user %s: %w", userID, err)
	}

	received, err := s.repo.ListSwapsByOwner(userID)
	if err != nil {
		return model.UserSwaps{}, fmt.Errorf("service: failed to get received swaps for user %s: %w", userID, err)
	}

	return model.UserSwaps{Sent: sent, Received: received}, nil
}
