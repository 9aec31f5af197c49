package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"
)

// ExchangeDB defines the storage interface for the exchange system.
// CreateSwap and ResolveSwap are atomic: every precondition check and
// every state transition they perform becomes visible together or not
// at all.
type ExchangeDB interface {
	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)

	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListAvailableItems(filter model.ItemFilter) ([]model.Item, int, error)
	ListItemsByUploader(userID string) ([]model.Item, error)
	ApproveItem(itemID string) (model.Item, error)
	RemoveItem(itemID string) (model.Item, error)

	CreateSwap(swap model.Swap) (model.Swap, error)
	GetSwap(swapID string) (model.Swap, error)
	ResolveSwap(swapID, ownerID, decision string) (model.Swap, error)
	ListSwapsByRequester(userID string) ([]model.Swap, error)
	ListSwapsByOwner(userID string) ([]model.Swap, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of ExchangeDB.
// A single mutex serializes every multi-entity operation, so the
// check-then-transition sequences in CreateSwap and ResolveSwap cannot
// interleave.
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User  // key: userID
	usersByEmail map[string]string      // key: email -> userID
	items        map[string]model.Item  // key: itemID
	itemOrder    []string               // itemIDs in insertion order
	swaps        map[string]model.Swap  // key: swapID
	swapOrder    []string               // swapIDs in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
		items:        make(map[string]model.Item),
		swaps:        make(map[string]model.Swap),
	}
}

// CreateUser stores a new user, rejecting duplicate email addresses
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usersByEmail[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, exchangeerrors.ErrEmailTaken)
	}

	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, exchangeerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns a user by email address
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, exchangeerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// CreateItem stores a new item listing
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ItemID] = item
	r.itemOrder = append(r.itemOrder, item.ItemID)
	return nil
}

// GetItem returns an item by ID
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListAvailableItems returns approved, available items matching the
// filter, newest first, along with the total match count before paging.
func (r *MemoryRepo) ListAvailableItems(filter model.ItemFilter) ([]model.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Item, 0)
	for i := len(r.itemOrder) - 1; i >= 0; i-- {
		item := r.items[r.itemOrder[i]]
		if !item.IsApproved || item.Status != model.ItemAvailable {
			continue
		}
		if !matchesFilter(item, filter) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	start := (page - 1) * limit
	if start >= total {
		return []model.Item{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesFilter(item model.Item, filter model.ItemFilter) bool {
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}
	if filter.Condition != "" && item.Condition != filter.Condition {
		return false
	}
	if filter.Size != "" && item.Size != filter.Size {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}
	return true
}

// ListItemsByUploader returns all items listed by a user, newest first
func (r *MemoryRepo) ListItemsByUploader(userID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0)
	for i := len(r.itemOrder) - 1; i >= 0; i-- {
		item := r.items[r.itemOrder[i]]
		if item.UploaderID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// ApproveItem sets the approval gate on an item. Terminal items cannot
// be approved.
func (r *MemoryRepo) ApproveItem(itemID string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("approve item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if item.Status == model.ItemSwapped || item.Status == model.ItemRemoved {
		return model.Item{}, fmt.Errorf("approve item %s in status %s: %w", itemID, item.Status, exchangeerrors.ErrInvalidState)
	}

	item.IsApproved = true
	item.UpdatedAt = time.Now().UTC()
	r.items[itemID] = item
	return item, nil
}

// RemoveItem transitions an item to removed (terminal). Only available
// items can be removed: a pending item is held by a live swap request.
func (r *MemoryRepo) RemoveItem(itemID string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("remove item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if item.Status != model.ItemAvailable {
		return model.Item{}, fmt.Errorf("remove item %s in status %s: %w", itemID, item.Status, exchangeerrors.ErrInvalidState)
	}

	item.Status = model.ItemRemoved
	item.UpdatedAt = time.Now().UTC()
	r.items[itemID] = item
	return item, nil
}

// CreateSwap validates the swap preconditions and, if they hold,
// persists the swap and transitions the target item to pending in one
// atomic step. The checks run in a fixed order so the first violation
// wins even under concurrent callers.
func (r *MemoryRepo) CreateSwap(swap model.Swap) (model.Swap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[swap.ItemID]
	if !ok || !item.IsApproved || item.Status != model.ItemAvailable {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrItemNotAvailable)
	}
	if item.UploaderID == swap.RequesterID {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrOwnerCannotSwap)
	}

	switch swap.Type {
	case model.SwapDirect:
		offered, ok := r.items[swap.OfferedItemID]
		if !ok || offered.UploaderID != swap.RequesterID || offered.Status != model.ItemAvailable {
			return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrInvalidOfferedItem)
		}
	case model.SwapPoints:
		requester, ok := r.users[swap.RequesterID]
		if !ok || requester.Points < swap.PointsOffered {
			return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrInsufficientPoints)
		}
	default:
		return model.Swap{}, fmt.Errorf("create swap for item %s: unknown type %q: %w", swap.ItemID, swap.Type, exchangeerrors.ErrValidation)
	}

	swap.OwnerID = item.UploaderID
	swap.Status = model.SwapStatusPending

	item.Status = model.ItemPending
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ItemID] = item

	r.swaps[swap.SwapID] = swap
	r.swapOrder = append(r.swapOrder, swap.SwapID)
	return swap, nil
}

// GetSwap returns a swap by ID
func (r *MemoryRepo) GetSwap(swapID string) (model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swap, ok := r.swaps[swapID]
	if !ok {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, exchangeerrors.ErrSwapNotFound)
	}
	return swap, nil
}

// ResolveSwap applies the owner's decision to a pending swap. Rejection
// returns the target item to the pool. Acceptance settles immediately:
// the pending guard, the settlement-time re-checks, the item transitions
// and the points transfer all apply atomically, so a swap can never rest
// in an accepted-but-unsettled state and no swap settles twice.
func (r *MemoryRepo) ResolveSwap(swapID, ownerID, decision string) (model.Swap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	swap, ok := r.swaps[swapID]
	if !ok {
		return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrSwapNotFound)
	}
	if swap.OwnerID != ownerID {
		return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrUnauthorized)
	}
	if swap.Status != model.SwapStatusPending {
		return model.Swap{}, fmt.Errorf("resolve swap %s in status %s: %w", swapID, swap.Status, exchangeerrors.ErrSwapNotPending)
	}

	now := time.Now().UTC()

	if decision == model.SwapStatusRejected {
		if item, ok := r.items[swap.ItemID]; ok && item.Status == model.ItemPending {
			item.Status = model.ItemAvailable
			item.UpdatedAt = now
			r.items[item.ItemID] = item
		}
		swap.Status = model.SwapStatusRejected
		swap.UpdatedAt = now
		r.swaps[swapID] = swap
		return swap, nil
	}

	if decision != model.SwapStatusAccepted {
		return model.Swap{}, fmt.Errorf("resolve swap %s: unknown decision %q: %w", swapID, decision, exchangeerrors.ErrValidation)
	}

	item, ok := r.items[swap.ItemID]
	if !ok || item.Status != model.ItemPending {
		return model.Swap{}, fmt.Errorf("resolve swap %s: target item %s: %w", swapID, swap.ItemID, exchangeerrors.ErrInvalidState)
	}

	switch swap.Type {
	case model.SwapDirect:
		offered, ok := r.items[swap.OfferedItemID]
		if !ok || offered.UploaderID != swap.RequesterID || offered.Status != model.ItemAvailable {
			return model.Swap{}, fmt.Errorf("resolve swap %s: offered item %s: %w", swapID, swap.OfferedItemID, exchangeerrors.ErrInvalidOfferedItem)
		}
		offered.Status = model.ItemSwapped
		offered.UpdatedAt = now
		r.items[offered.ItemID] = offered
	case model.SwapPoints:
		requester, ok := r.users[swap.RequesterID]
		if !ok || requester.Points < swap.PointsOffered {
			return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrInsufficientPoints)
		}
		owner, ok := r.users[swap.OwnerID]
		if !ok {
			return model.Swap{}, fmt.Errorf("resolve swap %s: owner %s: %w", swapID, swap.OwnerID, exchangeerrors.ErrUserNotFound)
		}
		requester.Points -= swap.PointsOffered
		owner.Points += swap.PointsOffered
		r.users[requester.UserID] = requester
		r.users[owner.UserID] = owner
	}

	item.Status = model.ItemSwapped
	item.UpdatedAt = now
	r.items[item.ItemID] = item

	swap.Status = model.SwapStatusCompleted
	swap.UpdatedAt = now
	r.swaps[swapID] = swap
	return swap, nil
}

// ListSwapsByRequester returns swaps a user sent, newest first
func (r *MemoryRepo) ListSwapsByRequester(userID string) ([]model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listSwaps(func(s model.Swap) bool { return s.RequesterID == userID }), nil
}

// ListSwapsByOwner returns swaps a user received, newest first
func (r *MemoryRepo) ListSwapsByOwner(userID string) ([]model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listSwaps(func(s model.Swap) bool { return s.OwnerID == userID }), nil
}

// listSwaps collects matching swaps newest first. Callers hold the lock.
func (r *MemoryRepo) listSwaps(match func(model.Swap) bool) []model.Swap {
	swaps := make([]model.Swap, 0)
	for i := len(r.swapOrder) - 1; i >= 0; i-- {
		if swap := r.swaps[r.swapOrder[i]]; match(swap) {
			swaps = append(swaps, swap)
		}
	}
	sort.SliceStable(swaps, func(i, j int) bool {
		return swaps[i].CreatedAt.After(swaps[j].CreatedAt)
	})
	return swaps
}

// AddUser adds a user to the repository. This method is intended for tests only.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
}

// AddItem adds an item to the repository. This method is intended for tests only.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		r.itemOrder = append(r.itemOrder, item.ItemID)
	}
	r.items[item.ItemID] = item
}
