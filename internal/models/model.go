package models

import "time"

// Item lifecycle statuses.
const (
	ItemAvailable = "available"
	ItemPending   = "pending"
	ItemSwapped   = "swapped"
	ItemRemoved   = "removed"
)

// Swap types.
const (
	SwapDirect = "direct"
	SwapPoints = "points"
)

// Swap statuses.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// StartingPoints is the balance granted to every new account.
const StartingPoints = 100

// User represents a marketplace participant with a points balance
type User struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Item represents a listed garment
type Item struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Size        string    `json:"size"`
	Condition   string    `json:"condition"`
	Tags        []string  `json:"tags,omitempty"`
	Images      []string  `json:"images"`
	UploaderID  string    `json:"uploader_id"`
	PointValue  int       `json:"point_value"`
	Status      string    `json:"status"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Swap represents a swap request between two users. Exactly one of
// OfferedItemID (direct) or PointsOffered (points) is set.
type Swap struct {
	SwapID        string    `json:"swap_id"`
	RequesterID   string    `json:"requester_id"`
	OwnerID       string    `json:"owner_id"`
	ItemID        string    `json:"item_id"`
	OfferedItemID string    `json:"offered_item_id,omitempty"`
	PointsOffered int       `json:"points_offered,omitempty"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ItemFilter narrows catalog listings. Zero values mean "no filter".
type ItemFilter struct {
	Category  string
	Condition string
	Size      string
	Search    string
	Page      int
	Limit     int
}

// ItemPage is one page of catalog results
type ItemPage struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Pages int    `json:"pages"`
}

// UserSwaps holds a user's swap requests, newest first
type UserSwaps struct {
	Sent     []Swap `json:"sent"`
	Received []Swap `json:"received"`
}
