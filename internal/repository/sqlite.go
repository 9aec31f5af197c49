package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"

	_ "modernc.org/sqlite"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    points        INTEGER NOT NULL CHECK (points >= 0),
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
    created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    category    TEXT NOT NULL,
    type        TEXT NOT NULL,
    size        TEXT NOT NULL,
    condition   TEXT NOT NULL,
    tags        TEXT NOT NULL DEFAULT '[]',
    images      TEXT NOT NULL DEFAULT '[]',
    uploader_id TEXT NOT NULL REFERENCES users(id),
    point_value INTEGER NOT NULL CHECK (point_value > 0),
    status      TEXT NOT NULL CHECK (status IN ('available', 'pending', 'swapped', 'removed')),
    is_approved INTEGER NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL,
    updated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_catalog ON items(category, status, is_approved);
CREATE INDEX IF NOT EXISTS idx_items_uploader ON items(uploader_id);

CREATE TABLE IF NOT EXISTS swaps (
    id              TEXT PRIMARY KEY,
    requester_id    TEXT NOT NULL REFERENCES users(id),
    owner_id        TEXT NOT NULL REFERENCES users(id),
    item_id         TEXT NOT NULL REFERENCES items(id),
    offered_item_id TEXT,
    points_offered  INTEGER NOT NULL DEFAULT 0,
    type            TEXT NOT NULL CHECK (type IN ('direct', 'points')),
    status          TEXT NOT NULL CHECK (status IN ('pending', 'accepted', 'rejected', 'completed')),
    message         TEXT NOT NULL DEFAULT '',
    created_at      DATETIME NOT NULL,
    updated_at      DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_swaps_requester ON swaps(requester_id);
CREATE INDEX IF NOT EXISTS idx_swaps_owner ON swaps(owner_id);
`

// SQLiteRepo is a SQLite-backed implementation of ExchangeDB. The
// multi-entity operations run inside database transactions so their
// check-then-transition sequences are atomic.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo opens (or creates) a SQLite database at path, configures
// pragmas and ensures the schema exists.
func NewSQLiteRepo(path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// Close closes the underlying database handle.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// CreateUser stores a new user, rejecting duplicate email addresses
func (r *SQLiteRepo) CreateUser(user model.User) error {
	var exists int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, user.Email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking email %s: %w", user.Email, err)
	}
	if exists > 0 {
		return fmt.Errorf("create user %s: %w", user.Email, exchangeerrors.ErrEmailTaken)
	}

	_, err = r.db.Exec(
		`INSERT INTO users (id, email, password_hash, name, points, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Email, user.Password, user.Name, user.Points, user.Role, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting user %s: %w", user.Email, err)
	}
	return nil
}

// GetUser returns a user by ID
func (r *SQLiteRepo) GetUser(userID string) (model.User, error) {
	return r.getUser(r.db, `id = ?`, userID)
}

// GetUserByEmail returns a user by email address
func (r *SQLiteRepo) GetUserByEmail(email string) (model.User, error) {
	return r.getUser(r.db, `email = ?`, email)
}

// querier lets user lookups run either on the pool or inside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func (r *SQLiteRepo) getUser(q querier, where string, arg any) (model.User, error) {
	var u model.User
	err := q.QueryRow(
		`SELECT id, email, password_hash, name, points, role, created_at FROM users WHERE `+where, arg,
	).Scan(&u.UserID, &u.Email, &u.Password, &u.Name, &u.Points, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, fmt.Errorf("get user %v: %w", arg, exchangeerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %v: %w", arg, err)
	}
	return u, nil
}

// CreateItem stores a new item listing
func (r *SQLiteRepo) CreateItem(item model.Item) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags for item %s: %w", item.ItemID, err)
	}
	images, err := json.Marshal(item.Images)
	if err != nil {
		return fmt.Errorf("encoding images for item %s: %w", item.ItemID, err)
	}

	_, err = r.db.Exec(
		`INSERT INTO items (id, title, description, category, type, size, condition, tags, images,
		                    uploader_id, point_value, status, is_approved, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.Title, item.Description, item.Category, item.Type, item.Size, item.Condition,
		string(tags), string(images), item.UploaderID, item.PointValue, item.Status,
		boolToInt(item.IsApproved), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting item %s: %w", item.ItemID, err)
	}
	return nil
}

const itemColumns = `id, title, description, category, type, size, condition, tags, images,
                     uploader_id, point_value, status, is_approved, created_at, updated_at`

// GetItem returns an item by ID
func (r *SQLiteRepo) GetItem(itemID string) (model.Item, error) {
	return r.getItem(r.db, itemID)
}

func (r *SQLiteRepo) getItem(q querier, itemID string) (model.Item, error) {
	row := q.QueryRow(`SELECT `+itemColumns+` FROM items WHERE id = ?`, itemID)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

func scanItem(scan func(dest ...any) error) (model.Item, error) {
	var item model.Item
	var tags, images string
	var approved int
	err := scan(&item.ItemID, &item.Title, &item.Description, &item.Category, &item.Type, &item.Size,
		&item.Condition, &tags, &images, &item.UploaderID, &item.PointValue, &item.Status,
		&approved, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return model.Item{}, err
	}
	item.IsApproved = approved != 0
	if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
		return model.Item{}, fmt.Errorf("decoding tags: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &item.Images); err != nil {
		return model.Item{}, fmt.Errorf("decoding images: %w", err)
	}
	return item, nil
}

// ListAvailableItems returns approved, available items matching the
// filter, newest first, along with the total match count before paging.
func (r *SQLiteRepo) ListAvailableItems(filter model.ItemFilter) ([]model.Item, int, error) {
	where := `is_approved = 1 AND status = ?`
	args := []any{model.ItemAvailable}

	if filter.Category != "" {
		where += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Condition != "" {
		where += ` AND condition = ?`
		args = append(args, filter.Condition)
	}
	if filter.Size != "" {
		where += ` AND size = ?`
		args = append(args, filter.Size)
	}
	if filter.Search != "" {
		where += ` AND (title LIKE ? OR description LIKE ? OR tags LIKE ?)`
		needle := "%" + filter.Search + "%"
		args = append(args, needle, needle, needle)
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM items WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(
		`SELECT `+itemColumns+` FROM items WHERE `+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListItemsByUploader returns all items listed by a user, newest first
func (r *SQLiteRepo) ListItemsByUploader(userID string) ([]model.Item, error) {
	rows, err := r.db.Query(
		`SELECT `+itemColumns+` FROM items WHERE uploader_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]model.Item, error) {
	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ApproveItem sets the approval gate on an item. Terminal items cannot
// be approved.
func (r *SQLiteRepo) ApproveItem(itemID string) (model.Item, error) {
	item, err := r.GetItem(itemID)
	if err != nil {
		return model.Item{}, err
	}
	if item.Status == model.ItemSwapped || item.Status == model.ItemRemoved {
		return model.Item{}, fmt.Errorf("approve item %s in status %s: %w", itemID, item.Status, exchangeerrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	res, err := r.db.Exec(
		`UPDATE items SET is_approved = 1, updated_at = ? WHERE id = ? AND status NOT IN (?, ?)`,
		now, itemID, model.ItemSwapped, model.ItemRemoved,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("approving item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, fmt.Errorf("approve item %s: %w", itemID, exchangeerrors.ErrInvalidState)
	}
	return r.GetItem(itemID)
}

// RemoveItem transitions an item to removed (terminal). Only available
// items can be removed: a pending item is held by a live swap request.
func (r *SQLiteRepo) RemoveItem(itemID string) (model.Item, error) {
	item, err := r.GetItem(itemID)
	if err != nil {
		return model.Item{}, err
	}
	if item.Status != model.ItemAvailable {
		return model.Item{}, fmt.Errorf("remove item %s in status %s: %w", itemID, item.Status, exchangeerrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	res, err := r.db.Exec(
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		model.ItemRemoved, now, itemID, model.ItemAvailable,
	)
	if err != nil {
		return model.Item{}, fmt.Errorf("removing item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, fmt.Errorf("remove item %s: %w", itemID, exchangeerrors.ErrInvalidState)
	}
	return r.GetItem(itemID)
}

// CreateSwap validates the swap preconditions and, if they hold,
// persists the swap and transitions the target item to pending in a
// single transaction. The conditional UPDATE on the item status closes
// the read-check-then-write race between concurrent requests.
func (r *SQLiteRepo) CreateSwap(swap model.Swap) (model.Swap, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return model.Swap{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := r.getItem(tx, swap.ItemID)
	if err != nil {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrItemNotAvailable)
	}
	if !item.IsApproved || item.Status != model.ItemAvailable {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrItemNotAvailable)
	}
	if item.UploaderID == swap.RequesterID {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrOwnerCannotSwap)
	}

	switch swap.Type {
	case model.SwapDirect:
		offered, err := r.getItem(tx, swap.OfferedItemID)
		if err != nil || offered.UploaderID != swap.RequesterID || offered.Status != model.ItemAvailable {
			return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrInvalidOfferedItem)
		}
	case model.SwapPoints:
		requester, err := r.getUser(tx, `id = ?`, swap.RequesterID)
		if err != nil || requester.Points < swap.PointsOffered {
			return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrInsufficientPoints)
		}
	default:
		return model.Swap{}, fmt.Errorf("create swap for item %s: unknown type %q: %w", swap.ItemID, swap.Type, exchangeerrors.ErrValidation)
	}

	now := time.Now().UTC()
	res, err := tx.Exec(
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status = ? AND is_approved = 1`,
		model.ItemPending, now, swap.ItemID, model.ItemAvailable,
	)
	if err != nil {
		return model.Swap{}, fmt.Errorf("holding item %s: %w", swap.ItemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Swap{}, fmt.Errorf("create swap for item %s: %w", swap.ItemID, exchangeerrors.ErrItemNotAvailable)
	}

	swap.OwnerID = item.UploaderID
	swap.Status = model.SwapStatusPending

	_, err = tx.Exec(
		`INSERT INTO swaps (id, requester_id, owner_id, item_id, offered_item_id, points_offered,
		                    type, status, message, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		swap.SwapID, swap.RequesterID, swap.OwnerID, swap.ItemID, swap.OfferedItemID,
		swap.PointsOffered, swap.Type, swap.Status, swap.Message, swap.CreatedAt, swap.UpdatedAt,
	)
	if err != nil {
		return model.Swap{}, fmt.Errorf("inserting swap for item %s: %w", swap.ItemID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Swap{}, fmt.Errorf("committing swap for item %s: %w", swap.ItemID, err)
	}
	return swap, nil
}

const swapColumns = `id, requester_id, owner_id, item_id, offered_item_id, points_offered,
                     type, status, message, created_at, updated_at`

// GetSwap returns a swap by ID
func (r *SQLiteRepo) GetSwap(swapID string) (model.Swap, error) {
	return r.getSwap(r.db, swapID)
}

func (r *SQLiteRepo) getSwap(q querier, swapID string) (model.Swap, error) {
	var s model.Swap
	var offered sql.NullString
	err := q.QueryRow(`SELECT `+swapColumns+` FROM swaps WHERE id = ?`, swapID).Scan(
		&s.SwapID, &s.RequesterID, &s.OwnerID, &s.ItemID, &offered, &s.PointsOffered,
		&s.Type, &s.Status, &s.Message, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, exchangeerrors.ErrSwapNotFound)
	}
	if err != nil {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, err)
	}
	s.OfferedItemID = offered.String
	return s, nil
}

// ResolveSwap applies the owner's decision to a pending swap inside a
// single transaction. The conditional UPDATE on the swap status ensures
// at most one concurrent response wins; acceptance settles in the same
// transaction so no accepted-but-unsettled state is ever persisted.
func (r *SQLiteRepo) ResolveSwap(swapID, ownerID, decision string) (model.Swap, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return model.Swap{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	swap, err := r.getSwap(tx, swapID)
	if err != nil {
		return model.Swap{}, err
	}
	if swap.OwnerID != ownerID {
		return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrUnauthorized)
	}
	if swap.Status != model.SwapStatusPending {
		return model.Swap{}, fmt.Errorf("resolve swap %s in status %s: %w", swapID, swap.Status, exchangeerrors.ErrSwapNotPending)
	}

	now := time.Now().UTC()

	// Claim the swap; losing a concurrent race surfaces as not-pending.
	var final string
	switch decision {
	case model.SwapStatusRejected:
		final = model.SwapStatusRejected
	case model.SwapStatusAccepted:
		final = model.SwapStatusCompleted
	default:
		return model.Swap{}, fmt.Errorf("resolve swap %s: unknown decision %q: %w", swapID, decision, exchangeerrors.ErrValidation)
	}

	if decision == model.SwapStatusAccepted {
		item, err := r.getItem(tx, swap.ItemID)
		if err != nil || item.Status != model.ItemPending {
			return model.Swap{}, fmt.Errorf("resolve swap %s: target item %s: %w", swapID, swap.ItemID, exchangeerrors.ErrInvalidState)
		}

		switch swap.Type {
		case model.SwapDirect:
			offered, err := r.getItem(tx, swap.OfferedItemID)
			if err != nil || offered.UploaderID != swap.RequesterID || offered.Status != model.ItemAvailable {
				return model.Swap{}, fmt.Errorf("resolve swap %s: offered item %s: %w", swapID, swap.OfferedItemID, exchangeerrors.ErrInvalidOfferedItem)
			}
			if err := transitionItem(tx, swap.OfferedItemID, model.ItemAvailable, model.ItemSwapped, now); err != nil {
				return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, err)
			}
		case model.SwapPoints:
			requester, err := r.getUser(tx, `id = ?`, swap.RequesterID)
			if err != nil || requester.Points < swap.PointsOffered {
				return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrInsufficientPoints)
			}
			res, err := tx.Exec(
				`UPDATE users SET points = points - ? WHERE id = ? AND points >= ?`,
				swap.PointsOffered, swap.RequesterID, swap.PointsOffered,
			)
			if err != nil {
				return model.Swap{}, fmt.Errorf("debiting requester %s: %w", swap.RequesterID, err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrInsufficientPoints)
			}
			if _, err := tx.Exec(
				`UPDATE users SET points = points + ? WHERE id = ?`,
				swap.PointsOffered, swap.OwnerID,
			); err != nil {
				return model.Swap{}, fmt.Errorf("crediting owner %s: %w", swap.OwnerID, err)
			}
		}

		if err := transitionItem(tx, swap.ItemID, model.ItemPending, model.ItemSwapped, now); err != nil {
			return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, err)
		}
	} else {
		if err := transitionItem(tx, swap.ItemID, model.ItemPending, model.ItemAvailable, now); err != nil {
			return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, err)
		}
	}

	res, err := tx.Exec(
		`UPDATE swaps SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		final, now, swapID, model.SwapStatusPending,
	)
	if err != nil {
		return model.Swap{}, fmt.Errorf("updating swap %s: %w", swapID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Swap{}, fmt.Errorf("resolve swap %s: %w", swapID, exchangeerrors.ErrSwapNotPending)
	}

	if err := tx.Commit(); err != nil {
		return model.Swap{}, fmt.Errorf("committing swap %s: %w", swapID, err)
	}

	swap.Status = final
	swap.UpdatedAt = now
	return swap, nil
}

// transitionItem performs a conditional status update keyed on the
// expected prior state.
func transitionItem(q querier, itemID, from, to string, now time.Time) error {
	res, err := q.Exec(
		`UPDATE items SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		to, now, itemID, from,
	)
	if err != nil {
		return fmt.Errorf("transitioning item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("transition item %s from %s: %w", itemID, from, exchangeerrors.ErrInvalidState)
	}
	return nil
}

// ListSwapsByRequester returns swaps a user sent, newest first
func (r *SQLiteRepo) ListSwapsByRequester(userID string) ([]model.Swap, error) {
	return r.listSwaps(`requester_id = ?`, userID)
}

// ListSwapsByOwner returns swaps a user received, newest first
func (r *SQLiteRepo) ListSwapsByOwner(userID string) ([]model.Swap, error) {
	return r.listSwaps(`owner_id = ?`, userID)
}

func (r *SQLiteRepo) listSwaps(where, userID string) ([]model.Swap, error) {
	rows, err := r.db.Query(
		`SELECT `+swapColumns+` FROM swaps WHERE `+where+` ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing swaps for user %s: %w", userID, err)
	}
	defer rows.Close()

	swaps := make([]model.Swap, 0)
	for rows.Next() {
		var s model.Swap
		var offered sql.NullString
		if err := rows.Scan(&s.SwapID, &s.RequesterID, &s.OwnerID, &s.ItemID, &offered, &s.PointsOffered,
			&s.Type, &s.Status, &s.Message, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning swap: %w", err)
		}
		s.OfferedItemID = offered.String
		swaps = append(swaps, s)
	}
	return swaps, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
