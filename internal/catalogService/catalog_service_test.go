package catalog

import (
	"strings"
	"testing"

	"rewear/internal/exchangeerrors"
	model "rewear/internal/models"
	"rewear/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func validInput() NewItemInput {
	return NewItemInput{
		Title:       "Denim jacket",
		Description: "A lightly worn denim jacket from the 90s",
		Category:    "clothing",
		Type:        "jacket",
		Size:        "M",
		Condition:   "good",
		Tags:        []string{"denim", "vintage"},
		Images:      []string{"front.jpg", "back.jpg"},
	}
}

// Test CreateItem field validation; none of these may reach the repository
func TestCreateItem_Validation(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name   string
		mutate func(in *NewItemInput)
	}{
		{name: "title_too_short", mutate: func(in *NewItemInput) { in.Title = "ab" }},
		{name: "title_too_long", mutate: func(in *NewItemInput) { in.Title = strings.Repeat("x", TitleMaxLength+1) }},
		{name: "description_too_short", mutate: func(in *NewItemInput) { in.Description = "short" }},
		{name: "description_too_long", mutate: func(in *NewItemInput) { in.Description = strings.Repeat("x", DescriptionMaxLength+1) }},
		{name: "unknown_category", mutate: func(in *NewItemInput) { in.Category = "furniture" }},
		{name: "unknown_condition", mutate: func(in *NewItemInput) { in.Condition = "destroyed" }},
		{name: "missing_size", mutate: func(in *NewItemInput) { in.Size = "" }},
		{name: "missing_type", mutate: func(in *NewItemInput) { in.Type = "" }},
		{name: "no_images", mutate: func(in *NewItemInput) { in.Images = nil }},
		{name: "too_many_images", mutate: func(in *NewItemInput) {
			in.Images = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewCatalogService(repository.NewMockExchangeDB(ctrl))

			in := validInput()
			tc.mutate(&in)

			_, err := service.CreateItem("uploader", in)
			require.ErrorIs(t, err, exchangeerrors.ErrValidation)
		})
	}

	t.Run("empty_uploader", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewCatalogService(repository.NewMockExchangeDB(ctrl))
		_, err := service.CreateItem("", validInput())
		require.ErrorIs(t, err, exchangeerrors.ErrValidation)
	})
}

// Test CreateItem prices the listing and starts it unapproved
func TestCreateItem_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCatalogService(mockRepo)

	var stored model.Item
	mockRepo.EXPECT().CreateItem(gomock.Any()).DoAndReturn(func(item model.Item) error {
		stored = item
		return nil
	})

	item, err := service.CreateItem("uploader", validInput())
	require.NoError(t, err)

	require.NotEmpty(t, item.ItemID)
	require.Equal(t, "uploader", item.UploaderID)
	require.Equal(t, 20, item.PointValue) // clothing x good
	require.Equal(t, model.ItemAvailable, item.Status)
	require.False(t, item.IsApproved)
	require.Equal(t, stored, item)
}

// Test GetItems page normalization
func TestGetItems(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name       string
		filter     model.ItemFilter
		wantFilter model.ItemFilter
		total      int
		wantPages  int
	}{
		{
			name:       "defaults_applied",
			filter:     model.ItemFilter{},
			wantFilter: model.ItemFilter{Page: 1, Limit: DefaultPageLimit},
			total:      25,
			wantPages:  3,
		},
		{
			name:       "limit_capped",
			filter:     model.ItemFilter{Page: 2, Limit: 500},
			wantFilter: model.ItemFilter{Page: 2, Limit: MaxPageLimit},
			total:      60,
			wantPages:  2,
		},
		{
			name:       "negative_page_normalized",
			filter:     model.ItemFilter{Page: -3, Limit: 10},
			wantFilter: model.ItemFilter{Page: 1, Limit: 10},
			total:      0,
			wantPages:  0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockExchangeDB(ctrl)
			service := NewCatalogService(mockRepo)

			mockRepo.EXPECT().ListAvailableItems(tc.wantFilter).Return([]model.Item{}, tc.total, nil)

			page, err := service.GetItems(tc.filter)
			require.NoError(t, err)
			require.Equal(t, tc.total, page.Total)
			require.Equal(t, tc.wantPages, page.Pages)
		})
	}
}

// Test GetItemByID
func TestGetItemByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCatalogService(mockRepo)

	_, err := service.GetItemByID("")
	require.ErrorIs(t, err, exchangeerrors.ErrValidation)

	mockRepo.EXPECT().GetItem("nope").Return(model.Item{}, exchangeerrors.ErrItemNotFound)
	_, err = service.GetItemByID("nope")
	require.ErrorIs(t, err, exchangeerrors.ErrItemNotFound)

	mockRepo.EXPECT().GetItem("item1").Return(model.Item{ItemID: "item1"}, nil)
	item, err := service.GetItemByID("item1")
	require.NoError(t, err)
	require.Equal(t, "item1", item.ItemID)
}

// Test moderation actions require the admin role
func TestModeration_RequiresAdmin(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name    string
		adminID string
		user    model.User
		userErr error
	}{
		{name: "plain_user", adminID: "bob", user: model.User{UserID: "bob", Role: model.RoleUser}},
		{name: "unknown_user", adminID: "ghost", userErr: exchangeerrors.ErrUserNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockExchangeDB(ctrl)
			service := NewCatalogService(mockRepo)

			mockRepo.EXPECT().GetUser(tc.adminID).Return(tc.user, tc.userErr).Times(2)

			_, err := service.ApproveItem("item1", tc.adminID)
			require.ErrorIs(t, err, exchangeerrors.ErrUnauthorized)

			_, err = service.RejectItem("item1", tc.adminID)
			require.ErrorIs(t, err, exchangeerrors.ErrUnauthorized)
		})
	}

	t.Run("empty_admin_id", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewCatalogService(repository.NewMockExchangeDB(ctrl))
		_, err := service.ApproveItem("item1", "")
		require.ErrorIs(t, err, exchangeerrors.ErrValidation)
	})
}

// Test admin moderation happy paths
func TestModeration_Admin(t *testing.T) {
	t.Parallel()

	admin := model.User{UserID: "admin", Role: model.RoleAdmin}

	t.Run("approve", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockExchangeDB(ctrl)
		service := NewCatalogService(mockRepo)

		mockRepo.EXPECT().GetUser("admin").Return(admin, nil)
		mockRepo.EXPECT().ApproveItem("item1").Return(model.Item{ItemID: "item1", IsApproved: true}, nil)

		item, err := service.ApproveItem("item1", "admin")
		require.NoError(t, err)
		require.True(t, item.IsApproved)
	})

	t.Run("reject", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockExchangeDB(ctrl)
		service := NewCatalogService(mockRepo)

		mockRepo.EXPECT().GetUser("admin").Return(admin, nil)
		mockRepo.EXPECT().RemoveItem("item1").Return(model.Item{ItemID: "item1", Status: model.ItemRemoved}, nil)

		item, err := service.RejectItem("item1", "admin")
		require.NoError(t, err)
		require.Equal(t, model.ItemRemoved, item.Status)
	})

	t.Run("reject_held_item_conflicts", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockExchangeDB(ctrl)
		service := NewCatalogService(mockRepo)

		mockRepo.EXPECT().GetUser("admin").Return(admin, nil)
		mockRepo.EXPECT().RemoveItem("item1").Return(model.Item{}, exchangeerrors.ErrInvalidState)

		_, err := service.RejectItem("item1", "admin")
		require.ErrorIs(t, err, exchangeerrors.ErrInvalidState)
	})
}
