package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/item/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	inserted  []*domain.Item
	owned     *domain.Item
	published []*domain.Item
	affected  int64
}

func (f *fakeRepo) Insert(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	f.inserted = append(f.inserted, item)
	return nil
}

func (f *fakeRepo) FindOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (*domain.Item, error) {
	return f.owned, nil
}

func (f *fakeRepo) ListOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID) ([]*domain.Item, error) {
	if f.owned == nil {
		return nil, nil
	}
	return []*domain.Item{f.owned}, nil
}

func (f *fakeRepo) UpdateOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, item *domain.Item) (int64, error) {
	return f.affected, nil
}

func (f *fakeRepo) SetVisibilityOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID, isPublic bool) (int64, error) {
	return f.affected, nil
}

func (f *fakeRepo) DeleteOwned(ctx context.Context, db *gorm.DB, userID uuid.UUID, locationID uuid.UUID, id snowflake.ID) (int64, error) {
	return f.affected, nil
}

func (f *fakeRepo) FindPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID, id snowflake.ID) (*domain.Item, error) {
	if len(f.published) == 0 {
		return nil, nil
	}
	return f.published[0], nil
}

func (f *fakeRepo) ListPublished(ctx context.Context, db *gorm.DB, locationID uuid.UUID) ([]*domain.Item, error) {
	return f.published, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Item, error) {
	return nil, nil
}

func (f *fakeRepo) DeleteByAddedUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func newTestService(t *testing.T, repo *fakeRepo) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repo,
	})
}

func TestCreateDefaultsToPending(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	item, err := svc.Create(context.Background(), domain.CreateItemRequest{
		LocationID: uuid.NewString(),
		UserID:     uuid.New(),
		Title:      "  Black wallet ",
		Category:   "wallets",
		FoundAt:    "front desk",
		DateFound:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, domain.StatusPending, item.Status)
	assert.Equal(t, "Black wallet", item.Title)
	assert.NotZero(t, item.ID)
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	item, err := svc.Create(context.Background(), domain.CreateItemRequest{
		LocationID: uuid.NewString(),
		UserID:     uuid.New(),
		Title:      "Umbrella",
		Category:   "other",
		FoundAt:    "lobby",
		DateFound:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, item.Status)
}

func TestCreateRejectsMalformedLocationID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), domain.CreateItemRequest{LocationID: "nope"})

	assert.ErrorIs(t, err, domain.ErrInvalidLocationID)
	assert.Empty(t, repo.inserted)
}

func TestGetByIDMissingIsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.GetByID(context.Background(), domain.GetItemRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
		ID:         "42",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByIDRejectsMalformedItemID(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.GetByID(context.Background(), domain.GetItemRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
		ID:         "abc",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestUpdateZeroRowsIsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{affected: 0})

	_, err := svc.Update(context.Background(), domain.UpdateItemRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
		ID:         "42",
		Title:      "Umbrella",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetVisibilityReturnsUpdatedItem(t *testing.T) {
	repo := &fakeRepo{affected: 1, owned: &domain.Item{ID: 42, IsPublic: true}}
	svc := newTestService(t, repo)

	item, err := svc.SetVisibility(context.Background(), domain.SetVisibilityRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
		ID:         "42",
		IsPublic:   true,
	})

	require.NoError(t, err)
	assert.True(t, item.IsPublic)
}

func TestDeleteZeroRowsIsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{affected: 0})

	err := svc.Delete(context.Background(), domain.GetItemRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
		ID:         "42",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPublishedProjectsPublicFields(t *testing.T) {
	repo := &fakeRepo{published: []*domain.Item{
		{ID: 42, Title: "Black wallet", StaffDetails: "engraved initials", IsPublic: true},
	}}
	svc := newTestService(t, repo)

	items, err := svc.ListPublished(context.Background(), uuid.NewString())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Black wallet", items[0].Title)
}
