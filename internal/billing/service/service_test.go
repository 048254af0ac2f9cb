package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/billing/domain"
	"github.com/reclaimhq/reclaim/internal/billing/stripe"
	"github.com/reclaimhq/reclaim/internal/config"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeBillingRepo struct {
	record *domain.SubscriptionRecord
	owned  *domain.SubscriptionRecord
}

func (f *fakeBillingRepo) Upsert(ctx context.Context, db *gorm.DB, record *domain.SubscriptionRecord) error {
	return nil
}

func (f *fakeBillingRepo) FindByLocation(ctx context.Context, db *gorm.DB, locationID uuid.UUID) (*domain.SubscriptionRecord, error) {
	return f.record, nil
}

func (f *fakeBillingRepo) FindOwnedByLocation(ctx context.Context, db *gorm.DB, userID, locationID uuid.UUID) (*domain.SubscriptionRecord, error) {
	return f.owned, nil
}

type fakeLocationRepo struct {
	found *locationdomain.Location
}

func (f *fakeLocationRepo) Insert(ctx context.Context, db *gorm.DB, location *locationdomain.Location) error {
	return nil
}

func (f *fakeLocationRepo) FindByID(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*locationdomain.Location, error) {
	return f.found, nil
}

func (f *fakeLocationRepo) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*locationdomain.Location, error) {
	return nil, nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, location *locationdomain.Location) (int64, error) {
	return 0, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeLocationRepo) Exists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	return f.found != nil, nil
}

func newTestService(repo *fakeBillingRepo, locations *fakeLocationRepo, client *stripe.Client) domain.Service {
	return New(Params{
		Log:          zap.NewNop(),
		Cfg:          config.Config{AppDomain: "https://app.example.com"},
		Repo:         repo,
		LocationRepo: locations,
		Stripe:       client,
	})
}

func ownedLocationFixture(userID uuid.UUID) *locationdomain.Location {
	return &locationdomain.Location{ID: uuid.New(), UserID: userID, Name: "Depot"}
}

func TestStatusValidSubscription(t *testing.T) {
	userID := uuid.New()
	repo := &fakeBillingRepo{record: &domain.SubscriptionRecord{ID: 1}}
	svc := newTestService(repo, &fakeLocationRepo{found: ownedLocationFixture(userID)}, nil)

	subscribed, err := svc.Status(context.Background(), userID, uuid.NewString())

	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestStatusForeignLocationLooksMissing(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{}, &fakeLocationRepo{}, nil)

	_, err := svc.Status(context.Background(), uuid.New(), uuid.NewString())

	assert.ErrorIs(t, err, locationdomain.ErrNotFound)
}

func TestStatusCanceledPastPeriod(t *testing.T) {
	userID := uuid.New()
	canceled := time.Now().UTC().Add(-48 * time.Hour)
	ended := time.Now().UTC().Add(-24 * time.Hour)
	repo := &fakeBillingRepo{record: &domain.SubscriptionRecord{
		ID:               1,
		CanceledAt:       &canceled,
		CurrentPeriodEnd: &ended,
	}}
	svc := newTestService(repo, &fakeLocationRepo{found: ownedLocationFixture(userID)}, nil)

	subscribed, err := svc.Status(context.Background(), userID, uuid.NewString())

	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestDetailsMissingIsNotFound(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{}, &fakeLocationRepo{}, nil)

	_, err := svc.Details(context.Background(), uuid.New(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetailsReturnsOwnedRecord(t *testing.T) {
	repo := &fakeBillingRepo{owned: &domain.SubscriptionRecord{ID: 7, StripeCustomerID: "cus_1"}}
	svc := newTestService(repo, &fakeLocationRepo{}, nil)

	record, err := svc.Details(context.Background(), uuid.New(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "cus_1", record.StripeCustomerID)
}

func TestDetailsMalformedLocationID(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{}, &fakeLocationRepo{}, nil)

	_, err := svc.Details(context.Background(), uuid.New(), "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidLocationID)
}

func TestCreateCheckoutSessionTagsLocationMetadata(t *testing.T) {
	userID := uuid.New()

	var checkoutForm map[string]string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/prices":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]string{{"id": "price_123"}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/v1/checkout/sessions":
			require.NoError(t, r.ParseForm())
			checkoutForm = map[string]string{
				"price":       r.PostForm.Get("line_items[0][price]"),
				"location_id": r.PostForm.Get("subscription_data[metadata][location_id]"),
				"email":       r.PostForm.Get("customer_email"),
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":  "cs_1",
				"url": "https://checkout.stripe.test/cs_1",
			})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer stub.Close()

	location := ownedLocationFixture(userID)
	svc := newTestService(
		&fakeBillingRepo{},
		&fakeLocationRepo{found: location},
		stripe.NewClientWithBaseURL("sk_test", stub.URL),
	)

	url, err := svc.CreateCheckoutSession(context.Background(), domain.CheckoutSessionRequest{
		UserID:         userID,
		LocationID:     location.ID.String(),
		PriceLookupKey: "standard_monthly",
		CustomerEmail:  "owner@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_1", url)
	assert.Equal(t, "price_123", checkoutForm["price"])
	assert.Equal(t, location.ID.String(), checkoutForm["location_id"])
	assert.Equal(t, "owner@example.com", checkoutForm["email"])
}

func TestCreateCheckoutSessionUnknownPrice(t *testing.T) {
	userID := uuid.New()
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]string{}})
	}))
	defer stub.Close()

	svc := newTestService(
		&fakeBillingRepo{},
		&fakeLocationRepo{found: ownedLocationFixture(userID)},
		stripe.NewClientWithBaseURL("sk_test", stub.URL),
	)

	_, err := svc.CreateCheckoutSession(context.Background(), domain.CheckoutSessionRequest{
		UserID:         userID,
		LocationID:     uuid.NewString(),
		PriceLookupKey: "missing_key",
	})

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestCreatePortalSessionRequiresMirroredCustomer(t *testing.T) {
	svc := newTestService(&fakeBillingRepo{}, &fakeLocationRepo{}, nil)

	_, err := svc.CreatePortalSession(context.Background(), domain.PortalSessionRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePortalSessionReturnsURL(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/billing_portal/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cus_1", r.PostForm.Get("customer"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":  "bps_1",
			"url": "https://portal.stripe.test/bps_1",
		})
	}))
	defer stub.Close()

	repo := &fakeBillingRepo{owned: &domain.SubscriptionRecord{ID: 7, StripeCustomerID: "cus_1"}}
	svc := newTestService(repo, &fakeLocationRepo{}, stripe.NewClientWithBaseURL("sk_test", stub.URL))

	url, err := svc.CreatePortalSession(context.Background(), domain.PortalSessionRequest{
		UserID:     uuid.New(),
		LocationID: uuid.NewString(),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://portal.stripe.test/bps_1", url)
}
