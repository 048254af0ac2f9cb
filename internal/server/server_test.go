package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	authdomain "github.com/reclaimhq/reclaim/internal/auth/domain"
	"github.com/reclaimhq/reclaim/internal/auth/session"
	billingdomain "github.com/reclaimhq/reclaim/internal/billing/domain"
	claimdomain "github.com/reclaimhq/reclaim/internal/claim/domain"
	"github.com/reclaimhq/reclaim/internal/config"
	interestdomain "github.com/reclaimhq/reclaim/internal/interest/domain"
	itemdomain "github.com/reclaimhq/reclaim/internal/item/domain"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"github.com/reclaimhq/reclaim/internal/testdrive"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSessionToken = "session-token"

// fakeAuthService accepts testSessionToken for one fixed user and
// rejects everything else.
type fakeAuthService struct {
	user *authdomain.User

	loginFn  func(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error)
	signupFn func(ctx context.Context, req authdomain.SignUpRequest) (*authdomain.SignUpResult, error)
	logoutFn func(ctx context.Context, rawToken string) error
	authErr  error
	logouts  int
}

func (f *fakeAuthService) SignUp(ctx context.Context, req authdomain.SignUpRequest) (*authdomain.SignUpResult, error) {
	if f.signupFn != nil {
		return f.signupFn(ctx, req)
	}
	return &authdomain.SignUpResult{User: f.user}, nil
}

func (f *fakeAuthService) ConfirmEmail(ctx context.Context, rawToken string) (*authdomain.User, error) {
	if rawToken != "valid-confirmation" {
		return nil, authdomain.ErrConfirmationNotFound
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.LoginResult, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return nil, authdomain.ErrInvalidCredentials
}

func (f *fakeAuthService) Logout(ctx context.Context, rawToken string) error {
	f.logouts++
	if f.logoutFn != nil {
		return f.logoutFn(ctx, rawToken)
	}
	return nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (*authdomain.Session, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if rawToken != testSessionToken {
		return nil, authdomain.ErrInvalidSession
	}
	return &authdomain.Session{UserID: f.user.ID}, nil
}

func (f *fakeAuthService) GetUser(ctx context.Context, id uuid.UUID) (*authdomain.User, error) {
	if id != f.user.ID {
		return nil, authdomain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeAuthService) StartTestDrive(ctx context.Context, userAgent, ipAddress string) (*authdomain.LoginResult, error) {
	return &authdomain.LoginResult{
		User:      f.user,
		RawToken:  testSessionToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

type fakeLocationService struct {
	calls int

	createFn func(ctx context.Context, req locationdomain.CreateLocationRequest) (locationdomain.Location, error)
	getFn    func(ctx context.Context, req locationdomain.GetLocationRequest) (locationdomain.Location, error)
	deleteFn func(ctx context.Context, req locationdomain.GetLocationRequest) error
	existsFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeLocationService) Create(ctx context.Context, req locationdomain.CreateLocationRequest) (locationdomain.Location, error) {
	f.calls++
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return locationdomain.Location{ID: uuid.New(), UserID: req.UserID, Name: req.Name}, nil
}

func (f *fakeLocationService) List(ctx context.Context, userID uuid.UUID) ([]locationdomain.Location, error) {
	f.calls++
	return []locationdomain.Location{}, nil
}

func (f *fakeLocationService) GetByID(ctx context.Context, req locationdomain.GetLocationRequest) (locationdomain.Location, error) {
	f.calls++
	if f.getFn != nil {
		return f.getFn(ctx, req)
	}
	return locationdomain.Location{}, locationdomain.ErrNotFound
}

func (f *fakeLocationService) Update(ctx context.Context, req locationdomain.UpdateLocationRequest) (locationdomain.Location, error) {
	f.calls++
	return locationdomain.Location{}, locationdomain.ErrNotFound
}

func (f *fakeLocationService) Delete(ctx context.Context, req locationdomain.GetLocationRequest) error {
	f.calls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, req)
	}
	return locationdomain.ErrNotFound
}

func (f *fakeLocationService) Exists(ctx context.Context, id string) (bool, error) {
	f.calls++
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return false, nil
}

type fakeItemService struct {
	calls int

	createFn        func(ctx context.Context, req itemdomain.CreateItemRequest) (itemdomain.Item, error)
	listPublishedFn func(ctx context.Context, locationID string) ([]itemdomain.PublicItem, error)
}

func (f *fakeItemService) Create(ctx context.Context, req itemdomain.CreateItemRequest) (itemdomain.Item, error) {
	f.calls++
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return itemdomain.Item{Title: req.Title}, nil
}

func (f *fakeItemService) List(ctx context.Context, userID uuid.UUID, locationID string) ([]itemdomain.Item, error) {
	f.calls++
	return []itemdomain.Item{}, nil
}

func (f *fakeItemService) GetByID(ctx context.Context, req itemdomain.GetItemRequest) (itemdomain.Item, error) {
	f.calls++
	return itemdomain.Item{}, itemdomain.ErrNotFound
}

func (f *fakeItemService) Update(ctx context.Context, req itemdomain.UpdateItemRequest) (itemdomain.Item, error) {
	f.calls++
	return itemdomain.Item{}, itemdomain.ErrNotFound
}

func (f *fakeItemService) SetVisibility(ctx context.Context, req itemdomain.SetVisibilityRequest) (itemdomain.Item, error) {
	f.calls++
	return itemdomain.Item{IsPublic: req.IsPublic}, nil
}

func (f *fakeItemService) Delete(ctx context.Context, req itemdomain.GetItemRequest) error {
	f.calls++
	return itemdomain.ErrNotFound
}

func (f *fakeItemService) ListPublished(ctx context.Context, locationID string) ([]itemdomain.PublicItem, error) {
	f.calls++
	if f.listPublishedFn != nil {
		return f.listPublishedFn(ctx, locationID)
	}
	return []itemdomain.PublicItem{}, nil
}

func (f *fakeItemService) GetPublished(ctx context.Context, locationID, id string) (itemdomain.PublicItem, error) {
	f.calls++
	return itemdomain.PublicItem{}, itemdomain.ErrNotFound
}

type fakeClaimService struct {
	calls int

	submitFn func(ctx context.Context, req claimdomain.SubmitClaimRequest) (claimdomain.Claim, error)
	updateFn func(ctx context.Context, req claimdomain.UpdateClaimRequest) (claimdomain.Claim, error)
}

func (f *fakeClaimService) Submit(ctx context.Context, req claimdomain.SubmitClaimRequest) (claimdomain.Claim, error) {
	f.calls++
	if f.submitFn != nil {
		return f.submitFn(ctx, req)
	}
	return claimdomain.Claim{Status: claimdomain.StatusPending}, nil
}

func (f *fakeClaimService) List(ctx context.Context, userID uuid.UUID, locationID string) ([]claimdomain.Claim, error) {
	f.calls++
	return []claimdomain.Claim{}, nil
}

func (f *fakeClaimService) UpdateStatus(ctx context.Context, req claimdomain.UpdateClaimRequest) (claimdomain.Claim, error) {
	f.calls++
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}
	return claimdomain.Claim{}, claimdomain.ErrNotFound
}

type fakeInterestService struct {
	calls int
}

func (f *fakeInterestService) Register(ctx context.Context, email string) (interestdomain.InterestedParty, error) {
	f.calls++
	return interestdomain.InterestedParty{EmailAddress: strings.ToLower(email)}, nil
}

type fakeBillingService struct {
	calls int

	statusFn     func(ctx context.Context, userID uuid.UUID, locationID string) (bool, error)
	subscribedFn func(ctx context.Context, locationID uuid.UUID) (bool, error)
}

func (f *fakeBillingService) Status(ctx context.Context, userID uuid.UUID, locationID string) (bool, error) {
	f.calls++
	if f.statusFn != nil {
		return f.statusFn(ctx, userID, locationID)
	}
	return false, nil
}

func (f *fakeBillingService) Details(ctx context.Context, userID uuid.UUID, locationID string) (billingdomain.SubscriptionRecord, error) {
	f.calls++
	return billingdomain.SubscriptionRecord{}, billingdomain.ErrNotFound
}

func (f *fakeBillingService) LocationSubscribed(ctx context.Context, locationID uuid.UUID) (bool, error) {
	f.calls++
	if f.subscribedFn != nil {
		return f.subscribedFn(ctx, locationID)
	}
	return false, nil
}

func (f *fakeBillingService) CreateCheckoutSession(ctx context.Context, req billingdomain.CheckoutSessionRequest) (string, error) {
	f.calls++
	return "https://checkout.example/session", nil
}

func (f *fakeBillingService) CreatePortalSession(ctx context.Context, req billingdomain.PortalSessionRequest) (string, error) {
	f.calls++
	return "https://portal.example/session", nil
}

type fakeWebhookService struct {
	calls    int
	payloads [][]byte
	err      error
}

func (f *fakeWebhookService) Ingest(ctx context.Context, payload []byte, headers http.Header) error {
	f.calls++
	f.payloads = append(f.payloads, payload)
	return f.err
}

type testHarness struct {
	server   *Server
	auth     *fakeAuthService
	location *fakeLocationService
	item     *fakeItemService
	claim    *fakeClaimService
	interest *fakeInterestService
	billing  *fakeBillingService
	webhook  *fakeWebhookService
}

func newTestHarness(t *testing.T, cfg config.Config) *testHarness {
	t.Helper()

	h := &testHarness{
		auth: &fakeAuthService{
			user: &authdomain.User{ID: uuid.New(), Email: "owner@example.com"},
		},
		location: &fakeLocationService{},
		item:     &fakeItemService{},
		claim:    &fakeClaimService{},
		interest: &fakeInterestService{},
		billing:  &fakeBillingService{},
		webhook:  &fakeWebhookService{},
	}

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	h.server = NewServer(ServerParams{
		Gin:         engine,
		Cfg:         cfg,
		Log:         zap.NewNop(),
		Authsvc:     h.auth,
		Sessions:    session.NewManager(cfg),
		LocationSvc: h.location,
		ItemSvc:     h.item,
		ClaimSvc:    h.claim,
		InterestSvc: h.interest,
		BillingSvc:  h.billing,
		WebhookSvc:  h.webhook,
		ResetWorker: testdrive.NewWorker(testdrive.Params{Log: zap.NewNop(), Cfg: cfg}),
	})

	return h
}

func (h *testHarness) do(method, path, body string, authenticated bool, header http.Header) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: testSessionToken})
	}

	recorder := httptest.NewRecorder()
	h.server.Engine().ServeHTTP(recorder, req)
	return recorder
}
