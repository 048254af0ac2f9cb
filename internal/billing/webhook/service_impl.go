package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/billing/domain"
	"github.com/reclaimhq/reclaim/internal/billing/stripe"
	"github.com/reclaimhq/reclaim/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Only this event type mutates the mirror. Everything else that passes
// verification is acknowledged without a write.
const subscriptionUpdatedEvent = "customer.subscription.updated"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	secret string
	genID  *snowflake.Node
	repo   domain.Repository
}

func NewService(p Params) domain.WebhookService {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("billing.webhook"),
		secret: strings.TrimSpace(p.Cfg.StripeWebhookSecret),
		genID:  p.GenID,
		repo:   p.Repo,
	}
}

type stripeEvent struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Created int64           `json:"created"`
	Data    stripeEventData `json:"data"`
}

type stripeEventData struct {
	Object json.RawMessage `json:"object"`
}

type stripeSubscription struct {
	ID                 string            `json:"id"`
	Customer           string            `json:"customer"`
	CurrentPeriodStart int64             `json:"current_period_start"`
	CurrentPeriodEnd   int64             `json:"current_period_end"`
	CanceledAt         int64             `json:"canceled_at"`
	Metadata           map[string]string `json:"metadata"`
	Items              struct {
		Data []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

// Ingest verifies the delivery against the raw bytes, then mirrors
// subscription state. Once verification passes the delivery is always
// acknowledged: parse gaps and persistence faults are logged, not
// returned, so the provider does not retry observed state.
func (s *Service) Ingest(ctx context.Context, payload []byte, headers http.Header) error {
	if err := stripe.VerifySignature(payload, headers.Get("Stripe-Signature"), s.secret); err != nil {
		return err
	}
	if !json.Valid(payload) {
		return domain.ErrInvalidPayload
	}

	var event stripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return domain.ErrInvalidPayload
	}

	eventType := strings.TrimSpace(event.Type)
	if eventType != subscriptionUpdatedEvent {
		s.log.Debug("webhook event ignored",
			zap.String("event_id", event.ID),
			zap.String("event_type", eventType),
		)
		return nil
	}

	var subscription stripeSubscription
	if err := json.Unmarshal(event.Data.Object, &subscription); err != nil {
		s.log.Warn("webhook subscription unreadable", zap.String("event_id", event.ID))
		return nil
	}

	locationID, err := uuid.Parse(strings.TrimSpace(subscription.Metadata["location_id"]))
	if err != nil || locationID == uuid.Nil {
		s.log.Warn("webhook subscription missing location metadata",
			zap.String("event_id", event.ID),
			zap.String("subscription_id", subscription.ID),
		)
		return nil
	}

	priceID := ""
	if len(subscription.Items.Data) > 0 {
		priceID = subscription.Items.Data[0].Price.ID
	}

	now := time.Now().UTC()
	record := domain.SubscriptionRecord{
		ID:                   s.genID.Generate(),
		LocationID:           locationID,
		StripeCustomerID:     strings.TrimSpace(subscription.Customer),
		StripeSubscriptionID: strings.TrimSpace(subscription.ID),
		StripePriceID:        strings.TrimSpace(priceID),
		CurrentPeriodStart:   epochToTime(subscription.CurrentPeriodStart),
		CurrentPeriodEnd:     epochToTime(subscription.CurrentPeriodEnd),
		CanceledAt:           epochToTime(subscription.CanceledAt),
		LastEvent:            payload,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Upsert(ctx, s.db, &record); err != nil {
		s.log.Error("subscription mirror write failed",
			zap.String("event_id", event.ID),
			zap.String("location_id", locationID.String()),
			zap.Error(err),
		)
		return nil
	}

	s.log.Info("subscription mirrored",
		zap.String("event_id", event.ID),
		zap.String("location_id", locationID.String()),
		zap.String("subscription_id", record.StripeSubscriptionID),
	)
	return nil
}

func epochToTime(value int64) *time.Time {
	if value == 0 {
		return nil
	}
	t := time.Unix(value, 0).UTC()
	return &t
}
