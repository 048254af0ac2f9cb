package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/reclaimhq/reclaim/internal/billing/domain"
)

type CheckoutSessionRequest struct {
	LocationID     string `json:"location_id" binding:"required,uuid"`
	PriceLookupKey string `json:"price_lookup_key" binding:"required"`
}

type PortalSessionRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
}

func (s *Server) GetSubscriptionStatus(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	subscribed, err := s.billingSvc.Status(c.Request.Context(), p.UserID, c.Param("locationId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

func (s *Server) GetSubscriptionDetails(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	record, err := s.billingSvc.Details(c.Request.Context(), p.UserID, c.Param("locationId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) CreateCheckoutSession(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req CheckoutSessionRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	url, err := s.billingSvc.CreateCheckoutSession(c.Request.Context(), billingdomain.CheckoutSessionRequest{
		UserID:         p.UserID,
		LocationID:     req.LocationID,
		PriceLookupKey: req.PriceLookupKey,
		CustomerEmail:  p.Email,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) CreatePortalSession(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req PortalSessionRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	url, err := s.billingSvc.CreatePortalSession(c.Request.Context(), billingdomain.PortalSessionRequest{
		UserID:     p.UserID,
		LocationID: req.LocationID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// HandleStripeWebhook hands the raw body to the reconciler. Signature
// verification runs on the exact bytes received; parsing never happens
// before it.
func (s *Server) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, billingdomain.ErrInvalidPayload)
		return
	}

	if err := s.webhookSvc.Ingest(c.Request.Context(), payload, c.Request.Header); err != nil {
		s.metrics.RecordWebhookEvent("rejected")
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordWebhookEvent("accepted")
	c.JSON(http.StatusOK, gin.H{"received": true})
}
