package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	claimdomain "github.com/reclaimhq/reclaim/internal/claim/domain"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"go.uber.org/zap"
)

type PublicClaimRequest struct {
	LocationID   string `json:"location_id" binding:"required,uuid"`
	ItemID       string `json:"item_id" binding:"required"`
	FirstName    string `json:"first_name" binding:"required,max=45"`
	LastName     string `json:"last_name" binding:"required,max=45"`
	Email        string `json:"email" binding:"required,email"`
	ClaimDetails string `json:"claim_details" binding:"required,max=250"`
}

type InterestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetPublicLocation is the existence probe the customer page loads
// first. It never reveals owner details, only whether the listing is
// unlocked.
func (s *Server) GetPublicLocation(c *gin.Context) {
	raw := c.Param("locationId")
	locationID, err := uuid.Parse(raw)
	if err != nil {
		AbortWithError(c, locationdomain.ErrInvalidID)
		return
	}

	exists, err := s.locationSvc.Exists(c.Request.Context(), raw)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !exists {
		AbortWithError(c, locationdomain.ErrNotFound)
		return
	}

	subscribed, err := s.billingSvc.LocationSubscribed(c.Request.Context(), locationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         locationID,
		"subscribed": subscribed,
	})
}

// requirePublishedLocation gates the public listing on a valid
// subscription. A locked page is indistinguishable from a missing one.
func (s *Server) requirePublishedLocation(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("locationId")
	locationID, err := uuid.Parse(raw)
	if err != nil {
		AbortWithError(c, locationdomain.ErrInvalidID)
		return uuid.Nil, false
	}

	subscribed, err := s.billingSvc.LocationSubscribed(c.Request.Context(), locationID)
	if err != nil {
		AbortWithError(c, err)
		return uuid.Nil, false
	}
	if !subscribed {
		AbortWithError(c, locationdomain.ErrNotFound)
		return uuid.Nil, false
	}

	return locationID, true
}

func (s *Server) ListPublicItems(c *gin.Context) {
	locationID, ok := s.requirePublishedLocation(c)
	if !ok {
		return
	}

	items, err := s.itemSvc.ListPublished(c.Request.Context(), locationID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) GetPublicItem(c *gin.Context) {
	locationID, ok := s.requirePublishedLocation(c)
	if !ok {
		return
	}

	found, err := s.itemSvc.GetPublished(c.Request.Context(), locationID.String(), c.Param("itemId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (s *Server) SubmitClaim(c *gin.Context) {
	var req PublicClaimRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	submitted, err := s.claimSvc.Submit(c.Request.Context(), claimdomain.SubmitClaimRequest{
		LocationID:   req.LocationID,
		ItemID:       req.ItemID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		ClaimDetails: req.ClaimDetails,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submitted)
}

func (s *Server) RegisterInterest(c *gin.Context) {
	var req InterestRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	registered, err := s.interestSvc.Register(c.Request.Context(), req.Email)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, registered)
}

// ResetTestItems backs the daily platform cron. The same purge runs on
// the in-process ticker; the endpoint exists for hosts without
// long-lived workers.
func (s *Server) ResetTestItems(c *gin.Context) {
	if err := s.resetWorker.RunOnce(c.Request.Context()); err != nil {
		s.log.Error("test drive reset via cron failed", zap.Error(err))
		AbortWithError(c, ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
