package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	claimdomain "github.com/reclaimhq/reclaim/internal/claim/domain"
)

type ClaimUpdateRequest struct {
	Status       string `json:"status" binding:"required,oneof=pending approved denied needs_info returned"`
	DenialReason string `json:"denial_reason" binding:"omitempty,max=250"`
}

func (s *Server) ListClaims(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	claims, err := s.claimSvc.List(c.Request.Context(), p.UserID, c.Param("locationId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims})
}

func (s *Server) UpdateClaim(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ClaimUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.claimSvc.UpdateStatus(c.Request.Context(), claimdomain.UpdateClaimRequest{
		UserID:       p.UserID,
		LocationID:   c.Param("locationId"),
		ID:           c.Param("claimId"),
		Status:       req.Status,
		DenialReason: req.DenialReason,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
