package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	itemdomain "github.com/reclaimhq/reclaim/internal/item/domain"
)

const dateFoundLayout = "2006-01-02"

type ItemRequest struct {
	Title            string `json:"title" binding:"required,max=25"`
	Category         string `json:"category" binding:"required,oneof=wallets electronics clothing jewelry keys documents bags other"`
	FoundAt          string `json:"found_at" binding:"required,max=25"`
	DateFound        string `json:"date_found" binding:"required"`
	BriefDescription string `json:"brief_description" binding:"max=150"`
	StaffDetails     string `json:"staff_details" binding:"max=150"`
	Status           string `json:"status" binding:"omitempty,oneof=pending active claimed returned donated disposed archived"`
	IsPublic         bool   `json:"is_public"`
}

type ItemVisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

// parseDateFound enforces the calendar window on the reported find
// date: never in the future, never before the epoch of plausible
// records.
func parseDateFound(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateFoundLayout, raw)
	if err != nil {
		return time.Time{}, newValidationError("date_found", "invalid_date", "date_found must be formatted YYYY-MM-DD")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if parsed.After(today) {
		return time.Time{}, newValidationError("date_found", "future_date", "date_found cannot be in the future")
	}
	if parsed.Before(itemdomain.MinDateFound) {
		return time.Time{}, newValidationError("date_found", "too_old", "date_found is before 1900-01-01")
	}

	return parsed, nil
}

func (s *Server) ListItems(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	items, err := s.itemSvc.List(c.Request.Context(), p.UserID, c.Param("locationId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) CreateItem(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ItemRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	dateFound, err := parseDateFound(req.DateFound)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.itemSvc.Create(c.Request.Context(), itemdomain.CreateItemRequest{
		UserID:           p.UserID,
		LocationID:       c.Param("locationId"),
		Title:            req.Title,
		Category:         req.Category,
		FoundAt:          req.FoundAt,
		DateFound:        dateFound,
		BriefDescription: req.BriefDescription,
		StaffDetails:     req.StaffDetails,
		Status:           req.Status,
		IsPublic:         req.IsPublic,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) GetItem(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	found, err := s.itemSvc.GetByID(c.Request.Context(), itemdomain.GetItemRequest{
		UserID:     p.UserID,
		LocationID: c.Param("locationId"),
		ID:         c.Param("itemId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (s *Server) UpdateItem(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ItemRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	dateFound, err := parseDateFound(req.DateFound)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.itemSvc.Update(c.Request.Context(), itemdomain.UpdateItemRequest{
		UserID:           p.UserID,
		LocationID:       c.Param("locationId"),
		ID:               c.Param("itemId"),
		Title:            req.Title,
		Category:         req.Category,
		FoundAt:          req.FoundAt,
		DateFound:        dateFound,
		BriefDescription: req.BriefDescription,
		StaffDetails:     req.StaffDetails,
		Status:           req.Status,
		IsPublic:         req.IsPublic,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) SetItemVisibility(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req ItemVisibilityRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.itemSvc.SetVisibility(c.Request.Context(), itemdomain.SetVisibilityRequest{
		UserID:     p.UserID,
		LocationID: c.Param("locationId"),
		ID:         c.Param("itemId"),
		IsPublic:   *req.IsPublic,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteItem(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	err := s.itemSvc.Delete(c.Request.Context(), itemdomain.GetItemRequest{
		UserID:     p.UserID,
		LocationID: c.Param("locationId"),
		ID:         c.Param("itemId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
