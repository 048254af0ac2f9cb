package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
)

type LocationRequest struct {
	Name       string `json:"name" binding:"required,max=45"`
	Address    string `json:"address" binding:"required,max=45"`
	City       string `json:"city" binding:"required,max=45"`
	State      string `json:"state" binding:"required,max=45"`
	PostalCode string `json:"postal_code" binding:"required,len=5,numeric"`
}

func (s *Server) ListLocations(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	locations, err := s.locationSvc.List(c.Request.Context(), p.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (s *Server) CreateLocation(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req LocationRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.locationSvc.Create(c.Request.Context(), locationdomain.CreateLocationRequest{
		UserID:     p.UserID,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) GetLocation(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	found, err := s.locationSvc.GetByID(c.Request.Context(), locationdomain.GetLocationRequest{
		UserID: p.UserID,
		ID:     c.Param("locationId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (s *Server) UpdateLocation(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req LocationRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.locationSvc.Update(c.Request.Context(), locationdomain.UpdateLocationRequest{
		UserID:     p.UserID,
		ID:         c.Param("locationId"),
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteLocation(c *gin.Context) {
	p, ok := s.principalFrom(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	err := s.locationSvc.Delete(c.Request.Context(), locationdomain.GetLocationRequest{
		UserID: p.UserID,
		ID:     c.Param("locationId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
