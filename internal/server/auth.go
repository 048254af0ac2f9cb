package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	authdomain "github.com/reclaimhq/reclaim/internal/auth/domain"
	"github.com/reclaimhq/reclaim/internal/principal"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

func toUserResponse(user *authdomain.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Email:       user.Email,
		ConfirmedAt: user.ConfirmedAt,
	}
}

func (s *Server) Signup(c *gin.Context) {
	var req SignupRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.authsvc.SignUp(c.Request.Context(), authdomain.SignUpRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(result.User))
}

func (s *Server) ConfirmEmail(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		AbortWithError(c, newValidationError("token", "required", "token is required"))
		return
	}

	if _, err := s.authsvc.ConfirmEmail(c.Request.Context(), token); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, s.cfg.AppDomain+"/login?confirmed=1")
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, toUserResponse(result.User))
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.sessions.ReadToken(c); ok {
		err := s.authsvc.Logout(c.Request.Context(), token)
		// A stale or unknown cookie still gets cleared; only store
		// faults abort the logout.
		if err != nil &&
			!errors.Is(err, authdomain.ErrInvalidSession) &&
			!errors.Is(err, authdomain.ErrSessionNotFound) {
			AbortWithError(c, err)
			return
		}
	}

	s.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) Me(c *gin.Context) {
	p, ok := principal.FromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.authsvc.GetUser(c.Request.Context(), p.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) StartTestDrive(c *gin.Context) {
	result, err := s.authsvc.StartTestDrive(c.Request.Context(), c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)
	c.JSON(http.StatusOK, toUserResponse(result.User))
}
