package server

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reclaimhq/reclaim/internal/principal"
	"go.uber.org/zap"
)

// AuthRequired resolves the session cookie into a principal. A missing
// cookie and a rejected token both come back as 401; only the logs tell
// them apart.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		user, err := s.authsvc.GetUser(c.Request.Context(), session.UserID)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := principal.WithPrincipal(c.Request.Context(), principal.Principal{
			UserID: user.ID,
			Email:  user.Email,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) principalFrom(c *gin.Context) (principal.Principal, bool) {
	return principal.FromContext(c.Request.Context())
}

// CronSecretRequired guards the platform cron endpoints with a shared
// bearer secret. An unset secret disables the endpoint entirely.
func (s *Server) CronSecretRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := s.cfg.CronSecret
		if secret == "" {
			AbortWithError(c, ErrNotFound)
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		presented, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(presented)), []byte(secret)) != 1 {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Next()
	}
}

// PublicRateLimit throttles unauthenticated submissions per client IP.
// The limiter is optional; without one every request passes. A limiter
// backend fault fails open so Redis downtime never blocks customers.
func (s *Server) PublicRateLimit(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.publicLimiter.Enabled() {
			c.Next()
			return
		}

		allowed, retryAfter, err := s.publicLimiter.Allow(c.Request.Context(), endpoint, c.ClientIP())
		if err != nil {
			s.log.Warn("rate limiter unavailable", zap.String("endpoint", endpoint), zap.Error(err))
			c.Next()
			return
		}
		if allowed {
			c.Next()
			return
		}

		s.metrics.RecordRateLimitDenied(endpoint)
		seconds := int(retryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		c.Header("Retry-After", strconv.Itoa(seconds))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{
			Error: errorPayload{
				Type:    "rate_limited",
				Message: "too many requests",
			},
		})
	}
}
