package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	claimdomain "github.com/reclaimhq/reclaim/internal/claim/domain"
	"github.com/reclaimhq/reclaim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemBody(overrides map[string]string) string {
	fields := map[string]string{
		"title":             "Black wallet",
		"category":          "wallets",
		"found_at":          "Front desk",
		"date_found":        "2024-01-15",
		"brief_description": "Leather, well worn",
	}
	for key, value := range overrides {
		fields[key] = value
	}

	body := "{"
	first := true
	for key, value := range fields {
		if !first {
			body += ","
		}
		body += fmt.Sprintf("%q:%q", key, value)
		first = false
	}
	return body + "}"
}

func TestCreateItemSucceeds(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", itemBody(nil), true, nil)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, h.item.calls)
}

func TestCreateItemRejectsUnknownCategory(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := itemBody(map[string]string{"category": "umbrellas"})
	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "category", payload.Errors[0].Field)
	assert.Equal(t, "not_allowed", payload.Errors[0].Code)
	assert.Zero(t, h.item.calls)
}

func TestCreateItemRejectsLongTitle(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := itemBody(map[string]string{"title": "A very descriptive title over the limit"})
	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "title", payload.Errors[0].Field)
	assert.Equal(t, "too_long", payload.Errors[0].Code)
	assert.Zero(t, h.item.calls)
}

func TestCreateItemRejectsFutureDate(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	tomorrow := time.Now().UTC().Add(48 * time.Hour).Format(dateFoundLayout)
	body := itemBody(map[string]string{"date_found": tomorrow})
	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "date_found", payload.Errors[0].Field)
	assert.Equal(t, "future_date", payload.Errors[0].Code)
	assert.Zero(t, h.item.calls)
}

func TestCreateItemRejectsAncientDate(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := itemBody(map[string]string{"date_found": "1899-12-31"})
	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "too_old", payload.Errors[0].Code)
	assert.Zero(t, h.item.calls)
}

func TestCreateItemRejectsUnparseableDate(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := itemBody(map[string]string{"date_found": "15/01/2024"})
	recorder := h.do(http.MethodPost, "/api/v1/locations/"+uuid.NewString()+"/items", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "invalid_date", payload.Errors[0].Code)
	assert.Zero(t, h.item.calls)
}

func TestSetItemVisibilityRequiresFlag(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	path := "/api/v1/locations/" + uuid.NewString() + "/items/1/visibility"

	recorder := h.do(http.MethodPatch, path, `{}`, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "is_public", payload.Errors[0].Field)
	assert.Zero(t, h.item.calls)
}

func TestSetItemVisibilityAcceptsFalse(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	path := "/api/v1/locations/" + uuid.NewString() + "/items/1/visibility"

	recorder := h.do(http.MethodPatch, path, `{"is_public":false}`, true, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, h.item.calls)
}

func TestUpdateClaimRejectsUnknownStatus(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	path := "/api/v1/locations/" + uuid.NewString() + "/claims/1"

	recorder := h.do(http.MethodPatch, path, `{"status":"granted"}`, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "status", payload.Errors[0].Field)
	assert.Zero(t, h.claim.calls)
}

func TestUpdateClaimDenialReasonRequired(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	h.claim.updateFn = func(_ context.Context, req claimdomain.UpdateClaimRequest) (claimdomain.Claim, error) {
		if req.Status == claimdomain.StatusDenied && req.DenialReason == "" {
			return claimdomain.Claim{}, claimdomain.ErrDenialReasonRequired
		}
		return claimdomain.Claim{Status: req.Status}, nil
	}
	path := "/api/v1/locations/" + uuid.NewString() + "/claims/1"

	recorder := h.do(http.MethodPatch, path, `{"status":"denied"}`, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "denial_reason", payload.Errors[0].Field)
}
