package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/reclaimhq/reclaim/internal/config"
	locationdomain "github.com/reclaimhq/reclaim/internal/location/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocationValidationStopsBeforeService(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := `{"name":"","address":"1 Main St","city":"Springfield","state":"IL","postal_code":"abcde"}`
	recorder := h.do(http.MethodPost, "/api/v1/locations", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	assert.Equal(t, "validation_error", payload.Type)
	fields := errorFields(payload)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "postal_code")
	assert.Zero(t, h.location.calls)
}

func TestCreateLocationPostalCodeLength(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := `{"name":"Depot","address":"1 Main St","city":"Springfield","state":"IL","postal_code":"1234"}`
	recorder := h.do(http.MethodPost, "/api/v1/locations", body, true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "postal_code", payload.Errors[0].Field)
	assert.Zero(t, h.location.calls)
}

func TestCreateLocationSucceeds(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	body := `{"name":"Depot","address":"1 Main St","city":"Springfield","state":"IL","postal_code":"62704"}`
	recorder := h.do(http.MethodPost, "/api/v1/locations", body, true, nil)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, h.location.calls)
}

func TestMalformedLocationIDIs400(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	h.location.getFn = func(ctx context.Context, req locationdomain.GetLocationRequest) (locationdomain.Location, error) {
		if _, err := uuid.Parse(req.ID); err != nil {
			return locationdomain.Location{}, locationdomain.ErrInvalidID
		}
		return locationdomain.Location{}, locationdomain.ErrNotFound
	}

	recorder := h.do(http.MethodGet, "/api/v1/locations/not-a-uuid", "", true, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	payload := decodeErrorResponse(t, recorder)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "location_id", payload.Errors[0].Field)
}

// Ownership failures and missing rows must be indistinguishable on the
// wire.
func TestForeignLocationDeleteLooksLikeMissing(t *testing.T) {
	h := newTestHarness(t, config.Config{})
	owned := uuid.NewString()
	foreign := uuid.NewString()
	h.location.deleteFn = func(ctx context.Context, req locationdomain.GetLocationRequest) error {
		// Both a foreign row and an absent row match zero rows.
		return locationdomain.ErrNotFound
	}

	first := h.do(http.MethodDelete, "/api/v1/locations/"+owned, "", true, nil)
	second := h.do(http.MethodDelete, "/api/v1/locations/"+foreign, "", true, nil)

	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestListLocationsUsesPrincipal(t *testing.T) {
	h := newTestHarness(t, config.Config{})

	recorder := h.do(http.MethodGet, "/api/v1/locations", "", true, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, h.location.calls)
}
