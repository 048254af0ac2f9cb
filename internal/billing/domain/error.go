package domain

import "errors"

var (
	ErrInvalidSignature    = errors.New("invalid_signature")
	ErrInvalidPayload      = errors.New("invalid_payload")
	ErrInvalidEvent        = errors.New("invalid_event")
	ErrEventIgnored        = errors.New("event_ignored")
	ErrMissingLocation     = errors.New("event_missing_location")
	ErrInvalidLocationID   = errors.New("invalid_billing_location_id")
	ErrNotFound            = errors.New("subscription_not_found")
	ErrProviderUnavailable = errors.New("billing_provider_unavailable")
)
