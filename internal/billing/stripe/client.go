package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reclaimhq/reclaim/internal/billing/domain"
	"github.com/reclaimhq/reclaim/internal/config"
)

type checkoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type portalSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type priceList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls the Stripe REST API for hosted checkout and billing
// portal sessions.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(cfg.StripeSecretKey),
		baseURL: "https://api.stripe.com",
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// ResolvePrice returns the price id behind a lookup key.
func (c *Client) ResolvePrice(ctx context.Context, lookupKey string) (string, error) {
	values := url.Values{}
	values.Set("lookup_keys[]", lookupKey)
	values.Set("active", "true")

	var prices priceList
	if err := c.doRequest(ctx, http.MethodGet, "/v1/prices?"+values.Encode(), nil, &prices); err != nil {
		return "", err
	}
	if len(prices.Data) == 0 || prices.Data[0].ID == "" {
		return "", domain.ErrProviderUnavailable
	}
	return prices.Data[0].ID, nil
}

// CreateCheckoutSession opens a subscription checkout for a location.
// The location id rides in the subscription metadata so the webhook can
// key its mirror row.
func (c *Client) CreateCheckoutSession(ctx context.Context, priceID, locationID, customerEmail, successURL, cancelURL string) (string, error) {
	values := url.Values{}
	values.Set("mode", "subscription")
	values.Set("line_items[0][price]", priceID)
	values.Set("line_items[0][quantity]", "1")
	values.Set("subscription_data[metadata][location_id]", locationID)
	values.Set("success_url", successURL)
	values.Set("cancel_url", cancelURL)
	if customerEmail != "" {
		values.Set("customer_email", customerEmail)
	}

	var session checkoutSession
	if err := c.doRequest(ctx, http.MethodPost, "/v1/checkout/sessions", values, &session); err != nil {
		return "", err
	}
	if session.URL == "" {
		return "", domain.ErrProviderUnavailable
	}
	return session.URL, nil
}

// CreatePortalSession opens the hosted billing portal for a customer.
func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	values := url.Values{}
	values.Set("customer", customerID)
	values.Set("return_url", returnURL)

	var session portalSession
	if err := c.doRequest(ctx, http.MethodPost, "/v1/billing_portal/sessions", values, &session); err != nil {
		return "", err
	}
	if session.URL == "" {
		return "", domain.ErrProviderUnavailable
	}
	return session.URL, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, values url.Values, out any) error {
	if c.apiKey == "" {
		return domain.ErrProviderUnavailable
	}

	var bodyReader *strings.Reader
	if values != nil {
		bodyReader = strings.NewReader(values.Encode())
	} else {
		bodyReader = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if values != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var stripeErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&stripeErr); err != nil {
			return errors.New("stripe_request_failed")
		}
		message := strings.TrimSpace(stripeErr.Error.Message)
		if message == "" {
			message = "stripe_request_failed"
		}
		return errors.New(message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
