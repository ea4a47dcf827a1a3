package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Result is one geocoding answer. Found=false means the service answered
// but knows no such address, which is not a transient failure.
type Result struct {
	AddrStd string
	Lat     float64
	Lng     float64
	Found   bool
}

// Client is the outbound geocoding collaborator.
type Client interface {
	Geocode(ctx context.Context, address string) (Result, error)
}

// HTTPClient talks to a Kakao-local style address search endpoint.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

type kakaoAddressResponse struct {
	Documents []struct {
		AddressName string      `json:"address_name"`
		X           json.Number `json:"x"` // longitude
		Y           json.Number `json:"y"` // latitude
		RoadAddress *struct {
			AddressName string `json:"address_name"`
		} `json:"road_address"`
	} `json:"documents"`
}

// transientStatusError marks HTTP statuses worth retrying.
type transientStatusError struct{ status int }

func (e *transientStatusError) Error() string {
	return fmt.Sprintf("geocode service returned %d", e.status)
}

// IsTransient reports whether err warrants a retry.
func IsTransient(err error) bool {
	var tse *transientStatusError
	if errors.As(err, &tse) {
		return true
	}
	// Network-level errors from http.Client surface as url.Errors.
	var ue *url.Error
	return errors.As(err, &ue)
}

func (c *HTTPClient) Geocode(ctx context.Context, address string) (Result, error) {
	start := time.Now()

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("geocode base url: %w", err)
	}
	q := u.Query()
	q.Set("query", address)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Error("geocode.request_failed", "address", address, "error", err)
		return Result{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.Logger.Warn("geocode.body_close_error", "error", cerr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return Result{}, &transientStatusError{status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geocode service returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var body kakaoAddressResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}

	c.Logger.Debug("geocode.response",
		"address", address,
		"documents", len(body.Documents),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if len(body.Documents) == 0 {
		return Result{Found: false}, nil
	}

	doc := body.Documents[0]
	addrStd := doc.AddressName
	if doc.RoadAddress != nil && doc.RoadAddress.AddressName != "" {
		addrStd = doc.RoadAddress.AddressName
	}
	lng, err := doc.X.Float64()
	if err != nil {
		return Result{}, fmt.Errorf("bad longitude %q: %w", doc.X, err)
	}
	lat, err := doc.Y.Float64()
	if err != nil {
		return Result{}, fmt.Errorf("bad latitude %q: %w", doc.Y, err)
	}
	return Result{AddrStd: addrStd, Lat: lat, Lng: lng, Found: true}, nil
}
