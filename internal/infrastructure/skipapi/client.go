package skipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase/interfaces"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://app.wewantwaste.co.uk"
	DefaultTimeout = 10 * time.Second

	byLocationPath = "/api/skips/by-location"
)

// ErrFetchOfferings wraps every failure to obtain the skip listing.
var ErrFetchOfferings = errors.New("failed to fetch skip offerings")

// Client reads skip offerings from the listing API. It makes exactly one
// request per call.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IOfferingFetcher = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) FetchOfferingsFor(ctx context.Context, postcode, area string) ([]entities.Offering, error) {
	q := url.Values{}
	q.Set("postcode", postcode)
	q.Set("area", area)
	endpoint := c.baseURL + byLocationPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchOfferings, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[skips][skipapi] request failed postcode=%s area=%s err=%v", postcode, area, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchOfferings, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[skips][skipapi] unexpected status postcode=%s area=%s status=%d", postcode, area, resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchOfferings, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var payload []skipPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[skips][skipapi] decode failed postcode=%s area=%s err=%v", postcode, area, err)
		return nil, fmt.Errorf("%w: decode: %v", ErrFetchOfferings, err)
	}

	offerings := make([]entities.Offering, 0, len(payload))
	for _, p := range payload {
		offerings = append(offerings, p.toEntity())
	}
	log.Printf("[skips][skipapi] fetched postcode=%s area=%s count=%d", postcode, area, len(offerings))
	return offerings, nil
}
