// Package geoip resolves the player's approximate position from the public IP
// so the real-light theme can follow the local sun.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const DefaultURL = "http://ip-api.com/json/"

var (
	ErrStatus     = errors.New("geoip: non-200 response from API")
	ErrNoTimezone = errors.New("geoip: timezone not provided")
)

// LocationInfo stores geographic data and timezone.
type LocationInfo struct {
	Country  string  `json:"country"`
	City     string  `json:"city"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
}

// Location returns the time zone of the place, or UTC when it is unknown.
func (li LocationInfo) Location() *time.Location {
	if loc, err := time.LoadLocation(li.Timezone); err == nil && li.Timezone != "" {
		return loc
	}
	return time.UTC
}

func (li LocationInfo) String() string {
	if li.City == "" {
		return li.Timezone
	}
	return fmt.Sprintf("%s, %s", li.City, li.Country)
}

// Client queries a geoip service and caches the answer.
type Client struct {
	url         string
	httpTimeout time.Duration
	cacheTTL    time.Duration

	mu        sync.Mutex
	cache     *LocationInfo
	cacheTime time.Time
}

func NewClient(url string) *Client {
	return &Client{
		url:         url,
		httpTimeout: 5 * time.Second,
		cacheTTL:    time.Hour,
	}
}

// Default client with default settings.
var Default = NewClient(DefaultURL)

// SetCacheTTL sets the cache lifetime of the default client.
func SetCacheTTL(d time.Duration) {
	Default.mu.Lock()
	defer Default.mu.Unlock()
	Default.cacheTTL = d
}

// SetHTTPTimeout sets the request timeout of the default client.
func SetHTTPTimeout(d time.Duration) {
	Default.mu.Lock()
	defer Default.mu.Unlock()
	Default.httpTimeout = d
}

// GetLocationInfo asks the default client.
func GetLocationInfo() (*LocationInfo, error) {
	return Default.Lookup(context.Background())
}

// Lookup returns the cached location while it is fresh, otherwise queries the service.
func (c *Client) Lookup(ctx context.Context) (*LocationInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && time.Since(c.cacheTime) <= c.cacheTTL {
		return c.cache, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.httpTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatus
	}

	info := &LocationInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, fmt.Errorf("geoip: decode: %w", err)
	}
	if info.Timezone == "" {
		return nil, ErrNoTimezone
	}
	if _, err := time.LoadLocation(info.Timezone); err != nil {
		return nil, fmt.Errorf("geoip: %w", err)
	}

	c.cache = info
	c.cacheTime = time.Now()
	return info, nil
}
