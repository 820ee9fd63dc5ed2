// Package neo implements domain.Catalog against the NASA Near-Earth Object
// REST API (https://api.nasa.gov/neo/rest/v1).
package neo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
)

// ErrNotFound is returned when an exact-name search exhausts its page
// budget without a match.
var ErrNotFound = fmt.Errorf("neo: object not found")

// Client implements domain.Catalog using the NASA NEO API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a NEO catalog client. Use "DEMO_KEY" for testing
// against the live API within NASA's demo rate limits.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.nasa.gov/neo/rest/v1",
		metrics: metrics,
		logger:  logger,
	}
}

// Lookup fetches a single object by its NEO reference ID.
func (c *Client) Lookup(ctx context.Context, id string) (domain.CatalogRecord, error) {
	u := fmt.Sprintf("%s/neo/%s", c.baseURL, url.PathEscape(id))

	var obj neoObject
	if err := c.doRequest(ctx, u, nil, "lookup", &obj); err != nil {
		return domain.CatalogRecord{}, err
	}
	return toRecord(obj), nil
}

// SearchByName scans the paginated browse listing for an exact,
// case-insensitive name match, reading at most maxPages pages. Returns
// ErrNotFound when the budget runs out.
func (c *Client) SearchByName(ctx context.Context, name string, maxPages int) (domain.CatalogRecord, error) {
	target := strings.ToLower(strings.TrimSpace(name))

	for page := 0; page < maxPages; page++ {
		listing, err := c.Browse(ctx, page)
		if err != nil {
			return domain.CatalogRecord{}, err
		}
		for _, obj := range listing.objects {
			if strings.ToLower(strings.TrimSpace(obj.Name)) == target {
				return toRecord(obj), nil
			}
		}
		if listing.lastPage {
			break
		}
	}
	return domain.CatalogRecord{}, fmt.Errorf("%w: exact name %q not in first %d pages", ErrNotFound, name, maxPages)
}

// BrowsePage is one page of the catalog listing.
type BrowsePage struct {
	objects  []neoObject
	lastPage bool
}

// Browse fetches one page of the catalog's paginated listing.
func (c *Client) Browse(ctx context.Context, page int) (BrowsePage, error) {
	u := c.baseURL + "/neo/browse"
	params := url.Values{"page": {strconv.Itoa(page)}}

	var resp browseResponse
	if err := c.doRequest(ctx, u, params, "browse", &resp); err != nil {
		return BrowsePage{}, err
	}
	return BrowsePage{
		objects:  resp.NearEarthObjects,
		lastPage: resp.Page.TotalPages > 0 && resp.Page.Number >= resp.Page.TotalPages-1,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string, params url.Values, method string, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.CatalogAPIDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.CatalogRequests.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("%s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.CatalogRequests.WithLabelValues(method, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("neo API error: status %d: %s", resp.StatusCode, truncate(body, 500))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.CatalogRequests.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("decode response: %w", err)
	}

	c.metrics.CatalogRequests.WithLabelValues(method, "success").Inc()
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}

// toRecord extracts the domain-relevant parameters from a raw catalog
// object: diameter collapses to the midpoint of the min/max estimate, the
// default velocity is the first close approach with a known value.
func toRecord(obj neoObject) domain.CatalogRecord {
	rec := domain.CatalogRecord{
		ID:        obj.ID,
		Name:      obj.Name,
		Hazardous: obj.Hazardous,
	}

	meters := obj.EstimatedDiameter.Meters
	if meters.Min != nil && meters.Max != nil {
		mid := (*meters.Min + *meters.Max) / 2
		rec.DiameterM = &mid
	}

	for _, item := range obj.CloseApproachData {
		approach := domain.CloseApproach{Date: approachDate(item)}
		if v, err := strconv.ParseFloat(item.RelativeVelocity.KmPerSecond, 64); err == nil {
			vel := v
			approach.VelocityKmS = &vel
		}
		if t, err := time.Parse("2006-Jan-02 15:04", item.DateFull); err == nil {
			approach.Time = t
		} else if t, err := time.Parse("2006-01-02", item.Date); err == nil {
			approach.Time = t
		}
		rec.Approaches = append(rec.Approaches, approach)
	}

	if len(rec.Approaches) > 0 && rec.Approaches[0].VelocityKmS != nil {
		v := *rec.Approaches[0].VelocityKmS
		rec.DefaultVelocityKmS = &v
	}
	return rec
}

func approachDate(item closeApproach) string {
	if item.DateFull != "" {
		return item.DateFull
	}
	if item.Date != "" {
		return item.Date
	}
	return "N/A"
}

// NASA NEO API response types.

type neoObject struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Hazardous         bool              `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter estimatedDiameter `json:"estimated_diameter"`
	CloseApproachData []closeApproach   `json:"close_approach_data"`
}

type estimatedDiameter struct {
	Meters diameterRange `json:"meters"`
}

type diameterRange struct {
	Min *float64 `json:"estimated_diameter_min"`
	Max *float64 `json:"estimated_diameter_max"`
}

type closeApproach struct {
	Date             string           `json:"close_approach_date"`
	DateFull         string           `json:"close_approach_date_full"`
	RelativeVelocity relativeVelocity `json:"relative_velocity"`
}

type relativeVelocity struct {
	KmPerSecond string `json:"kilometers_per_second"`
}

type browseResponse struct {
	Page             pageInfo    `json:"page"`
	NearEarthObjects []neoObject `json:"near_earth_objects"`
}

type pageInfo struct {
	Number     int `json:"number"`
	TotalPages int `json:"total_pages"`
}
