package nfz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/terminarz/terminarz/internal/domain/entities"
	"github.com/terminarz/terminarz/pkg/errors"
)

const (
	// DefaultBaseURL is the public endpoint of the NFZ waiting-times registry.
	DefaultBaseURL = "https://api.nfz.gov.pl/app-itl-api"

	// DefaultAPIVersion is the protocol version appended to every request.
	DefaultAPIVersion = "1.3"

	defaultTimeout = 15 * time.Second
)

// MinSearchTermLength is the shortest term for which the name-search
// endpoints return useful results. The client does not enforce it; callers
// should validate input before dialing the registry.
const MinSearchTermLength = 3

// Client is the read-only interface to the registry. Every call performs
// exactly one attempt and propagates a normalized error; retrying is the
// caller's decision, since registry rejections usually describe a fixable
// input problem rather than a transient failure.
type Client interface {
	GetQueues(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Queue, error)
	GetQueueByID(ctx context.Context, id string) (*entities.Queue, error)
	GetAlternatePlaces(ctx context.Context, id string) ([]entities.Place, error)
	SearchBenefits(ctx context.Context, term string, opts SearchOptions) ([]string, error)
	SearchLocalities(ctx context.Context, term string, opts SearchOptions) ([]string, error)
	SearchPlaces(ctx context.Context, term string, opts SearchOptions) ([]string, error)
	SearchProviders(ctx context.Context, term string, opts SearchOptions) ([]string, error)
	SearchStreets(ctx context.Context, term string, opts SearchOptions) ([]string, error)
	GetVersion(ctx context.Context) (*entities.Version, error)
}

// SearchOptions narrows the name-search endpoints.
type SearchOptions struct {
	Province string
	Page     int
	Limit    int
}

// HTTPClient talks to the registry over HTTP. It holds no state beyond
// configuration.
type HTTPClient struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying HTTP client (used for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithAPIVersion overrides the protocol version parameter.
func WithAPIVersion(v string) Option {
	return func(c *HTTPClient) {
		c.apiVersion = v
	}
}

// WithTimeout bounds each request. The registry has no documented SLA.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a registry client for the given base URL.
func NewClient(baseURL string, opts ...Option) *HTTPClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetQueues fetches queue records matching the criteria, in registry order.
// Sorting is the ranking stage's job, not this one's.
func (c *HTTPClient) GetQueues(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Queue, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("case", strconv.Itoa(int(criteria.Case)))
	query.Set("province", criteria.Province)
	if criteria.Benefit != "" {
		query.Set("benefit", criteria.Benefit)
	}
	if criteria.Locality != "" {
		query.Set("locality", criteria.Locality)
	}
	if criteria.Provider != "" {
		query.Set("provider", criteria.Provider)
	}
	if criteria.Place != "" {
		query.Set("place", criteria.Place)
	}
	if criteria.Street != "" {
		query.Set("street", criteria.Street)
	}
	if criteria.BenefitsForChildren {
		query.Set("benefitForChildren", "true")
	}
	if criteria.Page > 0 {
		query.Set("page", strconv.Itoa(criteria.Page))
	}
	if criteria.Limit > 0 {
		query.Set("limit", strconv.Itoa(criteria.Limit))
	}
	// The registry also serves XML; force the machine-readable format.
	query.Set("format", "json")

	var response struct {
		Data []entities.Queue `json:"data"`
	}
	if err := c.getJSON(ctx, "/queues", query, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetQueueByID fetches a single queue record.
func (c *HTTPClient) GetQueueByID(ctx context.Context, id string) (*entities.Queue, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("queue id is required")
	}

	var response struct {
		Data *entities.Queue `json:"data"`
	}
	if err := c.getJSON(ctx, "/queues/"+url.PathEscape(id), nil, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("queue %q not found", id))
	}
	return response.Data, nil
}

// GetAlternatePlaces fetches the alternate service locations of a queue.
// Only meaningful for records flagged with many-places = "Y".
func (c *HTTPClient) GetAlternatePlaces(ctx context.Context, id string) ([]entities.Place, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("queue id is required")
	}

	var response struct {
		Data []entities.Place `json:"data"`
	}
	if err := c.getJSON(ctx, "/queues/"+url.PathEscape(id)+"/places", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// SearchBenefits looks up benefit category names matching term.
func (c *HTTPClient) SearchBenefits(ctx context.Context, term string, opts SearchOptions) ([]string, error) {
	return c.searchNames(ctx, "/benefits", term, opts)
}

// SearchLocalities looks up locality names matching term.
func (c *HTTPClient) SearchLocalities(ctx context.Context, term string, opts SearchOptions) ([]string, error) {
	return c.searchNames(ctx, "/localities", term, opts)
}

// SearchPlaces looks up facility place names matching term.
func (c *HTTPClient) SearchPlaces(ctx context.Context, term string, opts SearchOptions) ([]string, error) {
	return c.searchNames(ctx, "/places", term, opts)
}

// SearchProviders looks up provider names matching term.
func (c *HTTPClient) SearchProviders(ctx context.Context, term string, opts SearchOptions) ([]string, error) {
	return c.searchNames(ctx, "/providers", term, opts)
}

// SearchStreets looks up street names matching term.
func (c *HTTPClient) SearchStreets(ctx context.Context, term string, opts SearchOptions) ([]string, error) {
	return c.searchNames(ctx, "/streets", term, opts)
}

// GetVersion fetches the registry protocol version.
func (c *HTTPClient) GetVersion(ctx context.Context) (*entities.Version, error) {
	var response struct {
		APIVersion entities.Version `json:"api-version"`
	}
	if err := c.getJSON(ctx, "/version", nil, &response); err != nil {
		return nil, err
	}
	return &response.APIVersion, nil
}

// searchNames shares the contract of the five name-search endpoints: the
// registry silently returns unhelpful results for terms shorter than
// MinSearchTermLength, and does not deduplicate beyond its own guarantees.
func (c *HTTPClient) searchNames(ctx context.Context, path, term string, opts SearchOptions) ([]string, error) {
	query := url.Values{}
	query.Set("name", term)
	if opts.Province != "" {
		query.Set("province", opts.Province)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var response struct {
		Data []string `json:"data"`
	}
	if err := c.getJSON(ctx, path, query, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// registryError is one entry of the registry's error envelope.
type registryError struct {
	ID       string `json:"id"`
	Result   string `json:"error-result"`
	Reason   string `json:"error-reason"`
	Solution string `json:"error-solution"`
	Help     string `json:"error-help"`
	Code     int    `json:"code"`
}

// getJSON performs one GET and normalizes every failure mode into the
// transport / upstream / decode taxonomy. It never retries.
func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api-version", c.apiVersion)
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewTransportError("failed to build registry request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError("registry request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError("failed to read registry response", err)
	}

	// The registry reports rejections in a structured envelope, with or
	// without a matching HTTP status.
	var envelope struct {
		Errors []registryError `json:"errors"`
	}
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		return errors.NewUpstreamError(first.Code, first.Reason, first.Solution)
	}

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError(fmt.Sprintf("registry has no resource at %s", path))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewTransportError(fmt.Sprintf("registry returned status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewDecodeError("registry response did not match the expected shape", err)
	}
	return nil
}
