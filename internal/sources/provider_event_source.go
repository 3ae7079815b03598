package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/loggers"
)

// Property keys used by the provider's event payloads.
const (
	propDistinctID      = "distinct_id"
	propCurrentURL      = "$current_url"
	propDeviceType      = "$device_type"
	propSessionDuration = "$session_duration"
	propUserAgent       = "$user_agent"
)

const defaultPageSize = 1000

// ProviderOptions configures access to the analytics provider's events API.
type ProviderOptions struct {
	BaseURL   string
	ProjectID string
	APIKey    string
	PageSize  int
	MaxPages  int
	Timeout   time.Duration // per page
}

type providerPage struct {
	Results []providerEvent `json:"results"`
	Next    *string         `json:"next"`
}

type providerEvent struct {
	Event      string         `json:"event"`
	Timestamp  string         `json:"timestamp"`
	DistinctID any            `json:"distinct_id"`
	Properties map[string]any `json:"properties"`
}

type providerEventSource struct {
	httpClient *http.Client
	opts       ProviderOptions
}

// NewProviderEventSource reads events from the provider's query API, following
// the "next" links of the paginated response up to MaxPages pages.
func NewProviderEventSource(opts ProviderOptions, httpClient *http.Client) EventSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}
	return &providerEventSource{httpClient: httpClient, opts: opts}
}

func (s *providerEventSource) Fetch(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.Event, error) {
	logger := loggers.Ctx(ctx)

	next, err := s.firstPageURL(rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	var result []models.Event
	dropped := 0
	for page := 0; next != "" && page < s.opts.MaxPages; page++ {
		body, err := s.fetchPage(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("provider page %d: %w", page, err)
		}

		for i := range body.Results {
			event, ok := body.Results[i].toEvent()
			if !ok {
				dropped++
				continue
			}
			result = append(result, event)
		}

		next = ""
		if body.Next != nil {
			next = *body.Next
		}
	}
	if next != "" {
		logger.Warn().Int("max_pages", s.opts.MaxPages).Msg("provider result truncated at page limit")
	}
	if dropped > 0 {
		logger.Debug().Int("dropped", dropped).Msg("dropped provider events with unreadable timestamps")
	}

	metricEventsFetched.WithLabelValues(sourceProvider).Observe(float64(len(result)))
	return result, nil
}

func (s *providerEventSource) firstPageURL(rangeStart, rangeEnd time.Time) (string, error) {
	base := strings.TrimRight(s.opts.BaseURL, "/")
	u, err := url.Parse(fmt.Sprintf("%s/api/projects/%s/events/", base, url.PathEscape(s.opts.ProjectID)))
	if err != nil {
		return "", fmt.Errorf("invalid provider base url: %w", err)
	}

	query := u.Query()
	query.Set("after", rangeStart.UTC().Format(time.RFC3339))
	query.Set("before", rangeEnd.UTC().Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(s.opts.PageSize))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (s *providerEventSource) fetchPage(ctx context.Context, pageURL string) (*providerPage, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.opts.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metricProviderPagesFetchedTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()
	metricProviderPagesFetchedTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var page providerPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return &page, nil
}

// toEvent converts the provider's loosely typed payload. Properties of the wrong
// type are dropped; an unreadable timestamp drops the whole event.
func (e *providerEvent) toEvent() (models.Event, bool) {
	ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return models.Event{}, false
	}

	event := models.Event{
		Kind:       e.Event,
		Timestamp:  ts.UTC(),
		DistinctID: stringValue(e.DistinctID),
	}
	props := e.Properties
	if props == nil {
		return event, true
	}

	event.Properties.DistinctID = stringValue(props[propDistinctID])
	event.Properties.UserAgent = stringValue(props[propUserAgent])
	if v, ok := props[propCurrentURL].(string); ok {
		event.Properties.CurrentURL = &v
	}
	if v, ok := props[propDeviceType].(string); ok {
		event.Properties.DeviceType = &v
	}
	if v, ok := props[propSessionDuration].(float64); ok {
		event.Properties.SessionDuration = &v
	}
	return event, true
}

// stringValue accepts strings and JSON numbers; anything else is treated as absent.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
