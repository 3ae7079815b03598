package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"dealer-analytics/internal/shared/auth"
)

// ### Start - fixed configs (no change)
// Expected totals are derived from these values.
const (
	totalEvents  = 6400
	visitorCount = 400
	bookingEvery = 8 // every 8th event is a booking instead of a page view
)

var (
	days       = []string{"2025-12-22", "2025-12-23", "2025-12-24", "2025-12-25"}
	pages      = []string{"/", "/inventory", "/trucks/123", "/finance"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
		"Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	}
)

// ### End - fixed configs

type incomingEvent struct {
	Kind       string         `json:"kind"`
	Timestamp  string         `json:"timestamp"`
	DistinctID string         `json:"distinctId"`
	Properties map[string]any `json:"properties"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
	isOriginal bool
}

type pageCount struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

type summaryResponse struct {
	TotalUsers     int         `json:"totalUsers"`
	TotalPageviews int         `json:"totalPageviews"`
	TotalEvents    int         `json:"totalEvents"`
	Stale          bool        `json:"stale"`
	TopPages       []pageCount `json:"topPages"`
}

// main runs the e2e scenario: 001_day_rollup_summary
//
// It posts totalEvents dealership events spread over four UTC days in batches,
// replays some batches to check idempotency, then reads the summary for the
// four days back through GET /analytics/summary.
//
// Run the server with analytics.source=stored and a clean file storage dir.
//
// Expected results:
//   - Every original batch is accepted with 202, every replay gets 409
//   - The summary counts each event exactly once
//   - Page views are spread evenly across the four pages
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	jwtSecret := getEnv("DEALER_ANALYTICS_AUTH_JWT_SECRET", "change-me-local-only-secret")
	itemsPerBatch := getEnvInt("ITEMS_PER_BATCH", 50)
	parallel := getEnvInt("PARALLEL", 4)
	totalDuplicates := getEnvInt("TOTAL_DUPLICATES", 32)
	rollupWait := time.Duration(getEnvInt("ROLLUP_WAIT_SECONDS", 2)) * time.Second

	if totalEvents%itemsPerBatch != 0 {
		fail("TOTAL_EVENTS (%d) must be divisible by ITEMS_PER_BATCH (%d)", totalEvents, itemsPerBatch)
	}
	batchCount := totalEvents / itemsPerBatch

	fmt.Println("Starting e2e scenario: 001_day_rollup_summary")
	fmt.Printf("BASE_URL: %s\nITEMS_PER_BATCH: %d\nBATCH_COUNT: %d\nPARALLEL: %d\nTOTAL_DUPLICATES: %d\n\n",
		baseURL, itemsPerBatch, batchCount, parallel, totalDuplicates)

	batches := make([]batchToSend, 0, batchCount+totalDuplicates)
	for batchIndex := 0; batchIndex < batchCount; batchIndex++ {
		jsonData, err := json.Marshal(generateBatch(batchIndex, itemsPerBatch))
		if err != nil {
			fail("failed to encode batch %d: %v", batchIndex, err)
		}
		batches = append(batches, batchToSend{batchIndex: batchIndex, jsonData: jsonData, isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := batches[i%batchCount]
		batches = append(batches, batchToSend{batchIndex: original.batchIndex, jsonData: original.jsonData})
	}

	var (
		wg         sync.WaitGroup
		workerChan = make(chan struct{}, parallel)
		accepted   int64
		conflicted int64
		failed     int64
	)

	// originals first so every replay is a true replay
	sendAll := func(isOriginal bool) {
		for _, batch := range batches {
			if batch.isOriginal != isOriginal {
				continue
			}
			wg.Add(1)
			workerChan <- struct{}{}
			go func(b batchToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				statusCode, err := sendBatch(baseURL, b)
				switch {
				case err != nil:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d failed: %v\n", b.batchIndex, err)
					atomic.AddInt64(&failed, 1)
				case statusCode == http.StatusAccepted:
					atomic.AddInt64(&accepted, 1)
				case statusCode == http.StatusConflict:
					atomic.AddInt64(&conflicted, 1)
				default:
					fmt.Fprintf(os.Stderr, "ERROR: batch %d unexpected status %d\n", b.batchIndex, statusCode)
					atomic.AddInt64(&failed, 1)
				}
			}(batch)
		}
		wg.Wait()
	}
	sendAll(true)
	sendAll(false)

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted: %d\nConflicted: %d\nFailed: %d\n\n", accepted, conflicted, failed)
	if failed > 0 || accepted != int64(batchCount) || conflicted != int64(totalDuplicates) {
		fail("ingestion statistics do not match (want accepted=%d conflicted=%d)", batchCount, totalDuplicates)
	}

	fmt.Printf("Waiting %s for day rollups...\n", rollupWait)
	time.Sleep(rollupWait)

	summary, err := fetchSummary(baseURL, jwtSecret, days[0]+"T00:00:00Z", days[len(days)-1]+"T23:59:59Z")
	if err != nil {
		fail("failed to fetch summary: %v", err)
	}

	wantBookings := totalEvents / bookingEvery
	wantPageviews := totalEvents - wantBookings

	fmt.Println("=== Summary ===")
	fmt.Printf("Total users: %d (want %d)\n", summary.TotalUsers, visitorCount)
	fmt.Printf("Total page views: %d (want %d)\n", summary.TotalPageviews, wantPageviews)
	fmt.Printf("Total events: %d (want %d)\n", summary.TotalEvents, wantBookings)
	for _, page := range summary.TopPages {
		fmt.Printf("  %s: %d\n", page.Page, page.Views)
	}

	if summary.Stale || summary.TotalUsers != visitorCount ||
		summary.TotalPageviews != wantPageviews || summary.TotalEvents != wantBookings {
		fail("summary does not match the ingested events")
	}
	fmt.Println("Scenario completed successfully")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// generateBatch interleaves days, pages and agents so each batch spans several day partitions.
func generateBatch(batchIndex, batchSize int) []incomingEvent {
	batch := make([]incomingEvent, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		n := batchIndex*batchSize + i
		day := days[n%len(days)]
		timestamp := fmt.Sprintf("%sT%02d:%02d:%02d.%03dZ", day, (n/4)%24, (n/96)%60, n%60, n%1000)

		event := incomingEvent{
			Kind:       "$pageview",
			Timestamp:  timestamp,
			DistinctID: fmt.Sprintf("visitor-%03d", n%visitorCount),
			Properties: map[string]any{
				"currentUrl": "https://dealer.example" + pages[(n/len(days))%len(pages)],
				"userAgent":  userAgents[(n/16)%len(userAgents)],
			},
		}
		if n%bookingEvery == bookingEvery-1 {
			event.Kind = "test_drive_booked"
			event.Properties = map[string]any{}
		}
		batch = append(batch, event)
	}
	return batch
}

func sendBatch(baseURL string, batch batchToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/events", bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-event-source", "e2e")
	// same key for all replays of this batch
	req.Header.Set("idempotency-key", fmt.Sprintf("batch-%06d", batch.batchIndex))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func fetchSummary(baseURL, jwtSecret, from, to string) (*summaryResponse, error) {
	token, err := auth.IssueToken(jwtSecret, "e2e", time.Minute)
	if err != nil {
		return nil, err
	}

	query := url.Values{"from": {from}, "to": {to}}
	req, err := http.NewRequest(http.MethodGet, baseURL+"/analytics/summary?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var summary summaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
