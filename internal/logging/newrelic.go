package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Event is a single structured record forwarded to the external log endpoint.
type Event struct {
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Level       string `json:"level"`
	Action      string `json:"action"`
	BrandID     string `json:"brandId,omitempty"`
	Locale      string `json:"locale,omitempty"`
	StatusCode  int    `json:"statusCode"`
	Message     string `json:"message,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// NewRelicForwarder delivers event batches to the New Relic Log API on a
// best-effort basis. Delivery runs detached from the request that produced
// the events; a failure is written to the local log and discarded, never
// surfaced to the caller.
type NewRelicForwarder struct {
	url        string
	licenseKey string
	client     *http.Client
}

// NewNewRelicForwarder builds a forwarder. With an empty url or key the
// forwarder is disabled and Send becomes a no-op.
func NewNewRelicForwarder(url, licenseKey string) *NewRelicForwarder {
	return &NewRelicForwarder{
		url:        url,
		licenseKey: licenseKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether the forwarder has a destination configured.
func (f *NewRelicForwarder) Enabled() bool {
	return f != nil && f.url != "" && f.licenseKey != ""
}

// Send posts the batch in a detached goroutine. It returns immediately; the
// outcome never affects the caller.
func (f *NewRelicForwarder) Send(events []Event) {
	if !f.Enabled() || len(events) == 0 {
		return
	}
	go f.deliver(events)
}

func (f *NewRelicForwarder) deliver(events []Event) {
	body, err := json.Marshal(events)
	if err != nil {
		LogKV("error", "newrelic marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		LogKV("error", "newrelic request build failed", map[string]interface{}{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-License-Key", f.licenseKey)

	resp, err := f.client.Do(req)
	if err != nil {
		LogKV("error", "newrelic delivery failed", map[string]interface{}{"error": err.Error()})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		LogKV("error", "newrelic delivery rejected", map[string]interface{}{"status": resp.StatusCode})
	}
}
