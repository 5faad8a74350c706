package kma

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/forecast"
)

// Client talks to the KMA MidFcstInfoService over HTTP. It implements
// forecast.FeedClient: every transport failure, malformed payload, or
// documented no-data response is converted to absence at this boundary
// and logged; nothing propagates as an error.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the given feed base URL and auth key.
func NewClient(client *http.Client, baseURL, serviceKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kma",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: client,
		circuit:    cb,
	}
}

// FetchNarrative retrieves the free-text outlook (getMidFcst) for a
// broadcast station.
func (c *Client) FetchNarrative(ctx context.Context, stnID, baseTime string) (string, bool) {
	tree, err := c.getJSON(ctx, "getMidFcst", url.Values{
		"stnId": {stnID},
		"tmFc":  {baseTime},
	})
	if err != nil {
		log.Printf("kma: getMidFcst failed for stnId=%s tmFc=%s: %v", stnID, baseTime, err)
		return "", false
	}
	if noData(tree) {
		log.Printf("kma: getMidFcst has no data yet for stnId=%s tmFc=%s", stnID, baseTime)
		return "", false
	}

	text := pathString(tree, itemPath+".wfSv")
	if text == nil {
		return "", false
	}
	return *text, true
}

// FetchTemperature retrieves per-day temperature records (getMidTa) for a
// region. The result is nil when the feed has nothing usable.
func (c *Client) FetchTemperature(ctx context.Context, regionCode, baseTime string) map[int]forecast.DayTemperature {
	tree, err := c.getJSON(ctx, "getMidTa", url.Values{
		"regId": {regionCode},
		"tmFc":  {baseTime},
	})
	if err != nil {
		log.Printf("kma: getMidTa failed for regId=%s tmFc=%s: %v", regionCode, baseTime, err)
		return nil
	}
	if noData(tree) {
		log.Printf("kma: getMidTa has no data yet for regId=%s tmFc=%s", regionCode, baseTime)
		return nil
	}

	return temperatureDays(tree)
}

// FetchPrecipitation retrieves per-day rain/weather records
// (getMidLandFcst) for a region. The result is nil when the feed has
// nothing usable.
func (c *Client) FetchPrecipitation(ctx context.Context, regionCode, baseTime string) map[int]forecast.DayPrecipitation {
	tree, err := c.getJSON(ctx, "getMidLandFcst", url.Values{
		"regId": {regionCode},
		"tmFc":  {baseTime},
	})
	if err != nil {
		log.Printf("kma: getMidLandFcst failed for regId=%s tmFc=%s: %v", regionCode, baseTime, err)
		return nil
	}
	if noData(tree) {
		log.Printf("kma: getMidLandFcst has no data yet for regId=%s tmFc=%s", regionCode, baseTime)
		return nil
	}

	return precipitationDays(tree)
}

// getJSON issues one GET against an endpoint and decodes the response as a
// generic tree. The call passes through the circuit breaker but is never
// retried; the feed republishes on a fixed cadence, so retrying a failed
// call buys nothing.
func (c *Client) getJSON(ctx context.Context, operation string, params url.Values) (map[string]any, error) {
	params.Set("pageNo", "1")
	params.Set("numOfRows", "10")
	params.Set("dataType", "JSON")
	params.Set("authKey", c.serviceKey)

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, operation, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}

		var tree map[string]any
		if decErr := json.NewDecoder(resp.Body).Decode(&tree); decErr != nil {
			return nil, decErr
		}
		return tree, nil
	})
	if err != nil {
		return nil, err
	}

	tree, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return tree, nil
}

// noData reports whether the feed answered with its documented "no data
// yet for this baseTime" result code. Treated the same as absence.
func noData(tree map[string]any) bool {
	code, ok := extractPath(tree, "response.header.resultCode").(string)
	return ok && (code == "03" || code == "NO_DATA")
}

var _ forecast.FeedClient = (*Client)(nil)
