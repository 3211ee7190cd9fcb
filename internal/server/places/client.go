package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/travelpath/server/internal/common"
	"github.com/travelpath/server/internal/server/models"
)

// Client queries an external places endpoint over HTTP. The endpoint is
// expected to expose /places (search) and /places/{id} (details) returning
// candidate places as JSON.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, constraints models.ConstraintSet) ([]models.CandidatePlace, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(constraints.Anchor.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(constraints.Anchor.Lng, 'f', -1, 64))
	if len(constraints.Interests) > 0 {
		q.Set("categories", strings.Join(constraints.Interests, ","))
	}

	var result []models.CandidatePlace
	if err := c.get(ctx, c.endpoint+"/places?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Details(ctx context.Context, placeID string) (models.CandidatePlace, error) {
	var result models.CandidatePlace
	if err := c.get(ctx, c.endpoint+"/places/"+url.PathEscape(placeID), &result); err != nil {
		return models.CandidatePlace{}, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: places endpoint: %s", common.ErrorStorage, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: place", common.ErrorNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: places endpoint returned %d", common.ErrorStorage, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding places response: %w", err)
	}
	return nil
}
