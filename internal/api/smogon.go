package api

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"showdown-stats/internal/config"
	"showdown-stats/internal/domain"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// StatsClient fetches the exported stats resources: the period index and
// one JSON file per period. The upstream is a static file host, so there is
// no auth and no retry; a failed fetch is reported as-is.
type StatsClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewStatsClient(cfg *config.Config) *StatsClient {
	return &StatsClient{
		baseURL: cfg.StatsBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetIndex fetches index.json. Failures map to ErrIndexFetch, undecodable
// or empty payloads to ErrMalformedData.
func (c *StatsClient) GetIndex(ctx context.Context) (*domain.Index, error) {
	url := fmt.Sprintf("%s/index.json", c.baseURL)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexFetch, err)
	}

	var idx domain.Index
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, fmt.Errorf("%w: decoding index: %v", domain.ErrMalformedData, err)
	}
	if idx.Latest == "" || len(idx.Periods) == 0 {
		return nil, fmt.Errorf("%w: index has no periods", domain.ErrMalformedData)
	}
	return &idx, nil
}

// GetSnapshot fetches and validates one period's stats file. Failures map
// to ErrDataFetch, shape or invariant violations to ErrMalformedData.
func (c *StatsClient) GetSnapshot(ctx context.Context, period string) (*domain.Snapshot, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, period)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: period %s: %v", domain.ErrDataFetch, period, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrMalformedData, period, err)
	}

	snap, err := file.toDomain(period)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *StatsClient) get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode())
	}

	// The response body is reused once resp is released.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// snapshotFile mirrors the JSON wire shape. by_rating keys arrive as
// stringified integers.
type snapshotFile struct {
	TotalBattles     int          `json:"total_battles"`
	RatingThresholds []int        `json:"rating_thresholds"`
	Formats          []formatFile `json:"formats"`
}

type formatFile struct {
	Name         string         `json:"name"`
	TotalBattles int            `json:"total_battles"`
	Percentage   float64        `json:"percentage"`
	ByRating     map[string]int `json:"by_rating"`
}

func (f snapshotFile) toDomain(period string) (*domain.Snapshot, error) {
	if len(f.Formats) == 0 {
		return nil, fmt.Errorf("%w: %s has no formats", domain.ErrMalformedData, period)
	}
	if !sort.IntsAreSorted(f.RatingThresholds) {
		return nil, fmt.Errorf("%w: %s rating thresholds not ascending", domain.ErrMalformedData, period)
	}
	for i, r := range f.RatingThresholds {
		if r < 0 {
			return nil, fmt.Errorf("%w: %s negative rating threshold %d", domain.ErrMalformedData, period, r)
		}
		if i > 0 && r == f.RatingThresholds[i-1] {
			return nil, fmt.Errorf("%w: %s duplicate rating threshold %d", domain.ErrMalformedData, period, r)
		}
	}

	snap := &domain.Snapshot{
		Period:           period,
		TotalBattles:     f.TotalBattles,
		RatingThresholds: f.RatingThresholds,
		Formats:          make([]domain.Format, len(f.Formats)),
	}

	for i, ff := range f.Formats {
		df, err := ff.toDomain(period)
		if err != nil {
			return nil, err
		}
		snap.Formats[i] = df
	}
	return snap, nil
}

func (f formatFile) toDomain(period string) (domain.Format, error) {
	if f.Name == "" {
		return domain.Format{}, fmt.Errorf("%w: %s has a format with no name", domain.ErrMalformedData, period)
	}
	if f.TotalBattles < 0 {
		return domain.Format{}, fmt.Errorf("%w: %s/%s negative battle count", domain.ErrMalformedData, period, f.Name)
	}
	if f.Percentage < 0 || f.Percentage > 100 {
		return domain.Format{}, fmt.Errorf("%w: %s/%s percentage %v out of range", domain.ErrMalformedData, period, f.Name, f.Percentage)
	}

	byRating := make(map[int]int, len(f.ByRating))
	for key, n := range f.ByRating {
		rating, err := strconv.Atoi(key)
		if err != nil || rating < 0 {
			return domain.Format{}, fmt.Errorf("%w: %s/%s bad rating key %q", domain.ErrMalformedData, period, f.Name, key)
		}
		if n < 0 {
			return domain.Format{}, fmt.Errorf("%w: %s/%s negative count at rating %d", domain.ErrMalformedData, period, f.Name, rating)
		}
		byRating[rating] = n
	}

	unfiltered, ok := byRating[0]
	if !ok {
		return domain.Format{}, fmt.Errorf("%w: %s/%s missing rating-0 bucket", domain.ErrMalformedData, period, f.Name)
	}
	if unfiltered != f.TotalBattles {
		return domain.Format{}, fmt.Errorf("%w: %s/%s rating-0 bucket %d != total %d",
			domain.ErrMalformedData, period, f.Name, unfiltered, f.TotalBattles)
	}

	return domain.Format{
		Name:         f.Name,
		TotalBattles: f.TotalBattles,
		Percentage:   f.Percentage,
		ByRating:     byRating,
	}, nil
}
