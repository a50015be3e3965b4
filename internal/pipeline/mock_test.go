package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/sells-group/leadgen-cli/pkg/places"
)

// stubClient scripts Places responses for tests.
type stubClient struct {
	mu sync.Mutex

	searchPages  []searchStep
	searchCalls  int
	detailsFn    func(placeID string, call int) (*places.DetailsResponse, error)
	detailsCalls map[string]int
}

type searchStep struct {
	resp *places.TextSearchResponse
	err  error
}

func (c *stubClient) TextSearch(_ context.Context, _ places.TextSearchRequest) (*places.TextSearchResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.searchCalls >= len(c.searchPages) {
		return &places.TextSearchResponse{Status: places.StatusZeroResults}, nil
	}
	step := c.searchPages[c.searchCalls]
	c.searchCalls++
	return step.resp, step.err
}

func (c *stubClient) Details(_ context.Context, placeID string) (*places.DetailsResponse, error) {
	c.mu.Lock()
	if c.detailsCalls == nil {
		c.detailsCalls = make(map[string]int)
	}
	c.detailsCalls[placeID]++
	call := c.detailsCalls[placeID]
	c.mu.Unlock()

	if c.detailsFn == nil {
		return okDetails(placeID), nil
	}
	return c.detailsFn(placeID, call)
}

func okDetails(placeID string) *places.DetailsResponse {
	return &places.DetailsResponse{
		Status: places.StatusOK,
		Result: places.DetailsResult{
			PlaceID:        placeID,
			Name:           "Biz " + placeID,
			BusinessStatus: "OPERATIONAL",
			PhoneNumber:    "555-0100",
			Website:        "https://example.com",
		},
	}
}

func page(status places.Status, token string, ids ...string) *places.TextSearchResponse {
	resp := &places.TextSearchResponse{Status: status, NextPageToken: token}
	for _, id := range ids {
		resp.Results = append(resp.Results, places.SearchResult{PlaceID: id, Name: "Biz " + id})
	}
	return resp
}

// fakeSleeper records every wait without sleeping. Setting failOn makes
// waits of that class return a cancellation error.
type fakeSleeper struct {
	mu     sync.Mutex
	waits  []recordedWait
	failOn DelayClass
}

type recordedWait struct {
	class DelayClass
	d     time.Duration
}

func (s *fakeSleeper) Sleep(ctx context.Context, class DelayClass, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.failOn != "" && class == s.failOn {
		return context.Canceled
	}
	s.mu.Lock()
	s.waits = append(s.waits, recordedWait{class: class, d: d})
	s.mu.Unlock()
	return nil
}

// recordingSink captures truncation events; everything else is discarded.
type recordingSink struct {
	NopSink
	mu        sync.Mutex
	truncated []truncEvent
}

type truncEvent struct {
	reason    string
	collected int
}

func (s *recordingSink) SearchTruncated(reason string, collected int) {
	s.mu.Lock()
	s.truncated = append(s.truncated, truncEvent{reason: reason, collected: collected})
	s.mu.Unlock()
}

func (s *fakeSleeper) count(class DelayClass) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, w := range s.waits {
		if w.class == class {
			n++
		}
	}
	return n
}
