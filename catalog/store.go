package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// FetchError reports a failed or malformed colleges feed fetch.
type FetchError struct {
	URL    string
	Status int // HTTP status, 0 when the transport failed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// collegesFeed is the top-level shape of the colleges endpoint.
type collegesFeed struct {
	Colleges *[]Record `json:"colleges"`
}

// RecordStore is the in-memory collection of college records for the
// current session. It is populated by a single full-collection fetch and
// rebuilt wholesale on every Load; there is no incremental sync. Before
// the first successful Load the store holds an empty snapshot.
type RecordStore struct {
	baseURL string
	client  *http.Client

	mu      sync.RWMutex
	records []Record
	loaded  bool
}

// NewRecordStore creates a store backed by the colleges endpoint at
// baseURL (e.g. "https://api.example.com/api/colleges").
func NewRecordStore(baseURL string) *RecordStore {
	return &RecordStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewRecordStoreWithClient creates a store using a caller-supplied HTTP
// client, mainly for tests.
func NewRecordStoreWithClient(baseURL string, client *http.Client) *RecordStore {
	return &RecordStore{baseURL: baseURL, client: client}
}

// Load fetches the full collection and replaces the snapshot. The fetch is
// all-or-nothing: on any failure the previous snapshot stays in place and a
// *FetchError is returned. Cancelling ctx aborts the request, so a caller
// torn down mid-load never observes a late write.
func (s *RecordStore) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return &FetchError{URL: s.baseURL, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &FetchError{URL: s.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: s.baseURL, Status: resp.StatusCode}
	}

	var feed collegesFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return &FetchError{URL: s.baseURL, Err: err}
	}
	if feed.Colleges == nil {
		return &FetchError{URL: s.baseURL, Err: fmt.Errorf("payload missing colleges field")}
	}

	s.mu.Lock()
	s.records = *feed.Colleges
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Records returns the current snapshot. The returned slice is a copy;
// callers may reorder it freely without affecting the store.
func (s *RecordStore) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Loaded reports whether at least one Load has succeeded.
func (s *RecordStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
