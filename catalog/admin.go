package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MutationError reports a failed create, update or delete. The caller's
// form state is expected to survive it so the operation can be retried
// without re-entering data.
type MutationError struct {
	Op     string // "create", "update", "delete", "login"
	Status int
	Err    error
}

func (e *MutationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s college: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s college: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// AdminClient manages college records against the catalog service. Every
// successful mutation is followed by an unconditional full re-list into
// the client's record store; the store is never patched incrementally.
type AdminClient struct {
	baseURL string // e.g. "https://api.example.com"
	client  *http.Client
	store   *RecordStore
	token   string
}

// NewAdminClient creates a client for the service at baseURL.
func NewAdminClient(baseURL string, store *RecordStore) *AdminClient {
	return &AdminClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
}

// NewAdminClientWithHTTP creates a client with a caller-supplied HTTP
// client, mainly for tests.
func NewAdminClientWithHTTP(baseURL string, store *RecordStore, client *http.Client) *AdminClient {
	return &AdminClient{baseURL: baseURL, client: client, store: store}
}

// LoggedIn reports whether a login has succeeded in this session.
func (a *AdminClient) LoggedIn() bool { return a.token != "" }

// Logout clears the session token.
func (a *AdminClient) Logout() { a.token = "" }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
	Data    struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

// Login exchanges the admin credentials for a session token.
func (a *AdminClient) Login(ctx context.Context, username, password string) error {
	body, _ := json.Marshal(loginRequest{Username: username, Password: password})
	resp, err := a.do(ctx, http.MethodPost, a.baseURL+"/api/v1/auth/login", body)
	if err != nil {
		return &MutationError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &MutationError{Op: "login", Status: resp.StatusCode}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return &MutationError{Op: "login", Err: err}
	}
	a.token = lr.Data.AccessToken
	return nil
}

// Create adds a new college and re-lists the collection.
func (a *AdminClient) Create(ctx context.Context, record Record) (Record, error) {
	return a.mutate(ctx, "create", http.MethodPost, a.baseURL+"/api/colleges", record, http.StatusCreated)
}

// Update replaces the college with the given id and re-lists the
// collection. Last write wins; there is no version check.
func (a *AdminClient) Update(ctx context.Context, id int, record Record) (Record, error) {
	url := fmt.Sprintf("%s/api/colleges/%d", a.baseURL, id)
	return a.mutate(ctx, "update", http.MethodPut, url, record, http.StatusOK)
}

// Delete removes the college with the given id and re-lists the
// collection.
func (a *AdminClient) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/api/colleges/%d", a.baseURL, id)
	resp, err := a.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return &MutationError{Op: "delete", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &MutationError{Op: "delete", Status: resp.StatusCode}
	}

	return a.refresh(ctx)
}

func (a *AdminClient) mutate(ctx context.Context, op, method, url string, record Record, wantStatus int) (Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return Record{}, &MutationError{Op: op, Err: err}
	}

	resp, err := a.do(ctx, method, url, body)
	if err != nil {
		return Record{}, &MutationError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return Record{}, &MutationError{Op: op, Status: resp.StatusCode}
	}

	var envelope struct {
		Data Record `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Record{}, &MutationError{Op: op, Err: err}
	}

	if err := a.refresh(ctx); err != nil {
		return envelope.Data, err
	}
	return envelope.Data, nil
}

// refresh re-fetches the full collection after a confirmed mutation.
func (a *AdminClient) refresh(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	return a.store.Load(ctx)
}

func (a *AdminClient) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	return a.client.Do(req)
}
