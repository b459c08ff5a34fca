package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Lead is one brochure/counseling request captured from a visitor.
type Lead struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CollegeID int    `json:"collegeId,omitempty"`
	College   string `json:"college,omitempty"`
}

// LeadSubmitter delivers a captured lead. Submission is one-shot: it is
// never retried and failures are logged rather than surfaced to the user.
type LeadSubmitter interface {
	Submit(ctx context.Context, lead Lead) error
}

// HTTPLeadSubmitter posts leads to the catalog service.
type HTTPLeadSubmitter struct {
	URL    string
	Client *http.Client
}

// NewHTTPLeadSubmitter creates a submitter for the leads endpoint at url.
func NewHTTPLeadSubmitter(url string) *HTTPLeadSubmitter {
	return &HTTPLeadSubmitter{URL: url, Client: &http.Client{Timeout: 15 * time.Second}}
}

func (s *HTTPLeadSubmitter) Submit(ctx context.Context, lead Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("lead submit: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// FormState is the lead-capture modal lifecycle.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
)

// CloseAction is the explicit close contract of the modal: a close either
// discards the draft or submits it, never both and never implicitly.
type CloseAction int

const (
	// Cancel discards the draft and closes.
	Cancel CloseAction = iota
	// SubmitAndClose submits the draft and closes, but only when both
	// fields are filled; otherwise the close degrades to a Cancel.
	SubmitAndClose
)

// LeadForm models the two-field capture modal for one college. It opens,
// collects Name and Phone, and closes via Close. Fields reset on every
// close, so reopening yields a blank form (and a visitor may submit the
// same lead twice; there is no idempotency guard).
type LeadForm struct {
	submitter LeadSubmitter

	state   FormState
	college Record
	Name    string
	Phone   string
}

// NewLeadForm creates a closed form that delivers through submitter.
func NewLeadForm(submitter LeadSubmitter) *LeadForm {
	return &LeadForm{submitter: submitter}
}

// State returns the current modal state.
func (f *LeadForm) State() FormState { return f.state }

// Open opens the modal for the given college with blank fields.
func (f *LeadForm) Open(college Record) {
	f.college = college
	f.Name = ""
	f.Phone = ""
	f.state = FormOpen
}

// Close closes the modal. SubmitAndClose submits only when both fields are
// non-empty; a partially filled form is discarded, never silently
// submitted. Returns true when a lead was actually sent.
func (f *LeadForm) Close(ctx context.Context, action CloseAction) bool {
	defer func() {
		f.Name = ""
		f.Phone = ""
		f.state = FormClosed
	}()

	if action != SubmitAndClose || f.Name == "" || f.Phone == "" {
		return false
	}

	lead := Lead{
		Name:      f.Name,
		Phone:     f.Phone,
		CollegeID: f.college.ID,
		College:   f.college.Name,
	}
	if err := f.submitter.Submit(ctx, lead); err != nil {
		// Fire and forget: the UI treats every submit as a success.
		log.Printf("lead submit failed for %q: %v", f.college.Name, err)
	}
	return true
}
