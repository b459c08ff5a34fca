package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	leads []Lead
	err   error
}

func (r *recordingSubmitter) Submit(ctx context.Context, lead Lead) error {
	r.leads = append(r.leads, lead)
	return r.err
}

func TestLeadFormSubmitAndClose(t *testing.T) {
	sub := &recordingSubmitter{}
	form := NewLeadForm(sub)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	assert.Equal(t, FormOpen, form.State())

	form.Name = "Asha"
	form.Phone = "9876543210"

	sent := form.Close(context.Background(), SubmitAndClose)
	assert.True(t, sent)
	assert.Equal(t, FormClosed, form.State())

	require.Len(t, sub.leads, 1)
	assert.Equal(t, Lead{Name: "Asha", Phone: "9876543210", CollegeID: 7, College: "AIIMS Delhi"}, sub.leads[0])
}

func TestLeadFormCancelDiscards(t *testing.T) {
	sub := &recordingSubmitter{}
	form := NewLeadForm(sub)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	form.Name = "Asha"
	form.Phone = "9876543210"

	sent := form.Close(context.Background(), Cancel)
	assert.False(t, sent)
	assert.Empty(t, sub.leads)
	assert.Equal(t, FormClosed, form.State())
}

func TestLeadFormPartialInputNeverSubmits(t *testing.T) {
	sub := &recordingSubmitter{}
	form := NewLeadForm(sub)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	form.Name = "Asha" // phone left empty

	sent := form.Close(context.Background(), SubmitAndClose)
	assert.False(t, sent, "a partially filled form must not silently submit")
	assert.Empty(t, sub.leads)
}

func TestLeadFormResetsOnClose(t *testing.T) {
	sub := &recordingSubmitter{}
	form := NewLeadForm(sub)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	form.Name = "Asha"
	form.Phone = "9876543210"
	form.Close(context.Background(), SubmitAndClose)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	assert.Empty(t, form.Name)
	assert.Empty(t, form.Phone)

	// no idempotency guard: the same lead can be sent twice
	form.Name = "Asha"
	form.Phone = "9876543210"
	form.Close(context.Background(), SubmitAndClose)
	assert.Len(t, sub.leads, 2)
}

func TestLeadFormSubmitterErrorStillCloses(t *testing.T) {
	sub := &recordingSubmitter{err: assert.AnError}
	form := NewLeadForm(sub)

	form.Open(Record{ID: 7, Name: "AIIMS Delhi"})
	form.Name = "Asha"
	form.Phone = "9876543210"

	// from the UI's perspective the submit always succeeds
	sent := form.Close(context.Background(), SubmitAndClose)
	assert.True(t, sent)
	assert.Equal(t, FormClosed, form.State())
}
