package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStoreLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"colleges":[{"id":1,"name":"AIIMS Delhi"},{"id":2,"name":"Grant Medical College"}]}`))
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	assert.False(t, store.Loaded())
	assert.Empty(t, store.Records(), "store is empty before first load")

	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.Loaded())

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "AIIMS Delhi", records[0].Name)
}

func TestRecordStoreLoadReplacesWholesale(t *testing.T) {
	payload := `{"colleges":[{"id":1,"name":"One"},{"id":2,"name":"Two"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	require.NoError(t, store.Load(context.Background()))
	require.Len(t, store.Records(), 2)

	payload = `{"colleges":[{"id":3,"name":"Three"}]}`
	require.NoError(t, store.Load(context.Background()))

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ID)
}

func TestRecordStoreLoadMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`)) // missing the colleges field
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	err := store.Load(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.False(t, store.Loaded())
	assert.Empty(t, store.Records())
}

func TestRecordStoreLoadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	err := store.Load(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
}

func TestRecordStoreFailedLoadKeepsLastSnapshot(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"colleges":[{"id":1,"name":"One"}]}`))
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	require.NoError(t, store.Load(context.Background()))

	fail = true
	require.Error(t, store.Load(context.Background()))

	// caller decides what to do with the error; the last-loaded data stays
	assert.Len(t, store.Records(), 1)
	assert.True(t, store.Loaded())
}

func TestRecordStoreLoadCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	store := NewRecordStore(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Load(ctx)
	require.Error(t, err)
	assert.Empty(t, store.Records(), "cancelled load must not write a snapshot")
}
