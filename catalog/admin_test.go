package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService implements the wire surface the admin client and the
// record store consume, backed by an in-memory slice.
type fakeCatalogService struct {
	colleges []Record
	nextID   int
	token    string
}

func newFakeCatalogService() *fakeCatalogService {
	return &fakeCatalogService{nextID: 1, token: "test-token"}
}

func (f *fakeCatalogService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"access_token": f.token},
		})
	})

	mux.HandleFunc("GET /api/colleges", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"colleges": f.colleges})
	})

	mux.HandleFunc("POST /api/colleges", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var rec Record
		json.NewDecoder(r.Body).Decode(&rec)
		rec.ID = f.nextID
		f.nextID++
		if rec.Slug == "" {
			rec.Slug = Slugify(rec.Name)
		}
		f.colleges = append(f.colleges, rec)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": rec})
	})

	mux.HandleFunc("PUT /api/colleges/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		var rec Record
		json.NewDecoder(r.Body).Decode(&rec)
		for i := range f.colleges {
			if f.colleges[i].ID == id {
				rec.ID = id
				f.colleges[i] = rec
				json.NewEncoder(w).Encode(map[string]any{"success": true, "data": rec})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("DELETE /api/colleges/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		for i := range f.colleges {
			if f.colleges[i].ID == id {
				f.colleges = append(f.colleges[:i], f.colleges[i+1:]...)
				json.NewEncoder(w).Encode(map[string]any{"success": true})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	return mux
}

func (f *fakeCatalogService) authorized(r *http.Request) bool {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") == f.token
}

func TestAdminLoginRequired(t *testing.T) {
	srv := httptest.NewServer(newFakeCatalogService().handler())
	defer srv.Close()

	store := NewRecordStore(srv.URL + "/api/colleges")
	admin := NewAdminClient(srv.URL, store)
	assert.False(t, admin.LoggedIn())

	_, err := admin.Create(context.Background(), Record{Name: "X"})
	var mutErr *MutationError
	require.ErrorAs(t, err, &mutErr)
	assert.Equal(t, http.StatusUnauthorized, mutErr.Status)

	err = admin.Login(context.Background(), "admin", "wrong")
	require.ErrorAs(t, err, &mutErr)

	require.NoError(t, admin.Login(context.Background(), "admin", "secret"))
	assert.True(t, admin.LoggedIn())

	admin.Logout()
	assert.False(t, admin.LoggedIn())
}

func TestAdminCreateRoundTripSlugLookup(t *testing.T) {
	srv := httptest.NewServer(newFakeCatalogService().handler())
	defer srv.Close()

	store := NewRecordStore(srv.URL + "/api/colleges")
	admin := NewAdminClient(srv.URL, store)
	require.NoError(t, admin.Login(context.Background(), "admin", "secret"))

	created, err := admin.Create(context.Background(), Record{
		Name:      "Maulana Azad Institute of Dental Sciences",
		Ownership: OwnershipGovernment,
		Category:  CategoryDental,
		State:     "Delhi",
		City:      "New Delhi",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// the mutation re-listed the collection into the store
	require.Len(t, store.Records(), 1)

	// the profile controller finds the record by its stored slug
	bySlug := NewProfileController(store, created.Slug)
	assert.Equal(t, ProfileLoaded, bySlug.Load(context.Background()))

	// and by the slug derived from its name
	byName := NewProfileController(store, Slugify(created.Name))
	assert.Equal(t, ProfileLoaded, byName.Load(context.Background()))
}

func TestAdminUpdateAndDeleteRefreshStore(t *testing.T) {
	srv := httptest.NewServer(newFakeCatalogService().handler())
	defer srv.Close()

	store := NewRecordStore(srv.URL + "/api/colleges")
	admin := NewAdminClient(srv.URL, store)
	require.NoError(t, admin.Login(context.Background(), "admin", "secret"))

	created, err := admin.Create(context.Background(), Record{Name: "Old Name"})
	require.NoError(t, err)

	created.Name = "New Name"
	updated, err := admin.Update(context.Background(), created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	require.Len(t, store.Records(), 1)
	assert.Equal(t, "New Name", store.Records()[0].Name)

	require.NoError(t, admin.Delete(context.Background(), created.ID))
	assert.Empty(t, store.Records())
}

func TestAdminMutationErrorLeavesStoreIntact(t *testing.T) {
	svc := newFakeCatalogService()
	srv := httptest.NewServer(svc.handler())
	defer srv.Close()

	store := NewRecordStore(srv.URL + "/api/colleges")
	admin := NewAdminClient(srv.URL, store)
	require.NoError(t, admin.Login(context.Background(), "admin", "secret"))

	_, err := admin.Create(context.Background(), Record{Name: "Keeper"})
	require.NoError(t, err)

	err = admin.Delete(context.Background(), 999)
	var mutErr *MutationError
	require.ErrorAs(t, err, &mutErr)
	assert.Equal(t, "delete", mutErr.Op)

	// the store is only replaced after a confirmed success
	assert.Len(t, store.Records(), 1)
}
