package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileResolvesByStoredSlug(t *testing.T) {
	srv := feedServer(t, []Record{
		{ID: 1, Name: "AIIMS Delhi", Slug: "aiims-new-delhi"},
	})
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	ctrl := NewProfileController(store, "aiims-new-delhi")

	assert.Equal(t, ProfileLoading, ctrl.State())
	assert.Equal(t, ProfileLoaded, ctrl.Load(context.Background()))
	assert.Equal(t, "AIIMS Delhi", ctrl.Record().Name)
}

func TestProfileResolvesByDerivedSlug(t *testing.T) {
	// no persisted slug: the route parameter matches Slugify(name)
	srv := feedServer(t, []Record{
		{ID: 1, Name: "Grant Medical College, Mumbai"},
	})
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	ctrl := NewProfileController(store, "grant-medical-college-mumbai")

	assert.Equal(t, ProfileLoaded, ctrl.Load(context.Background()))
	assert.Equal(t, 1, ctrl.Record().ID)
}

func TestProfileFirstMatchInStoreOrderWins(t *testing.T) {
	// two names collide on the derived slug; store order breaks the tie
	srv := feedServer(t, []Record{
		{ID: 1, Name: "St. John's College"},
		{ID: 2, Name: "St John's College!"},
	})
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	ctrl := NewProfileController(store, "st-john-s-college")

	require.Equal(t, ProfileLoaded, ctrl.Load(context.Background()))
	assert.Equal(t, 1, ctrl.Record().ID)
}

func TestProfileNotFound(t *testing.T) {
	srv := feedServer(t, []Record{{ID: 1, Name: "Known College"}})
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	ctrl := NewProfileController(store, "unknown-college")

	assert.Equal(t, ProfileNotFound, ctrl.Load(context.Background()))
}

func TestProfileErrorAndReload(t *testing.T) {
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"colleges":[{"id":1,"name":"Known College"}]}`))
	}))
	defer srv.Close()

	store := NewRecordStore(srv.URL)
	ctrl := NewProfileController(store, "known-college")

	assert.Equal(t, ProfileError, ctrl.Load(context.Background()))
	require.Error(t, ctrl.Err())

	// no automatic retry; a user-initiated reload restarts at Loading
	fail = false
	assert.Equal(t, ProfileLoaded, ctrl.Reload(context.Background()))
	assert.NoError(t, ctrl.Err())
}

func TestZipGraduationEqualLengths(t *testing.T) {
	points := ZipGraduation(GraduationPercentage{
		Years: []int{2019, 2020},
		UG:    []float64{80, 85},
		PG:    []float64{70, 75},
	})

	require.Len(t, points, 2)
	assert.Equal(t, GraduationPoint{Year: 2019, UG: 80, PG: 70}, points[0])
	assert.Equal(t, GraduationPoint{Year: 2020, UG: 85, PG: 75}, points[1])
}

func TestZipGraduationTruncatesToShortest(t *testing.T) {
	points := ZipGraduation(GraduationPercentage{
		Years: []int{2019, 2020, 2021},
		UG:    []float64{80, 85},
		PG:    []float64{70},
	})

	require.Len(t, points, 1)
	assert.Equal(t, GraduationPoint{Year: 2019, UG: 80, PG: 70}, points[0])
}

func TestZipGraduationEmpty(t *testing.T) {
	assert.Empty(t, ZipGraduation(GraduationPercentage{}))
}
