package catalog

import "context"

// ProfileState is the lifecycle of a profile page load.
type ProfileState int

const (
	ProfileLoading ProfileState = iota
	ProfileLoaded
	ProfileNotFound
	ProfileError
)

func (s ProfileState) String() string {
	switch s {
	case ProfileLoading:
		return "loading"
	case ProfileLoaded:
		return "loaded"
	case ProfileNotFound:
		return "not_found"
	case ProfileError:
		return "error"
	}
	return "unknown"
}

// GraduationPoint is one chart-ready entry zipped from the positionally
// aligned graduation series.
type GraduationPoint struct {
	Year int     `json:"year"`
	UG   float64 `json:"ug"`
	PG   float64 `json:"pg"`
}

// ProfileController resolves one record by route slug and exposes the
// Loading -> {Loaded, NotFound, Error} state machine the profile page
// renders from. NotFound and Error are terminal until Reload.
type ProfileController struct {
	store *RecordStore
	slug  string

	state   ProfileState
	record  Record
	lastErr error
}

// NewProfileController creates a controller for the given route slug.
func NewProfileController(store *RecordStore, slug string) *ProfileController {
	return &ProfileController{store: store, slug: slug, state: ProfileLoading}
}

// Load fetches the collection and resolves the slug. A record matches by
// its stored slug or by the slug derived from its name; the first match in
// store order wins.
func (p *ProfileController) Load(ctx context.Context) ProfileState {
	p.state = ProfileLoading
	p.lastErr = nil

	if err := p.store.Load(ctx); err != nil {
		p.state = ProfileError
		p.lastErr = err
		return p.state
	}

	for _, r := range p.store.Records() {
		if r.MatchesSlug(p.slug) {
			p.record = r
			p.state = ProfileLoaded
			return p.state
		}
	}
	p.state = ProfileNotFound
	return p.state
}

// Reload restarts the lifecycle at Loading. There is no automatic retry
// out of Error; this is the user-initiated path.
func (p *ProfileController) Reload(ctx context.Context) ProfileState {
	return p.Load(ctx)
}

// State returns the current lifecycle state.
func (p *ProfileController) State() ProfileState { return p.state }

// Record returns the resolved record. Only meaningful in ProfileLoaded.
func (p *ProfileController) Record() Record { return p.record }

// Err returns the failure behind a ProfileError state.
func (p *ProfileController) Err() error { return p.lastErr }

// GraduationSeries zips the resolved record's graduation percentage slices
// into chart points.
func (p *ProfileController) GraduationSeries() []GraduationPoint {
	return ZipGraduation(p.record.Placements.GraduationPercentage)
}

// ZipGraduation pairs years with UG and PG rates positionally. The three
// slices are expected to be equal length; when they are not, the series is
// truncated to the shortest so a malformed record renders a partial chart
// instead of failing.
func ZipGraduation(g GraduationPercentage) []GraduationPoint {
	n := len(g.Years)
	if len(g.UG) < n {
		n = len(g.UG)
	}
	if len(g.PG) < n {
		n = len(g.PG)
	}

	points := make([]GraduationPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, GraduationPoint{Year: g.Years[i], UG: g.UG[i], PG: g.PG[i]})
	}
	return points
}
