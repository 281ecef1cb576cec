package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"showdown-stats/internal/domain"
	"showdown-stats/internal/render"
	"showdown-stats/internal/service"
	"showdown-stats/internal/stats"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ViewerServer translates HTTP requests into filter/sort state, runs the
// pure projection pipeline, and writes rendered markup or JSON. All state
// lives in the query string; the server itself holds none per client.
type ViewerServer struct {
	snapshots *service.SnapshotService
	renderer  *render.Renderer
	logger    zerolog.Logger
}

func NewViewerServer(snapshots *service.SnapshotService, renderer *render.Renderer, logger zerolog.Logger) *ViewerServer {
	return &ViewerServer{snapshots: snapshots, renderer: renderer, logger: logger}
}

func (s *ViewerServer) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", s.handleTable)
	r.Get("/api/stats", s.handleStatsJSON)
	r.Get("/api/index", s.handleIndexJSON)
	r.Get("/healthz", s.handleHealthz)
	return r
}

// query holds the parsed view parameters. The view mode (table vs detail)
// is decided once per request by the presence of the format parameter.
type query struct {
	period string
	rating int
	sort   domain.SortState
	format string
}

func parseQuery(r *http.Request) (query, error) {
	q := query{
		period: r.URL.Query().Get("period"),
		sort:   domain.DefaultSortState(),
		format: r.URL.Query().Get("format"),
	}

	if v := r.URL.Query().Get("rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, errors.New("rating must be a non-negative integer")
		}
		q.rating = n
	}

	if v := r.URL.Query().Get("sort"); v != "" {
		col := domain.SortColumn(v)
		if !domain.ValidSortColumn(col) {
			return q, errors.New("unknown sort column")
		}
		q.sort.Column = col
		// Direction falls back to the column default unless given.
		if col == domain.SortByName {
			q.sort.Direction = domain.SortAsc
		} else {
			q.sort.Direction = domain.SortDesc
		}
	}

	if v := r.URL.Query().Get("dir"); v != "" {
		switch domain.SortDirection(v) {
		case domain.SortAsc:
			q.sort.Direction = domain.SortAsc
		case domain.SortDesc:
			q.sort.Direction = domain.SortDesc
		default:
			return q, errors.New("dir must be asc or desc")
		}
	}

	return q, nil
}

func (s *ViewerServer) handleTable(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if q.format != "" {
		s.handleDetail(w, r, q)
		return
	}

	snap, err := s.snapshots.Snapshot(r.Context(), q.period)
	if err != nil {
		s.renderLoadError(w, r, err)
		return
	}

	rows := stats.Sort(stats.Project(snap, q.rating), q.sort)
	page := render.BuildTablePage(snap, rows, q.rating, q.sort)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Table(w, page); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("table render failed")
	}
}

func (s *ViewerServer) handleDetail(w http.ResponseWriter, r *http.Request, q query) {
	format, snap, err := s.snapshots.FormatDetail(r.Context(), q.period, q.format)
	if err != nil {
		if errors.Is(err, domain.ErrFormatNotFound) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			s.writeErrorPage(w, "No stats for that format this period.")
			return
		}
		s.renderLoadError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Detail(w, render.BuildDetailPage(snap, format)); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("detail render failed")
	}
}

// statsResponse is the JSON mirror of the table view.
type statsResponse struct {
	Period       string       `json:"period"`
	Rating       int          `json:"rating"`
	TotalBattles int          `json:"total_battles"`
	Rows         []domain.Row `json:"formats"`
	Sort         string       `json:"sort"`
	Direction    string       `json:"dir"`
	Thresholds   []int        `json:"rating_thresholds"`
	LoadedAt     time.Time    `json:"loaded_at"`
}

func (s *ViewerServer) handleStatsJSON(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := s.snapshots.Snapshot(r.Context(), q.period)
	if err != nil {
		status := loadErrorStatus(err)
		s.writeJSONError(w, status, err.Error())
		return
	}

	rows := stats.Sort(stats.Project(snap, q.rating), q.sort)
	if rows == nil {
		rows = []domain.Row{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statsResponse{
		Period:       snap.Period,
		Rating:       q.rating,
		TotalBattles: snap.TotalBattles,
		Rows:         rows,
		Sort:         string(q.sort.Column),
		Direction:    string(q.sort.Direction),
		Thresholds:   snap.RatingThresholds,
		LoadedAt:     snap.LoadedAt,
	})
}

func (s *ViewerServer) handleIndexJSON(w http.ResponseWriter, r *http.Request) {
	index, err := s.snapshots.Index()
	if err != nil {
		s.writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(index)
}

func (s *ViewerServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	period, loadID, loadedAt, ok := s.snapshots.Status()
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "loading"})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"period":    period,
		"load_id":   loadID,
		"loaded_at": loadedAt,
	})
}

// renderLoadError maps the load failure taxonomy onto a status code and an
// inline error page. Nothing upstream-facing leaks a stack trace.
func (s *ViewerServer) renderLoadError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("load failed")
	status := loadErrorStatus(err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	s.writeErrorPage(w, loadErrorMessage(err))
}

func (s *ViewerServer) renderError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	s.writeErrorPage(w, msg)
}

func (s *ViewerServer) writeErrorPage(w http.ResponseWriter, msg string) {
	if err := s.renderer.Error(w, render.ErrorPage{Message: msg, BackHref: "/"}); err != nil {
		s.logger.Error().Err(err).Msg("error page render failed")
	}
}

func (s *ViewerServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func loadErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownPeriod):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFormatNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedData):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrIndexFetch), errors.Is(err, domain.ErrDataFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownPeriod):
		return "That stats period is not published."
	case errors.Is(err, domain.ErrIndexFetch):
		return "Could not reach the stats index. Try reloading."
	case errors.Is(err, domain.ErrDataFetch):
		return "Could not load stats for this period. Try reloading."
	case errors.Is(err, domain.ErrMalformedData):
		return "The published stats file looks corrupt."
	default:
		return "Something went wrong loading the stats."
	}
}
