package render

import (
	"fmt"
	"html/template"
	"io"
	"net/url"

	"showdown-stats/internal/domain"
	"showdown-stats/internal/stats"
)

// The renderer is a pure boundary: given already-projected rows it produces
// markup and nothing else. Format names come from upstream data and are
// treated as untrusted; html/template's contextual escaping handles them.

// RatingOption is one entry of the rating filter select.
type RatingOption struct {
	Value    int
	Label    string
	Selected bool
}

// Column is one sortable header cell. Href encodes the sort state a click
// moves to, as computed by stats.Toggle.
type Column struct {
	Key    domain.SortColumn
	Label  string
	Href   string
	Active bool
	Desc   bool
}

// TablePage is everything the table view needs.
type TablePage struct {
	Period        string
	Periods       []string
	TotalBattles  int
	FormatCount   int
	Rating        int
	RatingOptions []RatingOption
	Columns       []Column
	Rows          []domain.Row
}

// DetailPage is the single-format drill-down.
type DetailPage struct {
	Period       string
	Name         string
	TotalBattles int
	Percentage   float64
	Breakdown    []RatingCount
	BackHref     string
}

type RatingCount struct {
	Rating  int
	Battles int
}

// ErrorPage replaces the table body when a load fails or a format is
// missing.
type ErrorPage struct {
	Message  string
	BackHref string
}

// BuildTablePage assembles the view model: rating options from the
// snapshot's thresholds (always including the aggregate option) and header
// links from the toggle rule.
func BuildTablePage(snap *domain.Snapshot, rows []domain.Row, rating int, st domain.SortState) TablePage {
	opts := make([]RatingOption, 0, len(snap.RatingThresholds)+1)
	if len(snap.RatingThresholds) == 0 || snap.RatingThresholds[0] != 0 {
		opts = append(opts, RatingOption{Value: 0, Label: "Rating 0+", Selected: rating == 0})
	}
	for _, r := range snap.RatingThresholds {
		opts = append(opts, RatingOption{
			Value:    r,
			Label:    fmt.Sprintf("Rating %d+", r),
			Selected: r == rating,
		})
	}

	labels := map[domain.SortColumn]string{
		domain.SortByName:       "Format",
		domain.SortByPercentage: "Usage %",
		domain.SortByBattles:    "Battles",
	}

	cols := make([]Column, 0, 3)
	for _, key := range []domain.SortColumn{domain.SortByName, domain.SortByBattles, domain.SortByPercentage} {
		next := stats.Toggle(st, key)
		cols = append(cols, Column{
			Key:    key,
			Label:  labels[key],
			Href:   tableHref(snap.Period, rating, next),
			Active: st.Column == key,
			Desc:   st.Column == key && st.Direction == domain.SortDesc,
		})
	}

	return TablePage{
		Period:        snap.Period,
		TotalBattles:  snap.TotalBattles,
		FormatCount:   len(rows),
		Rating:        rating,
		RatingOptions: opts,
		Columns:       cols,
		Rows:          rows,
	}
}

// BuildDetailPage assembles the drill-down view model for one format.
func BuildDetailPage(snap *domain.Snapshot, f domain.Format) DetailPage {
	thresholds := stats.Thresholds(f)
	breakdown := make([]RatingCount, 0, len(thresholds))
	for _, r := range thresholds {
		breakdown = append(breakdown, RatingCount{Rating: r, Battles: f.ByRating[r]})
	}
	return DetailPage{
		Period:       snap.Period,
		Name:         f.Name,
		TotalBattles: f.TotalBattles,
		Percentage:   f.Percentage,
		Breakdown:    breakdown,
		BackHref:     tableHref(snap.Period, 0, domain.DefaultSortState()),
	}
}

func tableHref(period string, rating int, st domain.SortState) string {
	q := url.Values{}
	q.Set("period", period)
	q.Set("rating", fmt.Sprintf("%d", rating))
	q.Set("sort", string(st.Column))
	q.Set("dir", string(st.Direction))
	return "/?" + q.Encode()
}

// Renderer executes the page templates. Zero value is not usable; New
// parses the embedded templates once.
type Renderer struct {
	table  *template.Template
	detail *template.Template
	errPg  *template.Template
}

func New() *Renderer {
	funcs := template.FuncMap{
		"comma": comma,
		"pct":   func(f float64) string { return fmt.Sprintf("%.2f", f) },
	}
	return &Renderer{
		table:  template.Must(template.New("table").Funcs(funcs).Parse(tableHTML)),
		detail: template.Must(template.New("detail").Funcs(funcs).Parse(detailHTML)),
		errPg:  template.Must(template.New("error").Parse(errorHTML)),
	}
}

func (r *Renderer) Table(w io.Writer, p TablePage) error {
	return r.table.Execute(w, p)
}

func (r *Renderer) Detail(w io.Writer, p DetailPage) error {
	return r.detail.Execute(w, p)
}

func (r *Renderer) Error(w io.Writer, p ErrorPage) error {
	return r.errPg.Execute(w, p)
}

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}
