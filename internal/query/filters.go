// Package query holds the canonical representation of the task list
// filters. The same encoding is used as the GET /tasks query string and
// as a change-detection key on the client, so it has to be minimal
// (defaults omitted) and byte-stable for equivalent filter state.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mkaraca/task-tracker-api/internal/duedate"
	"github.com/mkaraca/task-tracker-api/internal/models"
)

type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusComplete   StatusFilter = "complete"
	StatusIncomplete StatusFilter = "incomplete"
)

type PriorityFilter string

const PriorityAll PriorityFilter = "all"

type DueFilter string

const DueAll DueFilter = "all"

// Unassigned is the wire sentinel for "filter to tasks with no
// assignee". It is distinct from leaving assignee_id off the query,
// which means no assignee filter at all. User ids start at 1, so 0 is
// never a real assignee.
const Unassigned uint64 = 0

// Filters is the full filter state of the task list. The zero value
// means "no filters": empty search, every dimension at "all", no
// assignee selection.
type Filters struct {
	Search   string
	Status   StatusFilter
	Assignee *uint64 // nil = no filter; &Unassigned = unassigned only
	Priority PriorityFilter
	Due      DueFilter
}

// FilterUnassigned returns the assignee selection for "unassigned only".
func FilterUnassigned() *uint64 {
	id := Unassigned
	return &id
}

// FilterAssignee returns the assignee selection for a specific user.
func FilterAssignee(id uint64) *uint64 {
	return &id
}

// Values renders only the non-default dimensions. Search is trimmed
// before the emptiness check and the trimmed form is what goes on the
// wire.
func (f Filters) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(f.Search); s != "" {
		v.Set("search", s)
	}
	if f.Status != "" && f.Status != StatusAll {
		v.Set("status", string(f.Status))
	}
	if f.Assignee != nil {
		v.Set("assignee_id", strconv.FormatUint(*f.Assignee, 10))
	}
	if f.Priority != "" && f.Priority != PriorityAll {
		v.Set("priority", string(f.Priority))
	}
	if f.Due != "" && f.Due != DueAll {
		v.Set("due", string(f.Due))
	}
	return v
}

// Encode returns the canonical query string. url.Values.Encode sorts
// keys, so equivalent filter state always yields byte-identical output.
func (f Filters) Encode() string {
	return f.Values().Encode()
}

// Parse reads filters from request query parameters. An absent
// parameter is the same as its "all"/unset default. Unknown enum
// values are rejected so typos do not silently match nothing.
func Parse(v url.Values) (Filters, error) {
	f := Filters{
		Status:   StatusAll,
		Priority: PriorityAll,
		Due:      DueAll,
	}

	f.Search = strings.TrimSpace(v.Get("search"))

	if s := v.Get("status"); s != "" {
		switch StatusFilter(s) {
		case StatusAll, StatusComplete, StatusIncomplete:
			f.Status = StatusFilter(s)
		default:
			return Filters{}, fmt.Errorf("status must be one of all|complete|incomplete, got %q", s)
		}
	}

	if s := v.Get("assignee_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Filters{}, fmt.Errorf("assignee_id must be an integer, got %q", s)
		}
		f.Assignee = &id
	}

	if s := v.Get("priority"); s != "" && s != string(PriorityAll) {
		p, ok := models.NormalizePriority(s)
		if !ok {
			return Filters{}, fmt.Errorf("priority must be one of low|medium|high, got %q", s)
		}
		f.Priority = PriorityFilter(p)
	}

	if s := v.Get("due"); s != "" && s != string(DueAll) {
		switch duedate.Status(s) {
		case duedate.StatusOverdue, duedate.StatusToday, duedate.StatusUpcoming:
			f.Due = DueFilter(s)
		default:
			return Filters{}, fmt.Errorf("due must be one of all|overdue|today|upcoming, got %q", s)
		}
	}

	return f, nil
}
