package dashboard

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/dbsmedya/launchdash/internal/charts"
)

// ControlState is the current value of every input control.
type ControlState struct {
	Site    string       `json:"site"`
	Payload charts.Range `json:"payload"`
}

// ParamError reports a query parameter that could not be parsed.
type ParamError struct {
	Param string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// ParseState reads control values from query parameters site, lo and hi.
// Absent parameters keep the layout defaults.
func ParseState(q url.Values, layout Layout) (ControlState, error) {
	state := layout.DefaultState()

	if q.Has("site") {
		state.Site = q.Get("site")
	}

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"lo", &state.Payload.Lo},
		{"hi", &state.Payload.Hi},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errors.New("not a finite number")
		}
		if err != nil {
			return ControlState{}, &ParamError{Param: p.name, Value: raw, Err: err}
		}
		*p.dst = v
	}

	return state, nil
}

// Query encodes the state as query parameters understood by ParseState.
func (s ControlState) Query() url.Values {
	q := url.Values{}
	q.Set("site", s.Site)
	q.Set("lo", strconv.FormatFloat(s.Payload.Lo, 'f', -1, 64))
	q.Set("hi", strconv.FormatFloat(s.Payload.Hi, 'f', -1, 64))
	return q
}
