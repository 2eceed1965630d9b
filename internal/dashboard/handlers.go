package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dbsmedya/launchdash/internal/charts"
)

// UpdateResponse is the body of /api/update.
type UpdateResponse struct {
	Output string           `json:"output"`
	State  ControlState     `json:"state"`
	Chart  charts.ChartSpec `json:"chart"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnw("failed to encode response", "error", err)
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.app.Dataset.Len(),
	})
}

// GET /api/layout
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"layout":       s.app.Layout,
		"dependencies": s.app.Registry.Dependencies(),
	})
}

// GET /api/update?output=success-pie-chart&site=ALL&lo=0&hi=10000
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	output := q.Get("output")
	if output == "" {
		s.writeJSONError(w, http.StatusBadRequest, "missing 'output' parameter")
		return
	}

	spec, state, ok := s.update(w, output, q)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, UpdateResponse{Output: output, State: state, Chart: spec})
}

// GET /chart/success-pie-chart.svg?site=ALL
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	output, isSVG := strings.CutSuffix(r.PathValue("file"), ".svg")
	if !isSVG {
		s.writeJSONError(w, http.StatusNotFound, "charts are served as .svg")
		return
	}

	q := r.URL.Query()
	width, err := intParam(q.Get("width"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := intParam(q.Get("height"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	spec, _, ok := s.update(w, output, q)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderSVG(&buf, spec, width, height); err != nil {
		s.log.WithOutput(output).Errorw("chart render failed", "error", err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// update parses the control state and dispatches output, writing an error
// response and returning false on failure.
func (s *Server) update(w http.ResponseWriter, output string, q url.Values) (charts.ChartSpec, ControlState, bool) {
	state, err := ParseState(q, s.app.Layout)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return charts.ChartSpec{}, ControlState{}, false
	}

	spec, err := s.app.Update(output, state)
	if errors.Is(err, ErrUnknownOutput) {
		s.writeJSONError(w, http.StatusNotFound, err.Error())
		return charts.ChartSpec{}, ControlState{}, false
	}
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return charts.ChartSpec{}, ControlState{}, false
	}

	return spec, state, true
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 4096 {
		return 0, &ParamError{Param: "size", Value: raw, Err: errors.New("must be an integer between 0 and 4096")}
	}
	return n, nil
}
