package dashboard

import (
	"html/template"
	"net/http"
	"strconv"
)

var funcMap = template.FuncMap{
	"kg": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"graphData": func(output string, state ControlState) graphData {
		return graphData{ID: output, URL: "/chart/" + output + ".svg?" + state.Query().Encode()}
	},
}

var pageTmpl = template.Must(template.New("dashboard").Funcs(funcMap).Parse(tmplGraph + tmplPage))

type graphData struct {
	ID  string
	URL string
}

type pageData struct {
	Layout       Layout
	State        ControlState
	Dependencies map[string][]string
}

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := ParseState(r.URL.Query(), s.app.Layout)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	data := pageData{
		Layout:       s.app.Layout,
		State:        state,
		Dependencies: s.app.Registry.Dependencies(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, "page", data); err != nil {
		s.log.Warnw("template error", "error", err)
	}
}

const tmplGraph = `{{define "graph"}}<div class="graph"><img id="{{.ID}}" src="{{.URL}}" alt="{{.ID}}"></div>{{end}}`

const tmplPage = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Layout.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:sans-serif;background:#fafafa;color:#503D36;font-size:14px;line-height:1.5;padding:16px}
h1{text-align:center;font-size:40px;margin-bottom:16px}
.control{background:#fff;border:1px solid #ddd;border-radius:6px;padding:12px 16px;margin-bottom:12px}
.control label{display:block;font-weight:600;margin-bottom:6px}
select{width:100%;padding:6px;font-size:14px}
.range{display:flex;gap:12px;align-items:center}
.range input{flex:1}
.range output{min-width:70px;text-align:right;font-family:monospace}
.graph{background:#fff;border:1px solid #ddd;border-radius:6px;padding:8px;margin-bottom:12px;text-align:center}
.graph img{max-width:100%}
</style>
</head>
<body>
<h1>{{.Layout.Title}}</h1>

<div class="control">
  <label for="{{.Layout.Dropdown.ID}}">Launch site</label>
  <select id="{{.Layout.Dropdown.ID}}" data-control="{{.Layout.Dropdown.ID}}">
    <option value="" disabled>{{.Layout.Dropdown.Placeholder}}</option>
    {{- range .Layout.Dropdown.Options}}
    <option value="{{.Value}}"{{if eq .Value $.State.Site}} selected{{end}}>{{.Label}}</option>
    {{- end}}
  </select>
</div>

{{template "graph" (graphData (index .Layout.Graphs 0).ID .State)}}

<div class="control">
  <label>Payload range (Kg)</label>
  {{- with .Layout.Slider}}
  <div class="range" id="{{.ID}}">
    <input type="range" name="lo" data-control="{{.ID}}" min="{{kg .Min}}" max="{{kg .Max}}" step="{{kg .Step}}" value="{{kg $.State.Payload.Lo}}">
    <output data-for="lo">{{kg $.State.Payload.Lo}}</output>
    <input type="range" name="hi" data-control="{{.ID}}" min="{{kg .Min}}" max="{{kg .Max}}" step="{{kg .Step}}" value="{{kg $.State.Payload.Hi}}">
    <output data-for="hi">{{kg $.State.Payload.Hi}}</output>
  </div>
  {{- end}}
</div>

{{template "graph" (graphData (index .Layout.Graphs 1).ID .State)}}

<script>
const deps = {{.Dependencies}};
const site = document.getElementById({{.Layout.Dropdown.ID}});
const lo = document.querySelector('input[name=lo]');
const hi = document.querySelector('input[name=hi]');

function query() {
  const q = new URLSearchParams({site: site.value, lo: lo.value, hi: hi.value});
  return q.toString();
}

function refresh(control) {
  const q = query();
  for (const [output, inputs] of Object.entries(deps)) {
    if (!inputs.includes(control)) continue;
    const img = document.getElementById(output);
    if (img) img.src = '/chart/' + output + '.svg?' + q;
  }
  history.replaceState(null, '', '/?' + q);
}

document.querySelectorAll('[data-control]').forEach(el => {
  el.addEventListener('input', () => {
    const out = document.querySelector('output[data-for="' + el.name + '"]');
    if (out) out.textContent = el.value;
  });
  el.addEventListener('change', () => refresh(el.dataset.control));
});
</script>
</body>
</html>{{end}}`
