package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"vehicle-lookup-api/internal/model"
	"vehicle-lookup-api/internal/service"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Vehicle compatibility lookup</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
.match-item { padding: .5em; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<form method="get" action="/">
<input id="searchInput" type="text" name="q" value="{{.Query}}" placeholder="e.g. toyota corolla 2015" autofocus>
<button id="searchBtn" type="submit">Search</button>
</form>
<div id="resultContainer">
{{- with .Response}}
{{- range .Messages}}
<div class="match-item"><p>{{.}}</p></div>
{{- end}}
{{- range .Results}}
<div class="match-item"><strong>Brand:</strong> {{.BrandDisplay}} <strong>Model:</strong> {{.ModelDisplay}} <strong>Vehicle year:</strong> {{.YearsDisplay}}</div>
{{- end}}
{{- if .Footer}}
<div class="match-item">{{range .Footer}}<p>{{.}}</p>{{end}}</div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

type pageData struct {
	Query    string
	Response *model.SearchResponse
}

type PageHandler struct {
	svc *service.LookupService
}

func NewPageHandler(svc *service.LookupService) *PageHandler {
	return &PageHandler{svc: svc}
}

// Index renders the search form, and the outcome when q is present
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{}
	if r.URL.Query().Has("q") {
		data.Query = r.URL.Query().Get("q")
		data.Response = h.svc.Search(r.Context(), data.Query)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "error", err)
	}
}
