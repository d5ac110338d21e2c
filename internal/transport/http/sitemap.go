package http

import (
	"bytes"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<title>Star Wars API</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; background: #111; color: #eee; }
a { color: #ffe81f; }
code { color: #9cf; }
li { margin: 4px 0; }
</style>
</head>
<body>
<h1>Star Wars API</h1>
<p>Endpoints:</p>
<ul>
{{- range .}}
  <li><code>{{.Method}}</code> {{if .Link}}<a href="{{.Path}}">{{.Path}}</a>{{else}}{{.Path}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type sitemapEntry struct {
	Method string
	Path   string
	Link   bool
}

// RegisterSitemap serves an index of every registered route on GET /. Only
// GET routes without path parameters are rendered as links.
func RegisterSitemap(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		var buf bytes.Buffer
		if err := sitemapTemplate.Execute(&buf, sitemapEntries(e.Routes())); err != nil {
			return respondError(c, err, "unable to render sitemap")
		}
		return c.HTMLBlob(http.StatusOK, buf.Bytes())
	})
}

func sitemapEntries(routes []*echo.Route) []sitemapEntry {
	seen := make(map[string]bool, len(routes))
	entries := make([]sitemapEntry, 0, len(routes))
	for _, r := range routes {
		if r.Path == "/" || strings.HasPrefix(r.Path, "/swagger") || r.Method == echo.RouteNotFound {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, sitemapEntry{
			Method: r.Method,
			Path:   r.Path,
			Link:   r.Method == http.MethodGet && !strings.ContainsAny(r.Path, ":*"),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})
	return entries
}
