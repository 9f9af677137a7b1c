package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the frontend assets mounted at /static/. The
// index page gets served directly: FileServer canonicalizes any
// ".../index.html" request into a 301 to its directory, but the root
// handler redirects clients to the literal /static/index.html path.
func StaticHandler(dir string) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/static/index.html" {
			serveIndex(w, r, dir)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

func serveIndex(w http.ResponseWriter, r *http.Request, dir string) {
	f, err := os.Open(filepath.Join(dir, "index.html"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Not found")
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
