package http

import "net/http"

// withJSONNotFound keeps ServeMux's routing decisions, including the
// 405 it produces when a path matches with the wrong method, but
// replaces its plain-text 404 with the JSON error envelope. A bare "/"
// catch-all would shadow the method mismatch and turn every 405 into a
// 404, so unmatched requests are intercepted here instead.
func withJSONNotFound(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			mux.ServeHTTP(&notFoundRewriter{ResponseWriter: w}, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

type notFoundRewriter struct {
	http.ResponseWriter
	rewrote bool
}

func (w *notFoundRewriter) WriteHeader(code int) {
	if code == http.StatusNotFound {
		w.rewrote = true
		writeError(w.ResponseWriter, http.StatusNotFound, codeNotFound, "Not found")
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *notFoundRewriter) Write(b []byte) (int, error) {
	if w.rewrote {
		// The JSON body was already written; drop the stdlib text.
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}
