package endpoint

import (
	"fmt"
	"net/http"
)

// HealthzEndpoint is the http.HandlerFunc for /healthz page.
func HealthzEndpoint(rep Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")

		if err := rep.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintln(w, "FAILURE")
			fmt.Fprintln(w, err)
		} else {
			fmt.Fprintln(w, "HEALTHY")
		}
	}
}
