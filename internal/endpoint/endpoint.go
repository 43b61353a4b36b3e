package endpoint

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/goccy/go-json"
)

func New(rep Reporter) http.Handler {
	m := http.NewServeMux()

	m.HandleFunc("/trigger_report", TriggerEndpoint(rep))
	m.HandleFunc("/get_report", GetReportEndpoint(rep))
	m.HandleFunc("/report/", DownloadEndpoint(rep))

	m.HandleFunc("/healthz", HealthzEndpoint(rep))

	m.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/healthz", http.StatusFound)
		} else {
			http.NotFound(w, r)
		}
	})

	return gziphandler.GzipHandler(m)
}

// writeJSON writes v as a JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}
