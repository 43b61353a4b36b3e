package endpoint

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/storemon/storemon/internal/reportconv"
	api "github.com/storemon/storemon/lib-storemon"
)

type triggerResponse struct {
	ReportID string `json:"report_id"`
}

// TriggerEndpoint is the http.HandlerFunc for /trigger_report.
// It starts a report job and returns its id without waiting for the result.
func TriggerEndpoint(rep Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		id, err := rep.Trigger(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusAccepted, triggerResponse{ReportID: id})
	}
}

type reportStatusResponse struct {
	Status    string `json:"status"`
	ReportURL string `json:"report_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GetReportEndpoint is the http.HandlerFunc for /get_report.
// The response shape depends on the job status, so that a client can poll
// the same URL until the job reaches a terminal state.
func GetReportEndpoint(rep Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("report_id")
		if id == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "report_id is required"})
			return
		}

		job, err := rep.Status(r.Context(), id)
		if errors.Is(err, api.ErrJobNotFound) {
			writeJSON(w, http.StatusNotFound, reportStatusResponse{Status: "not_found"})
			return
		} else if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		switch job.Status {
		case api.JobComplete:
			writeJSON(w, http.StatusOK, reportStatusResponse{
				Status:    job.Status.String(),
				ReportURL: fmt.Sprintf("/report/%s.csv", job.ID),
			})
		case api.JobFailed:
			writeJSON(w, http.StatusOK, reportStatusResponse{
				Status: job.Status.String(),
				Error:  job.Error,
			})
		default:
			writeJSON(w, http.StatusOK, reportStatusResponse{Status: job.Status.String()})
		}
	}
}

// DownloadEndpoint is the http.HandlerFunc for /report/<job-id>.csv and
// /report/<job-id>.xlsx. It serves the artifact of a completed job, in the
// format named by the path extension.
func DownloadEndpoint(rep Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/report/")
		ext := path.Ext(name)
		id := strings.TrimSuffix(name, ext)

		if id == "" || strings.ContainsAny(id, "/.") {
			http.NotFound(w, r)
			return
		}

		job, err := rep.Status(r.Context(), id)
		if errors.Is(err, api.ErrJobNotFound) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		if job.Status != api.JobComplete {
			http.NotFound(w, r)
			return
		}

		switch ext {
		case ".csv":
			f, err := os.Open(job.Artifact)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}
			defer f.Close()

			w.Header().Set("Content-Type", "text/csv; charset=UTF-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".csv"))
			io.Copy(w, f)
		case ".xlsx":
			f, err := os.Open(job.Artifact)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}
			defer f.Close()

			rows, err := reportconv.FromCSV(f)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
				return
			}

			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".xlsx"))
			reportconv.ToXlsx(w, rows, job.CreatedAt)
		default:
			http.NotFound(w, r)
		}
	}
}
