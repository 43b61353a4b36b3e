package storemon

import (
	"time"
)

const (
	// JobRunning means the report is still being computed.
	JobRunning JobStatus = iota

	// JobComplete means the report finished and the artifact is available.
	JobComplete

	// JobFailed means the report aborted; Error of the job holds the reason.
	JobFailed
)

// JobStatus is the lifecycle state of a report job.
//
// A job starts in JobRunning and transitions exactly once, to either
// JobComplete or JobFailed. Terminal states are final.
type JobStatus int8

// ParseJobStatus is parse job status string
func ParseJobStatus(raw string) JobStatus {
	switch raw {
	case "complete":
		return JobComplete
	case "failed":
		return JobFailed
	default:
		return JobRunning
	}
}

// String is make JobStatus a string
func (s JobStatus) String() string {
	switch s {
	case JobComplete:
		return "complete"
	case JobFailed:
		return "failed"
	default:
		return "running"
	}
}

// MarshalText is marshal JobStatus as text
func (s JobStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is unmarshal text as job status
func (s *JobStatus) UnmarshalText(text []byte) error {
	*s = ParseJobStatus(string(text))
	return nil
}

// ReportJob is the lifecycle record of one report generation request.
type ReportJob struct {
	// ID is an opaque unique token allocated when the job was triggered.
	ID string `json:"report_id"`

	Status JobStatus `json:"status"`

	// Artifact is the path of the generated report file.
	// It is empty unless Status is JobComplete.
	Artifact string `json:"report_url,omitempty"`

	// Error is a human readable failure detail.
	// It is empty unless Status is JobFailed.
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
