package domain

import "encoding/json"

// ResultMode controls how the vendor response is normalized into a ToolResult.
type ResultMode string

const (
	// ResultModeURL expects a single output file URL.
	ResultModeURL ResultMode = "url"
	// ResultModeURLs expects an array of output file URLs.
	ResultModeURLs ResultMode = "urls"
	// ResultModeURLsOrNotFound expects an array of URLs where an empty
	// array is a valid "no match" outcome, not a failure.
	ResultModeURLsOrNotFound ResultMode = "urls-notfound"
	// ResultModeBody passes the vendor's structured body through unchanged
	// (document info and similar non-file results).
	ResultModeBody ResultMode = "body"
)

// OperationSpec describes one vendor-backed PDF operation. The proxy engine
// is driven entirely by these entries; there is no per-operation handler code.
type OperationSpec struct {
	// Name is the public operation name, e.g. "compresspdf".
	Name string
	// Endpoint is the vendor API path, e.g. "/v1/pdf/optimize".
	Endpoint string
	// Required lists request body fields that must be present and non-empty.
	Required []string
	// Defaults are merged under the caller-supplied fields.
	Defaults map[string]interface{}
	// Mode selects the response normalization strategy.
	Mode ResultMode
	// CleanupFields name request body fields holding source file URLs to
	// delete from storage after a verified success. A field value may be a
	// single URL, a comma-separated list, or a JSON array of URLs.
	CleanupFields []string
	// FallbackMessage is returned when the vendor reports success but the
	// expected URL field is absent.
	FallbackMessage string
}

// ToolResult is the normalized outcome of a successful proxy call.
type ToolResult struct {
	URL      string
	URLs     []string
	NotFound bool
	Body     json.RawMessage
}

// VendorResponse is the parsed reply from the vendor PDF API.
type VendorResponse struct {
	StatusCode int
	// IsJSON is false when the vendor replied with a non-JSON content type;
	// RawBody then carries the reply text verbatim.
	IsJSON  bool
	RawBody string

	Error   bool
	Message string
	URL     string
	URLs    []string
	JobID   string
	Status  string
	Body    json.RawMessage
}

// Ok reports whether the vendor call succeeded at the transport and logical level.
func (r *VendorResponse) Ok() bool {
	return r.IsJSON && r.StatusCode >= 200 && r.StatusCode < 300 && !r.Error
}

// JobSubmission is the result of creating an asynchronous vendor job.
type JobSubmission struct {
	JobID       string `json:"jobId"`
	OriginalURL string `json:"originalUrl"`
}

// JobStatus is the result of one poll against the vendor job-check endpoint.
type JobStatus struct {
	Status  string          `json:"status"`
	URL     string          `json:"url,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Terminal job statuses as reported by the vendor.
const (
	JobStatusSuccess = "success"
	JobStatusWorking = "working"
	JobStatusFailed  = "failed"
	JobStatusTimeout = "timeout"
)
