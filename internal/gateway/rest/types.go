package rest

import "encoding/json"

// FileReadPayload is the body of POST /io/read_text.
type FileReadPayload struct {
	Path     string `json:"path" validate:"required"`
	Encoding string `json:"encoding"`
}

// FileReadResponse carries the decoded file content.
type FileReadResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileWritePayload is the body of POST /io/write_text.
type FileWritePayload struct {
	Path     string `json:"path" validate:"required"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// StoreSavePayload is the body of POST /store/save. Data is kept raw so the
// caller's key order reaches the file.
type StoreSavePayload struct {
	Collection string          `json:"collection" validate:"required,collection"`
	Filename   string          `json:"filename" validate:"required,docname"`
	Data       json.RawMessage `json:"data" validate:"required"`
}

// OpenExternalPayload is the body of POST /sys/open-external.
type OpenExternalPayload struct {
	URL string `json:"url" validate:"required"`
}

// StatusResponse acknowledges a write.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Target string `json:"target,omitempty"`
}

// SystemInfo describes the host the backend runs on.
type SystemInfo struct {
	Platform                string `json:"platform"`
	GoVersion               string `json:"go_version"`
	Arch                    string `json:"arch"`
	CurrentWorkingDirectory string `json:"current_working_directory"`
	DataDir                 string `json:"data_dir"`
}
