package models

import "time"

// Reserved session keys. Sessions stored under these keys are never swept.
const (
	DemoSessionKey   = "demo_session"
	SampleSessionKey = "sample_session"
)

// SessionKeyLayout formats upload timestamps into session keys. Keys built
// from it sort in upload order.
const SessionKeyLayout = "20060102_150405"

// Session associates a session key with an analyzed document.
// A stored Session is never mutated; a new upload replaces it.
type Session struct {
	Key          string            `json:"session_key"`
	DocumentText string            `json:"-"`
	Analysis     *DocumentAnalysis `json:"analysis"`
	Filename     string            `json:"filename"`
	UploadTime   time.Time         `json:"upload_time"`
}

// ProtectedSessionKeys returns the keys exempt from retention sweeps
func ProtectedSessionKeys() []string {
	return []string{DemoSessionKey, SampleSessionKey}
}
