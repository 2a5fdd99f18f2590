// Package settings implements the settings management service: a cached,
// validated, audited view over the system setting records in the database.
package settings

// Status is the outcome of a settings service operation. Storage errors are
// never passed through to callers; they are logged and mapped to a Status
// carrying the failure kind.
type Status int

const (
	// StatusOK means the operation succeeded.
	StatusOK Status = iota
	// StatusNotFound means the target key does not exist. Absence is a
	// valid result, not an error.
	StatusNotFound
	// StatusInvalidValue means the candidate value was rejected by the
	// record's validation rules.
	StatusInvalidValue
	// StatusProtected means the operation would remove a required setting.
	StatusProtected
	// StatusDuplicateKey means a setting with the same key already exists.
	StatusDuplicateKey
	// StatusStorageFailed means the underlying storage failed; details are
	// in the log, not in the result.
	StatusStorageFailed
)

// OK reports whether the operation succeeded.
func (s Status) OK() bool {
	return s == StatusOK
}

// String returns a stable textual form of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusInvalidValue:
		return "invalid value"
	case StatusProtected:
		return "setting is required and cannot be deleted"
	case StatusDuplicateKey:
		return "setting already exists"
	case StatusStorageFailed:
		return "storage failed"
	default:
		return "unknown"
	}
}
