package reconcile

import "errors"

var (
	// ErrNoDesignFields is returned when the anchor design source is missing
	// or empty. The accompanying Result carries the matching diagnostic.
	ErrNoDesignFields = errors.New("reconcile: no design fields found")
)

// MessageNoDesignFields is the diagnostic surfaced to operators when the
// design source is missing.
const MessageNoDesignFields = "No design fields found. Please upload design data."
