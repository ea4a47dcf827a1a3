package common

import "fmt"

// The pipeline's error taxonomy. Everything except ProvenanceViolation
// is recoverable at record or attachment granularity; the batch keeps
// going and the failure is counted in the quality report.

// NormalizationError is a field-level failure. The record proceeds with
// the field nulled and the raw string retained.
type NormalizationError struct {
	Field  string
	Reason string
	Raw    string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s: %s (raw=%q)", e.Field, e.Reason, e.Raw)
}

// ExtractionError is an attachment-level failure of one chain step or of
// the whole chain. The attachment is marked text-unavailable.
type ExtractionError struct {
	Path   string
	Step   string
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s (step=%s): %s: %v", e.Path, e.Step, e.Reason, e.Cause)
	}
	return fmt.Sprintf("extract %s (step=%s): %s", e.Path, e.Step, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// GeocodeError is a record-level failure after retries. The address is
// kept raw with nil lat/lng.
type GeocodeError struct {
	Address  string
	Attempts int
	Cause    error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode %q after %d attempts: %v", e.Address, e.Attempts, e.Cause)
}

func (e *GeocodeError) Unwrap() error { return e.Cause }

// IdentityCollisionError marks two unrelated records hashing to the same
// item_id with incompatible addresses. Fatal for the record only: it is
// excluded from auto-merge and logged for manual review.
type IdentityCollisionError struct {
	ItemID    string
	RecordIDs []string
	Reason    string
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("identity collision on %s (records %v): %s", e.ItemID, e.RecordIDs, e.Reason)
}

// ProvenanceViolation is a programming-invariant breach: an attempted
// source_map row deletion or item_id mutation. Fatal for the batch; the
// run stops rather than corrupt history.
type ProvenanceViolation struct {
	ItemID   string
	RecordID string
	Op       string
}

func (e *ProvenanceViolation) Error() string {
	return fmt.Sprintf("provenance violation: %s on (%s, %s)", e.Op, e.ItemID, e.RecordID)
}
