package ledger

import "time"

// DocumentStatus is the lifecycle bucket of a dated document.
type DocumentStatus string

const (
	DocumentValid   DocumentStatus = "valid"
	DocumentRenewal DocumentStatus = "renewal"
	DocumentExpired DocumentStatus = "expired"
	DocumentUnknown DocumentStatus = "unknown"
)

// DateLayout is the wire format for document dates.
const DateLayout = "2006-01-02"

// ClassifyDocument derives a document status from its expiry date.
// Comparison is at day granularity:
//
//	expiry <  today           -> expired
//	today <= expiry < today+w -> renewal
//	otherwise                 -> valid
//
// The renewal window w is a caller-supplied setting, not a hardcoded number.
func ClassifyDocument(expiry, now time.Time, window time.Duration) DocumentStatus {
	today := truncateDay(now)
	exp := truncateDay(expiry)

	if exp.Before(today) {
		return DocumentExpired
	}
	if exp.Before(today.Add(window)) {
		return DocumentRenewal
	}
	return DocumentValid
}

// ClassifyDocumentString is ClassifyDocument over a raw date string.
// An unparsable date classifies as unknown rather than erroring.
func ClassifyDocumentString(expiry string, now time.Time, window time.Duration) DocumentStatus {
	t, err := time.Parse(DateLayout, expiry)
	if err != nil {
		return DocumentUnknown
	}
	return ClassifyDocument(t, now, window)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
