package model

// ExtractionResult bundles everything reported for one uploaded PDF.
// It is a pure domain model with no transport-specific dependencies: both the
// HTML viewer and the JSON endpoint serialize this same value.
// Constructed once per request and never persisted beyond the response.
type ExtractionResult struct {
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	PageCount int    `json:"page_count"`
	// Parsed maps human-readable labels to display strings, in display order.
	Parsed *FieldMap `json:"parsed"`
	// RawInfo is the coerced document information dictionary rendered as a
	// JSON object with sorted keys.
	RawInfo string `json:"raw_info"`
	// XMPXML is the raw XMP packet serialization, nil when the document
	// embeds no XMP metadata.
	XMPXML *string `json:"xmp_xml"`
}
