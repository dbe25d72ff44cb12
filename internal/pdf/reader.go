package pdf

import "fmt"

// Engine identifies a PDF parsing backend.
type Engine string

const (
	// EnginePDFCPU parses with github.com/pdfcpu/pdfcpu (default).
	EnginePDFCPU Engine = "pdfcpu"
	// EngineLedongthuc parses with github.com/ledongthuc/pdf.
	EngineLedongthuc Engine = "ledongthuc"
)

// Document is the metadata surface read from one PDF: everything downstream
// field assembly needs, independent of which backend produced it.
type Document struct {
	PageCount int
	// Info is the coerced document information dictionary. Keys keep the
	// conventional leading slash ("/Title"). Empty but non-nil when the
	// document has no info dictionary.
	Info map[string]string
	// XMP is the embedded metadata object, nil when the document embeds
	// none.
	XMP Metadata
}

// Reader parses raw PDF bytes into a Document.
type Reader interface {
	Read(data []byte) (*Document, error)
}

// NewReader returns the Reader for the requested engine.
func NewReader(engine Engine) (Reader, error) {
	switch engine {
	case EnginePDFCPU, "":
		return &pdfcpuReader{}, nil
	case EngineLedongthuc:
		return &ledongthucReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported PDF engine: %q", engine)
	}
}
