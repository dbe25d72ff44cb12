package pdf

import (
	"bytes"
	"fmt"
	"io"

	ledong "github.com/ledongthuc/pdf"
)

// ledongthucReader parses PDFs with ledongthuc/pdf. The library panics on
// some malformed inputs, so Read converts panics into ordinary errors to
// honor the contract that parser failures surface as error values.
type ledongthucReader struct{}

func (r *ledongthucReader) Read(data []byte) (doc *Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("malformed document: %v", rec)
		}
	}()

	rd, err := ledong.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open reader: %w", err)
	}

	doc = &Document{
		PageCount: rd.NumPage(),
		Info:      make(map[string]string),
	}

	info := rd.Trailer().Key("Info")
	if info.Kind() == ledong.Dict {
		for _, key := range info.Keys() {
			doc.Info["/"+DisplayString(key)] = valueString(info.Key(key))
		}
	}

	meta := rd.Trailer().Key("Root").Key("Metadata")
	if meta.Kind() == ledong.Stream {
		if xml, ok := streamText(meta); ok {
			doc.XMP = &ledongthucMetadata{xml: xml}
		}
	}

	return doc, nil
}

// valueString coerces one trailer dictionary value to its display form.
func valueString(v ledong.Value) string {
	switch v.Kind() {
	case ledong.Null:
		return ""
	case ledong.String:
		return DisplayString(v.Text())
	case ledong.Name:
		return "/" + DisplayString(v.Name())
	default:
		return DisplayString(v.String())
	}
}

// streamText reads a stream value's decoded content.
func streamText(v ledong.Value) (string, bool) {
	rc := v.Reader()
	if rc == nil {
		return "", false
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", false
	}
	return DisplayString(b), true
}

// ledongthucMetadata holds the XMP packet already materialized from the
// catalog's metadata stream.
type ledongthucMetadata struct {
	xml string
}

func (m *ledongthucMetadata) isMetadata() {}

// XML returns the packet serialization.
func (m *ledongthucMetadata) XML() string {
	return m.xml
}
