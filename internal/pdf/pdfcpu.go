package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pdfcpuReader parses PDFs with pdfcpu using relaxed validation.
type pdfcpuReader struct{}

func (r *pdfcpuReader) Read(data []byte) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	doc := &Document{
		PageCount: ctx.PageCount,
		Info:      make(map[string]string),
	}

	if ctx.Info != nil {
		if dict, err := ctx.DereferenceDict(*ctx.Info); err == nil && dict != nil {
			for key, obj := range dict {
				doc.Info["/"+DisplayString(key)] = r.valueString(ctx, obj)
			}
		}
	}

	if rootDict, err := ctx.Catalog(); err == nil && rootDict != nil {
		if obj, found := rootDict.Find("Metadata"); found {
			if sd, _, err := ctx.DereferenceStreamDict(obj); err == nil && sd != nil {
				doc.XMP = &pdfcpuMetadata{sd: sd}
			}
		}
	}

	return doc, nil
}

// valueString coerces one info dictionary value to its display form. String
// and hex literals decode through pdfcpu; names keep the conventional slash
// prefix; anything else falls back to its default representation.
func (r *pdfcpuReader) valueString(ctx *model.Context, obj types.Object) string {
	if s, err := ctx.DereferenceStringOrHexLiteral(obj, model.V10, nil); err == nil {
		return DisplayString(s)
	}
	if name, err := ctx.DereferenceName(obj, model.V10, nil); err == nil {
		return "/" + DisplayString(name)
	}
	resolved, err := ctx.Dereference(obj)
	if err != nil {
		return DisplayString(obj)
	}
	return DisplayString(resolved)
}

// pdfcpuMetadata wraps the catalog's XMP metadata stream. The decoded stream
// content is the preferred access point; the raw stream bytes remain
// available when decoding fails.
type pdfcpuMetadata struct {
	sd *types.StreamDict
}

func (m *pdfcpuMetadata) isMetadata() {}

// GetXML decodes the metadata stream and returns its XML content.
func (m *pdfcpuMetadata) GetXML() (string, error) {
	if err := m.sd.Decode(); err != nil {
		return "", fmt.Errorf("decode metadata stream: %w", err)
	}
	return DisplayString(m.sd.Content), nil
}

// Packet returns the raw stream bytes.
func (m *pdfcpuMetadata) Packet() []byte {
	return m.sd.Raw
}
