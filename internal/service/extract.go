package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pdfmeta/internal/model"
	"pdfmeta/internal/pdf"
)

const tracerName = "pdfmeta/internal/service"

// Extractor defines the single use case shared by both front ends: run
// metadata extraction over raw PDF bytes and produce the result record.
type Extractor interface {
	// Extract parses data and assembles the extraction result. With
	// normalizeDates set, information dictionary date fields are converted
	// to IST; otherwise they pass through raw.
	//
	// Any parser failure is caught here and reported as a single
	// descriptive error; it never propagates as a panic to the front ends.
	Extract(ctx context.Context, data []byte, filename string, normalizeDates bool) (*model.ExtractionResult, error)
}

// extractor is the concrete Extractor over a parser backend.
type extractor struct {
	reader pdf.Reader
}

// NewExtractor constructs an Extractor using the given parser backend.
func NewExtractor(reader pdf.Reader) Extractor {
	return &extractor{reader: reader}
}

func (e *extractor) Extract(ctx context.Context, data []byte, filename string, normalizeDates bool) (*model.ExtractionResult, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "extract",
		trace.WithAttributes(
			attribute.String("pdf.filename", filename),
			attribute.Int("pdf.size_bytes", len(data)),
		))
	defer span.End()

	doc, err := e.reader.Read(data)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("Failed to read PDF metadata: %w", err)
	}

	xmpXML := pdf.MetadataXML(doc.XMP)
	parsed := pdf.BuildParsedFields(doc.Info, pdf.ParseProperties(xmpXML), normalizeDates)

	result := &model.ExtractionResult{
		Filename:  filename,
		SizeBytes: int64(len(data)),
		PageCount: doc.PageCount,
		Parsed:    parsed,
		RawInfo:   renderRawInfo(doc.Info),
	}
	if xmpXML != "" {
		result.XMPXML = &xmpXML
	}
	return result, nil
}

// renderRawInfo serializes the coerced information dictionary as a JSON
// object. json.Marshal sorts map keys, so the rendering is deterministic.
func renderRawInfo(info map[string]string) string {
	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Sprintf("%v", info)
	}
	return string(b)
}
