package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmeta/internal/pdf"
	"pdfmeta/internal/pdf/pdftest"
)

func newExtractor(t *testing.T) Extractor {
	reader, err := pdf.NewReader(pdf.EnginePDFCPU)
	require.NoError(t, err)
	return NewExtractor(reader)
}

func TestExtract(t *testing.T) {
	data := pdftest.Doc{Info: map[string]string{
		"Title":        "Service Fixture",
		"Author":       "Jane Roe",
		"CreationDate": "D:20230615120000+05'30'",
	}}.Bytes()

	result, err := newExtractor(t).Extract(context.Background(), data, "fixture.pdf", false)
	require.NoError(t, err)

	assert.Equal(t, "fixture.pdf", result.Filename)
	assert.Equal(t, int64(len(data)), result.SizeBytes)
	assert.Equal(t, 1, result.PageCount)

	v, _ := result.Parsed.Get("Title")
	assert.Equal(t, "Service Fixture", v)
	v, _ = result.Parsed.Get("CreationDate")
	assert.Equal(t, "D:20230615120000+05'30'", v)

	assert.Contains(t, result.RawInfo, `"/Title":"Service Fixture"`)
	assert.Contains(t, result.RawInfo, `"/Author":"Jane Roe"`)
	assert.Nil(t, result.XMPXML)
}

func TestExtractNormalizesDates(t *testing.T) {
	data := pdftest.Doc{Info: map[string]string{
		"CreationDate": "D:20230101120000Z",
	}}.Bytes()

	result, err := newExtractor(t).Extract(context.Background(), data, "fixture.pdf", true)
	require.NoError(t, err)

	v, ok := result.Parsed.Get("CreationDate (IST)")
	assert.True(t, ok)
	assert.Equal(t, "2023-01-01 17:30:00 IST", v)

	// The raw dictionary rendering keeps the original date string.
	assert.Contains(t, result.RawInfo, "D:20230101120000Z")
}

func TestExtractSurfacesXMP(t *testing.T) {
	const packet = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
<rdf:RDF xmlns:rdf="r"><rdf:Description xmlns:pdf="p"><pdf:Producer>Acme Writer</pdf:Producer></rdf:Description></rdf:RDF>
</x:xmpmeta>`
	data := pdftest.Doc{XMP: packet}.Bytes()

	result, err := newExtractor(t).Extract(context.Background(), data, "xmp.pdf", false)
	require.NoError(t, err)

	require.NotNil(t, result.XMPXML)
	assert.Contains(t, *result.XMPXML, "Acme Writer")

	v, ok := result.Parsed.Get("Producer (XMP)")
	assert.True(t, ok)
	assert.Equal(t, "Acme Writer", v)
}

func TestExtractUnreadableInput(t *testing.T) {
	result, err := newExtractor(t).Extract(context.Background(), []byte("not a pdf"), "bad.pdf", false)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Failed to read PDF metadata: ")
}
