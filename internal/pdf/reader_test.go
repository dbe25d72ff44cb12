package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfmeta/internal/pdf/pdftest"
)

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		engine  Engine
		wantErr bool
	}{
		{"pdfcpu", EnginePDFCPU, false},
		{"ledongthuc", EngineLedongthuc, false},
		{"empty defaults to pdfcpu", Engine(""), false},
		{"unknown engine", Engine("mupdf"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.engine)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported PDF engine")
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

// Both backends read the same fixture to the same Document surface.
func eachEngine(t *testing.T, fn func(t *testing.T, r Reader)) {
	for _, engine := range []Engine{EnginePDFCPU, EngineLedongthuc} {
		t.Run(string(engine), func(t *testing.T) {
			r, err := NewReader(engine)
			require.NoError(t, err)
			fn(t, r)
		})
	}
}

func TestReadInfoDictionary(t *testing.T) {
	data := pdftest.Doc{Info: map[string]string{
		"Title":        "Fixture Title",
		"Author":       "Jane Roe",
		"CreationDate": "D:20230615120000+05'30'",
	}}.Bytes()

	eachEngine(t, func(t *testing.T, r Reader) {
		doc, err := r.Read(data)
		require.NoError(t, err)

		assert.Equal(t, 1, doc.PageCount)
		assert.Equal(t, "Fixture Title", doc.Info["/Title"])
		assert.Equal(t, "Jane Roe", doc.Info["/Author"])
		assert.Equal(t, "D:20230615120000+05'30'", doc.Info["/CreationDate"])
		assert.Nil(t, doc.XMP)
	})
}

func TestReadEmptyInfoDictionary(t *testing.T) {
	data := pdftest.Doc{}.Bytes()

	eachEngine(t, func(t *testing.T, r Reader) {
		doc, err := r.Read(data)
		require.NoError(t, err)

		assert.Equal(t, 1, doc.PageCount)
		assert.NotNil(t, doc.Info)
		assert.Empty(t, doc.Info)
	})
}

func TestReadMetadataStream(t *testing.T) {
	const packet = `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="r"/></x:xmpmeta>`
	data := pdftest.Doc{
		Info: map[string]string{"Title": "With XMP"},
		XMP:  packet,
	}.Bytes()

	eachEngine(t, func(t *testing.T, r Reader) {
		doc, err := r.Read(data)
		require.NoError(t, err)

		require.NotNil(t, doc.XMP)
		xml := MetadataXML(doc.XMP)
		assert.True(t, strings.Contains(xml, "xmpmeta"), "packet text should survive: %q", xml)
	})
}

func TestReadMalformedInput(t *testing.T) {
	inputs := map[string][]byte{
		"empty":      nil,
		"not a pdf":  []byte("this is plain text, not a pdf"),
		"bare magic": []byte("%PDF-1.4"),
	}

	eachEngine(t, func(t *testing.T, r Reader) {
		for name, data := range inputs {
			doc, err := r.Read(data)
			assert.Error(t, err, name)
			assert.Nil(t, doc, name)
		}
	})
}
