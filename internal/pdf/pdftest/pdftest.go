// Package pdftest builds small single-page PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Doc describes the document to build. Info entries become the document
// information dictionary, XMP (when set) becomes the catalog metadata stream.
type Doc struct {
	Info map[string]string
	XMP  string
}

// Minimal returns a one-page document carrying only the given Title.
func Minimal(title string) []byte {
	return Doc{Info: map[string]string{"Title": title}}.Bytes()
}

// Bytes assembles the document with a correct cross-reference table.
func (d Doc) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	content := "BT ET"

	catalog := "<< /Type /Catalog /Pages 2 0 R"
	if d.XMP != "" {
		catalog += " /Metadata 6 0 R"
	}
	catalog += " >>"

	objects := []string{
		catalog,
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		infoDict(d.Info),
	}
	if d.XMP != "" {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Metadata /Subtype /XML /Length %d >>\nstream\n%s\nendstream", len(d.XMP), d.XMP))
	}

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 5 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return buf.Bytes()
}

func infoDict(info map[string]string) string {
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<<")
	for _, k := range keys {
		fmt.Fprintf(&b, " /%s (%s)", k, escape(info[k]))
	}
	b.WriteString(" >>")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
