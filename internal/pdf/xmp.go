package pdf

import (
	"encoding/xml"
	"strings"
)

// Metadata marks an embedded XMP metadata object. Concrete values come from
// whichever parser backend produced the document and expose a subset of the
// optional accessors below; MetadataXML is the single place that probes them.
type Metadata interface {
	isMetadata()
}

// Optional access points on a Metadata value, in probe priority order.
type xmlGetter interface {
	// GetXML retrieves the packet serialization and may fail (for example
	// when the underlying stream cannot be decoded).
	GetXML() (string, error)
}

type xmlHolder interface {
	// XML holds an already-materialized packet serialization.
	XML() string
}

type packetHolder interface {
	// Packet holds the raw, possibly still encoded, packet bytes.
	Packet() []byte
}

// MetadataXML returns the raw XML serialization of an embedded metadata
// object, or the empty string when the object is absent or none of its
// access points yields a value. A GetXML that fails does not fail the whole
// extraction; the probe simply moves on to the next access point.
func MetadataXML(m Metadata) string {
	if m == nil {
		return ""
	}
	if g, ok := m.(xmlGetter); ok {
		if s, err := g.GetXML(); err == nil && s != "" {
			return DisplayString(s)
		}
	}
	if h, ok := m.(xmlHolder); ok {
		if s := h.XML(); s != "" {
			return DisplayString(s)
		}
	}
	if p, ok := m.(packetHolder); ok {
		if b := p.Packet(); len(b) > 0 {
			return DisplayString(b)
		}
	}
	return ""
}

// Properties are the named XMP fields surfaced in parsed output. A nil field
// means the packet does not carry that property, which is distinct from an
// empty value.
type Properties struct {
	Title       *string
	Creator     *string
	Description *string
	Keywords    *string
	CreatorTool *string
	CreateDate  *string
	ModifyDate  *string
	Producer    *string
}

// xmpFieldNames maps XMP local element/attribute names to Properties slots.
// The names are unambiguous across the dc, pdf and xmp namespaces.
func (p *Properties) slot(local string) **string {
	switch local {
	case "title":
		return &p.Title
	case "creator":
		return &p.Creator
	case "description":
		return &p.Description
	case "Keywords":
		return &p.Keywords
	case "CreatorTool":
		return &p.CreatorTool
	case "CreateDate":
		return &p.CreateDate
	case "ModifyDate":
		return &p.ModifyDate
	case "Producer":
		return &p.Producer
	}
	return nil
}

// ParseProperties extracts the named XMP fields from a packet serialization.
// It walks the XML tokens rather than unmarshalling a schema because packets
// in the wild encode the same property either as a child element (often
// wrapped in rdf:Alt/rdf:Seq list items) or as an attribute on
// rdf:Description. Returns nil when the input is empty; malformed XML keeps
// whatever was collected before the error.
func ParseProperties(xmlStr string) *Properties {
	if xmlStr == "" {
		return nil
	}

	props := &Properties{}
	dec := xml.NewDecoder(strings.NewReader(xmlStr))

	// Name of the property element currently open, if any. List wrappers
	// (rdf:Alt, rdf:Seq, rdf:Bag, rdf:li) are transparent so the first item
	// text lands on the open property.
	var open **string
	var depth int

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Description" {
				for _, a := range t.Attr {
					if s := props.slot(a.Name.Local); s != nil && *s == nil {
						v := DisplayString(a.Value)
						*s = &v
					}
				}
				continue
			}
			if open != nil {
				if !isListWrapper(t.Name.Local) {
					open = nil
					depth = 0
				}
				continue
			}
			if s := props.slot(t.Name.Local); s != nil && *s == nil {
				open = s
				depth = 1
			}
		case xml.CharData:
			if open != nil {
				text := strings.TrimSpace(string(t))
				if text != "" {
					v := DisplayString(text)
					*open = &v
					open = nil
					depth = 0
				}
			}
		case xml.EndElement:
			if open != nil {
				depth--
				if depth <= 0 && !isListWrapper(t.Name.Local) {
					open = nil
					depth = 0
				}
			}
		}
	}
	return props
}

func isListWrapper(local string) bool {
	switch local {
	case "Alt", "Seq", "Bag", "li":
		return true
	}
	return false
}
