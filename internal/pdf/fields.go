package pdf

import "pdfmeta/internal/model"

// Document information dictionary keys, in display order.
var infoKeys = []string{
	"Title", "Author", "Subject", "Keywords", "Creator", "Producer",
	"CreationDate", "ModDate", "Trapped",
}

// XMP overlay labels in display order, with the Properties field backing each.
var xmpFields = []struct {
	label string
	value func(*Properties) *string
}{
	{"Title (XMP)", func(p *Properties) *string { return p.Title }},
	{"Creator (XMP)", func(p *Properties) *string { return p.Creator }},
	{"Description (XMP)", func(p *Properties) *string { return p.Description }},
	{"Keywords (XMP)", func(p *Properties) *string { return p.Keywords }},
	{"CreatorTool (XMP)", func(p *Properties) *string { return p.CreatorTool }},
	{"CreateDate (XMP)", func(p *Properties) *string { return p.CreateDate }},
	{"ModifyDate (XMP)", func(p *Properties) *string { return p.ModifyDate }},
	{"Producer (XMP)", func(p *Properties) *string { return p.Producer }},
}

// BuildParsedFields assembles the ordered label->value mapping surfaced to
// callers. The nine information dictionary labels are always present, empty
// when the document does not carry them. With normalizeDates set, the two
// date fields are converted to IST and their labels suffixed accordingly;
// otherwise the raw date strings pass through (the HTML viewer keeps them
// raw, the JSON endpoint normalizes).
//
// When xmp is non-nil, up to eight "(XMP)"-suffixed labels follow the base
// nine; absent packet properties are skipped rather than emitted empty. The
// two label sets are disjoint by construction, so the overlay never clobbers
// a base field.
func BuildParsedFields(info map[string]string, xmp *Properties, normalizeDates bool) *model.FieldMap {
	fields := model.NewFieldMap()
	for _, key := range infoKeys {
		label := key
		value := info["/"+key]
		if normalizeDates && (key == "CreationDate" || key == "ModDate") {
			label = key + " (IST)"
			value = NormalizeDate(value)
		}
		fields.Set(label, value)
	}

	if xmp != nil {
		for _, f := range xmpFields {
			if v := f.value(xmp); v != nil {
				fields.Set(f.label, DisplayString(*v))
			}
		}
	}

	return fields
}
