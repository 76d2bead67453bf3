package content

import (
	"sort"

	"jyotish/api/internal/coerce"
	"jyotish/api/internal/sheetcsv"
)

// FromSheetRows assembles the live payload from the four spreadsheet
// tabs. Each collection keeps only rows satisfying its required
// fields with an affirmative active cell, then sorts ascending by the
// sort column; ties keep row order. The banners tab is passed through
// as a flat key/value map.
func FromSheetRows(services, banners, faq, testimonials []sheetcsv.Row) SheetDocument {
	doc := SheetDocument{
		Currency:     DefaultCurrency,
		Services:     []Service{},
		Banners:      map[string]string{},
		FAQ:          []FaqEntry{},
		Testimonials: []Testimonial{},
	}

	for _, row := range services {
		if s, ok := serviceFromRow(row); ok {
			doc.Services = append(doc.Services, s)
		}
	}
	sort.SliceStable(doc.Services, func(i, j int) bool {
		return doc.Services[i].Sort < doc.Services[j].Sort
	})

	for _, row := range banners {
		if key := row["key"]; key != "" {
			doc.Banners[key] = row["value"]
		}
	}

	for _, row := range faq {
		if f, ok := faqFromRow(row); ok {
			doc.FAQ = append(doc.FAQ, f)
		}
	}
	sort.SliceStable(doc.FAQ, func(i, j int) bool {
		return doc.FAQ[i].Sort < doc.FAQ[j].Sort
	})

	for _, row := range testimonials {
		if tm, ok := testimonialFromRow(row); ok {
			doc.Testimonials = append(doc.Testimonials, tm)
		}
	}
	sort.SliceStable(doc.Testimonials, func(i, j int) bool {
		return doc.Testimonials[i].Sort < doc.Testimonials[j].Sort
	})

	return doc
}

// serviceFromRow filters on non-empty id and name, a price cell that
// parses to a number, and an affirmative active cell.
func serviceFromRow(row sheetcsv.Row) (Service, bool) {
	id := coerce.AsString(row["id"], "")
	name := coerce.AsString(row["name"], "")
	price, priceOK := coerce.Number(row["price"])
	if id == "" || name == "" || !priceOK || !coerce.TruthyToken(row["active"]) {
		return Service{}, false
	}
	// An empty spreadsheet cell means "not filled in", so the cta and
	// gst_note defaults apply to empties here, unlike the admin path.
	cta := coerce.AsString(row["cta"], "")
	if cta == "" {
		cta = DefaultCTA
	}
	gstNote := coerce.AsString(row["gst_note"], "")
	if gstNote == "" {
		gstNote = DefaultGSTNote
	}
	return Service{
		ID:       id,
		Name:     name,
		Price:    price,
		Badge:    coerce.AsString(row["badge"], ""),
		Subtitle: coerce.AsString(row["subtitle"], ""),
		Bullets:  coerce.Bullets(row["bullets"]),
		CTA:      cta,
		GSTNote:  gstNote,
		Active:   true,
		Sort:     coerce.AsNumber(row["sort"], DefaultSort),
	}, true
}

func faqFromRow(row sheetcsv.Row) (FaqEntry, bool) {
	q := coerce.AsString(row["q"], "")
	a := coerce.AsString(row["a"], "")
	if q == "" || a == "" || !coerce.TruthyToken(row["active"]) {
		return FaqEntry{}, false
	}
	return FaqEntry{
		Q:      q,
		A:      a,
		Active: true,
		Sort:   coerce.AsNumber(row["sort"], DefaultSort),
	}, true
}

func testimonialFromRow(row sheetcsv.Row) (Testimonial, bool) {
	name := coerce.AsString(row["name"], "")
	text := coerce.AsString(row["text"], "")
	if name == "" || text == "" || !coerce.TruthyToken(row["active"]) {
		return Testimonial{}, false
	}
	return Testimonial{
		Name:   name,
		City:   coerce.AsString(row["city"], ""),
		Text:   text,
		Active: true,
		Sort:   coerce.AsNumber(row["sort"], DefaultSort),
	}, true
}
