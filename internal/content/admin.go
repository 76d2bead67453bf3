package content

import (
	"jyotish/api/internal/coerce"
)

// bannerRule describes where one banner field may arrive from. The
// precedence is: submitted banners key, then the legacy hero keys in
// order, then the stored value. Rules with preserveStored put the
// stored value first instead, which pins the field against overwrite.
type bannerRule struct {
	bodyKey        string
	legacyKeys     []string
	preserveStored bool
	stored         func(Banners) string
	set            func(*Banners, string)
}

var bannerRules = []bannerRule{
	{
		bodyKey:    "heroBannerDesktopUrl",
		legacyKeys: []string{"desktopBanner", "desktopBannerUrl"},
		stored:     func(b Banners) string { return b.HeroBannerDesktopURL },
		set:        func(b *Banners, v string) { b.HeroBannerDesktopURL = v },
	},
	{
		bodyKey:    "heroBannerMobileUrl",
		legacyKeys: []string{"mobileBanner", "mobileBannerUrl"},
		stored:     func(b Banners) string { return b.HeroBannerMobileURL },
		set:        func(b *Banners, v string) { b.HeroBannerMobileURL = v },
	},
	{
		bodyKey:    "heroHeadline",
		legacyKeys: []string{"headline"},
		stored:     func(b Banners) string { return b.HeroHeadline },
		set:        func(b *Banners, v string) { b.HeroHeadline = v },
	},
	{
		bodyKey:    "heroSub",
		legacyKeys: []string{"subline", "sub"},
		stored:     func(b Banners) string { return b.HeroSub },
		set:        func(b *Banners, v string) { b.HeroSub = v },
	},
	{
		bodyKey:    "heroKicker",
		legacyKeys: []string{"kicker"},
		stored:     func(b Banners) string { return b.HeroKicker },
		set:        func(b *Banners, v string) { b.HeroKicker = v },
	},
	{
		bodyKey:        "whatsappNumber",
		legacyKeys:     []string{"whatsapp"},
		preserveStored: true,
		stored:         func(b Banners) string { return b.WhatsappNumber },
		set:            func(b *Banners, v string) { b.WhatsappNumber = v },
	},
}

// NormalizeAdmin turns a free-form admin submission into a canonical
// Document. existing is the previously stored document, or nil before
// the first save; it supplies fallback banner values and the pinned
// whatsapp number. Unknown top-level keys in body are discarded.
// Collection order is preserved as submitted; entries missing their
// required fields are dropped.
func NormalizeAdmin(body map[string]any, existing *Document) Document {
	banners := objectField(body, "banners")
	hero := objectField(body, "hero")
	if len(hero) == 0 {
		hero = objectField(banners, "hero")
	}

	var stored Banners
	if existing != nil {
		stored = existing.Banners
	}

	doc := Document{
		Currency:     coerce.AsString(body["currency"], DefaultCurrency),
		Banners:      reconcileBanners(banners, hero, stored),
		Services:     []Service{},
		FAQ:          []FaqEntry{},
		Testimonials: []Testimonial{},
	}
	if doc.Currency == "" {
		doc.Currency = DefaultCurrency
	}

	for _, v := range listField(body, "services") {
		if s, ok := serviceFromPayload(v); ok {
			doc.Services = append(doc.Services, s)
		}
	}
	for _, v := range listField(body, "faq") {
		if f, ok := faqFromPayload(v); ok {
			doc.FAQ = append(doc.FAQ, f)
		}
	}
	for _, v := range listField(body, "testimonials") {
		if tm, ok := testimonialFromPayload(v); ok {
			doc.Testimonials = append(doc.Testimonials, tm)
		}
	}
	return doc
}

func reconcileBanners(banners, hero map[string]any, stored Banners) Banners {
	var out Banners
	for _, rule := range bannerRules {
		candidates := make([]string, 0, len(rule.legacyKeys)+2)
		if rule.preserveStored {
			candidates = append(candidates, rule.stored(stored))
		}
		candidates = append(candidates, coerce.AsString(banners[rule.bodyKey], ""))
		for _, key := range rule.legacyKeys {
			candidates = append(candidates, coerce.AsString(hero[key], ""))
		}
		if !rule.preserveStored {
			candidates = append(candidates, rule.stored(stored))
		}
		rule.set(&out, firstNonEmpty(candidates))
	}
	return out
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// serviceFromPayload maps one submitted service, reporting ok=false
// when the required id or name is missing.
func serviceFromPayload(v any) (Service, bool) {
	m, _ := v.(map[string]any)
	s := Service{
		ID:       coerce.AsString(m["id"], ""),
		Name:     coerce.AsString(m["name"], ""),
		Price:    coerce.AsNumber(m["price"], 0),
		Badge:    coerce.AsString(m["badge"], ""),
		Subtitle: coerce.AsString(m["subtitle"], ""),
		Bullets:  coerce.Bullets(m["bullets"]),
		CTA:      coerce.AsString(m["cta"], DefaultCTA),
		GSTNote:  coerce.AsString(m["gst_note"], DefaultGSTNote),
		Active:   coerce.AsBool(m["active"]),
		Sort:     coerce.AsNumber(m["sort"], DefaultSort),
	}
	if s.ID == "" || s.Name == "" {
		return Service{}, false
	}
	return s, true
}

func faqFromPayload(v any) (FaqEntry, bool) {
	m, _ := v.(map[string]any)
	f := FaqEntry{
		Q:      coerce.AsString(m["q"], ""),
		A:      coerce.AsString(m["a"], ""),
		Active: coerce.AsBool(m["active"]),
		Sort:   coerce.AsNumber(m["sort"], DefaultSort),
	}
	if f.Q == "" || f.A == "" {
		return FaqEntry{}, false
	}
	return f, true
}

func testimonialFromPayload(v any) (Testimonial, bool) {
	m, _ := v.(map[string]any)
	tm := Testimonial{
		Name:   coerce.AsString(m["name"], ""),
		City:   coerce.AsString(m["city"], ""),
		Text:   coerce.AsString(m["text"], ""),
		Active: coerce.AsBool(m["active"]),
		Sort:   coerce.AsNumber(m["sort"], DefaultSort),
	}
	if tm.Name == "" || tm.Text == "" {
		return Testimonial{}, false
	}
	return tm, true
}

func objectField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

func listField(m map[string]any, key string) []any {
	list, _ := m[key].([]any)
	return list
}
