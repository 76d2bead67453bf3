// Package content defines the site content document and the
// normalization paths that produce it: admin submissions and
// spreadsheet imports.
package content

// Document is the canonical content shape persisted in the store and
// served to the public site.
type Document struct {
	Currency     string        `json:"currency"`
	Banners      Banners       `json:"banners"`
	Services     []Service     `json:"services"`
	FAQ          []FaqEntry    `json:"faq"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Banners holds the hero section fields. WhatsappNumber is pinned to
// the stored value once set; see NormalizeAdmin.
type Banners struct {
	HeroBannerDesktopURL string `json:"heroBannerDesktopUrl"`
	HeroBannerMobileURL  string `json:"heroBannerMobileUrl"`
	HeroHeadline         string `json:"heroHeadline"`
	HeroSub              string `json:"heroSub"`
	HeroKicker           string `json:"heroKicker"`
	WhatsappNumber       string `json:"whatsappNumber"`
}

type Service struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Badge    string   `json:"badge"`
	Subtitle string   `json:"subtitle"`
	Bullets  []string `json:"bullets"`
	CTA      string   `json:"cta"`
	GSTNote  string   `json:"gst_note"`
	Active   bool     `json:"active"`
	Sort     float64  `json:"sort"`
}

type FaqEntry struct {
	Q      string  `json:"q"`
	A      string  `json:"a"`
	Active bool    `json:"active"`
	Sort   float64 `json:"sort"`
}

type Testimonial struct {
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Text   string  `json:"text"`
	Active bool    `json:"active"`
	Sort   float64 `json:"sort"`
}

// SheetDocument is the live spreadsheet-backed payload. Its banners
// are a flat key/value map taken straight from the banners tab, which
// differs from the fixed Banners struct on the admin path; the front
// end reconciles the two shapes.
type SheetDocument struct {
	Currency     string            `json:"currency"`
	Services     []Service         `json:"services"`
	Banners      map[string]string `json:"banners"`
	FAQ          []FaqEntry        `json:"faq"`
	Testimonials []Testimonial     `json:"testimonials"`
}

const (
	DefaultCurrency = "INR"
	DefaultCTA      = "Start now"
	DefaultGSTNote  = "incl. GST"
	DefaultSort     = 999
)

// Fallback is the document served before anything has been saved. It
// is never persisted.
func Fallback() Document {
	return Document{
		Currency: DefaultCurrency,
		Banners: Banners{
			HeroBannerDesktopURL: "https://cdn.apkajyotish.com/banners/hero-desktop.jpg",
			HeroBannerMobileURL:  "https://cdn.apkajyotish.com/banners/hero-mobile.jpg",
			HeroHeadline:         "Get Clarity. Get Direction.",
			HeroSub:              "Vedic guidance with practical remedies",
			HeroKicker:           "20+ Years Experience",
			WhatsappNumber:       "919999999999",
		},
		Services: []Service{
			{ID: "love", Name: "Love & Relationships", Price: 351, Badge: "Popular", Active: true, Sort: 10},
			{ID: "career", Name: "Career & Money", Price: 451, Badge: "Best Value", Active: true, Sort: 20},
		},
		FAQ: []FaqEntry{
			{Q: "What do I need to send?", A: "Date, time, place of birth.", Active: true, Sort: 10},
		},
		Testimonials: []Testimonial{
			{Name: "Rahul", City: "Delhi", Text: "Accurate & practical guidance.", Active: true, Sort: 10},
		},
	}
}
