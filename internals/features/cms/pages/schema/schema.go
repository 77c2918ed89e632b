// Package schema defines the canonical shape of every page's content
// document, the fully-populated defaults used when nothing is persisted
// yet, and the merge/patch utilities every editor endpoint goes through.
package schema

import (
	"encoding/json"
)

// Page keys of the public site.
const (
	PageHome      = "home"
	PageAbout     = "about"
	PageWhyChoose = "whyChoose"
	PageBooks     = "books"
	PageContact   = "contact"
	PageCharity   = "charity"
	PageDakshina  = "dakshina"
)

var PageKeys = []string{
	PageHome, PageAbout, PageWhyChoose, PageBooks,
	PageContact, PageCharity, PageDakshina,
}

// =========================================================
// Shared section building blocks
// =========================================================

type CTAButton struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

type HeroSection struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description"`
	BackgroundImages []string `json:"backgroundImages"`
	PrimaryCTA       CTAButton `json:"primaryCta"`
}

type Stat struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
}

type StatsSection struct {
	Items []Stat `json:"items"`
}

type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"imageUrl"`
}

type CardsSection struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Cards       []Card `json:"cards"`
}

type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type GallerySection struct {
	Heading string         `json:"heading"`
	Images  []GalleryImage `json:"images"`
}

type CTASection struct {
	Heading    string      `json:"heading"`
	Subheading string      `json:"subheading"`
	Buttons    []CTAButton `json:"buttons"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQSection struct {
	Heading string     `json:"heading"`
	Items   []FAQEntry `json:"items"`
}

type RichTextSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// =========================================================
// Per-page documents
// =========================================================

type HomeContent struct {
	Hero     HeroSection    `json:"hero"`
	Stats    StatsSection   `json:"stats"`
	Services CardsSection   `json:"services"`
	Gallery  GallerySection `json:"gallery"`
	CTA      CTASection     `json:"cta"`
}

type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type JourneySection struct {
	Heading    string      `json:"heading"`
	Body       string      `json:"body"`
	Milestones []Milestone `json:"milestones"`
}

type AboutContent struct {
	Hero         HeroSection    `json:"hero"`
	Journey      JourneySection `json:"journey"`
	Gallery      GallerySection `json:"gallery"`
	Achievements CardsSection   `json:"achievements"`
}

type WhyChooseContent struct {
	Hero         HeroSection  `json:"hero"`
	Features     CardsSection `json:"features"`
	FAQ          FAQSection   `json:"faq"`
	ServiceAreas CardsSection `json:"serviceAreas"`
}

type Book struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
	PurchaseURL string `json:"purchaseUrl"`
}

type BooksSection struct {
	Heading string `json:"heading"`
	Items   []Book `json:"items"`
}

type BooksContent struct {
	Hero  HeroSection  `json:"hero"`
	Books BooksSection `json:"books"`
}

type ContactInfoSection struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
}

type ContactFormSection struct {
	Heading        string   `json:"heading"`
	SuccessMessage string   `json:"successMessage"`
	Subjects       []string `json:"subjects"`
}

type ContactContent struct {
	Hero        HeroSection        `json:"hero"`
	ContactInfo ContactInfoSection `json:"contact_info"`
	Form        ContactFormSection `json:"form"`
}

type CharityContent struct {
	Hero        HeroSection  `json:"hero"`
	Initiatives CardsSection `json:"initiatives"`
	CTA         CTASection   `json:"cta"`
}

type AmountsSection struct {
	Currency  string `json:"currency"`
	Suggested []int  `json:"suggested"`
}

type PaymentSection struct {
	UPIID      string `json:"upiId"`
	QRImageURL string `json:"qrImageUrl"`
	Note       string `json:"note"`
}

type DakshinaContent struct {
	Hero    HeroSection     `json:"hero"`
	Intro   RichTextSection `json:"intro"`
	Amounts AmountsSection  `json:"amounts"`
	Payment PaymentSection  `json:"payment"`
}

// =========================================================
// Section typing
// =========================================================

// sectionTypes maps pageKey → sectionKey → section_type column value.
var sectionTypes = map[string]map[string]string{
	PageHome: {
		"hero": "hero", "stats": "stats", "services": "cards",
		"gallery": "gallery", "cta": "cta",
	},
	PageAbout: {
		"hero": "hero", "journey": "rich_text", "gallery": "gallery",
		"achievements": "cards",
	},
	PageWhyChoose: {
		"hero": "hero", "features": "cards", "faq": "faq",
		"serviceAreas": "cards",
	},
	PageBooks: {
		"hero": "hero", "books": "list",
	},
	PageContact: {
		"hero": "hero", "contact_info": "contact_info", "form": "form",
	},
	PageCharity: {
		"hero": "hero", "initiatives": "cards", "cta": "cta",
	},
	PageDakshina: {
		"hero": "hero", "intro": "rich_text", "amounts": "amounts",
		"payment": "payment",
	},
}

// SectionType returns the section_type string for (pageKey, sectionKey).
// Unknown sections fall back to "object" so a save never fails on typing.
func SectionType(pageKey, sectionKey string) string {
	if m, ok := sectionTypes[pageKey]; ok {
		if t, ok := m[sectionKey]; ok {
			return t
		}
	}
	return "object"
}

// SectionKeys lists the canonical section keys of a page.
func SectionKeys(pageKey string) []string {
	m, ok := sectionTypes[pageKey]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// IsKnownPage reports whether pageKey is one of the site pages.
func IsKnownPage(pageKey string) bool {
	_, ok := sectionTypes[pageKey]
	return ok
}

// toDoc converts a typed content struct into the map form the merge and
// patch utilities operate on.
func toDoc(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]any{}
	}
	return doc
}
