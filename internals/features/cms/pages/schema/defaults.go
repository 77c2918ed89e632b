package schema

// Defaults returns the fully-populated fallback document for a page.
// Every field of the page's shape is present; the caller merges whatever
// was persisted over this.
func Defaults(pageKey string) (map[string]any, bool) {
	switch pageKey {
	case PageHome:
		return toDoc(defaultHome()), true
	case PageAbout:
		return toDoc(defaultAbout()), true
	case PageWhyChoose:
		return toDoc(defaultWhyChoose()), true
	case PageBooks:
		return toDoc(defaultBooks()), true
	case PageContact:
		return toDoc(defaultContact()), true
	case PageCharity:
		return toDoc(defaultCharity()), true
	case PageDakshina:
		return toDoc(defaultDakshina()), true
	default:
		return nil, false
	}
}

func defaultHome() HomeContent {
	return HomeContent{
		Hero: HeroSection{
			Title:       "Pandit Ji",
			Subtitle:    "Vedic Rituals, Performed with Devotion",
			Description: "Authentic puja, havan and sanskar ceremonies for your family, at your home or online.",
			BackgroundImages: []string{
				"/images/hero/temple-morning.webp",
				"/images/hero/havan-flames.webp",
			},
			PrimaryCTA: CTAButton{Label: "Book a Puja", URL: "/contact", Style: "primary"},
		},
		Stats: StatsSection{
			Items: []Stat{
				{Label: "Years of Service", Value: 25, Suffix: "+"},
				{Label: "Ceremonies Performed", Value: 5000, Suffix: "+"},
				{Label: "Families Served", Value: 1200, Suffix: "+"},
			},
		},
		Services: CardsSection{
			Heading:     "Services",
			Description: "Every ceremony conducted with full vidhi and explanation.",
			Cards: []Card{
				{Title: "Griha Pravesh", Description: "House-warming puja for your new home.", Icon: "home", ImageURL: ""},
				{Title: "Satyanarayan Katha", Description: "Monthly and festival kathas for the whole family.", Icon: "book", ImageURL: ""},
				{Title: "Vivah Sanskar", Description: "Complete Vedic wedding ceremonies.", Icon: "rings", ImageURL: ""},
				{Title: "Navagraha Shanti", Description: "Planetary peace rituals and havans.", Icon: "fire", ImageURL: ""},
			},
		},
		Gallery: GallerySection{
			Heading: "Moments of Devotion",
			Images:  []GalleryImage{},
		},
		CTA: CTASection{
			Heading:    "Planning a Ceremony?",
			Subheading: "Reach out and we will find an auspicious muhurat together.",
			Buttons: []CTAButton{
				{Label: "Contact", URL: "/contact", Style: "primary"},
				{Label: "WhatsApp", URL: "https://wa.me/", Style: "ghost"},
			},
		},
	}
}

func defaultAbout() AboutContent {
	return AboutContent{
		Hero: HeroSection{
			Title:       "About Pandit Ji",
			Subtitle:    "A Life in Service of Dharma",
			Description: "From early training in the shastras to serving families across the world.",
			BackgroundImages: []string{"/images/hero/about.webp"},
			PrimaryCTA:  CTAButton{Label: "Our Services", URL: "/", Style: "primary"},
		},
		Journey: JourneySection{
			Heading: "The Journey",
			Body:    "Trained in the Vedic tradition from childhood, Pandit Ji has devoted his life to performing ceremonies with precision and heart.",
			Milestones: []Milestone{
				{Year: "1998", Title: "Vedic Studies", Description: "Completed formal study of karmakanda."},
				{Year: "2005", Title: "Temple Service", Description: "Head priest duties at the family temple."},
				{Year: "2015", Title: "Online Ceremonies", Description: "Began serving families abroad over video."},
			},
		},
		Gallery: GallerySection{
			Heading: "Through the Years",
			Images:  []GalleryImage{},
		},
		Achievements: CardsSection{
			Heading: "Recognition",
			Cards: []Card{
				{Title: "Shastri", Description: "Traditional qualification in Sanskrit and ritual.", Icon: "scroll"},
			},
		},
	}
}

func defaultWhyChoose() WhyChooseContent {
	return WhyChooseContent{
		Hero: HeroSection{
			Title:            "Why Families Choose Us",
			Subtitle:         "Tradition, Clarity, Care",
			Description:      "",
			BackgroundImages: []string{},
			PrimaryCTA:       CTAButton{Label: "Book Now", URL: "/contact", Style: "primary"},
		},
		Features: CardsSection{
			Heading: "What Sets Us Apart",
			Cards: []Card{
				{Title: "Authentic Vidhi", Description: "Ceremonies follow the full traditional procedure.", Icon: "om"},
				{Title: "Clear Explanations", Description: "Every mantra and step explained in plain language.", Icon: "chat"},
				{Title: "Flexible Scheduling", Description: "At your home, the temple, or online.", Icon: "calendar"},
			},
		},
		FAQ: FAQSection{
			Heading: "Common Questions",
			Items: []FAQEntry{
				{Question: "Do you perform ceremonies online?", Answer: "Yes, with full guidance on the samagri you need at home."},
				{Question: "Which languages do you speak?", Answer: "Hindi, Sanskrit and English."},
			},
		},
		ServiceAreas: CardsSection{
			Heading: "Where We Serve",
			Cards: []Card{
				{Title: "Delhi NCR", Description: "In-person ceremonies across the region."},
				{Title: "Worldwide", Description: "Online ceremonies over video call."},
			},
		},
	}
}

func defaultBooks() BooksContent {
	return BooksContent{
		Hero: HeroSection{
			Title:            "Books & Writings",
			Subtitle:         "Guides to Ritual and Practice",
			Description:      "",
			BackgroundImages: []string{},
			PrimaryCTA:       CTAButton{Label: "Browse", URL: "#books", Style: "primary"},
		},
		Books: BooksSection{
			Heading: "Published Works",
			Items:   []Book{},
		},
	}
}

func defaultContact() ContactContent {
	return ContactContent{
		Hero: HeroSection{
			Title:            "Get in Touch",
			Subtitle:         "We reply within a day",
			Description:      "",
			BackgroundImages: []string{},
			PrimaryCTA:       CTAButton{},
		},
		ContactInfo: ContactInfoSection{
			Email:    "",
			Phone:    "",
			WhatsApp: "",
			Address:  "",
		},
		Form: ContactFormSection{
			Heading:        "Send a Message",
			SuccessMessage: "Thank you! We will get back to you shortly.",
			Subjects:       []string{"Puja Booking", "Muhurat Consultation", "Other"},
		},
	}
}

func defaultCharity() CharityContent {
	return CharityContent{
		Hero: HeroSection{
			Title:            "Seva & Charity",
			Subtitle:         "Giving Back",
			Description:      "A share of every dakshina supports community seva.",
			BackgroundImages: []string{},
			PrimaryCTA:       CTAButton{Label: "Contribute", URL: "/dakshina", Style: "primary"},
		},
		Initiatives: CardsSection{
			Heading: "Ongoing Initiatives",
			Cards: []Card{
				{Title: "Anna Daan", Description: "Weekly food distribution at the temple."},
				{Title: "Vidya Daan", Description: "Sponsoring Sanskrit students."},
			},
		},
		CTA: CTASection{
			Heading: "Join the Seva",
			Buttons: []CTAButton{{Label: "Offer Dakshina", URL: "/dakshina", Style: "primary"}},
		},
	}
}

func defaultDakshina() DakshinaContent {
	return DakshinaContent{
		Hero: HeroSection{
			Title:            "Dakshina",
			Subtitle:         "Offerings with Gratitude",
			Description:      "",
			BackgroundImages: []string{},
			PrimaryCTA:       CTAButton{},
		},
		Intro: RichTextSection{
			Heading: "About Dakshina",
			Body:    "Dakshina is offered after a ceremony as a token of gratitude. Offer whatever your heart allows.",
		},
		Amounts: AmountsSection{
			Currency:  "INR",
			Suggested: []int{101, 251, 501, 1100},
		},
		Payment: PaymentSection{
			UPIID:      "",
			QRImageURL: "",
			Note:       "UPI and card payments accepted.",
		},
	}
}
