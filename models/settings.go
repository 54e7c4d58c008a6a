package models

import "time"

type HeroSlide struct {
	ID       uint   `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	CtaText  string `json:"ctaText,omitempty"`
	CtaLink  string `json:"ctaLink,omitempty"`
}

type PageContent struct {
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

type Logo struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Footer struct {
	CompanyName string      `json:"companyName"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Copyright   string      `json:"copyright"`
}

// SiteSettings is a single-row aggregate holding all marketing content.
// Sections are stored as JSON text columns and updated in place.
type SiteSettings struct {
	ID           uint                   `gorm:"primaryKey" json:"-"`
	Logo         Logo                   `gorm:"type:text;serializer:json" json:"logo"`
	Footer       Footer                 `gorm:"type:text;serializer:json" json:"footer"`
	HeroCarousel []HeroSlide            `gorm:"type:text;serializer:json" json:"heroCarousel"`
	Pages        map[string]PageContent `gorm:"type:text;serializer:json" json:"pages"`
}

// DefaultSiteSettings is the content a fresh catalog starts with.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Logo: Logo{Text: "Trossachs"},
		Footer: Footer{
			CompanyName: "Trossachs Nigeria Ltd.",
			Address:     "123 Lagos Island, Lagos, Nigeria",
			Phone:       "+234 800 123 4567",
			Email:       "info@trossachs.ng",
			SocialLinks: SocialLinks{
				Facebook:  "https://facebook.com/trossachs",
				Twitter:   "https://twitter.com/trossachs",
				Instagram: "https://instagram.com/trossachs",
				LinkedIn:  "https://linkedin.com/company/trossachs",
			},
			Copyright: "© 2023 Trossachs. All rights reserved.",
		},
		HeroCarousel: []HeroSlide{
			{
				ID:       1,
				ImageURL: "https://images.unsplash.com/photo-1534271417223-b9dbfd8b7acd?auto=format&fit=crop&w=1200&h=600&q=80",
				Title:    "Traditional Nigerian Fashion",
				Subtitle: "Discover our collection of authentic Nigerian designs",
				CtaText:  "Shop Now",
				CtaLink:  "/category/fashion",
			},
			{
				ID:       2,
				ImageURL: "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?auto=format&fit=crop&w=1200&h=600&q=80",
				Title:    "Natural Skincare Products",
				Subtitle: "Authentic Nigerian ingredients for radiant skin",
				CtaText:  "Explore",
				CtaLink:  "/category/skincare",
			},
			{
				ID:       3,
				ImageURL: "https://images.unsplash.com/photo-1585664811087-47f65abbad64?auto=format&fit=crop&w=1200&h=600&q=80",
				Title:    "Modern Appliances",
				Subtitle: "Quality appliances for your Nigerian home",
				CtaText:  "Browse",
				CtaLink:  "/category/appliances",
			},
		},
		Pages: map[string]PageContent{
			"about": {
				Title: "About Trossachs",
				Content: "<h2>Our Story</h2>" +
					"<p>Trossachs was founded in 2020 with a vision to provide high-quality Nigerian products to our customers both locally and abroad.</p>" +
					"<h2>Our Mission</h2>" +
					"<p>Our mission is to showcase the best of Nigerian craftsmanship, design, and innovation while providing exceptional shopping experiences for our customers.</p>",
				MetaDescription: "Learn about Trossachs, Nigeria's premium e-commerce platform offering authentic Nigerian fashion, skincare, appliances and more.",
				LastUpdated:     time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			},
			"contact": {
				Title: "Contact Us",
				Content: "<h2>Get in Touch</h2>" +
					"<p>We're always eager to hear from our customers.</p>" +
					"<ul><li><strong>Address:</strong> 123 Lagos Island, Lagos, Nigeria</li>" +
					"<li><strong>Phone:</strong> +234 800 123 4567</li>" +
					"<li><strong>Email:</strong> info@trossachs.ng</li></ul>",
				MetaDescription: "Contact Trossachs for customer support, business inquiries, or questions about our Nigerian products.",
				LastUpdated:     time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}
