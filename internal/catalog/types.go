package catalog

// ProcessStep is one numbered step in how a service is carried out.
// Numbers are 1..N contiguous within a service.
type ProcessStep struct {
	Number      int    `yaml:"number" json:"number"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// ServiceDetail is the full record behind a service detail page.
// Slug doubles as the catalog key and the URL segment.
type ServiceDetail struct {
	Name          string        `yaml:"name" json:"name"`
	Slug          string        `yaml:"slug" json:"slug"`
	Tagline       string        `yaml:"tagline" json:"tagline"`
	ImageURL      string        `yaml:"image_url" json:"image_url"`
	Description   string        `yaml:"description" json:"description"`
	Benefits      []string      `yaml:"benefits" json:"benefits"`
	ProcessSteps  []ProcessStep `yaml:"process_steps" json:"process_steps"`
	GalleryImages []string      `yaml:"gallery_images" json:"gallery_images"`
}

// ServiceSummary is the short form shown on the home page grid.
type ServiceSummary struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// MenuLink is one entry in the header mega menu.
type MenuLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// MenuGroup is a category column in the header mega menu.
type MenuGroup struct {
	Category string     `json:"category"`
	Services []MenuLink `json:"services"`
}

// Testimonial is a customer review shown on the home page.
type Testimonial struct {
	Quote    string `json:"quote"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrustBadge is a credential badge shown under the hero.
type TrustBadge struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// SellingPoint is one "why choose us" card.
type SellingPoint struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
