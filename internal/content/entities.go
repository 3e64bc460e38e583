// Package content defines the domain entities served by the site API and the
// repository ports the rest of the application reads them through.
package content

import "time"

// Image is a media reference shared across entities.
type Image struct {
	URL    string `bson:"url" json:"url"`
	Alt    string `bson:"alt,omitempty" json:"alt,omitempty"`
	Width  int    `bson:"width,omitempty" json:"width,omitempty"`
	Height int    `bson:"height,omitempty" json:"height,omitempty"`
}

// Link is a labelled hyperlink.
type Link struct {
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
}

// CTA is an optional call-to-action button.
type CTA struct {
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
}

// SEO holds per-page metadata overrides.
type SEO struct {
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	OGImage     *Image `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
}

// NavItem is a navigation entry; children nest one level deep only.
type NavItem struct {
	Label    string    `bson:"label" json:"label"`
	Href     string    `bson:"href" json:"href"`
	Children []NavItem `bson:"children,omitempty" json:"children,omitempty"`
}

// Navigation is the singleton site navigation document.
type Navigation struct {
	ID        string    `bson:"-" json:"id"`
	Items     []NavItem `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FooterColumn groups links under an optional title.
type FooterColumn struct {
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Links []Link `bson:"links" json:"links"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Name string `bson:"name" json:"name"`
	Href string `bson:"href" json:"href"`
}

// Footer is the singleton site footer document.
type Footer struct {
	ID        string         `bson:"-" json:"id"`
	Columns   []FooterColumn `bson:"columns" json:"columns"`
	Socials   []SocialLink   `bson:"socials,omitempty" json:"socials,omitempty"`
	Note      string         `bson:"note,omitempty" json:"note"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Announcement is a site notice with an optional visibility window.
// PublishedAt/ExpiresAt bound the "active" window; both are optional and an
// explicit null ExpiresAt means "never expires". Visible hides without
// deleting and defaults to true.
type Announcement struct {
	ID          string     `bson:"-" json:"id"`
	Slug        string     `bson:"slug" json:"slug"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	BodyHTML    string     `bson:"bodyHTML,omitempty" json:"bodyHTML,omitempty"`
	Image       *Image     `bson:"image,omitempty" json:"image,omitempty"`
	CTA         *CTA       `bson:"cta,omitempty" json:"cta,omitempty"`
	Tags        []string   `bson:"tags,omitempty" json:"tags"`
	Priority    int        `bson:"priority,omitempty" json:"priority"`
	Pinned      bool       `bson:"pinned,omitempty" json:"pinned"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ExpiresAt   *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Visible     bool       `bson:"visible" json:"visible"`
	Tone        string     `bson:"tone,omitempty" json:"tone"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Event is a calendar entry. StartsAt is required; EndsAt is optional.
type Event struct {
	ID          string     `bson:"-" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Image       *Image     `bson:"image,omitempty" json:"image,omitempty"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	StartsAt    time.Time  `bson:"startsAt" json:"startsAt"`
	EndsAt      *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Subservice is a named sub-offering under a Service.
type Subservice struct {
	Name  string `bson:"name" json:"name"`
	Links []Link `bson:"links,omitempty" json:"links"`
}

// Service is an offering with a detail page addressed by slug.
type Service struct {
	ID          string       `bson:"-" json:"id"`
	Slug        string       `bson:"slug" json:"slug"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Icon        *Image       `bson:"icon,omitempty" json:"icon,omitempty"`
	Subservices []Subservice `bson:"subservices,omitempty" json:"subservices"`
	Highlights  []string     `bson:"highlights,omitempty" json:"highlights"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Agreement is an institutional partnership record.
type Agreement struct {
	ID          string     `bson:"-" json:"id"`
	Slug        string     `bson:"slug" json:"slug"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Logo        *Image     `bson:"logo,omitempty" json:"logo,omitempty"`
	Category    string     `bson:"category,omitempty" json:"category,omitempty"`
	StartsAt    *time.Time `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt      *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
	Links       []Link     `bson:"links,omitempty" json:"links"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Attachment is a downloadable document (public or signed URL).
type Attachment struct {
	ID            string    `bson:"-" json:"id"`
	Title         string    `bson:"title" json:"title"`
	FileURL       string    `bson:"fileUrl" json:"fileUrl"`
	FileType      string    `bson:"fileType,omitempty" json:"fileType,omitempty"`
	FileSizeBytes int64     `bson:"fileSizeBytes,omitempty" json:"fileSizeBytes,omitempty"`
	Version       string    `bson:"version,omitempty" json:"version,omitempty"`
	Category      string    `bson:"category,omitempty" json:"category,omitempty"`
	Tags          []string  `bson:"tags,omitempty" json:"tags"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Feature is a highlighted promotional item.
type Feature struct {
	ID        string    `bson:"-" json:"id"`
	Image     Image     `bson:"image" json:"image"`
	Label     string    `bson:"label" json:"label"`
	CTA       string    `bson:"cta,omitempty" json:"cta,omitempty"`
	Brand     string    `bson:"brand,omitempty" json:"brand"`
	Tone      string    `bson:"tone,omitempty" json:"tone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Recommendation is a curated suggestion shown on listing surfaces.
type Recommendation struct {
	ID          string     `bson:"-" json:"id"`
	Slug        string     `bson:"slug,omitempty" json:"slug,omitempty"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Image       *Image     `bson:"image,omitempty" json:"image,omitempty"`
	CTA         *CTA       `bson:"cta,omitempty" json:"cta,omitempty"`
	Badge       string     `bson:"badge,omitempty" json:"badge,omitempty"`
	Kind        string     `bson:"kind,omitempty" json:"kind,omitempty"`
	Tone        string     `bson:"tone,omitempty" json:"tone,omitempty"`
	DateLabel   string     `bson:"dateLabel,omitempty" json:"dateLabel,omitempty"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Visible     bool       `bson:"visible" json:"visible"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Block is one typed content section inside a Page. Fields beyond Type are
// interpreted by the rendering side; the server passes them through as-is.
type Block struct {
	Type string         `bson:"type" json:"type"`
	Data map[string]any `bson:"data,omitempty" json:"data,omitempty"`
}

// Page is a slug-addressed content page composed of ordered blocks.
type Page struct {
	ID        string    `bson:"-" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Title     string    `bson:"title" json:"title"`
	Blocks    []Block   `bson:"blocks,omitempty" json:"blocks"`
	SEO       *SEO      `bson:"seo,omitempty" json:"seo,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
