package content

import "context"

// Default list limits per selection, applied when a caller passes a
// non-positive limit.
const (
	DefaultAnnouncementsActive = 12
	DefaultAnnouncementsLatest = 5
	DefaultEventsUpcoming      = 12
	DefaultEventsLatest        = 10
	DefaultFeatures            = 20
	DefaultRecommendations     = 6
)

// Attachment pagination defaults and cap.
const (
	DefaultAttachmentPageSize = 24
	MaxAttachmentPageSize     = 100
)

// AttachmentQuery narrows and pages an attachment listing. Category and Q are
// combined with logical AND when both are set.
type AttachmentQuery struct {
	Category string
	Q        string
	Page     int
	PageSize int
}

// Normalize applies defaults and the page-size cap.
func (q AttachmentQuery) Normalize() AttachmentQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultAttachmentPageSize
	}
	if q.PageSize > MaxAttachmentPageSize {
		q.PageSize = MaxAttachmentPageSize
	}
	return q
}

// Skip returns the number of documents to skip for the current page.
func (q AttachmentQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.PageSize)
}

// AttachmentPage is one page of attachments plus the filter-wide total. Total
// comes from a count query issued independently of the page query, so under
// concurrent writes the two may describe slightly different moments.
type AttachmentPage struct {
	Items []Attachment `json:"items"`
	Total int64        `json:"total"`
}

// NavigationRepository reads the singleton navigation document. Get never
// fails on an empty collection; it returns a built-in default instead.
type NavigationRepository interface {
	Get(ctx context.Context) (*Navigation, error)
}

// FooterRepository reads the singleton footer document.
type FooterRepository interface {
	Get(ctx context.Context) (*Footer, error)
}

// AnnouncementRepository lists and looks up announcements.
//
// ListActive applies the visibility window (published, not expired) and sorts
// pinned first, then priority, publishedAt, createdAt. ListLatest ignores the
// window entirely and only respects the visible flag. GetBySlug returns
// (nil, nil) when no document matches.
type AnnouncementRepository interface {
	ListActive(ctx context.Context, limit int) ([]Announcement, error)
	ListLatest(ctx context.Context, limit int) ([]Announcement, error)
	GetBySlug(ctx context.Context, slug string) (*Announcement, error)
}

// EventRepository lists events.
type EventRepository interface {
	ListUpcoming(ctx context.Context, limit int) ([]Event, error)
	ListLatest(ctx context.Context, limit int) ([]Event, error)
}

// AttachmentRepository pages through attachments.
type AttachmentRepository interface {
	List(ctx context.Context, q AttachmentQuery) (*AttachmentPage, error)
}

// ServiceRepository lists services and looks them up by slug.
type ServiceRepository interface {
	ListAll(ctx context.Context) ([]Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
}

// AgreementRepository lists agreements and looks them up by slug.
type AgreementRepository interface {
	ListAll(ctx context.Context) ([]Agreement, error)
	GetBySlug(ctx context.Context, slug string) (*Agreement, error)
}

// FeatureRepository lists promotional features.
type FeatureRepository interface {
	List(ctx context.Context, limit int) ([]Feature, error)
}

// RecommendationRepository lists visible recommendations, newest first.
type RecommendationRepository interface {
	ListLatest(ctx context.Context, limit int) ([]Recommendation, error)
}

// PageRepository looks up content pages by slug.
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Page, error)
}
