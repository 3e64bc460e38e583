// Package contentservice binds the repository ports to the cache layer, one
// memoized method per business read.
package contentservice

import (
	"context"
	"fmt"

	"github.com/starford/laguz/internal/cache"
	"github.com/starford/laguz/internal/content"
)

// Cache tags, one per content type. Invalidating a tag drops every memoized
// read of that type, whatever its parameters.
const (
	TagNav             = "nav"
	TagFooter          = "footer"
	TagAnnouncements   = "announcements"
	TagEvents          = "events"
	TagServices        = "services"
	TagAgreements      = "agreements"
	TagAttachments     = "attachments"
	TagFeatures        = "features"
	TagRecommendations = "recommendations"
	TagPages           = "pages"
)

// Repositories collects the ports the service reads through.
type Repositories struct {
	Navigation      content.NavigationRepository
	Footer          content.FooterRepository
	Announcements   content.AnnouncementRepository
	Events          content.EventRepository
	Attachments     content.AttachmentRepository
	Services        content.ServiceRepository
	Agreements      content.AgreementRepository
	Features        content.FeatureRepository
	Recommendations content.RecommendationRepository
	Pages           content.PageRepository
}

// Service serves memoized content reads and exposes the invalidation hooks
// used by the revalidation endpoint.
type Service struct {
	repos Repositories
	store *cache.Store
}

// New creates a Service on top of the given ports and cache store.
func New(repos Repositories, store *cache.Store) *Service {
	return &Service{repos: repos, store: store}
}

func limitKey(limit, def int) string {
	if limit <= 0 {
		limit = def
	}
	return fmt.Sprintf("limit:%d", limit)
}

func (s *Service) Navigation(ctx context.Context) (*content.Navigation, error) {
	return cache.Get(ctx, s.store, TagNav, "get", s.repos.Navigation.Get)
}

func (s *Service) Footer(ctx context.Context) (*content.Footer, error) {
	return cache.Get(ctx, s.store, TagFooter, "get", s.repos.Footer.Get)
}

// Announcements returns the active selection: visible, inside the publication
// window, pinned and high-priority items first.
func (s *Service) Announcements(ctx context.Context, limit int) ([]content.Announcement, error) {
	return cache.Get(ctx, s.store, TagAnnouncements, "active:"+limitKey(limit, content.DefaultAnnouncementsActive),
		func(ctx context.Context) ([]content.Announcement, error) {
			return s.repos.Announcements.ListActive(ctx, limit)
		})
}

// AnnouncementsLatest returns the recency feed; the publication window is
// ignored, only the visible flag is respected.
func (s *Service) AnnouncementsLatest(ctx context.Context, limit int) ([]content.Announcement, error) {
	return cache.Get(ctx, s.store, TagAnnouncements, "latest:"+limitKey(limit, content.DefaultAnnouncementsLatest),
		func(ctx context.Context) ([]content.Announcement, error) {
			return s.repos.Announcements.ListLatest(ctx, limit)
		})
}

func (s *Service) AnnouncementBySlug(ctx context.Context, slug string) (*content.Announcement, error) {
	return cache.Get(ctx, s.store, TagAnnouncements, "slug:"+slug,
		func(ctx context.Context) (*content.Announcement, error) {
			return s.repos.Announcements.GetBySlug(ctx, slug)
		})
}

func (s *Service) EventsUpcoming(ctx context.Context, limit int) ([]content.Event, error) {
	return cache.Get(ctx, s.store, TagEvents, "upcoming:"+limitKey(limit, content.DefaultEventsUpcoming),
		func(ctx context.Context) ([]content.Event, error) {
			return s.repos.Events.ListUpcoming(ctx, limit)
		})
}

func (s *Service) EventsLatest(ctx context.Context, limit int) ([]content.Event, error) {
	return cache.Get(ctx, s.store, TagEvents, "latest:"+limitKey(limit, content.DefaultEventsLatest),
		func(ctx context.Context) ([]content.Event, error) {
			return s.repos.Events.ListLatest(ctx, limit)
		})
}

func (s *Service) Services(ctx context.Context) ([]content.Service, error) {
	return cache.Get(ctx, s.store, TagServices, "all", s.repos.Services.ListAll)
}

func (s *Service) ServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	return cache.Get(ctx, s.store, TagServices, "slug:"+slug,
		func(ctx context.Context) (*content.Service, error) {
			return s.repos.Services.GetBySlug(ctx, slug)
		})
}

func (s *Service) Agreements(ctx context.Context) ([]content.Agreement, error) {
	return cache.Get(ctx, s.store, TagAgreements, "all", s.repos.Agreements.ListAll)
}

func (s *Service) AgreementBySlug(ctx context.Context, slug string) (*content.Agreement, error) {
	return cache.Get(ctx, s.store, TagAgreements, "slug:"+slug,
		func(ctx context.Context) (*content.Agreement, error) {
			return s.repos.Agreements.GetBySlug(ctx, slug)
		})
}

// Attachments pages through attachments under a subkey fingerprinting the
// whole query, so distinct filters memoize independently.
func (s *Service) Attachments(ctx context.Context, q content.AttachmentQuery) (*content.AttachmentPage, error) {
	q = q.Normalize()
	subkey := fmt.Sprintf("category:%s|q:%s|page:%d|size:%d", q.Category, q.Q, q.Page, q.PageSize)
	return cache.Get(ctx, s.store, TagAttachments, subkey,
		func(ctx context.Context) (*content.AttachmentPage, error) {
			return s.repos.Attachments.List(ctx, q)
		})
}

func (s *Service) Features(ctx context.Context, limit int) ([]content.Feature, error) {
	return cache.Get(ctx, s.store, TagFeatures, limitKey(limit, content.DefaultFeatures),
		func(ctx context.Context) ([]content.Feature, error) {
			return s.repos.Features.List(ctx, limit)
		})
}

func (s *Service) RecommendationsLatest(ctx context.Context, limit int) ([]content.Recommendation, error) {
	return cache.Get(ctx, s.store, TagRecommendations, limitKey(limit, content.DefaultRecommendations),
		func(ctx context.Context) ([]content.Recommendation, error) {
			return s.repos.Recommendations.ListLatest(ctx, limit)
		})
}

func (s *Service) PageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	return cache.Get(ctx, s.store, TagPages, "slug:"+slug,
		func(ctx context.Context) (*content.Page, error) {
			return s.repos.Pages.GetBySlug(ctx, slug)
		})
}

// Invalidate drops every cache entry under tag. Unknown tags are a no-op.
func (s *Service) Invalidate(tag string) {
	s.store.Invalidate(tag)
}

// InvalidatePath drops the cache entries backing a rendered path.
func (s *Service) InvalidatePath(path string) {
	s.store.InvalidatePath(path)
}
