package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starford/laguz/internal/content"
)

type announcementDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	BodyHTML    string             `bson:"bodyHTML"`
	Image       *content.Image     `bson:"image"`
	CTA         *content.CTA       `bson:"cta"`
	Tags        []string           `bson:"tags"`
	Priority    int                `bson:"priority"`
	Pinned      bool               `bson:"pinned"`
	PublishedAt *time.Time         `bson:"publishedAt"`
	ExpiresAt   *time.Time         `bson:"expiresAt"`
	Visible     *bool              `bson:"visible"`
	Tone        string             `bson:"tone"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d announcementDoc) toEntity() content.Announcement {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	tone := d.Tone
	if tone == "" {
		tone = "neutral"
	}
	return content.Announcement{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		BodyHTML:    d.BodyHTML,
		Image:       d.Image,
		CTA:         d.CTA,
		Tags:        tags,
		Priority:    d.Priority,
		Pinned:      d.Pinned,
		PublishedAt: d.PublishedAt,
		ExpiresAt:   d.ExpiresAt,
		Visible:     d.Visible == nil || *d.Visible,
		Tone:        tone,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// announcementVisibleFilter hides documents explicitly flagged invisible;
// absent means visible.
func announcementVisibleFilter() bson.M {
	return bson.M{"visible": bson.M{"$ne": false}}
}

// announcementActiveFilter selects visible announcements inside their
// publication window: publishedAt absent or in the past, expiresAt absent,
// null, or in the future.
func announcementActiveFilter(now time.Time) bson.M {
	f := announcementVisibleFilter()
	f["$and"] = bson.A{
		bson.M{"$or": bson.A{
			bson.M{"publishedAt": bson.M{"$exists": false}},
			bson.M{"publishedAt": bson.M{"$lte": now}},
		}},
		bson.M{"$or": bson.A{
			bson.M{"expiresAt": bson.M{"$exists": false}},
			bson.M{"expiresAt": nil},
			bson.M{"expiresAt": bson.M{"$gt": now}},
		}},
	}
	return f
}

// Pinned wins over priority, priority over recency.
var announcementActiveSort = bson.D{
	{Key: "pinned", Value: -1},
	{Key: "priority", Value: -1},
	{Key: "publishedAt", Value: -1},
	{Key: "createdAt", Value: -1},
}

var announcementLatestSort = bson.D{
	{Key: "publishedAt", Value: -1},
	{Key: "createdAt", Value: -1},
}

// AnnouncementRepo implements content.AnnouncementRepository.
type AnnouncementRepo struct {
	s *Store
}

func (r *AnnouncementRepo) ListActive(ctx context.Context, limit int) ([]content.Announcement, error) {
	if limit <= 0 {
		limit = content.DefaultAnnouncementsActive
	}
	return r.list(ctx, announcementActiveFilter(time.Now()), announcementActiveSort, int64(limit))
}

func (r *AnnouncementRepo) ListLatest(ctx context.Context, limit int) ([]content.Announcement, error) {
	if limit <= 0 {
		limit = content.DefaultAnnouncementsLatest
	}
	return r.list(ctx, announcementVisibleFilter(), announcementLatestSort, int64(limit))
}

func (r *AnnouncementRepo) list(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]content.Announcement, error) {
	cur, err := r.s.col(colAnnouncements).Find(ctx, filter,
		options.Find().SetSort(sort).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list announcements: %w", err)
	}
	var docs []announcementDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode announcements: %w", err)
	}
	out := make([]content.Announcement, len(docs))
	for i, d := range docs {
		out[i] = d.toEntity()
	}
	return out, nil
}

func (r *AnnouncementRepo) GetBySlug(ctx context.Context, slug string) (*content.Announcement, error) {
	var d announcementDoc
	err := r.s.col(colAnnouncements).FindOne(ctx, bson.M{"slug": slug}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get announcement %q: %w", slug, err)
	}
	a := d.toEntity()
	return &a, nil
}
