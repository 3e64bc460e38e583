package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starford/laguz/internal/content"
)

type recommendationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Image       *content.Image     `bson:"image"`
	CTA         *content.CTA       `bson:"cta"`
	Badge       string             `bson:"badge"`
	Kind        string             `bson:"kind"`
	Tone        string             `bson:"tone"`
	DateLabel   string             `bson:"dateLabel"`
	PublishedAt *time.Time         `bson:"publishedAt"`
	Visible     *bool              `bson:"visible"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// RecommendationRepo implements content.RecommendationRepository.
type RecommendationRepo struct {
	s *Store
}

func (r *RecommendationRepo) ListLatest(ctx context.Context, limit int) ([]content.Recommendation, error) {
	if limit <= 0 {
		limit = content.DefaultRecommendations
	}
	cur, err := r.s.col(colRecommendations).Find(ctx,
		bson.M{"visible": bson.M{"$ne": false}},
		options.Find().
			SetSort(bson.D{
				{Key: "publishedAt", Value: -1},
				{Key: "createdAt", Value: -1},
			}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list recommendations: %w", err)
	}
	var docs []recommendationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode recommendations: %w", err)
	}
	out := make([]content.Recommendation, len(docs))
	for i, d := range docs {
		out[i] = content.Recommendation{
			ID:          d.ID.Hex(),
			Slug:        d.Slug,
			Title:       d.Title,
			Description: d.Description,
			Image:       d.Image,
			CTA:         d.CTA,
			Badge:       d.Badge,
			Kind:        d.Kind,
			Tone:        d.Tone,
			DateLabel:   d.DateLabel,
			PublishedAt: d.PublishedAt,
			Visible:     d.Visible == nil || *d.Visible,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		}
	}
	return out, nil
}
