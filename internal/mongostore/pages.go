package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starford/laguz/internal/content"
)

type pageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Slug      string             `bson:"slug"`
	Title     string             `bson:"title"`
	Blocks    []content.Block    `bson:"blocks"`
	SEO       *content.SEO       `bson:"seo"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// PageRepo implements content.PageRepository.
type PageRepo struct {
	s *Store
}

func (r *PageRepo) GetBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var d pageDoc
	err := r.s.col(colPages).FindOne(ctx, bson.M{"slug": slug}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get page %q: %w", slug, err)
	}
	blocks := d.Blocks
	if blocks == nil {
		blocks = []content.Block{}
	}
	return &content.Page{
		ID:        d.ID.Hex(),
		Slug:      d.Slug,
		Title:     d.Title,
		Blocks:    blocks,
		SEO:       d.SEO,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
