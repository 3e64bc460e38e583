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

type agreementDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Logo        *content.Image     `bson:"logo"`
	Category    string             `bson:"category"`
	StartsAt    *time.Time         `bson:"startsAt"`
	EndsAt      *time.Time         `bson:"endsAt"`
	Links       []content.Link     `bson:"links"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d agreementDoc) toEntity() content.Agreement {
	links := d.Links
	if links == nil {
		links = []content.Link{}
	}
	return content.Agreement{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Name:        d.Name,
		Description: d.Description,
		Logo:        d.Logo,
		Category:    d.Category,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		Links:       links,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// AgreementRepo implements content.AgreementRepository.
type AgreementRepo struct {
	s *Store
}

// ListAll returns every agreement, newest first.
func (r *AgreementRepo) ListAll(ctx context.Context) ([]content.Agreement, error) {
	cur, err := r.s.col(colAgreements).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list agreements: %w", err)
	}
	var docs []agreementDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode agreements: %w", err)
	}
	out := make([]content.Agreement, len(docs))
	for i, d := range docs {
		out[i] = d.toEntity()
	}
	return out, nil
}

func (r *AgreementRepo) GetBySlug(ctx context.Context, slug string) (*content.Agreement, error) {
	var d agreementDoc
	err := r.s.col(colAgreements).FindOne(ctx, bson.M{"slug": slug}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get agreement %q: %w", slug, err)
	}
	a := d.toEntity()
	return &a, nil
}
