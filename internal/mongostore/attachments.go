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

type attachmentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	FileURL       string             `bson:"fileUrl"`
	FileType      string             `bson:"fileType"`
	FileSizeBytes int64              `bson:"fileSizeBytes"`
	Version       string             `bson:"version"`
	Category      string             `bson:"category"`
	Tags          []string           `bson:"tags"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d attachmentDoc) toEntity() content.Attachment {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return content.Attachment{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		FileURL:       d.FileURL,
		FileType:      d.FileType,
		FileSizeBytes: d.FileSizeBytes,
		Version:       d.Version,
		Category:      d.Category,
		Tags:          tags,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// attachmentFilter combines the optional category equality and free-text
// predicates with logical AND. The text predicate relies on the collection's
// text index over title and tags.
func attachmentFilter(category, q string) bson.M {
	f := bson.M{}
	if category != "" {
		f["category"] = category
	}
	if q != "" {
		f["$text"] = bson.M{"$search": q}
	}
	return f
}

var attachmentSort = bson.D{{Key: "createdAt", Value: -1}}

// AttachmentRepo implements content.AttachmentRepository.
type AttachmentRepo struct {
	s *Store
}

// List returns one page of attachments plus the filter-wide total. The page
// and count queries run independently, without snapshot isolation, so the
// total is approximate under concurrent writes.
func (r *AttachmentRepo) List(ctx context.Context, q content.AttachmentQuery) (*content.AttachmentPage, error) {
	q = q.Normalize()
	filter := attachmentFilter(q.Category, q.Q)
	col := r.s.col(colAttachments)

	cur, err := col.Find(ctx, filter, options.Find().
		SetSort(attachmentSort).
		SetSkip(q.Skip()).
		SetLimit(int64(q.PageSize)))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list attachments: %w", err)
	}
	var docs []attachmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode attachments: %w", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongostore: count attachments: %w", err)
	}

	items := make([]content.Attachment, len(docs))
	for i, d := range docs {
		items[i] = d.toEntity()
	}
	return &content.AttachmentPage{Items: items, Total: total}, nil
}
