package mongostore

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/starford/laguz/internal/content"
)

func TestAnnouncementActiveFilterShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := announcementActiveFilter(now)

	if !reflect.DeepEqual(f["visible"], bson.M{"$ne": false}) {
		t.Errorf("visible clause = %+v", f["visible"])
	}

	and, ok := f["$and"].(bson.A)
	if !ok || len(and) != 2 {
		t.Fatalf("$and = %+v, want two window clauses", f["$and"])
	}

	published := bson.M{"$or": bson.A{
		bson.M{"publishedAt": bson.M{"$exists": false}},
		bson.M{"publishedAt": bson.M{"$lte": now}},
	}}
	if !reflect.DeepEqual(and[0], published) {
		t.Errorf("published clause = %+v", and[0])
	}

	expires := bson.M{"$or": bson.A{
		bson.M{"expiresAt": bson.M{"$exists": false}},
		bson.M{"expiresAt": nil},
		bson.M{"expiresAt": bson.M{"$gt": now}},
	}}
	if !reflect.DeepEqual(and[1], expires) {
		t.Errorf("expires clause = %+v", and[1])
	}
}

func TestAnnouncementLatestFilterIgnoresWindow(t *testing.T) {
	f := announcementVisibleFilter()
	if len(f) != 1 {
		t.Errorf("latest filter = %+v, want only the visible clause", f)
	}
	if !reflect.DeepEqual(f["visible"], bson.M{"$ne": false}) {
		t.Errorf("visible clause = %+v", f["visible"])
	}
}

func TestAnnouncementSortOrder(t *testing.T) {
	// Pinned must dominate priority, priority recency.
	want := []string{"pinned", "priority", "publishedAt", "createdAt"}
	if len(announcementActiveSort) != len(want) {
		t.Fatalf("sort keys = %d, want %d", len(announcementActiveSort), len(want))
	}
	for i, key := range want {
		e := announcementActiveSort[i]
		if e.Key != key {
			t.Errorf("sort[%d] = %q, want %q", i, e.Key, key)
		}
		if e.Value != -1 {
			t.Errorf("sort[%d] direction = %v, want descending", i, e.Value)
		}
	}
}

func TestEventSorts(t *testing.T) {
	if eventUpcomingSort[0].Key != "startsAt" || eventUpcomingSort[0].Value != 1 {
		t.Errorf("upcoming sort = %+v, want startsAt ascending", eventUpcomingSort)
	}
	if eventLatestSort[0].Key != "startsAt" || eventLatestSort[0].Value != -1 {
		t.Errorf("latest sort = %+v, want startsAt descending", eventLatestSort)
	}
}

func TestEventUpcomingFilter(t *testing.T) {
	now := time.Now()
	f := eventUpcomingFilter(now)
	if !reflect.DeepEqual(f, bson.M{"startsAt": bson.M{"$gte": now}}) {
		t.Errorf("filter = %+v", f)
	}
}

func TestAttachmentFilterCombinations(t *testing.T) {
	if f := attachmentFilter("", ""); len(f) != 0 {
		t.Errorf("empty query filter = %+v, want no predicates", f)
	}

	f := attachmentFilter("reglamentos", "")
	if f["category"] != "reglamentos" || len(f) != 1 {
		t.Errorf("category-only filter = %+v", f)
	}

	f = attachmentFilter("", "formulario")
	if !reflect.DeepEqual(f["$text"], bson.M{"$search": "formulario"}) || len(f) != 1 {
		t.Errorf("text-only filter = %+v", f)
	}

	// Both predicates combine with AND (same top-level document).
	f = attachmentFilter("reglamentos", "formulario")
	if len(f) != 2 || f["category"] != "reglamentos" {
		t.Errorf("combined filter = %+v", f)
	}
}

func TestAnnouncementDocDefaults(t *testing.T) {
	d := announcementDoc{Title: "T"}
	a := d.toEntity()
	if !a.Visible {
		t.Error("missing visible should default to true")
	}
	if a.Tags == nil {
		t.Error("missing tags should map to empty slice")
	}
	if a.Tone != "neutral" {
		t.Errorf("tone = %q, want neutral default", a.Tone)
	}

	off := false
	d.Visible = &off
	if d.toEntity().Visible {
		t.Error("explicit visible=false should map to false")
	}
}

func TestAttachmentQueryNormalize(t *testing.T) {
	cases := []struct {
		in       content.AttachmentQuery
		page     int
		pageSize int
		skip     int64
	}{
		{content.AttachmentQuery{}, 1, 24, 0},
		{content.AttachmentQuery{Page: 3}, 3, 24, 48},
		{content.AttachmentQuery{Page: -1, PageSize: -5}, 1, 24, 0},
		{content.AttachmentQuery{PageSize: 500}, 1, 100, 0},
		{content.AttachmentQuery{Page: 2, PageSize: 10}, 2, 10, 10},
	}
	for _, tc := range cases {
		q := tc.in.Normalize()
		if q.Page != tc.page || q.PageSize != tc.pageSize || q.Skip() != tc.skip {
			t.Errorf("Normalize(%+v) = page %d size %d skip %d, want %d/%d/%d",
				tc.in, q.Page, q.PageSize, q.Skip(), tc.page, tc.pageSize, tc.skip)
		}
	}
}
