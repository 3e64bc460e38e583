package contentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/starford/laguz/internal/cache"
	"github.com/starford/laguz/internal/content"
)

// countingAnnouncements records how often each read hits the repository.
type countingAnnouncements struct {
	active int
	latest int
	bySlug int
	items  []content.Announcement
	err    error
}

func (f *countingAnnouncements) ListActive(_ context.Context, limit int) ([]content.Announcement, error) {
	f.active++
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *countingAnnouncements) ListLatest(_ context.Context, limit int) ([]content.Announcement, error) {
	f.latest++
	return f.items, nil
}

func (f *countingAnnouncements) GetBySlug(_ context.Context, slug string) (*content.Announcement, error) {
	f.bySlug++
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

type countingServices struct {
	all    int
	bySlug int
	items  []content.Service
}

func (f *countingServices) ListAll(context.Context) ([]content.Service, error) {
	f.all++
	return f.items, nil
}

func (f *countingServices) GetBySlug(_ context.Context, slug string) (*content.Service, error) {
	f.bySlug++
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func testService(anns *countingAnnouncements, svcs *countingServices) *Service {
	return New(Repositories{
		Announcements: anns,
		Services:      svcs,
	}, cache.New(0))
}

func TestAnnouncementsAreMemoized(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "a", Title: "A"}}}
	svc := testService(anns, &countingServices{})

	first, err := svc.Announcements(context.Background(), 12)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := svc.Announcements(context.Background(), 12)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(first) != 1 || len(second) != 1 || first[0].Slug != second[0].Slug {
		t.Error("sequential reads should yield identical results")
	}
	if anns.active != 1 {
		t.Errorf("repository invocations = %d, want 1", anns.active)
	}
}

func TestDistinctLimitsAreDistinctSubkeys(t *testing.T) {
	anns := &countingAnnouncements{items: make([]content.Announcement, 20)}
	svc := testService(anns, &countingServices{})

	if _, err := svc.Announcements(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if anns.active != 2 {
		t.Errorf("invocations = %d, want 2 (one per limit)", anns.active)
	}
}

func TestActiveAndLatestAreSeparateReads(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "a"}}}
	svc := testService(anns, &countingServices{})

	if _, err := svc.Announcements(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AnnouncementsLatest(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if anns.active != 1 || anns.latest != 1 {
		t.Errorf("active = %d latest = %d, want 1 and 1", anns.active, anns.latest)
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "a"}}}
	svc := testService(anns, &countingServices{})

	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if anns.active != 1 {
		t.Fatalf("invocations before invalidate = %d, want 1", anns.active)
	}

	svc.Invalidate(TagAnnouncements)

	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if anns.active != 2 {
		t.Errorf("invocations after invalidate = %d, want 2", anns.active)
	}
}

func TestInvalidateOneTagLeavesOthers(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "a"}}}
	svcs := &countingServices{items: []content.Service{{Slug: "consulting", Name: "Consulting"}}}
	svc := testService(anns, svcs)

	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Services(context.Background()); err != nil {
		t.Fatal(err)
	}

	svc.Invalidate(TagAnnouncements)

	if _, err := svc.Services(context.Background()); err != nil {
		t.Fatal(err)
	}
	if svcs.all != 1 {
		t.Errorf("services invocations = %d, want 1 (unrelated tag untouched)", svcs.all)
	}
}

func TestUpstreamFailureIsNotCached(t *testing.T) {
	boom := errors.New("store unreachable")
	anns := &countingAnnouncements{err: boom}
	svc := testService(anns, &countingServices{})

	if _, err := svc.Announcements(context.Background(), 12); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	anns.err = nil
	anns.items = []content.Announcement{{Slug: "back"}}
	list, err := svc.Announcements(context.Background(), 12)
	if err != nil {
		t.Fatalf("read after recovery: %v", err)
	}
	if len(list) != 1 || list[0].Slug != "back" {
		t.Errorf("list = %+v, want the recovered value", list)
	}
	if anns.active != 2 {
		t.Errorf("invocations = %d, want 2 (failure not memoized)", anns.active)
	}
}

func TestNotFoundIsMemoizedAsAbsence(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "exists"}}}
	svc := testService(anns, &countingServices{})

	a, err := svc.AnnouncementBySlug(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if a != nil {
		t.Fatalf("a = %+v, want nil", a)
	}

	// Absence is a valid value, not a failure: the second lookup is a hit.
	if _, err := svc.AnnouncementBySlug(context.Background(), "does-not-exist"); err != nil {
		t.Fatal(err)
	}
	if anns.bySlug != 1 {
		t.Errorf("invocations = %d, want 1", anns.bySlug)
	}
}

func TestAttachmentSubkeyCoversWholeQuery(t *testing.T) {
	calls := 0
	svc := New(Repositories{
		Attachments: attachmentFunc(func(_ context.Context, q content.AttachmentQuery) (*content.AttachmentPage, error) {
			calls++
			return &content.AttachmentPage{Items: []content.Attachment{}, Total: 0}, nil
		}),
	}, cache.New(0))

	q1 := content.AttachmentQuery{Category: "reglamentos", Q: "formulario"}
	q2 := content.AttachmentQuery{Category: "reglamentos"}

	if _, err := svc.Attachments(context.Background(), q1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Attachments(context.Background(), q1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Attachments(context.Background(), q2); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("invocations = %d, want 2 (one per distinct query)", calls)
	}
}

type attachmentFunc func(context.Context, content.AttachmentQuery) (*content.AttachmentPage, error)

func (f attachmentFunc) List(ctx context.Context, q content.AttachmentQuery) (*content.AttachmentPage, error) {
	return f(ctx, q)
}

func TestFallbackTTLOnService(t *testing.T) {
	anns := &countingAnnouncements{items: []content.Announcement{{Slug: "a"}}}
	svc := New(Repositories{Announcements: anns}, cache.New(10*time.Millisecond))

	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := svc.Announcements(context.Background(), 12); err != nil {
		t.Fatal(err)
	}
	if anns.active != 2 {
		t.Errorf("invocations = %d, want 2 after TTL lapse", anns.active)
	}
}
