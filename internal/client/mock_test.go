package client

import (
	"context"
	"testing"
)

func TestMockServesBundledContent(t *testing.T) {
	m := NewMock(-1)
	ctx := context.Background()

	blogs, err := m.FetchBlogs(ctx)
	if err != nil {
		t.Fatalf("FetchBlogs: %v", err)
	}
	if len(blogs) == 0 {
		t.Fatal("mock returned no blogs")
	}
	for _, b := range blogs {
		if b.ID == "" || b.CreatedAt.IsZero() {
			t.Errorf("blog %q missing synthesized fields", b.Slug)
		}
	}

	if _, err := m.FetchSolutionBySlug(ctx, "software-development"); err != nil {
		t.Errorf("FetchSolutionBySlug: %v", err)
	}
	if _, err := m.FetchSolutionBySlug(ctx, "nope"); !IsNotFound(err) {
		t.Errorf("unknown slug: err = %v, want not found", err)
	}
}

func TestMockConsultationAppendVisibleToList(t *testing.T) {
	m := NewMock(-1)
	ctx := context.Background()

	created, err := m.CreateConsultation(ctx, CreateConsultationRequest{
		Name: "A", Email: "a@b.com", Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}
	if created.ID == "" || created.Status != "new" {
		t.Errorf("created = %+v", created)
	}

	items, _, err := m.ListConsultations(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListConsultations: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("list = %+v, want the created consultation", items)
	}

	updated, err := m.UpdateConsultationStatus(ctx, created.ID, "contacted")
	if err != nil {
		t.Fatalf("UpdateConsultationStatus: %v", err)
	}
	if updated.Status != "contacted" {
		t.Errorf("status = %q", updated.Status)
	}
}

func TestMockWritesSynthesizeSuccess(t *testing.T) {
	m := NewMock(-1)
	ctx := context.Background()

	sub, err := m.SubscribeNewsletter(ctx, SubscribeRequest{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if !sub.IsActive || sub.ID == "" {
		t.Errorf("subscriber = %+v", sub)
	}

	blog, err := m.CreateBlog(ctx, BlogRequest{Title: "T", Content: "C", Author: "A"})
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if blog.ID == "" {
		t.Error("blog missing synthesized id")
	}
}

func TestMockCancelledContext(t *testing.T) {
	m := NewMock(DefaultMockDelay)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.FetchBlogs(ctx); err == nil {
		t.Fatal("expected context error from delayed mock call")
	}
}
