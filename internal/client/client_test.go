package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"corus-backend/internal/fallback"
	"corus-backend/internal/transport"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{
		BaseURL: baseURL,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// unreachableURL points at a server that is already closed, which makes
// every call fail at the transport level.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url
}

func TestFetchBlogsFallsBackOnTransportError(t *testing.T) {
	c := testClient(t, unreachableURL(t))

	items, err := c.FetchBlogs(context.Background())
	if err != nil {
		t.Fatalf("FetchBlogs: %v", err)
	}

	want := fallback.Blogs()
	if len(items) != len(want) {
		t.Fatalf("got %d blogs, want %d", len(items), len(want))
	}
	for i, item := range items {
		if item.Slug != want[i].Slug {
			t.Errorf("blog %d: slug = %q, want %q", i, item.Slug, want[i].Slug)
		}
		if item.ID != "blog-"+want[i].Slug {
			t.Errorf("blog %d: id = %q, want %q", i, item.ID, "blog-"+want[i].Slug)
		}
		if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
			t.Errorf("blog %d: missing synthesized timestamps", i)
		}
	}
}

func TestFetchMenusFallsBackOnEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteEnvelope(w, http.StatusOK, "Menus retrieved successfully", []struct{}{})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	items, err := c.FetchMenus(context.Background())
	if err != nil {
		t.Fatalf("FetchMenus: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("empty remote result should substitute fallback menus, got empty list")
	}
	if items[0].Slug != "solutions-menu" {
		t.Errorf("first fallback menu slug = %q, want %q", items[0].Slug, "solutions-menu")
	}
}

func TestFetchBlogBySlugFallbackScan(t *testing.T) {
	c := testClient(t, unreachableURL(t))

	item, err := c.FetchBlogBySlug(context.Background(), "future-of-web-development")
	if err != nil {
		t.Fatalf("FetchBlogBySlug: %v", err)
	}
	if item.Slug != "future-of-web-development" {
		t.Errorf("slug = %q", item.Slug)
	}
	if item.Title != "The Future of Web Development: 2025 and Beyond" {
		t.Errorf("title = %q", item.Title)
	}
}

func TestFetchBlogBySlugNotFoundInFallback(t *testing.T) {
	c := testClient(t, unreachableURL(t))

	_, err := c.FetchBlogBySlug(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("expected not-found error for unknown slug")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestMutationNeverSubstitutesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteJSON(w, http.StatusOK, transport.Envelope{Success: false, Message: "Email already subscribed"})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.CreateConsultation(context.Background(), CreateConsultationRequest{
		Name: "A", Email: "a@b.com", Message: "hello",
	})
	if err == nil {
		t.Fatal("success=false body must surface as an error")
	}
	if !strings.Contains(err.Error(), "Email already subscribed") {
		t.Errorf("error %q should carry the remote message", err)
	}

	c = testClient(t, unreachableURL(t))
	if _, err := c.CreateConsultation(context.Background(), CreateConsultationRequest{
		Name: "A", Email: "a@b.com", Message: "hello",
	}); err == nil {
		t.Fatal("transport failure during a mutation must propagate")
	}
}

func TestBearerAttachedOnAdminPathsOnly(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		transport.WriteEnvelope(w, http.StatusOK, "ok", []struct{}{})
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		Token:   "secret-token",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, _, err := c.ListBlogs(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("ListBlogs: %v", err)
	}
	if _, err := c.FetchBlogs(context.Background()); err != nil {
		t.Fatalf("FetchBlogs: %v", err)
	}

	if len(gotAuth) != 2 {
		t.Fatalf("got %d requests, want 2", len(gotAuth))
	}
	if gotAuth[0] != "Bearer secret-token" {
		t.Errorf("admin path Authorization = %q, want bearer", gotAuth[0])
	}
	if gotAuth[1] != "" {
		t.Errorf("public path Authorization = %q, want empty", gotAuth[1])
	}
}

func TestMissingTokenDoesNotFailAdminRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		transport.WriteEnvelope(w, http.StatusOK, "ok", []struct{}{})
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL: srv.URL,
		TokenSource: TokenFunc(func(context.Context) (string, error) {
			return "", context.DeadlineExceeded
		}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, _, err := c.ListBlogs(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("ListBlogs with failing token source: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty when token lookup fails", gotAuth)
	}
}

func TestErrorMessagePriority(t *testing.T) {
	// Remote message wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", nil)
	}))
	c := testClient(t, srv.URL)
	_, err := c.SubscribeNewsletter(context.Background(), SubscribeRequest{Email: "x"})
	srv.Close()
	if err == nil || !strings.Contains(err.Error(), "Validation failed") {
		t.Errorf("error = %v, want remote message", err)
	}

	// No extractable message falls through to the literal.
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	c = testClient(t, srv.URL)
	_, err = c.SubscribeNewsletter(context.Background(), SubscribeRequest{Email: "x"})
	srv.Close()
	if err == nil || !strings.Contains(err.Error(), UnknownErrorMessage) {
		t.Errorf("error = %v, want %q", err, UnknownErrorMessage)
	}

	// Transport error carries its own message.
	c = testClient(t, unreachableURL(t))
	_, err = c.SubscribeNewsletter(context.Background(), SubscribeRequest{Email: "x"})
	var apiErr *APIError
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("transport failure StatusCode = %d, want 0", apiErr.StatusCode)
	}
	if apiErr.Message == "" || apiErr.Message == UnknownErrorMessage {
		t.Errorf("transport failure message = %q, want the transport error text", apiErr.Message)
	}
}

func TestUnauthorizedSurfacesLikeAnyRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, _, err := c.ListClients(context.Background(), ListOptions{})
	if err == nil {
		t.Fatal("expected 401 error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
}

func TestListBlogsDecodesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page query = %q, want 2", got)
		}
		if got := r.URL.Query().Get("status"); got != "draft" {
			t.Errorf("status query = %q, want draft", got)
		}
		transport.WritePaginated(w, http.StatusOK, "Blogs retrieved successfully",
			[]struct{}{}, transport.NewPagination(2, 10, 35))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, pagination, err := c.ListBlogs(context.Background(), ListOptions{
		Page:    2,
		Limit:   10,
		Filters: map[string][]string{"status": {"draft"}},
	})
	if err != nil {
		t.Fatalf("ListBlogs: %v", err)
	}
	if pagination == nil {
		t.Fatal("missing pagination")
	}
	if pagination.Total != 35 || pagination.Pages != 4 {
		t.Errorf("pagination = %+v", pagination)
	}
}

func TestFetchStatsFallsBack(t *testing.T) {
	c := testClient(t, unreachableURL(t))
	data, err := c.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats: %v", err)
	}
	want := fallback.Stats()
	if data.HappyClients != want.HappyClients || data.ProjectsDone != want.ProjectsDone {
		t.Errorf("stats = %+v, want fallback counters", data)
	}
	if data.LastUpdated.IsZero() {
		t.Error("missing synthesized lastUpdated")
	}
}

func TestTimeoutDefaultsTo30Seconds(t *testing.T) {
	c := testClient(t, "http://localhost:1")
	if got := c.httpClient.Timeout; got != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", got)
	}
}
