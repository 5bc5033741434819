package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestHighlights(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.ok("/search", `{"items": [
	  {"id": {"kind": "youtube#video", "videoId": "abc"}, "snippet": {"title": "Top plays", "publishedAt": "2025-07-04T00:00:00Z",
	    "thumbnails": {"default": {"url": "d.jpg"}, "medium": {"url": "m.jpg"}, "high": {"url": "h.jpg"}}}},
	  {"id": {"kind": "youtube#video", "videoId": "def"}, "snippet": {"title": "Walk-off", "thumbnails": {"default": {"url": "d2.jpg"}}}},
	  {"id": {"kind": "youtube#channel"}, "snippet": {"title": "A channel"}}
	]}`)
	svc := newTestServices(t, nil, nil, nil, upstream)

	videos, err := svc.Highlights.Highlights(context.Background(), "")
	if err != nil {
		t.Fatalf("Highlights: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
	if videos[0].VideoID != "abc" || videos[0].ThumbnailURL != "h.jpg" {
		t.Errorf("unexpected first video: %+v", videos[0])
	}
	if videos[1].ThumbnailURL != "d2.jpg" {
		t.Errorf("thumbnail fallback = %q, want d2.jpg", videos[1].ThumbnailURL)
	}

	q := upstream.query("/search")
	if q.Get("q") != "MLB Highlights" || q.Get("maxResults") != "12" || q.Get("type") != "video" || q.Get("key") != "video-key" {
		t.Errorf("unexpected search query: %v", q)
	}
}

func TestHighlightsQueryPrefix(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.ok("/search", `{"items": []}`)
	svc := newTestServices(t, nil, nil, nil, upstream)

	videos, err := svc.Highlights.Highlights(context.Background(), "  Ohtani ")
	if err != nil {
		t.Fatalf("Highlights: %v", err)
	}
	if videos == nil || len(videos) != 0 {
		t.Errorf("expected empty list, got %#v", videos)
	}
	if got := upstream.query("/search").Get("q"); got != "MLB Ohtani" {
		t.Errorf("q = %q, want %q", got, "MLB Ohtani")
	}
}

func TestHighlightsFailures(t *testing.T) {
	svc := newTestServices(t, nil, nil, nil, nil)
	if _, err := svc.Highlights.Highlights(context.Background(), ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}

	upstream := newFakeUpstream(t)
	upstream.handle("/search", http.StatusForbidden, `{"error": {"message": "quota"}}`)
	svc = newTestServices(t, nil, nil, nil, upstream)
	if _, err := svc.Highlights.Highlights(context.Background(), ""); err == nil {
		t.Error("expected upstream error")
	}
}
