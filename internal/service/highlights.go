package service

import (
	"context"
	"fmt"
	"strings"
)

const highlightResults = 12

// HighlightService searches for MLB video highlights
type HighlightService struct {
	provider VideoProvider
}

// NewHighlightService creates a new highlight service
func NewHighlightService(provider VideoProvider) *HighlightService {
	return &HighlightService{provider: provider}
}

// VideoHighlight is one video search result
type VideoHighlight struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublishedAt  string `json:"publishedAt"`
}

// Highlights searches "MLB {query}", or "MLB Highlights" for an empty query.
func (s *HighlightService) Highlights(ctx context.Context, query string) ([]VideoHighlight, error) {
	if !s.provider.Configured() {
		return nil, ErrNotConfigured
	}

	term := "MLB Highlights"
	if q := strings.TrimSpace(query); q != "" {
		term = "MLB " + q
	}

	items, err := s.provider.SearchVideos(ctx, term, highlightResults)
	if err != nil {
		return nil, fmt.Errorf("searching highlights: %w", err)
	}

	out := make([]VideoHighlight, 0, len(items))
	for _, item := range items {
		if item.ID.VideoID == "" {
			continue
		}
		thumbs := item.Snippet.Thumbnails
		thumbnail := thumbs.High.URL
		if thumbnail == "" {
			thumbnail = thumbs.Medium.URL
		}
		if thumbnail == "" {
			thumbnail = thumbs.Default.URL
		}
		out = append(out, VideoHighlight{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnail,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return out, nil
}
