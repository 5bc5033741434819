package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/dugout/internal/ingest/news"
	"github.com/fortuna/dugout/internal/relevance"
)

const (
	newsFetchSize   = 100
	newsRankedLimit = 40
	NewsPageSize    = 20

	removedTitle = "[Removed]"
)

// NewsService builds the ranked baseball news feed
type NewsService struct {
	provider NewsProvider
	scorer   *relevance.Scorer
}

// NewNewsService creates a new news service
func NewNewsService(provider NewsProvider, scorer *relevance.Scorer) *NewsService {
	return &NewsService{provider: provider, scorer: scorer}
}

// NewsArticle is a cleaned, ranked article. The URL doubles as its id.
type NewsArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Summary     string `json:"summary"`
	Thumbnail   string `json:"thumbnail"`
}

// NewsPage is one page of the ranked feed
type NewsPage struct {
	Articles     []NewsArticle `json:"articles"`
	Page         int           `json:"page"`
	TotalResults int           `json:"totalResults"`
	HasMore      bool          `json:"hasMore"`
}

// News returns a page of the ranked feed; pages below 1 are treated as 1.
func (s *NewsService) News(ctx context.Context, page int) (*NewsPage, error) {
	if !s.provider.Configured() {
		return nil, ErrNotConfigured
	}

	articles, err := s.provider.FetchBaseball(ctx, newsFetchSize)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}

	ranked := RankArticles(articles, s.scorer)
	return Paginate(ranked, page), nil
}

type scoredArticle struct {
	article   NewsArticle
	score     int
	published time.Time
}

// RankArticles drops placeholders and off-topic stories, keeps the most
// relevant ones and returns them newest first.
func RankArticles(articles []news.Article, scorer *relevance.Scorer) []NewsArticle {
	scored := make([]scoredArticle, 0, len(articles))
	for _, a := range articles {
		if a.Content == "" || a.Title == removedTitle {
			continue
		}
		score := scorer.Score(a.Title, a.Description)
		if score < 1 {
			continue
		}
		published, _ := time.Parse(time.RFC3339, a.PublishedAt)
		scored = append(scored, scoredArticle{
			article: NewsArticle{
				ID:          a.URL,
				Title:       a.Title,
				URL:         a.URL,
				PublishedAt: a.PublishedAt,
				Summary:     plainText(a.Description),
				Thumbnail:   a.URLToImage,
			},
			score:     score,
			published: published,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > newsRankedLimit {
		scored = scored[:newsRankedLimit]
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].published.After(scored[j].published)
	})

	out := make([]NewsArticle, len(scored))
	for i, s := range scored {
		out[i] = s.article
	}
	return out
}

// Paginate slices a ranked list into fixed-size pages.
func Paginate(ranked []NewsArticle, page int) *NewsPage {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * NewsPageSize
	end := page * NewsPageSize

	articles := []NewsArticle{}
	if start < len(ranked) {
		articles = ranked[start:min(end, len(ranked))]
	}

	return &NewsPage{
		Articles:     articles,
		Page:         page,
		TotalResults: len(ranked),
		HasMore:      end < len(ranked),
	}
}

// plainText strips markup some outlets leave in descriptions.
func plainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
