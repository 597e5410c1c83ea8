package service

import (
	"strings"

	"github.com/pribylovaa/press-service/internal/models"
)

// filterArticles оставляет статьи, у которых запрос (без учёта регистра)
// входит в английский или арабский заголовок. Пустой запрос - без фильтра.
// Исходный срез не меняется.
func filterArticles(articles []models.Article, query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return articles
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.TitleEN), q) || strings.Contains(strings.ToLower(a.TitleAR), q) {
			out = append(out, a)
		}
	}

	return out
}
