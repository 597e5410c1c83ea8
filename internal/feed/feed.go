// feed - RSS 2.0 лента опубликованных статей на одном языке.
package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pribylovaa/press-service/internal/models"
)

// excerptRunes - длина тизера в description.
const excerptRunes = 280

// Channel - метаданные канала.
type Channel struct {
	Title       string
	Description string
	// SiteURL - адрес публичного сайта; ссылки вида <SiteURL>/articles/<slug>.
	SiteURL string
}

var stripPolicy = bluemonday.StrictPolicy()

// Write пишет ленту статей на языке lang.
// Порядок статей сохраняется; lastBuildDate - дата самой свежей публикации.
func Write(w io.Writer, ch Channel, lang models.Language, articles []models.Article) error {
	const op = "feed.Write"

	doc := rss{
		Version:   "2.0",
		NSContent: nsContent,
		NSMedia:   nsMedia,
		Channel: channel{
			Title:       ch.Title,
			Link:        ch.SiteURL,
			Description: ch.Description,
			Language:    string(lang),
			Items:       make([]item, 0, len(articles)),
		},
	}

	var newest time.Time
	for i := range articles {
		a := &articles[i]

		pub := a.CreatedAt
		if a.PublishedAt != nil {
			pub = *a.PublishedAt
		}
		if pub.After(newest) {
			newest = pub
		}

		it := item{
			Title:       a.Title(lang),
			Link:        articleLink(ch.SiteURL, a.Slug),
			GUID:        guid{IsPermaLink: "false", Value: a.ID.String()},
			PubDate:     formatDate(pub),
			Description: excerpt(a.Content(lang)),
			Categories:  a.Tags,
			ContentHTML: cdata{Value: a.Content(lang)},
		}
		if a.ThumbnailURL != nil && *a.ThumbnailURL != "" {
			it.MediaThumbs = []mediaEntry{{URL: *a.ThumbnailURL}}
		}

		doc.Channel.Items = append(doc.Channel.Items, it)
	}

	if !newest.IsZero() {
		doc.Channel.LastBuildDate = formatDate(newest)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC1123Z)
}

func articleLink(siteURL, slug string) string {
	link, err := url.JoinPath(siteURL, "articles", slug)
	if err != nil {
		return strings.TrimRight(siteURL, "/") + "/articles/" + url.PathEscape(slug)
	}

	return link
}

// excerpt убирает разметку, схлопывает пробелы и обрезает по границе слова.
func excerpt(content string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(content))
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}

	cut := string(runes[:excerptRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}

	return cut + "…"
}
