package service

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/goliatone/go-slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ContentFormat - формат исходного текста статьи.
type ContentFormat string

const (
	FormatHTML     ContentFormat = "html"
	FormatMarkdown ContentFormat = "markdown"
)

// contentRenderer переводит markdown в HTML и чистит любой HTML по UGC-политике.
// Оба движка потокобезопасны после создания.
type contentRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newContentRenderer() *contentRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	policy := bluemonday.UGCPolicy()
	// Направление текста внутри двуязычного контента.
	policy.AllowAttrs("dir").Matching(regexp.MustCompile(`^(rtl|ltr|auto)$`)).Globally()
	policy.AllowAttrs("lang").Matching(regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})?$`)).Globally()

	return &contentRenderer{md: md, policy: policy}
}

// Render возвращает безопасный HTML.
func (r *contentRenderer) Render(format ContentFormat, raw string) (string, error) {
	const op = "service.content.Render"

	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	src := raw
	if format == FormatMarkdown {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(raw), &buf); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		src = buf.String()
	}

	return strings.TrimSpace(r.policy.Sanitize(src)), nil
}

// makeSlug строит slug из английского заголовка.
// Пустой/невалидный результат -> "article-<первые 8 hex id>".
func makeSlug(title string, id uuid.UUID) string {
	if s, err := slug.Normalize(title); err == nil && s != "" && slug.IsValid(s) {
		return s
	}

	return "article-" + strings.ReplaceAll(id.String(), "-", "")[:8]
}

// withSuffix добавляет к slug случайный суффикс "-<4 hex>".
func withSuffix(s string) string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return s + "-" + uuid.NewString()[:4]
	}

	return s + "-" + hex.EncodeToString(b)
}
