package handlers

import (
	"time"

	"github.com/pribylovaa/press-service/internal/models"
)

// Временные метки в ответах - RFC 3339 в UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

type articleDTO struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	TitleEN      string   `json:"title_en"`
	TitleAR      string   `json:"title_ar"`
	ContentEN    string   `json:"content_en"`
	ContentAR    string   `json:"content_ar"`
	Published    bool     `json:"published"`
	PublishedAt  *string  `json:"published_at"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func articleFromModel(a *models.Article) articleDTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return articleDTO{
		ID:           a.ID.String(),
		Slug:         a.Slug,
		TitleEN:      a.TitleEN,
		TitleAR:      a.TitleAR,
		ContentEN:    a.ContentEN,
		ContentAR:    a.ContentAR,
		Published:    a.Published,
		PublishedAt:  formatTimePtr(a.PublishedAt),
		ThumbnailURL: a.ThumbnailURL,
		Tags:         tags,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
}

type articleListDTO struct {
	Items []articleDTO `json:"items"`
}

func articleListFromModels(list []models.Article) articleListDTO {
	out := articleListDTO{Items: make([]articleDTO, 0, len(list))}
	for i := range list {
		out.Items = append(out.Items, articleFromModel(&list[i]))
	}
	return out
}

type localizedArticleDTO struct {
	ID          string  `json:"id"`
	Lang        string  `json:"lang"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	PublishedAt *string `json:"published_at"`
}

func localizedFromModel(a *models.LocalizedArticle) localizedArticleDTO {
	return localizedArticleDTO{
		ID:          a.ID.String(),
		Lang:        string(a.Lang),
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: formatTimePtr(a.PublishedAt),
	}
}

type galleryItemDTO struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Date  *string `json:"date"`
}

func galleryItemFromModel(it *models.GalleryItem) galleryItemDTO {
	return galleryItemDTO{
		ID:    it.ID.String(),
		Title: it.Title,
		URL:   it.URL,
		Date:  formatTimePtr(it.Date),
	}
}

type galleryPageDTO struct {
	Items         []galleryItemDTO `json:"items"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

func galleryPageFromModel(p *models.GalleryPage) galleryPageDTO {
	out := galleryPageDTO{
		Items:         make([]galleryItemDTO, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
	}
	for i := range p.Items {
		out.Items = append(out.Items, galleryItemFromModel(&p.Items[i]))
	}
	return out
}

type galleryCreateRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPairDTO struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	TokenType       string `json:"token_type"`
	AccessExpiresAt string `json:"access_expires_at"`
}

func tokenPairFromModel(p *models.TokenPair) tokenPairDTO {
	return tokenPairDTO{
		AccessToken:     p.AccessToken,
		RefreshToken:    p.RefreshToken,
		TokenType:       "Bearer",
		AccessExpiresAt: formatTime(p.AccessExpiresAt),
	}
}

type sessionDTO struct {
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

func sessionFromModel(s *models.SessionInfo) sessionDTO {
	return sessionDTO{
		AdminID:   s.AdminID.String(),
		Email:     s.Email,
		ExpiresAt: formatTime(s.ExpiresAt),
	}
}

type presignRequest struct {
	Bucket      string `json:"bucket"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type presignDTO struct {
	UploadURL       string            `json:"upload_url"`
	Key             string            `json:"key"`
	ExpiresIn       int64             `json:"expires_in"`
	RequiredHeaders map[string]string `json:"required_headers,omitempty"`
}

func presignFromModel(info *models.UploadInfo) presignDTO {
	return presignDTO{
		UploadURL:       info.UploadURL,
		Key:             info.Key,
		ExpiresIn:       int64(info.Expires / time.Second),
		RequiredHeaders: info.RequiredHeader,
	}
}

type confirmRequest struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type imageDTO struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key,omitempty"`
	URL    string `json:"url"`
}

type visitorsDTO struct {
	Count int64 `json:"count"`
}

type okDTO struct {
	OK bool `json:"ok"`
}
