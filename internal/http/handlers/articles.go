package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/feed"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/pkg/log"
	"github.com/pribylovaa/press-service/internal/service"
)

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	h.listArticles(w, r, false)
}

func (h *Handlers) AdminListArticles(w http.ResponseWriter, r *http.Request) {
	h.listArticles(w, r, true)
}

func (h *Handlers) listArticles(w http.ResponseWriter, r *http.Request, includeUnpublished bool) {
	list, err := h.svc.ListArticles(r.Context(), service.ArticleQuery{
		Search:             r.URL.Query().Get("q"),
		IncludeUnpublished: includeUnpublished,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleListFromModels(list))
}

func (h *Handlers) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.FeaturedArticles(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleListFromModels(list))
}

// ArticlesFeed отдаёт RSS 2.0 ленту опубликованных статей на языке lang (по умолчанию en).
func (h *Handlers) ArticlesFeed(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.articles.ArticlesFeed"

	lang, err := models.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	list, err := h.svc.FeedArticles(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := feed.Write(&buf, h.feed, lang, list); err != nil {
		log.From(r.Context()).Error("articles_feed_encode_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// GetArticle отдаёт статью по id или slug.
// С параметром lang ответ содержит только одну языковую версию.
func (h *Handlers) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if raw, ok := r.URL.Query()["lang"]; ok {
		lang, err := models.ParseLanguage(raw[0])
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		la, err := h.svc.LocalizedArticle(r.Context(), id, lang)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, localizedFromModel(la))
		return
	}

	a, err := h.svc.Article(r.Context(), id, false)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleFromModel(a))
}

func (h *Handlers) AdminGetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	a, err := h.svc.Article(r.Context(), id, true)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleFromModel(a))
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in service.ArticleInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}
	// Создание всегда выдаёт новый id.
	in.ID = nil

	a, err := h.svc.SaveArticle(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, articleFromModel(a))
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in service.ArticleInput
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if in.ID != nil && *in.ID != id {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}
	in.ID = &id

	a, err := h.svc.SaveArticle(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleFromModel(a))
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.DeleteArticle(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okDTO{OK: true})
}
