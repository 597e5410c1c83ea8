package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/models"
)

func (h *Handlers) ListGallery(w http.ResponseWriter, r *http.Request) {
	var opts models.ListOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		opts.Limit = int32(n)
	}

	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.svc.ListGallery(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, galleryPageFromModel(page))
}

// CreateGalleryItem добавляет запись по уже загруженному URL.
func (h *Handlers) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req galleryCreateRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	item, err := h.svc.CreateGalleryItem(r.Context(), req.Title, req.URL)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, galleryItemFromModel(item))
}

// UploadGalleryImage принимает multipart: file (обязательно), title (опционально).
func (h *Handlers) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := h.readUpload(w, r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer cleanup()

	in.Title = r.FormValue("title")

	item, err := h.svc.UploadGalleryImage(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, galleryItemFromModel(item))
}

func (h *Handlers) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.DeleteGalleryItem(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okDTO{OK: true})
}
