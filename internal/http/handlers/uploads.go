package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/pribylovaa/press-service/internal/errors"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/service"
)

// multipartMemory - сколько формы держим в памяти, остальное уходит во временные файлы.
const multipartMemory = 8 << 20

// readUpload читает поле file из multipart-формы с ограничением размера тела.
// cleanup закрывает файл и удаляет временные данные формы.
func (h *Handlers) readUpload(w http.ResponseWriter, r *http.Request) (service.UploadInput, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return service.UploadInput{}, nil, err
		}

		return service.UploadInput{}, nil, errInvalidArgument()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		return service.UploadInput{}, nil, errInvalidArgument()
	}

	cleanup := func() {
		_ = file.Close()
		_ = r.MultipartForm.RemoveAll()
	}

	return service.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, cleanup, nil
}

// UploadImage принимает multipart: file и bucket (media|gallery, по умолчанию media).
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	in, cleanup, err := h.readUpload(w, r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	defer cleanup()

	bucket := models.ImageBucket(r.FormValue("bucket"))
	if bucket == "" {
		bucket = models.BucketMedia
	}

	img, err := h.svc.UploadImage(r.Context(), bucket, in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, imageDTO{
		Bucket: string(img.Bucket),
		Key:    img.Key,
		URL:    img.URL,
	})
}

func (h *Handlers) ImageUploadURL(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.ImageUploadURL(r.Context(), models.ImageBucket(req.Bucket), req.ContentType, req.Size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromModel(info))
}

func (h *Handlers) ConfirmImageUpload(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	url, err := h.svc.ConfirmImageUpload(r.Context(), models.ImageBucket(req.Bucket), req.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageDTO{
		Bucket: req.Bucket,
		Key:    req.Key,
		URL:    url,
	})
}
