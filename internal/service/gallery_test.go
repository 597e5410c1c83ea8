package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"
	"github.com/pribylovaa/press-service/mocks"
	"github.com/stretchr/testify/require"
)

// Файл unit-тестов для галереи (gallery.go).
//
// Покрываем:
//  - ListGallery: нормализация лимита, прокидка page_token, маппинг ErrInvalidCursor;
//  - CreateGalleryItem: валидация title/url, date = now;
//  - UploadGalleryImage: подпись из имени файла, удаление объекта при ошибке вставки;
//  - DeleteGalleryItem: удаление строки и объекта (best effort).

func TestListGallery_NormalizesLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)

	gomock.InOrder(
		st.EXPECT().
			ListGallery(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts models.ListOptions) (*models.GalleryPage, error) {
				require.Equal(t, int32(24), opts.Limit, "limit must normalize to default")
				return &models.GalleryPage{}, nil
			}),
		st.EXPECT().
			ListGallery(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts models.ListOptions) (*models.GalleryPage, error) {
				require.Equal(t, int32(200), opts.Limit, "limit must be capped to max")
				require.Equal(t, "cursor", opts.PageToken)
				return &models.GalleryPage{}, nil
			}),
	)

	svc := newSvcForTest(t, st, nil)

	_, err := svc.ListGallery(context.Background(), models.ListOptions{Limit: -1})
	require.NoError(t, err)

	_, err = svc.ListGallery(context.Background(), models.ListOptions{Limit: 5000, PageToken: "cursor"})
	require.NoError(t, err)
}

func TestListGallery_InvalidCursor_Mapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().ListGallery(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidCursor)

	svc := newSvcForTest(t, st, nil)

	_, err := svc.ListGallery(context.Background(), models.ListOptions{PageToken: "bad"})
	require.ErrorIs(t, err, ErrInvalidCursor)
}

func TestCreateGalleryItem_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), nil)

	_, err := svc.CreateGalleryItem(context.Background(), "  ", "nope")
	require.ErrorIs(t, err, ErrInvalidArgument)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "title")
	require.Contains(t, verr.Fields, "url")
}

func TestCreateGalleryItem_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().
		CreateGalleryItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *models.GalleryItem) error {
			require.Equal(t, "Sunset", item.Title)
			require.Equal(t, "https://cdn.example.com/gallery/a.png", item.URL)
			require.NotNil(t, item.Date)
			require.Equal(t, fixedNow, *item.Date)
			return nil
		})

	svc := newSvcForTest(t, st, nil)

	got, err := svc.CreateGalleryItem(context.Background(), " Sunset ", "https://cdn.example.com/gallery/a.png")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
}

func TestUploadGalleryImage_TitleFromFileName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	img := mocks.NewMockImageStorage(ctrl)

	img.EXPECT().
		PutImage(gomock.Any(), models.BucketGallery, "image/png", int64(3), gomock.Any()).
		Return(&models.StoredImage{Bucket: models.BucketGallery, Key: "k.png", URL: "http://s3/gallery/k.png"}, nil)
	st.EXPECT().
		CreateGalleryItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *models.GalleryItem) error {
			require.Equal(t, "beach day", item.Title)
			require.Equal(t, "http://s3/gallery/k.png", item.URL)
			return nil
		})

	svc := newSvcForTest(t, st, img)

	_, err := svc.UploadGalleryImage(context.Background(), UploadInput{
		FileName:    `C:\photos\beach day.png`,
		ContentType: "image/PNG; charset=binary",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
}

func TestUploadGalleryImage_InsertFails_RemovesObject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	img := mocks.NewMockImageStorage(ctrl)

	img.EXPECT().
		PutImage(gomock.Any(), models.BucketGallery, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.StoredImage{Bucket: models.BucketGallery, Key: "k.png", URL: "http://s3/gallery/k.png"}, nil)
	st.EXPECT().CreateGalleryItem(gomock.Any(), gomock.Any()).Return(errors.New("db fail"))
	img.EXPECT().RemoveImage(gomock.Any(), models.BucketGallery, "k.png").Return(nil)

	svc := newSvcForTest(t, st, img)

	_, err := svc.UploadGalleryImage(context.Background(), UploadInput{
		Title:       "Title",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	require.Error(t, err)
}

func TestUploadGalleryImage_NoTitleNoFileName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), mocks.NewMockImageStorage(ctrl))

	_, err := svc.UploadGalleryImage(context.Background(), UploadInput{Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteGalleryItem_RemovesObjectBestEffort(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	item := &models.GalleryItem{ID: id, Title: "x", URL: "http://s3/gallery/k.png"}

	st := mocks.NewMockStorage(ctrl)
	img := mocks.NewMockImageStorage(ctrl)

	st.EXPECT().GalleryItemByID(gomock.Any(), id).Return(item, nil)
	st.EXPECT().DeleteGalleryItem(gomock.Any(), id).Return(nil)
	img.EXPECT().KeyFromURL(models.BucketGallery, item.URL).Return("k.png", true)
	img.EXPECT().RemoveImage(gomock.Any(), models.BucketGallery, "k.png").Return(errors.New("s3 down"))

	svc := newSvcForTest(t, st, img)

	require.NoError(t, svc.DeleteGalleryItem(context.Background(), id))
}

func TestDeleteGalleryItem_ForeignURL_KeepsObject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	item := &models.GalleryItem{ID: id, URL: "https://elsewhere.example.com/a.png"}

	st := mocks.NewMockStorage(ctrl)
	img := mocks.NewMockImageStorage(ctrl)

	st.EXPECT().GalleryItemByID(gomock.Any(), id).Return(item, nil)
	st.EXPECT().DeleteGalleryItem(gomock.Any(), id).Return(nil)
	img.EXPECT().KeyFromURL(models.BucketGallery, item.URL).Return("", false)

	svc := newSvcForTest(t, st, img)

	require.NoError(t, svc.DeleteGalleryItem(context.Background(), id))
}

func TestDeleteGalleryItem_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	st := mocks.NewMockStorage(ctrl)
	st.EXPECT().GalleryItemByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, st, nil)

	require.ErrorIs(t, svc.DeleteGalleryItem(context.Background(), id), ErrNotFound)
	require.ErrorIs(t, svc.DeleteGalleryItem(context.Background(), uuid.Nil), ErrInvalidArgument)
}

func TestTitleFromFileName(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"photo.jpg":              "photo",
		"dir/sub/my photo.webp":  "my photo",
		`C:\Users\me\summer.png`: "summer",
		"noext":                  "noext",
		"   ":                    "",
		"archive.tar.gz":         "archive.tar",
	}

	for in, want := range tcs {
		require.Equal(t, want, titleFromFileName(in), in)
	}
}
