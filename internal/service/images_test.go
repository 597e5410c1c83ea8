package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/press-service/internal/metrics"
	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"
	"github.com/pribylovaa/press-service/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// Файл unit-тестов для изображений (images.go).
//
// Покрываем:
//  - проверку бакета до обращения к хранилищу;
//  - нормализацию Content-Type;
//  - маппинг ошибок объектного хранилища;
//  - счётчик загрузок.

func TestUploadImage_UnknownBucket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), mocks.NewMockImageStorage(ctrl))

	_, err := svc.UploadImage(context.Background(), models.ImageBucket("avatars"), UploadInput{Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.UploadImage(context.Background(), models.BucketMedia, UploadInput{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUploadImage_OK_CountsUpload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	img := mocks.NewMockImageStorage(ctrl)
	img.EXPECT().
		PutImage(gomock.Any(), models.BucketMedia, "image/jpeg", int64(4), gomock.Any()).
		Return(&models.StoredImage{Bucket: models.BucketMedia, Key: "thumbnails/a.jpg", URL: "http://s3/media/thumbnails/a.jpg"}, nil)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), img)
	svc.SetMetrics(m)

	got, err := svc.UploadImage(context.Background(), models.BucketMedia, UploadInput{
		ContentType: " IMAGE/JPEG ",
		Size:        4,
		Body:        strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	require.Equal(t, "thumbnails/a.jpg", got.Key)

	const want = `
# HELP press_uploads_total Количество успешно загруженных изображений по бакету.
# TYPE press_uploads_total counter
press_uploads_total{bucket="media"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "press_uploads_total"))
}

func TestUploadImage_StorageErrorsMapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	img := mocks.NewMockImageStorage(ctrl)
	img.EXPECT().
		PutImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrInvalidArgument)

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), img)

	_, err := svc.UploadImage(context.Background(), models.BucketMedia, UploadInput{ContentType: "text/plain", Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImageUploadURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	info := &models.UploadInfo{UploadURL: "http://s3/put", Key: "k.png", Expires: 15 * time.Minute}

	img := mocks.NewMockImageStorage(ctrl)
	img.EXPECT().ImageUploadURL(gomock.Any(), models.BucketGallery, "image/png", int64(10)).Return(info, nil)

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), img)

	got, err := svc.ImageUploadURL(context.Background(), models.BucketGallery, "image/png", 10)
	require.NoError(t, err)
	require.Equal(t, info, got)

	_, err = svc.ImageUploadURL(context.Background(), models.ImageBucket(""), "image/png", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfirmImageUpload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	img := mocks.NewMockImageStorage(ctrl)
	img.EXPECT().CheckImageUpload(gomock.Any(), models.BucketMedia, "thumbnails/a.png").Return("http://s3/media/thumbnails/a.png", nil)
	img.EXPECT().CheckImageUpload(gomock.Any(), models.BucketMedia, "thumbnails/missing.png").Return("", storage.ErrNotFoundObject)

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), img)

	url, err := svc.ConfirmImageUpload(context.Background(), models.BucketMedia, " thumbnails/a.png ")
	require.NoError(t, err)
	require.Equal(t, "http://s3/media/thumbnails/a.png", url)

	_, err = svc.ConfirmImageUpload(context.Background(), models.BucketMedia, "thumbnails/missing.png")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ConfirmImageUpload(context.Background(), models.BucketMedia, " ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNormalizeContentType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "image/png", normalizeContentType("Image/PNG; charset=binary"))
	require.Equal(t, "image/webp", normalizeContentType("  image/webp "))
	require.Equal(t, "", normalizeContentType(""))
}
