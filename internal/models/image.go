package models

import "time"

// ImageBucket - бакет объектного хранилища.
type ImageBucket string

const (
	// BucketMedia - обложки статей (ключи вида thumbnails/<name>).
	BucketMedia ImageBucket = "media"
	// BucketGallery - изображения галереи (ключи вида <name>).
	BucketGallery ImageBucket = "gallery"
)

// Valid сообщает, известен ли бакет.
func (b ImageBucket) Valid() bool {
	return b == BucketMedia || b == BucketGallery
}

// StoredImage - результат загрузки изображения.
type StoredImage struct {
	Bucket ImageBucket
	Key    string
	URL    string
}

// UploadInfo - данные для прямой загрузки через presigned PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}
