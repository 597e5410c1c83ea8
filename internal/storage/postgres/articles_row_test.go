package postgres

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Unit-тесты маппинга строк и курсоров (без БД).

func strPtr(s string) *string { return &s }

// TestArticleRow_ToModel_MissingArabicTitle - NULL в title_ar превращается в "".
func TestArticleRow_ToModel_MissingArabicTitle(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := articleRow{
		ID:      uuid.New(),
		Slug:    "hello",
		Title:   strPtr("Hello"),
		Content: strPtr("<p>Hi</p>"),
	}

	a := r.toModel(now)
	require.Equal(t, "Hello", a.TitleEN)
	require.Equal(t, "", a.TitleAR)
	require.Equal(t, "<p>Hi</p>", a.ContentEN)
	require.Equal(t, "", a.ContentAR)
}

// TestArticleRow_ToModel_Defaults - пустая строка получает дефолты.
func TestArticleRow_ToModel_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3*3600))
	a := articleRow{ID: uuid.New()}.toModel(now)

	require.Equal(t, "", a.TitleEN)
	require.Equal(t, "", a.ContentEN)
	require.NotNil(t, a.Tags)
	require.Empty(t, a.Tags)
	require.Equal(t, now.UTC(), a.CreatedAt)
	require.Equal(t, now.UTC(), a.UpdatedAt)
	require.Equal(t, time.UTC, a.CreatedAt.Location())
	require.Nil(t, a.PublishedAt)
	require.Nil(t, a.ThumbnailURL)
}

// TestArticleRow_ToModel_KeepsValues - заполненные значения переносятся как есть (в UTC).
func TestArticleRow_ToModel_KeepsValues(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	pub := created.Add(time.Hour)
	thumb := "https://cdn.example.com/media/thumbnails/a.png"

	a := articleRow{
		ID:           uuid.New(),
		Title:        strPtr("T"),
		TitleAR:      strPtr("عنوان"),
		Published:    true,
		PublishedAt:  &pub,
		ThumbnailURL: &thumb,
		Tags:         []string{"news"},
		CreatedAt:    &created,
		UpdatedAt:    &created,
	}.toModel(time.Now())

	require.Equal(t, "عنوان", a.TitleAR)
	require.True(t, a.Published)
	require.Equal(t, pub.UTC(), *a.PublishedAt)
	require.Equal(t, thumb, *a.ThumbnailURL)
	require.Equal(t, []string{"news"}, a.Tags)
	require.Equal(t, created.UTC(), a.CreatedAt)
}

// TestPageToken_RoundTrip - encode/decode курсора.
func TestPageToken_RoundTrip(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 4, 5, 6, 7, 8, time.UTC)
	id := uuid.New()

	gotTS, gotID, err := decodePageToken(encodePageToken(ts, id))
	require.NoError(t, err)
	require.Equal(t, ts, gotTS)
	require.Equal(t, id, gotID)
}

// TestPageToken_Invalid - битые токены не декодируются.
func TestPageToken_Invalid(t *testing.T) {
	t.Parallel()

	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	for _, tok := range []string{
		"%%%not-base64",
		enc("no-separator"),
		enc("abc|" + uuid.NewString()),
		enc("123|not-a-uuid"),
	} {
		_, _, err := decodePageToken(tok)
		require.Error(t, err, tok)
	}
}

// TestSortDate_NilIsEpoch - записи без даты сортируются как epoch.
func TestSortDate_NilIsEpoch(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Unix(0, 0).UTC(), sortDate(nil))
}
