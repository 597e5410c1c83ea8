package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/press-service/internal/models"
	"github.com/pribylovaa/press-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListGallery возвращает страницу галереи с курсорной пагинацией.
// Сортировка фиксирована: coalesce(date, epoch) DESC, id DESC - записи без даты идут в конце.
// page_token - непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (s *Storage) ListGallery(ctx context.Context, opts models.ListOptions) (*models.GalleryPage, error) {
	const op = "storage.postgres.ListGallery"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT id, title, url, date
		FROM gallery
		ORDER BY coalesce(date, 'epoch'::timestamptz) DESC, id DESC
		LIMIT $1
		`, limit)
	} else {
		dateCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT id, title, url, date
		FROM gallery
		WHERE (coalesce(date, 'epoch'::timestamptz), id) < ($1, $2)
		ORDER BY coalesce(date, 'epoch'::timestamptz) DESC, id DESC
		LIMIT $3
		`, dateCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	page := models.GalleryPage{Items: make([]models.GalleryItem, 0, limit)}
	for rows.Next() {
		var item models.GalleryItem
		if scanErr := rows.Scan(&item.ID, &item.Title, &item.URL, &item.Date); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		normalizeGalleryItem(&item)
		page.Items = append(page.Items, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы - по последнему элементу, только если страница полная.
	if l := len(page.Items); l > 0 && int32(l) == limit {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(sortDate(last.Date), last.ID)
	}

	return &page, nil
}

// GalleryItemByID возвращает элемент галереи по идентификатору.
func (s *Storage) GalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	const op = "storage.postgres.GalleryItemByID"

	var item models.GalleryItem
	err := s.db.QueryRow(ctx, `
	SELECT id, title, url, date
	FROM gallery
	WHERE id = $1
	`, id).Scan(&item.ID, &item.Title, &item.URL, &item.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	normalizeGalleryItem(&item)
	return &item, nil
}

// CreateGalleryItem сохраняет новый элемент галереи.
func (s *Storage) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	const op = "storage.postgres.CreateGalleryItem"

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO gallery (id, title, url, date)
	VALUES ($1, $2, $3, $4)
	`, item.ID, item.Title, item.URL, item.Date)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteGalleryItem удаляет элемент галереи.
func (s *Storage) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteGalleryItem"

	tag, err := s.db.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func normalizeGalleryItem(item *models.GalleryItem) {
	if item.Date != nil {
		t := item.Date.UTC()
		item.Date = &t
	}
}

// sortDate - ключ сортировки: дата или epoch для записей без даты.
func sortDate(d *time.Time) time.Time {
	if d == nil {
		return time.Unix(0, 0).UTC()
	}

	return d.UTC()
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(date time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", date.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, t).UTC(), id, nil
}
