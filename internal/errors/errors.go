// errors стандартизирует ответы об ошибках HTTP-слоя press-service.
// На вход он принимает ошибку сервисного слоя (sentinel-ошибки service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - для ошибок валидации - карту fields с разбивкой по полям.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/press-service/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError - единый формат для фронта.
// Code - короткий стабильный код для машиночитаемой обработки на FE.
// Message - безопасное человекочитаемое описание.
// RequestID - прокидывается из X-Request-Id, если есть (для трассировки).
// Fields - ошибки валидации по полям (только для invalid_argument).
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ErrorResponse - корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - неизвестная ошибка - 500/internal (без утечки деталей).
//   - известная ошибка - маппим через baseFromService().
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	httpStatus, code, msg := baseFromService(err)
	resp := ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}

	var verr *service.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		resp.Error.Fields = verr.Fields
	}

	return httpStatus, resp
}

// WriteError - хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromService - базовый маппинг ошибок сервиса -> HTTP/FE-код/сообщение:
//   - ErrInvalidArgument/ErrInvalidCursor (и ошибки политик email/пароля) -> 400
//   - слишком большое тело запроса -> 413
//   - ErrNotFound -> 404
//   - ErrAlreadyExists -> 409
//   - ErrInvalidCredentials/ErrInvalidToken/ErrTokenExpired/ErrTokenRevoked -> 401
//   - ErrForbidden -> 403
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504
//   - прочее -> 500/internal
func baseFromService(err error) (int, string, string) {
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "payload_too_large", "payload too large"
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidCursor),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmptyPassword):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
