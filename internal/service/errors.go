package service

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError - ошибка валидации входных данных с разбивкой по полям.
// errors.Is(err, ErrInvalidArgument) == true.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg := "validation failed"
	for i, k := range keys {
		if i == 0 {
			msg += ": "
		} else {
			msg += "; "
		}
		msg += k + ": " + e.Fields[k]
	}

	return msg
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// fromValidation переводит ошибки ozzo-validation в ValidationError.
// Внутренние (не валидационные) ошибки возвращаются как есть.
func fromValidation(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return err
		}

		return &ValidationError{Fields: map[string]string{"value": err.Error()}}
	}

	fields := make(map[string]string, len(errs))
	for k, v := range errs {
		if v != nil {
			fields[k] = v.Error()
		}
	}

	return &ValidationError{Fields: fields}
}
