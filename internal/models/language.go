package models

import (
	"errors"
	"strings"
)

// Language - язык контента.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// ErrUnknownLanguage - язык не поддерживается.
var ErrUnknownLanguage = errors.New("unknown language")

// ParseLanguage нормализует код языка.
// Пустая строка -> LanguageEN.
func ParseLanguage(raw string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "en":
		return LanguageEN, nil
	case "ar":
		return LanguageAR, nil
	default:
		return "", ErrUnknownLanguage
	}
}
