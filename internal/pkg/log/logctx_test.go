package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты меняют slog.Default(), поэтому намеренно НЕ используют t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFrom_ReturnsDefault_WhenNoLoggerInContext -
// если логгер не положен в контекст, From возвращает текущий slog.Default().
func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

// TestIntoAndFrom_RoundTrip - Into кладёт логгер в контекст, From извлекает его 1:1.
func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

// TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil -
// From устойчив к «мусорным» значениям по нашему ключу и к *slog.Logger(nil).
func TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

// TestWith_AddsAttrs - With добавляет атрибуты к логгеру из контекста.
func TestWith_AddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	parent := Into(context.Background(), base)
	child := With(parent, slog.String("request_id", "abc"))

	From(child).Info("hello")
	require.Contains(t, buf.String(), "request_id=abc")

	buf.Reset()
	From(parent).Info("hello")
	require.NotContains(t, buf.String(), "request_id")
}
