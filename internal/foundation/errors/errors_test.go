package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_Defaults(t *testing.T) {
	err := NewError(CategoryBuild, "stage failed").Build()

	assert.Equal(t, CategoryBuild, err.Category())
	assert.Equal(t, SeverityError, err.Severity())
	assert.Equal(t, "stage failed", err.Message())
	assert.Nil(t, err.Cause())
	assert.Equal(t, "[build:error] stage failed", err.Error())
}

func TestErrorBuilder_WrapKeepsCause(t *testing.T) {
	err := FileSystemError("copy asset").
		WithCause(fs.ErrPermission).
		WithContext("path", "/site/downloads/cv.pdf").
		Build()

	require.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.True(t, err.IsFatal())
	path, ok := err.Context().Get("path")
	require.True(t, ok)
	assert.Equal(t, "/site/downloads/cv.pdf", path)
	assert.Contains(t, err.Error(), "[filesystem:fatal] copy asset: permission denied")
}

func TestClassifiedError_WithContextDoesNotMutate(t *testing.T) {
	base := ValidationError("bad url").Build()
	derived := base.WithContext("url", "../etc")

	_, ok := base.Context().Get("url")
	assert.False(t, ok)
	got, ok := derived.Context().Get("url")
	require.True(t, ok)
	assert.Equal(t, "../etc", got)
}

func TestAsClassified_FindsWrappedError(t *testing.T) {
	inner := ConfigError("missing docs_dir").Build()
	wrapped := fmt.Errorf("load: %w", inner)

	got, ok := AsClassified(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, HasCategory(wrapped, CategoryConfig))
	assert.Equal(t, CategoryConfig, GetCategory(wrapped))
}

func TestGetCategory_Unclassified(t *testing.T) {
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	assert.False(t, HasCategory(nil, CategoryConfig))
}

func TestClassifiedError_Is(t *testing.T) {
	a := FileSystemError("asset missing").Build()
	b := FileSystemError("asset missing").WithContext("path", "x").Build()
	c := FileSystemError("other").Build()

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestErrorContext_Merge(t *testing.T) {
	var empty ErrorContext
	other := ErrorContext{"a": 1}
	assert.Equal(t, other, empty.Merge(other))

	base := ErrorContext{"a": 1, "b": 2}
	merged := base.Merge(ErrorContext{"b": 3})
	assert.Equal(t, ErrorContext{"a": 1, "b": 3}, merged)
	assert.Equal(t, 2, base["b"])
}
