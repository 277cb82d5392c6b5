package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// DefaultStyleName is the embedded stylesheet used by the CLI --style flag
// when no value is given.
const DefaultStyleName = assets.DefaultStyleName

// DefaultHighlightStyle is the chroma style used when highlighting is
// enabled without a style name.
const DefaultHighlightStyle = pipeline.DefaultHighlightStyle

// Styles returns the names of the embedded stylesheets, sorted.
func Styles() []string {
	return assets.ListStyles()
}

// HighlightStyles returns the names of the available chroma styles, sorted.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}

// convertInternalError maps internal errors to public sentinels.
func convertInternalError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // Invalid name means not found
	case errors.Is(err, pipeline.ErrHighlightStyleNotFound):
		return wrapError(ErrHighlightStyleNotFound, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

func (e *wrappedError) Unwrap() []error {
	return []error{e.sentinel, e.original}
}

// loadEmbeddedStyle loads a named stylesheet from the embedded assets.
func loadEmbeddedStyle(name string) (string, error) {
	css, err := assets.LoadStyle(name)
	if err != nil {
		return "", convertInternalError(err)
	}
	return css, nil
}
