package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadMarkdown         = errors.New("failed to read markdown file")
	ErrWriteHTML            = errors.New("failed to write HTML file")
	ErrEmptySourcePath      = errors.New("source file path cannot be empty")
	ErrEmptyDestinationPath = errors.New("destination file path cannot be empty")
	ErrHTMLConversion       = errors.New("HTML conversion failed")

	// Option validation errors.
	ErrInvalidTitle           = errors.New("invalid title")
	ErrStyleNotFound          = errors.New("style not found")
	ErrHighlightStyleNotFound = errors.New("highlight style not found")
)
