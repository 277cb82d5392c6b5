// Package assets provides the stylesheets that can be embedded in generated
// HTML documents.
//
// Styles are CSS files compiled into the binary with go:embed and looked up
// by name (without the .css extension):
//
//	styles/
//	├── default.css   # readable serif body, styled code and quotes
//	└── minimal.css   # system font and width limit only
//
// Style names are validated to prevent path traversal. Loading a stylesheet
// from an arbitrary file is the caller's job; see fileutil.IsFilePath.
package assets
