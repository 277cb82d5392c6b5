// Package pipeline implements the line-oriented Markdown-to-HTML conversion.
//
// Conversion is a single pass over the source lines:
//   - Classify assigns each line one block kind (list item, blockquote,
//     heading, code fence, plain)
//   - BodyRenderer runs a small state machine over those kinds, opening and
//     closing list, blockquote and code wrappers as the kind changes
//   - RewriteInline turns links, images, bold and italic spans into tags
//   - WrapDocument places the body in the fixed HTML5 frame
//
// No HTML escaping is performed on Markdown content. Raw angle brackets,
// ampersands and quotes pass through unchanged, including inside code
// blocks. Callers rendering untrusted input must sanitize the result.
package pipeline
