// Package domain defines the core entities for the minutes client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Meeting: A processed recording with its transcript and summary
//   - UploadSelection: The audio file chosen for the next upload
//   - SearchResult: A single hit returned by the backend search
//   - ExportTarget: Where the PDF export of a meeting can be fetched
//   - ViewState: The transient state owned by the controller
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
