package errors

import "fmt"

// Error codes
const (
	CodeFetch      = "FETCH_ERROR"
	CodeExtraction = "EXTRACTION_ERROR"
	CodeRender     = "RENDER_ERROR"
)

type BuildError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// FetchError covers transport failures and non-success HTTP statuses while
// retrieving the source page. Always fatal: there is no cached fallback, so
// aborting beats publishing stale data.
type FetchError struct {
	*BuildError
	URL string
}

func NewFetchError(message, url string, statusCode int, cause error) *FetchError {
	return &FetchError{
		BuildError: &BuildError{
			Message:    message,
			Code:       CodeFetch,
			StatusCode: statusCode,
			Context: map[string]any{
				"url": url,
			},
			Cause: cause,
		},
		URL: url,
	}
}

// ExtractionError signals that the extracted record set failed the sanity
// guard, which usually means the source page's structure changed.
type ExtractionError struct {
	*BuildError
	Count   int
	Minimum int
}

func NewExtractionError(message string, count, minimum int) *ExtractionError {
	return &ExtractionError{
		BuildError: &BuildError{
			Message: message,
			Code:    CodeExtraction,
			Context: map[string]any{
				"count":   count,
				"minimum": minimum,
			},
		},
		Count:   count,
		Minimum: minimum,
	}
}

type RenderError struct {
	*BuildError
	Path string
}

func NewRenderError(message, path string, cause error) *RenderError {
	return &RenderError{
		BuildError: &BuildError{
			Message: message,
			Code:    CodeRender,
			Context: map[string]any{
				"path": path,
			},
			Cause: cause,
		},
		Path: path,
	}
}
