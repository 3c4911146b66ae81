package adapter

import "errors"

var (
	// ErrAnalysisFailed is returned when the AI analysis service answers with
	// a non-2xx status. The caller treats analysis as best-effort and must
	// not fail the originating request on this error.
	ErrAnalysisFailed = errors.New("asset analysis failed")
)
