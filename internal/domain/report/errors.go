package report

import "errors"

var (
	ErrInvalidGranularity     = errors.New("invalid report type")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
