// Package sciencefair validates science fair judging rosters stored in Excel files.
package sciencefair

import "go.uber.org/zap"

// DefaultPath is the workbook validated when no path is given.
const DefaultPath = "ScienceFair.xlsx"

// Options configures validation behavior.
type Options struct {
	// Sheet names the worksheet to validate.
	// If empty, the first sheet of the workbook is used.
	Sheet string
	// Logger receives diagnostic output. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default validation options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
