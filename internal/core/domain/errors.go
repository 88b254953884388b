package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidAmount is returned when the target amount is not a positive integer.
	ErrInvalidAmount = zerr.New("amount must be a positive integer")

	// ErrNegativeCount is returned when a satchel holds a negative number of coins.
	ErrNegativeCount = zerr.New("negative coin count")

	// ErrValueMismatch is returned when a satchel's value differs from the target amount.
	ErrValueMismatch = zerr.New("satchel value does not match target")

	// ErrInvalidSatchel is returned when a satchel cannot be parsed.
	ErrInvalidSatchel = zerr.New("invalid satchel, expected tokens like '20p 1n 0d 0q'")

	// ErrInvalidSortOrder is returned when a sort order is unknown.
	ErrInvalidSortOrder = zerr.New("invalid sort order, expected 'desc', 'asc' or 'text'")

	// ErrInvalidFormat is returned when an output format is unknown.
	ErrInvalidFormat = zerr.New("invalid format, expected 'text', 'json' or 'yaml'")

	// ErrInvalidParallelism is returned when the worker count is out of range.
	ErrInvalidParallelism = zerr.New("invalid parallelism")

	// ErrMissingAmount is returned when neither the command line nor the config file sets an amount.
	ErrMissingAmount = zerr.New("no amount specified")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrEnumerationCanceled is returned when the context ends before the search completes.
	ErrEnumerationCanceled = zerr.New("enumeration canceled")

	// ErrReportWriteFailed is returned when the report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrReportMarshalFailed is returned when the report cannot be encoded.
	ErrReportMarshalFailed = zerr.New("failed to marshal report")

	// ErrWatchFailed is returned when the settings file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch settings file")
)
