// Package slogerr provides a one-line slog.Attr helper for logging
// errors under a consistent key.
package slogerr

import "log/slog"

// Err wraps err under the conventional "err" key, so every error log
// line across the codebase uses the same attribute name.
func Err(err error) slog.Attr {
	return slog.Any("err", err)
}
