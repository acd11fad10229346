package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldRunID       = "run_id"
	FieldCommand     = "command"
	FieldSeason      = "season"
	FieldDataVersion = "data_version"
	FieldCompetition = "competition"
	FieldPath        = "path"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
