package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one CLI invocation.
	FieldRunID = "run_id"
	// FieldCase is the catalogue entry id a job belongs to.
	FieldCase = "case"
	// FieldJob is the display name of a job.
	FieldJob = "job"
	// FieldEventType tags lifecycle events (job_launch, job_done, ...).
	FieldEventType = "event_type"
)

type contextKey int

const (
	runIDKey contextKey = iota
	caseKey
	jobKey
)

// WithRunID tags ctx with the invocation's run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithJob tags ctx with the case id and job name being executed.
func WithJob(ctx context.Context, caseID, job string) context.Context {
	ctx = context.WithValue(ctx, caseKey, caseID)
	return context.WithValue(ctx, jobKey, job)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if v, ok := ctx.Value(caseKey).(string); ok && v != "" {
		fields = append(fields, slog.String(FieldCase, v))
	}
	if v, ok := ctx.Value(jobKey).(string); ok && v != "" {
		fields = append(fields, slog.String(FieldJob, v))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
