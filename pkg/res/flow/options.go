package flow

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	workerOptionKey  optionKey = "worker_options"
)

type workerOptions struct {
	MaxCount int
}

type processOptions struct {
	ProcessRemaining bool
}

// WithWorkerOptions stores the maximum worker count in the context.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{MaxCount: maxWorkers})
}

// WorkerMaxCount returns the configured maximum worker count, or the
// default when none was set.
func WorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

// WithProcessOptions stores whether remaining inputs should still be
// routed on cancellation.
func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, processOptions{ProcessRemaining: processRemaining})
}

// ProcessRemainingEnabled reports whether remaining inputs are routed on
// cancellation, or the default when none was set.
func ProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(processOptionKey).(processOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
