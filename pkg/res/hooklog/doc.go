// Package hooklog builds slog-based log hooks for the result container:
// a tinted console handler plus an optional rotating file sink, with the
// hook message tags mapped to slog levels. It is an integration helper;
// the container's default behavior (raw lines on standard error) does not
// depend on it.
package hooklog
