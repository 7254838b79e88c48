// Package flow lifts result combinators over channels for concurrent
// fan-out/fan-in pipelines.
//
// Common usage:
// - ToChanResults: feed values into a pipeline as success results
// - Run/Turnout: execute an engine over an input channel with N lines
// - MapStage/AndThenStage/MapErrorStage/OrElseStage/TryStage/TeeStage:
//   channel-lifted counterparts of the res combinators
// - RunWith + CancelHandlers + DrainRemaining: explicit routing of
//   unprocessed inputs on cancellation
// - Finalize/FromChanMany: collapse a result stream to plain values
//
// No stage consults the failure hooks; cancellation and propagation stay
// side-effect free until a caller extracts concrete values.
package flow
