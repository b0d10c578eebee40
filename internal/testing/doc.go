// Package testing provides test utilities shared across test files:
//   - ScriptedRunner: a fake remote executor driven by per-command rules,
//     recording every invocation for assertions
//   - ContextBuilder: fluent construction of a bootstrap context wired to
//     fakes
//   - RecordingObserver: captures all log lines and events for assertions
//     on what was (and was not) logged
package testing
