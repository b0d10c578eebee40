// Package retry provides bounded retry loops for transient failures.
//
// The [Do] function retries an operation with a configurable attempt
// budget and delay. The default is a fixed interval, which is what
// availability polling against a rebooting host needs; exponential
// backoff is available through [WithMultiplier]. Errors wrapped with
// [Fatal] stop the loop immediately and are returned unwrapped, and
// exhausting the budget yields an [ExhaustedError] so callers can tell
// "still failing the same way" apart from "failed differently".
package retry
