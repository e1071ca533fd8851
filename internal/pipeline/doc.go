// SPDX-License-Identifier: MPL-2.0

// Package pipeline runs an install as an ordered list of named tasks over a
// shared Context.
//
// Tasks run strictly in sequence and the first failure aborts the run. A
// task may fan out independent work with Parallel, which joins before the
// task returns. Each Context output field is written by exactly one task,
// so no locking is needed between tasks.
package pipeline
