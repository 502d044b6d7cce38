// Package term manages the process-wide raw-mode state of the controlling
// terminal and provides the flushable output sink used for control requests.
//
// Raw mode is process-global by nature, so the package exposes it as explicit
// enable/disable/query functions guarded by a mutex. Callers are expected to
// use scoped discipline: enable, perform the operation, always restore. The
// Switcher and Passthrough adapters present the same state to components that
// accept a mode-switching collaborator.
package term
