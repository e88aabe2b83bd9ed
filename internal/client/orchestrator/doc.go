// Package orchestrator sequences each assistant feature: validate input,
// call the model gateway, track per-feature status and record successful
// results in the history log.
//
// Every feature has its own finite state (idle, loading, success, error),
// so a long request in one feature never blocks another. A feature that
// is already loading rejects a second invocation with common.ErrBusy.
//
// Gateway and capability failures become the feature's error state and a
// *FeatureError carrying the message the user should see. Validation
// errors are returned as is.
package orchestrator
