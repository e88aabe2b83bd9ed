// Package workspace holds the editable inputs of the assistant: text
// buffers persisted to the key-value store on a debounce, and the
// platform capabilities that feed them (clipboard, file drop, dictation).
//
// Inputs are only ever augmented by these sources; a paste, a dropped
// file or a dictated segment is appended to the buffer, never replacing it.
package workspace
