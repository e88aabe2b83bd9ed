// Package cli provides the interactive toneflow command-line client.
//
// The App restores the previous session, then runs a REPL over two
// panels: text analysis (tone, clarity, rewrite, speech) and reply draft
// generation. Scratch buffers are persisted by the workspace layer, so a
// restarted client resumes where the user left off.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
