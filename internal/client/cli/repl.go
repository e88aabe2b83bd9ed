package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Text(ctx context.Context, args []string) error
	Tone(ctx context.Context) error
	Clarity(ctx context.Context) error
	Tones(ctx context.Context) error
	Rewrite(ctx context.Context, args []string) error
	Speak(ctx context.Context, args []string) error
	Copy(ctx context.Context) error

	Message(ctx context.Context, args []string) error
	Instruction(ctx context.Context, args []string) error
	Drafts(ctx context.Context) error
	SpeakDraft(ctx context.Context, args []string) error
	CopyDraft(ctx context.Context, args []string) error

	History(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: signup, login, whoami, exit"
	helpUser  = `Available commands:
  text [show|set|append|paste|load <file>|dictate|clear]
  tone, clarity, tones, rewrite <tone>, speak [rewrite], copy
  message [...], instruction [...], drafts, speakdraft <n>, copydraft <n>
  history [stats], whoami, logout, exit`
)

// runREPL starts a simple read-eval-print loop for the toneflow CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands other than signup, login, whoami,
// help and exit require an active session. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tf (%s) > ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue
		case "signup", "register":
			_ = a.Signup(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "whoami":
			_ = a.Whoami(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if knownCommand(cmd) {
				printlnFn("Please login or signup first.")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "text":
			_ = a.Text(ctx, args)
		case "tone":
			_ = a.Tone(ctx)
		case "clarity":
			_ = a.Clarity(ctx)
		case "tones":
			_ = a.Tones(ctx)
		case "rewrite":
			_ = a.Rewrite(ctx, args)
		case "speak":
			_ = a.Speak(ctx, args)
		case "copy":
			_ = a.Copy(ctx)
		case "message":
			_ = a.Message(ctx, args)
		case "instruction":
			_ = a.Instruction(ctx, args)
		case "drafts":
			_ = a.Drafts(ctx)
		case "speakdraft":
			_ = a.SpeakDraft(ctx, args)
		case "copydraft":
			_ = a.CopyDraft(ctx, args)
		case "history":
			_ = a.History(ctx, args)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "logout", "text", "tone", "clarity", "tones", "rewrite", "speak", "copy",
		"message", "instruction", "drafts", "speakdraft", "copydraft", "history":
		return true
	}
	return false
}
