package workspace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/toneflow/internal/common"
)

// Segment is one transcript event. Interim segments may still change;
// final ones will not. A segment with Err set reports that recognition
// failed and is the last one sent.
type Segment struct {
	Text  string
	Final bool
	Err   error
}

// Recognizer produces transcript segments until ctx is cancelled or the
// source ends, then closes the channel. Each Start begins a new sequence.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Segment, error)
}

// CommandRecognizer runs an external speech-to-text command and turns
// each stdout line into a segment. Lines starting with "~" are interim.
type CommandRecognizer struct {
	Command string
}

var _ Recognizer = (*CommandRecognizer)(nil)

const interimPrefix = "~"

func (r *CommandRecognizer) Start(ctx context.Context) (<-chan Segment, error) {
	cmd, err := command(ctx, r.Command)
	if err != nil {
		return nil, fmt.Errorf("dictation: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("dictation: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("dictation: %w", err)
	}

	out := make(chan Segment)
	go func() {
		defer close(out)

		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			line := sc.Text()
			seg := Segment{Text: line, Final: true}
			if rest, ok := strings.CutPrefix(line, interimPrefix); ok {
				seg = Segment{Text: rest}
			}
			select {
			case out <- seg:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}
		scanErr := sc.Err()
		waitErr := cmd.Wait()
		// a cancelled context kills the command; that is a normal stop
		if ctx.Err() != nil {
			return
		}
		if err := errors.Join(scanErr, waitErr); err != nil {
			select {
			case out <- Segment{Err: fmt.Errorf("dictation: %s: %w", r.Command, err)}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

// Dictate consumes segments from rec, appending final ones to buf until
// the sequence ends or ctx is cancelled. interim, if non-nil, sees every
// non-final segment. An error segment ends dictation with its error; text
// appended before it is kept.
func Dictate(ctx context.Context, rec Recognizer, buf *Buffer, interim func(string)) error {
	if rec == nil {
		return fmt.Errorf("dictation: %w", common.ErrUnsupportedCapability)
	}
	segs, err := rec.Start(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case seg, ok := <-segs:
			if !ok {
				return nil
			}
			if seg.Err != nil {
				return seg.Err
			}
			if !seg.Final {
				if interim != nil {
					interim(seg.Text)
				}
				continue
			}
			buf.Append(joinSegment(buf.Text(), seg.Text))
		}
	}
}

// joinSegment adds a separating space when neither side has one.
func joinSegment(prev, seg string) string {
	if prev == "" || seg == "" {
		return seg
	}
	last := rune(prev[len(prev)-1])
	first := rune(seg[0])
	if unicode.IsSpace(last) || unicode.IsSpace(first) {
		return seg
	}
	return " " + seg
}
