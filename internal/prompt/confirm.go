package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Question is a yes/no question. Key identifies the question independently
// of its wording so answers can be preset.
type Question struct {
	Key     string
	Text    string
	Default bool
}

// Confirmer answers yes/no questions.
type Confirmer interface {
	Confirm(q Question) (bool, error)
}

// Terminal asks questions on w and reads answers line by line from r.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewTerminal creates a Terminal confirmer. The reader is buffered once so
// consecutive questions do not lose typed-ahead input.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(r), w: w}
}

// Confirm prints the question and waits for an answer. Empty input and EOF
// select the default; unrecognized input asks again.
func (t *Terminal) Confirm(q Question) (bool, error) {
	def := "no"
	if q.Default {
		def = "yes"
	}

	for {
		color.New(color.FgGreen).Fprintf(t.w, " %s", q.Text)
		fmt.Fprintf(t.w, " (yes/no) [")
		color.New(color.FgYellow).Fprint(t.w, def)
		fmt.Fprint(t.w, "]:\n > ")

		line, err := t.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		answer, ok := parseAnswer(line, q.Default)
		if ok {
			fmt.Fprintln(t.w)
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.w)
			return q.Default, nil
		}

		color.New(color.FgRed).Fprintf(t.w, "Please answer yes or no.\n")
	}
}

// parseAnswer interprets one line of input. The second return is false when
// the input is not a recognizable answer.
func parseAnswer(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Defaults answers every question with its default. It backs --no-interaction.
type Defaults struct{}

// Confirm returns q.Default.
func (Defaults) Confirm(q Question) (bool, error) {
	return q.Default, nil
}

// Preset answers yes to questions whose key is in the preset and hands every
// other question to Next.
type Preset struct {
	yes  map[string]bool
	Next Confirmer
}

// NewPreset creates a Preset answering yes for the given keys.
func NewPreset(next Confirmer, keys ...string) *Preset {
	p := &Preset{yes: make(map[string]bool, len(keys)), Next: next}
	for _, k := range keys {
		p.yes[k] = true
	}
	return p
}

// Confirm returns true for preset keys and delegates the rest.
func (p *Preset) Confirm(q Question) (bool, error) {
	if p.yes[q.Key] {
		return true, nil
	}
	if p.Next == nil {
		return q.Default, nil
	}
	return p.Next.Confirm(q)
}

// Recorder wraps a Confirmer and remembers every question and answer, in
// order. The CLI uses it to log the session.
type Recorder struct {
	Inner   Confirmer
	Answers []Answer
}

// Answer is one recorded question/answer pair.
type Answer struct {
	Key    string
	Answer bool
}

// Confirm forwards to Inner and records the result.
func (r *Recorder) Confirm(q Question) (bool, error) {
	ok, err := r.Inner.Confirm(q)
	if err != nil {
		return false, err
	}
	r.Answers = append(r.Answers, Answer{Key: q.Key, Answer: ok})
	return ok, nil
}
