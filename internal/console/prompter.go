// internal/console/prompter.go
//
// Line-oriented input for the terminal game.
// Responsibilities:
//   - Read whitespace-delimited guess tokens and validate them against the game range.
//   - Recover from bad input locally: drop the rest of the line, print an error, re-prompt.
//   - Read yes/no answers for the play-again question.
//
// Notes:
//   - Tokens left on a line after a valid guess feed the next prompt.
//   - End of input surfaces as io.EOF so the session can finish cleanly.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/jackb1434/GuessingGame/internal/game"
)

const (
	GuessPrompt    = "Enter your guess: "
	InvalidMessage = "Invalid input! Please enter a number between 1 and 100."
	AgainPrompt    = "Do you want to play again? (y/n): "
)

var ErrTooManyInvalid = errors.New("too many invalid guesses")

// Prompter reads player input from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// MaxRetries caps consecutive invalid guesses; 0 means unbounded.
	MaxRetries int

	midLine bool // last token read did not consume its line's newline
}

// NewPrompter wraps in for token reads.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadGuess prompts until a token parses as an integer within the game range.
func (p *Prompter) ReadGuess() (int, error) {
	for invalid := 0; ; {
		fmt.Fprint(p.out, GuessPrompt)
		tok, err := p.readToken()
		if err != nil {
			return 0, fmt.Errorf("read guess: %w", err)
		}

		if n, perr := strconv.Atoi(tok); perr == nil && game.InRange(n) {
			return n, nil
		}

		log.Debug().Str("input", tok).Msg("invalid guess")
		if err := p.discardLine(); err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("discard input: %w", err)
		}
		fmt.Fprintln(p.out, InvalidMessage)

		invalid++
		if p.MaxRetries > 0 && invalid >= p.MaxRetries {
			return 0, fmt.Errorf("read guess: %w (%d)", ErrTooManyInvalid, invalid)
		}
	}
}

// ReadAnswer asks whether to play again.
// Only a line starting with 'y' or 'Y' counts as yes; empty input and EOF are no.
func (p *Prompter) ReadAnswer() (bool, error) {
	fmt.Fprint(p.out, AgainPrompt)

	line, err := p.answerLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	return line != "" && (line[0] == 'y' || line[0] == 'Y'), nil
}

// answerLine returns the rest of a partially consumed line if it has content,
// otherwise the next full line.
func (p *Prompter) answerLine() (string, error) {
	if p.midLine {
		p.midLine = false
		rest, err := p.in.ReadString('\n')
		if strings.TrimSpace(rest) != "" || err != nil {
			return rest, err
		}
	}
	return p.in.ReadString('\n')
}

// readToken skips leading whitespace (newlines included) and returns the next
// run of non-space runes. The delimiter is left unread.
func (p *Prompter) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			if b.Len() > 0 && errors.Is(err, io.EOF) {
				p.midLine = false
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			_ = p.in.UnreadRune()
			p.midLine = true
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// discardLine drops everything up to and including the next newline.
func (p *Prompter) discardLine() error {
	p.midLine = false
	_, err := p.in.ReadString('\n')
	return err
}
