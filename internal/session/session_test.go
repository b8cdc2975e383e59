package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jackb1434/GuessingGame/internal/console"
	"github.com/jackb1434/GuessingGame/internal/game"
	"github.com/jackb1434/GuessingGame/internal/phrases"
)

// countingClearer records how often the display was cleared.
type countingClearer struct{ n int }

func (c *countingClearer) Clear() { c.n++ }

// queueSource hands out raw IntN results in order, wrapping around.
type queueSource struct {
	vals []int
	i    int
}

func (q *queueSource) IntN(n int) int {
	v := q.vals[q.i%len(q.vals)] % n
	q.i++
	return v
}

func runSession(t *testing.T, input string, opts Options) (*Session, string, *countingClearer) {
	t.Helper()
	var out bytes.Buffer
	clr := &countingClearer{}
	opts.In = strings.NewReader(input)
	opts.Out = &out
	opts.Clearer = clr
	s := New(opts)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s, out.String(), clr
}

// TestRunFixedSecretTranscript plays secret 42 with guesses 10, 90, 42.
func TestRunFixedSecretTranscript(t *testing.T) {
	_, out, clr := runSession(t, "10\n90\n42\nn\n", Options{Source: game.FixedSecret{Secret: 42}})

	want := strings.Join([]string{
		"Welcome to the Number Guessing Game!",
		"Try to guess the number from 1 to 100.",
		console.GuessPrompt + "Too low! Try again.",
		console.GuessPrompt + "Too high! Try again.",
		console.GuessPrompt + "Congratulations! You guessed the correct number in 3 attempts.",
		console.AgainPrompt + "Thank you for playing!",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("transcript mismatch\n got: %q\nwant: %q", out, want)
	}
	if clr.n != 1 {
		t.Fatalf("clears = %d, want 1", clr.n)
	}
}

// TestRunFeedbackCountMatchesAttempts checks attempts-1 hints precede the success line.
func TestRunFeedbackCountMatchesAttempts(t *testing.T) {
	s, out, _ := runSession(t, "50\n25\n12\n6\n3\n\n", Options{Source: game.FixedSecret{Secret: 3}})

	hints := strings.Count(out, "Too high!") + strings.Count(out, "Too low!")
	rounds := s.History().All()
	if len(rounds) != 1 {
		t.Fatalf("rounds = %d, want 1", len(rounds))
	}
	if rounds[0].Attempts != 5 {
		t.Fatalf("attempts = %d, want 5", rounds[0].Attempts)
	}
	if hints != rounds[0].Attempts-1 {
		t.Fatalf("hints = %d, want %d", hints, rounds[0].Attempts-1)
	}
	last := strings.LastIndex(out, "Try again.")
	success := strings.Index(out, "You guessed the correct number in 5 attempts.")
	if success < last {
		t.Fatal("success line should follow every hint")
	}
}

// TestRunInvalidInputDoesNotCount ensures rejected tokens never become attempts.
func TestRunInvalidInputDoesNotCount(t *testing.T) {
	s, out, _ := runSession(t, "abc\n0\n101\n50\nn\n", Options{Source: game.FixedSecret{Secret: 50}})
	if n := strings.Count(out, console.InvalidMessage); n != 3 {
		t.Fatalf("invalid messages = %d, want 3", n)
	}
	if got := s.History().All()[0].Attempts; got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
	if !strings.Contains(out, "in 1 attempts.") {
		t.Fatalf("missing success line:\n%s", out)
	}
}

func TestRunPlayAgainAnswers(t *testing.T) {
	tcs := []struct {
		answer string
		rounds int
	}{
		{"y\n", 2},
		{"Y\n", 2},
		{"n\n", 1},
		{"\n", 1},
		{"x\n", 1},
		{"", 1},
	}
	for _, tc := range tcs {
		// Second round (if any) ends on its own answer of "n".
		input := "7\n" + tc.answer + "7\nn\n"
		s, out, clr := runSession(t, input, Options{Source: game.FixedSecret{Secret: 7}})
		if got := len(s.History().All()); got != tc.rounds {
			t.Fatalf("answer %q: rounds = %d, want %d", tc.answer, got, tc.rounds)
		}
		if got := strings.Count(out, "Welcome to the Number Guessing Game!"); got != tc.rounds {
			t.Fatalf("answer %q: banners = %d, want %d", tc.answer, got, tc.rounds)
		}
		if clr.n != tc.rounds {
			t.Fatalf("answer %q: clears = %d, want %d", tc.answer, clr.n, tc.rounds)
		}
		if !strings.HasSuffix(out, "Thank you for playing!\n") {
			t.Fatalf("answer %q: missing farewell", tc.answer)
		}
	}
}

// TestRunScoredAccumulates plays two scored rounds and checks points and totals.
func TestRunScoredAccumulates(t *testing.T) {
	// IntN(100) draws 41 then 9 → secrets 42 and 10; IntN(6) draws pick phrases 2 and 4.
	src := &queueSource{vals: []int{41, 2, 9, 4}}
	s, out, _ := runSession(t, "42\ny\n50\n20\n10\nn\n", Options{Source: src, Scored: true})

	all := phrases.All()
	for _, line := range []string{
		all[2] + " You guessed the correct number in 1 attempts.",
		"You won 250 points!",
		"Total score: 250",
		all[4] + " You guessed the correct number in 3 attempts.",
		"You won 83 points!",
		"Total score: 333",
		"Final Score: 333 points.\nThank you for playing!\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in transcript:\n%s", line, out)
		}
	}
	if s.Score() != 333 {
		t.Fatalf("score = %d, want 333", s.Score())
	}
	if sum := s.History().Summary(); sum.TotalPoints != 333 || sum.BestAttempts != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestRunUnscoredHasNoScoreLines(t *testing.T) {
	_, out, _ := runSession(t, "5\nn\n", Options{Source: game.FixedSecret{Secret: 5}})
	for _, frag := range []string{"points", "Total score", "Final Score"} {
		if strings.Contains(out, frag) {
			t.Fatalf("unscored transcript contains %q:\n%s", frag, out)
		}
	}
}

// TestRunEndOfInputMidRound finishes cleanly with the farewell.
func TestRunEndOfInputMidRound(t *testing.T) {
	s, out, clr := runSession(t, "10\n", Options{Source: game.FixedSecret{Secret: 42}, Scored: true})
	if len(s.History().All()) != 0 {
		t.Fatal("unfinished round should not be recorded")
	}
	if !strings.HasSuffix(out, "Final Score: 0 points.\nThank you for playing!\n") {
		t.Fatalf("unexpected ending:\n%s", out)
	}
	if clr.n != 0 {
		t.Fatalf("clears = %d, want 0", clr.n)
	}
}

func TestRunMaxRetriesReturnsError(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{
		In:         strings.NewReader("x\ny\nz\n"),
		Out:        &out,
		Source:     game.FixedSecret{Secret: 42},
		MaxRetries: 2,
	})
	err := s.Run()
	if !errors.Is(err, console.ErrTooManyInvalid) {
		t.Fatalf("Run error = %v, want %v", err, console.ErrTooManyInvalid)
	}
	if !strings.HasSuffix(out.String(), "Thank you for playing!\n") {
		t.Fatal("farewell should still be printed")
	}
}
