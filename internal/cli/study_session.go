// Package cli implements the interactive terminal clients: the study session
// loop, the review calendar view, and the statistics report.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/tangolearn/tango/internal/session"
	"github.com/tangolearn/tango/internal/srs"
)

var errEnd = errors.New("end")

// StudySessionCLI runs the interactive flashcard session in the terminal.
type StudySessionCLI struct {
	controller   *session.Controller
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

// NewStudySessionCLI creates a study session CLI over a started controller.
func NewStudySessionCLI(controller *session.Controller) *StudySessionCLI {
	return &StudySessionCLI{
		controller:   controller,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run drives Session until the queue is exhausted, the learner quits, or an
// interrupt arrives.
func (cli *StudySessionCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session shows one card, reads the answer, and applies it.
func (cli *StudySessionCLI) Session(ctx context.Context) error {
	card := cli.controller.Current()
	if card == nil {
		cli.printSummary()
		return errEnd
	}

	cli.printHeader()
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s\n", card.Word)
	fmt.Fprint(cli.stdoutWriter, "Press Enter to reveal the meaning (q to quit): ")

	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if isQuit(line) {
		cli.printSummary()
		return errEnd
	}

	_, _ = cli.italic.Fprintf(cli.stdoutWriter, "%s\n", card.Meaning)

	answer, quit, err := cli.readAnswer()
	if err != nil {
		return err
	}
	if quit {
		cli.printSummary()
		return errEnd
	}

	feedback, err := cli.controller.Answer(ctx, answer)
	if err != nil {
		return fmt.Errorf("controller.Answer(%s) > %w", answer, err)
	}
	if feedback != nil {
		cli.printFeedback(feedback)
	}
	if err := cli.controller.Advance(ctx); err != nil {
		return fmt.Errorf("controller.Advance() > %w", err)
	}
	return nil
}

func (cli *StudySessionCLI) readAnswer() (srs.Answer, bool, error) {
	for {
		fmt.Fprint(cli.stdoutWriter, "1) again  2) good  3) easy (q to quit): ")
		line, err := cli.stdinReader.ReadString('\n')
		if err != nil {
			return "", false, fmt.Errorf("error reading input: %w", err)
		}
		if isQuit(line) {
			return "", true, nil
		}
		answer, ok := ParseAnswer(line)
		if ok {
			return answer, false, nil
		}
		fmt.Fprintln(cli.stdoutWriter, "Please answer 1, 2 or 3.")
	}
}

func (cli *StudySessionCLI) printHeader() {
	counts := cli.controller.Counts()
	fmt.Fprintf(cli.stdoutWriter, "\nNew: %d  Learning: %d  Review: %d  (%d left)\n",
		counts.New, counts.Learning, counts.Review, cli.controller.Remaining())
}

func (cli *StudySessionCLI) printFeedback(feedback *session.Feedback) {
	if feedback.Correct {
		_, _ = cli.green.Fprint(cli.stdoutWriter, "Correct!")
	} else {
		_, _ = cli.red.Fprint(cli.stdoutWriter, "Again soon.")
	}
	fmt.Fprintf(cli.stdoutWriter, " Next review: %s", feedback.NextReviewLabel)
	if feedback.Requeued {
		fmt.Fprint(cli.stdoutWriter, " (stays in today's queue)")
	}
	fmt.Fprintln(cli.stdoutWriter)
}

func (cli *StudySessionCLI) printSummary() {
	stats := cli.controller.Stats()
	fmt.Fprintf(cli.stdoutWriter, "\nSession finished: %d cards reviewed, %d correct.\n",
		stats.CardsReviewed, stats.CorrectAnswers)
}

// ParseAnswer maps the learner's keystroke to an answer. Digits follow the
// prompt; the answer names are accepted as well.
func ParseAnswer(input string) (srs.Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "again", "incorrect":
		return srs.AnswerIncorrect, true
	case "2", "good", "correct":
		return srs.AnswerCorrect, true
	case "3", "easy":
		return srs.AnswerEasy, true
	}
	return "", false
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
