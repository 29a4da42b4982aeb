package starrating

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/domain"
)

// Runner drives a Widget from line-oriented commands using provided IO.
// This allows for scripted sessions, piped input and easy testing.
//
//	move <star> [fraction]   pointer over star (1-based), fraction in [0,1], default 1
//	leave                    pointer leaves the row
//	click <star> [fraction]  click on star
//	show                     print the row
//	help                     list commands
//	quit | exit              stop
//
// Blank lines and lines starting with # are ignored.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool // no prompt and no greeting
	Format   FrameFormatter
}

// FrameFormatter turns a frame into the text line printed after each command.
type FrameFormatter func(domain.Frame) string

// ErrUnknownCommand is reported (not returned) for unrecognized input lines.
var ErrUnknownCommand = errors.New("unknown command")

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command loop until quit, EOF or ctx cancellation.
// Malformed commands are reported on Output and do not stop the loop.
func (r *Runner) Run(ctx context.Context, w *Widget) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	format := r.Format
	if format == nil {
		format = func(f domain.Frame) string { return tui.Line(f, termenv.Ascii) }
	}

	scanner := bufio.NewScanner(r.Input)
	if !r.Headless {
		fmt.Fprintln(r.Output, "--- starrating (type 'help' for commands) ---")
		fmt.Fprintln(r.Output, format(w.Frame()))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
			return nil // Graceful exit on EOF
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, err := r.exec(w, line, format)
		if err != nil {
			fmt.Fprintf(r.Output, "error: %v\n", err)
			continue
		}
		if quit {
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		}
	}
}

func (r *Runner) exec(w *Widget, line string, format FrameFormatter) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(r.Output, "commands: move <star> [fraction] | leave | click <star> [fraction] | show | quit")
		return false, nil
	case "show":
		// handled below
	case "leave":
		w.OnPointerLeave()
	case "move", "click":
		sample, err := ParseSample(args)
		if err != nil {
			return false, fmt.Errorf("%s: %w", cmd, err)
		}
		if cmd == "move" {
			w.OnPointerMove(sample)
			break
		}

		before := w.CommittedRating()
		w.OnClick(sample)
		if !w.Config().ReadOnly {
			after := w.CommittedRating()
			if after == 0 && before != 0 {
				fmt.Fprintf(r.Output, "cleared (was %s)\n", tui.FormatRating(before))
			} else {
				fmt.Fprintf(r.Output, "rated %s\n", tui.FormatRating(after))
			}
		}
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	fmt.Fprintln(r.Output, format(w.Frame()))
	return false, nil
}

// ParseSample parses "<star> [fraction]" with a 1-based star number.
// The fraction defaults to 1 (right edge of the star).
func ParseSample(args []string) (domain.PointerSample, error) {
	if len(args) == 0 || len(args) > 2 {
		return domain.PointerSample{}, fmt.Errorf("expected <star> [fraction]")
	}
	star, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.PointerSample{}, fmt.Errorf("invalid star %q", args[0])
	}

	fraction := 1.0
	if len(args) == 2 {
		fraction, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return domain.PointerSample{}, fmt.Errorf("invalid fraction %q", args[1])
		}
	}
	return domain.At(star-1, fraction), nil
}
