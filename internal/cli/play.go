package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/domain"
)

// Pointer is a keyboard-driven stand-in for a mouse over the row.
// Positions count half stars: 0 is outside the row and 2*N is the right half
// of the last star.
type Pointer struct {
	pos  int
	max  int
	step int
}

// NewPointer creates a Pointer outside the row. It moves in half-star steps
// when half ratings are enabled and in whole stars otherwise.
func NewPointer(cfg domain.Config) *Pointer {
	step := 2
	if cfg.HalfRating {
		step = 1
	}
	return &Pointer{max: 2 * cfg.StarsLength, step: step}
}

// Right moves one step to the right, entering the row if needed.
func (p *Pointer) Right() domain.PointerSample {
	p.pos = min(p.pos+p.step, p.max)
	return p.Sample()
}

// Left moves one step to the left. It reports false once the pointer is
// outside the row.
func (p *Pointer) Left() (domain.PointerSample, bool) {
	p.pos = max(p.pos-p.step, 0)
	return p.Sample(), p.Inside()
}

// Inside reports whether the pointer is over a star.
func (p *Pointer) Inside() bool {
	return p.pos > 0
}

// Reset moves the pointer outside the row.
func (p *Pointer) Reset() {
	p.pos = 0
}

// Sample returns the pointer sample for the current position.
// Odd positions sit on the left half of a star, even ones on the right half.
func (p *Pointer) Sample() domain.PointerSample {
	if p.pos == 0 {
		return domain.At(0, 0)
	}
	fraction := 0.75
	if p.pos%2 == 1 {
		fraction = 0.25
	}
	return domain.At((p.pos-1)/2, fraction)
}

// Position is the rating a click would aim at, in stars.
func (p *Pointer) Position() float64 {
	return float64(p.pos) / 2
}

type key int

const (
	keyNone key = iota
	keyLeft
	keyRight
	keyClick
	keyLeave
	keyQuit
)

// decodeKeys splits raw terminal input into keys.
func decodeKeys(b []byte) []key {
	var keys []key
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == 0x1b && i+2 < len(b) && b[i+1] == '[' {
			switch b[i+2] {
			case 'C':
				keys = append(keys, keyRight)
			case 'D':
				keys = append(keys, keyLeft)
			}
			i += 2
			continue
		}
		switch c {
		case 0x1b:
			keys = append(keys, keyLeave)
		case ' ', '\r', '\n':
			keys = append(keys, keyClick)
		case 'h':
			keys = append(keys, keyLeft)
		case 'l':
			keys = append(keys, keyRight)
		case 'q', 'Q', 0x03, 0x04: // Ctrl-C and Ctrl-D arrive as bytes in raw mode
			keys = append(keys, keyQuit)
		}
	}
	return keys
}

type player struct {
	w       *starrating.Widget
	ptr     *Pointer
	out     io.Writer
	profile termenv.Profile
}

func (p *player) handle(k key) bool {
	switch k {
	case keyRight:
		p.w.OnPointerMove(p.ptr.Right())
	case keyLeft:
		if sample, inside := p.ptr.Left(); inside {
			p.w.OnPointerMove(sample)
		} else {
			p.w.OnPointerLeave()
		}
	case keyClick:
		if p.ptr.Inside() {
			p.w.OnClick(p.ptr.Sample())
		}
	case keyLeave:
		p.ptr.Reset()
		p.w.OnPointerLeave()
	case keyQuit:
		return true
	}
	return false
}

func (p *player) paint() {
	status := "pointer outside"
	if p.ptr.Inside() {
		status = "pointer at " + tui.FormatRating(p.ptr.Position())
	}
	fmt.Fprintf(p.out, "\r%s2K%s  %s", termenv.CSI, tui.Line(p.w.Frame(), p.profile), status)
}

// Play drives w from the keyboard. When in is not a terminal it falls back to
// the line-oriented starrating.Runner.
func Play(ctx context.Context, w *starrating.Widget, in *os.File, out io.Writer, profile termenv.Profile) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		r := starrating.NewRunner()
		r.Input = in
		r.Output = out
		r.Headless = true
		r.Format = func(f domain.Frame) string { return tui.Line(f, profile) }
		return r.Run(ctx, w)
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, old)

	return playKeys(ctx, w, in, out, profile)
}

func playKeys(ctx context.Context, w *starrating.Widget, in io.Reader, out io.Writer, profile termenv.Profile) error {
	p := &player{w: w, ptr: NewPointer(w.Config()), out: out, profile: profile}

	fmt.Fprint(out, "←/→ move  space click  esc leave  q quit\r\n")
	p.paint()
	defer fmt.Fprint(out, "\r\n")

	buf := make([]byte, 16)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		n, err := in.Read(buf)
		for _, k := range decodeKeys(buf[:n]) {
			if p.handle(k) {
				return nil
			}
			p.paint()
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read keys: %w", err)
		}
	}
}
