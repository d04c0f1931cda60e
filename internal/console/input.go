package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/board"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var coordinatesPattern = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*$`)

// ParseCoordinates reads "x,y" where both parts are non-negative integers.
func ParseCoordinates(text string) (int, int, error) {
	groups := coordinatesPattern.FindStringSubmatch(text)
	if groups == nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)
	}

	x, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	y, err := strconv.Atoi(groups[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return x, y, nil
}

type Console struct {
	logger *slog.Logger
	lines  chan line
	out    io.Writer
}

type line struct {
	text string
	err  error
}

// New starts reading in line by line. Reads happen on a separate goroutine so
// that prompts can be abandoned when ctx is canceled.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	c := &Console{
		logger: logger.With("component", "console"),
		lines:  make(chan line),
		out:    out,
	}

	go c.scan(in)

	return c
}

func (that *Console) scan(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- line{text: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- line{err: err}
	}
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return l.text, nil
	}
}

// ReadMove prompts player until they enter coordinates of an open spot on b.
func (that *Console) ReadMove(ctx context.Context, b *board.Board, player *entity.Player) (int, int, error) {
	log := that.logger.With("method", "ReadMove", "player", player.ID)

	for {
		that.Printf("%s, enter your move as x,y: ", player)

		text, err := that.readLine(ctx)
		if err != nil {
			return 0, 0, err
		}

		x, y, err := ParseCoordinates(text)
		if err != nil {
			log.Debug("malformed move", "input", text)
			that.Printf("Please enter two numbers separated by a comma, for example 0,2.\n")
			continue
		}

		if !b.OpenSpot(x, y) {
			log.Debug("move to a closed spot", "x", x, "y", y)
			that.Printf("(%d,%d) is not an open spot, try again.\n", x, y)
			continue
		}

		return x, y, nil
	}
}

// ReadName asks for a player name and returns fallback for a blank answer.
func (that *Console) ReadName(ctx context.Context, prompt, fallback string) (string, error) {
	that.Printf("%s [%s]: ", prompt, fallback)

	text, err := that.readLine(ctx)
	if err != nil {
		return "", err
	}

	if name := strings.TrimSpace(text); name != "" {
		return name, nil
	}

	return fallback, nil
}

// Confirm asks a yes/no question until it gets an answer.
func (that *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		that.Printf("%s (y/n): ", prompt)

		text, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (that *Console) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
