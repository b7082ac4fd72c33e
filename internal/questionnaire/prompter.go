package questionnaire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"algaid/internal/logging"
	"algaid/internal/session"
)

// ErrNoInput indicates the input ended before a question was answered.
var ErrNoInput = errors.New("no input")

const (
	bannerRule    = "=================================================="
	bannerTitle   = "SISTEMA EXPERTO PARA IDENTIFICACIÓN DE ALGAS MARINAS"
	selectPrompt  = "Seleccione una opción (número): "
	msgOutOfRange = "Opción inválida. Intente nuevamente."
	msgNotANumber = "Ingrese un número válido."
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewPrompter builds a Prompter. A nil logger discards log output.
func NewPrompter(in io.Reader, out io.Writer, logger *slog.Logger) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logging.NewComponentLogger(logger, "questionnaire"),
	}
}

// Banner prints the program heading.
func (p *Prompter) Banner() {
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n", bannerRule, bannerTitle, bannerRule)
}

// Ask shows q and keeps asking until a valid answer arrives.
func (p *Prompter) Ask(q Question) (Option, error) {
	fmt.Fprintf(p.out, "\n%s\n", q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt.Label)
	}
	for {
		fmt.Fprint(p.out, selectPrompt)
		line, readErr := p.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return Option{}, fmt.Errorf("%s: read answer: %w", q.Attribute, readErr)
		}
		if readErr != nil && strings.TrimSpace(line) == "" {
			fmt.Fprintln(p.out)
			return Option{}, fmt.Errorf("%s: %w", q.Attribute, ErrNoInput)
		}

		opt, status := q.resolve(line)
		switch status {
		case answerOK:
			p.logger.Debug("answer accepted",
				logging.String(logging.FieldAttribute, string(q.Attribute)),
				logging.String("value", opt.Value),
			)
			return opt, nil
		case answerOutOfRange:
			fmt.Fprintln(p.out, msgOutOfRange)
		default:
			fmt.Fprintln(p.out, msgNotANumber)
		}
		if readErr != nil {
			return Option{}, fmt.Errorf("%s: %w", q.Attribute, ErrNoInput)
		}
	}
}

// Fill asks for every attribute the session is still missing, in menu
// order. The session scores itself once the last answer is recorded.
func (p *Prompter) Fill(s *session.Session) error {
	for _, attr := range s.Missing() {
		q, ok := QuestionFor(attr)
		if !ok {
			continue
		}
		opt, err := p.Ask(q)
		if err != nil {
			return err
		}
		if err := s.Set(q.Attribute, opt.Value); err != nil {
			return fmt.Errorf("record %s: %w", q.Attribute, err)
		}
	}
	return nil
}
