// ABOUTME: Action dispatcher that plans, parses and routes one user request per turn
// ABOUTME: Owns the single-slot result store used by "save previous response"
package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/research/internal/logging"
	"github.com/harper/research/internal/models"
)

// InputPrompt is shown before every interactive turn
const InputPrompt = "What do you want to research or do? (type 'exit' to quit): "

// ExitCommand ends the interactive loop
const ExitCommand = "exit"

// Completer is the LLM collaborator
type Completer interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}

// Searcher is the search collaborator
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Saver is the save collaborator
type Saver interface {
	Save(ctx context.Context, text string) (string, error)
}

// Dispatcher runs turns against its collaborators. Turns are serialised, so a
// single Dispatcher can back both the interactive loop and the MCP server.
type Dispatcher struct {
	llm      Completer
	searcher Searcher
	saver    Saver
	parser   Parser
	logger   *log.Logger
	styles   Styles

	mu           sync.Mutex
	lastResponse string
	hasLast      bool
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the diagnostic logger
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithParser replaces the default strict parser
func WithParser(p Parser) Option {
	return func(d *Dispatcher) { d.parser = p }
}

// WithStyles sets the styles used by Run for section headers
func WithStyles(s Styles) Option {
	return func(d *Dispatcher) { d.styles = s }
}

// NewDispatcher creates a dispatcher with an empty result store
func NewDispatcher(llm Completer, searcher Searcher, saver Saver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		llm:      llm,
		searcher: searcher,
		saver:    saver,
		logger:   logging.Discard(),
		styles:   PlainStyles(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// LastResponse returns the most recent answer, if any
func (d *Dispatcher) LastResponse() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastResponse, d.hasLast
}

// Turn handles one request end to end without printing anything.
// The returned Turn is never nil and carries whatever was produced before a failure.
func (d *Dispatcher) Turn(ctx context.Context, request string) (*models.Turn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	turn := models.NewTurn(request)
	logger := d.logger.With("turn", turn.TurnID)

	start := time.Now()
	raw, err := d.llm.Complete(ctx, []models.Message{
		models.SystemMessage(PlannerPrompt),
		models.UserMessage(request),
	})
	if err != nil {
		return turn, &CollaboratorError{Collaborator: CollaboratorLLM, Err: err}
	}
	turn.RawPlan = raw
	logger.Debug("plan received", "elapsed", time.Since(start))

	plan, err := d.parser.Parse(raw)
	if err != nil {
		return turn, err
	}
	turn.Plan = plan

	if !plan.Action.Known() {
		return turn, &UnknownActionError{Action: string(plan.Action)}
	}
	if !plan.HasInput {
		return turn, &ParseError{Reason: ErrMissingInput}
	}
	logger.Debug("dispatching", "action", plan.Action, "input", plan.Input)

	switch plan.Action {
	case models.ActionSearch:
		err = d.runSearch(ctx, logger, turn)
	case models.ActionSave:
		err = d.runSave(ctx, logger, turn)
	}
	return turn, err
}

func (d *Dispatcher) runSearch(ctx context.Context, logger *log.Logger, turn *models.Turn) error {
	start := time.Now()
	results, err := d.searcher.Search(ctx, turn.Plan.Input)
	if err != nil {
		return &CollaboratorError{Collaborator: CollaboratorSearch, Err: err}
	}
	logger.Debug("search finished", "elapsed", time.Since(start), "chars", len(results))

	start = time.Now()
	answer, err := d.llm.Complete(ctx, []models.Message{
		models.SystemMessage(AnswerPrompt),
		models.UserMessage(results),
	})
	if err != nil {
		return &CollaboratorError{Collaborator: CollaboratorLLM, Err: err}
	}
	logger.Debug("answer received", "elapsed", time.Since(start))

	d.lastResponse = answer
	d.hasLast = true
	turn.Answer = answer
	return nil
}

func (d *Dispatcher) runSave(ctx context.Context, logger *log.Logger, turn *models.Turn) error {
	text := turn.Plan.Input
	if turn.Plan.RefersToPrevious() {
		if !d.hasLast {
			return ErrEmptyResultStore
		}
		text = d.lastResponse
	}

	confirmation, err := d.saver.Save(ctx, text)
	if err != nil {
		return &CollaboratorError{Collaborator: CollaboratorSave, Err: err}
	}
	logger.Debug("saved", "chars", len(text))

	turn.Confirmation = confirmation
	return nil
}

// Run reads one request per line from in until "exit" or end of input,
// printing plans, answers, confirmations and one-line errors to out.
// A failed turn never ends the loop.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "\n"+InputPrompt)
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("reading input: %w", readErr)
		}

		request := strings.TrimSpace(line)
		if strings.EqualFold(request, ExitCommand) {
			return nil
		}
		if request != "" {
			d.runInteractive(ctx, out, request)
		}

		if readErr != nil {
			fmt.Fprintln(out)
			return nil
		}
	}
}

func (d *Dispatcher) runInteractive(ctx context.Context, out io.Writer, request string) {
	turn, err := d.Turn(ctx, request)

	if turn.RawPlan != "" {
		fmt.Fprintf(out, "\n%s\n%s\n", d.styles.Header.Render("Tool Plan:"), turn.RawPlan)
	}
	if err != nil {
		d.logger.Warn("turn failed", "turn", turn.TurnID, "err", err)
		fmt.Fprintln(out, d.styles.Error.Render("Error: "+oneLine(err.Error())))
		return
	}

	switch {
	case turn.Answer != "" || turn.Plan.Action == models.ActionSearch:
		fmt.Fprintf(out, "\n%s\n%s\n", d.styles.Header.Render("Answer:"), turn.Answer)
	default:
		fmt.Fprintf(out, "\n%s\n%s\n", d.styles.Header.Render("Save Tool Output:"), turn.Confirmation)
	}
}

// oneLine folds a multi-line error message onto a single line
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
