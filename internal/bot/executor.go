package bot

import (
	"context"
	"errors"
	"mangatrade/internal/trading"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/serrors"

	"go.uber.org/zap"
)

const (
	// DefaultDisplayLimit is the number of titles shown by list and search replies.
	DefaultDisplayLimit = 50
	// DefaultDuplicatesDisplayLimit is the number of lines per duplicates section.
	DefaultDuplicatesDisplayLimit = 30
)

// Limits bounds the size of the replies.
type Limits struct {
	Display           int
	DuplicatesDisplay int
}

func (l Limits) withDefaults() Limits {
	if l.Display <= 0 {
		l.Display = DefaultDisplayLimit
	}
	if l.DuplicatesDisplay <= 0 {
		l.DuplicatesDisplay = DefaultDuplicatesDisplayLimit
	}

	return l
}

// ErrUnsupported is returned by Execute for commands handled by the transport, like sync.
var ErrUnsupported = errors.New("command is not executed by the executor")

// Executor runs parsed commands against the trading service and renders the reply.
type Executor struct {
	trading trading.Service
	limits  Limits
}

// NewExecutor creates an Executor; zero limits fall back to the defaults.
func NewExecutor(svc trading.Service, limits Limits) *Executor {
	return &Executor{trading: svc, limits: limits.withDefaults()}
}

// Execute runs cmd on behalf of owner and returns the reply text.
func (e *Executor) Execute(ctx context.Context, owner domain.OwnerID, cmd Command) (string, error) {
	ctx = logger.WithFields(ctx, zap.String("owner_id", owner.String()), zap.String("command", cmd.Name()))
	logger.Debug(ctx, "executing command")

	switch cmd.Action {
	case ActionAdd:
		if err := e.trading.Add(ctx, owner, cmd.Kind, cmd.Text); err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderAdded(cmd.Kind, cmd.Text), nil
	case ActionRemove:
		n, err := e.trading.Remove(ctx, owner, cmd.Kind, cmd.Text)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderRemoved(cmd.Kind, cmd.Text, n), nil
	case ActionList:
		titles, err := e.trading.List(ctx, owner, cmd.Kind)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderList(cmd.Kind, titles, e.limits.Display), nil
	case ActionClear:
		n, err := e.trading.Clear(ctx, owner, cmd.Kind)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderCleared(cmd.Kind, n), nil
	case ActionSearch:
		hits, err := e.trading.Search(ctx, owner, cmd.Kind, cmd.Text)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderSearch(cmd.Kind, cmd.Text, hits, e.limits.Display), nil
	case ActionMatches:
		m, err := e.trading.FindMatches(ctx, owner)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderMatches(m), nil
	case ActionDuplicates:
		d, err := e.trading.FindDuplicates(ctx, owner)
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return renderDuplicates(d, e.limits.DuplicatesDisplay), nil
	case ActionSync:
		return "", ErrUnsupported
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown action %q", cmd.Action)
	}
}

// ErrorText turns an error into the reply shown to the member.
func ErrorText(err error) string {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return "⚠️ Ungültige Eingabe."
	case serrors.ErrTimeout, serrors.ErrUnavailable:
		return "⏳ Der Dienst ist gerade nicht erreichbar. Bitte versuche es später erneut."
	default:
		return "❌ Da ist etwas schiefgelaufen. Bitte versuche es später erneut."
	}
}
