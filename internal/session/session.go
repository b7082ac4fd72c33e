package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"algaid/internal/catalog"
	"algaid/internal/logging"
	"algaid/internal/matcher"
)

var (
	// ErrSessionClosed indicates the session already reached a verdict.
	ErrSessionClosed = errors.New("session already scored")
	// ErrUnknownAttribute indicates an attribute key outside the recognized set.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// Session collects observed attributes and scores them once.
type Session struct {
	id        string
	lifecycle *lifecycle
	catalog   *catalog.Catalog
	matcher   *matcher.Matcher
	logger    *slog.Logger

	observed matcher.Attributes
	scored   matcher.Attributes
	result   matcher.Result
	scores   []matcher.Score
}

// New starts a session against c. A nil matcher uses the default threshold.
func New(c *catalog.Catalog, m *matcher.Matcher, logger *slog.Logger) (*Session, error) {
	id := uuid.NewString()
	lc, err := newLifecycle(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = matcher.New(logger, matcher.DefaultThresholdPercent)
	}
	s := &Session{
		id:        id,
		lifecycle: lc,
		catalog:   c,
		matcher:   m,
		logger:    logging.WithSessionID(logging.NewComponentLogger(logger, "session"), id),
		observed:  make(matcher.Attributes, len(catalog.Attributes())),
	}
	s.logger.Debug("session started", logging.Int("catalog_size", c.Len()))
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() string { return s.lifecycle.current() }

// Set records the observed value for attr. Supplying the last missing
// attribute triggers scoring.
func (s *Session) Set(attr catalog.Attribute, value string) error {
	if s.lifecycle.current() != StateCollecting {
		return ErrSessionClosed
	}
	canon, ok := catalog.ParseAttribute(string(attr))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	s.observed[canon] = value
	s.logger.Debug("attribute recorded",
		logging.String(logging.FieldAttribute, string(canon)),
		logging.String("value", value),
	)
	if s.observed.Complete() {
		return s.score(eventComplete)
	}
	return nil
}

// Score scores the attributes collected so far. A finished session returns
// its existing result along with ErrSessionClosed.
func (s *Session) Score() (matcher.Result, error) {
	if s.lifecycle.terminal() {
		return s.result, ErrSessionClosed
	}
	if err := s.score(eventScore); err != nil {
		return matcher.Unidentified(), err
	}
	return s.result, nil
}

// Result returns the verdict once the session has finished.
func (s *Session) Result() (matcher.Result, bool) {
	if !s.lifecycle.terminal() {
		return matcher.Result{}, false
	}
	return s.result, true
}

// Scores returns the per-species breakdown behind the result.
func (s *Session) Scores() []matcher.Score {
	out := make([]matcher.Score, len(s.scores))
	copy(out, s.scores)
	return out
}

// Observed returns a copy of the attributes collected so far.
func (s *Session) Observed() matcher.Attributes {
	return s.observed.Clone()
}

// Missing lists attributes not yet supplied, in canonical order.
func (s *Session) Missing() []catalog.Attribute {
	var missing []catalog.Attribute
	for _, attr := range catalog.Attributes() {
		if _, ok := s.observed[attr]; !ok {
			missing = append(missing, attr)
		}
	}
	return missing
}

func (s *Session) score(trigger string) error {
	if err := s.lifecycle.fire(trigger); err != nil {
		return err
	}
	s.scored = s.observed.Clone()
	s.logger.Debug("scoring started",
		logging.String("trigger", trigger),
		logging.Int("attributes", len(s.scored)),
	)

	s.result, s.scores = s.matcher.Identify(s.scored, s.catalog)

	verdict := eventNoMatch
	if s.result.IsIdentified() {
		verdict = eventMatch
	}
	return s.lifecycle.fire(verdict)
}
