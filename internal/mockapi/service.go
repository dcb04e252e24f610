// Package mockapi simulates the backend the screens talk to. Every call
// succeeds after a fixed delay; nothing is persisted.
package mockapi

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoginResultMsg is delivered when a simulated sign-in completes.
type LoginResultMsg struct {
	Ref   string
	Email string
}

// PasswordResetMsg is delivered when a simulated reset email has been "sent".
type PasswordResetMsg struct {
	Ref   string
	Email string
}

// SignupResultMsg is delivered when a simulated account has been "created".
type SignupResultMsg struct {
	Ref   string
	Name  string
	Email string
}

// Service is the simulated backend.
type Service struct {
	LoginDelay  time.Duration
	ResetDelay  time.Duration
	SignupDelay time.Duration
	Log         *slog.Logger

	registered []string
}

// New creates a Service knowing the given registered emails.
func New(registered []string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		Log:        log,
		registered: slices.Clone(registered),
	}
}

// RegisteredEmails returns the accounts offered for quick sign-in.
func (s *Service) RegisteredEmails() []string {
	return slices.Clone(s.registered)
}

// IsRegistered reports whether email belongs to a known account.
func (s *Service) IsRegistered(email string) bool {
	return slices.ContainsFunc(s.registered, func(r string) bool {
		return strings.EqualFold(r, strings.TrimSpace(email))
	})
}

// Login signs in after LoginDelay. ref lets the caller discard stale replies.
func (s *Service) Login(ref, email, password string) tea.Cmd {
	s.Log.Debug("mock login started", "ref", ref, "email", email)
	return tea.Tick(s.LoginDelay, func(time.Time) tea.Msg {
		return LoginResultMsg{Ref: ref, Email: email}
	})
}

// ResetPassword "sends" a reset email after ResetDelay.
func (s *Service) ResetPassword(ref, email string) tea.Cmd {
	s.Log.Debug("mock password reset started", "ref", ref, "email", email)
	return tea.Tick(s.ResetDelay, func(time.Time) tea.Msg {
		return PasswordResetMsg{Ref: ref, Email: email}
	})
}

// Signup "creates" an account after SignupDelay. The account is remembered
// for quick sign-in until the process exits.
func (s *Service) Signup(ref, name, email, password string) tea.Cmd {
	s.Log.Debug("mock signup started", "ref", ref, "email", email)
	if !s.IsRegistered(email) {
		s.registered = append(s.registered, strings.TrimSpace(email))
	}
	return tea.Tick(s.SignupDelay, func(time.Time) tea.Msg {
		return SignupResultMsg{Ref: ref, Name: name, Email: email}
	})
}
