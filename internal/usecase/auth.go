package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"sync"

	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/pkg/password"

	"github.com/google/uuid"
)

var ErrInvalidAdminCredentials = errs.Mark(errs.New("Invalid admin credentials"), errs.ErrUnauthenticated)

// AdminGate checks the single configured admin account and tracks admin
// sessions in memory. Sessions never expire and are lost on restart.
type AdminGate interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, sessionID string)
	IsActive(sessionID string) bool
}

type adminGateImpl struct {
	username     string
	passwordHash string
	logger       *slog.Logger

	mu       sync.RWMutex
	sessions map[string]struct{}
}

// NewAdminGate hashes the configured password once; the plain value is not
// kept.
func NewAdminGate(username, plainPassword string, cost int, logger *slog.Logger) (AdminGate, error) {
	hash, err := password.HashWithCost(plainPassword, cost)
	if err != nil {
		return nil, errs.Wrap(err, "hash admin password")
	}
	return &adminGateImpl{
		username:     username,
		passwordHash: hash,
		logger:       logger,
		sessions:     make(map[string]struct{}),
	}, nil
}

func (g *adminGateImpl) Login(_ context.Context, username, pass string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passErr := password.Compare(g.passwordHash, pass)
	if !userOK || passErr != nil {
		g.logger.Warn("Admin login rejected")
		return "", ErrInvalidAdminCredentials
	}

	id := uuid.NewString()
	g.mu.Lock()
	g.sessions[id] = struct{}{}
	g.mu.Unlock()

	g.logger.Info("Admin signed in")
	return id, nil
}

func (g *adminGateImpl) Logout(_ context.Context, sessionID string) {
	g.mu.Lock()
	delete(g.sessions, sessionID)
	g.mu.Unlock()
}

func (g *adminGateImpl) IsActive(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.sessions[sessionID]
	return ok
}
