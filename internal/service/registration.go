package service

import (
	"context"
	"strings"

	"github.com/questguild/quests-tracker/internal/domain"
	"github.com/questguild/quests-tracker/internal/hashing"
	"github.com/questguild/quests-tracker/internal/store"
)

// Registration creates adventurer and guild commander identities. The
// credential secret goes through the hashing collaborator before it
// reaches a store; username uniqueness is the store's constraint.
type Registration interface {
	RegisterAdventurer(ctx context.Context, input domain.RegisterInput) (int32, error)
	RegisterGuildCommander(ctx context.Context, input domain.RegisterInput) (int32, error)
}

type registration struct {
	store  store.Store
	hasher hashing.PasswordHasher
}

// NewRegistration creates the registration service.
func NewRegistration(s store.Store, hasher hashing.PasswordHasher) Registration {
	return &registration{store: s, hasher: hasher}
}

func (r *registration) RegisterAdventurer(ctx context.Context, input domain.RegisterInput) (int32, error) {
	hashed, err := r.prepare(&input)
	if err != nil {
		return 0, err
	}
	input.Password = hashed
	return r.store.InsertAdventurer(ctx, input)
}

func (r *registration) RegisterGuildCommander(ctx context.Context, input domain.RegisterInput) (int32, error) {
	hashed, err := r.prepare(&input)
	if err != nil {
		return 0, err
	}
	input.Password = hashed
	return r.store.InsertGuildCommander(ctx, input)
}

// prepare validates the credentials and returns the hashed secret.
func (r *registration) prepare(input *domain.RegisterInput) (string, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return "", domain.ErrEmptyUsername
	}
	if input.Password == "" {
		return "", domain.ErrEmptyPassword
	}
	return r.hasher.Hash(input.Password)
}
