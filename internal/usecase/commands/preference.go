package commands

import (
	"context"

	"equipment-rental/internal/domain/user"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/queries"
)

type PreferenceCommands interface {
	SetDarkMode(ctx context.Context, who user.Identity, darkMode bool) (*queries.PreferenceView, error)
}

type preferenceCommandsImpl struct {
	repo PreferenceRepository
}

func NewPreferenceCommands(repo PreferenceRepository) PreferenceCommands {
	return &preferenceCommandsImpl{repo: repo}
}

func (uc *preferenceCommandsImpl) SetDarkMode(ctx context.Context, who user.Identity, darkMode bool) (*queries.PreferenceView, error) {
	if !who.IsSignedIn() {
		return nil, validation(user.ErrNotSignedIn)
	}
	prefs := user.NewPreferences(darkMode)
	if err := uc.repo.Save(ctx, who.Email().Value(), prefs); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return queries.ToPreferenceView(prefs), nil
}
