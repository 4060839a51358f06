package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// Flags conocidos de la aplicación.
const (
	FlagOnboardingComplete = "onboarding_complete"
	FlagSetupComplete      = "setup_complete"
)

// SettingsUseCase casos de uso para la sede actual y las preferencias.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el estado actual de todas las preferencias.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	current, err := uc.repo.CurrentLocation()
	if err != nil {
		return nil, err
	}
	theme, err := uc.repo.Theme()
	if err != nil {
		return nil, err
	}
	onboarding, err := uc.repo.Flag(FlagOnboardingComplete)
	if err != nil {
		return nil, err
	}
	setup, err := uc.repo.Flag(FlagSetupComplete)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CurrentLocation:    current,
		Theme:              theme,
		OnboardingComplete: onboarding,
		SetupComplete:      setup,
	}, nil
}

// SetCurrentLocation fija el selector de sede actual. No valida que el id
// exista (comportamiento del store: responsabilidad del caller).
func (uc *SettingsUseCase) SetCurrentLocation(in dto.CurrentLocationRequest) error {
	if in.LocationID == "" {
		return domain.Validation("location_id", "la sede es obligatoria")
	}
	return uc.repo.SetCurrentLocation(in.LocationID)
}

// SetFlag escribe un flag conocido de la aplicación.
func (uc *SettingsUseCase) SetFlag(key string, in dto.FlagRequest) error {
	if key != FlagOnboardingComplete && key != FlagSetupComplete {
		return domain.Validation("flag", "flag desconocido")
	}
	return uc.repo.SetFlag(key, in.Value)
}

// SetTheme fija la preferencia de tema.
func (uc *SettingsUseCase) SetTheme(in dto.ThemeRequest) error {
	if in.Theme == "" {
		return domain.Validation("theme", "el tema es obligatorio")
	}
	return uc.repo.SetTheme(in.Theme)
}
