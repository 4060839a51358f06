package dto

// CurrentLocationRequest entrada para fijar la sede actual.
type CurrentLocationRequest struct {
	LocationID string `json:"location_id" validate:"required"`
}

// FlagRequest entrada para escribir un flag de la aplicación.
type FlagRequest struct {
	Value bool `json:"value"`
}

// ThemeRequest entrada para fijar el tema.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// SettingsResponse preferencias actuales de la aplicación.
type SettingsResponse struct {
	CurrentLocation    string `json:"current_location"`
	Theme              string `json:"theme"`
	OnboardingComplete bool   `json:"onboarding_complete"`
	SetupComplete      bool   `json:"setup_complete"`
}
