package repository

// SettingsRepository puerto para la sede actual y las preferencias de la
// aplicación (flags de onboarding/setup y tema), cada una bajo su propia
// clave de almacenamiento.
//
// SetCurrentLocation no valida que el id exista: un id inválido deja el
// selector apuntando a nada y es responsabilidad del caller.
type SettingsRepository interface {
	CurrentLocation() (string, error)
	SetCurrentLocation(locationID string) error
	Flag(key string) (bool, error)
	SetFlag(key string, value bool) error
	Theme() (string, error)
	SetTheme(theme string) error
}
