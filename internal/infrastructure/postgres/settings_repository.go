package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// Claves fijas de la tabla settings.
const (
	settingCurrentLocation = "currentLocation"
	settingTheme           = "theme"
)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL:
// tabla key/value, una fila por preferencia.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de preferencias.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// CurrentLocation devuelve el selector de sede actual ("" si no está fijado).
func (r *SettingsRepo) CurrentLocation() (string, error) {
	return r.get(settingCurrentLocation)
}

// SetCurrentLocation reemplaza el selector. No valida que el id exista.
func (r *SettingsRepo) SetCurrentLocation(locationID string) error {
	return r.set(settingCurrentLocation, locationID)
}

// Flag lee un flag booleano (false si no existe o no parsea).
func (r *SettingsRepo) Flag(key string) (bool, error) {
	raw, err := r.get(key)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return v, nil
}

// SetFlag escribe un flag booleano bajo su propia clave.
func (r *SettingsRepo) SetFlag(key string, value bool) error {
	return r.set(key, strconv.FormatBool(value))
}

// Theme lee la preferencia de tema ("" si no hay).
func (r *SettingsRepo) Theme() (string, error) {
	return r.get(settingTheme)
}

// SetTheme escribe la preferencia de tema.
func (r *SettingsRepo) SetTheme(theme string) error {
	return r.set(settingTheme, theme)
}

func (r *SettingsRepo) get(key string) (string, error) {
	var value string
	err := r.q.QueryRow(context.Background(), `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (r *SettingsRepo) set(key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
