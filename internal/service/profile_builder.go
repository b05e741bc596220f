package service

import (
	"fmt"
	"strings"
	"time"

	"astro-reading/internal/domain"
)

const (
	// Acepta mes y dia con o sin cero a la izquierda ("2024-3-21" y "2024-03-21").
	birthDateLayout = "2006-1-2"
	isoDateLayout   = "2006-01-02"
)

var vibes = []string{"lucky", "reflective", "productive", "social", "romantic", "adventurous"}

// Vibes devuelve el vocabulario fijo de vibes.
func Vibes() []string {
	return append([]string(nil), vibes...)
}

// BuildProfile arma el perfil a partir de los datos de nacimiento.
// No valida campos vacios: eso le toca a quien llama. La semilla usa los
// campos tal cual llegan, el nombre se recorta solo en el resultado.
func BuildProfile(name, date, timeOfBirth, place string) (domain.Profile, error) {
	d, err := time.Parse(birthDateLayout, date)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: birth date %q: %v", ErrInvalidInput, date, err)
	}

	sign, err := ResolveSign(int(d.Month()), d.Day())
	if err != nil {
		return domain.Profile{}, err
	}
	traits, err := LookupTraits(sign)
	if err != nil {
		return domain.Profile{}, err
	}

	rnd := newSeededRand(DeriveSeed(name, date, timeOfBirth, place))

	return domain.Profile{
		Name:      strings.TrimSpace(name),
		Sign:      sign,
		Element:   traits.Element,
		Strengths: traits.Strengths,
		Growth:    traits.Growth,
		Vibe:      pick(rnd, vibes),
	}, nil
}
