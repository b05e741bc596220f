package service

import (
	"fmt"

	"astro-reading/internal/domain"
)

var traitTable = map[domain.ZodiacSign]domain.Traits{
	domain.SignAries:       {Element: domain.ElementFire, Strengths: []string{"Bold", "Driven", "Candid"}, Growth: []string{"Patience", "Listening"}},
	domain.SignTaurus:      {Element: domain.ElementEarth, Strengths: []string{"Steady", "Loyal", "Practical"}, Growth: []string{"Flexibility", "Letting go"}},
	domain.SignGemini:      {Element: domain.ElementAir, Strengths: []string{"Curious", "Witty", "Adaptable"}, Growth: []string{"Focus", "Consistency"}},
	domain.SignCancer:      {Element: domain.ElementWater, Strengths: []string{"Nurturing", "Intuitive", "Protective"}, Growth: []string{"Boundaries", "Directness"}},
	domain.SignLeo:         {Element: domain.ElementFire, Strengths: []string{"Confident", "Warm", "Creative"}, Growth: []string{"Humility", "Delegation"}},
	domain.SignVirgo:       {Element: domain.ElementEarth, Strengths: []string{"Analytical", "Helpful", "Refined"}, Growth: []string{"Self-kindness", "Big-picture"}},
	domain.SignLibra:       {Element: domain.ElementAir, Strengths: []string{"Diplomatic", "Fair", "Charming"}, Growth: []string{"Decisiveness", "Follow-through"}},
	domain.SignScorpio:     {Element: domain.ElementWater, Strengths: []string{"Intense", "Loyal", "Transformative"}, Growth: []string{"Trust", "Lightness"}},
	domain.SignSagittarius: {Element: domain.ElementFire, Strengths: []string{"Optimistic", "Candid", "Adventurous"}, Growth: []string{"Detail care", "Commitment"}},
	domain.SignCapricorn:   {Element: domain.ElementEarth, Strengths: []string{"Ambitious", "Disciplined", "Patient"}, Growth: []string{"Playfulness", "Vulnerability"}},
	domain.SignAquarius:    {Element: domain.ElementAir, Strengths: []string{"Original", "Humanitarian", "Independent"}, Growth: []string{"Warmth", "Practicality"}},
	domain.SignPisces:      {Element: domain.ElementWater, Strengths: []string{"Empathic", "Imaginative", "Gentle"}, Growth: []string{"Boundaries", "Clarity"}},
}

// LookupTraits devuelve una copia de los rasgos del signo para que nadie mute la tabla.
func LookupTraits(sign domain.ZodiacSign) (domain.Traits, error) {
	t, ok := traitTable[sign]
	if !ok {
		return domain.Traits{}, fmt.Errorf("%w: %q", ErrTraitMissing, sign)
	}
	return domain.Traits{
		Element:   t.Element,
		Strengths: append([]string(nil), t.Strengths...),
		Growth:    append([]string(nil), t.Growth...),
	}, nil
}
