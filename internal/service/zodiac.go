package service

import (
	"errors"
	"fmt"

	"astro-reading/internal/domain"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrZodiacTableGap = errors.New("zodiac table does not cover date")
	ErrTraitMissing   = errors.New("trait table missing sign")
)

type monthDay struct {
	month int
	day   int
}

type zodiacRange struct {
	sign  domain.ZodiacSign
	start monthDay
	end   monthDay
}

// Capricornio va primero porque cruza el fin de año.
var zodiacRanges = []zodiacRange{
	{domain.SignCapricorn, monthDay{12, 22}, monthDay{1, 19}},
	{domain.SignAquarius, monthDay{1, 20}, monthDay{2, 18}},
	{domain.SignPisces, monthDay{2, 19}, monthDay{3, 20}},
	{domain.SignAries, monthDay{3, 21}, monthDay{4, 19}},
	{domain.SignTaurus, monthDay{4, 20}, monthDay{5, 20}},
	{domain.SignGemini, monthDay{5, 21}, monthDay{6, 20}},
	{domain.SignCancer, monthDay{6, 21}, monthDay{7, 22}},
	{domain.SignLeo, monthDay{7, 23}, monthDay{8, 22}},
	{domain.SignVirgo, monthDay{8, 23}, monthDay{9, 22}},
	{domain.SignLibra, monthDay{9, 23}, monthDay{10, 22}},
	{domain.SignScorpio, monthDay{10, 23}, monthDay{11, 21}},
	{domain.SignSagittarius, monthDay{11, 22}, monthDay{12, 21}},
}

// ZodiacSigns devuelve los 12 signos en el orden de la tabla de rangos.
func ZodiacSigns() []domain.ZodiacSign {
	out := make([]domain.ZodiacSign, 0, len(zodiacRanges))
	for _, r := range zodiacRanges {
		out = append(out, r.sign)
	}
	return out
}

// ResolveSign mapea mes/dia a su signo solar. No depende del año.
// Si ningun rango coincide devuelve el primer signo junto con ErrZodiacTableGap:
// eso solo puede pasar si alguien rompe la tabla.
func ResolveSign(month, day int) (domain.ZodiacSign, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: month %d day %d", ErrInvalidInput, month, day)
	}
	for _, r := range zodiacRanges {
		if (month == r.start.month && day >= r.start.day) || (month == r.end.month && day <= r.end.day) {
			return r.sign, nil
		}
	}
	return zodiacRanges[0].sign, fmt.Errorf("%w: month %d day %d", ErrZodiacTableGap, month, day)
}
