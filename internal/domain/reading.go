package domain

import "time"

// BirthDetails son los cuatro campos que entrega el usuario.
type BirthDetails struct {
	Name  string `json:"name"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
	Place string `json:"place"`
}

// Reading es la vista de una sesion: perfil guardado mas el outlook recalculado.
type Reading struct {
	SessionID string    `json:"session_id"`
	Profile   Profile   `json:"profile"`
	Outlook   Outlook   `json:"outlook"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Answer es la respuesta a una pregunta libre.
type Answer struct {
	SessionID  string `json:"session_id"`
	Question   string `json:"question"`
	Topic      Topic  `json:"topic"`
	Text       string `json:"text"`
	Disclaimer string `json:"disclaimer"`
}

// ReadingSession es lo que se persiste mientras dura la sesion.
type ReadingSession struct {
	ID        string    `json:"id"`
	Profile   Profile   `json:"profile"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
