package health

import "time"

// NotRecorded es el valor de Weight cuando no se informó peso.
const NotRecorded = "Not recorded"

// DateLayout es el formato de Entry.Date.
const DateLayout = "2006-01-02"

// Entry es una observación de salud. No se edita nunca una vez creada.
type Entry struct {
	ID        string    `json:"id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Symptom   string    `json:"symptom" validate:"required"`
	Weight    string    `json:"weight" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Log es el valor guardado bajo health-<email>, más nuevo primero.
type Log struct {
	Email string  `json:"email" validate:"required,email"`
	Logs  []Entry `json:"logs" validate:"dive"`
}
