package reminders

import "time"

// TimeLayout es el formato de Reminder.Time (24h).
const TimeLayout = "15:04"

// Reminder es una tarea de cuidado. Transición única: pendiente -> completada.
type Reminder struct {
	ID        string    `json:"id" validate:"required"`
	Task      string    `json:"task" validate:"required"`
	Time      string    `json:"time" validate:"required,datetime=15:04"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Book es el valor guardado bajo reminders-<email>.
// Points es la única fuente de verdad del contador de Paw Points.
type Book struct {
	Email     string     `json:"email" validate:"required,email"`
	Reminders []Reminder `json:"reminders" validate:"dive"`
	Points    int        `json:"points" validate:"gte=0"`
}

// Event es un motivo de premio. El monto es fijo por evento.
type Event string

const (
	EventAvatar            Event = "avatar"
	EventActionButton      Event = "action_button"
	EventReminderCompleted Event = "reminder_completed"
)

func (e Event) Points() int {
	switch e {
	case EventAvatar:
		return 5
	case EventActionButton, EventReminderCompleted:
		return 10
	default:
		return 0
	}
}

// Completion es el resultado de completar un reminder.
// Awarded es 0 si ya estaba completado.
type Completion struct {
	Reminder Reminder `json:"reminder"`
	Awarded  int      `json:"awarded"`
	Points   int      `json:"points"`
}
