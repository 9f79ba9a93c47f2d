package dashboard

import (
	"petpal/internal/domain/health"
	"petpal/internal/domain/profile"
	"petpal/internal/domain/reminders"
)

// Screen es la pantalla activa. No se persiste.
type Screen string

const (
	ScreenLogin         Screen = "login"
	ScreenHome          Screen = "home"
	ScreenProfile       Screen = "profile"
	ScreenCareTips      Screen = "care-tips"
	ScreenHealthTracker Screen = "health-tracker"
	ScreenVetFinder     Screen = "vet-finder"
	ScreenReminders     Screen = "reminders"
)

// Screens navegables con sesión (login no: se llega sólo por logout).
var Screens = []Screen{
	ScreenHome,
	ScreenProfile,
	ScreenCareTips,
	ScreenHealthTracker,
	ScreenVetFinder,
	ScreenReminders,
}

func (s Screen) navigable() bool {
	for _, x := range Screens {
		if x == s {
			return true
		}
	}
	return false
}

// Botones de acción del home y su pantalla destino.
var actions = map[string]Screen{
	"Pet Profile":    ScreenProfile,
	"Care Tips":      ScreenCareTips,
	"Health Tracker": ScreenHealthTracker,
	"Vet Finder":     ScreenVetFinder,
	"Reminders":      ScreenReminders,
}

// Actions devuelve los botones en orden de pantalla.
func Actions() []string {
	return []string{"Pet Profile", "Care Tips", "Health Tracker", "Vet Finder", "Reminders"}
}

// State es la vista en memoria del usuario actual.
type State struct {
	Authenticated bool                 `json:"authenticated"`
	User          string               `json:"user,omitempty"`
	Screen        Screen               `json:"screen"`
	AvatarOpen    bool                 `json:"avatar_open"`
	Profile       *profile.Profile     `json:"profile,omitempty"`
	Entries       []health.Entry       `json:"entries"`
	Reminders     []reminders.Reminder `json:"reminders"`
	Points        int                  `json:"points"`
}

func anonymous() State {
	return State{
		Screen:    ScreenLogin,
		Entries:   []health.Entry{},
		Reminders: []reminders.Reminder{},
	}
}

func (s State) clone() State {
	out := s
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	out.Entries = append(make([]health.Entry, 0, len(s.Entries)), s.Entries...)
	out.Reminders = append(make([]reminders.Reminder, 0, len(s.Reminders)), s.Reminders...)
	return out
}
