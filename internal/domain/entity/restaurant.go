package entity

import "time"

// Restaurant representa un local al que pertenecen trabajadores y turnos.
type Restaurant struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
