package report

import (
	"context"
	"time"

	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

// Roster datos de entrada para el PDF de turnos de un restaurante.
type Roster struct {
	Restaurant  *entity.Restaurant
	Start       time.Time
	End         time.Time
	Shifts      []*entity.Shift // ordenados por inicio
	GeneratedAt time.Time
}

// RosterPDFGenerator puerto de salida: genera el PDF del cuadrante.
// La implementación concreta vive en infrastructure/pdf.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, roster Roster) ([]byte, error)
}
