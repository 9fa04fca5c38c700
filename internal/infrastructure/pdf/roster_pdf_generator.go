// Package pdf genera el cuadrante de turnos de un restaurante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante          │  Ventana + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Trabajador | Rol | Horario | Estado | Lugar  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: turnos por estado + horas programadas             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Turnos-api/internal/application/report"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
)

var _ report.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// etiquetas legibles por estado.
var statusLabel = map[entity.ShiftStatus]string{
	entity.ShiftScheduled: "Programado",
	entity.ShiftCheckedIn: "En curso",
	entity.ShiftCompleted: "Completado",
	entity.ShiftCanceled:  "Cancelado",
}

// MarotoRosterGenerator implementa report.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(_ context.Context, roster report.Roster) ([]byte, error) {
	if roster.Restaurant == nil {
		return nil, fmt.Errorf("pdf: restaurante requerido")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cuadrante de turnos", true).
		WithAuthor(roster.Restaurant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(roster))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(roster.Shifts) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin turnos en la ventana.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range shiftRows(roster.Shifts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(roster.Shifts))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: restaurante (izq) y ventana + emisión (der).
func headerRow(roster report.Roster) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(roster.Restaurant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cuadrante de turnos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%s a %s", roster.Start.Format("02/01/2006 15:04"), roster.End.Format("02/01/2006 15:04")), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+roster.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Trabajador", 3, align.Left),
		h("Rol", 2, align.Left),
		h("Horario", 2, align.Center),
		h("Estado", 1, align.Center),
		h("Lugar", 2, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// shiftRows: una fila por turno.
func shiftRows(shifts []*entity.Shift) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(shifts))
	for _, s := range shifts {
		name, role := s.WorkerID, ""
		if s.Worker != nil {
			name, role = s.Worker.Name, s.Worker.Role
		}
		result = append(result, row.New(7).Add(
			cell(s.StartTime.Format("Mon 02/01"), 2, align.Left),
			cell(name, 3, align.Left),
			cell(nonEmpty(role, "-"), 2, align.Left),
			cell(s.StartTime.Format("15:04")+"-"+s.EndTime.Format("15:04"), 2, align.Center),
			cell(nonEmpty(statusLabel[s.Status], string(s.Status)), 1, align.Center),
			cell(nonEmpty(s.Location, "-"), 2, align.Left),
		))
	}
	return result
}

// summaryRow: conteo por estado y horas programadas (sin cancelados).
func summaryRow(shifts []*entity.Shift) core.Row {
	counts := make(map[entity.ShiftStatus]int)
	hours := decimal.Zero
	for _, s := range shifts {
		counts[s.Status]++
		if s.Status != entity.ShiftCanceled {
			hours = hours.Add(decimal.NewFromFloat(s.EndTime.Sub(s.StartTime).Hours()))
		}
	}
	parts := ""
	for _, st := range entity.ShiftStatuses {
		if parts != "" {
			parts += "   |   "
		}
		parts += fmt.Sprintf("%s: %d", statusLabel[st], counts[st])
	}
	return row.New(14).Add(
		col.New(8).Add(text.New(parts, props.Text{Size: 8, Top: 3, Color: colorGray})),
		col.New(4).Add(text.New("Horas programadas: "+hours.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Color: colorPrimary,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
