// Package localtime maneja instantes sin zona horaria (fecha-hora local) tal como viajan
// en la API: ISO-8601 sin offset, ej. "2024-01-01T09:00:00".
//
// Convención: un instante local se representa como time.Time con Location UTC; el valor UTC
// ES la hora de pared. Así se guarda en columnas TIMESTAMP (sin zona) y se compara sin sorpresas.
package localtime

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Layout fecha-hora con segundos, sin fracción.
const Layout = "2006-01-02T15:04:05"

// OutputLayout formato de salida: la fracción de segundo solo aparece si no es cero,
// sin ceros a la derecha (como ISO_LOCAL_DATE_TIME).
const OutputLayout = "2006-01-02T15:04:05.999999999"

// Formatos aceptados en la entrada (minutos, segundos, fracción de segundo).
var parseLayouts = []string{
	OutputLayout,
	Layout,
	"2006-01-02T15:04",
}

// Parse interpreta una fecha-hora local. Rechaza cadenas con offset o 'Z'.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("localtime: valor vacío")
	}
	var lastErr error
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("localtime: %q no es una fecha-hora local ISO-8601: %w", s, lastErr)
}

// Format devuelve el instante en OutputLayout; Parse(Format(t)) == t.
// El instante cero se formatea como cadena vacía.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return Naive(t).Format(OutputLayout)
}

// Naive descarta la zona conservando la hora de pared.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DateTime envuelve time.Time para (de)serializar JSON en formato local sin offset.
type DateTime struct {
	time.Time
}

// From construye un DateTime normalizado.
func From(t time.Time) DateTime {
	return DateTime{Time: Naive(t)}
}

// MarshalJSON escribe "2006-01-02T15:04:05[.fracción]" o null si es cero.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + Format(d.Time) + `"`), nil
}

// UnmarshalJSON acepta una cadena local o null.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("localtime: se esperaba una cadena, llegó %s", data)
	}
	t, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Ptr devuelve un *DateTime o nil si t es nil.
func Ptr(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	d := From(*t)
	return &d
}

// Clock abstrae el reloj de pared para poder fijarlo en tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real: hora local del proceso, sin zona.
type SystemClock struct{}

// Now hora de pared actual truncada a microsegundos (precisión de TIMESTAMP en PostgreSQL).
func (SystemClock) Now() time.Time {
	return Naive(time.Now()).Truncate(time.Microsecond)
}

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now implementa Clock.
func (f ClockFunc) Now() time.Time { return f() }
