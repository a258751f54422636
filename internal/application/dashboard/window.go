// Package dashboard contiene el caso de uso del dashboard del vendedor:
// resolución de la ventana de fechas, reducción de resumen y proyección
// de detalle sobre pedidos multi-vendedor.
package dashboard

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Window rango inclusivo [Start, End] para filtrar pedidos por fecha de creación.
// Invariante: Start nunca es posterior a End.
type Window struct {
	Start time.Time
	End   time.Time
}

// defaultWindowDays ventana por defecto: últimos 30 días calendario.
const defaultWindowDays = 30

// Formatos aceptados para fechas suministradas por el cliente.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ResolveWindow valida y normaliza un rango de fechas del cliente.
//
// Función total: nunca devuelve error. Si falta alguna fecha, si alguna no
// parsea o si start > end, degrada a la ventana por defecto [now-30d, now]
// (el rango inválido se registra como diagnóstico, jamás llega al caller).
// Con un rango explícito válido, End se amplía al último instante de su día
// calendario para incluir el día final completo sin importar la hora recibida.
func ResolveWindow(rawStart, rawEnd string, now time.Time) Window {
	if rawStart == "" || rawEnd == "" {
		return defaultWindow(now)
	}

	start, okStart := parseDate(rawStart)
	end, okEnd := parseDate(rawEnd)
	if !okStart || !okEnd || start.After(end) {
		log.Warn().
			Str("start_date", rawStart).
			Str("end_date", rawEnd).
			Msg("rango de fechas inválido, usando ventana por defecto")
		return defaultWindow(now)
	}

	return Window{Start: start, End: endOfDay(end)}
}

func defaultWindow(now time.Time) Window {
	return Window{Start: now.AddDate(0, 0, -defaultWindowDays), End: now}
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// endOfDay devuelve las 23:59:59.999999999 del día calendario de t.
func endOfDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.Add(24*time.Hour - time.Nanosecond)
}
