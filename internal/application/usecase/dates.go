package usecase

import (
	"strings"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"}

// parseDate acepta RFC3339, "YYYY-MM-DDTHH:MM" o "YYYY-MM-DD".
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ownedTrim recorta y copia s para que no comparta memoria con el cuerpo de la petición.
func ownedTrim(s string) string {
	return strings.Clone(strings.TrimSpace(s))
}
