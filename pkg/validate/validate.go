// Package validate contiene las validaciones de formato y el saneado de
// entrada de usuario. Son funciones puras, sin dependencias de dominio.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail verifica el formato local@dominio.tld con TLD de 2+ letras.
// No normaliza el valor.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidUsername exige longitud entre 3 y 20 y solo caracteres alfanuméricos
// (sin guiones ni guiones bajos).
func ValidUsername(s string) bool {
	if len(s) < 3 || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

// ValidPassword exige longitud mínima de 6; sin requisitos de complejidad.
func ValidPassword(s string) bool {
	return len(s) >= 6
}

// Sanitize elimina los caracteres < > " ' & de la cadena y recorta espacios.
// Es una lista negra simple, no un escapado contextual: mitiga XSS básico
// pero no garantiza seguridad contra todo vector de inyección.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	replacer := strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")
	return strings.TrimSpace(replacer.Replace(s))
}

// SanitizeFields aplica Sanitize a todos los valores string de un documento
// de atributos libres (suppliers, categories, ediciones parciales).
func SanitizeFields(fields map[string]any) map[string]any {
	for k, v := range fields {
		if s, ok := v.(string); ok {
			fields[k] = Sanitize(s)
		}
	}
	return fields
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
