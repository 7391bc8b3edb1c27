// Package textutil normaliza texto de búsqueda: el catálogo y los nombres de
// puntos están cargados en castellano, así que "deposito" tiene que encontrar
// "Depósito".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar pasa a minúsculas y elimina diacríticos: á→a, y la ñ queda como n
// (aceptable para búsqueda). Se aplica tanto al término buscado como, en los
// adaptadores, a la columna comparada.
func Normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Coincide informa si el texto contiene el término buscado, ambos normalizados.
// Término vacío coincide con todo.
func Coincide(texto, termino string) bool {
	if termino == "" {
		return true
	}
	return strings.Contains(Normalizar(texto), Normalizar(termino))
}
