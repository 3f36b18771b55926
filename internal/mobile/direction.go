package mobile

import (
	"strings"

	"golang.org/x/text/language"
)

// Direction sentido de escritura de la interfaz.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Escrituras de derecha a izquierda en uso.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Thaa": true,
	"Syrc": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
	"Mand": true,
}

// DirectionFor decide la dirección a partir del locale del dispositivo.
// Usa la escritura (explícita o inferida: "ar" → Arab, "fa" → Arab, "he" → Hebr);
// un locale vacío o inválido resulta en LTR.
func DirectionFor(locale string) Direction {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return DirectionLTR
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DirectionLTR
	}
	script, conf := tag.Script()
	if conf == language.No {
		return DirectionLTR
	}
	if rtlScripts[script.String()] {
		return DirectionRTL
	}
	return DirectionLTR
}
