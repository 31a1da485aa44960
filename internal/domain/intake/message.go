package intake

const (
	MessageEnglish = "Intake received successfully."
	MessageSpanish = "Formulario recibido con éxito."
)

// LocalizedMessage returns the confirmation text for a language preference.
// Only "es" selects Spanish; anything else, including unknown tags, gets English.
func LocalizedMessage(lang string) string {
	if lang == "es" {
		return MessageSpanish
	}
	return MessageEnglish
}
