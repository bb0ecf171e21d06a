package validators

import "regexp"

var (
	phonePattern  = regexp.MustCompile(`^(?:\(?\d{2}\)?\s?)?\d{4,5}-?\d{4}$`)
	phoneStripper = regexp.MustCompile(`[()\s-]`)
)

// NormalizePhone valida o telefone no formato (99) 99999-9999 ou 99999-9999
// e devolve apenas os dígitos.
func NormalizePhone(phone string) (string, bool) {
	if !phonePattern.MatchString(phone) {
		return "", false
	}
	return phoneStripper.ReplaceAllString(phone, ""), true
}
