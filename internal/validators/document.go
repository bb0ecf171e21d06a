package validators

import "strings"

// Validação de CPF e CNPJ por dígitos verificadores (módulo 11).

var docReplacer = strings.NewReplacer(".", "", "-", "", "/", "")

func digits(s string) ([]int, bool) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, false
		}
		out = append(out, int(r-'0'))
	}
	return out, true
}

// ValidateCPF valida um CPF (11 dígitos, dois verificadores).
// A pontuação é removida antes do cálculo; o CPF todo zero é sempre inválido.
func ValidateCPF(cpf string) bool {
	cpf = docReplacer.Replace(cpf)

	if cpf == "00000000000" {
		return false
	}
	if len(cpf) != 11 {
		return false
	}

	ds, ok := digits(cpf)
	if !ok {
		return false
	}

	// Primeiro verificador: pesos 1..9 sobre os 9 primeiros dígitos.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += ds[i] * (i + 1)
	}
	first := sum % 11
	if first > 9 {
		first = 0
	}

	// Segundo verificador: pesos 0..9 sobre os 9 primeiros mais o primeiro verificador.
	sum = 0
	for i := 0; i < 9; i++ {
		sum += ds[i] * i
	}
	sum += first * 9
	second := sum % 11
	if second > 9 {
		second = 0
	}

	return ds[9] == first && ds[10] == second
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func cnpjCheckDigit(ds []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += ds[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// ValidateCNPJ valida um CNPJ (14 dígitos, dois verificadores).
func ValidateCNPJ(cnpj string) bool {
	cnpj = docReplacer.Replace(cnpj)

	if cnpj == "00000000000000" {
		return false
	}
	if len(cnpj) != 14 {
		return false
	}

	ds, ok := digits(cnpj)
	if !ok {
		return false
	}

	first := cnpjCheckDigit(ds, cnpjWeightsFirst)
	second := cnpjCheckDigit(ds, cnpjWeightsSecond)

	return ds[12] == first && ds[13] == second
}

// ValidateDocument aceita tanto CPF quanto CNPJ.
func ValidateDocument(doc string) bool {
	return ValidateCPF(doc) || ValidateCNPJ(doc)
}
