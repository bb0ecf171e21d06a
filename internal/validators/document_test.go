package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		cpf      string
		expected bool
	}{
		{"123.456.789-09", true},
		{"123.456.789-08", false},
		{"000.000.000-00", false},
		{"12345678909", true},
		{"", false},
		{"123.456.789", false},
		{"abc.def.ghi-jk", false},
		{"987.654.321-00", true},
		{"95867364517", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ValidateCPF(tc.cpf), "cpf %q", tc.cpf)
	}
}

func TestValidateCNPJ(t *testing.T) {
	cases := []struct {
		cnpj     string
		expected bool
	}{
		{"12.345.678/0001-95", true},
		{"12345678000195", true},
		{"", false},
		{"abc.def.ghi/jkl-mn", false},
		{"00.000.000/0000-00", false},
		{"12.345.678/0001", false},
		{"27865757000148", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ValidateCNPJ(tc.cnpj), "cnpj %q", tc.cnpj)
	}
}

func TestValidateDocument(t *testing.T) {
	assert.True(t, ValidateDocument("12345678909"))
	assert.True(t, ValidateDocument("12345678000195"))
	assert.False(t, ValidateDocument("123"))
}

func TestNormalizePhone(t *testing.T) {
	normalized, ok := NormalizePhone("(11) 99999-9999")
	assert.True(t, ok)
	assert.Equal(t, "11999999999", normalized)

	normalized, ok = NormalizePhone("99999-9999")
	assert.True(t, ok)
	assert.Equal(t, "999999999", normalized)

	_, ok = NormalizePhone("telefone")
	assert.False(t, ok)
}
