package models

import "golang.org/x/crypto/bcrypt"

// A senha em claro nunca é armazenada: só existe o hash bcrypt, e a
// verificação é feita re-aplicando o hash sobre a senha candidata.

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
