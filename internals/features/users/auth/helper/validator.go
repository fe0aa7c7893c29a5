package helper

import (
	"errors"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateLoginInput: validación antes de tocar la red/DB (correo y contraseña requeridos)
func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Correo electrónico y contraseña son requeridos")
	}
	return nil
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Correo electrónico y contraseña son requeridos")
	}
	if !IsValidEmail(email) {
		return errors.New("Formato de email inválido")
	}
	if len(password) < 8 {
		return errors.New("La contraseña debe tener al menos 8 caracteres")
	}
	if strings.TrimSpace(userName) == "" {
		return errors.New("El nombre de usuario es requerido")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !IsValidEmail(email) {
		return errors.New("Formato de email inválido")
	}
	if len(newPassword) < 8 {
		return errors.New("La contraseña debe tener al menos 8 caracteres")
	}
	return nil
}
