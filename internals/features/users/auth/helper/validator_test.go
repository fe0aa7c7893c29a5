package helper

import "testing"

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("admin@gym.com", "secreta123"); err != nil {
		t.Fatalf("login válido rechazado: %v", err)
	}
	if err := ValidateLoginInput("", "secreta123"); err == nil {
		t.Fatal("login sin correo debió fallar antes de tocar la DB")
	}
	if err := ValidateLoginInput("admin@gym.com", ""); err == nil {
		t.Fatal("login sin contraseña debió fallar antes de tocar la DB")
	}
	if err := ValidateLoginInput("   ", "   "); err == nil {
		t.Fatal("espacios en blanco no cuentan como credenciales")
	}
}

func TestValidateRegisterInput(t *testing.T) {
	if err := ValidateRegisterInput("admin", "admin@gym.com", "secreta123"); err != nil {
		t.Fatalf("registro válido rechazado: %v", err)
	}
	if err := ValidateRegisterInput("admin", "no-es-email", "secreta123"); err == nil {
		t.Fatal("email inválido debió fallar")
	}
	if err := ValidateRegisterInput("admin", "admin@gym.com", "corta"); err == nil {
		t.Fatal("contraseña corta debió fallar")
	}
	if err := ValidateRegisterInput("", "admin@gym.com", "secreta123"); err == nil {
		t.Fatal("sin nombre de usuario debió fallar")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "juan.perez+gym@mail.com.do"}
	invalid := []string{"", "sinarroba", "a@b", "@mail.com", "a b@mail.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, se esperaba true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, se esperaba false", e)
		}
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secreta123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secreta123" {
		t.Fatal("el hash no puede ser la contraseña en claro")
	}
	if err := CheckPasswordHash(hash, "secreta123"); err != nil {
		t.Fatalf("la contraseña correcta no verificó contra su hash: %v", err)
	}
	if err := CheckPasswordHash(hash, "otra"); err == nil {
		t.Fatal("una contraseña incorrecta verificó contra el hash")
	}
}
