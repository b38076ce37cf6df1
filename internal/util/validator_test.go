package util

import "testing"

func TestValidateEmail(t *testing.T) {
	casos := []struct {
		email string
		ok    bool
	}{
		{"pessoa@exemplo.com", true},
		{"  pessoa@exemplo.com  ", true},
		{"", false},
		{"   ", false},
		{"sem-arroba", false},
		{"@sem-local.com", false},
	}

	for _, c := range casos {
		err := ValidateEmail(c.email)
		if c.ok && err != nil {
			t.Errorf("ValidateEmail(%q): erro inesperado %v", c.email, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ValidateEmail(%q): deveria falhar", c.email)
		}
	}
}

func TestRequireString(t *testing.T) {
	if err := RequireString("Maria", "nome"); err != nil {
		t.Fatalf("valor presente não pode falhar: %v", err)
	}
	if err := RequireString("   ", "nome"); err == nil {
		t.Fatal("espaços em branco não contam como valor")
	}
}
