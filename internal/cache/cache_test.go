package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/admvalente/agenda/internal/supabase"
)

func storeTeste(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestNewExigeDiretorio(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("diretório vazio deveria falhar")
	}
}

func TestPerfilIdaEVolta(t *testing.T) {
	store := storeTeste(t)

	original := supabase.Perfil{
		IDUsuario:        uuid.New(),
		Email:            "pessoa@exemplo.com",
		NomeAtendente:    "Maria",
		Telefone:         "71999990000",
		NivelAcesso:      supabase.NivelTotal,
		AprovadoPorAdmin: true,
	}
	if err := store.SavePerfil(original); err != nil {
		t.Fatal(err)
	}

	lido, ok := store.LoadPerfil()
	if !ok {
		t.Fatal("perfil gravado deveria ser lido de volta")
	}
	if *lido != original {
		t.Fatalf("perfil lido difere: %+v", lido)
	}
}

func TestLoadPerfilSemArquivo(t *testing.T) {
	store := storeTeste(t)

	if _, ok := store.LoadPerfil(); ok {
		t.Fatal("cache vazio não deveria devolver perfil")
	}
}

func TestLoadPerfilCorrompidoDescarta(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	caminho := filepath.Join(dir, "perfil.json")
	if err := os.WriteFile(caminho, []byte("{meia entrada"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, ok := store.LoadPerfil(); ok {
		t.Fatal("entrada corrompida não pode virar perfil")
	}
	if _, err := os.Stat(caminho); !os.IsNotExist(err) {
		t.Fatal("entrada corrompida deveria ser apagada")
	}
}

func TestTokenIdaEVolta(t *testing.T) {
	store := storeTeste(t)

	if err := store.SaveToken("token-abc"); err != nil {
		t.Fatal(err)
	}
	token, ok := store.LoadToken()
	if !ok || token != "token-abc" {
		t.Fatalf("token lido: %q, %v", token, ok)
	}
}

func TestLoadTokenVazioOuCorrompido(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := store.LoadToken(); ok {
		t.Fatal("cache vazio não deveria devolver token")
	}

	caminho := filepath.Join(dir, "sessao.json")
	if err := os.WriteFile(caminho, []byte(`{"access_token":""}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.LoadToken(); ok {
		t.Fatal("token vazio não deveria contar como sessão")
	}
}

func TestClearRemoveTudo(t *testing.T) {
	store := storeTeste(t)

	if err := store.SavePerfil(supabase.Perfil{NomeAtendente: "Ana"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveToken("token-abc"); err != nil {
		t.Fatal(err)
	}

	store.Clear()

	if _, ok := store.LoadPerfil(); ok {
		t.Fatal("perfil deveria sumir no clear")
	}
	if _, ok := store.LoadToken(); ok {
		t.Fatal("token deveria sumir no clear")
	}
}

func TestEscritaNaoDeixaTemporario(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.SaveToken("token-abc"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sessao.json.tmp")); !os.IsNotExist(err) {
		t.Fatal("arquivo temporário não deveria sobrar após a gravação")
	}
}
