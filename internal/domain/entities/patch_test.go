package entities

import (
	"testing"

	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

func strPtr(s string) *string { return &s }

func testUser(t *testing.T) User {
	t.Helper()
	email, err := valueobjects.NewEmail("maria@example.com")
	if err != nil {
		t.Fatalf("email inválido: %v", err)
	}
	return User{ID: "u1", Name: "Maria", Username: "maria", Email: email, Role: RoleUser}
}

func TestUserPatch_Effective(t *testing.T) {
	current := testUser(t)

	t.Run("ignora campos iguais e vazios", func(t *testing.T) {
		patch := UserPatch{
			Name:     strPtr("Maria"),
			Username: strPtr("  "),
			Email:    strPtr("MARIA@example.com"),
		}
		if got := patch.Effective(&current); !got.IsEmpty() {
			t.Errorf("esperava patch vazio, obteve %+v", got)
		}
	})

	t.Run("mantém apenas o que mudou", func(t *testing.T) {
		patch := UserPatch{Name: strPtr("Maria Silva"), Username: strPtr("maria")}
		got := patch.Effective(&current)
		if got.Name == nil || *got.Name != "Maria Silva" {
			t.Errorf("esperava nome alterado, obteve %+v", got.Name)
		}
		if got.Username != nil {
			t.Errorf("username não mudou, obteve %q", *got.Username)
		}
	})
}

func TestUserPatch_ApplyDoesNotMutate(t *testing.T) {
	current := testUser(t)

	next, err := UserPatch{Name: strPtr("Outra"), Email: strPtr("outra@example.com")}.Apply(current)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if current.Name != "Maria" || current.Email.String() != "maria@example.com" {
		t.Errorf("estado original foi alterado: %+v", current)
	}
	if next.Name != "Outra" || next.Email.String() != "outra@example.com" {
		t.Errorf("patch não aplicado: %+v", next)
	}

	if _, err := (UserPatch{Email: strPtr("invalido")}).Apply(current); err == nil {
		t.Error("esperava erro para email inválido")
	}
}

func TestProfessionalPatch_Apply(t *testing.T) {
	user := testUser(t)
	current := Professional{ID: "p1", UserID: user.ID, Bio: "antes", PhoneNumber: "(11) 99999-9999", User: &user}

	patch := ProfessionalPatch{
		User:        UserPatch{Name: strPtr("Dra. Maria")},
		Bio:         strPtr(""),
		PhoneNumber: strPtr("(11) 99999-9999"),
	}.Effective(&current)

	if patch.PhoneNumber != nil {
		t.Error("telefone igual não deveria estar no patch")
	}
	if patch.Bio == nil || *patch.Bio != "" {
		t.Error("bio vazia explícita deveria ser aplicada")
	}

	next, err := patch.Apply(current)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if next.User.Name != "Dra. Maria" || current.User.Name != "Maria" {
		t.Errorf("esperava cópia alterada sem mexer no original: %q / %q", next.User.Name, current.User.Name)
	}
}

func TestProPostPatch_Apply(t *testing.T) {
	current := ProPost{ID: "post", Title: "Título", Content: "Texto", ImageURLs: []string{"a"}}
	urls := []string{"b", "c"}

	next := ProPostPatch{Title: strPtr(" Novo "), ImageURLs: &urls}.Apply(current)

	if next.Title != "Novo" || next.Content != "Texto" {
		t.Errorf("patch incorreto: %+v", next)
	}
	if len(next.ImageURLs) != 2 || len(current.ImageURLs) != 1 {
		t.Errorf("imagens incorretas: %v / %v", next.ImageURLs, current.ImageURLs)
	}
}

func TestIdentity_CanModify(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		owner    string
		expected bool
	}{
		{"dono", Identity{UserID: "u1", Role: RoleUser}, "u1", true},
		{"outro usuário", Identity{UserID: "u2", Role: RoleProfessional}, "u1", false},
		{"admin", Identity{UserID: "adm", Role: RoleAdmin}, "u1", true},
		{"dono desconhecido", Identity{UserID: "", Role: RoleUser}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.CanModify(tt.owner); got != tt.expected {
				t.Errorf("esperava %v, obteve %v", tt.expected, got)
			}
		})
	}
}
