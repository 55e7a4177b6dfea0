package search

import (
	"math"
	"testing"
)

func TestScore_Bounded(t *testing.T) {
	bag := Extract("criar componente de perfil de usuario para pagina de pedidos e pagamentos")
	candidates := []Candidate{
		{Type: TypeModule, Name: "user-profile-ui", Category: "ui",
			Description: "user profile page with orders, payments, products and customers",
			Keywords:    []string{"user", "usuario", "perfil", "pedido", "pagamento"}},
		{Type: TypeHook, Name: "useNothing", Category: "logic", Description: "unrelated"},
		{Type: TypeService, Name: "", Category: "", Description: ""},
	}
	for _, c := range candidates {
		s := Score(c, bag)
		if s < 0 || s > 1 {
			t.Fatalf("score out of [0,1]: %f for %+v", s, c)
		}
	}
}

func TestScore_ExactArithmetic(t *testing.T) {
	// Query: ui top category, domains {usuario, perfil}, four raw tokens
	// (criar, componente, perfil, usuario).
	bag := Extract("criar componente de perfil de usuario")

	// English-only candidate text: category matches but no domain or raw
	// token does -> 0.3 exactly.
	c := Candidate{
		Type:        TypeModule,
		Name:        "user-profile-ui",
		Category:    "ui",
		Description: "User profile UI components",
		Keywords:    []string{"user", "profile"},
	}
	got := Score(c, bag)
	if math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("expected 0.3, got %f", got)
	}

	// Bilingual candidate text: +0.2 per domain hit (usuario, perfil) and
	// 2/4 raw tokens -> 0.3 + 0.4 + 0.25 = 0.95.
	c.Description = "Perfil do usuario"
	got = Score(c, bag)
	if math.Abs(got-0.95) > 1e-9 {
		t.Fatalf("expected 0.95, got %f", got)
	}
}

func TestScore_TokenProportion(t *testing.T) {
	// Four raw tokens, two matched -> 0.5 * 2/4 = 0.25, plus category 0.3
	// and one domain hit 0.2 -> 0.75.
	bag := Extract("componente perfil usuario widget")
	c := Candidate{
		Type:        TypeComponent,
		Name:        "perfil-widget",
		Category:    "ui",
		Description: "perfil widget",
	}
	got := Score(c, bag)
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected 0.75, got %f", got)
	}
}

func TestScore_Monotonic(t *testing.T) {
	bag := Extract("criar componente de perfil de usuario")

	c := Candidate{Type: TypeModule, Name: "profile-widget", Category: "ui", Description: "profile widget"}
	before := Score(c, bag)

	// Adding a domain term and a raw token to the description never lowers
	// the score.
	c.Description = "profile widget do usuario"
	after := Score(c, bag)
	if after < before {
		t.Fatalf("score decreased after adding matches: %f -> %f", before, after)
	}
}

func TestScore_AccentInsensitiveCandidateText(t *testing.T) {
	bag := Extract("pagina de usuario")
	c := Candidate{Type: TypeModule, Name: "páginas", Category: "ui", Description: "Páginas do usuário"}
	if Score(c, bag) <= 0 {
		t.Fatalf("accented candidate text must still match unaccented tokens")
	}
}

func TestScore_NoSignalIsZero(t *testing.T) {
	bag := Extract("integracao de webhook stripe")
	c := Candidate{Type: TypeHook, Name: "useTheme", Category: "ui", Description: "theme switcher"}
	if got := Score(c, bag); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
}
