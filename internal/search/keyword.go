package search

import (
	"sort"
	"strings"
)

// Static classification tables. Entries are bilingual (Portuguese/English)
// and authored in unaccented lowercase; matching is substring membership over
// normalized query text. These tables are a fixed contract shared with the
// registered module corpus.

type categoryTable struct {
	category string
	patterns []string
}

// categoryTables is ordered; ties on confidence keep this declaration order.
var categoryTables = []categoryTable{
	{"ui", []string{
		"component", "componente", "button", "botao", "form", "formulario",
		"modal", "screen", "tela", "page", "pagina", "layout", "style",
		"estilo", "interface", "visual", "perfil", "profile",
	}},
	{"logic", []string{
		"hook", "service", "servico", "rule", "regra", "logic", "logica",
		"calculation", "calculo", "process", "processo", "flow", "fluxo",
		"state", "estado", "handler",
	}},
	{"data", []string{
		"schema", "model", "modelo", "table", "tabela", "database", "banco",
		"query", "consulta", "migration", "migracao", "crud", "storage",
		"persistencia", "registro",
	}},
	{"integration", []string{
		"api", "webhook", "integration", "integracao", "stripe", "supabase",
		"auth", "gateway", "provider", "sdk", "external", "externo",
		"endpoint", "oauth",
	}},
}

type actionTable struct {
	action   string
	patterns []string
}

var actionTables = []actionTable{
	{"create", []string{"criar", "create", "novo", "new", "adicionar", "add", "gerar", "generate"}},
	{"read", []string{"listar", "list", "exibir", "show", "ver", "view", "get", "fetch", "ler"}},
	{"update", []string{"atualizar", "update", "editar", "edit", "alterar", "change", "modificar", "modify"}},
	{"delete", []string{"remover", "remove", "deletar", "delete", "excluir", "apagar"}},
	{"search", []string{"buscar", "search", "procurar", "pesquisar", "filtrar", "filter"}},
	{"validate", []string{"validar", "validate", "verificar", "verify", "checar", "check"}},
}

var domainTerms = []string{
	"user", "usuario", "product", "produto", "order", "pedido",
	"payment", "pagamento", "customer", "cliente", "invoice", "fatura",
	"cart", "carrinho", "profile", "perfil", "subscription", "assinatura",
	"report", "relatorio", "notification", "notificacao", "address", "endereco",
}

// Extract classifies free text into a KeywordBag. It is a pure function of
// the static tables above: no I/O, deterministic, and an empty or
// whitespace-only input yields an empty bag rather than an error.
func Extract(text string) KeywordBag {
	normalized := Normalize(strings.TrimSpace(text))
	bag := KeywordBag{RawTokens: Tokenize(normalized)}
	if normalized == "" {
		return bag
	}

	for _, ct := range categoryTables {
		var matched []string
		for _, p := range ct.patterns {
			if strings.Contains(normalized, p) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			continue
		}
		bag.Categories = append(bag.Categories, CategoryMatch{
			Category:        ct.category,
			MatchedPatterns: matched,
			Confidence:      float64(len(matched)) / float64(len(ct.patterns)),
		})
	}
	// Sort descending by confidence; SliceStable keeps declaration order on ties.
	sort.SliceStable(bag.Categories, func(i, j int) bool {
		return bag.Categories[i].Confidence > bag.Categories[j].Confidence
	})

	for _, at := range actionTables {
		var matched []string
		for _, p := range at.patterns {
			if strings.Contains(normalized, p) {
				matched = append(matched, p)
			}
		}
		if len(matched) > 0 {
			bag.Actions = append(bag.Actions, ActionMatch{Action: at.action, MatchedPatterns: matched})
		}
	}

	for _, d := range domainTerms {
		if strings.Contains(normalized, d) {
			bag.Domains = append(bag.Domains, d)
		}
	}

	return bag
}
