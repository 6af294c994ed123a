package catalog

import "strings"

var (
	successVerbs = map[Operation]string{Create: "criado", Update: "atualizado", Delete: "excluído"}
	failureVerbs = map[Operation]string{Create: "criar", Update: "atualizar", Delete: "excluir"}
)

// SuccessMessage is shown after a mutation succeeds, e.g. "Livro criado com sucesso!".
func SuccessMessage(kind Kind, op Operation) string {
	return kind.noun() + " " + successVerbs[op] + " com sucesso!"
}

// FailureMessage is shown after a mutation fails, e.g. "Erro ao criar livro: Dados inválidos".
func FailureMessage(kind Kind, op Operation, err error) string {
	return "Erro ao " + failureVerbs[op] + " " + strings.ToLower(kind.noun()) + ": " + Message(err)
}
