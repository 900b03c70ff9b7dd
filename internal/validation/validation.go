package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
)

// As validações são de curto-circuito: a primeira regra violada vence,
// sempre na mesma ordem fixa. O retorno é nil ou um ValidationError
// com a mensagem exata a ser exibida ao cliente. Os limites de tamanho
// contam caracteres, não bytes, como o VARCHAR(n) das colunas.

// ValidarProduto valida o payload de criação/atualização de produto.
// Ordem: código → tamanho do código → descrição → tamanho da descrição
// → departamento → preço mínimo.
func ValidarProduto(dto domain.ProdutoDto) error {
	if estaEmBranco(dto.Codigo) {
		return apperror.NewValidationError(domain.MsgCampoObrigatorio)
	}
	if utf8.RuneCountInString(dto.Codigo) > domain.CodigoMaxLength {
		return apperror.NewValidationError(
			fmt.Sprintf("Código deve ter no máximo %d caracteres", domain.CodigoMaxLength))
	}
	if estaEmBranco(dto.Descricao) {
		return apperror.NewValidationError(domain.MsgCampoObrigatorio)
	}
	if utf8.RuneCountInString(dto.Descricao) > domain.DescricaoMaxLength {
		return apperror.NewValidationError(
			fmt.Sprintf("Descrição deve ter no máximo %d caracteres", domain.DescricaoMaxLength))
	}
	if estaEmBranco(dto.DepartamentoCodigo) {
		return apperror.NewValidationError(domain.MsgCampoObrigatorio)
	}
	if dto.Preco.LessThan(domain.PrecoMinimo) {
		return apperror.NewValidationError(domain.MsgPrecoMinimo)
	}
	return nil
}

// ValidarUsuario valida o payload de registro de usuário.
// Ordem: nome → email → formato do email → senha → tamanho da senha.
func ValidarUsuario(dto domain.UsuarioDto) error {
	if estaEmBranco(dto.Nome) {
		return apperror.NewValidationError(domain.MsgNomeObrigatorio)
	}
	if estaEmBranco(dto.Email) {
		return apperror.NewValidationError(domain.MsgEmailObrigatorio)
	}
	if !emailValido(dto.Email) {
		return apperror.NewValidationError(domain.MsgEmailInvalido)
	}
	if estaEmBranco(dto.Senha) {
		return apperror.NewValidationError(domain.MsgSenhaObrigatoria)
	}
	if utf8.RuneCountInString(dto.Senha) < domain.SenhaMinLength {
		return apperror.NewValidationError(domain.MsgSenhaMinima)
	}
	return nil
}

// ValidarLogin valida o payload de login. Diferente do registro, o
// login não checa formato de email nem tamanho de senha.
func ValidarLogin(dto domain.LoginDto) error {
	if estaEmBranco(dto.Email) {
		return apperror.NewValidationError(domain.MsgEmailObrigatorio)
	}
	if estaEmBranco(dto.Senha) {
		return apperror.NewValidationError(domain.MsgSenhaObrigatoria)
	}
	return nil
}

// estaEmBranco trata string vazia ou só de espaços como ausente.
func estaEmBranco(s string) bool {
	return strings.TrimSpace(s) == ""
}

// emailValido verifica a forma local@dominio.tld: parte local e domínio
// não vazios, domínio com ponto, sem espaços e sem um segundo '@'.
func emailValido(email string) bool {
	if strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	arroba := strings.Index(email, "@")
	if arroba <= 0 || arroba != strings.LastIndex(email, "@") {
		return false
	}
	dominio := email[arroba+1:]
	if dominio == "" || !strings.Contains(dominio, ".") {
		return false
	}
	return true
}
