package domain

import "github.com/shopspring/decimal"

// Mensagens de validação exibidas ao cliente.
const (
	MsgCampoObrigatorio     = "Este campo é obrigatório"
	MsgPrecoMinimo          = "O preço deve ser maior que zero"
	MsgCodigoJaExiste       = "Código já existe"
	MsgProdutoNaoEncontrado = "Produto não encontrado"
	MsgNomeObrigatorio      = "Nome é obrigatório"
	MsgEmailObrigatorio     = "Email é obrigatório"
	MsgEmailInvalido        = "Email inválido"
	MsgSenhaObrigatoria     = "Senha é obrigatória"
	MsgSenhaMinima          = "Senha deve ter pelo menos 6 caracteres"
	MsgEmailJaExiste        = "Email já cadastrado"
	MsgCredenciaisInvalidas = "Email ou senha inválidos"
	MsgUsuarioNaoEncontrado = "Usuário não encontrado"
)

// Mensagens de sucesso.
const (
	MsgProdutoCriado     = "Produto criado com sucesso"
	MsgProdutoAtualizado = "Produto atualizado com sucesso"
	MsgProdutoExcluido   = "Produto excluído com sucesso"
	MsgUsuarioCriado     = "Usuário criado com sucesso"
	MsgLoginRealizado    = "Login realizado com sucesso"
)

// Mensagens de erro genéricas.
const (
	MsgErroInterno = "Erro interno do servidor"
)

// Limites de validação.
const (
	CodigoMaxLength    = 50
	DescricaoMaxLength = 255
	SenhaMinLength     = 6
)

// PrecoMinimo é o menor preço admissível para um produto.
var PrecoMinimo = decimal.New(1, -2) // 0.01
