package validation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/validation"
)

func produtoValido() domain.ProdutoDto {
	return domain.ProdutoDto{
		Codigo:             "P1",
		Descricao:          "Widget",
		DepartamentoCodigo: "010",
		Preco:              decimal.RequireFromString("9.99"),
		Status:             true,
	}
}

func usuarioValido() domain.UsuarioDto {
	return domain.UsuarioDto{
		Nome:  "Ana",
		Email: "ana@x.com",
		Senha: "secret1",
	}
}

// --- Testes para ValidarProduto ---

func TestValidarProduto_ComDadosValidos(t *testing.T) {
	assert.NoError(t, validation.ValidarProduto(produtoValido()))
}

func TestValidarProduto_PrimeiraRegraViolada(t *testing.T) {
	// A validação é de curto-circuito: a primeira regra violada vence,
	// sempre na mesma ordem.
	casos := []struct {
		nome     string
		mutacao  func(*domain.ProdutoDto)
		mensagem string
	}{
		{"codigo vazio", func(d *domain.ProdutoDto) { d.Codigo = "" }, domain.MsgCampoObrigatorio},
		{"codigo so espacos", func(d *domain.ProdutoDto) { d.Codigo = "   " }, domain.MsgCampoObrigatorio},
		{"codigo longo demais", func(d *domain.ProdutoDto) { d.Codigo = strings.Repeat("x", 51) },
			"Código deve ter no máximo 50 caracteres"},
		{"descricao vazia", func(d *domain.ProdutoDto) { d.Descricao = "" }, domain.MsgCampoObrigatorio},
		{"descricao longa demais", func(d *domain.ProdutoDto) { d.Descricao = strings.Repeat("y", 256) },
			"Descrição deve ter no máximo 255 caracteres"},
		{"departamento vazio", func(d *domain.ProdutoDto) { d.DepartamentoCodigo = " " }, domain.MsgCampoObrigatorio},
		{"preco zero", func(d *domain.ProdutoDto) { d.Preco = decimal.Zero }, domain.MsgPrecoMinimo},
		{"preco negativo", func(d *domain.ProdutoDto) { d.Preco = decimal.RequireFromString("-1") }, domain.MsgPrecoMinimo},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			dto := produtoValido()
			caso.mutacao(&dto)

			err := validation.ValidarProduto(dto)

			assert.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Equal(t, caso.mensagem, err.Error())
		})
	}
}

func TestValidarProduto_LimitesExatosSaoAceitos(t *testing.T) {
	dto := produtoValido()
	dto.Codigo = strings.Repeat("x", 50)
	dto.Descricao = strings.Repeat("y", 255)
	dto.Preco = domain.PrecoMinimo // 0.01 é o menor preço admissível

	assert.NoError(t, validation.ValidarProduto(dto))
}

func TestValidarProduto_LimitesContamCaracteresNaoBytes(t *testing.T) {
	// Cada "ç"/"ã" ocupa dois bytes em UTF-8; no limite exato eles ainda
	// cabem, porque a contagem é de caracteres, como no VARCHAR(n).
	dto := produtoValido()
	dto.Codigo = strings.Repeat("ã", 50)
	dto.Descricao = strings.Repeat("ç", 255)

	assert.NoError(t, validation.ValidarProduto(dto))

	dto.Codigo = strings.Repeat("ã", 51)
	err := validation.ValidarProduto(dto)
	assert.Error(t, err)
	assert.Equal(t, "Código deve ter no máximo 50 caracteres", err.Error())

	dto.Codigo = "P1"
	dto.Descricao = strings.Repeat("ç", 256)
	err = validation.ValidarProduto(dto)
	assert.Error(t, err)
	assert.Equal(t, "Descrição deve ter no máximo 255 caracteres", err.Error())
}

func TestValidarProduto_CodigoVemAntesDoPreco(t *testing.T) {
	// Código em branco e preço inválido ao mesmo tempo: vence o código.
	dto := produtoValido()
	dto.Codigo = ""
	dto.Preco = decimal.Zero

	err := validation.ValidarProduto(dto)

	assert.Error(t, err)
	assert.Equal(t, domain.MsgCampoObrigatorio, err.Error())
}

// --- Testes para ValidarUsuario ---

func TestValidarUsuario_ComDadosValidos(t *testing.T) {
	assert.NoError(t, validation.ValidarUsuario(usuarioValido()))
}

func TestValidarUsuario_PrimeiraRegraViolada(t *testing.T) {
	casos := []struct {
		nome     string
		mutacao  func(*domain.UsuarioDto)
		mensagem string
	}{
		{"nome vazio", func(d *domain.UsuarioDto) { d.Nome = "" }, domain.MsgNomeObrigatorio},
		{"nome so espacos", func(d *domain.UsuarioDto) { d.Nome = "  " }, domain.MsgNomeObrigatorio},
		{"email vazio", func(d *domain.UsuarioDto) { d.Email = "" }, domain.MsgEmailObrigatorio},
		{"email sem arroba", func(d *domain.UsuarioDto) { d.Email = "ana.x.com" }, domain.MsgEmailInvalido},
		{"email sem ponto no dominio", func(d *domain.UsuarioDto) { d.Email = "ana@xcom" }, domain.MsgEmailInvalido},
		{"email com dois arrobas", func(d *domain.UsuarioDto) { d.Email = "ana@@x.com" }, domain.MsgEmailInvalido},
		{"email com espaco", func(d *domain.UsuarioDto) { d.Email = "ana maria@x.com" }, domain.MsgEmailInvalido},
		{"email sem parte local", func(d *domain.UsuarioDto) { d.Email = "@x.com" }, domain.MsgEmailInvalido},
		{"senha vazia", func(d *domain.UsuarioDto) { d.Senha = "" }, domain.MsgSenhaObrigatoria},
		{"senha curta", func(d *domain.UsuarioDto) { d.Senha = "12345" }, domain.MsgSenhaMinima},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			dto := usuarioValido()
			caso.mutacao(&dto)

			err := validation.ValidarUsuario(dto)

			assert.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Equal(t, caso.mensagem, err.Error())
		})
	}
}

func TestValidarUsuario_SenhaComSeisCaracteres(t *testing.T) {
	dto := usuarioValido()
	dto.Senha = "123456"

	assert.NoError(t, validation.ValidarUsuario(dto))
}

func TestValidarUsuario_SenhaMinimaContaCaracteres(t *testing.T) {
	// "çãéíõú" tem 6 caracteres (12 bytes) e passa; 5 acentuados não.
	dto := usuarioValido()
	dto.Senha = "çãéíõú"
	assert.NoError(t, validation.ValidarUsuario(dto))

	dto.Senha = "çãéíõ"
	err := validation.ValidarUsuario(dto)
	assert.Error(t, err)
	assert.Equal(t, domain.MsgSenhaMinima, err.Error())
}

// --- Testes para ValidarLogin ---

func TestValidarLogin_ComDadosValidos(t *testing.T) {
	err := validation.ValidarLogin(domain.LoginDto{Email: "ana@x.com", Senha: "qualquer"})
	assert.NoError(t, err)
}

func TestValidarLogin_NaoChecaFormatoNemTamanho(t *testing.T) {
	// Diferente do registro, o login aceita email sem formato válido e
	// senha curta; só exige presença.
	err := validation.ValidarLogin(domain.LoginDto{Email: "nao-e-email", Senha: "x"})
	assert.NoError(t, err)
}

func TestValidarLogin_CamposObrigatorios(t *testing.T) {
	err := validation.ValidarLogin(domain.LoginDto{Email: "", Senha: "x"})
	assert.Error(t, err)
	assert.Equal(t, domain.MsgEmailObrigatorio, err.Error())

	err = validation.ValidarLogin(domain.LoginDto{Email: "ana@x.com", Senha: " "})
	assert.Error(t, err)
	assert.Equal(t, domain.MsgSenhaObrigatoria, err.Error())
}
