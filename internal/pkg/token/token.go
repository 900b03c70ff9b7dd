package token

import (
	"fmt"
	"time"

	"gomercado/internal/domain"
)

// Issuer é o contrato de emissão de token de sessão. O MockIssuer
// (padrão) e o JWTIssuer são estratégias intercambiáveis: trocar de
// uma para a outra não altera nenhum ponto de chamada do serviço.
type Issuer interface {
	EmitirToken(usuario domain.UsuarioResponse) (string, error)
}

// Modos de emissão de token disponíveis.
const (
	ModoMock = "mock"
	ModoJWT  = "jwt"
)

// NewIssuer cria o emissor correspondente ao modo configurado.
// O modo jwt exige uma chave secreta não vazia.
func NewIssuer(modo string, chaveSecreta string, expiracao time.Duration) (Issuer, error) {
	switch modo {
	case ModoMock, "":
		return NewMockIssuer(), nil
	case ModoJWT:
		if chaveSecreta == "" {
			return nil, fmt.Errorf("o modo de token jwt exige uma chave secreta")
		}
		return NewJWTIssuer(chaveSecreta, expiracao), nil
	default:
		return nil, fmt.Errorf("modo de token desconhecido: %q", modo)
	}
}
