package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gomercado/internal/domain"
)

// CustomClaims define as informações armazenadas no JWT.
// É obrigatório incorporar jwt.RegisteredClaims.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer é a estratégia assinada: emite um JWT HS256 com as claims
// do usuário. Substitui o MockIssuer sem mudança nos pontos de chamada.
type JWTIssuer struct {
	chaveSecreta []byte
	expiracao    time.Duration
}

// NewJWTIssuer cria um novo emissor de JWT assinado.
func NewJWTIssuer(chaveSecreta string, expiracao time.Duration) *JWTIssuer {
	return &JWTIssuer{
		chaveSecreta: []byte(chaveSecreta),
		expiracao:    expiracao,
	}
}

// EmitirToken cria um novo JWT assinado contendo o ID, nome e email do usuário.
func (s *JWTIssuer) EmitirToken(usuario domain.UsuarioResponse) (string, error) {
	agora := time.Now()
	claims := CustomClaims{
		UserID: usuario.ID,
		Nome:   usuario.Nome,
		Email:  usuario.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(agora.Add(s.expiracao)),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora),
			Issuer:    "GoMercado-API",
			Subject:   usuario.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Assina o token com a chave secreta
	tokenString, err := token.SignedString(s.chaveSecreta)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidarToken valida o token string e retorna as claims se for válido.
func (s *JWTIssuer) ValidarToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verifica se o método de assinatura é o esperado (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.chaveSecreta, nil
	})

	if err != nil {
		// Trata erros comuns de JWT, como token expirado ou inválido
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}

	return claims, nil
}
