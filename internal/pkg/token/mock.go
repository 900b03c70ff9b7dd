package token

import (
	"encoding/base64"
	"fmt"
	"time"

	"gomercado/internal/domain"
)

// MockIssuer reproduz o token legado: id, email e o instante de
// emissão concatenados e codificados em base64, sem assinatura nem
// criptografia. O token é reversível e não carrega nenhuma garantia
// de integridade verificável pelo servidor; ele não deve ser tratado
// como prova de autorização. Dois logins do mesmo usuário em
// instantes diferentes produzem tokens diferentes.
type MockIssuer struct {
	Agora func() time.Time
}

// NewMockIssuer cria um MockIssuer usando o relógio do sistema.
func NewMockIssuer() *MockIssuer {
	return &MockIssuer{Agora: time.Now}
}

// EmitirToken gera o token base64("id:email:nanos").
func (i *MockIssuer) EmitirToken(usuario domain.UsuarioResponse) (string, error) {
	dados := fmt.Sprintf("%s:%s:%d", usuario.ID, usuario.Email, i.Agora().UTC().UnixNano())
	return base64.StdEncoding.EncodeToString([]byte(dados)), nil
}
