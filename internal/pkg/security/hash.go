package security

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher é o contrato de hashing de senha. Um esquema determinístico
// produz sempre o mesmo digest para a mesma senha, o que permite que o
// login seja resolvido por igualdade exata direto na query do banco.
// Esquemas não determinísticos (bcrypt) exigem a verificação no serviço.
type Hasher interface {
	Hash(senha string) (string, error)
	Verificar(senha string, digest string) bool
	Deterministico() bool
}

// Esquemas de hash disponíveis.
const (
	EsquemaSHA256 = "sha256"
	EsquemaBcrypt = "bcrypt"
)

// PrefixoBcrypt marca digests gerados pelo esquema bcrypt, permitindo
// que os dois formatos coexistam durante uma migração.
const PrefixoBcrypt = "bcrypt$"

// NewHasher cria o Hasher correspondente ao esquema configurado.
func NewHasher(esquema string) (Hasher, error) {
	switch esquema {
	case EsquemaSHA256, "":
		return SHA256Hasher{}, nil
	case EsquemaBcrypt:
		return NewBcryptHasher(), nil
	default:
		return nil, fmt.Errorf("esquema de hash desconhecido: %q", esquema)
	}
}

// --- Esquema legado: SHA-256 sem salt ---

// SHA256Hasher implementa o esquema legado: SHA-256 sobre os bytes
// UTF-8 da senha, codificado em base64. Sem salt e com uma única
// rodada, o esquema é fraco contra ataques de dicionário; é mantido
// por compatibilidade com os digests já gravados no banco.
type SHA256Hasher struct{}

// HashSHA256 calcula o digest legado de uma senha.
func HashSHA256(senha string) string {
	soma := sha256.Sum256([]byte(senha))
	return base64.StdEncoding.EncodeToString(soma[:])
}

func (SHA256Hasher) Hash(senha string) (string, error) {
	return HashSHA256(senha), nil
}

// Verificar recalcula o digest e compara por igualdade. Senha ou
// digest vazios nunca verificam.
func (SHA256Hasher) Verificar(senha string, digest string) bool {
	if senha == "" || digest == "" {
		return false
	}
	return HashSHA256(senha) == digest
}

func (SHA256Hasher) Deterministico() bool { return true }

// --- Esquema versionado: bcrypt ---

// BcryptHasher implementa o esquema endurecido, com salt e custo
// iterado. O digest recebe o prefixo "bcrypt$" para ser distinguível
// dos digests legados.
type BcryptHasher struct {
	Custo int
}

// NewBcryptHasher cria um BcryptHasher com o custo padrão da biblioteca.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{Custo: bcrypt.DefaultCost}
}

func (h BcryptHasher) Hash(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), h.Custo)
	if err != nil {
		return "", err
	}
	return PrefixoBcrypt + string(hash), nil
}

func (h BcryptHasher) Verificar(senha string, digest string) bool {
	if senha == "" || digest == "" {
		return false
	}
	bruto, ok := strings.CutPrefix(digest, PrefixoBcrypt)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(bruto), []byte(senha)) == nil
}

func (BcryptHasher) Deterministico() bool { return false }

// VerificarDigest verifica uma senha contra um digest de qualquer um
// dos formatos, escolhendo o esquema pelo prefixo do digest.
func VerificarDigest(senha string, digest string) bool {
	if strings.HasPrefix(digest, PrefixoBcrypt) {
		return BcryptHasher{}.Verificar(senha, digest)
	}
	return SHA256Hasher{}.Verificar(senha, digest)
}
