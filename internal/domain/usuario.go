package domain

import "time"

// Usuario representa a conta registrada no sistema.
type Usuario struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	SenhaHash   string    `json:"-"` // Nunca serializado em respostas
	DataCriacao time.Time `json:"dataCriacao"`
	Excluido    bool      `json:"-"`
}

// UsuarioDto é o payload de entrada para o registro de usuário.
type UsuarioDto struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginDto é o payload de entrada para o login.
type LoginDto struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse é a forma de saída de usuário, sem o hash da senha.
type UsuarioResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	DataCriacao time.Time `json:"dataCriacao"`
}

// UsuarioCredenciais carrega o hash da senha junto aos dados públicos.
// É usado apenas pelo fluxo de login com esquema de hash não
// determinístico, onde a verificação acontece na camada de serviço.
type UsuarioCredenciais struct {
	ID          string
	Nome        string
	Email       string
	SenhaHash   string
	DataCriacao time.Time
}

// Response converte as credenciais para a forma pública de saída.
func (c UsuarioCredenciais) Response() UsuarioResponse {
	return UsuarioResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		DataCriacao: c.DataCriacao,
	}
}

// LoginResponse é a resposta de um login bem-sucedido.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
