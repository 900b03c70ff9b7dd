package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
)

const pqUniqueViolation = "23505"

// UsuarioRepository é a camada de acesso a dados de usuário.
type UsuarioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUsuarioRepository cria uma nova instância do repositório, injetando o DB.
func NewUsuarioRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// EmailExiste verifica se já existe um usuário não excluído com o email
// informado. A comparação é por igualdade exata, sem normalização de caixa.
func (r *UsuarioRepository) EmailExiste(ctx context.Context, email string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT COUNT(1) FROM usuario WHERE email = $1 AND excluido = false`

	var count int
	if err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(&count); err != nil {
		r.logger.Error("Falha ao verificar email no DB.", err)
		return false, apperror.NewDBError("failed to check email", err)
	}

	return count > 0, nil
}

// Insert persiste um novo usuário e retorna o instante de criação,
// definido aqui e não pelo chamador.
func (r *UsuarioRepository) Insert(ctx context.Context, id string, nome string, email string, senhaHash string) (time.Time, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		INSERT INTO usuario (id, nome, email, senha_hash, data_criacao)
		VALUES ($1, $2, $3, $4, $5)`

	dataCriacao := time.Now().UTC()
	_, err := r.DB.ExecContext(ctxTimeout, query, id, nome, email, senhaHash, dataCriacao)

	if err != nil {
		// O índice parcial sobre email fecha a janela entre o
		// pré-check EmailExiste e o INSERT.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return time.Time{}, apperror.NewConflictError(domain.MsgEmailJaExiste)
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return time.Time{}, apperror.NewDBError("failed to insert usuario", err)
	}

	return dataCriacao, nil
}

// FindByID busca um usuário não excluído pelo ID, sem o hash da senha.
func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (domain.UsuarioResponse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, nome, email, data_criacao
		FROM usuario
		WHERE id = $1 AND excluido = false`

	var u domain.UsuarioResponse
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&u.ID, &u.Nome, &u.Email, &u.DataCriacao)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.UsuarioResponse{}, apperror.NewNotFoundError(domain.MsgUsuarioNaoEncontrado)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário por ID no DB.", err)
		return domain.UsuarioResponse{}, apperror.NewDBError("failed to find usuario", err)
	}

	return u, nil
}

// FindByEmailESenha busca um usuário não excluído pelo par email e hash
// de senha, por igualdade exata. O hash recebido já é o hash da senha
// tentada, calculado pela camada de serviço.
func (r *UsuarioRepository) FindByEmailESenha(ctx context.Context, email string, senhaHash string) (domain.UsuarioResponse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, nome, email, data_criacao
		FROM usuario
		WHERE email = $1 AND senha_hash = $2 AND excluido = false`

	var u domain.UsuarioResponse
	err := r.DB.QueryRowContext(ctxTimeout, query, email, senhaHash).Scan(&u.ID, &u.Nome, &u.Email, &u.DataCriacao)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.UsuarioResponse{}, apperror.NewNotFoundError(domain.MsgUsuarioNaoEncontrado)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário por email e senha no DB.", err)
		return domain.UsuarioResponse{}, apperror.NewDBError("failed to find usuario by email/senha", err)
	}

	return u, nil
}

// FindCredenciaisByEmail busca um usuário não excluído pelo email,
// incluindo o hash da senha. Usado pelo fluxo de login com esquema de
// hash não determinístico, onde a verificação acontece no serviço.
func (r *UsuarioRepository) FindCredenciaisByEmail(ctx context.Context, email string) (domain.UsuarioCredenciais, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, nome, email, senha_hash, data_criacao
		FROM usuario
		WHERE email = $1 AND excluido = false`

	var c domain.UsuarioCredenciais
	err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(&c.ID, &c.Nome, &c.Email, &c.SenhaHash, &c.DataCriacao)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.UsuarioCredenciais{}, apperror.NewNotFoundError(domain.MsgUsuarioNaoEncontrado)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar credenciais por email no DB.", err)
		return domain.UsuarioCredenciais{}, apperror.NewDBError("failed to find credenciais", err)
	}

	return c, nil
}
