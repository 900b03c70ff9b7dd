package produtorepo

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

// codigoUnicoViolado é o código de erro do PostgreSQL para violação de
// unicidade (unique_violation). O índice parcial sobre codigo fecha a
// janela entre o pré-check CodigoExiste e o INSERT: se duas criações
// concorrentes passarem pelo pré-check, a segunda falha aqui e é
// traduzida para o mesmo ConflictError.
const pqUniqueViolation = "23505"

// ProdutoRepository é a camada de acesso a dados de produto.
// Cada operação é uma única ida ao banco, com timeout próprio.
type ProdutoRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProdutoRepository cria uma nova instância do repositório, injetando o DB.
func NewProdutoRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ProdutoRepository {
	return &ProdutoRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// FindAll busca todos os produtos não excluídos, do mais recente para o
// mais antigo. A descrição do departamento é resolvida na leitura.
func (r *ProdutoRepository) FindAll(ctx context.Context) ([]domain.ProdutoResponse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, codigo, descricao, departamento_codigo, preco, status, data_criacao
		FROM produto
		WHERE excluido = false
		ORDER BY data_criacao DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewDBError("failed to list produtos", err)
	}
	defer rows.Close()

	produtos := []domain.ProdutoResponse{}
	for rows.Next() {
		var p domain.ProdutoResponse
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descricao, &p.DepartamentoCodigo, &p.Preco, &p.Status, &p.DataCriacao); err != nil {
			r.logger.Error("Falha ao mapear produto.", err)
			return nil, apperror.NewDBError("failed to scan produto", err)
		}
		p.DepartamentoDescricao = domain.DepartamentoDescricao(p.DepartamentoCodigo)
		produtos = append(produtos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate produtos", err)
	}

	return produtos, nil
}

// FindByID busca um produto não excluído pelo ID.
func (r *ProdutoRepository) FindByID(ctx context.Context, id string) (domain.ProdutoResponse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, codigo, descricao, departamento_codigo, preco, status, data_criacao
		FROM produto
		WHERE id = $1 AND excluido = false`

	var p domain.ProdutoResponse
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&p.ID,
		&p.Codigo,
		&p.Descricao,
		&p.DepartamentoCodigo,
		&p.Preco,
		&p.Status,
		&p.DataCriacao,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// Produtos excluídos logicamente caem aqui: para as leituras
		// eles não existem mais.
		return domain.ProdutoResponse{}, apperror.NewNotFoundError(domain.MsgProdutoNaoEncontrado)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.ProdutoResponse{}, apperror.NewDBError("failed to find produto", err)
	}

	p.DepartamentoDescricao = domain.DepartamentoDescricao(p.DepartamentoCodigo)
	return p, nil
}

// CodigoExiste verifica se já existe um produto não excluído com o
// código informado. idExcluir, quando não vazio, exclui um ID da
// verificação (usado na atualização, para o produto manter o próprio código).
func (r *ProdutoRepository) CodigoExiste(ctx context.Context, codigo string, idExcluir string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT COUNT(1) FROM produto WHERE codigo = $1 AND excluido = false`
	args := []interface{}{codigo}
	if idExcluir != "" {
		query += ` AND id != $2`
		args = append(args, idExcluir)
	}

	var count int
	if err := r.DB.QueryRowContext(ctxTimeout, query, args...).Scan(&count); err != nil {
		r.logger.Error("Falha ao verificar código de produto no DB.", err)
		return false, apperror.NewDBError("failed to check codigo", err)
	}

	return count > 0, nil
}

// Insert persiste um novo produto. O data_criacao é definido aqui,
// nunca pelo chamador.
func (r *ProdutoRepository) Insert(ctx context.Context, id string, dto domain.ProdutoDto) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		INSERT INTO produto (id, codigo, descricao, departamento_codigo, preco, status, data_criacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		id,
		dto.Codigo,
		dto.Descricao,
		dto.DepartamentoCodigo,
		dto.Preco,
		dto.Status,
		time.Now().UTC(),
	)

	if err != nil {
		if ehViolacaoDeUnicidade(err) {
			return apperror.NewConflictError(domain.MsgCodigoJaExiste)
		}
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return apperror.NewDBError("failed to insert produto", err)
	}

	return nil
}

// Update atualiza descrição, departamento, preço e status de um produto
// não excluído. O código é imutável e não é tocado. O data_atualizacao
// é definido aqui.
func (r *ProdutoRepository) Update(ctx context.Context, id string, dto domain.ProdutoDto) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		UPDATE produto
		SET descricao = $2,
		    departamento_codigo = $3,
		    preco = $4,
		    status = $5,
		    data_atualizacao = $6
		WHERE id = $1 AND excluido = false`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		id,
		dto.Descricao,
		dto.DepartamentoCodigo,
		dto.Preco,
		dto.Status,
		time.Now().UTC(),
	)

	if err != nil {
		r.logger.Error("Falha ao atualizar produto no DB.", err)
		return apperror.NewDBError("failed to update produto", err)
	}

	return nil
}

// SoftDelete marca um produto como excluído, registrando o instante.
// A linha nunca é removida fisicamente.
func (r *ProdutoRepository) SoftDelete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `UPDATE produto SET excluido = true, data_exclusao = $2 WHERE id = $1`

	_, err := r.DB.ExecContext(ctxTimeout, query, id, time.Now().UTC())
	if err != nil {
		r.logger.Error("Falha ao excluir produto no DB.", err)
		return apperror.NewDBError("failed to delete produto", err)
	}

	return nil
}

// ehViolacaoDeUnicidade identifica o erro de índice único do PostgreSQL.
func ehViolacaoDeUnicidade(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
