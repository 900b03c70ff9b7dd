package produtoservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
	"gomercado/internal/validation"
)

// ProdutoRepository define o contrato que o Serviço de Produtos espera
// da camada de Persistência.
type ProdutoRepository interface {
	FindAll(ctx context.Context) ([]domain.ProdutoResponse, error)
	FindByID(ctx context.Context, id string) (domain.ProdutoResponse, error)
	CodigoExiste(ctx context.Context, codigo string, idExcluir string) (bool, error)
	Insert(ctx context.Context, id string, dto domain.ProdutoDto) error
	Update(ctx context.Context, id string, dto domain.ProdutoDto) error
	SoftDelete(ctx context.Context, id string) error
}

// Service orquestra validadores e repositório nos casos de uso de
// produto. Toda checagem (validação, conflito, existência) acontece
// antes da única chamada mutável de cada caso de uso.
type Service struct {
	repo   ProdutoRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produtos.
func NewService(repo ProdutoRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListProdutos busca todos os produtos ativos (não excluídos).
func (s *Service) ListProdutos(ctx context.Context) ([]domain.ProdutoResponse, error) {
	produtos, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar produtos no repositório.", err)
		return nil, s.remap(err)
	}

	return produtos, nil
}

// GetProdutoByID busca um produto pelo ID.
func (s *Service) GetProdutoByID(ctx context.Context, id string) (domain.ProdutoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ProdutoResponse{}, apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}

	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ProdutoResponse{}, s.remap(err)
	}

	return produto, nil
}

// CreateProduto valida o payload, garante a unicidade do código e
// persiste um novo produto. Retorna o ID gerado.
func (s *Service) CreateProduto(ctx context.Context, dto domain.ProdutoDto) (string, error) {
	s.logger.Debug("Iniciando criação de produto no serviço.", map[string]interface{}{"codigo": dto.Codigo})

	if err := validation.ValidarProduto(dto); err != nil {
		s.logger.Warn("Falha na validação do produto.", map[string]interface{}{"codigo": dto.Codigo, "error": err.Error()})
		return "", err
	}

	existe, err := s.repo.CodigoExiste(ctx, dto.Codigo, "")
	if err != nil {
		s.logger.Error("Falha ao verificar código de produto.", err)
		return "", s.remap(err)
	}
	if existe {
		return "", apperror.NewConflictError(domain.MsgCodigoJaExiste)
	}

	id := uuid.NewString()
	if err := s.repo.Insert(ctx, id, dto); err != nil {
		s.logger.Error("Falha ao inserir produto no repositório.", err)
		return "", s.remap(err)
	}

	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": id, "codigo": dto.Codigo})
	return id, nil
}

// UpdateProduto atualiza um produto existente. O código do DTO é
// ignorado: o código é imutável após a criação, então não há
// re-checagem de unicidade aqui.
func (s *Service) UpdateProduto(ctx context.Context, id string, dto domain.ProdutoDto) error {
	s.logger.Debug("Iniciando atualização de produto no serviço.", map[string]interface{}{"id": id})

	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}

	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.remap(err)
	}

	// A validação corre sobre o código já gravado, não sobre o do DTO.
	dto.Codigo = existente.Codigo
	if err := validation.ValidarProduto(dto); err != nil {
		s.logger.Warn("Falha na validação do produto para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return err
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		s.logger.Error("Falha ao atualizar produto no repositório.", err)
		return s.remap(err)
	}

	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// DeleteProduto exclui logicamente um produto. A exclusão é terminal:
// uma segunda exclusão do mesmo ID resulta em NotFoundError, porque o
// produto já não aparece na busca de existência.
func (s *Service) DeleteProduto(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de produto no serviço.", map[string]interface{}{"id": id})

	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do produto deve ser um UUID válido.")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return s.remap(err)
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.logger.Error("Falha ao excluir produto no repositório.", err)
		return s.remap(err)
	}

	s.logger.Info("Produto excluído com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// remap garante que nenhuma falha do repositório escape sem categoria:
// erros já tipados passam adiante, o resto vira InternalError.
func (s *Service) remap(err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(domain.MsgErroInterno, err)
}
