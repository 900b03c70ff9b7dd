package produtoservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
	"gomercado/internal/service/produtoservice"
)

// MockProdutoRepository é uma implementação mock da interface ProdutoRepository
type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) FindAll(ctx context.Context) ([]domain.ProdutoResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProdutoResponse), args.Error(1)
}

func (m *MockProdutoRepository) FindByID(ctx context.Context, id string) (domain.ProdutoResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ProdutoResponse), args.Error(1)
}

func (m *MockProdutoRepository) CodigoExiste(ctx context.Context, codigo string, idExcluir string) (bool, error) {
	args := m.Called(ctx, codigo, idExcluir)
	return args.Bool(0), args.Error(1)
}

func (m *MockProdutoRepository) Insert(ctx context.Context, id string, dto domain.ProdutoDto) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Update(ctx context.Context, id string, dto domain.ProdutoDto) error {
	args := m.Called(ctx, id, dto)
	return args.Error(0)
}

func (m *MockProdutoRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func dtoValido() domain.ProdutoDto {
	return domain.ProdutoDto{
		Codigo:             "P1",
		Descricao:          "Widget",
		DepartamentoCodigo: "010",
		Preco:              decimal.RequireFromString("9.99"),
		Status:             true,
	}
}

func respostaExistente(id string) domain.ProdutoResponse {
	return domain.ProdutoResponse{
		ID:                    id,
		Codigo:                "P1",
		Descricao:             "Widget",
		DepartamentoCodigo:    "010",
		DepartamentoDescricao: "BEBIDAS",
		Preco:                 decimal.RequireFromString("9.99"),
		Status:                true,
		DataCriacao:           time.Now().UTC(),
	}
}

// --- Testes para CreateProduto ---

func TestCreateProduto_Success(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("CodigoExiste", mock.Anything, "P1", "").Return(false, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("string"), dtoValido()).Return(nil)

	id, err := svc.CreateProduto(context.Background(), dtoValido())

	assert.NoError(t, err)
	// O ID é gerado pelo serviço, nunca fornecido pelo chamador.
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
	mockRepo.AssertExpectations(t)
}

func TestCreateProduto_Fail_Validacao(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	dto := dtoValido()
	dto.Preco = decimal.Zero

	_, err := svc.CreateProduto(context.Background(), dto)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, domain.MsgPrecoMinimo, err.Error())
	// Nenhuma chamada mutável acontece quando a validação falha.
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "CodigoExiste", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduto_Fail_CodigoJaExiste(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("CodigoExiste", mock.Anything, "P1", "").Return(true, nil)

	_, err := svc.CreateProduto(context.Background(), dtoValido())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, domain.MsgCodigoJaExiste, err.Error())
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduto_Fail_ConflitoNoInsert(t *testing.T) {
	// Corrida entre o pré-check e o INSERT: o índice único do banco
	// dispara e o repositório devolve o mesmo ConflictError do pré-check.
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("CodigoExiste", mock.Anything, "P1", "").Return(false, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("string"), dtoValido()).
		Return(apperror.NewConflictError(domain.MsgCodigoJaExiste))

	_, err := svc.CreateProduto(context.Background(), dtoValido())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateProduto_Fail_ErroDeRepositorioViraInterno(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	repoErr := errors.New("database connection lost")
	mockRepo.On("CodigoExiste", mock.Anything, "P1", "").Return(false, repoErr)

	_, err := svc.CreateProduto(context.Background(), dtoValido())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.ErrorIs(t, err, repoErr)
}

// --- Testes para UpdateProduto ---

func TestUpdateProduto_Success(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	dto := dtoValido()
	dto.Descricao = "Widget v2"

	mockRepo.On("FindByID", mock.Anything, id).Return(respostaExistente(id), nil)
	mockRepo.On("Update", mock.Anything, id, dto).Return(nil)

	err := svc.UpdateProduto(context.Background(), id, dto)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProduto_CodigoDoDtoEhIgnorado(t *testing.T) {
	// O código é imutável após a criação: mesmo que o DTO traga outro
	// código, a atualização segue com o código já gravado e sem
	// re-checagem de unicidade.
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	dto := dtoValido()
	dto.Codigo = "OUTRO-CODIGO"

	esperado := dto
	esperado.Codigo = "P1" // o código do produto existente

	mockRepo.On("FindByID", mock.Anything, id).Return(respostaExistente(id), nil)
	mockRepo.On("Update", mock.Anything, id, esperado).Return(nil)

	err := svc.UpdateProduto(context.Background(), id, dto)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "CodigoExiste", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProduto_Fail_NaoEncontrado(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	mockRepo.On("FindByID", mock.Anything, id).
		Return(domain.ProdutoResponse{}, apperror.NewNotFoundError(domain.MsgProdutoNaoEncontrado))

	err := svc.UpdateProduto(context.Background(), id, dtoValido())

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProduto_Fail_Validacao(t *testing.T) {
	// A checagem de existência vem antes da validação; com preço
	// inválido nada é escrito.
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	dto := dtoValido()
	dto.Descricao = "Widget v2"
	dto.Preco = decimal.RequireFromString("-1")

	mockRepo.On("FindByID", mock.Anything, id).Return(respostaExistente(id), nil)

	err := svc.UpdateProduto(context.Background(), id, dto)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, domain.MsgPrecoMinimo, err.Error())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProduto_Fail_IDInvalido(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	err := svc.UpdateProduto(context.Background(), "nao-e-uuid", dtoValido())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// --- Testes para DeleteProduto ---

func TestDeleteProduto_Success(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	mockRepo.On("FindByID", mock.Anything, id).Return(respostaExistente(id), nil)
	mockRepo.On("SoftDelete", mock.Anything, id).Return(nil)

	err := svc.DeleteProduto(context.Background(), id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteProduto_SegundaExclusaoEhNotFound(t *testing.T) {
	// A exclusão é terminal: depois da primeira, o produto não aparece
	// mais na busca e a segunda exclusão falha com NotFound.
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	mockRepo.On("FindByID", mock.Anything, id).Return(respostaExistente(id), nil).Once()
	mockRepo.On("SoftDelete", mock.Anything, id).Return(nil).Once()

	assert.NoError(t, svc.DeleteProduto(context.Background(), id))

	mockRepo.On("FindByID", mock.Anything, id).
		Return(domain.ProdutoResponse{}, apperror.NewNotFoundError(domain.MsgProdutoNaoEncontrado)).Once()

	err := svc.DeleteProduto(context.Background(), id)

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockRepo.AssertExpectations(t)
}

// --- Testes para ListProdutos e GetProdutoByID ---

func TestListProdutos_Success(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	esperados := []domain.ProdutoResponse{
		respostaExistente(uuid.NewString()),
		respostaExistente(uuid.NewString()),
	}
	mockRepo.On("FindAll", mock.Anything).Return(esperados, nil)

	produtos, err := svc.ListProdutos(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, esperados, produtos)
	mockRepo.AssertExpectations(t)
}

func TestListProdutos_Fail_ErroDeRepositorio(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindAll", mock.Anything).
		Return([]domain.ProdutoResponse{}, errors.New("database connection lost"))

	_, err := svc.ListProdutos(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestGetProdutoByID_Success(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	esperado := respostaExistente(id)
	mockRepo.On("FindByID", mock.Anything, id).Return(esperado, nil)

	produto, err := svc.GetProdutoByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, esperado, produto)
	// A descrição do departamento vem resolvida da leitura.
	assert.Equal(t, "BEBIDAS", produto.DepartamentoDescricao)
}

func TestGetProdutoByID_Fail_NaoEncontrado(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())
	id := uuid.NewString()

	mockRepo.On("FindByID", mock.Anything, id).
		Return(domain.ProdutoResponse{}, apperror.NewNotFoundError(domain.MsgProdutoNaoEncontrado))

	_, err := svc.GetProdutoByID(context.Background(), id)

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.Equal(t, domain.MsgProdutoNaoEncontrado, err.Error())
}

func TestGetProdutoByID_Fail_IDInvalido(t *testing.T) {
	mockRepo := new(MockProdutoRepository)
	svc := produtoservice.NewService(mockRepo, newTestLogger())

	_, err := svc.GetProdutoByID(context.Background(), "123")

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
