package produto

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
)

// ProdutoService define o contrato que o Handler espera da camada de Serviço.
type ProdutoService interface {
	ListProdutos(ctx context.Context) ([]domain.ProdutoResponse, error)
	GetProdutoByID(ctx context.Context, id string) (domain.ProdutoResponse, error)
	CreateProduto(ctx context.Context, dto domain.ProdutoDto) (string, error)
	UpdateProduto(ctx context.Context, id string, dto domain.ProdutoDto) error
	DeleteProduto(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProdutoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProdutoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ProdutosHandler atende a coleção: GET /v1/produtos e POST /v1/produtos.
func (h *Handler) ProdutosHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		produtos, err := h.Service.ListProdutos(r.Context())
		h.respond(w,produtos, err, http.StatusOK)

	case http.MethodPost:
		var dto domain.ProdutoDto
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.respond(w,nil, apperror.NewValidationError("Corpo da requisição inválido."), 0)
			return
		}

		id, err := h.Service.CreateProduto(r.Context(), dto)
		var body interface{}
		if err == nil {
			body = map[string]interface{}{"id": id, "message": domain.MsgProdutoCriado}
		}
		h.respond(w,body, err, http.StatusCreated)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// ProdutoPorIDHandler atende o item: GET, PUT e DELETE em /v1/produtos/{id}.
func (h *Handler) ProdutoPorIDHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/produtos/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		produto, err := h.Service.GetProdutoByID(r.Context(), id)
		if err != nil {
			h.respond(w,nil, err, 0)
			return
		}
		h.respond(w,produto, nil, http.StatusOK)

	case http.MethodPut:
		var dto domain.ProdutoDto
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.respond(w,nil, apperror.NewValidationError("Corpo da requisição inválido."), 0)
			return
		}

		err := h.Service.UpdateProduto(r.Context(), id, dto)
		var body interface{}
		if err == nil {
			body = map[string]interface{}{"message": domain.MsgProdutoAtualizado}
		}
		h.respond(w,body, err, http.StatusOK)

	case http.MethodDelete:
		err := h.Service.DeleteProduto(r.Context(), id)
		var body interface{}
		if err == nil {
			body = map[string]interface{}{"message": domain.MsgProdutoExcluido}
		}
		h.respond(w,body, err, http.StatusOK)

	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// respond processa o resultado do serviço e envia a resposta padronizada.
// Erros internos vão para o log com o detalhe; o cliente recebe só a
// mensagem genérica.
func (h *Handler) respond(w http.ResponseWriter, data interface{}, err error, successStatus int) {
	w.Header().Set("Content-Type", "application/json")

	if err == nil {
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de produto", err)
		message = domain.MsgErroInterno
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}
