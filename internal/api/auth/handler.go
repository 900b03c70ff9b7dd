package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
)

// UsuarioService define o contrato que o Handler espera da camada de Serviço.
type UsuarioService interface {
	Register(ctx context.Context, dto domain.UsuarioDto) (domain.UsuarioResponse, error)
	Login(ctx context.Context, dto domain.LoginDto) (domain.LoginResponse, error)
	GetUsuarioByID(ctx context.Context, id string) (domain.UsuarioResponse, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UsuarioService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterHandler atende POST /v1/auth/register.
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var dto domain.UsuarioDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respond(w,nil, apperror.NewValidationError("Corpo da requisição inválido."), 0)
		return
	}

	usuario, err := h.Service.Register(r.Context(), dto)
	var body interface{}
	if err == nil {
		body = map[string]interface{}{"usuario": usuario, "message": domain.MsgUsuarioCriado}
	}
	h.respond(w,body, err, http.StatusCreated)
}

// LoginHandler atende POST /v1/auth/login.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	var dto domain.LoginDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.respond(w,nil, apperror.NewValidationError("Corpo da requisição inválido."), 0)
		return
	}

	resposta, err := h.Service.Login(r.Context(), dto)
	var body interface{}
	if err == nil {
		body = map[string]interface{}{"data": resposta, "message": domain.MsgLoginRealizado}
	}
	h.respond(w,body, err, http.StatusOK)
}

// UsuarioPorIDHandler atende GET /v1/auth/usuario/{id}.
func (h *Handler) UsuarioPorIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/auth/usuario/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	usuario, err := h.Service.GetUsuarioByID(r.Context(), id)
	if err != nil {
		h.respond(w,nil, err, 0)
		return
	}
	h.respond(w,usuario, nil, http.StatusOK)
}

// respond processa o resultado do serviço e envia a resposta padronizada.
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
		h.Logger.Error("Erro interno no serviço de usuário", err)
		message = domain.MsgErroInterno
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}
