package departamento

import (
	"encoding/json"
	"net/http"

	"gomercado/internal/domain"
	"gomercado/internal/pkg/logger"
)

// Handler atende as rotas de departamento. Os departamentos são dados
// de referência fixos, então não há serviço nem repositório envolvidos.
type Handler struct {
	Logger logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(log logger.Logger) *Handler {
	return &Handler{Logger: log}
}

// ListHandler atende GET /v1/departamentos.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.Departamentos()); err != nil {
		h.Logger.Error("Falha ao codificar JSON de resposta", err)
	}
}
