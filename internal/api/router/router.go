package router

import (
	"net/http"
	"time"

	"gomercado/internal/api/auth"
	"gomercado/internal/api/departamento"
	"gomercado/internal/api/produto"
	"gomercado/internal/pkg/cache"
	"gomercado/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(
	produtoHandler *produto.Handler,
	authHandler *auth.Handler,
	departamentoHandler *departamento.Handler,
	cacheClient cache.Client,
	rateLimitMax int,
	rateLimitPeriod time.Duration,
) http.Handler {

	// Usamos o ServeMux padrão do net/http para roteamento
	mux := http.NewServeMux()

	// --- 1. Rota de Health Check ---
	mux.HandleFunc("/ping", PingHandler)

	// --- 2. Rotas do Módulo de Produtos (v1) ---
	mux.HandleFunc("/v1/produtos", produtoHandler.ProdutosHandler)
	mux.HandleFunc("/v1/produtos/", produtoHandler.ProdutoPorIDHandler)

	// --- 3. Rotas de Departamentos (dados de referência) ---
	mux.HandleFunc("/v1/departamentos", departamentoHandler.ListHandler)

	// --- 4. Rotas de Autenticação ---
	mux.HandleFunc("/v1/auth/register", authHandler.RegisterHandler)
	mux.HandleFunc("/v1/auth/login", authHandler.LoginHandler)
	mux.HandleFunc("/v1/auth/usuario/", authHandler.UsuarioPorIDHandler)

	// --- 5. Middlewares Globais ---
	return middleware.RateLimiter(cacheClient, rateLimitMax, rateLimitPeriod)(mux)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
