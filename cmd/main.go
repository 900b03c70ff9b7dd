package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"gomercado/config"
	"gomercado/internal/pkg/cache"
	"gomercado/internal/pkg/database"
	"gomercado/internal/pkg/logger"
	"gomercado/internal/pkg/security"
	"gomercado/internal/pkg/token"

	"gomercado/internal/api/auth"
	"gomercado/internal/api/departamento"
	"gomercado/internal/api/produto"
	"gomercado/internal/api/router"
	"gomercado/internal/repository/produtorepo"
	"gomercado/internal/repository/usuariorepo"
	"gomercado/internal/service/produtoservice"
	"gomercado/internal/service/usuarioservice"
)

func main() {
	log.Println("⚡ Inicializando serviço GoMercado...")

	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// Se o arquivo .env não for encontrado, avisamos, mas continuamos,
		// pois as variáveis essenciais podem estar no ambiente do sistema.
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", nil)

	// Preços serializam como número JSON, como no schema da API.
	decimal.MarshalJSONWithoutQuotes = true

	// 1. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	logg.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis) — somente rate limiting; entidades nunca passam por aqui.
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	logg.Info("Cliente Redis inicializado.", nil)

	// 2. Estratégias de Segurança (hash de senha e emissão de token)
	hasher, err := security.NewHasher(cfg.HashScheme)
	if err != nil {
		logg.Fatal("Esquema de hash inválido na configuração.", err)
	}

	issuer, err := token.NewIssuer(cfg.TokenMode, cfg.TokenSecret, cfg.TokenExpiry)
	if err != nil {
		logg.Fatal("Modo de token inválido na configuração.", err)
	}
	logg.Debug("Estratégias de hash e token inicializadas.", map[string]interface{}{
		"hash_scheme": cfg.HashScheme,
		"token_mode":  cfg.TokenMode,
	})

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Repository -> Service -> Handler)

	produtoRepo := produtorepo.NewProdutoRepository(db, cfg.DBTimeout, logg)
	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, logg)

	produtoSvc := produtoservice.NewService(produtoRepo, logg)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, hasher, issuer, logg)

	produtoHandler := produto.NewHandler(produtoSvc, logg)
	authHandler := auth.NewHandler(usuarioSvc, logg)
	departamentoHandler := departamento.NewHandler(logg)
	logg.Debug("Camadas de produto, usuário e departamento inicializadas.", nil)

	// 4. Configuração e Início do Roteador/Servidor

	r := router.NewRouter(produtoHandler, authHandler, departamentoHandler,
		cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor GoMercado ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}

	logg.Info("Servidor encerrado com sucesso.", nil)
}
