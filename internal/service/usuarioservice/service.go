package usuarioservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gomercado/internal/domain"
	apperror "gomercado/internal/errors"
	"gomercado/internal/pkg/logger"
	"gomercado/internal/pkg/security"
	"gomercado/internal/pkg/token"
	"gomercado/internal/validation"
)

// UsuarioRepository define o contrato que o Serviço de Usuários espera
// da camada de Persistência.
type UsuarioRepository interface {
	EmailExiste(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, id string, nome string, email string, senhaHash string) (time.Time, error)
	FindByID(ctx context.Context, id string) (domain.UsuarioResponse, error)
	FindByEmailESenha(ctx context.Context, email string, senhaHash string) (domain.UsuarioResponse, error)
	FindCredenciaisByEmail(ctx context.Context, email string) (domain.UsuarioCredenciais, error)
}

// Service orquestra os casos de uso de registro e login.
type Service struct {
	repo   UsuarioRepository
	hasher security.Hasher
	issuer token.Issuer
	logger logger.Logger
}

// NewService cria uma nova instância do Serviço de Usuários, injetando
// o repositório e as estratégias de hash e de token.
func NewService(repo UsuarioRepository, hasher security.Hasher, issuer token.Issuer, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		logger: logger,
	}
}

// Register registra um novo usuário: valida, checa unicidade do email,
// gera o hash da senha e persiste. A resposta nunca carrega o hash.
func (s *Service) Register(ctx context.Context, dto domain.UsuarioDto) (domain.UsuarioResponse, error) {
	s.logger.Debug("Iniciando registro de usuário no serviço.", map[string]interface{}{"email": dto.Email})

	if err := validation.ValidarUsuario(dto); err != nil {
		s.logger.Warn("Falha na validação do registro.", map[string]interface{}{"email": dto.Email, "error": err.Error()})
		return domain.UsuarioResponse{}, err
	}

	existe, err := s.repo.EmailExiste(ctx, dto.Email)
	if err != nil {
		s.logger.Error("Falha ao verificar email.", err)
		return domain.UsuarioResponse{}, s.remap(err)
	}
	if existe {
		return domain.UsuarioResponse{}, apperror.NewConflictError(domain.MsgEmailJaExiste)
	}

	senhaHash, err := s.hasher.Hash(dto.Senha)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return domain.UsuarioResponse{}, apperror.NewInternalError(domain.MsgErroInterno, err)
	}

	id := uuid.NewString()
	dataCriacao, err := s.repo.Insert(ctx, id, dto.Nome, dto.Email, senhaHash)
	if err != nil {
		s.logger.Error("Falha ao inserir usuário no repositório.", err)
		return domain.UsuarioResponse{}, s.remap(err)
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"id": id, "email": dto.Email})
	return domain.UsuarioResponse{
		ID:          id,
		Nome:        dto.Nome,
		Email:       dto.Email,
		DataCriacao: dataCriacao,
	}, nil
}

// Login autentica um usuário e emite o token de sessão. Qualquer
// falha de credencial (email inexistente ou senha errada) produz a
// mesma mensagem genérica, sem revelar qual das duas ocorreu.
func (s *Service) Login(ctx context.Context, dto domain.LoginDto) (domain.LoginResponse, error) {
	if err := validation.ValidarLogin(dto); err != nil {
		return domain.LoginResponse{}, err
	}

	usuario, err := s.autenticar(ctx, dto)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	tokenString, err := s.issuer.EmitirToken(usuario)
	if err != nil {
		s.logger.Error("Falha ao emitir token de sessão.", err)
		return domain.LoginResponse{}, apperror.NewInternalError(domain.MsgErroInterno, err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"id": usuario.ID})
	return domain.LoginResponse{Token: tokenString, Usuario: usuario}, nil
}

// autenticar resolve as credenciais conforme o esquema de hash. Com
// esquema determinístico a igualdade é resolvida na própria query;
// caso contrário o hash gravado é trazido e verificado aqui.
func (s *Service) autenticar(ctx context.Context, dto domain.LoginDto) (domain.UsuarioResponse, error) {
	if s.hasher.Deterministico() {
		senhaHash, err := s.hasher.Hash(dto.Senha)
		if err != nil {
			return domain.UsuarioResponse{}, apperror.NewInternalError(domain.MsgErroInterno, err)
		}

		usuario, err := s.repo.FindByEmailESenha(ctx, dto.Email, senhaHash)
		if err != nil {
			return domain.UsuarioResponse{}, s.credenciaisInvalidas(err)
		}
		return usuario, nil
	}

	credenciais, err := s.repo.FindCredenciaisByEmail(ctx, dto.Email)
	if err != nil {
		return domain.UsuarioResponse{}, s.credenciaisInvalidas(err)
	}
	if !s.hasher.Verificar(dto.Senha, credenciais.SenhaHash) {
		return domain.UsuarioResponse{}, apperror.NewValidationError(domain.MsgCredenciaisInvalidas)
	}

	return credenciais.Response(), nil
}

// credenciaisInvalidas converte um NotFound do repositório na mensagem
// genérica de login; outras falhas seguem como erro interno.
func (s *Service) credenciaisInvalidas(err error) error {
	var notFound *apperror.NotFoundError
	if errors.As(err, &notFound) {
		return apperror.NewValidationError(domain.MsgCredenciaisInvalidas)
	}
	s.logger.Error("Falha ao buscar usuário para login.", err)
	return s.remap(err)
}

// GetUsuarioByID busca um usuário pelo ID, sem o hash da senha.
func (s *Service) GetUsuarioByID(ctx context.Context, id string) (domain.UsuarioResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.UsuarioResponse{}, apperror.NewValidationError("O ID do usuário deve ser um UUID válido.")
	}

	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UsuarioResponse{}, s.remap(err)
	}

	return usuario, nil
}

// remap garante que nenhuma falha do repositório escape sem categoria.
func (s *Service) remap(err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(domain.MsgErroInterno, err)
}
