package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa o item do catálogo (a Entidade).
// A exclusão é sempre lógica: a linha permanece no banco com a
// marcação Excluido e nunca volta a aparecer nas leituras.
type Produto struct {
	ID                 string          `json:"id"`
	Codigo             string          `json:"codigo"`
	Descricao          string          `json:"descricao"`
	DepartamentoCodigo string          `json:"departamentoCodigo"`
	Preco              decimal.Decimal `json:"preco"`
	Status             bool            `json:"status"`
	DataCriacao        time.Time       `json:"dataCriacao"`
	DataAtualizacao    *time.Time      `json:"dataAtualizacao,omitempty"`
	Excluido           bool            `json:"-"`
	DataExclusao       *time.Time      `json:"-"`
}

// ProdutoDto é o payload de entrada para criação e atualização de produto.
// O Codigo é imutável após a criação: na atualização o campo é ignorado.
type ProdutoDto struct {
	Codigo             string          `json:"codigo"`
	Descricao          string          `json:"descricao"`
	DepartamentoCodigo string          `json:"departamentoCodigo"`
	Preco              decimal.Decimal `json:"preco"`
	Status             bool            `json:"status"`
}

// ProdutoResponse é a forma de saída de produto, com a descrição do
// departamento resolvida no momento da leitura (nunca armazenada).
type ProdutoResponse struct {
	ID                    string          `json:"id"`
	Codigo                string          `json:"codigo"`
	Descricao             string          `json:"descricao"`
	DepartamentoCodigo    string          `json:"departamentoCodigo"`
	DepartamentoDescricao string          `json:"departamentoDescricao"`
	Preco                 decimal.Decimal `json:"preco"`
	Status                bool            `json:"status"`
	DataCriacao           time.Time       `json:"dataCriacao"`
}
