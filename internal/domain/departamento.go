package domain

// Departamento é a classificação fixa de produtos. É dado de
// referência somente-leitura: a tabela vive no código, não no banco.
type Departamento struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// Códigos dos departamentos.
const (
	DepartamentoBebidas    = "010"
	DepartamentoCongelados = "020"
	DepartamentoLaticinios = "030"
	DepartamentoVegetais   = "040"
)

// DepartamentoNaoDefinido é a descrição exibida para códigos desconhecidos.
const DepartamentoNaoDefinido = "NÃO DEFINIDO"

// Departamentos retorna a tabela completa, na ordem dos códigos.
func Departamentos() []Departamento {
	return []Departamento{
		{Codigo: DepartamentoBebidas, Descricao: "BEBIDAS"},
		{Codigo: DepartamentoCongelados, Descricao: "CONGELADOS"},
		{Codigo: DepartamentoLaticinios, Descricao: "LATICINIOS"},
		{Codigo: DepartamentoVegetais, Descricao: "VEGETAIS"},
	}
}

// DepartamentoDescricao resolve a descrição de um código de departamento.
func DepartamentoDescricao(codigo string) string {
	switch codigo {
	case DepartamentoBebidas:
		return "BEBIDAS"
	case DepartamentoCongelados:
		return "CONGELADOS"
	case DepartamentoLaticinios:
		return "LATICINIOS"
	case DepartamentoVegetais:
		return "VEGETAIS"
	default:
		return DepartamentoNaoDefinido
	}
}
