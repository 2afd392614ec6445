package domain

// Unit define como um valor de métrica é interpretado e exibido
type Unit string

const (
	UnitCurrency   Unit = "currency"
	UnitPercentage Unit = "percentage"
	UnitCount      Unit = "count"
	UnitMultiplier Unit = "multiplier"
	UnitText       Unit = "text"
)

// Category agrupa as métricas para exibição no dashboard
type Category string

const (
	CategoryAlcance     Category = "alcance"
	CategoryEngajamento Category = "engajamento"
	CategoryCusto       Category = "custo"
	CategoryConversao   Category = "conversao"
	CategoryFinanceiro  Category = "financeiro"
	CategoryQualidade   Category = "qualidade"
)

// Values guarda os valores brutos e derivados de uma campanha, por chave de métrica
type Values map[string]float64

// Get retorna o valor da chave, ou zero quando ausente
func (v Values) Get(key string) float64 {
	return v[key]
}

// Formula calcula uma métrica a partir dos valores já disponíveis
type Formula func(values Values) float64

// MetricDefinition descreve uma métrica do catálogo
type MetricDefinition struct {
	Key       string
	Category  Category
	Unit      Unit
	DependsOn []string
	Formula   Formula
	// Raw indica que a métrica é lida diretamente de um campo da campanha
	Raw bool
}
