package domain

// Target é a meta de receita de um mês no formato yyyy-mm
type Target struct {
	Month  string  `json:"month" db:"month"`
	Target float64 `json:"target" db:"target"`
}

// RecordSet agrupa todas as tabelas carregadas a partir das fixtures
type RecordSet struct {
	Accounts   []Account
	Reps       []Rep
	Deals      []Deal
	Activities []Activity
	Targets    []Target
}

// RecordCounts guarda a quantidade de linhas de cada tabela
type RecordCounts struct {
	Accounts   int `json:"accounts" db:"accounts"`
	Reps       int `json:"reps" db:"reps"`
	Deals      int `json:"deals" db:"deals"`
	Activities int `json:"activities" db:"activities"`
	Targets    int `json:"targets" db:"targets"`
}
