package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro internos, não expostos no corpo da resposta
const (
	ErrInvalidRequest    = "VAL_001" // Requisição inválida
	ErrNotFound          = "VAL_002" // Rota ou recurso inexistente
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrAnalytics         = "SRV_003" // Erro no cálculo de uma análise
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrNotFound:          http.StatusNotFound,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrAnalytics:         http.StatusInternalServerError,
}

// APIError é o corpo de erro consumido pelo dashboard: {"error": "..."}
type APIError struct {
	Error string `json:"error"`
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{Error: message})
}
