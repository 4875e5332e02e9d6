package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrQueryFailed = errors.New("falha ao consultar o armazenamento")
	ErrInvalidAsOf = errors.New("data de referência não informada")
)

// AnalysisError identifica a operação de análise que falhou
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func newAnalysisError(op string, err error) *AnalysisError {
	return &AnalysisError{
		Op:  op,
		Err: err,
	}
}
