// Package seed carrega as fixtures JSON no armazenamento na inicialização
package seed

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type Seeder struct {
	records repository.RecordRepository
}

func NewSeeder(records repository.RecordRepository) *Seeder {
	return &Seeder{
		records: records,
	}
}

// Seed grava as fixtures de dir somente se a tabela de contas estiver vazia.
// Retorna true quando os dados foram gravados nesta chamada.
func (s *Seeder) Seed(ctx context.Context, dir string) (bool, error) {
	logger := log.ForContext(ctx).WithOperation("seed")

	counts, err := s.records.Counts(ctx)
	if err != nil {
		return false, errors.Wrap(err, "seed: erro ao verificar registros existentes")
	}

	if counts.Accounts > 0 {
		logger.Infof("Banco já populado (%d contas), seed ignorado", counts.Accounts)
		return false, nil
	}

	logger.Infof("Carregando dados de seed de: %s", dir)

	records, err := LoadFixtures(dir)
	if err != nil {
		return false, errors.Wrap(err, "seed: fixtures inválidas")
	}

	logger.Infof("Carregados: %d contas, %d vendedores, %d negócios, %d atividades, %d metas",
		len(records.Accounts), len(records.Reps), len(records.Deals), len(records.Activities), len(records.Targets))

	if err := s.records.InsertAll(ctx, records); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			logger.WithFields(log.Fields{
				"pq_code":       string(pqErr.Code),
				"pq_constraint": pqErr.Constraint,
			}).Error("Erro do Postgres durante o seed")
		}
		return false, errors.Wrap(err, "seed: erro ao gravar registros")
	}

	logger.Info("Seed concluído com sucesso")
	return true, nil
}
