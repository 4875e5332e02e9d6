package seed

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const (
	AccountsFile   = "accounts.json"
	RepsFile       = "reps.json"
	DealsFile      = "deals.json"
	ActivitiesFile = "activities.json"
	TargetsFile    = "targets.json"
)

// ErrSeedDataNotFound indica que nenhum diretório candidato contém as fixtures
var ErrSeedDataNotFound = errors.New("diretório de seed não encontrado")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type accountFixture struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Segment   string `json:"segment"`
}

type repFixture struct {
	RepID string `json:"rep_id"`
	Name  string `json:"name"`
}

type dealFixture struct {
	DealID    string   `json:"deal_id"`
	AccountID string   `json:"account_id"`
	RepID     string   `json:"rep_id"`
	Stage     string   `json:"stage"`
	Amount    *float64 `json:"amount"`
	CreatedAt string   `json:"created_at"`
	ClosedAt  *string  `json:"closed_at"`
}

type activityFixture struct {
	ActivityID string `json:"activity_id"`
	DealID     string `json:"deal_id"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
}

type targetFixture struct {
	Month  string  `json:"month"`
	Target float64 `json:"target"`
}

// ResolveDir retorna o primeiro candidato que contém accounts.json
func ResolveDir(candidates ...string) (string, error) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}

		dir, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}

		if info, err := os.Stat(filepath.Join(dir, AccountsFile)); err == nil && !info.IsDir() {
			return dir, nil
		}
	}

	return "", errors.Wrapf(ErrSeedDataNotFound, "candidatos: %v", candidates)
}

func readFixture(dir, name string, out any) error {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return errors.Wrapf(err, "erro ao ler %s", name)
	}

	if err := json.Unmarshal(content, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar %s", name)
	}

	return nil
}

// LoadFixtures lê os cinco arquivos JSON do diretório e valida o conjunto
func LoadFixtures(dir string) (domain.RecordSet, error) {
	var (
		accounts   []accountFixture
		reps       []repFixture
		deals      []dealFixture
		activities []activityFixture
		targets    []targetFixture
	)

	files := []struct {
		name string
		out  any
	}{
		{AccountsFile, &accounts},
		{RepsFile, &reps},
		{DealsFile, &deals},
		{ActivitiesFile, &activities},
		{TargetsFile, &targets},
	}
	for _, f := range files {
		if err := readFixture(dir, f.name, f.out); err != nil {
			return domain.RecordSet{}, err
		}
	}

	return buildRecordSet(accounts, reps, deals, activities, targets)
}

func buildRecordSet(
	accounts []accountFixture,
	reps []repFixture,
	deals []dealFixture,
	activities []activityFixture,
	targets []targetFixture,
) (domain.RecordSet, error) {
	set := domain.RecordSet{
		Accounts:   make([]domain.Account, 0, len(accounts)),
		Reps:       make([]domain.Rep, 0, len(reps)),
		Deals:      make([]domain.Deal, 0, len(deals)),
		Activities: make([]domain.Activity, 0, len(activities)),
		Targets:    make([]domain.Target, 0, len(targets)),
	}

	accountIDs := make(map[string]struct{}, len(accounts))
	for i, a := range accounts {
		if a.AccountID == "" {
			return set, errors.Errorf("%s[%d]: account_id ausente", AccountsFile, i)
		}
		segment, err := domain.ParseSegment(a.Segment)
		if err != nil {
			return set, errors.Wrapf(err, "%s: conta %s", AccountsFile, a.AccountID)
		}
		accountIDs[a.AccountID] = struct{}{}
		set.Accounts = append(set.Accounts, domain.Account{
			ID:       a.AccountID,
			Name:     a.Name,
			Industry: a.Industry,
			Segment:  segment,
		})
	}

	repIDs := make(map[string]struct{}, len(reps))
	for i, r := range reps {
		if r.RepID == "" {
			return set, errors.Errorf("%s[%d]: rep_id ausente", RepsFile, i)
		}
		repIDs[r.RepID] = struct{}{}
		set.Reps = append(set.Reps, domain.Rep{ID: r.RepID, Name: r.Name})
	}

	dealIDs := make(map[string]struct{}, len(deals))
	for _, d := range deals {
		deal, err := d.toDomain()
		if err != nil {
			return set, errors.Wrap(err, DealsFile)
		}
		if _, ok := accountIDs[deal.AccountID]; !ok {
			return set, errors.Errorf("%s: negócio %s referencia conta inexistente %s", DealsFile, deal.ID, deal.AccountID)
		}
		if _, ok := repIDs[deal.RepID]; !ok {
			return set, errors.Errorf("%s: negócio %s referencia vendedor inexistente %s", DealsFile, deal.ID, deal.RepID)
		}
		dealIDs[deal.ID] = struct{}{}
		set.Deals = append(set.Deals, deal)
	}

	for i, a := range activities {
		activity, err := a.toDomain()
		if err != nil {
			return set, errors.Wrapf(err, "%s[%d]", ActivitiesFile, i)
		}
		if _, ok := dealIDs[activity.DealID]; !ok {
			return set, errors.Errorf("%s[%d]: atividade referencia negócio inexistente %s", ActivitiesFile, i, activity.DealID)
		}
		set.Activities = append(set.Activities, activity)
	}

	for _, t := range targets {
		if !utils.ValidMonth(t.Month) {
			return set, errors.Errorf("%s: mês inválido %q", TargetsFile, t.Month)
		}
		if t.Target < 0 {
			return set, errors.Errorf("%s: meta negativa para %s", TargetsFile, t.Month)
		}
		set.Targets = append(set.Targets, domain.Target{Month: t.Month, Target: t.Target})
	}

	return set, nil
}

func (d dealFixture) toDomain() (domain.Deal, error) {
	stage, err := domain.ParseStage(d.Stage)
	if err != nil {
		return domain.Deal{}, errors.Wrapf(err, "negócio %s", d.DealID)
	}

	createdAt, err := utils.ParseDate(d.CreatedAt)
	if err != nil {
		return domain.Deal{}, errors.Wrapf(err, "negócio %s: created_at", d.DealID)
	}

	closedAt, err := utils.ParseOptionalDate(d.ClosedAt)
	if err != nil {
		return domain.Deal{}, errors.Wrapf(err, "negócio %s: closed_at", d.DealID)
	}

	deal := domain.Deal{
		ID:        d.DealID,
		AccountID: d.AccountID,
		RepID:     d.RepID,
		Stage:     stage,
		Amount:    d.Amount,
		CreatedAt: createdAt,
		ClosedAt:  closedAt,
	}

	return deal, deal.Validate()
}

func (a activityFixture) toDomain() (domain.Activity, error) {
	activityType, err := domain.ParseActivityType(a.Type)
	if err != nil {
		return domain.Activity{}, err
	}

	timestamp, err := utils.ParseTimestamp(a.Timestamp)
	if err != nil {
		return domain.Activity{}, errors.Wrap(err, "timestamp")
	}

	id := a.ActivityID
	if id == "" {
		if id, err = utils.GenerateID("act_"); err != nil {
			return domain.Activity{}, errors.Wrap(err, "erro ao gerar activity_id")
		}
	}

	return domain.Activity{
		ID:        id,
		DealID:    a.DealID,
		Type:      activityType,
		Timestamp: timestamp,
	}, nil
}
