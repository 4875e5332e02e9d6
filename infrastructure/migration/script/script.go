package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/infrastructure/seed"
	"github.com/vfg2006/sales-insights-api/internal/config"
)

// flags sobrescrevem as variáveis de ambiente de mesmo nome
var flagKeys = map[string]string{
	"driver": "database_driver",
	"path":   "database_path",
	"dir":    "seed_data_path",
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	setupLogger()

	pflag.String("driver", "", "driver do banco (postgres|sqlite)")
	pflag.String("path", "", "arquivo do banco sqlite")
	pflag.String("dir", "", "diretório com as fixtures JSON")
	force := pflag.Bool("force", false, "grava as fixtures mesmo com o banco populado (registros existentes são mantidos)")
	pflag.Parse()

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, pflag.Lookup(flag)); err != nil {
			logrus.WithError(err).Fatalf("ERRO ao associar a flag --%s", flag)
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx := context.Background()
	startTime := time.Now()

	conn := connect(ctx, cfg.Database)
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar o schema")
	}
	logrus.Info("Schema criado/atualizado")

	dir, err := seed.ResolveDir(cfg.Seed.Path, "./seed-data")
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao localizar as fixtures")
	}

	records := repository.NewRecordRepository(conn)

	if *force {
		set, err := seed.LoadFixtures(dir)
		if err != nil {
			logrus.WithError(err).Fatal("ERRO ao carregar as fixtures")
		}
		if err := records.InsertAll(ctx, set); err != nil {
			logrus.WithError(err).Fatal("ERRO ao gravar as fixtures")
		}
	} else if _, err := seed.NewSeeder(records).Seed(ctx, dir); err != nil {
		logrus.WithError(err).Fatal("ERRO ao popular o banco")
	}

	counts, err := records.Counts(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao contar registros")
	}

	logrus.Infof("Migração concluída em %v. Contas: %d, Vendedores: %d, Negócios: %d, Atividades: %d, Metas: %d",
		time.Since(startTime), counts.Accounts, counts.Reps, counts.Deals, counts.Activities, counts.Targets)
}

func connect(ctx context.Context, dbConfig config.Database) *database.Connection {
	var (
		conn *database.Connection
		err  error
	)

	switch dbConfig.Driver {
	case config.DriverSQLite:
		conn, err = sqlite.NewConnection(ctx, dbConfig.DSN)
	default:
		conn, err = postgres.NewConnection(ctx, dbConfig)
	}
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}

	return conn
}
