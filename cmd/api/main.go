package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/database"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/infrastructure/seed"
	"github.com/vfg2006/sales-insights-api/internal/api"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema do banco")
	}

	if cfg.Seed.Enabled {
		seedDatabase(ctx, conn, cfg.Seed)
	}

	analyzer := analyzing.NewService(
		repository.NewDealRepository(conn),
		repository.NewActivityRepository(conn),
		repository.NewTargetRepository(conn),
	).WithClock(cfg.Analytics.Clock())

	digestService := scheduler.NewAnalyticsDigestService(analyzer, cfg)
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest de análises")
	}

	server, err := api.New(cfg, conn, analyzer, digestService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn abre a conexão com o driver configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
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
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

// seedDatabase popula o banco vazio; sem diretório de fixtures a aplicação não sobe
func seedDatabase(ctx context.Context, conn *database.Connection, seedConfig config.Seed) {
	dir, err := seed.ResolveDir(seedConfig.Path, "./seed-data", "./data")
	if err != nil {
		logrus.WithError(err).Fatal("Diretório de dados de seed não encontrado")
	}

	seeded, err := seed.NewSeeder(repository.NewRecordRepository(conn)).Seed(ctx, dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o banco de dados")
	}

	if seeded {
		logrus.WithField("dir", dir).Info("Banco de dados populado com os dados de seed")
	}
}
