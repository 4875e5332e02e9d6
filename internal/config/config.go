package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Seed      Seed      `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	Digest    Digest    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Path     string `mapstructure:"database_path"` // arquivo do sqlite
}

type Seed struct {
	Path    string `mapstructure:"seed_data_path"`
	Enabled bool   `mapstructure:"seed_enabled"`
}

type Analytics struct {
	// AsOf é a data de referência das análises (yyyy-mm-dd); vazio ou "now" usa a data atual
	AsOf string `mapstructure:"analytics_as_of"`
}

type Digest struct {
	CronSchedule string `mapstructure:"analytics_digest_cron"`
	Enabled      bool   `mapstructure:"analytics_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3005)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "./data/revenue.db")

	viper.SetDefault("SEED_DATA_PATH", "./seed-data")
	viper.SetDefault("SEED_ENABLED", true)

	// Data de referência dos dados de exemplo (fim do Q4 2025)
	viper.SetDefault("ANALYTICS_AS_OF", "2025-12-31")

	viper.SetDefault("ANALYTICS_DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ANALYTICS_DIGEST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	// variáveis vazias sobrepõem os padrões (ANALYTICS_AS_OF vazio = data atual)
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverPostgres:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case DriverSQLite:
		c.Database.DSN = c.Database.Path
	default:
		return fmt.Errorf("config: driver de banco não suportado: %q", c.Database.Driver)
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	if _, err := c.Analytics.AsOfDate(); err != nil {
		return err
	}

	return nil
}

const asOfNow = "now"

// AsOfDate interpreta ANALYTICS_AS_OF; zero significa "usar a data atual"
func (a Analytics) AsOfDate() (time.Time, error) {
	value := strings.TrimSpace(a.AsOf)
	if value == "" || strings.EqualFold(value, asOfNow) {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: ANALYTICS_AS_OF inválido %q: %w", value, err)
	}
	return t, nil
}

// Clock retorna a função que fornece a data de referência das análises
func (a Analytics) Clock() func() time.Time {
	asOf, err := a.AsOfDate()
	if err != nil || asOf.IsZero() {
		return func() time.Time { return time.Now().UTC() }
	}
	return func() time.Time { return asOf }
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
