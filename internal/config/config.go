package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App           `mapstructure:",squash"`
	Server       Server        `mapstructure:",squash"`
	Database     Database      `mapstructure:",squash"`
	Adjust       Adjust        `mapstructure:",squash"`
	GoogleSheets GoogleSheets  `mapstructure:",squash"`
	Transform    Transform     `mapstructure:",squash"`
	Sync         Sync          `mapstructure:",squash"`
	RevenueSync  RevenueSync   `mapstructure:",squash"`
	Export       Export        `mapstructure:",squash"`
	SecretKey    string        `mapstructure:"secret_key"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Enabled    bool   `mapstructure:"database_enabled"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SQLitePath string `mapstructure:"database_sqlite_path"`
}

type Adjust struct {
	URL               string        `mapstructure:"adjust_url"`
	UTCOffset         string        `mapstructure:"adjust_utc_offset"`
	AttributionSource string        `mapstructure:"adjust_attribution_source"`
	AttributionType   string        `mapstructure:"adjust_attribution_type"`
	Currency          string        `mapstructure:"adjust_currency"`
	Timeout           time.Duration `mapstructure:"adjust_timeout"`
}

type GoogleSheets struct {
	CredentialsFile string `mapstructure:"google_credentials_file"`
	ConfigSheetID   string `mapstructure:"google_config_sheet_id"`
	ConfigSheetName string `mapstructure:"google_config_sheet_name"`
	Endpoint        string `mapstructure:"google_sheets_endpoint"`
}

type Transform struct {
	Network                   string   `mapstructure:"transform_network"`
	SkipInstallsFilterClients []string `mapstructure:"transform_skip_installs_filter_clients"`
	DefaultStartDate          string   `mapstructure:"transform_default_start_date"`
	DefaultSheetName          string   `mapstructure:"transform_default_sheet_name"`
	DefaultCPA                float64  `mapstructure:"transform_default_cpa"`
}

type Sync struct {
	CronSchedule string `mapstructure:"sync_cron"`
	Enabled      bool   `mapstructure:"sync_enabled"`
	BeginDate    string `mapstructure:"sync_begin_date"`
}

type RevenueSync struct {
	CronSchedule string `mapstructure:"revenue_sync_cron"`
	Enabled      bool   `mapstructure:"revenue_sync_enabled"`
	RollingDays  int    `mapstructure:"revenue_sync_rolling_days"`
}

type Export struct {
	Enabled  bool   `mapstructure:"export_enabled"`
	Dir      string `mapstructure:"export_dir"`
	S3Bucket string `mapstructure:"export_s3_bucket"`
	S3Region string `mapstructure:"export_s3_region"`
	S3Prefix string `mapstructure:"export_s3_prefix"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "localhost:5432/attribution")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SQLITE_PATH", "attribution-sync.db")

	viper.SetDefault("ADJUST_URL", "https://automate.adjust.com/reports-service/csv_report")
	viper.SetDefault("ADJUST_UTC_OFFSET", "+01:00") // Fuso de Paris
	viper.SetDefault("ADJUST_ATTRIBUTION_SOURCE", "first")
	viper.SetDefault("ADJUST_ATTRIBUTION_TYPE", "all")
	viper.SetDefault("ADJUST_CURRENCY", "EUR")
	viper.SetDefault("ADJUST_TIMEOUT", "60s")

	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service_account.json")
	viper.SetDefault("GOOGLE_CONFIG_SHEET_ID", "")
	viper.SetDefault("GOOGLE_CONFIG_SHEET_NAME", "custom CPI")
	viper.SetDefault("GOOGLE_SHEETS_ENDPOINT", "")

	viper.SetDefault("TRANSFORM_NETWORK", "Sharper")
	viper.SetDefault("TRANSFORM_SKIP_INSTALLS_FILTER_CLIENTS", []string{
		"Showroomprive.com - Ventes privées",
		"Lalalab",
		"Lalalab Android",
		"Lalalab Client Report Android",
		"Lalalab Client Report ios",
		"Lalalab Client Report ios & Android",
		"Bforbank - iOS",
		"Bforbank",
	})
	viper.SetDefault("TRANSFORM_DEFAULT_START_DATE", "2025-01-01")
	viper.SetDefault("TRANSFORM_DEFAULT_SHEET_NAME", "Sheet1")
	viper.SetDefault("TRANSFORM_DEFAULT_CPA", 27.0)

	// Sincronização completa do período
	viper.SetDefault("SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SYNC_ENABLED", false)
	viper.SetDefault("SYNC_BEGIN_DATE", "2025-11-01")

	// Atualização das receitas em janela móvel
	viper.SetDefault("REVENUE_SYNC_CRON", "0 7 * * 1") // Toda segunda-feira às 7h
	viper.SetDefault("REVENUE_SYNC_ENABLED", false)
	viper.SetDefault("REVENUE_SYNC_ROLLING_DAYS", 30)

	viper.SetDefault("EXPORT_ENABLED", true)
	viper.SetDefault("EXPORT_DIR", ".")
	viper.SetDefault("EXPORT_S3_BUCKET", "")
	viper.SetDefault("EXPORT_S3_REGION", "eu-west-3")
	viper.SetDefault("EXPORT_S3_PREFIX", "attribution-sync")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("TOKEN_TTL", "720h")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

func buildDSN(db Database) string {
	if db.Driver == "sqlite" {
		return db.SQLitePath
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
