package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Analysis Analysis `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Analysis agrupa os parâmetros de uma execução do pipeline de vendas
type Analysis struct {
	CSVPath     string   `mapstructure:"analysis_csv_path"`
	AllowZero   bool     `mapstructure:"analysis_allow_zero"`
	TopN        int      `mapstructure:"analysis_top_n"`
	ListRecent  int      `mapstructure:"analysis_list_recent"`
	SampleSize  int      `mapstructure:"analysis_sample_size"`
	ChartPath   string   `mapstructure:"analysis_chart_path"`
	ChartColors []string `mapstructure:"analysis_chart_colors"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "analisis_ventas.sqlite")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("ANALYSIS_CSV_PATH", "ventas.csv")
	viper.SetDefault("ANALYSIS_ALLOW_ZERO", false)
	viper.SetDefault("ANALYSIS_TOP_N", 3)         // Top-N das listagens de snapshots
	viper.SetDefault("ANALYSIS_LIST_RECENT", 5)   // Quantidade de snapshots em --persistencia
	viper.SetDefault("ANALYSIS_SAMPLE_SIZE", 5)   // Linhas limpas exibidas como amostra
	viper.SetDefault("ANALYSIS_CHART_PATH", "grafico.png")
	viper.SetDefault("ANALYSIS_CHART_COLORS", "#4C78A8,#F58518")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// Validate confere os valores que o pipeline não consegue corrigir sozinho
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("driver de banco não suportado: %q", c.Database.Driver)
	}

	if c.Analysis.TopN < 0 || c.Analysis.ListRecent < 0 || c.Analysis.SampleSize < 0 {
		return fmt.Errorf("limites de análise não podem ser negativos")
	}

	if len(c.Analysis.ChartColors) == 0 {
		c.Analysis.ChartColors = []string{"#4C78A8", "#F58518"}
	}

	return nil
}

func buildDSN(db Database) string {
	if db.Driver == DriverSQLite {
		return db.Path
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
