package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T)
		validate func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:  "Valores padrão",
			setup: func(t *testing.T) {},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, DriverSQLite, cfg.Database.Driver)
				assert.Equal(t, "analisis_ventas.sqlite", cfg.Database.DSN)
				assert.Equal(t, "ventas.csv", cfg.Analysis.CSVPath)
				assert.False(t, cfg.Analysis.AllowZero)
				assert.Equal(t, 3, cfg.Analysis.TopN)
				assert.Equal(t, 5, cfg.Analysis.ListRecent)
				assert.Equal(t, 5, cfg.Analysis.SampleSize)
				assert.Equal(t, "grafico.png", cfg.Analysis.ChartPath)
				assert.Equal(t, []string{"#4C78A8", "#F58518"}, cfg.Analysis.ChartColors)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "8000", cfg.Server.Port)
			},
		},
		{
			name: "Variáveis de ambiente sobrescrevem os padrões",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_DRIVER", "postgres")
				t.Setenv("DATABASE_USER", "vendas")
				t.Setenv("DATABASE_PASSWORD", "segredo")
				t.Setenv("DATABASE_URL", "db:5432/vendas")
				t.Setenv("ANALYSIS_ALLOW_ZERO", "true")
				t.Setenv("ANALYSIS_CHART_COLORS", "#000000,#FFFFFF,#FF0000")
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "postgres://vendas:segredo@db:5432/vendas", cfg.Database.DSN)
				assert.True(t, cfg.Analysis.AllowZero)
				assert.Equal(t, []string{"#000000", "#FFFFFF", "#FF0000"}, cfg.Analysis.ChartColors)
			},
		},
		{
			name: "Driver desconhecido",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_DRIVER", "mysql")
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			chdir(t, t.TempDir())
			tt.setup(t)

			cfg, err := NewConfig()
			tt.validate(t, cfg, err)
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}
