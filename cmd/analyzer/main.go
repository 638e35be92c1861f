// Command analyzer limpa e agrega uma tabela de vendas e consulta os rankings salvos.
//
//	analyzer [--csv ARQUIVO] [--permite_cero]
//	analyzer --persistencia
//	analyzer --top [ID]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vfg2006/sales-analytics/infrastructure/database"
	"github.com/vfg2006/sales-analytics/infrastructure/report"
	"github.com/vfg2006/sales-analytics/infrastructure/repository"
	"github.com/vfg2006/sales-analytics/infrastructure/source"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

// latestTop é o valor de --top sem id
const latestTop = -1

type flags struct {
	set          *pflag.FlagSet
	persistencia bool
	top          int64
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Erro ao carregar configuração: %v\n", err)
		return 1
	}
	log.Setup(cfg.App.LogLevel)

	printer := report.NewConsolePrinter(stdout)

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err == nil {
		defer conn.Close()
		err = conn.Migrate(ctx)
	}

	var rankingService ranking.RankingService
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Database.Driver).Warn("Banco de snapshots indisponível, análises não serão salvas")
		rankingService = ranking.NewRankingService(nil)
	} else {
		rankingService = ranking.NewRankingService(repository.NewAnalysisSnapshotRepository(conn))
	}

	switch {
	case f.persistencia:
		return listRecent(ctx, rankingService, printer, cfg.Analysis, stderr)
	case f.set.Changed("top"):
		return showTop(ctx, rankingService, printer, f.top, cfg.Analysis.TopN, stderr)
	}

	return analyze(ctx, rankingService, printer, cfg.Analysis, f.set.Changed("csv"), stderr)
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: pflag.NewFlagSet("analyzer", pflag.ContinueOnError)}
	f.set.SetOutput(stderr)

	f.set.String("csv", "", "arquivo CSV/XLSX ou URL com as vendas")
	f.set.Bool("permite_cero", false, "aceita linhas com quantidade ou preço igual a zero")
	f.set.BoolVar(&f.persistencia, "persistencia", false, "lista as últimas análises salvas")
	f.set.Int64Var(&f.top, "top", latestTop, "exibe o Top-N da última análise ou do id informado")
	f.set.Lookup("top").NoOptDefVal = strconv.Itoa(latestTop)

	if err := f.set.Parse(args); err != nil {
		return nil, err
	}

	// --top 7 chega como argumento posicional por causa do NoOptDefVal
	if f.set.Changed("top") && f.top == latestTop && f.set.NArg() > 0 {
		id, err := strconv.ParseInt(f.set.Arg(0), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("id inválido para --top: %s", f.set.Arg(0))
		}
		f.top = id
	}

	if err := viper.BindPFlag("analysis_csv_path", f.set.Lookup("csv")); err != nil {
		return nil, err
	}
	if err := viper.BindPFlag("analysis_allow_zero", f.set.Lookup("permite_cero")); err != nil {
		return nil, err
	}

	return f, nil
}

func listRecent(ctx context.Context, service ranking.RankingService, printer *report.ConsolePrinter, cfg config.Analysis, stderr io.Writer) int {
	previews, err := service.ListRecent(ctx, cfg.ListRecent, cfg.TopN)
	if err != nil {
		fmt.Fprintf(stderr, "Não foi possível ler as análises salvas: %v\n", err)
		return 1
	}

	printer.PrintRecent(previews, cfg.ListRecent)
	return 0
}

func showTop(ctx context.Context, service ranking.RankingService, printer *report.ConsolePrinter, id int64, n int, stderr io.Writer) int {
	var (
		entries []domain.RankingEntry
		title   string
		err     error
	)

	if id == latestTop {
		title = "última análise"
		entries, err = service.ReadLatestTopN(ctx, n)
	} else {
		title = fmt.Sprintf("análise id=%d", id)
		entries, err = service.ReadTopNByID(ctx, id, n)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Não foi possível ler o Top-%d: %v\n", n, err)
		return 1
	}

	printer.PrintTopN(entries, n, title)
	return 0
}

func analyze(ctx context.Context, service ranking.RankingService, printer *report.ConsolePrinter, cfg config.Analysis, explicitSource bool, stderr io.Writer) int {
	if !explicitSource && !isRemote(cfg.CSVPath) {
		if _, err := os.Stat(cfg.CSVPath); err != nil {
			fmt.Fprintf(stderr, "Erro: arquivo padrão %s não encontrado. Use --csv para informar outro arquivo.\n", cfg.CSVPath)
			return 1
		}
	}

	printer.PrintMode(cfg.CSVPath, explicitSource, cfg.AllowZero)

	pipeline := analyzing.NewService(
		source.NewTableReader(),
		service,
		report.NewChartRenderer(cfg.ChartColors),
	)

	result, err := pipeline.Run(ctx, analyzing.Options{
		Source:     cfg.CSVPath,
		AllowZero:  cfg.AllowZero,
		ChartPath:  cfg.ChartPath,
		SampleSize: cfg.SampleSize,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Erro ao executar a análise: %v\n", err)
		return 1
	}

	printer.PrintResult(result)
	return 0
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
