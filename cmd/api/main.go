package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lexrates/rate-insights-api/infrastructure/database/postgres"
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/api"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/currency"
	"github.com/lexrates/rate-insights-api/internal/scheduler"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/lexrates/rate-insights-api/internal/usecases/comparing"
	"github.com/lexrates/rate-insights-api/internal/usecases/reporting"
	"github.com/lexrates/rate-insights-api/internal/usecases/trending"
	"github.com/sirupsen/logrus"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rateRecordRepo := repository.NewRateRecordRepository(pgConn)
	customReportRepo := repository.NewCustomReportRepository(pgConn)
	peerGroupRepo := repository.NewPeerGroupRepository(pgConn)
	currencyRateRepo := repository.NewCurrencyRateRepository(pgConn)

	converter := currency.NewConverter(currencyRateRepo)

	comparer := comparing.NewService(cfg, rateRecordRepo, peerGroupRepo, converter)
	analyzer := analyzing.NewService(cfg, rateRecordRepo, converter, comparer)
	trender := trending.NewService(cfg, rateRecordRepo, converter)
	reporter := reporting.NewService(cfg, customReportRepo, analyzer, trender)

	// Inicializa os agendadores de sincronização
	peerBenchmarkSyncService := scheduler.NewPeerBenchmarkSyncService(
		peerGroupRepo,
		rateRecordRepo,
		cfg,
	)

	reportRefreshSyncService := scheduler.NewReportRefreshSyncService(
		customReportRepo,
		reporter,
		cfg,
	)

	// Inicia os agendadores em background
	if err := peerBenchmarkSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de benchmarks de pares")
	} else {
		logrus.Info("Agendador de benchmarks de pares iniciado com sucesso")
	}

	if err := reportRefreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomputação de relatórios")
	} else {
		logrus.Info("Agendador de recomputação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		comparer,
		trender,
		reporter,
		peerBenchmarkSyncService,
		reportRefreshSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
