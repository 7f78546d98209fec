package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// ReportRefreshSyncConfig representa a configuração do agendador de relatórios
type ReportRefreshSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportRefreshSyncService recompõe periodicamente o resultado de todos os
// relatórios salvos, para que o último resultado persistido não envelheça
// demais entre aberturas do dashboard
type ReportRefreshSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportRefreshSyncConfig
	customReportRepo    repository.CustomReportRepository
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportRefreshSyncService cria uma nova instância do serviço de recomputação de relatórios
func NewReportRefreshSyncService(
	customReportRepo repository.CustomReportRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *ReportRefreshSyncService {
	syncConfig := ReportRefreshSyncConfig{
		CronSchedule: appConfig.ReportRefreshSync.CronSchedule,
		SyncEnabled:  appConfig.ReportRefreshSync.SyncEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recomputação de relatórios carregada")

	return &ReportRefreshSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		customReportRepo: customReportRepo,
		reporter:         reporter,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *ReportRefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recomputação de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recomputação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomputação de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomputação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshReports recompõe o resultado de todos os relatórios salvos
func (s *ReportRefreshSyncService) refreshReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputação de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recomputação de todos os relatórios salvos")

	reports, err := s.customReportRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar relatórios para recomputação")
		return
	}

	if len(reports) == 0 {
		logrus.Info("Nenhum relatório salvo para recomputar")
		return
	}

	refreshed := 0
	for _, report := range reports {
		// A composição em nome do dono recalcula e persiste o último resultado
		if _, err := s.reporter.ComposeReport(report.ID, report.OwnerID); err != nil {
			logrus.WithError(err).WithField("report_id", report.ID).Error("Erro ao recompor relatório, seguindo para o próximo")
			continue
		}
		refreshed++
	}

	logrus.WithFields(logrus.Fields{
		"total":     len(reports),
		"refreshed": refreshed,
	}).Info("Recomputação de relatórios concluída")
}

// TriggerManualSync inicia manualmente uma recomputação de relatórios
func (s *ReportRefreshSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputação de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputação manual de relatórios")
	go s.refreshReports()
}

// GetStatus retorna o status atual da recomputação
func (s *ReportRefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
