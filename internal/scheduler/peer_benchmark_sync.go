// Package scheduler contém os agendadores de tarefas recorrentes da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// PeerBenchmarkSyncConfig representa a configuração do agendador de benchmarks
type PeerBenchmarkSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PeerBenchmarkSyncService recalcula periodicamente os agregados anuais de
// cada membro dos grupos de pares. A comparação com pares nunca calcula nada
// na hora da requisição: ela lê os benchmarks produzidos aqui.
type PeerBenchmarkSyncService struct {
	scheduler           *gocron.Scheduler
	config              PeerBenchmarkSyncConfig
	peerGroupRepo       repository.PeerGroupRepository
	rateRecordRepo      repository.RateRecordRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPeerBenchmarkSyncService cria uma nova instância do serviço de sincronização de benchmarks
func NewPeerBenchmarkSyncService(
	peerGroupRepo repository.PeerGroupRepository,
	rateRecordRepo repository.RateRecordRepository,
	appConfig *config.Config,
) *PeerBenchmarkSyncService {
	syncConfig := PeerBenchmarkSyncConfig{
		CronSchedule: appConfig.PeerBenchmarkSync.CronSchedule,
		SyncEnabled:  appConfig.PeerBenchmarkSync.SyncEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de benchmarks de pares carregada")

	return &PeerBenchmarkSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		peerGroupRepo:  peerGroupRepo,
		rateRecordRepo: rateRecordRepo,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *PeerBenchmarkSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de benchmarks de pares desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de benchmarks de pares")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncBenchmarks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de benchmarks: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de benchmarks de pares")
		s.scheduler.Stop()
	}()

	return nil
}

// syncBenchmarks recalcula os benchmarks de todos os grupos de pares
func (s *PeerBenchmarkSyncService) syncBenchmarks() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de benchmarks já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de benchmarks de todos os grupos de pares")

	groups, err := s.peerGroupRepo.ListGroups()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar grupos de pares para sincronização")
		return
	}

	if len(groups) == 0 {
		logrus.Info("Nenhum grupo de pares configurado para sincronização")
		return
	}

	for _, group := range groups {
		if err := s.syncGroup(group); err != nil {
			logrus.WithError(err).WithField("group_id", group.ID).Error("Erro ao sincronizar benchmarks do grupo")
		}
	}

	logrus.WithField("groups", len(groups)).Info("Sincronização de benchmarks concluída")
}

// syncGroup recalcula os agregados anuais de cada membro do grupo e grava o
// lote em um único upsert
func (s *PeerBenchmarkSyncService) syncGroup(group *domain.PeerGroup) error {
	members, err := s.peerGroupRepo.GetMembers(group.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar membros do grupo: %w", err)
	}

	benchmarks := make([]*domain.PeerBenchmark, 0)
	for _, member := range members {
		memberBenchmarks, err := s.computeMemberBenchmarks(group.ID, member)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"group_id":  group.ID,
				"entity_id": member.EntityID,
			}).Error("Erro ao calcular benchmarks do membro, seguindo para o próximo")
			continue
		}
		benchmarks = append(benchmarks, memberBenchmarks...)
	}

	if len(benchmarks) == 0 {
		logrus.WithField("group_id", group.ID).Info("Nenhum benchmark calculado para o grupo")
		return nil
	}

	if err := s.peerGroupRepo.SaveOrUpdateBenchmarks(benchmarks); err != nil {
		return fmt.Errorf("erro ao gravar benchmarks: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"group_id":   group.ID,
		"benchmarks": len(benchmarks),
	}).Info("Benchmarks do grupo atualizados")

	return nil
}

// computeMemberBenchmarks reduz os registros de tarifas do membro a uma média
// de tarifa proposta por ano efetivo
func (s *PeerBenchmarkSyncService) computeMemberBenchmarks(groupID string, member *domain.PeerMember) ([]*domain.PeerBenchmark, error) {
	entityID := member.EntityID
	records, err := s.rateRecordRepo.ListByFilter(&domain.FilterParameters{FirmID: &entityID})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar registros de tarifas do membro: %w", err)
	}

	type yearly struct {
		sum   float64
		count int
	}
	years := make(map[int]*yearly)
	for _, record := range records {
		entry, ok := years[record.EffectiveYear]
		if !ok {
			entry = &yearly{}
			years[record.EffectiveYear] = entry
		}
		entry.sum += record.ProposedAmount
		entry.count++
	}

	sortedYears := make([]int, 0, len(years))
	for year := range years {
		sortedYears = append(sortedYears, year)
	}
	sort.Ints(sortedYears)

	benchmarks := make([]*domain.PeerBenchmark, 0, len(sortedYears))
	for _, year := range sortedYears {
		entry := years[year]
		benchmarks = append(benchmarks, &domain.PeerBenchmark{
			GroupID:       groupID,
			EntityID:      member.EntityID,
			EntityName:    member.EntityName,
			EffectiveYear: year,
			AverageAmount: utils.RoundWithTwoDecimalPlace(entry.sum / float64(entry.count)),
			RecordCount:   entry.count,
		})
	}

	return benchmarks, nil
}

// TriggerManualSync inicia manualmente uma sincronização de benchmarks
func (s *PeerBenchmarkSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de benchmarks já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de benchmarks de pares")
	go s.syncBenchmarks()
}

// GetStatus retorna o status atual da sincronização
func (s *PeerBenchmarkSyncService) GetStatus() map[string]any {
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
