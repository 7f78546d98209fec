package scheduler

import (
	"testing"

	"github.com/lexrates/rate-insights-api/infrastructure/repository/mocks"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPeerBenchmarkSyncService_syncGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPeerRepo := mocks.NewMockPeerGroupRepository(ctrl)
	mockRecordRepo := mocks.NewMockRateRecordRepository(ctrl)

	service := &PeerBenchmarkSyncService{
		peerGroupRepo:  mockPeerRepo,
		rateRecordRepo: mockRecordRepo,
	}

	group := &domain.PeerGroup{ID: "PG1", Name: "AmLaw 50"}

	t.Run("Calcula a média anual de cada membro e grava o lote", func(t *testing.T) {
		mockPeerRepo.EXPECT().
			GetMembers("PG1").
			Return([]*domain.PeerMember{
				{GroupID: "PG1", EntityID: "F1", EntityName: "Firma A"},
			}, nil)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			DoAndReturn(func(filters *domain.FilterParameters) ([]*domain.RateRecord, error) {
				require.NotNil(t, filters.FirmID)
				assert.Equal(t, "F1", *filters.FirmID)

				return []*domain.RateRecord{
					{FirmID: "F1", ProposedAmount: 400, EffectiveYear: 2025},
					{FirmID: "F1", ProposedAmount: 600, EffectiveYear: 2025},
					{FirmID: "F1", ProposedAmount: 700, EffectiveYear: 2026},
				}, nil
			})

		mockPeerRepo.EXPECT().
			SaveOrUpdateBenchmarks(gomock.Any()).
			DoAndReturn(func(benchmarks []*domain.PeerBenchmark) error {
				require.Len(t, benchmarks, 2)

				assert.Equal(t, "PG1", benchmarks[0].GroupID)
				assert.Equal(t, "F1", benchmarks[0].EntityID)
				assert.Equal(t, "Firma A", benchmarks[0].EntityName)
				assert.Equal(t, 2025, benchmarks[0].EffectiveYear)
				assert.Equal(t, 500.0, benchmarks[0].AverageAmount)
				assert.Equal(t, 2, benchmarks[0].RecordCount)

				assert.Equal(t, 2026, benchmarks[1].EffectiveYear)
				assert.Equal(t, 700.0, benchmarks[1].AverageAmount)
				assert.Equal(t, 1, benchmarks[1].RecordCount)

				return nil
			})

		err := service.syncGroup(group)

		require.NoError(t, err)
	})

	t.Run("Membro sem registros não gera benchmarks nem gravação", func(t *testing.T) {
		mockPeerRepo.EXPECT().
			GetMembers("PG1").
			Return([]*domain.PeerMember{
				{GroupID: "PG1", EntityID: "F2", EntityName: "Firma B"},
			}, nil)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return(nil, nil)

		err := service.syncGroup(group)

		require.NoError(t, err)
	})

	t.Run("Falha em um membro não derruba o grupo inteiro", func(t *testing.T) {
		mockPeerRepo.EXPECT().
			GetMembers("PG1").
			Return([]*domain.PeerMember{
				{GroupID: "PG1", EntityID: "F3", EntityName: "Firma C"},
				{GroupID: "PG1", EntityID: "F4", EntityName: "Firma D"},
			}, nil)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return(nil, assert.AnError)

		mockRecordRepo.EXPECT().
			ListByFilter(gomock.Any()).
			Return([]*domain.RateRecord{
				{FirmID: "F4", ProposedAmount: 300, EffectiveYear: 2026},
			}, nil)

		mockPeerRepo.EXPECT().
			SaveOrUpdateBenchmarks(gomock.Any()).
			DoAndReturn(func(benchmarks []*domain.PeerBenchmark) error {
				require.Len(t, benchmarks, 1)
				assert.Equal(t, "F4", benchmarks[0].EntityID)
				return nil
			})

		err := service.syncGroup(group)

		require.NoError(t, err)
	})
}

func TestPeerBenchmarkSyncService_GetStatus(t *testing.T) {
	service := &PeerBenchmarkSyncService{
		config: PeerBenchmarkSyncConfig{
			CronSchedule: "0 4 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 4 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
