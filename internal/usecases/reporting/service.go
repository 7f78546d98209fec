// Package reporting gerencia o ciclo de vida dos relatórios customizados e a
// composição dos seus resultados
package reporting

import (
	"github.com/lexrates/rate-insights-api/infrastructure/repository"
	"github.com/lexrates/rate-insights-api/internal/config"
	"github.com/lexrates/rate-insights-api/internal/domain"
	"github.com/lexrates/rate-insights-api/internal/usecases/analyzing"
	"github.com/lexrates/rate-insights-api/internal/usecases/trending"
	"github.com/lexrates/rate-insights-api/pkg/utils"
	"github.com/pkg/errors"
)

// Reporter gerencia relatórios customizados: criação, edição, remoção,
// compartilhamento e composição do resultado
type Reporter interface {
	CreateReport(report *domain.CustomReport) (*domain.CustomReport, error)
	UpdateReport(report *domain.CustomReport, requesterID string) (*domain.CustomReport, error)
	DeleteReport(id, requesterID string) error
	GetReport(id, requesterID string) (*domain.CustomReport, error)
	ListReports(requesterID string) ([]*domain.CustomReport, error)
	ShareReport(id, requesterID string, granteeIDs []string) error
	ComposeReport(id, requesterID string) (*domain.ReportPayload, error)
	PreviewReport(report *domain.CustomReport) (*domain.ReportPayload, error)
}

type Service struct {
	cfg                    *config.Config
	customReportRepository repository.CustomReportRepository
	analyzer               analyzing.Analyzer
	trender                trending.Trender
}

func NewService(
	cfg *config.Config,
	customReportRepository repository.CustomReportRepository,
	analyzer analyzing.Analyzer,
	trender trending.Trender,
) Reporter {
	return &Service{
		cfg:                    cfg,
		customReportRepository: customReportRepository,
		analyzer:               analyzer,
		trender:                trender,
	}
}

func (s *Service) CreateReport(report *domain.CustomReport) (*domain.CustomReport, error) {
	if err := validateReport(report); err != nil {
		return nil, err
	}

	if report.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "falha ao gerar identificador do relatório")
		}
		report.ID = id
	}

	if err := s.customReportRepository.Create(report); err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return report, nil
}

func (s *Service) UpdateReport(report *domain.CustomReport, requesterID string) (*domain.CustomReport, error) {
	if err := validateReport(report); err != nil {
		return nil, err
	}

	existing, err := s.customReportRepository.GetByID(report.ID)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if existing == nil {
		return nil, ErrReportNotFound
	}
	if existing.OwnerID != requesterID {
		return nil, ErrNotOwner
	}

	// O dono e a lista de leitores nunca mudam em uma edição
	report.OwnerID = existing.OwnerID
	report.SharedWith = existing.SharedWith

	if err := s.customReportRepository.Update(report); err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return report, nil
}

func (s *Service) DeleteReport(id, requesterID string) error {
	existing, err := s.customReportRepository.GetByID(id)
	if err != nil {
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if existing == nil {
		return ErrReportNotFound
	}
	if existing.OwnerID != requesterID {
		return ErrNotOwner
	}

	if err := s.customReportRepository.Delete(id); err != nil {
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) GetReport(id, requesterID string) (*domain.CustomReport, error) {
	report, err := s.customReportRepository.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if !canRead(report, requesterID) {
		return nil, ErrReportNotAccessible
	}

	return report, nil
}

func (s *Service) ListReports(requesterID string) ([]*domain.CustomReport, error) {
	reports, err := s.customReportRepository.ListByOwner(requesterID)
	if err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return reports, nil
}

// ShareReport adiciona leitores ao relatório; o dono não muda
func (s *Service) ShareReport(id, requesterID string, granteeIDs []string) error {
	if len(granteeIDs) == 0 {
		return domain.NewValidationError("grantee_ids", "informe ao menos um destinatário")
	}

	existing, err := s.customReportRepository.GetByID(id)
	if err != nil {
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	if existing == nil {
		return ErrReportNotFound
	}
	if existing.OwnerID != requesterID {
		return ErrNotOwner
	}

	if err := s.customReportRepository.AddShares(id, granteeIDs); err != nil {
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return nil
}

// ComposeReport recalcula o resultado completo do relatório a partir dos
// registros atuais e persiste o payload como último resultado conhecido. A
// composição é sempre um recálculo integral: nada do resultado anterior é
// reaproveitado.
func (s *Service) ComposeReport(id, requesterID string) (*domain.ReportPayload, error) {
	report, err := s.GetReport(id, requesterID)
	if err != nil {
		return nil, err
	}

	payload, err := s.compose(report)
	if err != nil {
		return nil, err
	}

	if err := s.customReportRepository.UpdateLastResult(id, payload); err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return payload, nil
}

// PreviewReport compõe o resultado de um relatório ainda não salvo, sem
// persistir nada
func (s *Service) PreviewReport(report *domain.CustomReport) (*domain.ReportPayload, error) {
	if err := validateReport(report); err != nil {
		return nil, err
	}

	return s.compose(report)
}

func (s *Service) compose(report *domain.CustomReport) (*domain.ReportPayload, error) {
	data := &domain.ReportData{}

	impact, err := s.analyzer.AnalyzeImpact(&analyzing.ImpactRequest{
		Filters:   report.Filters,
		Dimension: report.Dimensions[0],
		ViewType:  impactView(report.Metrics),
	})
	if err != nil {
		return nil, err
	}
	data.Impact = impact

	if hasMetric(report.Metrics, domain.MetricCAGR) {
		dimension := report.Dimensions[0]
		trend, err := s.trender.CalculateTrends(report.Filters, &dimension, nil)
		if err != nil {
			return nil, err
		}
		data.Trend = trend
	}

	return &domain.ReportPayload{
		Data:      data,
		ChartData: buildChartData(report, data),
	}, nil
}

// impactView escolhe a visão de impacto implicada pelas métricas do relatório
func impactView(metrics []string) domain.ImpactViewType {
	if hasMetric(metrics, domain.MetricNetImpact) {
		return domain.ImpactViewNetImpact
	}
	if hasMetric(metrics, domain.MetricPercentageChange) {
		return domain.ImpactViewPercentage
	}
	return domain.ImpactViewTotal
}

func hasMetric(metrics []string, name string) bool {
	for _, metric := range metrics {
		if metric == name {
			return true
		}
	}
	return false
}

func canRead(report *domain.CustomReport, requesterID string) bool {
	if report.OwnerID == requesterID {
		return true
	}
	for _, grantee := range report.SharedWith {
		if grantee == requesterID {
			return true
		}
	}
	return false
}

// validateReport garante o mínimo estrutural de um relatório: dono, nome,
// pelo menos uma dimensão e uma métrica, e tipos conhecidos
func validateReport(report *domain.CustomReport) error {
	if report == nil {
		return domain.NewValidationError("report", "relatório não pode ser vazio")
	}
	if report.OwnerID == "" {
		return domain.NewValidationError("owner_id", "relatório exige um dono")
	}
	if report.Name == "" {
		return domain.NewValidationError("name", "relatório exige um nome")
	}
	if len(report.Dimensions) == 0 {
		return domain.NewValidationError("dimensions", "relatório exige ao menos uma dimensão")
	}
	if len(report.Metrics) == 0 {
		return domain.NewValidationError("metrics", "relatório exige ao menos uma métrica")
	}
	if !report.Visualization.Valid() {
		return domain.NewValidationError("visualization", "tipo de visualização desconhecido: "+string(report.Visualization))
	}

	for _, dimension := range report.Dimensions {
		if !dimension.Valid() {
			return domain.NewValidationError("dimensions", "dimensão desconhecida: "+string(dimension))
		}
	}
	for _, metric := range report.Metrics {
		if !domain.ValidMetric(metric) {
			return domain.NewValidationError("metrics", "métrica desconhecida: "+metric)
		}
	}

	return nil
}
