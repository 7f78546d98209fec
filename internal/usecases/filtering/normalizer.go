// Package filtering normaliza os parâmetros de filtro recebidos da API antes
// de qualquer consulta ou cálculo
package filtering

import (
	"strings"
	"time"

	"github.com/lexrates/rate-insights-api/internal/domain"
)

// nowFunc permite fixar o relógio nos testes
var nowFunc = time.Now

// Normalize valida os parâmetros de filtro e retorna uma cópia canônica:
// moeda padrão aplicada, períodos nomeados resolvidos em intervalos de datas
// e identificadores verificados. A entrada nunca é modificada.
func Normalize(params *domain.FilterParameters, defaultCurrency string) (*domain.FilterParameters, error) {
	normalized := &domain.FilterParameters{}
	if params != nil {
		copied := *params
		normalized = &copied
	}

	if err := validateIdentifiers(normalized); err != nil {
		return nil, err
	}

	if normalized.Currency == "" {
		normalized.Currency = defaultCurrency
	}
	normalized.Currency = strings.ToUpper(normalized.Currency)

	if normalized.RateStatus != nil && !normalized.RateStatus.Valid() {
		return nil, domain.NewValidationError("rate_status", "estado de tarifa desconhecido: "+string(*normalized.RateStatus))
	}
	if normalized.RateType != nil && !normalized.RateType.Valid() {
		return nil, domain.NewValidationError("rate_type", "tipo de tarifa desconhecido: "+string(*normalized.RateType))
	}

	if err := validateBounds(normalized); err != nil {
		return nil, err
	}

	if err := resolvePeriod(normalized); err != nil {
		return nil, err
	}

	return normalized, nil
}

// validateIdentifiers rejeita identificadores presentes porém vazios: um campo
// ausente significa "todos", mas uma string vazia é sempre um erro do chamador
func validateIdentifiers(params *domain.FilterParameters) error {
	identifiers := map[string]*string{
		"client_id":     params.ClientID,
		"firm_id":       params.FirmID,
		"attorney_id":   params.AttorneyID,
		"staff_class":   params.StaffClass,
		"practice_area": params.PracticeArea,
		"office_id":     params.OfficeID,
		"geography_id":  params.GeographyID,
		"peer_group_id": params.PeerGroupID,
	}

	for field, value := range identifiers {
		if value != nil && strings.TrimSpace(*value) == "" {
			return domain.NewValidationError(field, "identificador não pode ser vazio")
		}
	}

	return nil
}

func validateBounds(params *domain.FilterParameters) error {
	if params.MinIncreasePct != nil && *params.MinIncreasePct < 0 {
		return domain.NewValidationError("min_increase_pct", "percentual mínimo não pode ser negativo")
	}
	if params.MaxIncreasePct != nil && *params.MaxIncreasePct < 0 {
		return domain.NewValidationError("max_increase_pct", "percentual máximo não pode ser negativo")
	}
	if params.MinIncreasePct != nil && params.MaxIncreasePct != nil && *params.MinIncreasePct > *params.MaxIncreasePct {
		return domain.NewValidationError("min_increase_pct", "percentual mínimo maior que o máximo")
	}
	if params.BudgetCap != nil && *params.BudgetCap < 0 {
		return domain.NewValidationError("budget_cap", "teto de orçamento não pode ser negativo")
	}

	return nil
}

// resolvePeriod converte um período nomeado em intervalo de datas explícito.
// No máximo um entre {date_range, timeframe} pode vir preenchido.
func resolvePeriod(params *domain.FilterParameters) error {
	if params.DateRange != nil && params.Timeframe != nil {
		return domain.NewValidationError("timeframe", "informe um intervalo de datas ou um período nomeado, nunca ambos")
	}

	if params.DateRange != nil {
		if params.DateRange.Start == nil || params.DateRange.End == nil {
			return domain.NewValidationError("date_range", "intervalo de datas exige início e fim")
		}
		if params.DateRange.Start.After(*params.DateRange.End) {
			return domain.NewValidationError("date_range", "início do intervalo posterior ao fim")
		}
		return nil
	}

	if params.Timeframe == nil {
		return nil
	}
	if !params.Timeframe.Valid() {
		return domain.NewValidationError("timeframe", "período nomeado desconhecido: "+string(*params.Timeframe))
	}

	currentYear := nowFunc().UTC().Year()
	var startYear, endYear int

	switch *params.Timeframe {
	case domain.TimeframeCurrentYear:
		startYear, endYear = currentYear, currentYear
	case domain.TimeframeLastYear:
		startYear, endYear = currentYear-1, currentYear-1
	case domain.TimeframeLast3Years:
		startYear, endYear = currentYear-2, currentYear
	case domain.TimeframeLast5Years:
		startYear, endYear = currentYear-4, currentYear
	}

	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 23, 59, 59, 0, time.UTC)
	params.DateRange = &domain.DateRange{Start: &start, End: &end}

	return nil
}
