package domain

import (
	"encoding/json"
	"time"

	"github.com/lexrates/rate-insights-api/pkg/utils"
)

// Timeframe é um período nomeado que substitui um intervalo de datas explícito
type Timeframe string

const (
	TimeframeCurrentYear Timeframe = "CURRENT_YEAR"
	TimeframeLastYear    Timeframe = "LAST_YEAR"
	TimeframeLast3Years  Timeframe = "LAST_3_YEARS"
	TimeframeLast5Years  Timeframe = "LAST_5_YEARS"
)

// Valid verifica se o período nomeado é suportado
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeCurrentYear, TimeframeLastYear, TimeframeLast3Years, TimeframeLast5Years:
		return true
	}
	return false
}

// DateRange é um intervalo de datas inclusivo
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// UnmarshalJSON aceita datas tanto em RFC3339 quanto no formato curto
// (2006-01-02) usado pelos dashboards
func (d *DateRange) UnmarshalJSON(data []byte) error {
	raw := struct {
		Start *string `json:"start"`
		End   *string `json:"end"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := parseFlexibleDate(raw.Start)
	if err != nil {
		return err
	}
	end, err := parseFlexibleDate(raw.End)
	if err != nil {
		return err
	}

	d.Start = start
	d.End = end
	return nil
}

func parseFlexibleDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, *value); err == nil {
		return &parsed, nil
	}

	return utils.ParseDate(*value)
}

// FilterParameters é o conjunto canônico de parâmetros de filtragem usado por
// todo o pipeline de análise. Campos de dimensão não informados significam
// "todos" (nenhuma restrição), nunca um conjunto vazio.
//
// Invariante: no máximo um entre {DateRange, Timeframe} pode ser informado.
// Após a normalização, o DateRange está sempre preenchido quando um período
// nomeado foi resolvido.
type FilterParameters struct {
	ClientID     *string `json:"client_id,omitempty"`
	FirmID       *string `json:"firm_id,omitempty"`
	AttorneyID   *string `json:"attorney_id,omitempty"`
	StaffClass   *string `json:"staff_class,omitempty"`
	PracticeArea *string `json:"practice_area,omitempty"`
	OfficeID     *string `json:"office_id,omitempty"`
	GeographyID  *string `json:"geography_id,omitempty"`

	DateRange *DateRange `json:"date_range,omitempty"`
	Timeframe *Timeframe `json:"timeframe,omitempty"`

	PeerGroupID *string `json:"peer_group_id,omitempty"`
	Currency    string  `json:"currency,omitempty"`

	RateStatus *RateStatus `json:"rate_status,omitempty"`
	RateType   *RateType   `json:"rate_type,omitempty"`

	MinIncreasePct *float64 `json:"min_increase_pct,omitempty"`
	MaxIncreasePct *float64 `json:"max_increase_pct,omitempty"`
	BudgetCap      *float64 `json:"budget_cap,omitempty"`
}

// YearRange retorna os anos efetivos cobertos pelo intervalo de datas do
// filtro. Retorna (0, 0) quando o filtro não restringe o período.
func (f *FilterParameters) YearRange() (int, int) {
	if f == nil || f.DateRange == nil || f.DateRange.Start == nil || f.DateRange.End == nil {
		return 0, 0
	}
	return f.DateRange.Start.Year(), f.DateRange.End.Year()
}
