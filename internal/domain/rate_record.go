// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Dimension é o eixo categórico usado para agrupar registros de tarifas
type Dimension string

const (
	DimensionFirm         Dimension = "FIRM"
	DimensionStaffClass   Dimension = "STAFF_CLASS"
	DimensionAttorney     Dimension = "ATTORNEY"
	DimensionPracticeArea Dimension = "PRACTICE_AREA"
	DimensionOffice       Dimension = "OFFICE"
	DimensionGeography    Dimension = "GEOGRAPHY"
)

// Dimensions lista todas as dimensões de agrupamento suportadas
var Dimensions = []Dimension{
	DimensionFirm,
	DimensionStaffClass,
	DimensionAttorney,
	DimensionPracticeArea,
	DimensionOffice,
	DimensionGeography,
}

// Valid verifica se a dimensão é uma das dimensões suportadas
func (d Dimension) Valid() bool {
	for _, dim := range Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// RateStatus representa o estado de negociação de uma tarifa
type RateStatus string

const (
	RateStatusDraft     RateStatus = "DRAFT"
	RateStatusSubmitted RateStatus = "SUBMITTED"
	RateStatusApproved  RateStatus = "APPROVED"
	RateStatusRejected  RateStatus = "REJECTED"
)

// Valid verifica se o estado de negociação é suportado
func (s RateStatus) Valid() bool {
	switch s {
	case RateStatusDraft, RateStatusSubmitted, RateStatusApproved, RateStatusRejected:
		return true
	}
	return false
}

// RateType representa o tipo de tarifa
type RateType string

const (
	RateTypeStandard   RateType = "STANDARD"
	RateTypeNegotiated RateType = "NEGOTIATED"
	RateTypeProposed   RateType = "PROPOSED"
)

// Valid verifica se o tipo de tarifa é suportado
func (t RateType) Valid() bool {
	switch t {
	case RateTypeStandard, RateTypeNegotiated, RateTypeProposed:
		return true
	}
	return false
}

// RateRecord é um registro bruto de tarifa, imutável durante o cálculo.
// Os valores monetários (atual e proposto) estão sempre na mesma moeda do
// campo Currency; a conversão entre moedas é um passo explícito anterior à
// agregação (ver internal/currency).
type RateRecord struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"client_id,omitempty"`
	FirmID         string  `json:"firm_id"`
	FirmName       string  `json:"firm_name,omitempty"`
	AttorneyID     string  `json:"attorney_id,omitempty"`
	AttorneyName   string  `json:"attorney_name,omitempty"`
	StaffClass     string  `json:"staff_class,omitempty"`
	PracticeArea   string  `json:"practice_area,omitempty"`
	OfficeID       string  `json:"office_id,omitempty"`
	GeographyID    string  `json:"geography_id,omitempty"`
	Currency       string  `json:"currency"`
	CurrentAmount  float64 `json:"current_amount"`
	ProposedAmount float64 `json:"proposed_amount"`
	// FeeAdjustment é o abatimento de fee arrangement fornecido externamente,
	// usado apenas pela visão NET_IMPACT. Pode ser zero.
	FeeAdjustment float64    `json:"fee_adjustment,omitempty"`
	EffectiveYear int        `json:"effective_year"`
	BilledHours   float64    `json:"billed_hours,omitempty"`
	Status        RateStatus `json:"status,omitempty"`
	Type          RateType   `json:"type,omitempty"`
}

// Impact retorna a diferença monetária entre o valor proposto e o atual
func (r *RateRecord) Impact() float64 {
	return r.ProposedAmount - r.CurrentAmount
}

// DimensionKey retorna a chave e o rótulo do registro para a dimensão informada
func (r *RateRecord) DimensionKey(dimension Dimension) (string, string) {
	switch dimension {
	case DimensionFirm:
		return r.FirmID, r.FirmName
	case DimensionStaffClass:
		return r.StaffClass, r.StaffClass
	case DimensionAttorney:
		return r.AttorneyID, r.AttorneyName
	case DimensionPracticeArea:
		return r.PracticeArea, r.PracticeArea
	case DimensionOffice:
		return r.OfficeID, r.OfficeID
	case DimensionGeography:
		return r.GeographyID, r.GeographyID
	}
	return "", ""
}
