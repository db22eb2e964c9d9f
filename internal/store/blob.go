package store

import (
	"encoding/json"
	"fmt"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/engine"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
)

// BlobVersion is the current parameters blob shape version.
const BlobVersion = 1

// ParamsBlob is the opaque parameters payload stored with every analysis.
// Report rendering reads this shape back verbatim, so the field names form a
// compatibility contract with previously stored analyses: fields may be
// added, never renamed or removed.
type ParamsBlob struct {
	Version            int                   `json:"version,omitempty"`
	Dues               float64               `json:"dues"`
	Renovation         float64               `json:"renovation"`
	Sqm                float64               `json:"sqm"`
	UseLoan            bool                  `json:"useLoan"`
	LoanRate           float64               `json:"loanRate,omitempty"`
	LoanTerm           int                   `json:"loanTerm,omitempty"`
	DownPaymentPercent float64               `json:"downPaymentPercent,omitempty"`
	AppreciationRate   float64               `json:"appreciationRate"`
	Results            engine.AnalysisResult `json:"results"`
}

// NewParamsBlob assembles the blob from the engine's input and output.
func NewParamsBlob(input engine.AnalysisInput, result engine.AnalysisResult) ParamsBlob {
	return ParamsBlob{
		Version:            BlobVersion,
		Dues:               input.MonthlyDues,
		Renovation:         input.RenovationCost,
		Sqm:                input.PropertyArea,
		UseLoan:            result.Financing.UseLoan,
		LoanRate:           result.Financing.MonthlyInterestRate,
		LoanTerm:           result.Financing.TermMonths,
		DownPaymentPercent: result.Financing.DownPaymentPercent,
		AppreciationRate:   result.AppreciationRatePercent,
		Results:            result,
	}
}

// Encode serializes the blob for storage.
func (b ParamsBlob) Encode() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params blob: %w", err)
	}
	return data, nil
}

// DecodeParamsBlob reads a stored blob, tolerating payloads written by older
// application versions: the version field defaults to 1, unknown fields are
// ignored, and missing financing fields are filled from the policy defaults
// when a loan was used. Decoding only fails on malformed JSON.
func DecodeParamsBlob(data []byte) (ParamsBlob, error) {
	var blob ParamsBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return ParamsBlob{}, fmt.Errorf("failed to decode params blob: %w", err)
	}
	if blob.Version == 0 {
		blob.Version = 1
	}
	if blob.UseLoan {
		if blob.LoanRate == 0 {
			blob.LoanRate = constants.DefaultMonthlyInterestRatePercent
		}
		if blob.LoanTerm == 0 {
			blob.LoanTerm = constants.DefaultTermMonths
		}
		if blob.DownPaymentPercent == 0 {
			blob.DownPaymentPercent = constants.DefaultDownPaymentPercent
		}
	}
	return blob, nil
}
