package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

type ChartRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	// TF is normalized by the handler; unknown values fall back to the default.
	TF string `query:"tf" json:"tf" default:"1D"`
}

type TimeframeRequest struct {
	Key string `param:"key" json:"key" validate:"required"`
}
