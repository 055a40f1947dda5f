package api

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Row struct {
	Label          string             `json:"label"`
	Indent         int                `json:"indent"`
	IsGroup        bool               `json:"is_group,omitempty"`
	Bold           bool               `json:"bold,omitempty"`
	WarnIfNegative bool               `json:"warn_if_negative,omitempty"`
	Currency       string             `json:"currency,omitempty"`
	Amounts        map[string]float64 `json:"amounts,omitempty"`
}

type ChartDataset struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Chart struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type SummaryTile struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Currency  string  `json:"currency"`
	Indicator string  `json:"indicator,omitempty"`
}

type ForecastReport struct {
	Columns []Column      `json:"columns"`
	Rows    []Row         `json:"rows"`
	Message string        `json:"message,omitempty"`
	Chart   Chart         `json:"chart"`
	Summary []SummaryTile `json:"summary"`
}

type Company struct {
	Name            string `json:"name"`
	DefaultCurrency string `json:"default_currency"`
}
