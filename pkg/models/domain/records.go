package domain

import "time"

// DocKind discriminates the two order streams a forecast draws from.
type DocKind string

const (
	DocKindSalesOrder    DocKind = "sales_order"
	DocKindPurchaseOrder DocKind = "purchase_order"

	DocKindSalesInvoice    DocKind = "sales_invoice"
	DocKindPurchaseInvoice DocKind = "purchase_invoice"
)

type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencyHalfYearly Frequency = "half_yearly"
	FrequencyYearly     Frequency = "yearly"
)

// Order covers sales and purchase orders. A zero TransactionDate marks a
// malformed record; aggregation skips it and counts the exclusion.
type Order struct {
	Name            string
	Company         string
	TransactionDate time.Time
	GrandTotal      float64
	PerBilled       float64
	Currency        string
}

type Invoice struct {
	Name       string
	Company    string
	DueDate    time.Time
	GrandTotal float64
	Currency   string
}

// RepeatSchedule materializes future instances of its reference document
// on a fixed cadence, starting at NextDate. A zero EndDate means the
// schedule runs indefinitely.
type RepeatSchedule struct {
	Name          string
	ReferenceKind DocKind
	ReferenceName string
	Frequency     Frequency
	NextDate      time.Time
	EndDate       time.Time
}

// Employee carries the payroll inputs. A zero RelievingDate means the
// employee is active through the forecast horizon.
type Employee struct {
	Name           string
	Company        string
	CTC            float64
	SalaryCurrency string
	DateOfJoining  time.Time
	RelievingDate  time.Time
}

// ExpenseClaim has no currency of its own; the owning company's default
// currency applies.
type ExpenseClaim struct {
	Name         string
	Company      string
	PostingDate  time.Time
	TotalClaimed float64
}

type Company struct {
	Name            string
	DefaultCurrency string
}
