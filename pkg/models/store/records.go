package store

import "time"

type Order struct {
	Kind            string
	Name            string
	Company         string
	Status          string
	TransactionDate *time.Time
	GrandTotal      float64
	PerBilled       float64
	Currency        string
}

type Invoice struct {
	Kind       string
	Name       string
	Company    string
	Status     string
	DueDate    *time.Time
	GrandTotal float64
	Currency   string
}

type RepeatSchedule struct {
	Name          string
	ReferenceKind string
	ReferenceName string
	Status        string
	Frequency     string
	NextDate      time.Time
	EndDate       *time.Time
}

type Employee struct {
	Name           string
	Company        string
	CTC            float64
	SalaryCurrency string
	DateOfJoining  time.Time
	RelievingDate  *time.Time
}

type ExpenseClaim struct {
	Name         string
	Company      string
	Status       string
	PostingDate  *time.Time
	TotalClaimed float64
}

type Company struct {
	Name            string
	DefaultCurrency string
}
