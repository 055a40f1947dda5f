package adapters

import (
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/models/store"
)

func MapStoreOrderToDomain(o store.Order) domain.Order {
	return domain.Order{
		Name:            o.Name,
		Company:         o.Company,
		TransactionDate: derefDate(o.TransactionDate),
		GrandTotal:      o.GrandTotal,
		PerBilled:       o.PerBilled,
		Currency:        o.Currency,
	}
}

func MapStoreInvoiceToDomain(i store.Invoice) domain.Invoice {
	return domain.Invoice{
		Name:       i.Name,
		Company:    i.Company,
		DueDate:    derefDate(i.DueDate),
		GrandTotal: i.GrandTotal,
		Currency:   i.Currency,
	}
}

func MapStoreScheduleToDomain(s store.RepeatSchedule) domain.RepeatSchedule {
	return domain.RepeatSchedule{
		Name:          s.Name,
		ReferenceKind: domain.DocKind(s.ReferenceKind),
		ReferenceName: s.ReferenceName,
		Frequency:     domain.Frequency(s.Frequency),
		NextDate:      s.NextDate,
		EndDate:       derefDate(s.EndDate),
	}
}

func MapStoreEmployeeToDomain(e store.Employee) domain.Employee {
	return domain.Employee{
		Name:           e.Name,
		Company:        e.Company,
		CTC:            e.CTC,
		SalaryCurrency: e.SalaryCurrency,
		DateOfJoining:  e.DateOfJoining,
		RelievingDate:  derefDate(e.RelievingDate),
	}
}

func MapStoreExpenseClaimToDomain(c store.ExpenseClaim) domain.ExpenseClaim {
	return domain.ExpenseClaim{
		Name:         c.Name,
		Company:      c.Company,
		PostingDate:  derefDate(c.PostingDate),
		TotalClaimed: c.TotalClaimed,
	}
}

func MapStoreCompanyToDomain(c store.Company) domain.Company {
	return domain.Company{
		Name:            c.Name,
		DefaultCurrency: c.DefaultCurrency,
	}
}

func derefDate(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
