package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const OrdersSchema = `
	CREATE TABLE IF NOT EXISTS orders (
		kind VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		company VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		transaction_date DATE NULL,
		grand_total DOUBLE NOT NULL,
		per_billed DOUBLE NOT NULL DEFAULT 0,
		currency VARCHAR NOT NULL,
		PRIMARY KEY (kind, name)
	);
`

const InvoicesSchema = `
	CREATE TABLE IF NOT EXISTS invoices (
		kind VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		company VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		due_date DATE NULL,
		grand_total DOUBLE NOT NULL,
		currency VARCHAR NOT NULL,
		PRIMARY KEY (kind, name)
	);
`

const RepeatSchedulesSchema = `
	CREATE TABLE IF NOT EXISTS repeat_schedules (
		name VARCHAR NOT NULL PRIMARY KEY,
		reference_kind VARCHAR NOT NULL,
		reference_name VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		frequency VARCHAR NOT NULL,
		next_date DATE NOT NULL,
		end_date DATE NULL
	);
`

const EmployeesSchema = `
	CREATE TABLE IF NOT EXISTS employees (
		name VARCHAR NOT NULL PRIMARY KEY,
		company VARCHAR NOT NULL,
		ctc DOUBLE NOT NULL DEFAULT 0,
		salary_currency VARCHAR NOT NULL,
		date_of_joining DATE NOT NULL,
		relieving_date DATE NULL
	);
`

const ExpenseClaimsSchema = `
	CREATE TABLE IF NOT EXISTS expense_claims (
		name VARCHAR NOT NULL PRIMARY KEY,
		company VARCHAR NOT NULL,
		status VARCHAR NOT NULL,
		posting_date DATE NULL,
		total_claimed DOUBLE NOT NULL
	);
`

const CompaniesSchema = `
	CREATE TABLE IF NOT EXISTS companies (
		name VARCHAR NOT NULL PRIMARY KEY,
		default_currency VARCHAR NOT NULL
	);
`

const CurrencyRatesSchema = `
	CREATE TABLE IF NOT EXISTS currency_rates (
		from_currency VARCHAR NOT NULL,
		to_currency VARCHAR NOT NULL,
		rate_date DATE NOT NULL,
		rate VARCHAR NOT NULL,
		PRIMARY KEY (from_currency, to_currency, rate_date)
	);
`

var bootQueries = []string{
	OrdersSchema,
	InvoicesSchema,
	RepeatSchedulesSchema,
	EmployeesSchema,
	ExpenseClaimsSchema,
	CompaniesSchema,
	CurrencyRatesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
