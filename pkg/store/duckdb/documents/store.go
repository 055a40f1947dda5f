package documents

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/store"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// QueryFilter restricts a document query to the forecast horizon and,
// optionally, to one company. An empty Company matches all companies.
type QueryFilter struct {
	From    time.Time
	To      time.Time
	Company string
}

// Store is the read-only document query contract the forecast engine runs
// against, plus the ingestion methods used by seeding and tests.
//
// Records with a NULL relevant date are returned rather than filtered out
// so callers can observe the exclusion of malformed documents.
type Store interface {
	Orders(ctx context.Context, kind string, f QueryFilter) ([]store.Order, error)
	Order(ctx context.Context, kind, name string) (*store.Order, error)
	Invoices(ctx context.Context, kind string, f QueryFilter) ([]store.Invoice, error)
	ActiveSchedules(ctx context.Context, referenceKind string) ([]store.RepeatSchedule, error)
	Employees(ctx context.Context, company string) ([]store.Employee, error)
	ExpenseClaims(ctx context.Context, f QueryFilter) ([]store.ExpenseClaim, error)
	Companies(ctx context.Context) ([]store.Company, error)
	DefaultCurrency(ctx context.Context, company string) (string, error)

	AddOrders(ctx context.Context, orders []store.Order) error
	AddInvoices(ctx context.Context, invoices []store.Invoice) error
	AddSchedules(ctx context.Context, schedules []store.RepeatSchedule) error
	AddEmployees(ctx context.Context, employees []store.Employee) error
	AddExpenseClaims(ctx context.Context, claims []store.ExpenseClaim) error
	AddCompanies(ctx context.Context, companies []store.Company) error
}

type documentStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &documentStore{db: db}, nil
}

func (d *documentStore) Orders(ctx context.Context, kind string, f QueryFilter) ([]store.Order, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT kind, name, company, status, transaction_date, grand_total, per_billed, currency
		FROM orders
		WHERE kind = ?
		  AND status NOT IN ('Draft', 'Cancelled')
		  AND (transaction_date IS NULL OR transaction_date BETWEEN ? AND ?)`
	args := []any{kind, f.From, f.To}
	if f.Company != "" {
		query += `
		  AND company = ?`
		args = append(args, f.Company)
	}
	query += `
		ORDER BY transaction_date`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s query failed: %w", kind, err)
	}
	defer closeRows(rows, logger)

	var orders []store.Order
	for rows.Next() {
		var o store.Order
		var txDate sql.NullTime
		if err := rows.Scan(&o.Kind, &o.Name, &o.Company, &o.Status, &txDate, &o.GrandTotal, &o.PerBilled, &o.Currency); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		o.TransactionDate = nullableTime(txDate)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (d *documentStore) Order(ctx context.Context, kind, name string) (*store.Order, error) {
	query := `
		SELECT kind, name, company, status, transaction_date, grand_total, per_billed, currency
		FROM orders
		WHERE kind = ? AND name = ?`

	var o store.Order
	var txDate sql.NullTime
	err := d.db.QueryRowContext(ctx, query, kind, name).
		Scan(&o.Kind, &o.Name, &o.Company, &o.Status, &txDate, &o.GrandTotal, &o.PerBilled, &o.Currency)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s %q not found", kind, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s lookup failed: %w", kind, err)
	}
	o.TransactionDate = nullableTime(txDate)
	return &o, nil
}

func (d *documentStore) Invoices(ctx context.Context, kind string, f QueryFilter) ([]store.Invoice, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT kind, name, company, status, due_date, grand_total, currency
		FROM invoices
		WHERE kind = ?
		  AND status NOT IN ('Draft', 'Cancelled')
		  AND (due_date IS NULL OR due_date BETWEEN ? AND ?)`
	args := []any{kind, f.From, f.To}
	if f.Company != "" {
		query += `
		  AND company = ?`
		args = append(args, f.Company)
	}
	query += `
		ORDER BY due_date`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s query failed: %w", kind, err)
	}
	defer closeRows(rows, logger)

	var invoices []store.Invoice
	for rows.Next() {
		var i store.Invoice
		var dueDate sql.NullTime
		if err := rows.Scan(&i.Kind, &i.Name, &i.Company, &i.Status, &dueDate, &i.GrandTotal, &i.Currency); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		i.DueDate = nullableTime(dueDate)
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

func (d *documentStore) ActiveSchedules(ctx context.Context, referenceKind string) ([]store.RepeatSchedule, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT name, reference_kind, reference_name, status, frequency, next_date, end_date
		FROM repeat_schedules
		WHERE status = 'Active' AND reference_kind = ?
		ORDER BY next_date`

	rows, err := d.db.QueryContext(ctx, query, referenceKind)
	if err != nil {
		return nil, fmt.Errorf("repeat schedule query failed: %w", err)
	}
	defer closeRows(rows, logger)

	var schedules []store.RepeatSchedule
	for rows.Next() {
		var s store.RepeatSchedule
		var endDate sql.NullTime
		if err := rows.Scan(&s.Name, &s.ReferenceKind, &s.ReferenceName, &s.Status, &s.Frequency, &s.NextDate, &endDate); err != nil {
			return nil, fmt.Errorf("scan repeat schedule row: %w", err)
		}
		s.EndDate = nullableTime(endDate)
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (d *documentStore) Employees(ctx context.Context, company string) ([]store.Employee, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT name, company, ctc, salary_currency, date_of_joining, relieving_date
		FROM employees
		WHERE ctc > 0`
	args := []any{}
	if company != "" {
		query += `
		  AND company = ?`
		args = append(args, company)
	}
	query += `
		ORDER BY name`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("employee query failed: %w", err)
	}
	defer closeRows(rows, logger)

	var employees []store.Employee
	for rows.Next() {
		var e store.Employee
		var relieving sql.NullTime
		if err := rows.Scan(&e.Name, &e.Company, &e.CTC, &e.SalaryCurrency, &e.DateOfJoining, &relieving); err != nil {
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		e.RelievingDate = nullableTime(relieving)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (d *documentStore) ExpenseClaims(ctx context.Context, f QueryFilter) ([]store.ExpenseClaim, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT name, company, status, posting_date, total_claimed
		FROM expense_claims
		WHERE status NOT IN ('Rejected', 'Cancelled')
		  AND (posting_date IS NULL OR posting_date BETWEEN ? AND ?)`
	args := []any{f.From, f.To}
	if f.Company != "" {
		query += `
		  AND company = ?`
		args = append(args, f.Company)
	}
	query += `
		ORDER BY posting_date`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("expense claim query failed: %w", err)
	}
	defer closeRows(rows, logger)

	var claims []store.ExpenseClaim
	for rows.Next() {
		var c store.ExpenseClaim
		var posting sql.NullTime
		if err := rows.Scan(&c.Name, &c.Company, &c.Status, &posting, &c.TotalClaimed); err != nil {
			return nil, fmt.Errorf("scan expense claim row: %w", err)
		}
		c.PostingDate = nullableTime(posting)
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

func (d *documentStore) Companies(ctx context.Context) ([]store.Company, error) {
	logger := zerolog.Ctx(ctx)
	rows, err := d.db.QueryContext(ctx, `SELECT name, default_currency FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("company query failed: %w", err)
	}
	defer closeRows(rows, logger)

	var companies []store.Company
	for rows.Next() {
		var c store.Company
		if err := rows.Scan(&c.Name, &c.DefaultCurrency); err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (d *documentStore) DefaultCurrency(ctx context.Context, company string) (string, error) {
	var currency string
	err := d.db.QueryRowContext(ctx,
		`SELECT default_currency FROM companies WHERE name = ?`, company).Scan(&currency)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("company %q not found", company)
	}
	if err != nil {
		return "", fmt.Errorf("default currency lookup failed: %w", err)
	}
	return currency, nil
}

func (d *documentStore) AddOrders(ctx context.Context, orders []store.Order) error {
	return d.insert(ctx,
		`INSERT INTO orders (kind, name, company, status, transaction_date, grand_total, per_billed, currency)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(orders), func(i int) []any {
			o := orders[i]
			return []any{o.Kind, o.Name, o.Company, o.Status, o.TransactionDate, o.GrandTotal, o.PerBilled, o.Currency}
		})
}

func (d *documentStore) AddInvoices(ctx context.Context, invoices []store.Invoice) error {
	return d.insert(ctx,
		`INSERT INTO invoices (kind, name, company, status, due_date, grand_total, currency)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(invoices), func(i int) []any {
			inv := invoices[i]
			return []any{inv.Kind, inv.Name, inv.Company, inv.Status, inv.DueDate, inv.GrandTotal, inv.Currency}
		})
}

func (d *documentStore) AddSchedules(ctx context.Context, schedules []store.RepeatSchedule) error {
	return d.insert(ctx,
		`INSERT INTO repeat_schedules (name, reference_kind, reference_name, status, frequency, next_date, end_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(schedules), func(i int) []any {
			s := schedules[i]
			return []any{s.Name, s.ReferenceKind, s.ReferenceName, s.Status, s.Frequency, s.NextDate, s.EndDate}
		})
}

func (d *documentStore) AddEmployees(ctx context.Context, employees []store.Employee) error {
	return d.insert(ctx,
		`INSERT INTO employees (name, company, ctc, salary_currency, date_of_joining, relieving_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		len(employees), func(i int) []any {
			e := employees[i]
			return []any{e.Name, e.Company, e.CTC, e.SalaryCurrency, e.DateOfJoining, e.RelievingDate}
		})
}

func (d *documentStore) AddExpenseClaims(ctx context.Context, claims []store.ExpenseClaim) error {
	return d.insert(ctx,
		`INSERT INTO expense_claims (name, company, status, posting_date, total_claimed)
		 VALUES (?, ?, ?, ?, ?)`,
		len(claims), func(i int) []any {
			c := claims[i]
			return []any{c.Name, c.Company, c.Status, c.PostingDate, c.TotalClaimed}
		})
}

func (d *documentStore) AddCompanies(ctx context.Context, companies []store.Company) error {
	return d.insert(ctx,
		`INSERT INTO companies (name, default_currency) VALUES (?, ?)`,
		len(companies), func(i int) []any {
			c := companies[i]
			return []any{c.Name, c.DefaultCurrency}
		})
}

func (d *documentStore) insert(ctx context.Context, query string, n int, args func(int) []any) error {
	if n == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = d.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return nil
}

func closeRows(rows *sql.Rows, logger *zerolog.Logger) {
	if err := rows.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close query rows")
	}
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
