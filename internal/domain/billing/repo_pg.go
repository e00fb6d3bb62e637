package billing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

// NewReportRepoPG creates the Postgres-backed billing report repository.
func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository { return &reportRepoPG{pool: pool} }

func (r *reportRepoPG) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT ROUND(COALESCE(SUM(amount), 0), 2)::float8
		FROM billing
		WHERE payment_status = 'Paid'`).Scan(&total)
	return total, reporting.WrapDataAccess("total-revenue", err)
}

func (r *reportRepoPG) UnpaidBills(ctx context.Context) ([]*UnpaidBill, error) {
	// <> 'Paid' drops NULL payment_status rows, matching the reporting
	// convention that an unknown status is not billed as outstanding.
	rows, err := r.pool.Query(ctx, `
		SELECT b.bill_id, b.patient_id, p.first_name, p.last_name,
		       b.amount::float8, b.payment_status
		FROM billing b
		JOIN patients p ON p.patient_id = b.patient_id
		WHERE b.payment_status <> 'Paid'
		ORDER BY b.bill_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("unpaid-bills", err)
	}
	defer rows.Close()

	var items []*UnpaidBill
	for rows.Next() {
		var b UnpaidBill
		if err := rows.Scan(&b.BillID, &b.PatientID, &b.FirstName, &b.LastName,
			&b.Amount, &b.PaymentStatus); err != nil {
			return nil, reporting.WrapDataAccess("unpaid-bills", err)
		}
		items = append(items, &b)
	}
	return items, reporting.WrapDataAccess("unpaid-bills", rows.Err())
}

func (r *reportRepoPG) HighValueBills(ctx context.Context, threshold float64) ([]*HighValueBill, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bill_id, patient_id, amount::float8, payment_status
		FROM billing
		WHERE amount > $1
		ORDER BY amount DESC, bill_id ASC`, threshold)
	if err != nil {
		return nil, reporting.WrapDataAccess("high-value-bills", err)
	}
	defer rows.Close()

	var items []*HighValueBill
	for rows.Next() {
		var b HighValueBill
		if err := rows.Scan(&b.BillID, &b.PatientID, &b.Amount, &b.PaymentStatus); err != nil {
			return nil, reporting.WrapDataAccess("high-value-bills", err)
		}
		items = append(items, &b)
	}
	return items, reporting.WrapDataAccess("high-value-bills", rows.Err())
}

func (r *reportRepoPG) SpendPerPatient(ctx context.Context) ([]*PatientSpend, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.patient_id, p.first_name, p.last_name, SUM(b.amount)::float8
		FROM billing b
		JOIN patients p ON p.patient_id = b.patient_id
		GROUP BY b.patient_id, p.first_name, p.last_name
		ORDER BY SUM(b.amount) DESC, b.patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("total-spend-per-patient", err)
	}
	defer rows.Close()

	var items []*PatientSpend
	for rows.Next() {
		var s PatientSpend
		if err := rows.Scan(&s.PatientID, &s.FirstName, &s.LastName, &s.TotalSpend); err != nil {
			return nil, reporting.WrapDataAccess("total-spend-per-patient", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("total-spend-per-patient", rows.Err())
}

func (r *reportRepoPG) PaymentMethodCounts(ctx context.Context) ([]*MethodCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payment_method, COUNT(*)
		FROM billing
		WHERE payment_method IS NOT NULL
		GROUP BY payment_method
		ORDER BY COUNT(*) DESC, payment_method ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("payment-method-counts", err)
	}
	defer rows.Close()

	var items []*MethodCount
	for rows.Next() {
		var m MethodCount
		if err := rows.Scan(&m.PaymentMethod, &m.Count); err != nil {
			return nil, reporting.WrapDataAccess("payment-method-counts", err)
		}
		items = append(items, &m)
	}
	return items, reporting.WrapDataAccess("payment-method-counts", rows.Err())
}

func (r *reportRepoPG) AveragePerMethod(ctx context.Context) ([]*MethodAverage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payment_method, ROUND(AVG(amount), 2)::float8
		FROM billing
		WHERE payment_method IS NOT NULL
		GROUP BY payment_method
		ORDER BY AVG(amount) DESC, payment_method ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("avg-bill-by-method", err)
	}
	defer rows.Close()

	var items []*MethodAverage
	for rows.Next() {
		var m MethodAverage
		if err := rows.Scan(&m.PaymentMethod, &m.AverageAmount); err != nil {
			return nil, reporting.WrapDataAccess("avg-bill-by-method", err)
		}
		items = append(items, &m)
	}
	return items, reporting.WrapDataAccess("avg-bill-by-method", rows.Err())
}

func (r *reportRepoPG) AboveAverageTreatmentSpenders(ctx context.Context) ([]*TreatmentSpender, error) {
	// The scalar is the average over the treatment cost catalog, computed
	// independently of the per-patient grouping.
	rows, err := r.pool.Query(ctx, `
		SELECT b.patient_id, p.first_name, p.last_name, SUM(b.amount)::float8
		FROM billing b
		JOIN treatments t ON t.treatment_id = b.treatment_id
		JOIN patients p ON p.patient_id = b.patient_id
		GROUP BY b.patient_id, p.first_name, p.last_name
		HAVING SUM(b.amount) > (SELECT AVG(cost) FROM treatments)
		ORDER BY SUM(b.amount) DESC, b.patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("above-average-treatment-spenders", err)
	}
	defer rows.Close()

	var items []*TreatmentSpender
	for rows.Next() {
		var s TreatmentSpender
		if err := rows.Scan(&s.PatientID, &s.FirstName, &s.LastName, &s.TotalBilled); err != nil {
			return nil, reporting.WrapDataAccess("above-average-treatment-spenders", err)
		}
		items = append(items, &s)
	}
	return items, reporting.WrapDataAccess("above-average-treatment-spenders", rows.Err())
}

func (r *reportRepoPG) BillingRanks(ctx context.Context) ([]*PatientBillingRank, error) {
	// RANK() gives equal totals the same rank and skips the next ranks.
	rows, err := r.pool.Query(ctx, `
		SELECT b.patient_id, p.first_name, p.last_name,
		       SUM(b.amount)::float8,
		       RANK() OVER (ORDER BY SUM(b.amount) DESC)
		FROM billing b
		JOIN patients p ON p.patient_id = b.patient_id
		GROUP BY b.patient_id, p.first_name, p.last_name
		ORDER BY RANK() OVER (ORDER BY SUM(b.amount) DESC) ASC, b.patient_id ASC`)
	if err != nil {
		return nil, reporting.WrapDataAccess("billing-rank", err)
	}
	defer rows.Close()

	var items []*PatientBillingRank
	for rows.Next() {
		var b PatientBillingRank
		if err := rows.Scan(&b.PatientID, &b.FirstName, &b.LastName, &b.TotalBilled, &b.Rank); err != nil {
			return nil, reporting.WrapDataAccess("billing-rank", err)
		}
		items = append(items, &b)
	}
	return items, reporting.WrapDataAccess("billing-rank", rows.Err())
}
