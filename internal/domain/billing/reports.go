package billing

import (
	"context"

	"github.com/hospitalops/insights/internal/platform/reporting"
)

// RegisterReports wires the billing reports into the catalog.
func RegisterReports(c *reporting.Catalog, svc *Service) {
	c.Register(reporting.Definition{
		ID:          "total-revenue",
		Name:        "Total Revenue",
		Description: "Sum of Paid bill amounts, rounded to two decimals",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		total, err := svc.TotalRevenue(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("total_revenue")
		t.Append(total)
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "unpaid-bills",
		Name:        "Unpaid Bills",
		Description: "Bills whose payment status differs from Paid, joined to the patient",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.UnpaidBills(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("bill_id", "patient_id", "first_name", "last_name", "amount", "payment_status")
		for _, b := range items {
			t.Append(b.BillID, b.PatientID, b.FirstName, b.LastName, b.Amount, b.PaymentStatus)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "high-value-bills",
		Name:        "High-Value Bills",
		Description: "Bills with amount strictly above the threshold",
		Parameters: []reporting.ParamSpec{
			{Name: "threshold", Type: "float", Default: "3000"},
		},
	}, func(ctx context.Context, params reporting.Params) (*reporting.Table, error) {
		threshold, err := reporting.FloatParam(params, "threshold", DefaultHighValueThreshold)
		if err != nil {
			return nil, err
		}
		items, err := svc.HighValueBills(ctx, threshold)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("bill_id", "patient_id", "amount", "payment_status")
		for _, b := range items {
			t.Append(b.BillID, b.PatientID, b.Amount, b.PaymentStatus)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "total-spend-per-patient",
		Name:        "Total Spend per Patient",
		Description: "Each patient's billed total, highest first",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.SpendPerPatient(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "last_name", "total_spend")
		for _, s := range items {
			t.Append(s.PatientID, s.FirstName, s.LastName, s.TotalSpend)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "payment-method-counts",
		Name:        "Payment Method Counts",
		Description: "Bill counts per payment method",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.PaymentMethodCounts(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("payment_method", "count")
		for _, m := range items {
			t.Append(m.PaymentMethod, m.Count)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "avg-bill-by-method",
		Name:        "Average Bill by Payment Method",
		Description: "Average bill amount per payment method, rounded to two decimals",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.AveragePerMethod(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("payment_method", "average_amount")
		for _, m := range items {
			t.Append(m.PaymentMethod, m.AverageAmount)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "above-average-treatment-spenders",
		Name:        "Above-Average Treatment Spenders",
		Description: "Patients whose treatment-linked billing total exceeds the average treatment cost",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.AboveAverageTreatmentSpenders(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "last_name", "total_billed")
		for _, s := range items {
			t.Append(s.PatientID, s.FirstName, s.LastName, s.TotalBilled)
		}
		return t, nil
	})

	c.Register(reporting.Definition{
		ID:          "billing-rank",
		Name:        "Patient Billing Rank",
		Description: "Per-patient billing totals with competition ranks",
	}, func(ctx context.Context, _ reporting.Params) (*reporting.Table, error) {
		items, err := svc.BillingRanks(ctx)
		if err != nil {
			return nil, err
		}
		t := reporting.NewTable("patient_id", "first_name", "last_name", "total_billed", "rank")
		for _, b := range items {
			t.Append(b.PatientID, b.FirstName, b.LastName, b.TotalBilled, b.Rank)
		}
		return t, nil
	})
}
