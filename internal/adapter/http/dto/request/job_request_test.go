package request

import (
	"errors"
	"testing"
	"time"
)

func TestJobRequest_ToEntity(t *testing.T) {
	r := JobRequest{
		CustomerID:     "cust-1",
		Title:          "Two bedroom move",
		PreferredDate:  "2025-07-12",
		CrewSize:       3,
		EstimatedHours: 4,
		MaterialsCost:  25.50,
	}

	j, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.PreferredDate.Format("2006-01-02") != "2025-07-12" {
		t.Fatalf("unexpected preferred date: %v", j.PreferredDate)
	}
	if int64(j.MaterialsCost) != 2550 {
		t.Fatalf("expected 2550 cents, got %d", int64(j.MaterialsCost))
	}
}

func TestJobRequest_ToEntity_BadDate(t *testing.T) {
	r := JobRequest{Title: "Move", PreferredDate: "07/12/2025"}
	if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestJobRequest_ToEntity_EmptyDate(t *testing.T) {
	r := JobRequest{Title: "Move"}
	j, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !j.PreferredDate.IsZero() {
		t.Fatalf("expected zero preferred date, got %v", j.PreferredDate)
	}
}

func TestPricingRequest_ToEstimateInput(t *testing.T) {
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	r := PricingRequest{CrewSize: 3, Hours: 4, JobDate: "2025-07-12"}
	in, err := r.ToEstimateInput(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.JobDate.Month() != time.July {
		t.Fatalf("expected July, got %v", in.JobDate.Month())
	}

	r2 := PricingRequest{CrewSize: 2, Hours: 3}
	in2, err := r2.ToEstimateInput(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in2.JobDate.Equal(now) {
		t.Fatalf("expected fallback to now, got %v", in2.JobDate)
	}
}

func TestExpensesRequest_ToExpenses(t *testing.T) {
	r := ExpensesRequest{CrewPay: 300, FuelCost: 45.25, Other: 10}
	e := r.ToExpenses()
	if int64(e.Total()) != 35525 {
		t.Fatalf("expected 35525 cents, got %d", int64(e.Total()))
	}
}
