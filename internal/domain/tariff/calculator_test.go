package tariff

import (
	"testing"
	"time"
)

// Fixed reference dates. July is busy season; February is off season.
var (
	julyWednesday   = time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)
	julySaturday    = time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC)
	julySunday      = time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC)
	februaryTuesday = time.Date(2025, time.February, 11, 0, 0, 0, 0, time.UTC)
)

func TestMinimumHours(t *testing.T) {
	cases := []struct {
		name      string
		crewSize  int
		isOddJob  bool
		jobDate   time.Time
		isWeekend bool
		isHoliday bool
		want      float64
	}{
		{name: "odd job bypasses everything", crewSize: 4, isOddJob: true, jobDate: julySunday, isWeekend: true, isHoliday: true, want: 2},
		{name: "busy season 1 mover", crewSize: 1, jobDate: julyWednesday, want: 3},
		{name: "busy season 2 movers", crewSize: 2, jobDate: julyWednesday, want: 4},
		{name: "busy season 3 movers", crewSize: 3, jobDate: julyWednesday, want: 6},
		{name: "busy season 4 movers", crewSize: 4, jobDate: julyWednesday, want: 7},
		{name: "busy season 5 movers", crewSize: 5, jobDate: julyWednesday, want: 7},
		{name: "off season 1 mover", crewSize: 1, jobDate: februaryTuesday, want: 3},
		{name: "off season 2 movers", crewSize: 2, jobDate: februaryTuesday, want: 3},
		{name: "off season 3 movers", crewSize: 3, jobDate: februaryTuesday, want: 5},
		{name: "off season 4 movers", crewSize: 4, jobDate: februaryTuesday, want: 6},
		{name: "saturday weekend adds one", crewSize: 2, jobDate: julySaturday, isWeekend: true, want: 5},
		{name: "sunday weekend adds two", crewSize: 2, jobDate: julySunday, isWeekend: true, want: 6},
		{name: "holiday adds two on a weekday", crewSize: 2, jobDate: julyWednesday, isHoliday: true, want: 6},
		{name: "saturday holiday stacks both surcharges", crewSize: 2, jobDate: julySaturday, isWeekend: true, isHoliday: true, want: 7},
		{name: "weekend flag without weekend date adds nothing", crewSize: 2, jobDate: julyWednesday, isWeekend: true, want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MinimumHours(tc.crewSize, tc.isOddJob, tc.jobDate, tc.isWeekend, tc.isHoliday)
			if got != tc.want {
				t.Fatalf("expected %v hours, got %v", tc.want, got)
			}
		})
	}
}

func TestHourlyRate(t *testing.T) {
	cases := []struct {
		name        string
		crewSize    int
		isLaborOnly bool
		want        Cents
	}{
		{name: "1 mover", crewSize: 1, want: 5900},
		{name: "2 movers", crewSize: 2, want: 14900},
		{name: "3 movers", crewSize: 3, want: 19900},
		{name: "4 movers", crewSize: 4, want: 24900},
		{name: "5 movers", crewSize: 5, want: 30900},
		{name: "labor only 1 mover", crewSize: 1, isLaborOnly: true, want: 5900},
		{name: "labor only 2 movers", crewSize: 2, isLaborOnly: true, want: 8500},
		{name: "labor only 3 movers uses standard table", crewSize: 3, isLaborOnly: true, want: 19900},
		{name: "unknown crew defaults to 2-mover rate", crewSize: 9, want: 14900},
		{name: "zero crew defaults to 2-mover rate", crewSize: 0, want: 14900},
		{name: "labor only zero crew defaults to 1-mover rate", crewSize: 0, isLaborOnly: true, want: 5900},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HourlyRate(tc.crewSize, tc.isLaborOnly); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestLaborCost(t *testing.T) {
	t.Run("minimum applies when hours fall short", func(t *testing.T) {
		cost, breakdown := LaborCost(2, 2, false, false, februaryTuesday, false, false)
		if cost != 44700 {
			t.Fatalf("expected 44700 cents, got %d", cost)
		}
		if breakdown.MinimumHours != 3 || breakdown.BillableHours != 3 || breakdown.ActualHours != 2 {
			t.Fatalf("unexpected breakdown: %+v", breakdown)
		}
		if breakdown.HourlyRate != 14900 {
			t.Fatalf("unexpected rate: %d", breakdown.HourlyRate)
		}
	})

	t.Run("hours above minimum bill as worked", func(t *testing.T) {
		cost, breakdown := LaborCost(3, 8, false, false, julyWednesday, false, false)
		if cost != 19900*8 {
			t.Fatalf("expected %d cents, got %d", 19900*8, cost)
		}
		if breakdown.BillableHours != 8 {
			t.Fatalf("unexpected billable hours: %v", breakdown.BillableHours)
		}
	})

	t.Run("labor only crew of two", func(t *testing.T) {
		cost, breakdown := LaborCost(2, 4, true, false, februaryTuesday, false, false)
		if cost != 8500*4 {
			t.Fatalf("expected %d cents, got %d", 8500*4, cost)
		}
		if !breakdown.IsLaborOnly {
			t.Fatalf("expected labor only flag echoed: %+v", breakdown)
		}
	})

	t.Run("fractional billable hours round to a cent", func(t *testing.T) {
		cost, _ := LaborCost(3, 6.5, false, false, julyWednesday, false, false)
		if cost != Cents(129350) {
			t.Fatalf("expected 129350 cents, got %d", cost)
		}
	})
}

func TestTravelFee(t *testing.T) {
	cases := []struct {
		miles float64
		want  Cents
	}{
		{miles: 0, want: 9900},
		{miles: 10, want: 9900 + 3980},
		{miles: 30, want: 21840},
		{miles: 50.5, want: 9900 + 20099},
	}
	for _, tc := range cases {
		if got := TravelFee(tc.miles); got != tc.want {
			t.Fatalf("TravelFee(%v): expected %d, got %d", tc.miles, tc.want, got)
		}
	}

	t.Run("monotonically non-decreasing", func(t *testing.T) {
		prev := TravelFee(0)
		for d := 1.0; d <= 200; d++ {
			cur := TravelFee(d)
			if cur < prev {
				t.Fatalf("fee decreased at %v miles: %d < %d", d, cur, prev)
			}
			prev = cur
		}
	})
}

func TestMileageFee(t *testing.T) {
	cases := []struct {
		miles float64
		want  Cents
	}{
		{miles: 0, want: 0},
		{miles: 30, want: 0},
		{miles: 50, want: 0},
		{miles: 50.01, want: 9952},
		{miles: 51, want: 10149},
		{miles: 100, want: 19900},
	}
	for _, tc := range cases {
		if got := MileageFee(tc.miles); got != tc.want {
			t.Fatalf("MileageFee(%v): expected %d, got %d", tc.miles, tc.want, got)
		}
	}
}

func TestBoxOverageFee(t *testing.T) {
	cases := []struct {
		name   string
		quoted int
		actual int
		want   Cents
	}{
		{name: "under quote", quoted: 10, actual: 8, want: 0},
		{name: "exactly at quote", quoted: 10, actual: 10, want: 0},
		{name: "within 25 percent allowance", quoted: 10, actual: 12, want: 0},
		{name: "partial box rounds up", quoted: 10, actual: 13, want: 500},
		{name: "well over", quoted: 10, actual: 20, want: 500 * 8},
		{name: "zero quoted bills every box", quoted: 0, actual: 3, want: 1500},
		{name: "zero quoted zero actual", quoted: 0, actual: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoxOverageFee(tc.quoted, tc.actual); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMattressBagFee(t *testing.T) {
	if got := MattressBagFee(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := MattressBagFee(3); got != 4500 {
		t.Fatalf("expected 4500, got %d", got)
	}
}

func TestEstimateJob(t *testing.T) {
	t.Run("busy season three mover move", func(t *testing.T) {
		got := EstimateJob(EstimateInput{
			CrewSize:         3,
			EstimatedHours:   4,
			DistanceMiles:    30,
			BoxCountQuoted:   10,
			MattressBagCount: 1,
			MaterialsCost:    2000,
			JobDate:          julyWednesday,
		})

		if got.Labor.MinimumHours != 6 || got.Labor.BillableHours != 6 {
			t.Fatalf("unexpected labor breakdown: %+v", got.Labor)
		}
		if got.LaborCost != 119400 {
			t.Fatalf("unexpected labor cost: %d", got.LaborCost)
		}
		if got.TravelFee != 21840 {
			t.Fatalf("unexpected travel fee: %d", got.TravelFee)
		}
		if got.MileageFee != 0 {
			t.Fatalf("unexpected mileage fee: %d", got.MileageFee)
		}
		if got.MattressBagFee != 1500 {
			t.Fatalf("unexpected mattress bag fee: %d", got.MattressBagFee)
		}
		if got.BoxOverageFee != 0 {
			t.Fatalf("estimate must not carry box overage: %d", got.BoxOverageFee)
		}
		if got.Total != 144740 {
			t.Fatalf("expected total 144740 cents, got %d", got.Total)
		}
	})

	t.Run("total is the exact sum of components", func(t *testing.T) {
		got := EstimateJob(EstimateInput{
			CrewSize:         2,
			EstimatedHours:   5,
			DistanceMiles:    75,
			BoxCountQuoted:   20,
			MattressBagCount: 2,
			MaterialsCost:    3550,
			JobDate:          februaryTuesday,
		})
		sum := got.LaborCost + got.TravelFee + got.MileageFee + got.MattressBagFee + got.MaterialsCost
		if got.Total != sum {
			t.Fatalf("total %d != component sum %d", got.Total, sum)
		}
	})
}

func TestActualJob(t *testing.T) {
	got := ActualJob(ActualInput{
		CrewSize:         3,
		ActualHours:      7,
		DistanceMiles:    30,
		BoxCountQuoted:   10,
		ActualBoxCount:   13,
		MattressBagCount: 1,
		MaterialsCost:    2000,
		JobDate:          julyWednesday,
	})

	if got.BoxOverageFee != 500 {
		t.Fatalf("expected 500 cents overage, got %d", got.BoxOverageFee)
	}
	if got.Labor.BillableHours != 7 {
		t.Fatalf("expected 7 billable hours, got %v", got.Labor.BillableHours)
	}
	sum := got.LaborCost + got.TravelFee + got.MileageFee + got.BoxOverageFee + got.MattressBagFee + got.MaterialsCost
	if got.Total != sum {
		t.Fatalf("total %d != component sum %d", got.Total, sum)
	}
}

func TestProfit(t *testing.T) {
	t.Run("margin from revenue and expenses", func(t *testing.T) {
		got := Profit(100000, Expenses{CrewPay: 40000, FuelCost: 5000})
		if got.TotalExpenses != 45000 {
			t.Fatalf("expected 45000 expenses, got %d", got.TotalExpenses)
		}
		if got.Profit != 55000 {
			t.Fatalf("expected 55000 profit, got %d", got.Profit)
		}
		if got.ProfitMargin != 55 {
			t.Fatalf("expected 55 percent margin, got %v", got.ProfitMargin)
		}
	})

	t.Run("zero revenue yields zero margin", func(t *testing.T) {
		got := Profit(0, Expenses{})
		if got.ProfitMargin != 0 {
			t.Fatalf("expected 0 margin, got %v", got.ProfitMargin)
		}
		if got.Profit != 0 || got.TotalExpenses != 0 {
			t.Fatalf("unexpected report: %+v", got)
		}
	})

	t.Run("expenses can exceed revenue", func(t *testing.T) {
		got := Profit(50000, Expenses{CrewPay: 60000, Other: 1000})
		if got.Profit != -11000 {
			t.Fatalf("expected -11000 profit, got %d", got.Profit)
		}
		if got.ProfitMargin != -22 {
			t.Fatalf("expected -22 percent margin, got %v", got.ProfitMargin)
		}
	})
}

func TestCents(t *testing.T) {
	if FromDollars(218.4) != 21840 {
		t.Fatalf("unexpected conversion: %d", FromDollars(218.4))
	}
	if FromDollars(0) != 0 {
		t.Fatalf("unexpected conversion: %d", FromDollars(0))
	}
	if Cents(21840).Dollars() != 218.4 {
		t.Fatalf("unexpected dollars: %v", Cents(21840).Dollars())
	}
	if Cents(5).String() != "0.05" {
		t.Fatalf("unexpected string: %s", Cents(5).String())
	}
}
