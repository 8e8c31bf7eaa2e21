package tariff

import (
	"math"
	"time"
)

// Published tariff rates.
//
// Hourly rates by crew size. Crews of 2+ include a van or truck; the 5-mover
// rate is the 4-mover crew plus one additional mover.
var hourlyRates = map[int]Cents{
	1: 5900,
	2: 14900,
	3: 19900,
	4: 24900,
	5: 30900,
}

// Labor-only hourly rates (no vehicle), offered for crews of 1 or 2.
var laborOnlyRates = map[int]Cents{
	1: 5900,
	2: 8500,
}

const (
	travelBaseFee     Cents = 9900 // flat travel fee
	travelMileageRate Cents = 199  // per mile, round trip
	over50MileRate    Cents = 199  // per one-way mile on jobs over 50 miles
	boxOverageRate    Cents = 500  // per box beyond the overage allowance
	mattressBagRate   Cents = 1500 // per mattress bag
)

// boxOverageAllowance is the fraction of the quoted box count a customer may
// exceed before overage billing starts.
const boxOverageAllowance = 0.25

// oddJobMinimumHours is the reduced minimum for van-only and odd jobs,
// bypassing all seasonal and day-of-week rules.
const oddJobMinimumHours = 2.0

// LaborBreakdown echoes how a labor cost was derived. It is returned with
// every priced job so the admin UI can show the math behind a figure.
type LaborBreakdown struct {
	HourlyRate    Cents   `json:"hourly_rate"`
	MinimumHours  float64 `json:"minimum_hours"`
	ActualHours   float64 `json:"actual_hours"`
	BillableHours float64 `json:"billable_hours"`
	IsOddJob      bool    `json:"is_odd_job"`
	IsLaborOnly   bool    `json:"is_labor_only"`
}

// Breakdown is the full fee composition for a priced job. BoxOverageFee is
// only populated by ActualJob; estimates carry no overage term.
type Breakdown struct {
	LaborCost      Cents          `json:"labor_cost"`
	TravelFee      Cents          `json:"travel_fee"`
	MileageFee     Cents          `json:"mileage_fee"`
	BoxOverageFee  Cents          `json:"box_overage_fee"`
	MattressBagFee Cents          `json:"mattress_bag_fee"`
	MaterialsCost  Cents          `json:"materials_cost"`
	Total          Cents          `json:"total"`
	Labor          LaborBreakdown `json:"breakdown"`
}

// EstimateInput carries the pricing parameters collected before a move.
//
// JobDate is the scheduled move date and drives the season lookup; callers
// must always supply it (the usecase layer substitutes the current date once
// when a job has no preferred date). IsWeekend and IsHoliday remain explicit
// dispatcher-set flags: they are combined with JobDate's weekday but never
// derived from it.
type EstimateInput struct {
	CrewSize         int
	EstimatedHours   float64
	DistanceMiles    float64
	BoxCountQuoted   int
	MattressBagCount int
	MaterialsCost    Cents
	IsOddJob         bool
	IsLaborOnly      bool
	JobDate          time.Time
	IsWeekend        bool
	IsHoliday        bool
}

// ActualInput carries the post-job reconciliation parameters.
type ActualInput struct {
	CrewSize         int
	ActualHours      float64
	DistanceMiles    float64
	BoxCountQuoted   int
	ActualBoxCount   int
	MattressBagCount int
	MaterialsCost    Cents
	IsOddJob         bool
	IsLaborOnly      bool
	JobDate          time.Time
	IsWeekend        bool
	IsHoliday        bool
}

// busySeason reports whether the month falls in the busy season
// (May through September inclusive).
func busySeason(month time.Month) bool {
	return month >= time.May && month <= time.September
}

// MinimumHours returns the contractual minimum billable hours for a job.
//
// Odd jobs are billed at a flat reduced minimum regardless of season or
// weekday. Otherwise the base minimum depends on crew size and season, with
// additive surcharges: +1 hour for a Saturday flagged as weekend, +2 hours
// for a holiday or a Sunday flagged as weekend. The surcharges stack when
// both conditions hold independently.
func MinimumHours(crewSize int, isOddJob bool, jobDate time.Time, isWeekend, isHoliday bool) float64 {
	if isOddJob {
		return oddJobMinimumHours
	}

	var minimum float64
	if busySeason(jobDate.Month()) {
		switch {
		case crewSize == 2:
			minimum = 4
		case crewSize == 3:
			minimum = 6
		case crewSize >= 4:
			minimum = 7
		default:
			minimum = 3
		}
	} else {
		switch {
		case crewSize == 2:
			minimum = 3
		case crewSize == 3:
			minimum = 5
		case crewSize >= 4:
			minimum = 6
		default:
			minimum = 3
		}
	}

	if isWeekend && jobDate.Weekday() == time.Saturday {
		minimum += 1
	}
	if isHoliday || (isWeekend && jobDate.Weekday() == time.Sunday) {
		minimum += 2
	}

	return minimum
}

// HourlyRate selects the published rate for a crew. Unknown crew sizes fall
// back to the 2-mover rate (or the 1-mover labor-only rate); the published
// tariff defaults rather than rejecting, and callers validate crew size at
// the request boundary.
func HourlyRate(crewSize int, isLaborOnly bool) Cents {
	if isLaborOnly && crewSize <= 2 {
		if rate, ok := laborOnlyRates[crewSize]; ok {
			return rate
		}
		return laborOnlyRates[1]
	}
	if rate, ok := hourlyRates[crewSize]; ok {
		return rate
	}
	return hourlyRates[2]
}

// LaborCost computes the labor charge for a job: the selected hourly rate
// times billable hours, where billable hours is the greater of the worked
// hours and the contractual minimum.
func LaborCost(crewSize int, hours float64, isLaborOnly, isOddJob bool, jobDate time.Time, isWeekend, isHoliday bool) (Cents, LaborBreakdown) {
	rate := HourlyRate(crewSize, isLaborOnly)
	minimum := MinimumHours(crewSize, isOddJob, jobDate, isWeekend, isHoliday)
	billable := math.Max(hours, minimum)

	cost := Cents(math.Round(float64(rate) * billable))
	return cost, LaborBreakdown{
		HourlyRate:    rate,
		MinimumHours:  minimum,
		ActualHours:   hours,
		BillableHours: billable,
		IsOddJob:      isOddJob,
		IsLaborOnly:   isLaborOnly,
	}
}

// TravelFee is the flat base fee plus the round-trip mileage charge.
func TravelFee(distanceMiles float64) Cents {
	roundTrip := distanceMiles * 2
	return travelBaseFee + Cents(math.Round(roundTrip*float64(travelMileageRate)))
}

// MileageFee is the long-distance surcharge for jobs over 50 one-way miles.
// It is billed on the one-way distance and is additive to TravelFee.
func MileageFee(distanceMiles float64) Cents {
	if distanceMiles <= 50 {
		return 0
	}
	return Cents(math.Round(distanceMiles * float64(over50MileRate)))
}

// BoxOverageFee bills boxes used beyond 125% of the quoted count. Partial
// overage rounds up to a whole box.
func BoxOverageFee(quotedBoxes, actualBoxes int) Cents {
	threshold := float64(quotedBoxes) * (1 + boxOverageAllowance)
	if float64(actualBoxes) <= threshold {
		return 0
	}
	overage := math.Ceil(float64(actualBoxes) - threshold)
	return Cents(overage) * boxOverageRate
}

// MattressBagFee bills the per-bag mattress cover charge.
func MattressBagFee(bagCount int) Cents {
	return Cents(bagCount) * mattressBagRate
}

// EstimateJob prices a move up front from estimated hours. The total is the
// exact sum of labor, travel, mileage, mattress bag fees and materials; box
// overage never applies to an estimate.
func EstimateJob(in EstimateInput) Breakdown {
	labor, laborBreakdown := LaborCost(in.CrewSize, in.EstimatedHours, in.IsLaborOnly, in.IsOddJob, in.JobDate, in.IsWeekend, in.IsHoliday)
	travel := TravelFee(in.DistanceMiles)
	mileage := MileageFee(in.DistanceMiles)
	mattress := MattressBagFee(in.MattressBagCount)

	return Breakdown{
		LaborCost:      labor,
		TravelFee:      travel,
		MileageFee:     mileage,
		MattressBagFee: mattress,
		MaterialsCost:  in.MaterialsCost,
		Total:          labor + travel + mileage + mattress + in.MaterialsCost,
		Labor:          laborBreakdown,
	}
}

// ActualJob prices a finished move from the hours actually worked and the
// boxes actually used, adding the box overage term to the estimate formula.
func ActualJob(in ActualInput) Breakdown {
	labor, laborBreakdown := LaborCost(in.CrewSize, in.ActualHours, in.IsLaborOnly, in.IsOddJob, in.JobDate, in.IsWeekend, in.IsHoliday)
	travel := TravelFee(in.DistanceMiles)
	mileage := MileageFee(in.DistanceMiles)
	overage := BoxOverageFee(in.BoxCountQuoted, in.ActualBoxCount)
	mattress := MattressBagFee(in.MattressBagCount)

	return Breakdown{
		LaborCost:      labor,
		TravelFee:      travel,
		MileageFee:     mileage,
		BoxOverageFee:  overage,
		MattressBagFee: mattress,
		MaterialsCost:  in.MaterialsCost,
		Total:          labor + travel + mileage + overage + mattress + in.MaterialsCost,
		Labor:          laborBreakdown,
	}
}

// Expenses are the cost components tracked against a finished job.
type Expenses struct {
	CrewPay       Cents `json:"crew_pay"`
	FuelCost      Cents `json:"fuel_cost"`
	RentalCost    Cents `json:"rental_cost"`
	MaterialsCost Cents `json:"materials_cost"`
	Other         Cents `json:"other"`
}

// Total sums every expense component.
func (e Expenses) Total() Cents {
	return e.CrewPay + e.FuelCost + e.RentalCost + e.MaterialsCost + e.Other
}

// ProfitReport is the outcome of a job profitability analysis. ProfitMargin
// is a percentage of revenue, zero when there is no revenue.
type ProfitReport struct {
	TotalExpenses Cents   `json:"total_expenses"`
	Profit        Cents   `json:"profit"`
	ProfitMargin  float64 `json:"profit_margin"`
}

// Profit computes expenses, profit and margin for a job.
func Profit(revenue Cents, expenses Expenses) ProfitReport {
	total := expenses.Total()
	profit := revenue - total

	margin := 0.0
	if revenue > 0 {
		margin = float64(profit) / float64(revenue) * 100
	}

	return ProfitReport{
		TotalExpenses: total,
		Profit:        profit,
		ProfitMargin:  margin,
	}
}
