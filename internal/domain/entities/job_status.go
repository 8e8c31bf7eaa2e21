package entities

// JobStatus represents where a job sits in the pipeline from first contact
// to payment.
//
// Forward path:
//
//	lead ──► estimate ──► booked ──► active ──► completed ──► paid
//
// lead may also jump straight to booked. Every status after lead can revert
// one step (estimate→lead, booked→estimate, active→booked, completed→active)
// so a dispatcher can undo a mistaken move. paid is terminal.
type JobStatus string

const (
	JobStatusLead      JobStatus = "lead"
	JobStatusEstimate  JobStatus = "estimate"
	JobStatusBooked    JobStatus = "booked"
	JobStatusActive    JobStatus = "active"
	JobStatusCompleted JobStatus = "completed"
	JobStatusPaid      JobStatus = "paid"
)

// jobTransitions is the single source of truth for allowed status changes.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusLead:      {JobStatusEstimate, JobStatusBooked},
	JobStatusEstimate:  {JobStatusBooked, JobStatusLead},
	JobStatusBooked:    {JobStatusActive, JobStatusEstimate},
	JobStatusActive:    {JobStatusCompleted, JobStatusBooked},
	JobStatusCompleted: {JobStatusPaid, JobStatusActive},
	JobStatusPaid:      {},
}

// ParseJobStatus validates a raw status string.
func ParseJobStatus(s string) (JobStatus, bool) {
	status := JobStatus(s)
	_, ok := jobTransitions[status]
	return status, ok
}

// CanTransitionTo reports whether a job may move from one status to another.
// Unknown statuses have no outgoing edges.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, next := range jobTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextValidStatuses returns the statuses a job may move to from its current
// one. The result is empty for paid and for unknown statuses.
func (s JobStatus) NextValidStatuses() []JobStatus {
	allowed := jobTransitions[s]
	out := make([]JobStatus, len(allowed))
	copy(out, allowed)
	return out
}

// DisplayName returns the human label shown in the admin UI.
func (s JobStatus) DisplayName() string {
	switch s {
	case JobStatusLead:
		return "Lead"
	case JobStatusEstimate:
		return "Estimate Sent"
	case JobStatusBooked:
		return "Booked"
	case JobStatusActive:
		return "In Progress"
	case JobStatusCompleted:
		return "Completed"
	case JobStatusPaid:
		return "Paid"
	default:
		return string(s)
	}
}

// ColorClass returns the presentation token the admin UI uses to badge a
// status.
func (s JobStatus) ColorClass() string {
	switch s {
	case JobStatusLead:
		return "bg-gray-100 text-gray-800"
	case JobStatusEstimate:
		return "bg-blue-100 text-blue-800"
	case JobStatusBooked:
		return "bg-green-100 text-green-800"
	case JobStatusActive:
		return "bg-yellow-100 text-yellow-800"
	case JobStatusCompleted:
		return "bg-purple-100 text-purple-800"
	case JobStatusPaid:
		return "bg-emerald-100 text-emerald-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
