package discount

// Outcome tells how a listing run ended.
type Outcome string

const (
	OutcomeCompleted      Outcome = "completed"
	OutcomeEmpty          Outcome = "empty"
	OutcomeServiceErrors  Outcome = "service-errors"
	OutcomeTransportFault Outcome = "transport-fault"
)

func (o Outcome) String() string {
	return string(o)
}

// Failed reports whether the run was aborted by an error.
func (o Outcome) Failed() bool {
	return o == OutcomeServiceErrors || o == OutcomeTransportFault
}

type Stats struct {
	Pages     int
	Discounts int
	Outcome   Outcome
}

func (s Stats) finish(outcome Outcome) Stats {
	s.Outcome = outcome
	return s
}
