package convert

// Stats aggregates the results of one batch run
type Stats struct {
	BanksTotal     int
	BanksConverted int
	BanksFailed    int

	StreamsTotal     int
	StreamsConverted int
	StreamsFailed    int
	StreamsDeleted   int // removed by the cleanup policy after conversion
	KeepFailed       int // raw streams that could not be moved to the output
}

// Failed reports whether anything in the batch went wrong. The process exit
// code is non-zero iff this is true.
func (s *Stats) Failed() bool {
	return s.BanksFailed > 0 || s.StreamsFailed > 0 || s.KeepFailed > 0
}
