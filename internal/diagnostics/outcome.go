package diagnostics

// Outcome classifies how far the database probe got.
type Outcome int

const (
	OutcomeNotFound       Outcome = iota // No collaborator could be located
	OutcomeResolveError                  // Locating the collaborator failed unexpectedly
	OutcomeNotInitialized                // Collaborator exists, handle is nil
	OutcomeWorking                       // Collections listed successfully
	OutcomeProbeError                    // Handle exists, listing collections failed
)

// String returns the metrics label for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeResolveError:
		return "resolve_error"
	case OutcomeNotInitialized:
		return "not_initialized"
	case OutcomeWorking:
		return "working"
	case OutcomeProbeError:
		return "probe_error"
	default:
		return "unknown"
	}
}

// connected reports whether a live handle was reached.
func (o Outcome) connected() bool {
	return o == OutcomeWorking || o == OutcomeProbeError
}

// Result is what one probe found.
type Result struct {
	Outcome     Outcome
	Err         error    // Set for OutcomeResolveError and OutcomeProbeError
	Collections []string // Set for OutcomeWorking
}
