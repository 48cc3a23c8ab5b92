package domain

// CheckoutPhase is the derived progress of a checkout session. The session
// state itself is a set of independent fields; the phase is computed from
// them, never stored.
type CheckoutPhase string

const (
	// ADDRESS_UNSET - no warehouse or user address chosen yet
	PhaseAddressUnset CheckoutPhase = "ADDRESS_UNSET"
	// ADDRESS_SET - both sides chosen, region resolution may still be pending
	PhaseAddressSet CheckoutPhase = "ADDRESS_SET"
	// COURIER_SET - a courier has been picked, no service yet
	PhaseCourierSet CheckoutPhase = "COURIER_SET"
	// SERVICE_READY - courier and service picked, submission possible
	PhaseServiceReady CheckoutPhase = "SERVICE_READY"
	// SUBMITTING - an order submission is in flight
	PhaseSubmitting CheckoutPhase = "SUBMITTING"
	// SUBMITTED - the order was created; the session is spent
	PhaseSubmitted CheckoutPhase = "SUBMITTED"
)

// IsValid checks if the phase is one of the known values
func (p CheckoutPhase) IsValid() bool {
	switch p {
	case PhaseAddressUnset,
		PhaseAddressSet,
		PhaseCourierSet,
		PhaseServiceReady,
		PhaseSubmitting,
		PhaseSubmitted:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further selection or submission is possible
func (p CheckoutPhase) Terminal() bool {
	return p == PhaseSubmitted
}
