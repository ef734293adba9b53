package intake

import "errors"

// State is the contract intake workflow state.
//
// Unselected -> OnlinePathSelected -> Submitting -> Success
// Unselected -> ExternalHandoffSelected (terminal: conversation continues on
// WhatsApp, no local success state).
type State string

const (
	StateUnselected              State = "unselected"
	StateOnlinePathSelected      State = "online_path_selected"
	StateExternalHandoffSelected State = "external_handoff_selected"
	StateSubmitting              State = "submitting"
	StateSuccess                 State = "success"
)

var ErrInvalidTransition = errors.New("invalid intake transition")

// Flow enforces the intake transitions. It carries no form data; the caller
// owns the draft and clears it on Reset.
type Flow struct {
	state State
}

func NewFlow() *Flow {
	return &Flow{state: StateUnselected}
}

func (f *Flow) State() State {
	return f.state
}

// SelectOnline picks the online contract form path.
func (f *Flow) SelectOnline() error {
	if f.state != StateUnselected {
		return ErrInvalidTransition
	}
	f.state = StateOnlinePathSelected
	return nil
}

// SelectExternalHandoff hands the visitor off to WhatsApp. Terminal: the
// only way out is Reset.
func (f *Flow) SelectExternalHandoff() error {
	if f.state != StateUnselected {
		return ErrInvalidTransition
	}
	f.state = StateExternalHandoffSelected
	return nil
}

// Back returns from the online form to the path selection.
func (f *Flow) Back() error {
	if f.state != StateOnlinePathSelected {
		return ErrInvalidTransition
	}
	f.state = StateUnselected
	return nil
}

// BeginSubmit marks the form as in flight. Submission controls stay disabled
// until Complete or Fail.
func (f *Flow) BeginSubmit() error {
	if f.state != StateOnlinePathSelected {
		return ErrInvalidTransition
	}
	f.state = StateSubmitting
	return nil
}

// Complete records a successful submission.
func (f *Flow) Complete() error {
	if f.state != StateSubmitting {
		return ErrInvalidTransition
	}
	f.state = StateSuccess
	return nil
}

// Fail returns to the form with the draft intact so the visitor can retry.
func (f *Flow) Fail() error {
	if f.state != StateSubmitting {
		return ErrInvalidTransition
	}
	f.state = StateOnlinePathSelected
	return nil
}

// Reset returns to Unselected from any state. The caller must clear its form
// draft alongside.
func (f *Flow) Reset() {
	f.state = StateUnselected
}
