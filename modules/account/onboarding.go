package account

// Step names a destination in the application flow. Operations return
// the step the caller should route to next; GateAccess decides whether
// a requested step is reachable from the account's current state.
type Step string

const (
	StepLogin          Step = "login"
	StepMnemonic       Step = "mnemonic"
	StepTwoFactorSetup Step = "twofactor_setup"
	StepHome           Step = "home"
	StepBanned         Step = "banned"
)

// GateDecision is the outcome of checking a requested step against the
// account's onboarding state. When Allowed is false, RedirectTo names
// the step the caller must visit instead.
type GateDecision struct {
	Allowed    bool
	RedirectTo Step
}

// requiredStep maps each onboarding state to the one step the account
// must complete next. The sequence is strictly one-way: mnemonic
// reveal, then two-factor enrollment, then full access.
var requiredStep = map[OnboardingState]Step{
	StateRegistered:    StepMnemonic,
	StateMnemonicShown: StepTwoFactorSetup,
	StateFullyEnrolled: StepHome,
}

// transitions is the central table of state by requested step. A step
// absent from a state's row is not reachable and redirects to the
// state's required step. Route handlers stay thin dispatchers over
// this table.
var transitions = map[OnboardingState]map[Step]bool{
	StateRegistered: {
		StepMnemonic: true,
	},
	StateMnemonicShown: {
		StepTwoFactorSetup: true,
	},
	StateFullyEnrolled: {
		StepHome: true,
	},
}

// resolveStep applies the transition table. Completed onboarding steps
// are not revisitable: a fully enrolled account requesting the
// mnemonic step is sent home, not shown the secret again.
func resolveStep(state OnboardingState, requested Step) GateDecision {
	if transitions[state][requested] {
		return GateDecision{Allowed: true, RedirectTo: requested}
	}
	return GateDecision{Allowed: false, RedirectTo: requiredStep[state]}
}
