package reactive

// StrictEffectMode controls what happens, while Config.DevMode is on, when
// an effect writes to a signal from inside its own body.
type StrictEffectMode int

const (
	// StrictEffectOff performs no check at all.
	StrictEffectOff StrictEffectMode = iota
	// StrictEffectWarn logs a diagnostic but allows the write.
	StrictEffectWarn
	// StrictEffectPanic raises a UserError instead of allowing the write.
	StrictEffectPanic
)

// Config holds process-wide toggles for the reactive core, mirroring the
// teacher's package-level DebugConfig/EffectStrictMode globals.
type Config struct {
	// DevMode enables additional runtime checks (currently: effect write
	// mode enforcement) at a small cost to the hot path.
	DevMode bool

	// EffectStrictMode governs whether effects may write signals.
	EffectStrictMode StrictEffectMode

	// CycleLimit overrides defaultCycleLimit for every scheduler created
	// after it is set — tests that want a tight bound to exercise
	// CycleLimitExceeded without constructing 100 feedback iterations set
	// this low.
	CycleLimit int
}

// Debug is the package-level configuration instance, following the
// teacher's `Debug` global in spirit: a single process-wide switch board
// rather than a config object threaded through every constructor.
var Debug = Config{
	EffectStrictMode: StrictEffectWarn,
	CycleLimit:       defaultCycleLimit,
}
