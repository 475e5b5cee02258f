package rule

// Config holds one enable flag per syntactic context the wrap rule watches.
// All checks consult this struct; no untyped maps at check time.
type Config struct {
	Declaration bool
	Assignment  bool
	Return      bool
	Arrow       bool
	Condition   bool
	Logical     bool
	Prop        bool
}

// DefaultConfig returns the fixed defaults: declaration, assignment, return
// and arrow on; condition, logical and prop off.
func DefaultConfig() Config {
	return Config{
		Declaration: true,
		Assignment:  true,
		Return:      true,
		Arrow:       true,
		Condition:   false,
		Logical:     false,
		Prop:        false,
	}
}

// Overrides carries optional per-context settings. A nil field means "use
// the default"; an explicit false is honored as false.
type Overrides struct {
	Declaration *bool
	Assignment  *bool
	Return      *bool
	Arrow       *bool
	Condition   *bool
	Logical     *bool
	Prop        *bool
}

// Merge returns defaults with every non-nil override applied. Pure; neither
// argument is modified.
func Merge(defaults Config, overrides Overrides) Config {
	out := defaults
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&out.Declaration, overrides.Declaration)
	apply(&out.Assignment, overrides.Assignment)
	apply(&out.Return, overrides.Return)
	apply(&out.Arrow, overrides.Arrow)
	apply(&out.Condition, overrides.Condition)
	apply(&out.Logical, overrides.Logical)
	apply(&out.Prop, overrides.Prop)
	return out
}
