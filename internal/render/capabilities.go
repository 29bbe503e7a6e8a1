package render

// Capabilities describes the SQL features a dialect can render.
type Capabilities struct {
	Dialect     string
	RightJoin   bool // RIGHT JOIN
	FullJoin    bool // FULL JOIN
	LimitOffset bool // LIMIT ? OFFSET ?
}

// CapabilityReporter is implemented by rendering strategies that restrict
// the features they render. Strategies that do not implement it get Full.
type CapabilityReporter interface {
	Capabilities() Capabilities
}

// Full returns capabilities with every feature enabled.
func Full() Capabilities {
	return Capabilities{
		Dialect:     "generic",
		RightJoin:   true,
		FullJoin:    true,
		LimitOffset: true,
	}
}

func capabilitiesOf(strategy any) Capabilities {
	if r, ok := strategy.(CapabilityReporter); ok {
		return r.Capabilities()
	}
	return Full()
}
