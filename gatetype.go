package gensyn

// GateType classifies a gate by its connectivity. It is derived from the
// number of declared slots and the current number of consumers, never
// stored.
type GateType int

const (
	// InputGate only provides input to other gates.
	InputGate GateType = iota
	// OutputGate only consumes input.
	OutputGate
	// TransformGate both consumes and provides.
	TransformGate
	// InertGate has neither slots nor consumers.
	InertGate
)

var gateTypeNames = [...]string{"input gate", "output gate", "transform gate", "inert gate"}

// Classify returns the GateType of a gate with the given number of declared
// slots and outbound connections.
func Classify(numSlots, numOutbound int) GateType {
	switch {
	case numSlots == 0 && numOutbound > 0:
		return InputGate
	case numSlots > 0 && numOutbound == 0:
		return OutputGate
	case numSlots > 0 && numOutbound > 0:
		return TransformGate
	}
	return InertGate
}

func (t GateType) String() string {
	if t < 0 || int(t) >= len(gateTypeNames) {
		return "???"
	}
	return gateTypeNames[t]
}
