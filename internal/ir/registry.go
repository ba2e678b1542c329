package ir

// Well-known node kinds. The builder surface (external collaborator)
// constructs nodes with these; the emitter consumes them.
const (
	KindConst Kind = "const"
	KindWire  Kind = "wire"
	KindCut   Kind = "cut"
	KindRef   Kind = "ref" // named reference emitted by the CSE pass

	// composition
	KindSeq   Kind = "seq"
	KindPar   Kind = "par"
	KindSplit Kind = "split"
	KindMerge Kind = "merge"
	KindRec   Kind = "rec"

	// arithmetic
	KindAdd   Kind = "add"
	KindSub   Kind = "sub"
	KindMul   Kind = "mul"
	KindDiv   Kind = "div"
	KindMod   Kind = "mod"
	KindPow   Kind = "pow"
	KindDelay Kind = "delay"

	// comparisons
	KindEq  Kind = "eq"
	KindNeq Kind = "neq"
	KindLt  Kind = "lt"
	KindLe  Kind = "le"
	KindGt  Kind = "gt"
	KindGe  Kind = "ge"

	// oscillators, filters, and friends
	KindOsc      Kind = "osc"
	KindSaw      Kind = "saw"
	KindSquare   Kind = "square"
	KindTriangle Kind = "triangle"
	KindPhasor   Kind = "phasor"
	KindNoise    Kind = "noise"
	KindLowpass  Kind = "lowpass"
	KindHighpass Kind = "highpass"
	KindResonLP  Kind = "resonlp"
	KindFDelay   Kind = "fdelay"
	KindFreeverb Kind = "freeverb"
	KindEcho     Kind = "echo"
	KindADSR     Kind = "adsr"
	KindPan      Kind = "pan"
	KindMem      Kind = "mem"
	KindPrefix   Kind = "prefix"
	KindSelect2  Kind = "select2"
	KindAttach   Kind = "attach"
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindAbs      Kind = "abs"
	KindSqrt     Kind = "sqrt"
	KindSin      Kind = "sin"
	KindCos      Kind = "cos"

	// scalar conversions
	KindDB2Lin   Kind = "db2lin"
	KindMidi2Hz  Kind = "mtof"
	KindSec2Samp Kind = "sec2samp"

	// UI
	KindHSlider  Kind = "hslider"
	KindVSlider  Kind = "vslider"
	KindNEntry   Kind = "nentry"
	KindButton   Kind = "button"
	KindCheckbox Kind = "checkbox"
	KindHGroup   Kind = "hgroup"
	KindVGroup   Kind = "vgroup"
	KindTGroup   Kind = "tgroup"
)

// chanRule describes how a kind derives its output channel count.
type chanRule uint8

const (
	chanFixed chanRule = iota // Channels field
	chanLast                  // channels of the last input (seq, groups)
	chanSum                   // sum of input channels (par)
	chanFirst                 // channels of the first input (rec)
)

// OpInfo carries per-kind emitter metadata.
type OpInfo struct {
	// Wire is the wire-DSP spelling: a library call name or an operator.
	Wire string
	// Operator marks infix binary rendering; Prec matches the parser table.
	Operator   bool
	Prec       int
	RightAssoc bool
	// Trivial nodes are never hoisted by the CSE pass.
	Trivial bool
	// ScalarConv marks scalar-valued conversion calls for the
	// scalar-commutation rule.
	ScalarConv bool

	Rule     chanRule
	Channels int
}

var registry = map[Kind]OpInfo{
	KindConst: {Wire: "", Trivial: true, Channels: 1},
	KindWire:  {Wire: "_", Trivial: true, Channels: 1},
	KindCut:   {Wire: "!", Trivial: true, Channels: 0},
	KindRef:   {Wire: "", Trivial: true, Channels: 1},

	KindSeq:   {Wire: ":", Operator: true, Prec: 2, RightAssoc: true, Rule: chanLast},
	KindPar:   {Wire: ",", Operator: true, Prec: 1, Rule: chanSum},
	KindSplit: {Wire: "<:", Operator: true, Prec: 3, Rule: chanLast},
	KindMerge: {Wire: ":>", Operator: true, Prec: 3, Rule: chanLast},
	KindRec:   {Wire: "~", Operator: true, Prec: 4, Rule: chanFirst},

	KindAdd:   {Wire: "+", Operator: true, Prec: 11, Channels: 1},
	KindSub:   {Wire: "-", Operator: true, Prec: 11, Channels: 1},
	KindMul:   {Wire: "*", Operator: true, Prec: 12, Channels: 1},
	KindDiv:   {Wire: "/", Operator: true, Prec: 12, Channels: 1},
	KindMod:   {Wire: "%", Operator: true, Prec: 12, Channels: 1},
	KindPow:   {Wire: "^", Operator: true, Prec: 13, RightAssoc: true, Channels: 1},
	KindDelay: {Wire: "@", Operator: true, Prec: 14, Channels: 1},

	KindEq:  {Wire: "==", Operator: true, Prec: 9, Channels: 1},
	KindNeq: {Wire: "!=", Operator: true, Prec: 9, Channels: 1},
	KindLt:  {Wire: "<", Operator: true, Prec: 9, Channels: 1},
	KindLe:  {Wire: "<=", Operator: true, Prec: 9, Channels: 1},
	KindGt:  {Wire: ">", Operator: true, Prec: 9, Channels: 1},
	KindGe:  {Wire: ">=", Operator: true, Prec: 9, Channels: 1},

	KindOsc:      {Wire: "os.osc", Channels: 1},
	KindSaw:      {Wire: "os.sawtooth", Channels: 1},
	KindSquare:   {Wire: "os.square", Channels: 1},
	KindTriangle: {Wire: "os.triangle", Channels: 1},
	KindPhasor:   {Wire: "os.phasor", Channels: 1},
	KindNoise:    {Wire: "no.noise", Trivial: true, Channels: 1},
	KindLowpass:  {Wire: "fi.lowpass", Channels: 1},
	KindHighpass: {Wire: "fi.highpass", Channels: 1},
	KindResonLP:  {Wire: "fi.resonlp", Channels: 1},
	KindFDelay:   {Wire: "de.fdelay", Channels: 1},
	KindFreeverb: {Wire: "re.mono_freeverb", Channels: 1},
	KindEcho:     {Wire: "ef.echo", Channels: 1},
	KindADSR:     {Wire: "en.adsr", Channels: 1},
	KindPan:      {Wire: "sp.panner", Channels: 2},
	KindMem:      {Wire: "mem", Channels: 1},
	KindPrefix:   {Wire: "prefix", Channels: 1},
	KindSelect2:  {Wire: "select2", Channels: 1},
	KindAttach:   {Wire: "attach", Channels: 1},
	KindMin:      {Wire: "min", Channels: 1},
	KindMax:      {Wire: "max", Channels: 1},
	KindAbs:      {Wire: "abs", Channels: 1},
	KindSqrt:     {Wire: "sqrt", Channels: 1},
	KindSin:      {Wire: "sin", Channels: 1},
	KindCos:      {Wire: "cos", Channels: 1},

	KindDB2Lin:   {Wire: "ba.db2linear", ScalarConv: true, Channels: 1},
	KindMidi2Hz:  {Wire: "ba.midikey2hz", ScalarConv: true, Channels: 1},
	KindSec2Samp: {Wire: "ba.sec2samp", ScalarConv: true, Channels: 1},

	KindHSlider:  {Wire: "hslider", Trivial: true, Channels: 1},
	KindVSlider:  {Wire: "vslider", Trivial: true, Channels: 1},
	KindNEntry:   {Wire: "nentry", Trivial: true, Channels: 1},
	KindButton:   {Wire: "button", Trivial: true, Channels: 1},
	KindCheckbox: {Wire: "checkbox", Trivial: true, Channels: 1},
	KindHGroup:   {Wire: "hgroup", Rule: chanLast},
	KindVGroup:   {Wire: "vgroup", Rule: chanLast},
	KindTGroup:   {Wire: "tgroup", Rule: chanLast},
}

// Info exposes the emitter metadata for a kind.
func Info(kind Kind) (OpInfo, bool) {
	info, ok := registry[kind]
	return info, ok
}

func computeChannels(info OpInfo, inputs []*Node) int {
	switch info.Rule {
	case chanLast:
		if len(inputs) > 0 {
			return inputs[len(inputs)-1].channels
		}
		return info.Channels
	case chanSum:
		total := 0
		for _, in := range inputs {
			total += in.channels
		}
		return total
	case chanFirst:
		if len(inputs) > 0 {
			return inputs[0].channels
		}
		return info.Channels
	default:
		return info.Channels
	}
}

// IsScalar reports whether the node is scalar-classified for the
// scalar-commutation rule: a bare constant, or a known scalar conversion
// whose inputs are all scalar.
func IsScalar(n *Node) bool {
	switch {
	case n.kind == KindConst:
		return true
	default:
		info, ok := registry[n.kind]
		if !ok || !info.ScalarConv {
			return false
		}
		for _, in := range n.inputs {
			if !IsScalar(in) {
				return false
			}
		}
		return true
	}
}
