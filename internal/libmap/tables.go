package libmap

// The builder surface mirrors the common stdfaust namespaces: os (oscillators),
// no (noise), fi (filters), de (delays), re (reverbs), en (envelopes),
// ba (basics/conversions), sp (spatial), ef (effects), plus the language
// primitives spelled as operators.
var table = map[string]Entry{
	// oscillators
	"os.osc":      {Op: "osc", Arity: 1},
	"os.sawtooth": {Op: "saw", Arity: 1},
	"os.square":   {Op: "square", Arity: 1},
	"os.triangle": {Op: "triangle", Arity: 1},
	"os.phasor":   {Op: "phasor", Arity: 2},
	"os.impulse":  {Op: "impulse", Arity: 0},

	// noise
	"no.noise":  {Op: "noise", Arity: 0},
	"no.pink_noise": {Op: "pink", Arity: 0},

	// filters
	"fi.lowpass":  {Op: "lowpass", Arity: 2},
	"fi.highpass": {Op: "highpass", Arity: 2},
	"fi.bandpass": {Op: "bandpass", Arity: 3},
	"fi.resonlp":  {Op: "resonlp", Arity: 3},
	"fi.resonhp":  {Op: "resonhp", Arity: 3},
	"fi.dcblocker": {Op: "dcblock", Arity: 0},
	"fi.fb_comb":  {Op: "combf", Arity: 3},
	"fi.allpass_comb": {Op: "allpassc", Arity: 3},

	// delays
	"de.delay":  {Op: "delay", Arity: 2},
	"de.fdelay": {Op: "fdelay", Arity: 2},
	"de.sdelay": {Op: "sdelay", Arity: 3},

	// reverbs / effects
	"re.mono_freeverb":   {Op: "freeverb", Arity: 4},
	"re.jcrev":           {Op: "jcrev", Arity: 0},
	"ef.echo":            {Op: "echo", Arity: 3},
	"ef.gate_mono":       {Op: "gate", Arity: 4},
	"ef.cubicnl":         {Op: "cubicnl", Arity: 2},

	// envelopes
	"en.adsr": {Op: "adsr", Arity: 5},
	"en.ar":   {Op: "ar", Arity: 3},
	"en.asr":  {Op: "asr", Arity: 4},

	// spatial
	"sp.panner": {Op: "pan", Arity: 2},

	// conversions; Unit marks the literal-only unit-constructor idiom
	"ba.db2linear":  {Op: "db2lin", Arity: 1, Unit: "db"},
	"ba.linear2db":  {Op: "lin2db", Arity: 1},
	"ba.midikey2hz": {Op: "mtof", Arity: 1, Unit: "midi"},
	"ba.hz2midikey": {Op: "ftom", Arity: 1},
	"ba.sec2samp":   {Op: "sec2samp", Arity: 1, Unit: "sec"},
	"ba.samp2sec":   {Op: "samp2sec", Arity: 1},
	"ba.take":       {Op: "take", Variadic: true},
	"ba.selectn":    {Op: "selectn", Variadic: true},
	"ba.if":         {Op: "sel", Arity: 3},

	// arithmetic primitives as prefix sections
	"+": {Op: "add", Arity: 2},
	"-": {Op: "sub", Arity: 2},
	"*": {Op: "mul", Arity: 2},
	"/": {Op: "div", Arity: 2},
	"%": {Op: "fmod", Arity: 2},
	"^": {Op: "pow", Arity: 2},
	"@": {Op: "delay", Arity: 2},

	// math primitives
	"abs":     {Op: "abs", Arity: 1},
	"floor":   {Op: "floor", Arity: 1},
	"ceil":    {Op: "ceil", Arity: 1},
	"rint":    {Op: "rint", Arity: 1},
	"int":     {Op: "toint", Arity: 1},
	"float":   {Op: "tofloat", Arity: 1},
	"sin":     {Op: "sin", Arity: 1},
	"cos":     {Op: "cos", Arity: 1},
	"tan":     {Op: "tan", Arity: 1},
	"asin":    {Op: "asin", Arity: 1},
	"acos":    {Op: "acos", Arity: 1},
	"atan":    {Op: "atan", Arity: 1},
	"atan2":   {Op: "atan2", Arity: 2},
	"exp":     {Op: "exp", Arity: 1},
	"log":     {Op: "log", Arity: 1},
	"log10":   {Op: "log10", Arity: 1},
	"sqrt":    {Op: "sqrt", Arity: 1},
	"pow":     {Op: "pow", Arity: 2},
	"fmod":    {Op: "fmod", Arity: 2},
	"min":     {Op: "min", Arity: 2},
	"max":     {Op: "max", Arity: 2},
	"mem":     {Op: "mem", Arity: 1},
	"prefix":  {Op: "prefix", Arity: 2},
	"attach":  {Op: "attach", Arity: 2},
	"select2": {Op: "sel", Arity: 3},
	"select3": {Op: "sel3", Arity: 4},
}
