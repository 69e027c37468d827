package status

// Schema knowledge for the vMix status document. The dispatch table below is
// the single source of truth for which element names the engine understands;
// everything else is ignored.

// scalarField identifies an optional leaf text field captured from a direct
// child of the document root.
type scalarField int

const (
	scalarVersion scalarField = iota
	scalarEdition
	scalarPreset
	scalarActive
	scalarPreview
	numScalarFields
)

func (f scalarField) key() string {
	switch f {
	case scalarVersion:
		return "version"
	case scalarEdition:
		return "edition"
	case scalarPreset:
		return "preset"
	case scalarActive:
		return "active"
	case scalarPreview:
		return "preview"
	default:
		// this should never happen
		panic("unknown scalar field")
	}
}

// flagField identifies a boolean leaf that is always present in the output,
// false unless the document says otherwise.
type flagField int

const (
	flagStreaming flagField = iota
	flagFadeToBlack
	flagExternal
	flagPlayList
	flagMultiCorder
	flagFullscreen
	numFlagFields
)

func (f flagField) key() string {
	switch f {
	case flagStreaming:
		return "streaming"
	case flagFadeToBlack:
		return "fadeToBlack"
	case flagExternal:
		return "external"
	case flagPlayList:
		return "playList"
	case flagMultiCorder:
		return "multiCorder"
	case flagFullscreen:
		return "fullscreen"
	default:
		// this should never happen
		panic("unknown flag field")
	}
}

// busID identifies one audio mixing channel. The vMix schema defines the
// master bus and buses A through G; there is no bus H.
type busID int

const (
	busMaster busID = iota
	busA
	busB
	busC
	busD
	busE
	busF
	busG
	numBuses
)

func (b busID) key() string {
	if b == busMaster {
		return "master"
	}
	return "bus" + string(rune('A'+int(b)-1))
}

// action tells the dispatcher how an element is handled.
type action int

const (
	actionUnrecognized action = iota
	actionNone // known structural container, nothing to collect
	actionScalar
	actionFlag
	actionInput
	actionOverlay
	actionTransition
	actionBus
	actionRecording
)

// rule binds one element name to its handling. The zero value is the
// explicit "unrecognized" rule, which keeps the table forward compatible
// with schema additions the engine does not yet understand.
type rule struct {
	act    action
	scalar scalarField
	flag   flagField
	bus    busID
}

var dispatch = map[string]rule{
	"vmix":        {act: actionNone},
	"inputs":      {act: actionNone},
	"overlays":    {act: actionNone},
	"transitions": {act: actionNone},
	"audio":       {act: actionNone},
	"version":     {act: actionScalar, scalar: scalarVersion},
	"edition":     {act: actionScalar, scalar: scalarEdition},
	"preset":      {act: actionScalar, scalar: scalarPreset},
	"active":      {act: actionScalar, scalar: scalarActive},
	"preview":     {act: actionScalar, scalar: scalarPreview},
	"streaming":   {act: actionFlag, flag: flagStreaming},
	"fadeToBlack": {act: actionFlag, flag: flagFadeToBlack},
	"external":    {act: actionFlag, flag: flagExternal},
	"playList":    {act: actionFlag, flag: flagPlayList},
	"multiCorder": {act: actionFlag, flag: flagMultiCorder},
	"fullscreen":  {act: actionFlag, flag: flagFullscreen},
	"input":       {act: actionInput},
	"overlay":     {act: actionOverlay},
	"transition":  {act: actionTransition},
	"master":      {act: actionBus, bus: busMaster},
	"busA":        {act: actionBus, bus: busA},
	"busB":        {act: actionBus, bus: busB},
	"busC":        {act: actionBus, bus: busC},
	"busD":        {act: actionBus, bus: busD},
	"busE":        {act: actionBus, bus: busE},
	"busF":        {act: actionBus, bus: busF},
	"busG":        {act: actionBus, bus: busG},
	"recording":   {act: actionRecording},
}

func lookup(name string) rule {
	return dispatch[name]
}
