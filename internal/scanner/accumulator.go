package scanner

import "github.com/specialistvlad/gstrings/internal/codeunit"

// Run is a maximal sequence of contiguous printable code units.
type Run struct {
	// Offset is the byte offset of the first code unit.
	Offset int64
	// Units holds the code unit values in input order.
	Units []uint32
}

// Len returns the number of code units in the run.
func (r Run) Len() int {
	return len(r.Units)
}

type state int

const (
	stateIdle state = iota
	stateAccumulating
)

func (s state) String() string {
	if s == stateAccumulating {
		return "accumulating"
	}
	return "idle"
}

// Accumulator is the run-collecting state machine. It has no I/O and sees
// only the classified code unit stream.
type Accumulator struct {
	min   int
	state state
	start int64
	units []uint32
}

// NewAccumulator returns an idle accumulator that confirms runs of at least
// minLen code units. A minimum below one is raised to one.
func NewAccumulator(minLen int) *Accumulator {
	if minLen < 1 {
		minLen = 1
	}
	return &Accumulator{min: minLen}
}

// Step feeds one classified code unit. It returns a confirmed run when the
// unit ends one.
func (a *Accumulator) Step(u codeunit.Unit, printable bool) (Run, bool) {
	switch a.state {
	case stateIdle:
		if printable {
			a.state = stateAccumulating
			a.start = u.Offset
			a.units = append(a.units[:0], u.Value)
		}
		return Run{}, false
	case stateAccumulating:
		if printable {
			a.units = append(a.units, u.Value)
			return Run{}, false
		}
		return a.close()
	}
	panic("scanner: unknown accumulator state " + a.state.String())
}

// End signals the end of the code unit stream.
func (a *Accumulator) End() (Run, bool) {
	if a.state == stateIdle {
		return Run{}, false
	}
	return a.close()
}

// Reset drops any run in progress without confirming it.
func (a *Accumulator) Reset() {
	a.state = stateIdle
	a.units = a.units[:0]
}

func (a *Accumulator) close() (Run, bool) {
	a.state = stateIdle
	if len(a.units) < a.min {
		a.units = a.units[:0]
		return Run{}, false
	}
	run := Run{Offset: a.start, Units: append([]uint32(nil), a.units...)}
	a.units = a.units[:0]
	return run, true
}
