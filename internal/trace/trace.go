// Package trace persists a record of the operations a bigword CLI
// invocation performed, for later replay or debugging via --trace.
package trace

import (
	"encoding/gob"
	"os"
)

// Step records one operation applied during a CLI invocation.
type Step struct {
	Op       string // operation name, e.g. "add", "mul", "shl"
	Width    int    // word width in bits (8, 16, or 32)
	Operand1 string // decimal rendering of the first operand
	Operand2 string // decimal rendering of the second operand, if any
	Result   string // the result as printed, in the selected base and separator
}

// Trace is the full record for one CLI invocation.
type Trace struct {
	Steps []Step
}

func init() {
	gob.Register(Step{})
}

// Save writes t to path as a gob stream.
func Save(path string, t *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(t)
}

// Load reads a Trace previously written by Save.
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t Trace
	if err := gob.NewDecoder(f).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
