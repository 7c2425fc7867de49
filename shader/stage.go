package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Stage identifies a programmable pipeline stage. The zero value is not a
// valid stage. Values are deliberately independent of the driver's
// numbering and are translated at the compile boundary only.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
	StageCompute
	StageGeometry
	StageTessControl
	StageTessEvaluation
)

var stageNames = map[string]Stage{
	"vertex":          StageVertex,
	"fragment":        StageFragment,
	"compute":         StageCompute,
	"geometry":        StageGeometry,
	"tess-control":    StageTessControl,
	"tess-evaluation": StageTessEvaluation,
}

// UnknownStageError reports a stage name outside the supported set.
type UnknownStageError struct {
	Name string
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("unknown shader type %q", e.Name)
}

// StageFromName resolves the stage named by a '#type' header line. Matching
// is case-insensitive and ignores surrounding whitespace.
func StageFromName(name string) (Stage, error) {
	s, ok := stageNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &UnknownStageError{Name: name}
	}
	return s, nil
}

func (s Stage) String() string {
	for n, v := range stageNames {
		if v == s {
			return n
		}
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

func (s Stage) glEnum() uint32 {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	case StageCompute:
		return gl.COMPUTE_SHADER
	case StageGeometry:
		return gl.GEOMETRY_SHADER
	case StageTessControl:
		return gl.TESS_CONTROL_SHADER
	case StageTessEvaluation:
		return gl.TESS_EVALUATION_SHADER
	}
	// Let the driver reject it, the debug handler will report the call.
	return 0
}
