package shader

import (
	"errors"
	"fmt"
	"strings"

	"GL_render_sandbox/tooling"
)

// ErrMissingTypeHeader indicates a shader file whose first non-blank line is
// not a '#type <name>' directive.
var ErrMissingTypeHeader = errors.New("missing a type header")

const typePrefix = "#type "

// ParseSource splits raw shader file text into its stage and body. The first
// non-blank line must be a '#type <name>' directive; everything after that
// line is the shader source, handed to the driver untouched. The path is
// only used to name the file in errors.
func ParseSource(path, text string) (Stage, string, error) {
	line, body := tooling.SplitFirstLine(tooling.StripLeadingSpace(text))
	if !strings.HasPrefix(line, typePrefix) {
		return 0, "", fmt.Errorf("failed to read shader file %s: %w", path, ErrMissingTypeHeader)
	}
	stage, err := StageFromName(line[len(typePrefix):])
	if err != nil {
		return 0, "", fmt.Errorf("failed to read shader file %s: %w", path, err)
	}
	return stage, body, nil
}
