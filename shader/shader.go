package shader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// CompileError carries the driver's info log for a shader that failed to
// compile.
type CompileError struct {
	Path string
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile shader %s: %s", e.Path, e.Log)
}

// Compile reads a shader source file, resolves its '#type' header and
// compiles the body against the resolved stage. The returned handle is a
// driver shader object ready to be attached to a program.
func Compile(path string) (uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read shader file %s: %w", path, err)
	}
	stage, body, err := ParseSource(path, string(raw))
	if err != nil {
		return 0, err
	}

	sh := gl.CreateShader(stage.glEnum())
	src, free := gl.Strs(body + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, &CompileError{Path: path, Log: infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)}
	}
	log.Printf("Compiled %s shader from file: %s", stage, path)
	return sh, nil
}

// infoLog pulls the driver diagnostic text for a shader or program object.
// Both object kinds share the same iv/log call shape.
func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var l int32
	getiv(obj, gl.INFO_LOG_LENGTH, &l)
	if l <= 0 {
		return ""
	}
	buf := make([]byte, l)
	getLog(obj, l, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}
