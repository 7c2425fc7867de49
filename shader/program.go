package shader

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// Program wraps one compiled-and-linked GPU program object. Construction is
// the only error path; a Program in hand is always usable. The handle lives
// for the rest of the process.
type Program struct {
	handle uint32
}

// Handle exposes the driver object for binding.
func (p *Program) Handle() uint32 {
	return p.handle
}

// UniformLocation looks a named uniform up in the linked program.
func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

// NewProgram compiles every given shader file and links the results into one
// program. File order does not matter; an incomplete stage set surfaces as a
// driver link failure. Per-stage shader objects are released once the link
// has succeeded.
func NewProgram(paths ...string) (*Program, error) {
	shaders := make([]uint32, 0, len(paths))
	for _, p := range paths {
		sh, err := Compile(p)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, sh)
	}

	pr := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(pr, sh)
	}
	gl.LinkProgram(pr)

	var status int32
	gl.GetProgramiv(pr, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return nil, &LinkError{Log: infoLog(pr, gl.GetProgramiv, gl.GetProgramInfoLog)}
	}
	for _, sh := range shaders {
		gl.DeleteShader(sh)
	}
	log.Printf("Linked program %d from %d shader stages", pr, len(shaders))
	return &Program{handle: pr}, nil
}
