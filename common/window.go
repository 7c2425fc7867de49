package common

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// CreateWindow initializes the windowing layer and opens a window with the
// context this pipeline requires: core profile 4.5 with a debug context.
// The returned window's context is current on the calling thread, which
// must be the thread that later runs the render loop.
func CreateWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize windowing layer: %w", err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %dx%d window: %w", width, height, err)
	}
	win.MakeContextCurrent()
	return win, nil
}

// InitDriver loads the GL entry points for the current context.
func InitDriver() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load GL entry points: %w", err)
	}
	log.Printf("Using OpenGL: [%s]", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}
