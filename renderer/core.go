package renderer

import (
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"GL_render_sandbox/model"
)

// Core owns the per-frame orchestration: one window, one projection, the
// ordered list of scene objects and the active camera.
type Core struct {
	win        *glfw.Window
	projection mgl32.Mat4
	clearColor mgl32.Vec4

	objects []*model.GameObject
	Cam     *model.Camera
}

// NewRenderCore ties a core to an existing window and fixes its perspective
// projection. The projection lives here rather than in a package global so
// a future resize handler has exactly one place to update it.
func NewRenderCore(win *glfw.Window, fovDeg, aspect, near, far float32) *Core {
	return &Core{
		win:        win,
		projection: mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far),
		clearColor: mgl32.Vec4{0, 1, 0, 1},
	}
}

// SetClearColor overrides the default clear color. Takes effect on the next
// Initialize call.
func (c *Core) SetClearColor(col mgl32.Vec4) {
	c.clearColor = col
}

// Initialize applies the fixed render state the pipeline draws under: depth
// testing, source-alpha blending and back-face culling with
// counter-clockwise front faces.
func (c *Core) Initialize() {
	gl.ClearColor(c.clearColor.X(), c.clearColor.Y(), c.clearColor.Z(), c.clearColor.W())
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

// DefaultCam installs a fresh camera at the origin.
func (c *Core) DefaultCam() {
	c.Cam = model.NewCamera()
}

// readInput snapshots the held keys that drive the camera.
func (c *Core) readInput() model.InputState {
	held := func(k glfw.Key) bool { return c.win.GetKey(k) == glfw.Press }
	return model.InputState{
		Forward:   held(glfw.KeyW),
		Left:      held(glfw.KeyA),
		Back:      held(glfw.KeyS),
		Right:     held(glfw.KeyD),
		Up:        held(glfw.KeyQ),
		Down:      held(glfw.KeyE),
		YawLeft:   held(glfw.KeyLeft),
		YawRight:  held(glfw.KeyRight),
		PitchUp:   held(glfw.KeyUp),
		PitchDown: held(glfw.KeyDown),
	}
}

func (c *Core) applyMaterial(mat *model.Material) {
	gl.UseProgram(mat.Shader.Handle())
	col := mat.Color
	gl.Uniform4fv(mat.Shader.UniformLocation("uColor"), 1, &col[0])
	for slot, tex := range mat.Textures {
		if tex != nil {
			gl.BindTextureUnit(uint32(slot), tex.Handle)
		}
	}
}

func (c *Core) applyTransform(obj *model.GameObject) {
	m := model.ModelMatrix(&obj.Transform)
	gl.UniformMatrix4fv(obj.MeshRenderer.Material.Shader.UniformLocation("uModel"), 1, false, &m[0])
}

func (c *Core) applyCamera(obj *model.GameObject) {
	vp := c.Cam.ViewProjection(c.projection)
	gl.UniformMatrix4fv(obj.MeshRenderer.Material.Shader.UniformLocation("uViewProjection"), 1, false, &vp[0])
}

func (c *Core) renderGameObject(obj *model.GameObject) {
	obj.MeshRenderer.Mesh.Bind()
	c.applyMaterial(obj.MeshRenderer.Material)
	c.applyTransform(obj)
	c.applyCamera(obj)
	obj.MeshRenderer.Mesh.Draw()
}

// Loop runs the steady-state frame cycle until the window asks to close:
// poll input, update the camera, clear color/depth/stencil, draw every
// object in list order, present. Uniforms are re-set for every object every
// frame; there is no caching or material batching. A close request arriving
// mid-frame is honored at the next loop iteration.
func (c *Core) Loop() {
	if c.Cam == nil {
		c.DefaultCam()
	}
	log.Printf("Entering render loop with %d objects", len(c.objects))
	for !c.win.ShouldClose() {
		glfw.PollEvents()
		c.Cam.Update(c.readInput())

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
		for _, obj := range c.objects {
			c.renderGameObject(obj)
		}
		c.win.SwapBuffers()
	}
}
