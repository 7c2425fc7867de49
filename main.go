package main

import (
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"GL_render_sandbox/common"
	"GL_render_sandbox/model"
	"GL_render_sandbox/renderer"
	"GL_render_sandbox/shader"
)

const PROGRAM_NAME = "Window"
const WINDOW_WIDTH, WINDOW_HEIGHT = 800, 800

const (
	CAMERA_FOV  = 90
	CAMERA_NEAR = 0.1
	CAMERA_FAR  = 100
)

var SHADER_FILES = []string{"assets/test.glsl", "assets/testvert.glsl"}

func init() {
	// The GL context and the event loop are bound to one OS thread.
	runtime.LockOSThread()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Println("Starting render sandbox")
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func main() {
	win, err := common.CreateWindow(WINDOW_WIDTH, WINDOW_HEIGHT, PROGRAM_NAME)
	if err != nil {
		log.Panicf("Failed to open window: %v", err)
	}
	if err := common.InitDriver(); err != nil {
		log.Panicf("Failed to initialize GL: %v", err)
	}
	renderer.RegisterDebugHandler()

	core := renderer.NewRenderCore(
		win,
		CAMERA_FOV,
		float32(WINDOW_WIDTH)/float32(WINDOW_HEIGHT),
		CAMERA_NEAR,
		CAMERA_FAR,
	)
	core.Initialize()

	prog, err := shader.NewProgram(SHADER_FILES...)
	if err != nil {
		log.Panicf("Failed to build shader program: %v", err)
	}

	mat := model.NewMaterial(prog, mgl32.Vec4{1, 0, 0, 0.5})
	mesh := model.NewCubeMesh()

	prefab := model.NewGameObject("cube", mesh, mat)
	objs := model.CloneN(prefab, 10)

	objs[1].Transform.Position = mgl32.Vec3{2, 0, 0}
	objs[2].Transform.Position = mgl32.Vec3{-2, 0, 0}
	objs[3].Transform.Position = mgl32.Vec3{0, 2, 0}
	objs[4].Transform.Position = mgl32.Vec3{0, -2, 0}
	objs[5].Transform.Position = mgl32.Vec3{0, 0, 2}
	objs[6].Transform.Position = mgl32.Vec3{2, 0, 2}
	objs[7].Transform.Position = mgl32.Vec3{-2, 0, 2}
	objs[8].Transform.Position = mgl32.Vec3{0, 2, 2}
	objs[9].Transform.Position = mgl32.Vec3{0, -2, 2}

	core.AddAllToScene(objs...)
	core.DefaultCam()

	core.Loop()
}
