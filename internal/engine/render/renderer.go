package render

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/pkg/math"
)

// Renderer draws colored line and triangle batches through a single MVP
// shader. Geometry is streamed each frame.
type Renderer struct {
	program uint32
	mvpLoc  int32
	vao     uint32
	vbo     uint32
}

// vertexStride is the byte size of one Vertex (6 float32 components).
const vertexStride = 6 * 4

// New creates a renderer. Must be called after the OpenGL context exists.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.08, 0.09, 0.12, 1.0)
	gl.Viewport(0, 0, int32(width), int32(height))

	var err error
	r.program, err = compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.mvpLoc = gl.GetUniformLocation(r.program, gl.Str("uMVP\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(0)
	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawLines streams the given vertices and draws them as line pairs.
func (r *Renderer) DrawLines(verts []Vertex, mvp math.Mat4) {
	r.draw(gl.LINES, verts, mvp)
}

// DrawTriangles streams the given vertices and draws them as triangles.
func (r *Renderer) DrawTriangles(verts []Vertex, mvp math.Mat4) {
	r.draw(gl.TRIANGLES, verts, mvp)
}

func (r *Renderer) draw(mode uint32, verts []Vertex, mvp math.Mat4) {
	if len(verts) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, mvp.Ptr())

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*vertexStride, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

var vertexShaderSrc = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aColor;

	uniform mat4 uMVP;

	out vec3 vertexColor;

	void main() {
		gl_Position = uMVP * vec4(aPos, 1.0);
		vertexColor = aColor;
	}
` + "\x00"

var fragmentShaderSrc = `
	#version 410 core

	in vec3 vertexColor;
	out vec4 FragColor;

	void main() {
		FragColor = vec4(vertexColor, 1.0);
	}
` + "\x00"

// compileProgram compiles and links vertex and fragment shaders.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
