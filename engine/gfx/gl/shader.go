package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader wraps a linked GL program and implements gfx.UniformSink with
// cached uniform locations.
type Shader struct {
	program uint32
	locs    map[string]int32
}

// NewShader compiles and links a program from null-terminated GLSL
// sources (append "\x00" when loading from files).
func NewShader(vsSrc, fsSrc string) (*Shader, error) {
	prog, err := makeProgram(vsSrc, fsSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{program: prog, locs: map[string]int32{}}, nil
}

// NewSpriteShader builds the built-in texture-array sprite program:
// position/UV attributes at slots 0 and 1, projection, per-draw
// position and size, and a sampler2DArray addressed by unit and layer
// uniforms.
func NewSpriteShader() (*Shader, error) {
	return NewShader(spriteVertexSource, spriteFragmentSource)
}

func (s *Shader) Use() { gl.UseProgram(s.program) }

func (s *Shader) Delete() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (s *Shader) loc(name string) int32 {
	if l, ok := s.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locs[name] = l
	return l
}

// gfx.UniformSink

func (s *Shader) SetInt(name string, v int) {
	gl.Uniform1i(s.loc(name), int32(v))
}

func (s *Shader) SetVec2(name string, x, y float32) {
	gl.Uniform2f(s.loc(name), x, y)
}

func (s *Shader) SetMat4(name string, m [16]float32) {
	gl.UniformMatrix4fv(s.loc(name), 1, false, &m[0])
}

// --- sources ---

const spriteVertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
uniform mat4 uProjection;
uniform vec2 uPos;
uniform vec2 uSize;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = uProjection * vec4(aPos * uSize + uPos, 0.0, 1.0);
}
` + "\x00"

const spriteFragmentSource = `
#version 330 core
in vec2 vUV;
uniform sampler2DArray uTexture;
uniform int uLayer;
out vec4 FragColor;
void main() {
    FragColor = texture(uTexture, vec3(vUV, uLayer));
}
` + "\x00"

// --- program utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", infoLog)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", infoLog)
	}
	return prog, nil
}
