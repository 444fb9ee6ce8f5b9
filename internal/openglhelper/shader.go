package openglhelper

import (
	"errors"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/learngl/pkg/assets"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID   uint32
	Name string
}

// compileShader compiles a single shader. The shader object is returned even
// when compilation fails.
func compileShader(name, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return shader, &assets.ResourceError{
			Op:   "compile",
			Path: name,
			Err:  errors.New(strings.TrimRight(infoLog, "\x00\n")),
		}
	}

	return shader, nil
}

// NewShader compiles and links a program from vertex and fragment source.
//
// The returned Shader is never nil. Compile and link failures are reported as
// an *assets.ResourceError next to a program that may be unusable; callers
// log the error and keep rendering.
func NewShader(name, vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := newProgram(name, vertexShaderSource, fragmentShaderSource)
	return &Shader{ID: program, Name: name}, err
}

// newProgram creates a shader program from vertex and fragment shader sources
func newProgram(name, vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, vertexErr := compileShader(name+" (vertex)", vertexShaderSource, gl.VERTEX_SHADER)
	fragmentShader, fragmentErr := compileShader(name+" (fragment)", fragmentShaderSource, gl.FRAGMENT_SHADER)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var linkErr error
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		linkErr = &assets.ResourceError{
			Op:   "link",
			Path: name,
			Err:  errors.New(strings.TrimRight(infoLog, "\x00\n")),
		}
	}

	return program, errors.Join(vertexErr, fragmentErr, linkErr)
}

// LoadShaderFromFiles loads a shader program from vertex and fragment shader files.
// A file that cannot be read is logged and compiled as empty source, so the
// compiler reports the failure a second time through the returned error.
func LoadShaderFromFiles(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := assets.ReadSource(vertexPath)
	if err != nil {
		log.Printf("warning: %v", err)
	}

	fragmentSource, err := assets.ReadSource(fragmentPath)
	if err != nil {
		log.Printf("warning: %v", err)
	}

	return NewShader(vertexPath, vertexSource, fragmentSource)
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), value)
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), vec[0], vec[1], vec[2])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), 1, false, &mat[0])
}
