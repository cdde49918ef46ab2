package glback

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gregjohnson2017/viewport/pkg/log"
	"github.com/gregjohnson2017/viewport/pkg/perf"
)

// Shader is a compiled OpenGL shader stage.
type Shader struct {
	id uint32
}

// ErrCompileShader indicates that a shader failed to compile
const ErrCompileShader log.ConstErr = "failed to compile shader"

// ErrCreateShader indicates that a shader couldn't be created
const ErrCreateShader log.ConstErr = "failed to create shader"

// NewShader attempts to compile the given shader source code as a shader
// of type shaderType (ex: gl.FRAGMENT_SHADER)
func NewShader(source string, shaderType uint32) (Shader, error) {
	sw := perf.Start()
	defer sw.StopRecordAverage("glback.compileShader")
	shader := gl.CreateShader(shaderType)
	if shader == 0 {
		return Shader{}, ErrCreateShader
	}

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := string(make([]byte, logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return Shader{}, fmt.Errorf("%w: %v", ErrCompileShader, infoLog)
	}

	return Shader{shader}, nil
}

// Delete tells OpenGL to delete the shader ID
func (s Shader) Delete() {
	gl.DeleteShader(s.id)
}

// Program is a linked OpenGL shader program.
type Program struct {
	id uint32
}

// ErrProgramLink indicates that a program failed to link
const ErrProgramLink log.ConstErr = "failed to link shader program"

// NewProgram compiles the given shaders, attaches them to a new shader
// program and returns it.
func NewProgram(shaders ...Shader) (Program, error) {
	prog := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(prog, shader.id)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := string(make([]byte, logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(infoLog))

		return Program{}, fmt.Errorf("%w: %v", ErrProgramLink, infoLog)
	}

	return Program{prog}, nil
}

// UploadUniform uploads float32 data in the given uniform variable
// belonging to the given program ID.
//
// If data does not contain between 1 and 4 arguments (inclusive),
// UploadUniform will panic.
func (p Program) UploadUniform(uniformName string, data ...float32) {
	uniformID := gl.GetUniformLocation(p.id, &[]byte(uniformName + "\x00")[0])
	if uniformID == -1 {
		log.Fatalf("\"%s\" is an invalid uniform name", uniformName)
	}
	gl.UseProgram(p.id)
	switch len(data) {
	case 1:
		gl.Uniform1f(uniformID, data[0])
	case 2:
		gl.Uniform2f(uniformID, data[0], data[1])
	case 3:
		gl.Uniform3f(uniformID, data[0], data[1], data[2])
	case 4:
		gl.Uniform4f(uniformID, data[0], data[1], data[2], data[3])
	default:
		log.Fatal("invalid number of arguments to UploadUniform")
	}
	gl.UseProgram(0)
}

// Bind makes OpenGL use this program
func (p Program) Bind() {
	gl.UseProgram(p.id)
}

// Unbind sets the current program ID to 0
func (p Program) Unbind() {
	gl.UseProgram(0)
}

// Delete tells OpenGL to delete the program ID
func (p Program) Delete() {
	gl.DeleteProgram(p.id)
}
