package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite vertex shader: one point sprite per particle, sized to cover the
// circle plus a pixel of antialiasing.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aRadius;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;
out float vRadius;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aRadius * 2.0 + 2.0);
    vColor = aColor;
    vRadius = aRadius;
}
` + "\x00"

// Dot fragment shader: filled circle with a one pixel soft edge.
const dotFragSrc = `#version 410 core

uniform float uFade;

in vec4 vColor;
in float vRadius;
out vec4 FragColor;

void main() {
    float span = vRadius * 2.0 + 2.0;
    float d = length(gl_PointCoord - vec2(0.5)) * span;
    float cover = clamp(vRadius + 0.5 - d, 0.0, 1.0);
    if (cover <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * cover * uFade);
}
` + "\x00"

// Halo fragment shader: quadratic radial falloff, stands in for a blur shadow.
const haloFragSrc = `#version 410 core

uniform float uFade;

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0; // 0=center, 1=edge
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    if (falloff <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * falloff * uFade);
}
` + "\x00"

// Line vertex shader: per-vertex surface position and opacity.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aAlpha;

uniform vec2 uResolution;

out float vAlpha;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vAlpha = aAlpha;
}
` + "\x00"

const lineFragSrc = `#version 410 core

uniform vec3 uColor;
uniform float uFade;

in float vAlpha;
out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, vAlpha * uFade);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
