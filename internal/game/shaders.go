package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad vertex shader: a unit quad placed by uniform rect, rotated about
// its centre, mapped from top-left-origin pixel space to NDC.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uOrigin;     // top-left, pixels
uniform vec2 uSize;       // pixels
uniform float uRotation;
uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 centre = uOrigin + uSize * 0.5;
    vec2 local = (aPos - 0.5) * uSize;
    float c = cos(uRotation);
    float s = sin(uRotation);
    vec2 rot = vec2(c * local.x - s * local.y, s * local.x + c * local.y);
    vec2 pix = centre + rot;
    vec2 ndc = (pix / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Flat color fill.
const fillFragSrc = `#version 410 core

uniform vec4 uColor;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = uColor;
}
` + "\x00"

// Circle fill: discard outside the inscribed circle, soft edge inside.
const circleFragSrc = `#version 410 core

uniform vec4 uColor;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec2 d = vUV - vec2(0.5);
    float r = length(d) * 2.0;
    if (r > 1.0) {
        discard;
    }
    float edge = 1.0 - smoothstep(0.92, 1.0, r);
    FragColor = vec4(uColor.rgb, uColor.a * edge);
}
` + "\x00"

// Border fill: keep only a uBorder-pixel frame of the quad.
const borderFragSrc = `#version 410 core

uniform vec4 uColor;
uniform vec2 uSize;
uniform float uBorder;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec2 pix = vUV * uSize;
    vec2 inner = uSize - vec2(uBorder);
    if (pix.x > uBorder && pix.x < inner.x && pix.y > uBorder && pix.y < inner.y) {
        discard;
    }
    FragColor = uColor;
}
` + "\x00"

// Textured quad with a global alpha multiplier.
const texFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform float uAlpha;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vUV);
    FragColor = vec4(t.rgb, t.a * uAlpha);
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
