package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Registry owns the shared cube mesh and lit material the scene draws
// with. The mesh is created lazily on first draw so GPU resources are
// allocated after the window/OpenGL context exists.
type Registry struct {
	cubeMesh   rl.Mesh
	cubeMtl    rl.Material
	cubeLoaded bool
	viewPos    [3]float32 // camera position, set each frame for lighting
	lightDir   [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns an empty registry. The cube is created on first
// DrawCube.
func NewRegistry() *Registry {
	return &Registry{
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame.
// Call once per frame before drawing so shading tracks the camera.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// ensureCube creates the cube mesh and lit material if not yet loaded.
func (r *Registry) ensureCube() {
	if r.cubeLoaded {
		return
	}
	r.cubeMesh = rl.GenMeshCube(1, 1, 1)
	r.cubeMtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.cubeMtl.Shader = shader
	}
	r.cubeLoaded = true
}

// DrawCube draws one axis-aligned box at position with the given size
// and albedo color. Must be called between BeginMode3D and EndMode3D;
// SetView must have run this frame.
func (r *Registry) DrawCube(position, size [3]float32, color rl.Color) {
	r.ensureCube()
	if albedo := r.cubeMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(r.cubeMtl.Shader)
	scaleM := rl.MatrixScale(size[0], size[1], size[2])
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	rl.DrawMesh(r.cubeMesh, r.cubeMtl, rl.MatrixMultiply(scaleM, transM))
}

// Lit shader: directional light + ambient + a small specular term.
// Same vertex attributes as raylib meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed faces aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const defaultLightIntensity = float32(0.75)
const defaultSpecularPower = float32(48.0)
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light
// color/intensity, and specular on the given shader (cgo-safe: local
// arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
