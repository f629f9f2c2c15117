package scene

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared with the bundled shaders.
const (
	UniformModel         = "modelMatrix"
	UniformView          = "viewMatrix"
	UniformProjection    = "projMatrix"
	UniformLightPosition = "lightPosition"
	UniformLightColor    = "lightColor"
	UniformAmbientLight  = "ambientLight"
	UniformSpecExp       = "specExp"
	UniformKCoeff        = "kCoeff"
	UniformTexture       = "texturefront"
	UniformSpecular      = "specularColor"
	UniformAmbient       = "ambientColor"
	UniformDiffuse       = "diffuseColor"
)

// UniformSetter uploads uniforms to the current program.
type UniformSetter interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// ApplyMaterial sends the object's material. Textured objects get their
// sampler unit; phong objects get their colors.
func (o *Object) ApplyMaterial(u UniformSetter, shared MaterialSpec) {
	u.SetFloat(UniformSpecExp, o.Material.SpecExp)
	u.SetVec3(UniformKCoeff, shared.KCoeff)

	if o.Program == ProgramTexture {
		u.SetInt(UniformTexture, int32(o.Material.TextureUnit))
		return
	}
	u.SetVec4(UniformSpecular, shared.Specular)
	u.SetVec4(UniformAmbient, o.Material.Ambient)
	u.SetVec4(UniformDiffuse, o.Material.Diffuse)
}
