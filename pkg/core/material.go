package core

// Material holds the Phong reflection coefficients of a surface.
// It is a plain value: shapes and hit records each keep their own copy.
type Material struct {
	Ambient   Vec3    // Added once per visible hit, independent of lights
	Diffuse   Vec3    // Lambertian term, scaled by the light's diffuse color
	Specular  Vec3    // Highlight term, scaled by the light's specular color
	Shininess float64 // Phong exponent
}

// NewMaterial creates a new material
func NewMaterial(ambient, diffuse, specular Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}
