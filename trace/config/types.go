package config

// SceneConfig represents the complete description of a render
type SceneConfig struct {
	Metadata           Metadata           `yaml:"metadata"`
	Input              Input              `yaml:"input,omitempty"`
	Materials          Materials          `yaml:"materials"`
	SurfaceAssignments SurfaceAssignments `yaml:"surface_assignments,omitempty"`
	Primitives         []Primitive        `yaml:"primitives"`
	Lights             []Light            `yaml:"lights"`
	Camera             Camera             `yaml:"camera"`
	Image              Image              `yaml:"image"`
	Shader             Shader             `yaml:"shader"`
	Output             Output             `yaml:"output,omitempty"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

// Input is an optional 3MF model whose objects become mesh primitives
type Input struct {
	Mesh struct {
		Path   string  `yaml:"path"`
		Scale  float64 `yaml:"scale,omitempty"`  // model units per scene unit, default 1
		Closed bool    `yaml:"closed,omitempty"` // objects are watertight volumes
	} `yaml:"mesh,omitempty"`
}

type Materials struct {
	Inline   map[string]Material `yaml:"inline,omitempty"`
	FromFile string              `yaml:"from_file,omitempty"`
}

type Material struct {
	Ambient           [3]float64 `yaml:"ambient" json:"ambient"`
	Diffuse           [3]float64 `yaml:"diffuse" json:"diffuse"`
	Specular          [3]float64 `yaml:"specular" json:"specular"`
	TransparencyColor [3]float64 `yaml:"transparency_color" json:"transparency_color"`
	Shininess         float64    `yaml:"shininess" json:"shininess"`
	Reflectivity      float64    `yaml:"reflectivity" json:"reflectivity"`
	Transparency      float64    `yaml:"transparency" json:"transparency"`
	RefractiveIndex   float64    `yaml:"refractive_index" json:"refractive_index"`
	Texture           string     `yaml:"texture,omitempty" json:"texture,omitempty"`
}

type SurfaceAssignments struct {
	Inline   map[string]string `yaml:"inline,omitempty"` // 3MF object name -> material name
	FromFile string            `yaml:"from_file,omitempty"`
}

type Primitive struct {
	Name     string  `yaml:"name"`
	Material string  `yaml:"material"`
	Sphere   *Sphere `yaml:"sphere,omitempty"`
	Plane    *Plane  `yaml:"plane,omitempty"`
}

type Sphere struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

type Plane struct {
	Point  [3]float64 `yaml:"point"`
	Normal [3]float64 `yaml:"normal"`
	Scale  float64    `yaml:"scale,omitempty"` // texture repeat length
}

type Light struct {
	Type          string      `yaml:"type"` // ambient, directional, point, linear_aperture, rectangular_aperture, elliptical_aperture, aperture_mask
	Color         [3]float64  `yaml:"color"`
	Direction     [3]float64  `yaml:"direction,omitempty"`
	Position      [3]float64  `yaml:"position,omitempty"`
	Axis          [3]float64  `yaml:"axis,omitempty"`
	Amplification *float64    `yaml:"amplification,omitempty"` // default 1
	Attenuation   Attenuation `yaml:"attenuation,omitempty"`
	Aperture      Aperture    `yaml:"aperture,omitempty"`
}

type Attenuation struct {
	Constant  float64             `yaml:"constant,omitempty"`
	Linear    float64             `yaml:"linear,omitempty"`
	Quadratic float64             `yaml:"quadratic,omitempty"`
	Curve     map[float64]float64 `yaml:"curve,omitempty"` // distance -> factor
}

type Aperture struct {
	Wavelength float64             `yaml:"wavelength,omitempty"`
	Width      float64             `yaml:"width,omitempty"`
	Height     float64             `yaml:"height,omitempty"`
	Mask       map[float64]float64 `yaml:"mask,omitempty"` // off-axis angle in degrees -> relative intensity
}

type Camera struct {
	Position   [3]float64 `yaml:"position"`
	LookAt     [3]float64 `yaml:"look_at"`
	Up         [3]float64 `yaml:"up"`
	FovDegrees float64    `yaml:"fov_degrees"`
}

type Image struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Shader struct {
	Mode     string  `yaml:"mode,omitempty"`      // default blinn
	TMax     float64 `yaml:"t_max,omitempty"`     // default unbounded
	MaxDepth int     `yaml:"max_depth,omitempty"` // 0 disables reflection and refraction
	Workers  int     `yaml:"workers,omitempty"`   // default one per CPU
}

type Output struct {
	ThumbnailWidth int `yaml:"thumbnail_width,omitempty"`
	HistogramBins  int `yaml:"histogram_bins,omitempty"`
}
