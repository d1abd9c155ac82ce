package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// LoadScene loads a scene file. .yaml and .yml files use the YAML format,
// anything else the keyword text format.
func LoadScene(path string) (*scene.Scene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLScene(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return s, nil
}

// ParseScene reads the keyword text format: an object count followed by
// camera, plane, sphere, mesh and light objects. Every field is preceded by
// a label token which is skipped. Text after '#' is a comment. Mesh file
// names are resolved against dir.
func ParseScene(r io.Reader, dir string) (*scene.Scene, error) {
	tokens, err := tokenizeScene(r)
	if err != nil {
		return nil, err
	}

	countToken, ok := tokens.next()
	if !ok {
		return nil, fmt.Errorf("missing object count: %w", io.ErrUnexpectedEOF)
	}
	if _, err := strconv.Atoi(countToken); err != nil {
		return nil, fmt.Errorf("invalid object count %q", countToken)
	}

	var camera *geometry.Camera
	var lights []textLight
	var shapes []geometry.Shape

	for index := 1; ; index++ {
		keyword, ok := tokens.next()
		if !ok {
			break
		}

		p := &objectParser{tokens: tokens, index: index, kind: keyword}
		switch keyword {
		case "camera":
			c := p.camera()
			camera = &c
		case "plane":
			normal := p.vec3("nor")
			point := p.vec3("pos")
			material := p.material()
			shapes = append(shapes, geometry.NewPlane(point, normal, material))
		case "sphere":
			center := p.vec3("pos")
			radius := p.float("rad")
			material := p.material()
			shapes = append(shapes, geometry.NewSphere(center, radius, material))
		case "mesh":
			name := p.word("file")
			material := p.material()
			if p.err == nil {
				mesh, err := loadSceneMesh(dir, name, material)
				if err != nil {
					return nil, fmt.Errorf("object %d (mesh): %w", index, err)
				}
				shapes = append(shapes, mesh)
			}
		case "light":
			lights = append(lights, textLight{
				position: p.vec3("pos"),
				diffuse:  p.vec3("dif"),
				specular: p.vec3("spe"),
			})
		default:
			return nil, fmt.Errorf("object %d: %w %q", index, ErrUnknownObject, keyword)
		}

		if p.err != nil {
			return nil, p.err
		}
	}

	if camera == nil {
		return nil, ErrMissingCamera
	}

	s := scene.NewScene(*camera)
	s.AddShape(shapes...)
	for _, l := range lights {
		s.AddPointLight(l.position, l.diffuse, l.specular)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type textLight struct {
	position, diffuse, specular core.Vec3
}

func loadSceneMesh(dir, name string, material core.Material) (*geometry.TriangleMesh, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}

	data, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	return geometry.NewTriangleMeshFromPositions(data.Positions(), material, nil), nil
}

// sceneTokens is the whitespace separated token stream of a scene file
type sceneTokens struct {
	tokens []string
	pos    int
}

func tokenizeScene(r io.Reader) (*sceneTokens, error) {
	tokens := &sceneTokens{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens.tokens = append(tokens.tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scene: %w", err)
	}
	return tokens, nil
}

func (t *sceneTokens) next() (string, bool) {
	if t.pos >= len(t.tokens) {
		return "", false
	}
	token := t.tokens[t.pos]
	t.pos++
	return token, true
}

// objectParser reads the labelled fields of one object. The first failure
// is kept in err and later reads become no-ops.
type objectParser struct {
	tokens *sceneTokens
	index  int
	kind   string
	err    error
}

func (p *objectParser) fail(field string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("object %d (%s), field %s: %w", p.index, p.kind, field, err)
	}
}

func (p *objectParser) token(field string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	token, ok := p.tokens.next()
	if !ok {
		p.fail(field, io.ErrUnexpectedEOF)
		return "", false
	}
	return token, true
}

// label skips the label token in front of a field
func (p *objectParser) label(field string) {
	p.token(field)
}

func (p *objectParser) number(field string) float64 {
	token, ok := p.token(field)
	if !ok {
		return 0
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		p.fail(field, fmt.Errorf("invalid number %q", token))
		return 0
	}
	return value
}

func (p *objectParser) float(field string) float64 {
	p.label(field)
	return p.number(field)
}

func (p *objectParser) vec3(field string) core.Vec3 {
	p.label(field)
	x := p.number(field)
	y := p.number(field)
	z := p.number(field)
	return core.NewVec3(x, y, z)
}

func (p *objectParser) word(field string) string {
	p.label(field)
	token, _ := p.token(field)
	return token
}

func (p *objectParser) material() core.Material {
	ambient := p.vec3("amb")
	diffuse := p.vec3("dif")
	specular := p.vec3("spe")
	shininess := p.float("shi")
	return core.NewMaterial(ambient, diffuse, specular, shininess)
}

func (p *objectParser) camera() geometry.Camera {
	position := p.vec3("pos")
	fov := p.float("fov")
	focalLength := p.float("f")
	aspect := p.float("a")
	return geometry.NewCamera(position, fov, focalLength, aspect)
}
