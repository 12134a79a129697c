package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/scene"
	"github.com/df07/go-scene-raytracer/pkg/transform"
)

// Defaults applied when a scene file leaves a setting out
const (
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultMaxDepth = 5
	DefaultOutput   = "raytrace.png"
)

// ignoredDirectives belong to the shading part of the format. They are
// accepted so existing scene files load, but have no effect on flat shading.
var ignoredDirectives = map[string]bool{
	"ambient":      true,
	"diffuse":      true,
	"specular":     true,
	"shininess":    true,
	"emission":     true,
	"point":        true,
	"directional":  true,
	"attenuation":  true,
	"maxvertnorms": true,
	"vertexnormal": true,
	"trinormal":    true,
}

// cameraDirective holds camera parameters until the final image size is known
type cameraDirective struct {
	lookFrom, lookAt, up core.Vec3
	fovY                 float64
	line                 int
}

// SceneParser encapsulates the state of parsing a scene description
type SceneParser struct {
	logger  log.Logger
	source  string
	lineNum int

	scene    *scene.Scene
	stack    transform.Stack
	vertices []core.Vec3
	maxVerts int // negative until maxverts is seen
	cameras  []cameraDirective
	sizeSet  bool
	warned   map[string]bool

	// Transform built for the last primitive, reused while the stack top is unchanged
	lastTop mgl64.Mat4
	lastXf  *transform.GeometricTransform
}

// NewSceneParser creates a parser; source names the input in error messages
func NewSceneParser(source string) *SceneParser {
	return &SceneParser{
		logger: log.New("scene-loader"),
		source: source,
		scene: &scene.Scene{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			MaxDepth: DefaultMaxDepth,
			Output:   DefaultOutput,
		},
		stack:    transform.NewStack(),
		maxVerts: -1,
		warned:   make(map[string]bool),
	}
}

// ParseScene parses a scene description from an io.Reader
func ParseScene(reader io.Reader, source string) (*scene.Scene, error) {
	parser := NewSceneParser(source)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNum++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %v", source, err)
	}

	if err := parser.finalize(); err != nil {
		return nil, err
	}
	return parser.scene, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	return ParseScene(file, filename)
}

// errorf reports a syntax problem at the current line
func (p *SceneParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", p.source, p.lineNum, fmt.Sprintf(format, args...))
}

// wrap attaches the current position to a configuration error
func (p *SceneParser) wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", p.source, p.lineNum, err)
}

// processLine handles a single directive
func (p *SceneParser) processLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	cmd, args := tokens[0], tokens[1:]
	switch cmd {
	case "size":
		return p.processSize(args)
	case "maxdepth":
		n, err := p.ints(cmd, args, 1)
		if err != nil {
			return err
		}
		p.scene.MaxDepth = n[0]
	case "output":
		if len(args) != 1 {
			return p.errorf(`"output" expects 1 argument; got %d`, len(args))
		}
		p.scene.Output = args[0]
	case "camera":
		v, err := p.floats(cmd, args, 10)
		if err != nil {
			return err
		}
		p.cameras = append(p.cameras, cameraDirective{
			lookFrom: core.NewVec3(v[0], v[1], v[2]),
			lookAt:   core.NewVec3(v[3], v[4], v[5]),
			up:       core.NewVec3(v[6], v[7], v[8]),
			fovY:     v[9],
			line:     p.lineNum,
		})
	case "sphere":
		v, err := p.floats(cmd, args, 4)
		if err != nil {
			return err
		}
		xf, err := p.currentTransform()
		if err != nil {
			return err
		}
		p.scene.Spheres = append(p.scene.Spheres, geometry.NewSphere(core.NewVec3(v[0], v[1], v[2]), v[3], xf))
	case "maxverts":
		n, err := p.ints(cmd, args, 1)
		if err != nil {
			return err
		}
		if n[0] < 0 {
			return p.errorf(`"maxverts" must not be negative; got %d`, n[0])
		}
		if n[0] < len(p.vertices) {
			return p.wrap(core.NewConfigError(core.VertexLimitExceeded,
				"maxverts %d is below the %d vertices already declared", n[0], len(p.vertices)))
		}
		// Later maxverts directives only move the limit; declared vertices stay
		p.maxVerts = n[0]
		if cap(p.vertices) < n[0] {
			grown := make([]core.Vec3, len(p.vertices), n[0])
			copy(grown, p.vertices)
			p.vertices = grown
		}
	case "vertex":
		v, err := p.floats(cmd, args, 3)
		if err != nil {
			return err
		}
		if p.maxVerts >= 0 && len(p.vertices) >= p.maxVerts {
			return p.wrap(core.NewConfigError(core.VertexLimitExceeded, "maxverts is %d", p.maxVerts))
		}
		p.vertices = append(p.vertices, core.NewVec3(v[0], v[1], v[2]))
	case "tri":
		return p.processTriangle(args)
	case "translate":
		v, err := p.floats(cmd, args, 3)
		if err != nil {
			return err
		}
		p.stack = p.stack.Apply(transform.Translate(v[0], v[1], v[2]))
	case "scale":
		v, err := p.floats(cmd, args, 3)
		if err != nil {
			return err
		}
		p.stack = p.stack.Apply(transform.Scale(v[0], v[1], v[2]))
	case "rotate":
		// rotate axisX axisY axisZ degrees
		v, err := p.floats(cmd, args, 4)
		if err != nil {
			return err
		}
		m, err := transform.Rotate(core.NewVec3(v[0], v[1], v[2]), v[3])
		if err != nil {
			return p.wrap(err)
		}
		p.stack = p.stack.Apply(m)
	case "pushTransform":
		p.stack = p.stack.Push()
	case "popTransform":
		popped, err := p.stack.Pop()
		if err != nil {
			return p.wrap(err)
		}
		p.stack = popped
	default:
		if ignoredDirectives[cmd] {
			if !p.warned[cmd] {
				p.logger.Warningf(`%s:%d: ignoring shading directive "%s"`, p.source, p.lineNum, cmd)
				p.warned[cmd] = true
			}
			return nil
		}
		return p.errorf(`unsupported directive "%s"`, cmd)
	}
	return nil
}

func (p *SceneParser) processSize(args []string) error {
	n, err := p.ints("size", args, 2)
	if err != nil {
		return err
	}
	if n[0] <= 0 || n[1] <= 0 {
		return p.wrap(core.NewConfigError(core.InvalidDimensions, "size %dx%d", n[0], n[1]))
	}
	p.scene.Width, p.scene.Height = n[0], n[1]
	p.sizeSet = true
	return nil
}

func (p *SceneParser) processTriangle(args []string) error {
	idx, err := p.ints("tri", args, 3)
	if err != nil {
		return err
	}
	for _, i := range idx {
		if i < 0 || i >= len(p.vertices) {
			return p.wrap(core.NewConfigError(core.VertexIndexOutOfRange,
				"index %d with %d vertices defined", i, len(p.vertices)))
		}
	}
	xf, err := p.currentTransform()
	if err != nil {
		return err
	}
	p.scene.Triangles = append(p.scene.Triangles,
		geometry.NewTriangle(p.vertices[idx[0]], p.vertices[idx[1]], p.vertices[idx[2]], xf))
	return nil
}

// currentTransform returns the transform for the top of the stack. Primitives
// declared under the same frame share one transform value.
func (p *SceneParser) currentTransform() (*transform.GeometricTransform, error) {
	top := p.stack.Top()
	if p.lastXf != nil && top == p.lastTop {
		return p.lastXf, nil
	}
	xf, err := transform.New(top)
	if err != nil {
		return nil, p.wrap(err)
	}
	p.lastTop, p.lastXf = top, xf
	return xf, nil
}

// finalize builds the cameras once the image size is settled
func (p *SceneParser) finalize() error {
	if !p.sizeSet {
		p.logger.Noticef("%s: no size directive, using %dx%d", p.source, p.scene.Width, p.scene.Height)
	}
	if p.stack.Depth() > 0 {
		p.logger.Warningf("%s: %d pushTransform without matching popTransform", p.source, p.stack.Depth())
	}

	for _, c := range p.cameras {
		camera, err := geometry.NewCamera(p.scene.Width, p.scene.Height, c.lookFrom, c.lookAt, c.up, c.fovY)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", p.source, c.line, err)
		}
		p.scene.Cameras = append(p.scene.Cameras, camera)
	}

	p.logger.Infof("%s: %d cameras, %d spheres, %d triangles", p.source,
		len(p.scene.Cameras), len(p.scene.Spheres), len(p.scene.Triangles))
	return nil
}

// floats parses exactly n numeric arguments
func (p *SceneParser) floats(cmd string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, p.errorf(`"%s" expects %d arguments; got %d`, cmd, n, len(args))
	}
	out := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, p.errorf(`"%s" argument %d: invalid number %q`, cmd, i+1, arg)
		}
		out[i] = v
	}
	return out, nil
}

// ints parses exactly n integer arguments
func (p *SceneParser) ints(cmd string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, p.errorf(`"%s" expects %d arguments; got %d`, cmd, n, len(args))
	}
	out := make([]int, n)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, p.errorf(`"%s" argument %d: invalid integer %q`, cmd, i+1, arg)
		}
		out[i] = v
	}
	return out, nil
}
