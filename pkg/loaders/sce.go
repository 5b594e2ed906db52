package loaders

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

var (
	// ErrUnknownToken is returned for a record keyword the format does not define
	ErrUnknownToken = xerrors.New("unknown token")
	// ErrUnexpectedEOF is returned when the input ends inside a record
	ErrUnexpectedEOF = xerrors.New("unexpected end of scene file")
)

// SCECamera is the camera record of a scene file
type SCECamera struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3
	FovY   float64
	Width  int
	Height int
}

// SCELight is a point light record
type SCELight struct {
	Position core.Vec3
	Color    core.Vec3
}

// SCEObject is a primitive record. Only the fields of its Type are set.
type SCEObject struct {
	Type       string    // "plane", "sphere", "cylinder" or "mesh"
	Center     core.Vec3 // plane, sphere, cylinder
	Normal     core.Vec3 // plane
	Radius     float64   // sphere, cylinder
	Axis       core.Vec3 // cylinder
	Height     float64   // cylinder
	MeshFile   string    // mesh: path resolved against the scene file's directory
	NormalMode string    // mesh: "FLAT" or "PHONG"
	Material   material.Phong
	Line       int // Line the record starts on
}

// SCEScene contains all records of a parsed scene file, in file order
type SCEScene struct {
	MaxDepth   int
	Camera     *SCECamera
	Background core.Vec3
	Ambience   core.Vec3
	Lights     []SCELight
	Objects    []SCEObject
}

// sceToken is one whitespace-separated word and the line it came from
type sceToken struct {
	text string
	line int
}

// sceParser reads records from a token stream
type sceParser struct {
	tokens  []sceToken
	pos     int
	baseDir string
	scene   *SCEScene
}

// ParseSCE parses scene records from reader. Mesh file names are resolved
// against baseDir.
func ParseSCE(reader io.Reader, baseDir string) (*SCEScene, error) {
	tokens, err := tokenizeSCE(reader)
	if err != nil {
		return nil, err
	}

	p := &sceParser{
		tokens:  tokens,
		baseDir: baseDir,
		scene: &SCEScene{
			Lights:  make([]SCELight, 0),
			Objects: make([]SCEObject, 0),
		},
	}
	for p.pos < len(p.tokens) {
		if err := p.parseRecord(); err != nil {
			return nil, err
		}
	}
	return p.scene, nil
}

// LoadSCE loads and parses a scene file
func LoadSCE(filename string) (*SCEScene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSCE(file, filepath.Dir(filename))
	if err != nil {
		return nil, xerrors.Errorf("while parsing %s: %w", filename, err)
	}
	return scene, nil
}

// tokenizeSCE splits the input into words. A word starting with '#'
// comments out the rest of its line.
func tokenizeSCE(reader io.Reader) ([]sceToken, error) {
	var tokens []sceToken
	scanner := bufio.NewScanner(reader)
	line := 0
	for scanner.Scan() {
		line++
		for _, field := range strings.Fields(scanner.Text()) {
			if strings.HasPrefix(field, "#") {
				break
			}
			tokens = append(tokens, sceToken{text: field, line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("while reading scene: %w", err)
	}
	return tokens, nil
}

func (p *sceParser) parseRecord() error {
	tok := p.tokens[p.pos]
	p.pos++
	glog.V(2).Infof("scene token %q at line %d", tok.text, tok.line)

	var err error
	switch tok.text {
	case "depth":
		p.scene.MaxDepth, err = p.readInt()
	case "camera":
		p.scene.Camera, err = p.readCamera()
	case "background":
		p.scene.Background, err = p.readVec3()
	case "ambience":
		p.scene.Ambience, err = p.readVec3()
	case "light":
		var light SCELight
		if light.Position, err = p.readVec3(); err == nil {
			light.Color, err = p.readVec3()
		}
		p.scene.Lights = append(p.scene.Lights, light)
	case "plane", "sphere", "cylinder", "mesh":
		var obj SCEObject
		obj, err = p.readObject(tok)
		p.scene.Objects = append(p.scene.Objects, obj)
	default:
		return xerrors.Errorf("line %d: %q: %w", tok.line, tok.text, ErrUnknownToken)
	}
	if err != nil {
		return xerrors.Errorf("while reading %s record at line %d: %w", tok.text, tok.line, err)
	}
	return nil
}

func (p *sceParser) readCamera() (*SCECamera, error) {
	var c SCECamera
	var err error
	if c.Eye, err = p.readVec3(); err != nil {
		return nil, err
	}
	if c.Center, err = p.readVec3(); err != nil {
		return nil, err
	}
	if c.Up, err = p.readVec3(); err != nil {
		return nil, err
	}
	if c.FovY, err = p.readFloat(); err != nil {
		return nil, err
	}
	if c.Width, err = p.readInt(); err != nil {
		return nil, err
	}
	if c.Height, err = p.readInt(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *sceParser) readObject(tok sceToken) (SCEObject, error) {
	obj := SCEObject{Type: tok.text, Line: tok.line}
	var err error

	switch obj.Type {
	case "plane":
		if obj.Center, err = p.readVec3(); err != nil {
			return obj, err
		}
		if obj.Normal, err = p.readVec3(); err != nil {
			return obj, err
		}
	case "sphere":
		if obj.Center, err = p.readVec3(); err != nil {
			return obj, err
		}
		if obj.Radius, err = p.readFloat(); err != nil {
			return obj, err
		}
	case "cylinder":
		if obj.Center, err = p.readVec3(); err != nil {
			return obj, err
		}
		if obj.Radius, err = p.readFloat(); err != nil {
			return obj, err
		}
		if obj.Axis, err = p.readVec3(); err != nil {
			return obj, err
		}
		if obj.Height, err = p.readFloat(); err != nil {
			return obj, err
		}
	case "mesh":
		file, err := p.readWord()
		if err != nil {
			return obj, err
		}
		if filepath.IsAbs(file) {
			obj.MeshFile = file
		} else {
			obj.MeshFile = filepath.Join(p.baseDir, file)
		}
		if obj.NormalMode, err = p.readWord(); err != nil {
			return obj, err
		}
	}

	obj.Material, err = p.readMaterial()
	return obj, err
}

// readMaterial reads ambient(3) diffuse(3) specular(3) shininess mirror
func (p *sceParser) readMaterial() (material.Phong, error) {
	var m material.Phong
	var err error
	if m.Ambient, err = p.readVec3(); err != nil {
		return m, err
	}
	if m.Diffuse, err = p.readVec3(); err != nil {
		return m, err
	}
	if m.Specular, err = p.readVec3(); err != nil {
		return m, err
	}
	if m.Shininess, err = p.readFloat(); err != nil {
		return m, err
	}
	m.Mirror, err = p.readFloat()
	return m, err
}

func (p *sceParser) readWord() (string, error) {
	if p.pos >= len(p.tokens) {
		return "", ErrUnexpectedEOF
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok.text, nil
}

func (p *sceParser) readFloat() (float64, error) {
	line := p.line()
	s, err := p.readWord()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, xerrors.Errorf("line %d: invalid number %q: %w", line, s, err)
	}
	return v, nil
}

func (p *sceParser) readInt() (int, error) {
	line := p.line()
	s, err := p.readWord()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, xerrors.Errorf("line %d: invalid integer %q: %w", line, s, err)
	}
	return v, nil
}

func (p *sceParser) readVec3() (core.Vec3, error) {
	var v [3]float64
	for i := range v {
		f, err := p.readFloat()
		if err != nil {
			return core.Vec3{}, err
		}
		v[i] = f
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// line returns the line of the next token, or of the last one at EOF
func (p *sceParser) line() int {
	switch {
	case p.pos < len(p.tokens):
		return p.tokens[p.pos].line
	case len(p.tokens) > 0:
		return p.tokens[len(p.tokens)-1].line
	}
	return 0
}
