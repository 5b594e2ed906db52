package loaders

import (
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// OFFData contains the vertices and triangles of an OFF mesh
type OFFData struct {
	Vertices []core.Vec3
	Faces    [][3]int // Triangle vertex indices
}

// LoadOFF loads an OFF mesh file
func LoadOFF(filename string) (*OFFData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening OFF file: %w", err)
	}
	defer file.Close()

	data, err := ParseOFF(file)
	if err != nil {
		return nil, xerrors.Errorf("while parsing %s: %w", filename, err)
	}
	glog.V(1).Infof("read %s: %d vertices, %d triangles", filename, len(data.Vertices), len(data.Faces))
	return data, nil
}

// ParseOFF parses an OFF mesh: the keyword OFF, the vertex, face and edge
// counts, then one x y z per vertex and one "n i0 i1 ... " per face.
// Polygons with more than three corners are split into a triangle fan.
// '#' starts a comment that runs to the end of the line.
func ParseOFF(reader io.Reader) (*OFFData, error) {
	tokens, err := tokenizeSCE(reader)
	if err != nil {
		return nil, err
	}
	pos := 0
	next := func() (string, error) {
		if pos >= len(tokens) {
			return "", ErrUnexpectedEOF
		}
		pos++
		return tokens[pos-1].text, nil
	}
	nextInt := func() (int, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(s)
	}
	nextFloat := func() (float64, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(s, 64)
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	if header != "OFF" {
		return nil, xerrors.Errorf("not an OFF file, header %q", header)
	}

	var counts [3]int
	for i := range counts {
		if counts[i], err = nextInt(); err != nil {
			return nil, xerrors.Errorf("while reading counts: %w", err)
		}
	}
	numVertices, numFaces := counts[0], counts[1]
	if numVertices < 0 || numFaces < 0 {
		return nil, xerrors.Errorf("negative counts %d vertices, %d faces", numVertices, numFaces)
	}

	data := &OFFData{
		Vertices: make([]core.Vec3, numVertices),
		Faces:    make([][3]int, 0, numFaces),
	}

	for i := range data.Vertices {
		var v [3]float64
		for j := range v {
			if v[j], err = nextFloat(); err != nil {
				return nil, xerrors.Errorf("while reading vertex %d: %w", i, err)
			}
		}
		data.Vertices[i] = core.NewVec3(v[0], v[1], v[2])
	}

	for i := 0; i < numFaces; i++ {
		n, err := nextInt()
		if err != nil {
			return nil, xerrors.Errorf("while reading face %d: %w", i, err)
		}
		if n < 3 {
			return nil, xerrors.Errorf("face %d has %d vertices, need at least 3", i, n)
		}
		indices := make([]int, n)
		for j := range indices {
			if indices[j], err = nextInt(); err != nil {
				return nil, xerrors.Errorf("while reading face %d: %w", i, err)
			}
			if indices[j] < 0 || indices[j] >= numVertices {
				return nil, xerrors.Errorf("face %d references vertex %d, file has %d", i, indices[j], numVertices)
			}
		}
		for j := 1; j+1 < n; j++ {
			data.Faces = append(data.Faces, [3]int{indices[0], indices[j], indices[j+1]})
		}
	}

	return data, nil
}
