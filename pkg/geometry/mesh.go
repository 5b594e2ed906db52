package geometry

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NormalMode selects how a mesh shades its triangles
type NormalMode int

const (
	// FlatNormals uses one normal per triangle
	FlatNormals NormalMode = iota
	// PhongNormals interpolates angle-weighted vertex normals across each triangle
	PhongNormals
)

// ParseNormalMode maps the scene file keywords FLAT and PHONG to a NormalMode
func ParseNormalMode(s string) (NormalMode, error) {
	switch s {
	case "FLAT":
		return FlatNormals, nil
	case "PHONG":
		return PhongNormals, nil
	}
	return FlatNormals, xerrors.Errorf("unknown normal mode %q, want FLAT or PHONG", s)
}

func (m NormalMode) String() string {
	if m == PhongNormals {
		return "PHONG"
	}
	return "FLAT"
}

// Mesh represents a triangle mesh sharing one material
type Mesh struct {
	Vertices      []core.Vec3
	Faces         [][3]int
	Mode          NormalMode
	Material      material.Phong
	faceNormals   []core.Vec3
	vertexNormals []core.Vec3
	bbox          core.AABB
}

// NewMesh creates a triangle mesh and precomputes its normals and bounds.
// Every face index must refer to an existing vertex.
func NewMesh(vertices []core.Vec3, faces [][3]int, mode NormalMode, mat material.Phong) (*Mesh, error) {
	if len(vertices) == 0 || len(faces) == 0 {
		return nil, xerrors.Errorf("mesh needs vertices and faces, got %d and %d", len(vertices), len(faces))
	}
	for i, face := range faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(vertices) {
				return nil, xerrors.Errorf("face %d references vertex %d, mesh has %d", i, idx, len(vertices))
			}
		}
	}

	m := &Mesh{
		Vertices: vertices,
		Faces:    faces,
		Mode:     mode,
		Material: mat,
		bbox:     core.NewAABBFromPoints(vertices...),
	}
	m.computeNormals()
	return m, nil
}

// computeNormals fills in face normals and the angle-weighted vertex normals
func (m *Mesh) computeNormals() {
	m.faceNormals = make([]core.Vec3, len(m.Faces))
	m.vertexNormals = make([]core.Vec3, len(m.Vertices))

	for i, face := range m.Faces {
		p0, p1, p2 := m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]]
		n := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
		m.faceNormals[i] = n

		// Weight by the interior angle at each corner
		for corner := 0; corner < 3; corner++ {
			v := m.Vertices[face[corner]]
			e1 := m.Vertices[face[(corner+1)%3]].Subtract(v).Normalize()
			e2 := m.Vertices[face[(corner+2)%3]].Subtract(v).Normalize()
			angle := math.Acos(math.Max(-1, math.Min(1, e1.Dot(e2))))
			m.vertexNormals[face[corner]] = m.vertexNormals[face[corner]].Add(n.Multiply(angle))
		}
	}

	for i := range m.vertexNormals {
		m.vertexNormals[i] = m.vertexNormals[i].Normalize()
	}
}

// Intersect tests the ray against every triangle and returns the nearest hit
func (m *Mesh) Intersect(ray core.Ray) (Intersection, bool) {
	if !m.bbox.Hit(ray) {
		return Intersection{}, false
	}

	var closest Intersection
	found := false
	for i := range m.Faces {
		hit, ok := m.intersectTriangle(i, ray)
		if ok && (!found || hit.T < closest.T) {
			closest, found = hit, true
		}
	}
	return closest, found
}

// det3 is the determinant of the 3x3 matrix with columns a, b, c
func det3(a, b, c core.Vec3) float64 {
	return a.Cross(b).Dot(c)
}

// intersectTriangle solves origin + t*dir = p0 + beta*(p1-p0) + gamma*(p2-p0)
// with Cramer's rule.
func (m *Mesh) intersectTriangle(i int, ray core.Ray) (Intersection, bool) {
	face := m.Faces[i]
	p0, p1, p2 := m.Vertices[face[0]], m.Vertices[face[1]], m.Vertices[face[2]]

	a1 := ray.Direction.Negate()
	a2 := p1.Subtract(p0)
	a3 := p2.Subtract(p0)
	b := ray.Origin.Subtract(p0)

	denom := det3(a1, a2, a3)
	if denom == 0 {
		return Intersection{}, false
	}

	beta := det3(a1, b, a3) / denom
	if beta < 0 || beta > 1 {
		return Intersection{}, false
	}
	gamma := det3(a1, a2, b) / denom
	if gamma < 0 || beta+gamma > 1 {
		return Intersection{}, false
	}
	t := det3(b, a2, a3) / denom
	if t <= 0 {
		return Intersection{}, false
	}

	normal := m.faceNormals[i]
	if m.Mode == PhongNormals {
		alpha := 1 - beta - gamma
		normal = m.vertexNormals[face[0]].Multiply(alpha).
			Add(m.vertexNormals[face[1]].Multiply(beta)).
			Add(m.vertexNormals[face[2]].Multiply(gamma)).
			Normalize()
	}

	return Intersection{Point: ray.At(t), Normal: normal, T: t}, true
}

// GetMaterial returns the mesh's material
func (m *Mesh) GetMaterial() material.Phong {
	return m.Material
}

// BoundingBox returns the axis-aligned bounding box of all vertices
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// NumTriangles returns the number of faces in the mesh
func (m *Mesh) NumTriangles() int {
	return len(m.Faces)
}

// VertexNormal returns the precomputed normal of vertex i
func (m *Mesh) VertexNormal(i int) core.Vec3 {
	return m.vertexNormals[i]
}
