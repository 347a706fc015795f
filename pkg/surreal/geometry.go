package surreal

import (
	"strconv"
	"strings"
)

// Geometry is implemented by the seven GeoJSON-like geometry variants.
type Geometry interface {
	Value
	geometry()
}

// GeometryPoint is a single longitude/latitude pair.
type GeometryPoint struct {
	Longitude float64
	Latitude  float64
}

// NewGeometryPoint returns a point at the given coordinates.
func NewGeometryPoint(lon, lat float64) GeometryPoint {
	return GeometryPoint{Longitude: lon, Latitude: lat}
}

func (GeometryPoint) Kind() Kind { return KindGeometryPoint }
func (GeometryPoint) geometry()  {}

func (p GeometryPoint) String() string {
	return "(" + strconv.FormatFloat(p.Longitude, 'f', -1, 64) + ", " +
		strconv.FormatFloat(p.Latitude, 'f', -1, 64) + ")"
}

// GeometryLine is a line string of two or more points.
type GeometryLine struct {
	Points []GeometryPoint
}

func (GeometryLine) Kind() Kind { return KindGeometryLine }
func (GeometryLine) geometry()  {}

func (l GeometryLine) String() string {
	parts := make([]string, len(l.Points))
	for i, p := range l.Points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// GeometryPolygon is an exterior ring followed by optional interior rings.
type GeometryPolygon struct {
	Lines []GeometryLine
}

func (GeometryPolygon) Kind() Kind { return KindGeometryPolygon }
func (GeometryPolygon) geometry()  {}

// GeometryMultiPoint is a collection of points.
type GeometryMultiPoint struct {
	Points []GeometryPoint
}

func (GeometryMultiPoint) Kind() Kind { return KindGeometryMultiPoint }
func (GeometryMultiPoint) geometry()  {}

// GeometryMultiLine is a collection of lines.
type GeometryMultiLine struct {
	Lines []GeometryLine
}

func (GeometryMultiLine) Kind() Kind { return KindGeometryMultiLine }
func (GeometryMultiLine) geometry()  {}

// GeometryMultiPolygon is a collection of polygons.
type GeometryMultiPolygon struct {
	Polygons []GeometryPolygon
}

func (GeometryMultiPolygon) Kind() Kind { return KindGeometryMultiPolygon }
func (GeometryMultiPolygon) geometry()  {}

// GeometryCollection holds geometries of any variant.
type GeometryCollection struct {
	Geometries []Geometry
}

func (GeometryCollection) Kind() Kind { return KindGeometryCollection }
func (GeometryCollection) geometry()  {}
