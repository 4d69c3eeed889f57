package io

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleQueryFile = `[Query]

#######################
# Required Parameters #
#######################

# Whitespace-separated text table of query points. Lines starting with '#' are
# ignored.
PointsFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed columns holding the x, y, and z coordinates of each point.
# Defaults are 0, 1, and 2.
# XColumn = 0
# YColumn = 1
# ZColumn = 2

# Floating point precision used for the geometry. Must be one of
# [ float32 | float64 ]. Default is float64.
# Precision = float64

# Results are written to stdout unless Output is set. OutputFormat must be
# one of [ Text | Binary ]. Binary output requires Output. Default is Text.
# Output = path/to/results.txt
# OutputFormat = Text

# Text table of the points where lines, rays, and segments cross the surface
# of each sphere. Not written unless set.
# CrossingsFile = path/to/crossings.txt

# Output file which is useful for debugging.
# LogFile = log.out`

	ExampleShapesFile = `# Shapes are listed in the same file as the [Query] section. Every shape has
# a name, and each query point is tested against every shape.

[Sphere "ball"]
X = 1
Y = -2
Z = 3
Radius = 1.5

[Plane "floor"]
# A point in the plane and its normal. The normal does not need to be
# normalized.
X = 0
Y = 0
Z = 0
NX = 0
NY = 0
NZ = 1

[Line "x_axis"]
# A point on the line and its direction.
X = 0
Y = -2
Z = 3
DX = 1
DY = 0
DZ = 0

[Ray "beam"]
X = 0
Y = 0
Z = 1
DX = 0
DY = 0
DZ = -1

[Segment "edge"]
X0 = 0
Y0 = 0
Z0 = 0
X1 = 2
Y1 = 0
Z1 = 0

[Triangle "face"]
X0 = 0
Y0 = 0
Z0 = 0
X1 = 4
Y1 = 0
Z1 = 0
X2 = 0
Y2 = 3
Z2 = 0`
)

type QueryConfig struct {
	// Required
	PointsFile string

	// Optional
	XColumn, YColumn, ZColumn int
	Precision                 string
	Output, OutputFormat      string
	CrossingsFile             string
	LogFile                   string
}

func (con *QueryConfig) ValidPointsFile() bool { return con.PointsFile != "" }
func (con *QueryConfig) ValidOutput() bool     { return con.Output != "" }
func (con *QueryConfig) ValidLogFile() bool    { return con.LogFile != "" }

func (con *QueryConfig) ValidCrossingsFile() bool { return con.CrossingsFile != "" }

func (con *QueryConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.ZColumn >= 0
}

func (con *QueryConfig) ValidOutputFormat() bool {
	return con.OutputFormat == "text" ||
		(con.OutputFormat == "binary" && con.ValidOutput())
}

func (con *QueryConfig) ValidPrecision() bool {
	return con.Precision == "float32" || con.Precision == "float64"
}

// CheckInit normalizes the fields of con and returns an error describing the
// first invalid one.
func (con *QueryConfig) CheckInit() error {
	con.Precision = strings.ToLower(strings.Trim(con.Precision, " "))
	con.OutputFormat = strings.ToLower(strings.Trim(con.OutputFormat, " "))

	if !con.ValidPointsFile() {
		return fmt.Errorf("Need to specify a PointsFile in [Query].")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"Columns in [Query] must be non-negative, but are (%d, %d, %d).",
			con.XColumn, con.YColumn, con.ZColumn,
		)
	} else if !con.ValidPrecision() {
		return fmt.Errorf(
			"Precision in [Query] must be one of [float32 | float64]. '%s' "+
				"is not recognized.", con.Precision,
		)
	} else if !con.ValidOutputFormat() {
		return fmt.Errorf(
			"OutputFormat in [Query] must be one of [Text | Binary], and "+
				"Binary requires Output to be set. '%s' is not valid.",
			con.OutputFormat,
		)
	}
	return nil
}

type SphereConfig struct {
	// Required
	X, Y, Z, Radius float64

	Name string
}

func (sph *SphereConfig) CheckInit(name string) error {
	if sph.Radius < 0 {
		return fmt.Errorf(
			"Sphere '%s' given a negative radius, %g.", name, sph.Radius,
		)
	}
	sph.Name = name
	return nil
}

type PlaneConfig struct {
	// Required
	X, Y, Z    float64
	NX, NY, NZ float64

	Name string
}

func (pl *PlaneConfig) CheckInit(name string) error {
	if pl.NX == 0 && pl.NY == 0 && pl.NZ == 0 {
		return fmt.Errorf("Need to specify a non-zero normal for Plane '%s'.", name)
	}
	pl.Name = name
	return nil
}

// DirectedConfig is a point and a direction. It describes both lines and
// rays.
type DirectedConfig struct {
	// Required
	X, Y, Z    float64
	DX, DY, DZ float64

	Name string
}

func (dir *DirectedConfig) checkInit(kind, name string) error {
	if dir.DX == 0 && dir.DY == 0 && dir.DZ == 0 {
		return fmt.Errorf(
			"Need to specify a non-zero direction for %s '%s'.", kind, name,
		)
	}
	dir.Name = name
	return nil
}

type LineConfig DirectedConfig
type RayConfig DirectedConfig

func (l *LineConfig) CheckInit(name string) error {
	return (*DirectedConfig)(l).checkInit("Line", name)
}

func (r *RayConfig) CheckInit(name string) error {
	return (*DirectedConfig)(r).checkInit("Ray", name)
}

type SegmentConfig struct {
	// Required
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64

	Name string
}

func (seg *SegmentConfig) CheckInit(name string) error {
	if seg.X0 == seg.X1 && seg.Y0 == seg.Y1 && seg.Z0 == seg.Z1 {
		return fmt.Errorf(
			"Segment '%s' has the same start and end point.", name,
		)
	}
	seg.Name = name
	return nil
}

type TriangleConfig struct {
	// Required
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64

	Name string
}

// CheckInit accepts degenerate triangles; queries against them report
// missing values instead.
func (tri *TriangleConfig) CheckInit(name string) error {
	tri.Name = name
	return nil
}

type QueryWrapper struct {
	Query QueryConfig

	Sphere   map[string]*SphereConfig
	Plane    map[string]*PlaneConfig
	Line     map[string]*LineConfig
	Ray      map[string]*RayConfig
	Segment  map[string]*SegmentConfig
	Triangle map[string]*TriangleConfig
}

func DefaultQueryWrapper() *QueryWrapper {
	con := QueryConfig{}
	con.XColumn, con.YColumn, con.ZColumn = 0, 1, 2
	con.Precision = "float64"
	con.OutputFormat = "text"
	return &QueryWrapper{Query: con}
}

// ReadQueryConfig reads and validates a query file.
func ReadQueryConfig(fname string) (*QueryWrapper, error) {
	wrap := DefaultQueryWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ParseQueryConfig is ReadQueryConfig for a config held in memory.
func ParseQueryConfig(text string) (*QueryWrapper, error) {
	wrap := DefaultQueryWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// sortedNames returns the keys of a section map in order, so that shapes are
// always reported in the same order.
func sortedNames[C any](m map[string]C) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (wrap *QueryWrapper) CheckInit() error {
	if err := wrap.Query.CheckInit(); err != nil {
		return err
	}

	for _, name := range sortedNames(wrap.Sphere) {
		if err := wrap.Sphere[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(wrap.Plane) {
		if err := wrap.Plane[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(wrap.Line) {
		if err := wrap.Line[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(wrap.Ray) {
		if err := wrap.Ray[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(wrap.Segment) {
		if err := wrap.Segment[name].CheckInit(name); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(wrap.Triangle) {
		if err := wrap.Triangle[name].CheckInit(name); err != nil {
			return err
		}
	}

	if wrap.ShapeCount() == 0 {
		return fmt.Errorf("Query file does not contain any shapes.")
	}
	return nil
}

func (wrap *QueryWrapper) ShapeCount() int {
	return len(wrap.Sphere) + len(wrap.Plane) + len(wrap.Line) +
		len(wrap.Ray) + len(wrap.Segment) + len(wrap.Triangle)
}
