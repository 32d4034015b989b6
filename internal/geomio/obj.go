// Package geomio converts external geometry and polar file formats into
// the core's typed inputs, mirroring the thinness of the teacher's
// storage readers: no mesh processing or curve fitting lives here.
package geomio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
	"github.com/kitewing/vsmgo/internal/wing"
)

// ReadOBJSections parses a reduced Wavefront-OBJ-like stream where every
// consecutive pair of "v x y z" lines forms one section: the first
// vertex of the pair is the leading edge, the second the trailing edge.
// Lines starting with '#' are comments; blank lines are skipped. Any
// other line prefix is ignored, so a real OBJ exported by a mesh tool
// can be fed through without stripping its faces/normals first.
//
// The odd-vertex-count case (a trailing unpaired LE with no TE) is a
// ConfigurationError, since the pairing has no way to complete it.
// Every returned section carries an Inviscid aero model; callers attach
// a real polar afterward if one applies.
func ReadOBJSections(r io.Reader) ([]wing.Section, error) {
	var verts []vecmath.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] != "v" {
			continue
		}
		x, err1 := strconv.ParseFloat(fields[1], 64)
		y, err2 := strconv.ParseFloat(fields[2], 64)
		z, err3 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, vsmerr.NewConfigurationError("ReadOBJSections",
				fmt.Errorf("line %d: malformed vertex %q", lineNo, line))
		}
		verts = append(verts, vecmath.Vec3{X: x, Y: y, Z: z})
	}
	if err := scanner.Err(); err != nil {
		return nil, vsmerr.NewConfigurationError("ReadOBJSections", err)
	}

	if len(verts)%2 != 0 {
		return nil, vsmerr.NewConfigurationError("ReadOBJSections",
			fmt.Errorf("odd vertex count %d, cannot pair into LE/TE sections", len(verts)))
	}

	sections := make([]wing.Section, 0, len(verts)/2)
	for i := 0; i < len(verts); i += 2 {
		sections = append(sections, wing.Section{
			LE:   verts[i],
			TE:   verts[i+1],
			Aero: aeromodel.Inviscid{},
		})
	}
	return sections, nil
}

// WriteOBJSections serializes sections back into the same reduced
// format ReadOBJSections consumes, LE then TE per section, so geometry
// round-trips through an external mesh tool without loss.
func WriteOBJSections(w io.Writer, sections []wing.Section) error {
	bw := bufio.NewWriter(w)
	for _, s := range sections {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", s.LE.X, s.LE.Y, s.LE.Z); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", s.TE.X, s.TE.Y, s.TE.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}
