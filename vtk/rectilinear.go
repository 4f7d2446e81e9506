package vtk

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// VectorField is one named 3-component point-data attribute, one value per
// grid point, flattened with the first grid axis varying fastest.
type VectorField struct {
	Name       string
	Vx, Vy, Vz []float64
}

// FileName is the artifact name for step k of a series, e.g. step 7 of base
// "abc" -> "abc_0007.vtr".
func FileName(base string, step int) string {
	return fmt.Sprintf("%s_%04d.vtr", base, step)
}

// WriteRectilinear writes one XML rectilinear-grid file named name into dir,
// creating dir (and parents) if absent. The geometry is defined by the three
// coordinate axis sequences; v supplies the point data. Values are written
// as ascii Float32 arrays. An existing file of the same name is overwritten.
func WriteRectilinear(dir, name string, xc, yc, zc []float64, v VectorField) error {
	if len(v.Vx) != len(xc)*len(yc)*len(zc) {
		return fmt.Errorf("vector field %q has %d points, grid has %d",
			v.Name, len(v.Vx), len(xc)*len(yc)*len(zc))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory %s: %s", dir, err)
	}
	var buf bytes.Buffer
	extent := fmt.Sprintf("0 %d 0 %d 0 %d", len(xc)-1, len(yc)-1, len(zc)-1)
	fmt.Fprintf(&buf, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&buf, "<VTKFile type=\"RectilinearGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	fmt.Fprintf(&buf, "<RectilinearGrid WholeExtent=\"%s\">\n", extent)
	fmt.Fprintf(&buf, "<Piece Extent=\"%s\">\n", extent)

	fmt.Fprintf(&buf, "<PointData Vectors=\"%s\">\n", v.Name)
	fmt.Fprintf(&buf, "<DataArray type=\"Float32\" Name=\"%s\" NumberOfComponents=\"3\" format=\"ascii\">\n", v.Name)
	for n := range v.Vx {
		fmt.Fprintf(&buf, "%15.7e %15.7e %15.7e\n", float32(v.Vx[n]), float32(v.Vy[n]), float32(v.Vz[n]))
	}
	fmt.Fprintf(&buf, "</DataArray>\n</PointData>\n")

	fmt.Fprintf(&buf, "<Coordinates>\n")
	writeAxis(&buf, "x_coordinates", xc)
	writeAxis(&buf, "y_coordinates", yc)
	writeAxis(&buf, "z_coordinates", zc)
	fmt.Fprintf(&buf, "</Coordinates>\n")

	fmt.Fprintf(&buf, "</Piece>\n</RectilinearGrid>\n</VTKFile>\n")

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %s", path, err)
	}
	return nil
}

func writeAxis(buf *bytes.Buffer, name string, c []float64) {
	fmt.Fprintf(buf, "<DataArray type=\"Float32\" Name=\"%s\" format=\"ascii\">\n", name)
	for _, val := range c {
		fmt.Fprintf(buf, "%15.7e ", float32(val))
	}
	fmt.Fprintf(buf, "\n</DataArray>\n")
}
