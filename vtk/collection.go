package vtk

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// TimeStep pairs one per-step artifact name with its real time value.
type TimeStep struct {
	Time float64
	File string
}

// CollectionName is the index file name for a series with the given base.
func CollectionName(base string) string {
	return base + "_series.pvd"
}

// WriteCollection writes the ParaView collection file indexing a full time
// series, one DataSet entry per step in the order given. File references are
// bare names, relative to the directory holding the collection itself. Any
// pre-existing index of the same name is overwritten.
func WriteCollection(dir, base string, steps []TimeStep) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory %s: %s", dir, err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&buf, "<VTKFile type=\"Collection\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	fmt.Fprintf(&buf, "  <Collection>\n")
	for _, s := range steps {
		fmt.Fprintf(&buf, "    <DataSet timestep=\"%.6f\" group=\"\" part=\"0\" file=\"%s\"/>\n", s.Time, s.File)
	}
	fmt.Fprintf(&buf, "  </Collection>\n")
	fmt.Fprintf(&buf, "</VTKFile>\n")

	path := filepath.Join(dir, CollectionName(base))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %s", path, err)
	}
	return nil
}
