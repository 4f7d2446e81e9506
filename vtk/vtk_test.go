package vtk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "abc_0000.vtr", FileName("abc", 0))
	assert.Equal(t, "abc_0007.vtr", FileName("abc", 7))
	assert.Equal(t, "run2_0199.vtr", FileName("run2", 199))
	assert.Equal(t, "abc_10000.vtr", FileName("abc", 10000))
}

func TestWriteRectilinear(t *testing.T) {
	var (
		axis = []float64{0, 1}
		np   = 8
	)
	v := VectorField{Name: "velocity"}
	for n := 0; n < np; n++ {
		v.Vx = append(v.Vx, float64(n))
		v.Vy = append(v.Vy, 0)
		v.Vz = append(v.Vz, -1)
	}
	// Nested output directory is created on demand
	{
		dir := filepath.Join(t.TempDir(), "a", "b")
		require.NoError(t, WriteRectilinear(dir, "abc_0000.vtr", axis, axis, axis, v))
		data, err := os.ReadFile(filepath.Join(dir, "abc_0000.vtr"))
		require.NoError(t, err)
		s := string(data)
		assert.True(t, strings.HasPrefix(s, "<?xml version=\"1.0\"?>\n"))
		assert.Contains(t, s, `<VTKFile type="RectilinearGrid" version="0.1" byte_order="LittleEndian">`)
		assert.Contains(t, s, `<RectilinearGrid WholeExtent="0 1 0 1 0 1">`)
		assert.Contains(t, s, `<Piece Extent="0 1 0 1 0 1">`)
		assert.Contains(t, s, `<PointData Vectors="velocity">`)
		assert.Contains(t, s, `<DataArray type="Float32" Name="velocity" NumberOfComponents="3" format="ascii">`)
		assert.Contains(t, s, `Name="x_coordinates"`)
		assert.Contains(t, s, `Name="y_coordinates"`)
		assert.Contains(t, s, `Name="z_coordinates"`)
		assert.Contains(t, s, "</Piece>\n</RectilinearGrid>\n</VTKFile>\n")
		// one line of three components per point
		start := strings.Index(s, "NumberOfComponents=\"3\" format=\"ascii\">\n")
		require.GreaterOrEqual(t, start, 0)
		block := s[start:]
		block = block[strings.Index(block, "\n")+1 : strings.Index(block, "</DataArray>")]
		assert.Equal(t, np, strings.Count(block, "\n"))
	}
	// Point count must match the axes
	{
		err := WriteRectilinear(t.TempDir(), "abc_0000.vtr", axis, axis, []float64{0, 1, 2}, v)
		assert.Error(t, err)
	}
}

func TestWriteCollection(t *testing.T) {
	dir := t.TempDir()
	steps := []TimeStep{
		{Time: 0, File: "abc_0000.vtr"},
		{Time: 0.5, File: "abc_0001.vtr"},
		{Time: 1.0 / 3.0, File: "abc_0002.vtr"},
	}
	require.NoError(t, WriteCollection(dir, "abc", steps))
	data, err := os.ReadFile(filepath.Join(dir, CollectionName("abc")))
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0"?>
<VTKFile type="Collection" version="0.1" byte_order="LittleEndian">
  <Collection>
    <DataSet timestep="0.000000" group="" part="0" file="abc_0000.vtr"/>
    <DataSet timestep="0.500000" group="" part="0" file="abc_0001.vtr"/>
    <DataSet timestep="0.333333" group="" part="0" file="abc_0002.vtr"/>
  </Collection>
</VTKFile>
`, string(data))
}
