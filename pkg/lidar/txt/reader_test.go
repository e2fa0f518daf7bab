package txt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCanonicalLayout(t *testing.T) {
	input := "0 0 0 1 1 2\n10 0 0 1 1 2\n0 10 0 1 1 2\n"

	cloud, err := Read(strings.NewReader(input), "scenario", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, cloud.Size())

	b := cloud.Bounds()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), b.Min)
	assert.Equal(t, geometry.NewVector3(10, 10, 0), b.Max)

	for i, p := range cloud.All() {
		assert.Equal(t, 1, p.ReturnNumber, "point %d", i)
		assert.Equal(t, 1, p.NumberOfReturns, "point %d", i)
		assert.Equal(t, lidar.Ground, p.Code, "point %d", i)
		assert.Equal(t, lidar.NeverClassified, p.Derived, "point %d", i)
	}
}

func TestLayoutsDecodeSamePoint(t *testing.T) {
	cases := map[string]struct {
		layout Layout
		line   string
	}{
		"xyzrnc":      {LayoutXYZRNC, "512.25 -30.5 101.75 2 3 5"},
		"xyzrncComma": {LayoutXYZRNC, "512.25,-30.5,101.75,2,3,5"},
		"xyznrc":      {LayoutXYZNRC, "512.25 -30.5 101.75 3 2 5"},
		"pdal":        {LayoutPDAL, "512.25,-30.5,101.75,87,2,3,0,0,5,-12,0,7,123456.789"},
		"floatFields": {LayoutXYZRNC, "512.25 -30.5 101.75 2.000 3.000 5.000"},
	}

	expected := lidar.NewPoint(512.25, -30.5, 101.75, 2, 3, lidar.HighVegetation)
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewReader(strings.NewReader(c.line), Options{Layout: c.layout, Header: HeaderNever, Strict: true})
			p, err := r.Next()
			require.NoError(t, err)
			assert.Equal(t, expected, p)
		})
	}
}

func TestHeaderModes(t *testing.T) {
	pdal := `"X","Y","Z","Intensity","ReturnNumber","NumberOfReturns","ScanDirectionFlag","EdgeOfFlightLine","Classification","ScanAngleRank","UserData","PointSourceId","GpsTime"
1,2,3,10,1,1,0,0,2,0,0,1,0.5
4,5,6,10,1,2,0,0,5,0,0,1,0.6
`
	cloud, err := Read(strings.NewReader(pdal), "pdal", Options{Layout: LayoutPDAL, Header: HeaderAuto})
	require.NoError(t, err)
	assert.Equal(t, 2, cloud.Size())

	data := "1 2 3 1 1 2\n4 5 6 1 1 2\n"

	cloud, err = Read(strings.NewReader(data), "auto", Options{Header: HeaderAuto})
	require.NoError(t, err)
	assert.Equal(t, 2, cloud.Size(), "auto mode must keep a numeric first line")

	cloud, err = Read(strings.NewReader(data), "always", Options{Header: HeaderAlways})
	require.NoError(t, err)
	assert.Equal(t, 1, cloud.Size(), "always mode must drop the first line")
	assert.Equal(t, 4.0, cloud.At(0).Position.X)

	cloud, err = Read(strings.NewReader("x y z r n c\n"+data), "never", Options{Header: HeaderNever})
	require.NoError(t, err)
	assert.Equal(t, 0, cloud.Size(), "never mode treats a header as end of input")
}

func TestLenientStopsAtMalformedLine(t *testing.T) {
	input := "1 1 1 1 1 2\n2 2 2 1 1 2\ngarbage line here\n3 3 3 1 1 2\n"

	cloud, err := Read(strings.NewReader(input), "lenient", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, cloud.Size())
}

func TestStrictReportsMalformedLine(t *testing.T) {
	input := "1 1 1 1 1 2\n2 2 2 1 1 2\n3 3 oops 1 1 2\n4 4 4 1 1 2\n"

	opts := DefaultOptions()
	opts.Strict = true
	_, err := Read(strings.NewReader(input), "strict", opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 3, malformed.Line)
	assert.Equal(t, "3 3 oops 1 1 2", malformed.Text)
}

func TestStrictValidatesReturns(t *testing.T) {
	opts := DefaultOptions()
	opts.Header = HeaderNever

	for _, line := range []string{"0 0 0 3 2 1", "0 0 0 0 1 1", "0 0 0 1 0 1"} {
		opts.Strict = false
		cloud, err := Read(strings.NewReader(line), "lenient", opts)
		require.NoError(t, err)
		assert.Equal(t, 1, cloud.Size(), "lenient mode keeps %q", line)

		opts.Strict = true
		_, err = Read(strings.NewReader(line), "strict", opts)
		assert.ErrorIs(t, err, ErrMalformedRecord, line)
	}
}

func TestEmptyCommaFieldIsMalformed(t *testing.T) {
	opts := Options{Layout: LayoutPDAL, Header: HeaderNever}
	input := "1,2,3,10,1,1,1,0,2,0,0,0,0\n1,2,3,,1,1,1,0,6,0,0,0,0\n"

	cloud, err := Read(strings.NewReader(input), "lenient", opts)
	require.NoError(t, err)
	require.Equal(t, 1, cloud.Size(), "lenient mode ends input at the empty field")
	assert.Equal(t, lidar.Ground, cloud.At(0).Code)

	opts.Strict = true
	_, err = Read(strings.NewReader(input), "strict", opts)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
}

func TestCommaFieldsAreTrimmed(t *testing.T) {
	opts := Options{Layout: LayoutXYZRNC, Header: HeaderNever, Strict: true}
	cloud, err := Read(strings.NewReader("1, 2, 3, 1, 2, 6 \n"), "spaced", opts)
	require.NoError(t, err)
	assert.Equal(t, lidar.NewPoint(1, 2, 3, 1, 2, lidar.Building), *cloud.At(0))
}

func TestNonFiniteAttributesAreMalformed(t *testing.T) {
	for _, line := range []string{"1 2 3 1 1 nan", "1 2 3 inf 1 2", "1 2 3 1 NaN 2", "1 2 3 1 1 -inf"} {
		opts := Options{Layout: LayoutXYZRNC, Header: HeaderNever, Strict: true}
		_, err := Read(strings.NewReader(line), "strict", opts)
		assert.ErrorIs(t, err, ErrMalformedRecord, line)

		opts.Strict = false
		cloud, err := Read(strings.NewReader(line), "lenient", opts)
		require.NoError(t, err)
		assert.Equal(t, 0, cloud.Size(), "lenient mode ends input at %q", line)
	}
}

func TestClassificationOutOfRange(t *testing.T) {
	opts := Options{Header: HeaderNever, Strict: true}
	_, err := Read(strings.NewReader("0 0 0 1 1 256\n"), "range", opts)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	cloud, err := Read(strings.NewReader("0 0 0 1 1 255\n"), "range", opts)
	require.NoError(t, err)
	assert.Equal(t, lidar.Code(255), cloud.At(0).Code)
}

func TestBlankLinesAreSkipped(t *testing.T) {
	cloud, err := Read(strings.NewReader("\n1 1 1 1 1 2\n\n   \n2 2 2 1 1 2\n\n"), "blank", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, cloud.Size())
}

func TestNonFinitePointIsFlagged(t *testing.T) {
	cloud, err := Read(strings.NewReader("1 1 1 1 1 2\nNaN 2 2 1 1 2\n3 3 3 1 1 2\n"), "nan", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, cloud.Size())
	assert.Equal(t, 1, cloud.Flagged())
	assert.Equal(t, 3.0, cloud.Bounds().Max.X)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3 1 1 6\n"), 0o644))

	cloud, err := ReadFile(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "tile.txt", cloud.Name)
	assert.Equal(t, lidar.Building, cloud.At(0).Code)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLayoutByName(t *testing.T) {
	l, err := LayoutByName(" XYZNRC ")
	require.NoError(t, err)
	assert.Equal(t, LayoutXYZNRC.Name, l.Name)

	_, err = LayoutByName("xyz")
	assert.ErrorContains(t, err, "unknown layout")

	mode, err := ParseHeaderMode("")
	require.NoError(t, err)
	assert.Equal(t, HeaderAuto, mode)

	_, err = ParseHeaderMode("sometimes")
	assert.Error(t, err)
}
