package txt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/philipparndt/lidarview/pkg/lidar"
)

// ErrMalformedRecord matches every *MalformedRecordError
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes a line that could not be turned into a point
type MalformedRecordError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed record %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedRecord) succeed
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// Options configures a Reader
type Options struct {
	Layout Layout
	Header HeaderMode

	// Strict reports an unparsable line as a *MalformedRecordError.
	// Otherwise the first such line is taken as the end of the input.
	Strict bool
}

// DefaultOptions returns the canonical layout with header auto-detection
func DefaultOptions() Options {
	return Options{Layout: LayoutXYZRNC, Header: HeaderAuto}
}

// Reader decodes points from line-oriented text records
type Reader struct {
	scanner *bufio.Scanner
	opts    Options
	line    int
	started bool
	done    bool
}

// NewReader creates a reader on r
func NewReader(r io.Reader, opts Options) *Reader {
	if len(opts.Layout.Fields) == 0 {
		opts.Layout = LayoutXYZRNC
	}
	if opts.Header == "" {
		opts.Header = HeaderAuto
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Reader{scanner: scanner, opts: opts}
}

// Line returns the number of the last line read
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next point, or io.EOF once the input is exhausted
func (r *Reader) Next() (lidar.Point, error) {
	for !r.done && r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		first := !r.started
		r.started = true
		if first && r.opts.Header == HeaderAlways {
			glog.V(1).Infof("skipping header line: %s", text)
			continue
		}

		p, err := parseRecord(text, r.opts.Layout, r.opts.Strict)
		if err == nil {
			return p, nil
		}
		if first && r.opts.Header == HeaderAuto {
			glog.V(1).Infof("skipping header line: %s", text)
			continue
		}

		r.done = true
		malformed := &MalformedRecordError{Line: r.line, Text: text, Err: err}
		if r.opts.Strict {
			return lidar.Point{}, malformed
		}
		glog.V(1).Infof("end of input at %v", malformed)
		return lidar.Point{}, io.EOF
	}

	if err := r.scanner.Err(); err != nil {
		return lidar.Point{}, fmt.Errorf("error reading records: %w", err)
	}
	return lidar.Point{}, io.EOF
}

// ReadInto adds every remaining point to cloud. Points with a non-finite
// position are kept and logged.
func (r *Reader) ReadInto(cloud *lidar.PointCloud) error {
	for {
		p, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cloud.Add(p); err != nil {
			glog.Warningf("line %d: %v", r.line, err)
		}
	}
}

// Read decodes a complete point cloud from r
func Read(r io.Reader, name string, opts Options) (*lidar.PointCloud, error) {
	cloud := lidar.NewPointCloud(name)
	if err := NewReader(r, opts).ReadInto(cloud); err != nil {
		return nil, err
	}
	return cloud, nil
}

// ReadFile opens and decodes a point cloud file
func ReadFile(path string, opts Options) (*lidar.PointCloud, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	cloud, err := Read(file, filepath.Base(path), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	b := cloud.Bounds()
	glog.Infof("read %d points from %s (layout %s)", cloud.Size(), path, opts.Layout.Name)
	if !b.Empty() {
		glog.Infof("bounding box: x=[%.2f, %.2f], y=[%.2f, %.2f], z=[%.2f, %.2f]",
			b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z)
	}
	if cloud.Flagged() > 0 {
		glog.Warningf("%d points have non-finite coordinates and are excluded from the bounding box", cloud.Flagged())
	}
	return cloud, nil
}

// splitRecord splits comma separated records on commas only, so an empty
// field stays in place; other records split on runs of whitespace
func splitRecord(text string) []string {
	if !strings.ContainsRune(text, ',') {
		return strings.Fields(text)
	}
	columns := strings.Split(text, ",")
	for i, c := range columns {
		columns[i] = strings.TrimSpace(c)
	}
	return columns
}

func parseRecord(text string, layout Layout, strict bool) (lidar.Point, error) {
	columns := splitRecord(text)
	if len(columns) < len(layout.Fields) {
		return lidar.Point{}, fmt.Errorf("expected %d fields, got %d", len(layout.Fields), len(columns))
	}

	p := lidar.Point{Derived: lidar.NeverClassified}
	for i, field := range layout.Fields {
		value := strings.Trim(columns[i], `"`)
		if value == "" {
			return lidar.Point{}, fmt.Errorf("column %d: empty field", i+1)
		}
		if field == Skip {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return lidar.Point{}, fmt.Errorf("column %d: %w", i+1, err)
		}
		if field != X && field != Y && field != Z && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return lidar.Point{}, fmt.Errorf("column %d: %s must be finite, got %v", i+1, field, v)
		}

		switch field {
		case X:
			p.Position.X = v
		case Y:
			p.Position.Y = v
		case Z:
			p.Position.Z = v
		case ReturnNumber:
			p.ReturnNumber = int(v)
		case NumberOfReturns:
			p.NumberOfReturns = int(v)
		case Classification:
			if v < 0 || v >= 256 {
				return lidar.Point{}, fmt.Errorf("column %d: classification %v out of range 0-255", i+1, v)
			}
			p.Code = lidar.Code(v)
		}
	}

	if strict {
		if p.ReturnNumber < 1 || p.NumberOfReturns < 1 {
			return lidar.Point{}, fmt.Errorf("return number %d / number of returns %d must be >= 1", p.ReturnNumber, p.NumberOfReturns)
		}
		if p.ReturnNumber > p.NumberOfReturns {
			return lidar.Point{}, fmt.Errorf("return number %d exceeds number of returns %d", p.ReturnNumber, p.NumberOfReturns)
		}
	}
	return p, nil
}
