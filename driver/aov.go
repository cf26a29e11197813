package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"sync"

	"github.com/gogpu/mixrgb"
)

// DefaultAOVFilename is the file an AOV driver writes when no filename is set.
const DefaultAOVFilename = "objects.txt"

// AOV is a driver that lists the objects visible in a pointer AOV.
//
// Every bucket contributes the names of its nodes; the first node seen
// with a name is kept. Close writes one "name:\t ref" line per name, sorted
// by name, to the configured file.
type AOV struct {
	filename string

	mu     sync.Mutex
	nodes  map[string]NamedNode
	closed bool
}

// NewAOV returns an AOV driver. Use WithFilename to change the output path.
func NewAOV(opts ...Option) *AOV {
	o := newOptions(opts)
	if o.filename == "" {
		o.filename = DefaultAOVFilename
	}
	return &AOV{
		filename: o.filename,
		nodes:    make(map[string]NamedNode),
	}
}

// SupportsPixelType accepts Pointer and Node.
func (d *AOV) SupportsPixelType(t PixelType) bool {
	return t == Pointer || t == Node
}

// Extensions returns "txt".
func (d *AOV) Extensions() []string {
	return []string{"txt"}
}

// Prepare fails with ErrClosed after Close and otherwise does nothing.
func (d *AOV) Prepare(Bucket) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	return nil
}

// Write records the names of the nodes in b. Empty entries, including
// typed nil pointers, are skipped.
func (d *AOV) Write(b Bucket) error {
	if !d.SupportsPixelType(b.Type) {
		return fmt.Errorf("%w: aov driver got %v", ErrUnsupportedPixelType, b.Type)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	var skipped int
	for _, n := range b.Nodes {
		if isNilNode(n) {
			skipped++
			continue
		}
		name := n.Name()
		if _, ok := d.nodes[name]; !ok {
			d.nodes[name] = n
		}
	}
	if skipped > 0 {
		mixrgb.Logger().Warn("driver: aov: empty pixels skipped", "x", b.X, "y", b.Y, "count", skipped)
	}
	return nil
}

// Names returns the collected names in sorted order.
func (d *AOV) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sortedNames()
}

func (d *AOV) sortedNames() []string {
	names := make([]string, 0, len(d.nodes))
	for name := range d.nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WriteTo writes the object list to w.
func (d *AOV) WriteTo(w io.Writer) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	bw := bufio.NewWriter(w)
	var total int64
	for _, name := range d.sortedNames() {
		n, err := fmt.Fprintf(bw, "%s:\t %s\n", name, nodeRef(d.nodes[name]))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Close writes the object list to the configured file.
// Calling Close again does nothing.
func (d *AOV) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	count := len(d.nodes)
	d.mu.Unlock()

	f, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("driver: aov: %w", err)
	}
	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("driver: aov: write %s: %w", d.filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("driver: aov: %w", err)
	}

	mixrgb.Logger().Info("driver: object list written", "file", d.filename, "objects", count)
	return nil
}

// isNilNode reports whether n is nil or holds a nil pointer.
func isNilNode(n NamedNode) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nodeRef formats the identity of n: its address for pointer types,
// its value otherwise.
func nodeRef(n NamedNode) string {
	if reflect.ValueOf(n).Kind() == reflect.Pointer {
		return fmt.Sprintf("%p", n)
	}
	return fmt.Sprintf("%v", n)
}
