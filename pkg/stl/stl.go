// Package stl writes kernel meshes as binary STL files.
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"packgen/pkg/kernel"
)

// stlTriangleSize is the fixed on-disk size of one binary STL record:
// 12 float32s plus a 2-byte attribute count.
const stlTriangleSize = 50

// header is the binary STL file header.
type header struct {
	_     [80]uint8 // comment block, unused
	Count uint32    // number of triangles
}

// Write writes the mesh to w in binary STL format.
func Write(w io.Writer, m *kernel.Mesh) error {
	if m == nil || m.IsEmpty() {
		return errors.New("stl: empty mesh")
	}
	nt := m.TriangleCount()
	h := header{Count: uint32(nt)}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}

	var b [stlTriangleSize]byte
	for i := 0; i < nt; i++ {
		// One shared normal per triangle; ToMesh duplicates it across
		// the three vertices, so the first copy suffices.
		put3F32(b[0:], m.Normals[i*9:])
		put3F32(b[12:], m.Vertices[i*9:])
		put3F32(b[24:], m.Vertices[i*9+3:])
		put3F32(b[36:], m.Vertices[i*9+6:])
		binary.LittleEndian.PutUint16(b[48:], 0)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// Create writes the mesh to path, creating or truncating the file.
// I/O failures propagate to the caller.
func Create(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, m); err != nil {
		f.Close()
		return fmt.Errorf("stl: write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("stl: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("stl: close %s: %w", path, err)
	}
	return nil
}

func put3F32(b []byte, f []float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}
