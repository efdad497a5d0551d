package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slicestack/chopper/mesh"
)

// loadSTL reads either binary or ASCII STL triangle data from r and
// returns it as the raw, per-triangle-duplicated vertex/index form
// mesh.NewMesh expects (STL parsing is a CLI concern, not part of the
// mesh package — the core module only ever sees in-memory triangles).
//
// Adapted from the STL reader shape used by philipparndt-go3mf's
// internal/stl package: sniff the "solid" ASCII header, otherwise
// assume the 80-byte-header binary format.
func loadSTL(r io.Reader) ([]mesh.Vec3, [][3]int, error) {
	br := bufio.NewReader(r)

	peek, err := br.Peek(5)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("stl: read header: %w", err)
	}
	if string(peek) == "solid" {
		return loadSTLASCII(br)
	}

	return loadSTLBinary(br)
}

func loadSTLBinary(r *bufio.Reader) ([]mesh.Vec3, [][3]int, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, nil, fmt.Errorf("stl: read header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, nil, fmt.Errorf("stl: read triangle count: %w", err)
	}

	verts := make([]mesh.Vec3, 0, count*3)
	tris := make([][3]int, 0, count)

	var rec struct {
		Normal   [3]float32
		V        [3][3]float32
		Attr     uint16
	}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, nil, fmt.Errorf("stl: read triangle %d: %w", i, err)
		}

		base := len(verts)
		for _, v := range rec.V {
			verts = append(verts, mesh.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		}
		tris = append(tris, [3]int{base, base + 1, base + 2})
	}

	return verts, tris, nil
}

func loadSTLASCII(r *bufio.Reader) ([]mesh.Vec3, [][3]int, error) {
	var verts []mesh.Vec3
	var tris [][3]int
	var current [3]mesh.Vec3
	vertexCount := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 || fields[0] != "vertex" {
			if len(fields) > 0 && fields[0] == "endfacet" {
				base := len(verts)
				verts = append(verts, current[0], current[1], current[2])
				tris = append(tris, [3]int{base, base + 1, base + 2})
				vertexCount = 0
			}
			continue
		}
		if len(fields) != 4 {
			return nil, nil, fmt.Errorf("stl: malformed vertex line %q", scanner.Text())
		}

		x, err1 := strconv.ParseFloat(fields[1], 64)
		y, err2 := strconv.ParseFloat(fields[2], 64)
		z, err3 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, nil, fmt.Errorf("stl: malformed vertex coordinates %q", scanner.Text())
		}

		if vertexCount < 3 {
			current[vertexCount] = mesh.Vec3{X: x, Y: y, Z: z}
			vertexCount++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("stl: scan: %w", err)
	}

	return verts, tris, nil
}
