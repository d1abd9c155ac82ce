package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian" or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element declaration and its properties, in file order
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// plyValueReader reads one scalar of a PLY data type as float64
type plyValueReader interface {
	readValue(dataType string) (float64, error)
}

// LoadPLY loads a PLY file and returns its vertex positions and triangulated faces
func LoadPLY(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load PLY file %s: %w", filename, err)
	}
	return mesh, nil
}

// ReadPLY parses PLY data in ascii or binary_little_endian format
func ReadPLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &plyBinaryReader{reader: reader, order: binary.LittleEndian}
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &plyASCIIReader{scanner: scanner}
	default:
		return nil, fmt.Errorf("%w: PLY format %q", ErrUnsupportedFormat, header.Format)
	}

	mesh := &MeshData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, mesh); err != nil {
			return nil, fmt.Errorf("failed to read PLY %s data: %w", element.Name, err)
		}
	}

	if err := mesh.validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// parsePLYHeader reads header lines up to and including end_header, leaving
// the reader positioned at the start of the element data
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	magic, err := readHeaderLine(reader)
	if err != nil {
		return nil, err
	}
	if magic != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := readHeaderLine(reader)
		if err != nil {
			return nil, err
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property declared before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Properties = append(current.Properties, prop)
		default:
			return nil, fmt.Errorf("unexpected header line: %q", line)
		}
	}

	return header, nil
}

func readHeaderLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", fmt.Errorf("error reading header: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
		if getTypeSize(prop.ListType) == 0 || getTypeSize(prop.DataType) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported list property types: %s %s", prop.ListType, prop.DataType)
		}
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
		if getTypeSize(prop.Type) == 0 {
			return PLYProperty{}, fmt.Errorf("unsupported data type: %s", prop.Type)
		}
	}

	return prop, nil
}

// readPLYElement reads every instance of element. Vertex positions and face
// index lists are kept; any other property or element is read and dropped.
func readPLYElement(values plyValueReader, element PLYElement, mesh *MeshData) error {
	for i := 0; i < element.Count; i++ {
		var position [3]float64
		var polygon []int

		for _, prop := range element.Properties {
			if prop.IsList {
				list, err := readPLYList(values, prop)
				if err != nil {
					return fmt.Errorf("%s %d, property %s: %w", element.Name, i, prop.Name, err)
				}
				if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					polygon = list
				}
				continue
			}

			value, err := values.readValue(prop.Type)
			if err != nil {
				return fmt.Errorf("%s %d, property %s: %w", element.Name, i, prop.Name, err)
			}
			if element.Name == "vertex" {
				switch prop.Name {
				case "x":
					position[0] = value
				case "y":
					position[1] = value
				case "z":
					position[2] = value
				}
			}
		}

		switch element.Name {
		case "vertex":
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(position[0], position[1], position[2]))
		case "face":
			if len(polygon) < 3 {
				return fmt.Errorf("face %d has %d vertices", i, len(polygon))
			}
			mesh.appendPolygon(polygon)
		}
	}
	return nil
}

// maxPLYListPrealloc bounds the capacity reserved from a list length read
// from the file; longer lists grow as their values are read.
const maxPLYListPrealloc = 64

func readPLYList(values plyValueReader, prop PLYProperty) ([]int, error) {
	count, err := values.readValue(prop.ListType)
	if err != nil {
		return nil, err
	}
	if count < 0 || count != math.Trunc(count) {
		return nil, fmt.Errorf("invalid list length %g", count)
	}

	n := int(count)
	list := make([]int, 0, min(n, maxPLYListPrealloc))
	for i := 0; i < n; i++ {
		value, err := values.readValue(prop.DataType)
		if err != nil {
			return nil, fmt.Errorf("list value %d of %d: %w", i, n, err)
		}
		list = append(list, int(value))
	}
	return list, nil
}

// plyBinaryReader decodes fixed-size binary values
type plyBinaryReader struct {
	reader *bufio.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *plyBinaryReader) readValue(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}

	data := b.buf[:size]
	if _, err := io.ReadFull(b.reader, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(data))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(data)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(data))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(data)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(data))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(data)), nil
	case "char", "int8":
		return float64(int8(data[0])), nil
	default:
		return float64(data[0]), nil
	}
}

// plyASCIIReader parses whitespace separated values
type plyASCIIReader struct {
	scanner *bufio.Scanner
}

func (a *plyASCIIReader) readValue(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}

	token := a.scanner.Text()
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, token)
	}
	return value, nil
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}
