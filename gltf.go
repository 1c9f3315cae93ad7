package litho

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/qmuntal/gltf"
)

const glbPaddingUnit = 4

// GLBExporter writes binary glTF 2.0 for web viewers. The whole scene
// is one indexed primitive with a white double-sided material, close
// to how an unpainted print looks.
type GLBExporter struct{}

func NewGLBExporter() *GLBExporter { return &GLBExporter{} }

func (e *GLBExporter) Name() string { return "glTF (binary)" }

func (e *GLBExporter) Extension() string { return "glb" }

func (e *GLBExporter) FileFilter() string { return "Binary glTF (*.glb)" }

func (e *GLBExporter) ExportMesh(mesh *Mesh, path string) (*ExportResult, error) {
	if err := validateMesh(mesh); err != nil {
		return nil, err
	}
	data, err := encodeGLB(buildDocument(mesh), glbPaddingUnit)
	if err != nil {
		return nil, err
	}
	n, err := writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{BytesWritten: n}, nil
}

func buildDocument(mesh *Mesh) *gltf.Document {
	doc := &gltf.Document{}
	doc.Asset.Version = GLTF_VERSION
	sceneIndex := uint32(0)
	doc.Scene = &sceneIndex
	doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	buffer := doc.Buffers[0]

	unique, indices := dedupVertices(mesh, 0)
	faces := make([]uint32, len(indices))
	for i, idx := range indices {
		faces[i] = uint32(idx)
	}

	var buf bytes.Buffer
	indexView := &gltf.BufferView{}
	indexView.ByteOffset = buffer.ByteLength
	binary.Write(&buf, binary.LittleEndian, faces)
	indexView.ByteLength = uint32(buf.Len())
	indexView.Buffer = 0
	doc.BufferViews = append(doc.BufferViews, indexView)

	posView := &gltf.BufferView{}
	posView.ByteOffset = buffer.ByteLength + uint32(buf.Len())
	binary.Write(&buf, binary.LittleEndian, unique)
	posView.ByteLength = buffer.ByteLength + uint32(buf.Len()) - posView.ByteOffset
	posView.Buffer = 0
	doc.BufferViews = append(doc.BufferViews, posView)

	buffer.ByteLength += uint32(buf.Len())
	buffer.Data = append(buffer.Data, buf.Bytes()...)

	indexAcc := &gltf.Accessor{}
	indexAcc.ComponentType = gltf.ComponentUint
	indexAcc.Count = uint32(len(faces))
	indexViewIdx := uint32(0)
	indexAcc.BufferView = &indexViewIdx
	doc.Accessors = append(doc.Accessors, indexAcc)

	posAcc := &gltf.Accessor{}
	posAcc.ComponentType = gltf.ComponentFloat
	posAcc.Type = gltf.AccessorVec3
	posAcc.Count = uint32(len(unique))
	posViewIdx := uint32(1)
	posAcc.BufferView = &posViewIdx
	min, max := mesh.Bounds()
	posAcc.Min = []float32{min[0], min[1], min[2]}
	posAcc.Max = []float32{max[0], max[1], max[2]}
	doc.Accessors = append(doc.Accessors, posAcc)

	metallic := float32(0)
	roughness := float32(1)
	material := &gltf.Material{DoubleSided: true}
	material.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  &metallic,
		RoughnessFactor: &roughness,
	}
	doc.Materials = append(doc.Materials, material)

	indexAccIdx := uint32(0)
	materialIdx := uint32(0)
	prim := &gltf.Primitive{
		Indices:    &indexAccIdx,
		Material:   &materialIdx,
		Mode:       gltf.PrimitiveTriangles,
		Attributes: gltf.Attribute{"POSITION": 1},
	}
	meshIdx := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{prim}})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: &meshIdx})
	return doc
}

func encodeGLB(doc *gltf.Document, paddingUnit int) ([]byte, error) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if padding := calcPadding(buf.Len(), paddingUnit); padding > 0 {
		pad := make([]byte, padding)
		for i := range pad {
			pad[i] = 0x20
		}
		buf.Write(pad)
	}
	return buf.Bytes(), nil
}

func calcPadding(offset, paddingUnit int) int {
	padding := offset % paddingUnit
	if padding != 0 {
		padding = paddingUnit - padding
	}
	return padding
}
