// Package scene decodes model assets into clonable scene-graph handles and
// provides the transform math used to place them.
//
// Assets are glTF 2.0 documents, binary (GLB) or JSON with embedded
// buffers, decoded with github.com/qmuntal/gltf. A decoded *Model is never
// modified; Clone returns a new instance that shares the decoded document,
// the way a renderer shares geometry between clones.
//
// Pose matrices are column-major 4x4, the layout WebXR hit-test poses use,
// and map directly onto mgl64.Mat4.
package scene
