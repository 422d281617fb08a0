package voxfile

// File is the parsed contents of one .vox archive: the manifest plus
// the raw bytes of any bundled assets. It is the return type of the
// reader and the input type of the writer, and is treated as read-only
// by both; a change produces a new value.
//
// ReferenceAudio keys are basenames (the reader collapses nested paths,
// the writer places each entry at reference/<basename>). ExtensionFiles
// keys are full archive-relative paths such as
// "embeddings/qwen3-tts/voice.safetensors", preserved verbatim so
// provider namespaces stay distinguishable. Either map is nil when the
// archive carries no such entries.
type File struct {
	Manifest       *Manifest
	ReferenceAudio map[string][]byte
	ExtensionFiles map[string][]byte
}
