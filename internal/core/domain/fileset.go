package domain

// FileSet is an ordered mapping from internal archive path to byte content.
// Iteration order is insertion order, which the RECORD manifest and the
// archive writer both depend on.
type FileSet struct {
	paths   []string
	content map[string][]byte
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{content: make(map[string][]byte)}
}

// Set stores content under the given path. Setting an existing path replaces
// its content but keeps its original position, which is what the two-pass
// RECORD construction relies on.
func (fs *FileSet) Set(path string, content []byte) {
	if _, ok := fs.content[path]; !ok {
		fs.paths = append(fs.paths, path)
	}
	fs.content[path] = content
}

// Get returns the content stored under path.
func (fs *FileSet) Get(path string) ([]byte, bool) {
	c, ok := fs.content[path]
	return c, ok
}

// Paths returns the archive paths in insertion order.
func (fs *FileSet) Paths() []string {
	out := make([]string, len(fs.paths))
	copy(out, fs.paths)
	return out
}

// Len returns the number of entries.
func (fs *FileSet) Len() int {
	return len(fs.paths)
}
