package entities

// BackupSuffix is appended to a document path to form its backup sibling.
const BackupSuffix = ".backup"

// ConfigDocument is one configuration file held in memory for the
// duration of a single patch operation.
type ConfigDocument struct {
	Path    string
	Content string

	// Satisfied records whether the document already declares the
	// capability being patched, as decided by Check.
	Satisfied bool
}

// NewConfigDocument wraps content loaded from path.
func NewConfigDocument(path string, content []byte) *ConfigDocument {
	return &ConfigDocument{
		Path:    path,
		Content: string(content),
	}
}

// Check evaluates the declaration predicate against the content and
// records the outcome.
func (d *ConfigDocument) Check(declares func(string) bool) bool {
	d.Satisfied = declares(d.Content)
	return d.Satisfied
}

// BackupPath returns the sibling backup path.
func (d *ConfigDocument) BackupPath() string {
	return BackupPathFor(d.Path)
}

// BackupPathFor returns the backup path for an arbitrary document path.
func BackupPathFor(path string) string {
	return path + BackupSuffix
}
