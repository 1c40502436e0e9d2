// Package config resolves the layered effective configuration for a run:
// built-in defaults, overridden by the config file, overridden by environment
// variables, overridden by explicit CLI flags. Resolution happens once,
// before the pipeline starts; the result is treated as immutable.
package config

// Config is the resolved effective configuration.
type Config struct {
	Output   OutputConfig   `koanf:"output"`
	Document DocumentConfig `koanf:"document"`
	Ignore   IgnoreConfig   `koanf:"ignore"`
	Limits   LimitsConfig   `koanf:"limits"`
}

// OutputConfig controls where and how the artifact is written.
type OutputConfig struct {
	Folder       string `koanf:"folder"`
	Filename     string `koanf:"filename"` // empty: derived from title and format
	Format       string `koanf:"format"`   // pdf, epub, html or markdown
	CreateFolder bool   `koanf:"create_folder"`
}

// DocumentConfig controls document content and metadata.
type DocumentConfig struct {
	Title    string `koanf:"title"` // empty: base name of the scanned root
	Author   string `koanf:"author"`
	TOC      bool   `koanf:"toc"`
	FileTree bool   `koanf:"file_tree"`
	Theme    string `koanf:"theme"`
}

// IgnoreConfig carries the caller-supplied exclusion rules. Builtin rules are
// always active on top of these.
type IgnoreConfig struct {
	Files       []string `koanf:"files"`
	Extensions  []string `koanf:"extensions"`
	Directories []string `koanf:"directories"`
	Gitignore   bool     `koanf:"gitignore"`
}

// LimitsConfig bounds memory-relevant behavior.
type LimitsConfig struct {
	ChunkSize     int `koanf:"chunk_size"`       // default batch size handed to the planner
	MaxFileSizeMB int `koanf:"max_file_size_mb"` // content above this is previewed and sampled
	SoftMemoryMB  int `koanf:"soft_memory_mb"`   // 0 disables the memory advisory
}

// Default returns the built-in configuration every other layer overrides.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Folder:       "output",
			Format:       "pdf",
			CreateFolder: true,
		},
		Document: DocumentConfig{
			TOC:      true,
			FileTree: true,
			Theme:    "kate",
		},
		Ignore: IgnoreConfig{
			Gitignore: true,
		},
		Limits: LimitsConfig{
			ChunkSize:     10,
			MaxFileSizeMB: 50,
			SoftMemoryMB:  1024,
		},
	}
}
