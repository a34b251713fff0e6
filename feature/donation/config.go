package donation

import "path/filepath"

// ArchiveName is the fixed name of the local donation archive inside the
// configured data directory.
const ArchiveName = "data.zip"

// Config holds configuration for the donation pipeline.
type Config struct {
	// DataDir is the directory holding the local donation archive.
	DataDir string `mapstructure:"data_dir" default:"."`
	// ReplacementFile is the path to the participant replacement table (CSV).
	// Empty disables reconciliation.
	ReplacementFile string `mapstructure:"replacement_file" default:""`
}

// ArchivePath returns the full path of the donation archive.
func (c Config) ArchivePath() string {
	return filepath.Join(c.DataDir, ArchiveName)
}
