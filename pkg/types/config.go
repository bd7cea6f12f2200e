package types

// Config holds the parameters needed to open a Store.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// SeedCategories controls whether the standard category catalog is
	// created when the category table is empty. On by default from the
	// CLI; tests that need an empty catalog turn it off.
	SeedCategories bool `json:"seed_categories" yaml:"seed_categories"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
