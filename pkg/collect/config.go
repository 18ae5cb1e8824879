package collect

// DefaultOutput is the artifact written when no --output override is given,
// created in the current working directory and truncated on every run.
const DefaultOutput = "collected_code.txt"

// Arguments holds the configuration options for a collection run.
type Arguments struct {
	Roots        []string // Directories to collect from, processed in the order supplied.
	Output       string   // Destination path for the combined output artifact; empty means DefaultOutput.
	Tree         string   // Optional destination path for a directory tree rendering; empty disables it.
	AllFiles     bool     // If true, include every regular file instead of only .py files.
	ExcludeNames []string // Additional directory basenames to prune, unioned with the defaults.
	Verbose      bool     // Enables detailed logging of skipped entries.
}

// FileEntry is a discovered file paired with the header it will carry in the
// output artifact.
type FileEntry struct {
	Path   string // Absolute path on disk.
	Header string // Root-relative path with forward slashes, prefixed by the root's basename.
}

// Summary reports the outcome of a collection run.
type Summary struct {
	Collected int    // Files whose content made it into the artifact.
	Failed    int    // Files represented by an error placeholder instead.
	Output    string // Absolute path of the artifact.
}
