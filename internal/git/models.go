package git

// CommitRecord is one commit parsed from `git log` output.
type CommitRecord struct {
	Hash        string
	ShortHash   string
	Author      string
	AuthorEmail string
	Date        string // author date, YYYY-MM-DD
	Refs        string // decoration (%D), empty for undecorated commits
	Subject     string
	Files       []FileStat
}

// FileStat is one --numstat entry of a commit.
type FileStat struct {
	Path    string
	OldPath string // for renames
	Added   int
	Deleted int
	Binary  bool // git reports "-" counts for binary files
}

// ChangeKind classifies a file stat.
type ChangeKind int

const (
	ChangeKindModified ChangeKind = iota
	ChangeKindRenamed
	ChangeKindBinary
)

// Kind returns the change kind of the stat.
func (f FileStat) Kind() ChangeKind {
	switch {
	case f.Binary:
		return ChangeKindBinary
	case f.OldPath != "":
		return ChangeKindRenamed
	default:
		return ChangeKindModified
	}
}

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindModified:
		return "modified"
	case ChangeKindRenamed:
		return "renamed"
	case ChangeKindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// HasStats reports whether git emitted numstat entries for the commit.
// Merge commits never carry any.
func (c CommitRecord) HasStats() bool {
	return len(c.Files) > 0
}
