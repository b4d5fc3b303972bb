package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadBOM marks content that starts with a UTF-8 byte order mark. The mark is kept.
	FileHadBOM
	// FileHasCRLF marks content with at least one CRLF line ending. Line endings are kept.
	FileHasCRLF
	// FileDecoded1252 marks content that was transcoded from Windows-1252 before Add.
	FileDecoded1252
)

// File captures metadata and content for a single source file.
// Content is exactly what the lexer sees; it is never rewritten.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
