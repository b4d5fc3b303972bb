package diagfmt

// PathMode selects how file paths are printed.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // короткие и относительные как есть, длинные абсолютные по имени
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "auto"
}

// ParsePathMode is the inverse of String.
func ParsePathMode(s string) (PathMode, bool) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		if m.String() == s {
			return m, true
		}
	}
	return PathModeAuto, false
}

type PrettyOpts struct {
	Color       bool
	Context     int8 // строк контекста до и после
	PathMode    PathMode
	Width       uint8 // обрезка строк исходника, 0 без ограничения
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // обрезает вывод, bag не трогает
	IncludeNotes     bool
	IncludeFixes     bool
	IncludePreviews  bool
}

type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
