package diag

// Severity: порядок значим, Info < Warning < Error.
// Info несут заметки драйвера (перекодировка, тайминги), Warning: ошибки
// ресурсов форм, Error: всё, что ломает синтаксис.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// SarifLevel maps the severity to a SARIF result level.
func (s Severity) SarifLevel() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	}
	return "note"
}
