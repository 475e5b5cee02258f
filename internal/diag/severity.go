package diag

// Severity ranks a diagnostic. The wrap rule emits warnings; the lexer and
// parser emit errors.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the lowercase name used verbatim on both the pretty and
// JSON output surfaces.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
