// internal/wizard/remarks.go
package wizard

import "strings"

// Return remarks travel as a single text blob with two optional sections,
// a bulleted checklist under "ACTION REQUIRED:" and free text under
// "NOTES:". The staff dashboard composes the format and the student wizard
// parses it back for display. Splitting is best effort; a blob with neither
// marker is treated as plain notes.

const (
	actionMarker = "ACTION REQUIRED:"
	notesMarker  = "NOTES:"
)

// ReturnRemarks is the parsed view of a returned application's remarks.
type ReturnRemarks struct {
	Checklist []string
	Note      string
}

// ComposeReturnRemarks renders checklist items and a free-text note into
// the remarks blob. Empty inputs produce an empty string.
func ComposeReturnRemarks(checklist []string, note string) string {
	var b strings.Builder
	if len(checklist) > 0 {
		b.WriteString(actionMarker + "\n")
		for _, item := range checklist {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}
	if note != "" {
		b.WriteString(notesMarker + "\n" + note)
	}
	return b.String()
}

// ParseReturnRemarks splits a remarks blob back into checklist and note.
// Either section may be absent; text without the action marker is all note.
func ParseReturnRemarks(remarks string) ReturnRemarks {
	if remarks == "" {
		return ReturnRemarks{}
	}
	if !strings.Contains(remarks, actionMarker) {
		note := strings.TrimSpace(remarks)
		note = strings.TrimSpace(strings.TrimPrefix(note, notesMarker))
		return ReturnRemarks{Note: note}
	}

	parts := strings.SplitN(remarks, notesMarker, 2)
	actionText := strings.TrimSpace(strings.Replace(parts[0], actionMarker, "", 1))

	var out ReturnRemarks
	for _, line := range strings.Split(actionText, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") {
			out.Checklist = append(out.Checklist, strings.TrimSpace(strings.TrimPrefix(line, "-")))
		}
	}
	if len(parts) > 1 {
		out.Note = strings.TrimSpace(parts[1])
	}
	return out
}
