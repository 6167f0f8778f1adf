package docblock

import "strings"

const (
	tagParam  = "@param"
	tagReturn = "@return"
	tagDesc   = "@desc"
)

// entry is one bullet in a parameter section: the tagged line plus any
// continuation lines that followed it.
type entry struct {
	head string
	cont []string
}

type sections struct {
	description []string
	input       []entry
	output      []entry
	other       []string
}

// classify buckets raw comment lines in a single forward pass. A tag line
// opens a new entry and becomes the current tag; untagged lines continue the
// current entry (param/return), add a fresh description line (desc), or fall
// through to the other bucket. Unknown @-lines land in the other bucket
// verbatim and reset the tag.
func classify(lines []string) sections {
	var s sections
	last := ""
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, tagParam):
			pos := strings.Index(lower, tagParam) + len(tagParam)
			s.input = append(s.input, entry{head: line[pos:]})
			last = tagParam
		case strings.Contains(lower, tagReturn):
			pos := strings.Index(lower, tagReturn) + len(tagReturn)
			s.output = append(s.output, entry{head: line[pos:]})
			last = tagReturn
		case strings.Contains(lower, tagDesc):
			pos := strings.Index(lower, tagDesc) + len(tagDesc)
			s.description = append(s.description, line[pos:])
			last = tagDesc
		case strings.Contains(line, "@"):
			s.other = append(s.other, line)
			last = ""
		default:
			switch last {
			case tagParam:
				s.input[len(s.input)-1].cont = append(s.input[len(s.input)-1].cont, line)
			case tagReturn:
				s.output[len(s.output)-1].cont = append(s.output[len(s.output)-1].cont, line)
			case tagDesc:
				s.description = append(s.description, line)
			default:
				s.other = append(s.other, line)
				last = ""
			}
		}
	}
	return s
}

func heading(noun string, n int) string {
	if n == 1 {
		return noun + " parameter:"
	}
	return noun + " parameters:"
}

// Format renders the comment block as popup HTML. Section order is fixed and
// empty sections are omitted entirely. Content is carried over verbatim; the
// extracted text comes from the same source tree the user is browsing, so no
// escaping is applied.
func Format(lines []string) string {
	s := classify(lines)
	var b strings.Builder
	if len(s.description) > 0 {
		b.WriteString("<p>Description</p><ul>")
		for _, line := range s.description {
			b.WriteString("<li>" + line + "</li>")
		}
		b.WriteString("</ul>")
	}
	writeEntryList := func(title string, entries []entry) {
		if len(entries) == 0 {
			return
		}
		b.WriteString("<p>" + heading(title, len(entries)) + "</p><ul>")
		for _, e := range entries {
			b.WriteString("<li>" + e.head)
			for _, cont := range e.cont {
				b.WriteString("<p style='margin-left: 10px;'>" + cont + "</p>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	writeEntryList("Input", s.input)
	writeEntryList("Output", s.output)
	for _, line := range s.other {
		b.WriteString("<p>" + line + "</p>")
	}
	return b.String()
}

// Markdown renders the same sections for surfaces that take Markdown instead
// of HTML, such as LSP hover contents.
func Markdown(lines []string) string {
	s := classify(lines)
	var parts []string
	if len(s.description) > 0 {
		block := "**Description**"
		for _, line := range s.description {
			block += "\n- " + strings.TrimSpace(line)
		}
		parts = append(parts, block)
	}
	entryBlock := func(title string, entries []entry) {
		if len(entries) == 0 {
			return
		}
		block := "**" + heading(title, len(entries)) + "**"
		for _, e := range entries {
			block += "\n- " + strings.TrimSpace(e.head)
			for _, cont := range e.cont {
				block += "\n  " + strings.TrimSpace(cont)
			}
		}
		parts = append(parts, block)
	}
	entryBlock("Input", s.input)
	entryBlock("Output", s.output)
	for _, line := range s.other {
		parts = append(parts, strings.TrimSpace(line))
	}
	return strings.Join(parts, "\n\n")
}
