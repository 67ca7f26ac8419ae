package render

import (
	"html"
	"regexp"
	"strings"
)

// scanState tracks which multi-line construct is currently open.
type scanState int

const (
	stateNone scanState = iota
	stateList
	stateTable
)

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// tableSeparatorPattern matches markdown header/body separator rows such as
// |---|---| or | :--- | ---: |.
var tableSeparatorPattern = regexp.MustCompile(`^\|[\s\-:|]+\|$`)

// Render converts markdown text to HTML. It scans line by line: headings
// close any open construct, * lines accumulate into a list, |...| lines
// accumulate into a table whose first row is the header, and everything
// else becomes a paragraph (or a line break when empty).
func Render(markdown string) string {
	var b strings.Builder
	state := stateNone
	inHeader := false

	closeOpen := func() {
		switch state {
		case stateList:
			b.WriteString("</ul>")
		case stateTable:
			b.WriteString("</table>")
		}
		state = stateNone
	}

	for _, rawLine := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(strings.TrimSuffix(rawLine, "\r"))

		// Headings first; longest marker wins.
		if text, ok := headingText(trimmed, "####"); ok {
			closeOpen()
			b.WriteString("<h4>" + html.EscapeString(text) + "</h4>")
			continue
		}
		if text, ok := headingText(trimmed, "###"); ok {
			closeOpen()
			b.WriteString("<h3>" + html.EscapeString(text) + "</h3>")
			continue
		}
		if text, ok := headingText(trimmed, "##"); ok {
			closeOpen()
			b.WriteString("<h2>" + html.EscapeString(text) + "</h2>")
			continue
		}

		line := boldPattern.ReplaceAllString(html.EscapeString(trimmed), "<strong>$1</strong>")

		switch {
		case strings.HasPrefix(line, "*"):
			if state == stateTable {
				closeOpen()
			}
			if state != stateList {
				b.WriteString("<ul>")
				state = stateList
			}
			b.WriteString("<li>" + strings.TrimSpace(strings.TrimPrefix(line, "*")) + "</li>")

		case len(line) > 1 && strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|"):
			if state == stateList {
				closeOpen()
			}
			if state != stateTable {
				b.WriteString("<table>")
				state = stateTable
				inHeader = true
			}
			if tableSeparatorPattern.MatchString(trimmed) {
				// Separator rows produce no output; they flip the
				// table to body mode.
				inHeader = false
				continue
			}
			b.WriteString(tableRow(line, inHeader))
			inHeader = false

		case line == "":
			closeOpen()
			b.WriteString("<br>")

		default:
			closeOpen()
			b.WriteString("<p>" + line + "</p>")
		}
	}
	closeOpen()

	return b.String()
}

// headingText reports whether line is a heading with the given marker and
// returns its content with surrounding whitespace stripped.
func headingText(line, marker string) (string, bool) {
	after, ok := strings.CutPrefix(line, marker)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// tableRow splits a |cell|cell| line into one th/td per non-empty segment.
func tableRow(line string, header bool) string {
	tag := "td"
	if header {
		tag = "th"
	}

	var b strings.Builder
	b.WriteString("<tr>")
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		b.WriteString("<" + tag + ">" + cell + "</" + tag + ">")
	}
	b.WriteString("</tr>")
	return b.String()
}
