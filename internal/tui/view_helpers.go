package tui

import (
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// breadcrumbs renders a folder chain as "/ src / lib".
func breadcrumbs(path []models.Folder) string {
	var b strings.Builder
	b.WriteString("/")
	for _, f := range path {
		b.WriteString(" ")
		b.WriteString(f.Name)
		b.WriteString(" /")
	}
	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// highlight renders the runes of name at the given offsets with matchStyle.
func highlight(name string, indexes []int) string {
	if len(indexes) == 0 {
		return name
	}
	marked := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		marked[i] = struct{}{}
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if _, ok := marked[i]; ok {
			b.WriteString(matchStyle.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
