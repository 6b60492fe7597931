package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/datefmt"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

const textColumnMaxWidth = 48

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	doneStyle    = mutedStyle.Strikethrough(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	figureStyle  = lipgloss.NewStyle().Bold(true)

	priorityStyles = map[todo.Priority]lipgloss.Style{
		todo.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		todo.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		todo.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}

	urgencyStyles = map[datefmt.Urgency]lipgloss.Style{
		datefmt.UrgencyUrgent:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		datefmt.UrgencyModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		datefmt.UrgencyNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// renderView writes the todo table followed by a pagination footer. The
// visible error, if any, comes first.
func renderView(w io.Writer, s ports.ViewState, now time.Time) {
	if s.Error != "" {
		fmt.Fprintln(w, errorStyle.Render(s.Error))
	}

	if len(s.Todos) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No todos found."))
	} else {
		fmt.Fprint(w, formatTodoTable(s.Todos, now))
	}

	fmt.Fprintln(w, mutedStyle.Render(formatFooter(s)))
}

func formatTodoTable(todos []todo.Todo, now time.Time) string {
	headers := []string{"ID", "DONE", "PRIORITY", "TEXT", "DUE", "CREATED"}
	rows := make([][]string, 0, len(todos))

	for i := range todos {
		t := &todos[i]
		text := truncate(t.Text, textColumnMaxWidth)
		check := "[ ]"
		if t.Done {
			check = "[x]"
			text = doneStyle.Render(text)
		}
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			check,
			priorityStyles[t.Priority].Render(t.Priority.String()),
			text,
			formatDue(t, now),
			datefmt.FormatTime(&t.CreationDate),
		})
	}

	return formatTable(headers, rows)
}

// formatDue shows the due date with its relative distance, colored by
// urgency while the todo is still open.
func formatDue(t *todo.Todo, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	label := datefmt.FormatTime(t.DueDate) + " (" + datefmt.RelativeTime(*t.DueDate, now) + ")"
	if t.Done {
		return mutedStyle.Render(label)
	}
	return urgencyStyles[datefmt.UrgencyOf(*t.DueDate, now)].Render(label)
}

func formatFooter(s ports.ViewState) string {
	p := s.Pagination
	parts := []string{
		fmt.Sprintf("page %d of %d", p.CurrentPage+1, max(p.TotalPages(), 1)),
		fmt.Sprintf("%d todos", p.TotalItems),
	}
	if !s.Sort.IsZero() {
		parts = append(parts, "sort "+s.Sort.String())
	}
	if f := describeFilter(s.Filter); f != "" {
		parts = append(parts, f)
	}
	return strings.Join(parts, " · ")
}

func describeFilter(f todo.Filter) string {
	var parts []string
	if f.Text != "" {
		parts = append(parts, fmt.Sprintf("text=%q", f.Text))
	}
	if !f.Priority.IsAll() {
		parts = append(parts, "priority="+f.Priority.String())
	}
	if !f.Status.IsAll() {
		parts = append(parts, "status="+f.Status.String())
	}
	return strings.Join(parts, " ")
}

// renderMetrics writes the overall and per-priority average completion
// times side by side.
func renderMetrics(w io.Writer, m todo.Metrics) {
	overall := strings.Join([]string{
		headerStyle.Render("Average time to finish tasks:"),
		figureStyle.Render(datefmt.FormatMinutesToDuration(m.AverageTime)),
	}, "\n")

	lines := []string{headerStyle.Render("Average time to finish tasks by priority:")}
	for _, p := range todo.Priorities() {
		lines = append(lines, fmt.Sprintf("%-8s %s",
			priorityLabel(p)+":",
			datefmt.FormatMinutesToDuration(m.ByPriority[p]),
		))
	}

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(overall),
		" ",
		panelStyle.Render(strings.Join(lines, "\n")),
	))
}

func priorityLabel(p todo.Priority) string {
	s := p.String()
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

func renderNotification(w io.Writer, n ports.Notification) {
	var marker string
	switch n.Level {
	case ports.NotificationError:
		marker = errorStyle.Render("✗ " + n.Title)
	case ports.NotificationSuccess:
		marker = successStyle.Render("✓ " + n.Title)
	default:
		marker = infoStyle.Render("• " + n.Title)
	}
	if n.Description == "" {
		fmt.Fprintln(w, marker)
		return
	}
	fmt.Fprintln(w, marker+" "+n.Description)
}

// formatTable lays cells out in padded columns. Widths are measured without
// ANSI styling.
func formatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i, cell := range row {
			b.WriteString(style(cell))
			if i == len(row)-1 {
				b.WriteByte('\n')
				continue
			}
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
		}
	}

	writeRow(headers, func(s string) string { return headerStyle.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes-1]) + "…"
}
