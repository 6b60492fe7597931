package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/ports"
)

func TestFormatTable_AlignsColumns(t *testing.T) {
	t.Parallel()

	got := formatTable(
		[]string{"ID", "TEXT"},
		[][]string{{"1", "short"}, {"1234", "longer text"}},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "1     short", lines[1])
		assert.Equal(t, "1234  longer text", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "héll…", truncate("héllo wörld", 5))
}

func TestPriorityLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Low", priorityLabel(todo.PriorityLow))
	assert.Equal(t, "Medium", priorityLabel(todo.PriorityMedium))
	assert.Equal(t, "High", priorityLabel(todo.PriorityHigh))
}

func TestFormatFooter(t *testing.T) {
	t.Parallel()

	sort, err := todo.ParseSort("priority_asc-duedate_dsc")
	if err != nil {
		t.Fatal(err)
	}
	high := todo.PriorityFilter(todo.PriorityHigh)

	s := ports.ViewState{
		Filter:     todo.DefaultFilter().Apply(todo.FilterPatch{Priority: &high}),
		Sort:       sort,
		Pagination: todo.Pagination{PageSize: 10, CurrentPage: 1, TotalItems: 25},
	}

	assert.Equal(t, "page 2 of 3 · 25 todos · sort priority_asc-duedate_dsc · priority=HIGH", formatFooter(s))
}

func TestFormatFooter_EmptyView(t *testing.T) {
	t.Parallel()

	s := ports.ViewState{Filter: todo.DefaultFilter(), Pagination: todo.NewPagination(10)}
	assert.Equal(t, "page 1 of 1 · 0 todos", formatFooter(s))
}

func TestRenderView_ShowsErrorAndEmptyMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderView(&buf, ports.ViewState{
		Error:      "Failed to fetch todos",
		Filter:     todo.DefaultFilter(),
		Pagination: todo.NewPagination(10),
	}, testNow)

	out := buf.String()
	assert.Contains(t, out, "Failed to fetch todos")
	assert.Contains(t, out, "No todos found.")
}

func TestRenderNotification(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderNotification(&buf, ports.Notification{
		Level:       ports.NotificationSuccess,
		Title:       "Task created",
		Description: "Your task has been successfully created.",
	})

	assert.Equal(t, "✓ Task created Your task has been successfully created.\n", buf.String())
}
