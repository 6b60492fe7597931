package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jsamuelsen11/todo-view/internal/domain/todo"
	"github.com/jsamuelsen11/todo-view/internal/platform/datefmt"
)

var errNothingToChange = errors.New("nothing to change: pass --text, --priority or --due")

// run executes one gesture and then prints the notifications it raised,
// oldest first, whether or not it failed.
func (c *cli) run(ctx context.Context, action func(context.Context) error) error {
	err := action(ctx)
	notes := c.sess.feed.Recent(0)
	for i := len(notes) - 1; i >= 0; i-- {
		renderNotification(c.out, notes[i])
	}
	return err
}

func (c *cli) printView() {
	renderView(c.out, c.sess.view.Snapshot(), c.sess.now())
}

func (c *cli) newListCmd() *cobra.Command {
	var (
		text     string
		priority string
		status   string
		sortBy   string
		page     int
		size     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos with filters, sort and pagination",
		Example: `  todoctl list --priority high --status undone
  todoctl list --sort priority_asc-duedate_dsc --page 2 --size 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			patch, err := filterPatch(flags, text, priority, status)
			if err != nil {
				return err
			}

			return c.run(cmd.Context(), func(ctx context.Context) error {
				view := c.sess.view
				refreshed := false

				if patch != nil {
					if err := view.SetFilters(ctx, *patch); err != nil {
						return err
					}
					refreshed = true
				}
				if flags.Changed("sort") {
					if err := view.SetSort(ctx, sortBy); err != nil {
						return err
					}
					refreshed = true
				}
				if flags.Changed("size") {
					if err := view.SetPageSize(ctx, size); err != nil {
						return err
					}
					refreshed = true
				}
				// The page is clamped against the total from a completed
				// fetch, so one must have happened first.
				if !refreshed {
					if err := view.RefreshTodos(ctx); err != nil {
						return err
					}
				}
				if flags.Changed("page") {
					if err := view.SetPage(ctx, page-1); err != nil {
						return err
					}
				}

				c.printView()
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&text, "text", "", "only todos whose text contains this")
	f.StringVar(&priority, "priority", "", "LOW, MEDIUM, HIGH or ALL")
	f.StringVar(&status, "status", "", "DONE, UNDONE or ALL")
	f.StringVar(&sortBy, "sort", "", "composite sort, e.g. priority_asc-duedate_dsc")
	f.IntVar(&page, "page", 1, "page to show, starting at 1")
	f.IntVar(&size, "size", todo.DefaultPageSize, "todos per page")

	return cmd
}

// filterPatch builds a filter patch from the flags that were set, or nil
// when none were.
func filterPatch(flags *pflag.FlagSet, text, priority, status string) (*todo.FilterPatch, error) {
	var patch todo.FilterPatch
	changed := false

	if flags.Changed("text") {
		patch.Text = &text
		changed = true
	}
	if flags.Changed("priority") {
		p, err := todo.ParsePriorityFilter(priority)
		if err != nil {
			return nil, fmt.Errorf("--priority: %w", err)
		}
		patch.Priority = &p
		changed = true
	}
	if flags.Changed("status") {
		s, err := todo.ParseStatusFilter(status)
		if err != nil {
			return nil, fmt.Errorf("--status: %w", err)
		}
		patch.Status = &s
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &patch, nil
}

func (c *cli) newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show average completion times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context) error {
				if err := c.sess.view.RefreshMetrics(ctx); err != nil {
					return err
				}
				renderMetrics(c.out, c.sess.view.Snapshot().Metrics)
				return nil
			})
		},
	}
}

func (c *cli) newStatusCmd(use, short string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), func(ctx context.Context) error {
				if err := c.sess.view.ToggleTodoStatus(ctx, id, done); err != nil {
					return err
				}
				c.printView()
				return nil
			})
		},
	}
}

func (c *cli) newAddCmd() *cobra.Command {
	var (
		priority string
		due      string
	)

	cmd := &cobra.Command{
		Use:     "add <text>...",
		Short:   "Create a todo",
		Example: `  todoctl add Buy groceries --priority high --due 2024-03-25`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := todo.ParsePriority(priority)
			if err != nil {
				return fmt.Errorf("--priority: %w", err)
			}
			dueDate, err := parseDue(cmd.Flags(), due)
			if err != nil {
				return err
			}
			draft := &todo.Draft{Text: strings.Join(args, " "), Priority: p, DueDate: dueDate}

			return c.run(cmd.Context(), func(ctx context.Context) error {
				if _, err := c.sess.view.CreateTodo(ctx, draft); err != nil {
					return err
				}
				c.printView()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&priority, "priority", string(todo.PriorityMedium), "LOW, MEDIUM or HIGH")
	cmd.Flags().StringVar(&due, "due", "", "due date, e.g. 2024-03-25 or 2024-03-25T18:00:00")

	return cmd
}

func (c *cli) newEditCmd() *cobra.Command {
	var (
		text     string
		priority string
		due      string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the text, priority or due date of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			patch := &todo.Patch{}
			if flags.Changed("text") {
				patch.Text = &text
			}
			if flags.Changed("priority") {
				p, err := todo.ParsePriority(priority)
				if err != nil {
					return fmt.Errorf("--priority: %w", err)
				}
				patch.Priority = &p
			}
			if patch.DueDate, err = parseDue(flags, due); err != nil {
				return err
			}
			if patch.IsEmpty() {
				return errNothingToChange
			}

			return c.run(cmd.Context(), func(ctx context.Context) error {
				if _, err := c.sess.view.UpdateTodo(ctx, id, patch); err != nil {
					return err
				}
				c.printView()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "new text")
	cmd.Flags().StringVar(&priority, "priority", "", "LOW, MEDIUM or HIGH")
	cmd.Flags().StringVar(&due, "due", "", "new due date")

	return cmd
}

func (c *cli) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a todo",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), func(ctx context.Context) error {
				if err := c.sess.view.DeleteTodo(ctx, id); err != nil {
					return err
				}
				c.printView()
				return nil
			})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", raw)
	}
	return id, nil
}

// parseDue reads --due when it was set. Date-only values are accepted.
func parseDue(flags *pflag.FlagSet, raw string) (*time.Time, error) {
	if !flags.Changed("due") || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := datefmt.ParseTimestamp(raw)
	if err != nil {
		return nil, fmt.Errorf("--due: %w", err)
	}
	return &t, nil
}
