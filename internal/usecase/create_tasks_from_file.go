package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// CreateTasksFromFileInput contains the parameters for bulk creation.
type CreateTasksFromFileInput struct {
	Content string // Markdown with YAML frontmatter blocks
	DryRun  bool   // Parse and report without creating
}

// CreateTasksFromFileOutput contains the parsed (and, unless DryRun,
// created) tasks in file order.
type CreateTasksFromFileOutput struct {
	Tasks []*domain.Task
}

// CreateTasksFromFile creates several tasks from one Markdown file.
// Each task is a YAML frontmatter block followed by its description:
//
//	---
//	title: Fix authentication bug
//	priority: critical
//	deadline: 2026-09-01
//	assign: <user id>
//	---
//	Users unable to reset passwords.
type CreateTasksFromFile struct {
	gateway domain.Gateway
}

// NewCreateTasksFromFile creates a new CreateTasksFromFile use case.
func NewCreateTasksFromFile(gateway domain.Gateway) *CreateTasksFromFile {
	return &CreateTasksFromFile{gateway: gateway}
}

// frontmatter is the YAML block shape.
type frontmatter struct {
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
	Deadline string `yaml:"deadline"`
	Assign   string `yaml:"assign"`
}

// Execute parses all blocks first, then creates them in order. A parse
// error anywhere creates nothing.
func (uc *CreateTasksFromFile) Execute(ctx context.Context, in CreateTasksFromFileInput) (*CreateTasksFromFileOutput, error) {
	specs, err := parseTaskBlocks(in.Content)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no task blocks found")
	}

	if in.DryRun {
		preview := make([]*domain.Task, len(specs))
		for i, spec := range specs {
			preview[i] = &domain.Task{
				Title:       spec.Title,
				Description: spec.Description,
				Priority:    spec.Priority,
				Deadline:    spec.Deadline,
				AssignedTo:  spec.AssignedTo,
			}
		}
		return &CreateTasksFromFileOutput{Tasks: preview}, nil
	}

	created := make([]*domain.Task, 0, len(specs))
	for i, spec := range specs {
		task, err := uc.gateway.CreateTask(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("create task %d (%q): %w", i+1, spec.Title, err)
		}
		created = append(created, task)
	}
	return &CreateTasksFromFileOutput{Tasks: created}, nil
}

// parseTaskBlocks splits the file into frontmatter+body blocks.
func parseTaskBlocks(content string) ([]domain.TaskCreate, error) {
	var specs []domain.TaskCreate

	lines := strings.Split(content, "\n")
	i := 0
	for i < len(lines) {
		// Skip text between blocks.
		if strings.TrimSpace(lines[i]) != "---" {
			i++
			continue
		}
		i++

		// Frontmatter until the closing delimiter.
		start := i
		for i < len(lines) && strings.TrimSpace(lines[i]) != "---" {
			i++
		}
		if i >= len(lines) {
			return nil, fmt.Errorf("task block %d: missing closing ---", len(specs)+1)
		}
		head := strings.Join(lines[start:i], "\n")
		i++

		// Body until the next block.
		start = i
		for i < len(lines) && strings.TrimSpace(lines[i]) != "---" {
			i++
		}
		body := strings.TrimSpace(strings.Join(lines[start:i], "\n"))

		spec, err := buildTaskSpec(head, body, len(specs)+1)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func buildTaskSpec(head, body string, n int) (domain.TaskCreate, error) {
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return domain.TaskCreate{}, fmt.Errorf("task block %d: parse frontmatter: %w", n, err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return domain.TaskCreate{}, fmt.Errorf("task block %d: %w", n, domain.ErrEmptyTitle)
	}

	priority := domain.Priority(fm.Priority)
	if fm.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return domain.TaskCreate{}, fmt.Errorf("task block %d (%q): %w", n, fm.Priority, domain.ErrInvalidPriority)
	}

	spec := domain.TaskCreate{
		Title:       strings.TrimSpace(fm.Title),
		Description: body,
		Priority:    priority,
		AssignedTo:  fm.Assign,
	}
	if fm.Deadline != "" {
		deadline, err := parseDeadline(fm.Deadline)
		if err != nil {
			return domain.TaskCreate{}, fmt.Errorf("task block %d: %w", n, err)
		}
		spec.Deadline = &deadline
	}
	return spec, nil
}

// parseDeadline accepts a date or a full timestamp. A bare date means
// end of that day, so "due 2026-09-01" is not overdue at breakfast.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q (want YYYY-MM-DD or RFC3339)", s)
}
