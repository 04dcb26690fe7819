// Package seed loads a preloaded application state from a YAML fixture.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/todolists/internal/builders"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

type fixture struct {
	CurrentList string        `yaml:"current_list"`
	Lists       []listFixture `yaml:"lists"`
	Tasks       []taskFixture `yaml:"tasks"`
}

type listFixture struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Removable *bool  `yaml:"removable"`
}

type taskFixture struct {
	ID        string    `yaml:"id"`
	List      string    `yaml:"list"`
	Text      string    `yaml:"text"`
	Completed bool      `yaml:"completed"`
	Touched   time.Time `yaml:"touched"`
}

// LoadState decodes a fixture. Lists and tasks are referenced by id or by
// name; missing ids are generated and lists are removable unless stated.
func LoadState(r io.Reader) (domain.ApplicationState, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return domain.ApplicationState{}, fmt.Errorf("failed to decode seed fixture: %w", err)
	}

	state := domain.ApplicationState{
		Lists: []domain.List{},
		Tasks: []domain.Task{},
	}
	for i, lf := range f.Lists {
		opts := []builders.ListOption{builders.ListName(lf.Name)}
		if lf.ID != "" {
			id, err := uuid.Parse(lf.ID)
			if err != nil {
				return domain.ApplicationState{}, fmt.Errorf("lists[%d]: invalid id %q: %w", i, lf.ID, err)
			}
			opts = append(opts, builders.ListID(id))
		}
		if lf.Removable != nil {
			opts = append(opts, builders.ListRemovable(*lf.Removable))
		}
		state.Lists = append(state.Lists, builders.BuildList(opts...))
	}

	for i, tf := range f.Tasks {
		list, ok := findList(state.Lists, tf.List)
		if !ok {
			return domain.ApplicationState{}, fmt.Errorf("tasks[%d]: unknown list %q", i, tf.List)
		}
		opts := []builders.TaskOption{
			builders.TaskListID(list.ID),
			builders.TaskText(tf.Text),
			builders.TaskCompleted(tf.Completed),
		}
		if tf.ID != "" {
			id, err := uuid.Parse(tf.ID)
			if err != nil {
				return domain.ApplicationState{}, fmt.Errorf("tasks[%d]: invalid id %q: %w", i, tf.ID, err)
			}
			opts = append(opts, builders.TaskID(id))
		}
		if !tf.Touched.IsZero() {
			opts = append(opts, builders.TaskTouched(tf.Touched))
		}
		state.Tasks = append(state.Tasks, builders.BuildTask(opts...))
	}

	if f.CurrentList != "" {
		list, ok := findList(state.Lists, f.CurrentList)
		if !ok {
			return domain.ApplicationState{}, fmt.Errorf("unknown current list %q", f.CurrentList)
		}
		state.CurrentListID = list.ID
	}

	return state, state.Validate()
}

// findList matches ref against list ids first, then names.
func findList(lists []domain.List, ref string) (domain.List, bool) {
	if id, err := uuid.Parse(ref); err == nil {
		for _, l := range lists {
			if l.ID == id {
				return l, true
			}
		}
	}
	for _, l := range lists {
		if l.Name == ref {
			return l, true
		}
	}
	return domain.List{}, false
}

// InitSeed seeds the in-memory store from the fixture at File. "-" disables it.
type InitSeed struct {
	File   string           `config:"SEED_FILE" default:"-"`
	Store  *memory.Store    `resolve:""`
	Logger *charmLog.Logger `resolve:""`
}

// Initialize loads the fixture and seeds the store.
func (is InitSeed) Initialize(ctx context.Context) (context.Context, error) {
	if is.File == "" || is.File == "-" {
		return ctx, nil
	}

	file, err := os.Open(is.File)
	if err != nil {
		return ctx, fmt.Errorf("failed to open seed fixture: %w", err)
	}
	defer file.Close() //nolint:errcheck

	state, err := LoadState(file)
	if err != nil {
		return ctx, err
	}

	is.Store.Seed(state)
	is.Logger.Info("seed fixture loaded", "file", is.File, "lists", len(state.Lists), "tasks", len(state.Tasks))
	return ctx, nil
}
