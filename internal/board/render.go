package board

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/google/uuid"
)

// Title is the heading of the rendered page.
const Title = "Todo Lists"

var (
	//go:embed templates/board.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/board.gohtml"))
)

type formView struct {
	Value    string
	Feedback string
	Pending  bool
}

type listView struct {
	ID        uuid.UUID
	Name      string
	Removable bool
	Current   bool
	Pending   bool
}

type taskView struct {
	ID        uuid.UUID
	Text      string
	Completed bool
	Pending   bool
}

type pageView struct {
	Title       string
	Notice      string
	ListForm    formView
	Lists       []listView
	HasCurrent  bool
	CurrentName string
	TaskForm    formView
	Tasks       []taskView
}

// Render returns the page as HTML.
func (b *Board) Render() string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, b.view()); err != nil {
		b.logger.Printf("Board: render failed: %v", err)
		return ""
	}
	return buf.String()
}

func (b *Board) view() pageView {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := pageView{
		Title:    Title,
		Notice:   b.notice,
		ListForm: formView{Value: b.listForm.value, Feedback: b.listForm.feedback, Pending: b.listForm.pending},
		TaskForm: formView{Value: b.taskForm.value, Feedback: b.taskForm.feedback, Pending: b.taskForm.pending},
	}

	current, ok := b.state.CurrentList()
	for _, l := range b.state.Lists {
		v.Lists = append(v.Lists, listView{
			ID:        l.ID,
			Name:      l.Name,
			Removable: l.Removable,
			Current:   ok && l.ID == current.ID,
			Pending:   b.pendingLists[l.ID],
		})
	}
	if !ok {
		return v
	}

	v.HasCurrent = true
	v.CurrentName = current.Name
	for _, t := range b.state.TasksOf(current.ID) {
		v.Tasks = append(v.Tasks, taskView{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Pending:   b.pendingTasks[t.ID],
		})
	}
	return v
}
