package boardtest

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/todolists/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Page</title></head>
<body>
  <h1>Page</h1>
  <div class="input-group">
    <input type="text" aria-label="New task" value="fo" data-action="type-task">
    <button type="submit" data-action="submit-task">Add</button>
  </div>
  <div class="input-group">
    <input type="text" aria-label="New list" data-action="type-list" readonly>
    <button type="submit" data-action="submit-list" disabled>+</button>
  </div>
  <div class="row">
    <input type="checkbox" id="t1" data-action="toggle-task" data-target="1" checked>
    <label for="t1">foo</label>
    <button type="button" data-action="remove-task" data-target="1">Remove</button>
  </div>
  <div class="row">
    <input type="checkbox" id="t2" data-action="toggle-task" data-target="2">
    <label for="t2">Foo bar</label>
    <button type="button" data-action="remove-task" data-target="2">Remove</button>
  </div>
  <div role="alert">Network error</div>
</body></html>`

type fakeApp struct {
	mu     sync.Mutex
	html   string
	events []board.Event
}

func (f *fakeApp) Render() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.html
}

func (f *fakeApp) Dispatch(e board.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeApp) set(html string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.html = html
}

func TestScreen_Queries(t *testing.T) {
	s := NewScreen(t, &fakeApp{html: page})

	tests := map[string]struct {
		role     string
		name     string
		expected int
	}{
		"textbox-by-label":         {role: "textbox", name: "new task", expected: 1},
		"checkbox-by-label-exact":  {role: "checkbox", name: "foo", expected: 1},
		"checkbox-any-name":        {role: "checkbox", expected: 2},
		"buttons-by-text":          {role: "button", name: "remove", expected: 2},
		"explicit-role":            {role: "alert", name: "network error", expected: 1},
		"heading":                  {role: "heading", name: "Page", expected: 1},
		"no-partial-name-matching": {role: "checkbox", name: "bar", expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, s.QueryAllByRole(tt.role, tt.name), tt.expected)
			assert.Equal(t, tt.expected, s.Count(tt.role, tt.name))
		})
	}
}

func TestScreen_Text(t *testing.T) {
	s := NewScreen(t, &fakeApp{html: page})

	el := s.GetByText("Foo bar")
	assert.Equal(t, "label", el.sel.Nodes[0].Data)

	// the title lives outside the body
	h := s.GetByText("Page")
	assert.Equal(t, "heading", h.Role())

	_, ok := s.QueryByText("missing")
	assert.False(t, ok)
	assert.Len(t, s.QueryAllByText("Remove"), 2)
}

func TestElement_State(t *testing.T) {
	s := NewScreen(t, &fakeApp{html: page})

	checkbox := s.GetByRole("checkbox", "foo")
	assert.True(t, checkbox.Checked())
	assert.Equal(t, "foo", checkbox.Name())
	assert.False(t, s.GetByRole("checkbox", "foo bar").Checked())

	list := s.GetByRole("textbox", "New list")
	assert.True(t, list.ReadOnly())
	submit := list.Closest("div").Find(`button[type="submit"]`)
	assert.True(t, submit.Disabled())

	row := checkbox.Closest(".row")
	remove := row.GetByRole("button", "Remove")
	target, _ := remove.Attr("data-target")
	assert.Equal(t, "1", target)

	checked, ok := s.Checked("foo")
	assert.True(t, ok)
	assert.True(t, checked)
}

func TestUserEvent(t *testing.T) {
	app := &fakeApp{html: page}
	s := NewScreen(t, app)
	u := NewUserEvent(t, app)

	u.Type(s.GetByRole("textbox", "New task"), "o")
	u.Click(s.GetByRole("button", "Add"))
	u.Type(s.GetByRole("textbox", "New list"), "ignored")
	u.Click(s.GetByRole("button", "+"))
	u.Click(s.GetByRole("checkbox", "foo bar"))
	u.Click(s.GetByRole("heading", ""))

	assert.Equal(t, []board.Event{
		{Action: board.ActionTypeTask, Value: "foo"},
		{Action: board.ActionSubmitTask},
		{Action: board.ActionToggleTask, Target: "2"},
	}, app.events)
}

func TestScreen_Waits(t *testing.T) {
	app := &fakeApp{html: `<body><p>loading</p></body>`}
	s := NewScreen(t, app)

	go func() {
		time.Sleep(30 * time.Millisecond)
		app.set(`<body><p>done</p></body>`)
	}()

	s.WaitForElementToBeRemoved("loading")
	el := s.FindByText("done")
	require.Equal(t, "done", el.Text())
}

// fatalRecorder stops the calling goroutine on Fatalf and keeps the message.
type fatalRecorder struct {
	testing.TB
	mu    sync.Mutex
	fatal string
}

func (f *fatalRecorder) Fatalf(format string, args ...any) {
	f.mu.Lock()
	f.fatal = fmt.Sprintf(format, args...)
	f.mu.Unlock()
	runtime.Goexit()
}

func (f *fatalRecorder) message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fatal
}

func TestHarness_RemoveList(t *testing.T) {
	const lists = `<body><ul>
  <li><div>
    <button type="button" data-action="select-list" data-target="1">primary</button>
  </div></li>
  <li><div>
    <button type="button" data-action="select-list" data-target="2">groceries</button>
    <button type="button" aria-label="Remove list" data-action="remove-list" data-target="2">&times;</button>
  </div></li>
</ul></body>`

	t.Run("non-removable-fails-fast", func(t *testing.T) {
		app := &fakeApp{html: lists}
		rec := &fatalRecorder{TB: t}
		h := New(rec, app)

		done := make(chan struct{})
		go func() {
			defer close(done)
			h.RemoveList("primary")
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("RemoveList did not return")
		}
		assert.Equal(t, `list "primary" cannot be removed`, rec.message())
		assert.Empty(t, app.events)
	})

	t.Run("removable-clicks-remove-control", func(t *testing.T) {
		app := &fakeApp{html: lists}
		h := New(t, app)

		go func() {
			time.Sleep(30 * time.Millisecond)
			app.set(`<body><ul><li><div>
    <button type="button" data-action="select-list" data-target="1">primary</button>
  </div></li></ul></body>`)
		}()

		h.RemoveList("groceries")
		assert.Equal(t, []board.Event{{Action: board.ActionRemoveList, Target: "2"}}, app.events)
	})
}
