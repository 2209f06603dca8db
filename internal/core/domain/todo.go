package domain

import "time"

// TodoList groups todos. It is unrelated to the creative domain.
type TodoList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Todo is a single task inside a list.
type Todo struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodoPatch is a partial update of a todo.
type TodoPatch struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// Apply returns t with every set field of p copied over.
func (p TodoPatch) Apply(t Todo) Todo {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
