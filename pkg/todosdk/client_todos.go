package todosdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateTodo creates a todo. When the client carries a token the todo is
// attributed to that user.
func (c *Client) CreateTodo(ctx context.Context, text string) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/todos", CreateTodoRequest{Text: text})
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decodeJSON(resp, &todo, http.StatusOK); err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListTodos lists todos in creation order. A non-empty creator restricts the
// list to that user's todos.
func (c *Client) ListTodos(ctx context.Context, creator string) ([]Todo, error) {
	path := "/todos"
	if creator != "" {
		path += "?" + url.Values{"creator": {creator}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out TodoListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Todos, nil
}

func (c *Client) GetTodo(ctx context.Context, id string) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/todos/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}

// UpdateTodo applies the fields set in patch.
func (c *Client) UpdateTodo(ctx context.Context, id string, patch UpdateTodoRequest) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/todos/"+url.PathEscape(id), patch)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}

// DeleteTodo removes a todo and returns it as it was before removal.
func (c *Client) DeleteTodo(ctx context.Context, id string) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Todo, nil
}
