package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type TodosHandler struct {
	TodoService *service.TodoService
}

func toTodo(t domain.Todo) todosdk.Todo {
	out := todosdk.Todo{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Creator:   t.CreatorID,
	}
	if t.CompletedAt != nil {
		ms := t.CompletedAt.UnixMilli()
		out.CompletedAt = &ms
	}
	return out
}

// HandleCreate creates a todo.
//
//	@Summary		Create a todo
//	@Description	Creates an incomplete todo. With a valid X-Auth token the todo is attributed to that user.
//	@Tags			Todos
//	@Security		XAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CreateTodoRequest	true	"Todo text"
//	@Success		200		{object}	todosdk.Todo				"The created todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"Invalid body or blank text"
//	@Failure		401		"Token presented but not valid"
//	@Router			/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req todosdk.CreateTodoRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	t, err := h.TodoService.Create(ctx, httpx.UserID(ctx), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodo(t))
}

// HandleList lists todos.
//
//	@Summary		List todos
//	@Description	Lists every todo in creation order, or only those created by one user.
//	@Tags			Todos
//	@Produce		json
//	@Param			creator	query		string						false	"Creator user id"
//	@Success		200		{object}	todosdk.TodoListResponse	"Todos"
//	@Router			/todos [get].
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	todos, err := h.TodoService.List(r.Context(), service.ListFilter{
		CreatorID: r.URL.Query().Get("creator"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := todosdk.TodoListResponse{Todos: make([]todosdk.Todo, 0, len(todos))}
	for _, t := range todos {
		out.Todos = append(out.Todos, toTodo(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one todo.
//
//	@Summary		Get a todo
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string					true	"Todo id"
//	@Success		200	{object}	todosdk.TodoResponse	"The todo"
//	@Failure		404	{object}	todosdk.ErrorResponse	"No todo with this id, or a malformed id"
//	@Router			/todos/{id} [get].
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.TodoService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{Todo: toTodo(t)})
}

// HandleUpdate patches a todo.
//
//	@Summary		Update a todo
//	@Description	Changes text and/or completion. Completing stamps completedAt; un-completing clears it.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Todo id"
//	@Param			request	body		todosdk.UpdateTodoRequest	false	"Fields to change"
//	@Success		200		{object}	todosdk.TodoResponse		"The updated todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"Invalid body or blank text"
//	@Failure		404		{object}	todosdk.ErrorResponse		"No todo with this id, or a malformed id"
//	@Router			/todos/{id} [patch].
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	// A malformed id is a 404 whatever the body holds.
	id := r.PathValue("id")
	if !idx.Valid(id) {
		writeError(w, r, service.ErrMalformedID)
		return
	}

	// No body is an empty patch. Text is checked by the service once the
	// todo is known to exist.
	var req todosdk.UpdateTodoRequest
	if err := httpx.DecodeOptionalJSON(w, r, &req); err != nil {
		writeBadBody(w, r, err)
		return
	}

	t, err := h.TodoService.Update(r.Context(), id, service.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{Todo: toTodo(t)})
}

// HandleDelete removes a todo.
//
//	@Summary		Delete a todo
//	@Tags			Todos
//	@Produce		json
//	@Param			id	path		string					true	"Todo id"
//	@Success		200	{object}	todosdk.TodoResponse	"The removed todo"
//	@Failure		404	{object}	todosdk.ErrorResponse	"No todo with this id, or a malformed id"
//	@Router			/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	t, err := h.TodoService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{Todo: toTodo(t)})
}
