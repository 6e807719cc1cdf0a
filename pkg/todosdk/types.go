package todosdk

// ErrorResponse is the body of every 4xx/5xx response except 401, which has
// no body.
type ErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Details          map[string]string `json:"details,omitempty"`
}

// Todo is the wire form of a todo. CompletedAt is Unix milliseconds and is
// null unless Completed is true.
type Todo struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	Creator     string `json:"creator,omitempty"`
}

type TodoResponse struct {
	Todo Todo `json:"todo"`
}

type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}

// UpdateTodoRequest changes only the fields that are present.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// CredentialsRequest is the body of registration and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
