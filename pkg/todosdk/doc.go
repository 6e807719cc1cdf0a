/*
Package todosdk is the Go client for the todo service and the home of its
wire types.

# Client

A Client without a token can create, list, read, update and delete todos and
can register or log in:

	c := todosdk.NewClient("http://localhost:8080")
	user, token, err := c.Register(ctx, "ada@example.com", "hunter22")

Register and Login return the session token the server sent in the X-Auth
header. WithToken returns a client that sends it on every request:

	me, err := c.WithToken(token).Me(ctx)

Todos created through a client with a token are attributed to that user and
can be listed with ListTodos(ctx, user.ID).

# Errors

Failed requests return an *APIError. The predefined values (ErrNotFound,
ErrEmailTaken, ErrInvalidCredentials, ErrUnauthorized) match with errors.Is:

	_, err := c.GetTodo(ctx, id)
	if errors.Is(err, todosdk.ErrNotFound) {
		// gone
	}

Validation failures use the code "validation_failed" and carry per-field
reasons in Details.

The server writes the same types, so handlers and clients share one
definition of the wire format.
*/
package todosdk
