package model

import "time"

// Joke is the persisted row.
type Joke struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// JokeView is the projection rendered to callers. The owner id stays
// server-side; ownership is exposed only as the derived boolean.
type JokeView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type ReadJokeResponse struct {
	Joke    JokeView `json:"joke"`
	IsOwner bool     `json:"isOwner"`
}

// JokeFields are the raw submitted values, echoed back on validation failure.
type JokeFields struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// FieldErrors has one slot per field, null where the field is valid.
type FieldErrors struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

// CreateJokeFailure is the structured payload for a rejected submission.
type CreateJokeFailure struct {
	FieldErrors *FieldErrors `json:"fieldErrors"`
	Fields      *JokeFields  `json:"fields"`
	FormError   *string      `json:"formError"`
}

// PreviewResponse echoes an in-flight submission that already passes
// validation. It carries no id because nothing has been persisted.
type PreviewResponse struct {
	Joke      JokeFields `json:"joke"`
	IsOwner   bool       `json:"isOwner"`
	CanDelete bool       `json:"canDelete"`
}

type JokeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
