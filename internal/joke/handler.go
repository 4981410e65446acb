package joke

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"punchline/internal/joke/model"
	"punchline/internal/joke/service"
	"punchline/middleware"
	"punchline/pkg/logger"
)

type JokeHandler struct {
	Service *service.JokeService
}

func NewJokeHandler(service *service.JokeService) *JokeHandler {
	return &JokeHandler{Service: service}
}

// GetJoke renders one joke with the caller's ownership derived from their
// (optional) identity.
func (h *JokeHandler) GetJoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jokeID := r.URL.Query().Get("jokeId")
	if jokeID == "" {
		http.Error(w, "Missing jokeId parameter", http.StatusBadRequest)
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())

	resp, err := h.Service.Read(jokeID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "What a joke! Not found.", http.StatusNotFound)
			return
		}
		logger.Sugar.Errorf("Handler: Failed to read joke %s: %v", jokeID, err)
		http.Error(w, "Something unexpected went wrong. Sorry about that.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// NewJokeForm is the page-load path for the create form. The auth middleware
// already rejected anonymous callers, so an authenticated caller just gets an
// empty payload.
func (h *JokeHandler) NewJokeForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte("{}"))
}

func (h *JokeHandler) CreateJoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())

	name, content, ok := jokeFormFields(r)
	if !ok {
		writeFormError(w, "Form not submitted correctly.")
		return
	}

	jokeID, err := h.Service.Create(userID, name, content)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeValidationFailure(w, vErr)
			return
		}
		logger.Sugar.Errorf("Handler: Failed to create joke: %v", err)
		http.Error(w, "Something unexpected went wrong. Sorry about that.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/jokes/"+jokeID, http.StatusSeeOther)
}

// DeleteJoke checks the action intent before anything else: an unsupported
// intent is rejected before identity or record checks run.
func (h *JokeHandler) DeleteJoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form not submitted correctly.", http.StatusBadRequest)
		return
	}
	if intent := r.PostForm.Get("intent"); intent != "delete" {
		http.Error(w, fmt.Sprintf("The intent %q is not supported.", intent), http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "You must be logged in to delete a joke.", http.StatusUnauthorized)
		return
	}

	jokeID := r.URL.Query().Get("jokeId")
	if jokeID == "" {
		http.Error(w, "Missing jokeId parameter", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(jokeID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "Can't delete a joke that doesn't exist.", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			http.Error(w, "You can't delete a joke you didn't create.", http.StatusForbidden)
		default:
			logger.Sugar.Errorf("Handler: Failed to delete joke %s: %v", jokeID, err)
			http.Error(w, "Something unexpected went wrong. Sorry about that.", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/jokes", http.StatusSeeOther)
}

// PreviewJoke validates an in-flight submission with the create rules and
// echoes the provisional view model. Nothing is persisted either way.
func (h *JokeHandler) PreviewJoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, content, ok := jokeFormFields(r)
	if !ok {
		writeFormError(w, "Form not submitted correctly.")
		return
	}

	resp, err := h.Service.Preview(name, content)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(model.CreateJokeFailure{
				FieldErrors: &vErr.FieldErrors,
				Fields:      &vErr.Fields,
			})
			return
		}
		logger.Sugar.Errorf("Handler: Failed to preview joke: %v", err)
		http.Error(w, "Something unexpected went wrong. Sorry about that.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *JokeHandler) ListJokes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())

	jokes, err := h.Service.List(userID)
	if err != nil {
		logger.Sugar.Errorf("Error fetching jokes: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jokes)
}

func (h *JokeHandler) RandomJoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, _ := middleware.UserIDFrom(r.Context())

	resp, err := h.Service.Random(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "No jokes to be found!", http.StatusNotFound)
			return
		}
		logger.Sugar.Errorf("Handler: Failed to fetch a random joke: %v", err)
		http.Error(w, "Something unexpected went wrong. Sorry about that.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// jokeFormFields extracts the two submitted fields. ok is false when the body
// is malformed or either field is missing entirely.
func jokeFormFields(r *http.Request) (name, content string, ok bool) {
	if err := r.ParseForm(); err != nil {
		return "", "", false
	}
	if !r.PostForm.Has("name") || !r.PostForm.Has("content") {
		return "", "", false
	}
	return r.PostForm.Get("name"), r.PostForm.Get("content"), true
}

func writeFormError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.CreateJokeFailure{FormError: &msg})
}

func writeValidationFailure(w http.ResponseWriter, vErr *service.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.CreateJokeFailure{
		FieldErrors: &vErr.FieldErrors,
		Fields:      &vErr.Fields,
	})
}
