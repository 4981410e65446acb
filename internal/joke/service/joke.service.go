package service

import (
	"database/sql"

	"punchline/internal/joke/model"
	"punchline/internal/joke/repository"
	"punchline/internal/joke/validate"
	"punchline/socket"
)

type JokeService struct {
	Repo *repository.JokeRepository
	Feed *socket.Hub
}

func NewJokeService(repo *repository.JokeRepository, feed *socket.Hub) *JokeService {
	return &JokeService{Repo: repo, Feed: feed}
}

// Read fetches one joke and derives ownership for the caller. userID is empty
// for anonymous callers, who simply see isOwner=false.
func (s *JokeService) Read(jokeID, userID string) (*model.ReadJokeResponse, error) {
	joke, err := s.Repo.FindByID(jokeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.ReadJokeResponse{
		Joke:    model.JokeView{ID: joke.ID, Name: joke.Name, Content: joke.Content},
		IsOwner: userID != "" && userID == joke.OwnerID,
	}, nil
}

// Create validates both fields, always evaluating both so the caller gets the
// full set of errors at once, then persists on success.
func (s *JokeService) Create(userID, name, content string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}

	fieldErrors := validateFields(name, content)
	if fieldErrors != nil {
		return "", &ValidationError{
			FieldErrors: *fieldErrors,
			Fields:      model.JokeFields{Name: name, Content: content},
		}
	}

	jokeID, err := s.Repo.Create(name, content, userID)
	if err != nil {
		return "", err
	}

	s.Feed.Publish(socket.FeedEvent{
		Type:   socket.JokeCreatedType,
		JokeID: jokeID,
		Name:   name,
		UserID: userID,
	})
	return jokeID, nil
}

// Delete removes a joke after existence and ownership checks. The check and
// the delete are separate statements; a concurrent delete in between degrades
// to ErrNotFound via the rows-affected count rather than a silent success.
func (s *JokeService) Delete(jokeID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	ownerID, err := s.Repo.GetOwnerID(jokeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if ownerID != userID {
		return ErrForbidden
	}

	rows, err := s.Repo.Delete(jokeID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	s.Feed.Publish(socket.FeedEvent{
		Type:   socket.JokeDeletedType,
		JokeID: jokeID,
		UserID: userID,
	})
	return nil
}

// Preview echoes an in-flight submission when it would pass validation,
// using the exact rules Create applies. Nothing is persisted.
func (s *JokeService) Preview(name, content string) (*model.PreviewResponse, error) {
	fieldErrors := validateFields(name, content)
	if fieldErrors != nil {
		return nil, &ValidationError{
			FieldErrors: *fieldErrors,
			Fields:      model.JokeFields{Name: name, Content: content},
		}
	}
	return &model.PreviewResponse{
		Joke:      model.JokeFields{Name: name, Content: content},
		IsOwner:   true,
		CanDelete: false,
	}, nil
}

func (s *JokeService) List(userID string) ([]model.JokeSummary, error) {
	jokes, err := s.Repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	if jokes == nil {
		jokes = []model.JokeSummary{}
	}
	return jokes, nil
}

// Random returns an arbitrary joke, with ownership derived the same way Read
// does it.
func (s *JokeService) Random(userID string) (*model.ReadJokeResponse, error) {
	joke, err := s.Repo.Random()
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.ReadJokeResponse{
		Joke:    model.JokeView{ID: joke.ID, Name: joke.Name, Content: joke.Content},
		IsOwner: userID != "" && userID == joke.OwnerID,
	}, nil
}

// validateFields runs every field rule and returns nil when all pass. Both
// rules always run so errors are reported together.
func validateFields(name, content string) *model.FieldErrors {
	nameErr := validate.JokeName(name)
	contentErr := validate.JokeContent(content)
	if nameErr == "" && contentErr == "" {
		return nil
	}

	var fieldErrors model.FieldErrors
	if nameErr != "" {
		fieldErrors.Name = &nameErr
	}
	if contentErr != "" {
		fieldErrors.Content = &contentErr
	}
	return &fieldErrors
}
