package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"punchline/internal/joke/model"
	"punchline/pkg/logger"
)

type JokeRepository struct {
	DB *sql.DB
}

func NewJokeRepository(db *sql.DB) *JokeRepository {
	return &JokeRepository{DB: db}
}

// Create inserts a new joke and returns its generated id.
func (r *JokeRepository) Create(name, content, ownerID string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.Exec(`INSERT INTO jokes (id, name, content, owner_id, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		id, name, content, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to create joke: %v", err)
		return "", err
	}
	return id, nil
}

// FindByID fetches the display projection of one joke. Returns
// sql.ErrNoRows untouched so the service can map it to its own taxonomy.
func (r *JokeRepository) FindByID(jokeID string) (*model.Joke, error) {
	var joke model.Joke
	err := r.DB.QueryRow(`SELECT id, name, content, owner_id FROM jokes WHERE id = $1`, jokeID).
		Scan(&joke.ID, &joke.Name, &joke.Content, &joke.OwnerID)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Errorf("Failed to find joke %s: %v", jokeID, err)
		}
		return nil, err
	}
	return &joke, nil
}

func (r *JokeRepository) GetOwnerID(jokeID string) (string, error) {
	var ownerID string
	err := r.DB.QueryRow(`SELECT owner_id FROM jokes WHERE id = $1`, jokeID).Scan(&ownerID)
	if err != nil && err != sql.ErrNoRows {
		logger.Sugar.Errorf("Failed to get owner ID for joke %s: %v", jokeID, err)
	}
	return ownerID, err
}

// Delete removes a joke and reports how many rows went away. A concurrent
// delete can make that zero even after an existence check passed.
func (r *JokeRepository) Delete(jokeID string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM jokes WHERE id = $1`, jokeID)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete joke %s: %v", jokeID, err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *JokeRepository) ListByOwner(ownerID string) ([]model.JokeSummary, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM jokes WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to list jokes for user %s: %v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	var jokes []model.JokeSummary
	for rows.Next() {
		var j model.JokeSummary
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			continue
		}
		jokes = append(jokes, j)
	}
	return jokes, rows.Err()
}

func (r *JokeRepository) Random() (*model.Joke, error) {
	var joke model.Joke
	err := r.DB.QueryRow(`SELECT id, name, content, owner_id FROM jokes ORDER BY RANDOM() LIMIT 1`).
		Scan(&joke.ID, &joke.Name, &joke.Content, &joke.OwnerID)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Errorf("Failed to pick a random joke: %v", err)
		}
		return nil, err
	}
	return &joke, nil
}
