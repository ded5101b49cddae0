package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type bookRepository struct {
	db *sqlx.DB
}

func NewBookRepository(db *sqlx.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (user_id, title, author, rating, finished_on, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		book.UserID, book.Title, book.Author, book.Rating, book.FinishedOn, book.Note,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *bookRepository) GetByID(ctx context.Context, id, userID int) (*domain.Book, error) {
	var book domain.Book
	query := `SELECT * FROM books WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &book, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Book, error) {
	var books []*domain.Book
	query := `SELECT * FROM books WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &books, query, userID)
	return books, err
}

func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, rating = $3, finished_on = $4, note = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		book.Title, book.Author, book.Rating, book.FinishedOn, book.Note,
		book.ID, book.UserID,
	).Scan(&book.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBookNotFound
	}
	return err
}

func (r *bookRepository) Delete(ctx context.Context, id, userID int) error {
	query := `DELETE FROM books WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}
