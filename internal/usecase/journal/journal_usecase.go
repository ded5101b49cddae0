package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

// JournalUseCase is thin CRUD orchestration over the five journal entity
// repositories. Ownership is enforced at the repository level; this layer
// owns request validation and date parsing.
type JournalUseCase struct {
	visitRepo      repository.VisitRepository
	bookRepo       repository.BookRepository
	workoutRepo    repository.WorkoutRepository
	reflectionRepo repository.ReflectionRepository
	relativeRepo   repository.RelativeRepository
}

func NewJournalUseCase(
	visitRepo repository.VisitRepository,
	bookRepo repository.BookRepository,
	workoutRepo repository.WorkoutRepository,
	reflectionRepo repository.ReflectionRepository,
	relativeRepo repository.RelativeRepository,
) *JournalUseCase {
	return &JournalUseCase{
		visitRepo:      visitRepo,
		bookRepo:       bookRepo,
		workoutRepo:    workoutRepo,
		reflectionRepo: reflectionRepo,
		relativeRepo:   relativeRepo,
	}
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return parsed, nil
}

// VisitRequest represents a travel entry
type VisitRequest struct {
	Country string  `json:"country" binding:"required,min=2,max=100"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Year    int     `json:"year" binding:"required,min=1900,max=2100"`
	Note    *string `json:"note" binding:"omitempty,max=1000"`
}

func (uc *JournalUseCase) CreateVisit(ctx context.Context, userID int, req *VisitRequest) (*domain.Visit, error) {
	visit := &domain.Visit{
		UserID:  userID,
		Country: req.Country,
		City:    req.City,
		Year:    req.Year,
		Note:    req.Note,
	}
	if err := uc.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	return visit, nil
}

func (uc *JournalUseCase) ListVisits(ctx context.Context, userID int) ([]*domain.Visit, error) {
	return uc.visitRepo.ListByUser(ctx, userID)
}

func (uc *JournalUseCase) UpdateVisit(ctx context.Context, id, userID int, req *VisitRequest) (*domain.Visit, error) {
	visit, err := uc.visitRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	visit.Country = req.Country
	visit.City = req.City
	visit.Year = req.Year
	visit.Note = req.Note
	if err := uc.visitRepo.Update(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	return visit, nil
}

func (uc *JournalUseCase) DeleteVisit(ctx context.Context, id, userID int) error {
	return uc.visitRepo.Delete(ctx, id, userID)
}

// BookRequest represents a book entry
type BookRequest struct {
	Title      string  `json:"title" binding:"required,min=1,max=300"`
	Author     *string `json:"author" binding:"omitempty,max=200"`
	Rating     *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	FinishedOn *string `json:"finished_on" binding:"omitempty,datetime=2006-01-02"`
	Note       *string `json:"note" binding:"omitempty,max=1000"`
}

func (uc *JournalUseCase) CreateBook(ctx context.Context, userID int, req *BookRequest) (*domain.Book, error) {
	book := &domain.Book{
		UserID: userID,
		Title:  req.Title,
		Author: req.Author,
		Rating: req.Rating,
		Note:   req.Note,
	}
	if req.FinishedOn != nil {
		finishedOn, err := parseDate(*req.FinishedOn)
		if err != nil {
			return nil, err
		}
		book.FinishedOn = &finishedOn
	}
	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (uc *JournalUseCase) ListBooks(ctx context.Context, userID int) ([]*domain.Book, error) {
	return uc.bookRepo.ListByUser(ctx, userID)
}

func (uc *JournalUseCase) UpdateBook(ctx context.Context, id, userID int, req *BookRequest) (*domain.Book, error) {
	book, err := uc.bookRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	book.Title = req.Title
	book.Author = req.Author
	book.Rating = req.Rating
	book.Note = req.Note
	book.FinishedOn = nil
	if req.FinishedOn != nil {
		finishedOn, err := parseDate(*req.FinishedOn)
		if err != nil {
			return nil, err
		}
		book.FinishedOn = &finishedOn
	}
	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

func (uc *JournalUseCase) DeleteBook(ctx context.Context, id, userID int) error {
	return uc.bookRepo.Delete(ctx, id, userID)
}

// WorkoutRequest represents a workout entry
type WorkoutRequest struct {
	Activity        string  `json:"activity" binding:"required,min=2,max=100"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1,max=1440"`
	PerformedOn     string  `json:"performed_on" binding:"required,datetime=2006-01-02"`
	Note            *string `json:"note" binding:"omitempty,max=1000"`
}

func (uc *JournalUseCase) CreateWorkout(ctx context.Context, userID int, req *WorkoutRequest) (*domain.Workout, error) {
	performedOn, err := parseDate(req.PerformedOn)
	if err != nil {
		return nil, err
	}
	workout := &domain.Workout{
		UserID:          userID,
		Activity:        req.Activity,
		DurationMinutes: req.DurationMinutes,
		PerformedOn:     performedOn,
		Note:            req.Note,
	}
	if err := uc.workoutRepo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return workout, nil
}

func (uc *JournalUseCase) ListWorkouts(ctx context.Context, userID int) ([]*domain.Workout, error) {
	return uc.workoutRepo.ListByUser(ctx, userID)
}

func (uc *JournalUseCase) UpdateWorkout(ctx context.Context, id, userID int, req *WorkoutRequest) (*domain.Workout, error) {
	workout, err := uc.workoutRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	performedOn, err := parseDate(req.PerformedOn)
	if err != nil {
		return nil, err
	}
	workout.Activity = req.Activity
	workout.DurationMinutes = req.DurationMinutes
	workout.PerformedOn = performedOn
	workout.Note = req.Note
	if err := uc.workoutRepo.Update(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return workout, nil
}

func (uc *JournalUseCase) DeleteWorkout(ctx context.Context, id, userID int) error {
	return uc.workoutRepo.Delete(ctx, id, userID)
}

// ReflectionRequest represents a journal reflection
type ReflectionRequest struct {
	Content     string  `json:"content" binding:"required,min=1,max=5000"`
	Mood        *string `json:"mood" binding:"omitempty,max=50"`
	ReflectedOn string  `json:"reflected_on" binding:"required,datetime=2006-01-02"`
}

func (uc *JournalUseCase) CreateReflection(ctx context.Context, userID int, req *ReflectionRequest) (*domain.Reflection, error) {
	reflectedOn, err := parseDate(req.ReflectedOn)
	if err != nil {
		return nil, err
	}
	reflection := &domain.Reflection{
		UserID:      userID,
		Content:     req.Content,
		Mood:        req.Mood,
		ReflectedOn: reflectedOn,
	}
	if err := uc.reflectionRepo.Create(ctx, reflection); err != nil {
		return nil, fmt.Errorf("failed to create reflection: %w", err)
	}
	return reflection, nil
}

func (uc *JournalUseCase) ListReflections(ctx context.Context, userID int) ([]*domain.Reflection, error) {
	return uc.reflectionRepo.ListByUser(ctx, userID)
}

func (uc *JournalUseCase) UpdateReflection(ctx context.Context, id, userID int, req *ReflectionRequest) (*domain.Reflection, error) {
	reflection, err := uc.reflectionRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	reflectedOn, err := parseDate(req.ReflectedOn)
	if err != nil {
		return nil, err
	}
	reflection.Content = req.Content
	reflection.Mood = req.Mood
	reflection.ReflectedOn = reflectedOn
	if err := uc.reflectionRepo.Update(ctx, reflection); err != nil {
		return nil, fmt.Errorf("failed to update reflection: %w", err)
	}
	return reflection, nil
}

func (uc *JournalUseCase) DeleteReflection(ctx context.Context, id, userID int) error {
	return uc.reflectionRepo.Delete(ctx, id, userID)
}

// RelativeRequest represents a family member entry
type RelativeRequest struct {
	FullName  string  `json:"full_name" binding:"required,min=2,max=100"`
	Relation  string  `json:"relation" binding:"required,min=2,max=50"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Note      *string `json:"note" binding:"omitempty,max=1000"`
}

func (uc *JournalUseCase) CreateRelative(ctx context.Context, userID int, req *RelativeRequest) (*domain.Relative, error) {
	relative := &domain.Relative{
		UserID:   userID,
		FullName: req.FullName,
		Relation: req.Relation,
		Note:     req.Note,
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		relative.BirthDate = &birthDate
	}
	if err := uc.relativeRepo.Create(ctx, relative); err != nil {
		return nil, fmt.Errorf("failed to create relative: %w", err)
	}
	return relative, nil
}

func (uc *JournalUseCase) ListRelatives(ctx context.Context, userID int) ([]*domain.Relative, error) {
	return uc.relativeRepo.ListByUser(ctx, userID)
}

func (uc *JournalUseCase) UpdateRelative(ctx context.Context, id, userID int, req *RelativeRequest) (*domain.Relative, error) {
	relative, err := uc.relativeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	relative.FullName = req.FullName
	relative.Relation = req.Relation
	relative.Note = req.Note
	relative.BirthDate = nil
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		relative.BirthDate = &birthDate
	}
	if err := uc.relativeRepo.Update(ctx, relative); err != nil {
		return nil, fmt.Errorf("failed to update relative: %w", err)
	}
	return relative, nil
}

func (uc *JournalUseCase) DeleteRelative(ctx context.Context, id, userID int) error {
	return uc.relativeRepo.Delete(ctx, id, userID)
}
