package performance

import (
	"context"
	"time"

	"hris/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const goalColumns = `id, employee_id, title, description, due_date, status, created_at`

func scanGoal(row scanner) (Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.EmployeeID, &g.Title, &g.Description, &g.DueDate, &g.Status, &g.CreatedAt)
	return g, err
}

func (s *Store) CreateGoal(ctx context.Context, in CreateGoalInput) (Goal, error) {
	return scanGoal(s.DB.QueryRow(ctx, `
    INSERT INTO performance_goals (employee_id, title, description, due_date, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING `+goalColumns, in.EmployeeID, in.Title, in.Description, in.DueDate, in.Status))
}

func (s *Store) ListGoals(ctx context.Context) ([]Goal, error) {
	return s.listGoals(ctx, `SELECT `+goalColumns+` FROM performance_goals ORDER BY created_at DESC, id DESC`)
}

func (s *Store) ListGoalsByEmployee(ctx context.Context, employeeID string) ([]Goal, error) {
	return s.listGoals(ctx, `
    SELECT `+goalColumns+`
    FROM performance_goals
    WHERE employee_id = $1
    ORDER BY created_at DESC, id DESC
  `, employeeID)
}

func (s *Store) ListGoalsByStatus(ctx context.Context, status GoalStatus) ([]Goal, error) {
	return s.listGoals(ctx, `
    SELECT `+goalColumns+`
    FROM performance_goals
    WHERE status = $1
    ORDER BY created_at DESC, id DESC
  `, status)
}

// ListOverdueGoals applies the same rule as IsOverdue.
func (s *Store) ListOverdueGoals(ctx context.Context, today time.Time) ([]Goal, error) {
	return s.listGoals(ctx, `
    SELECT `+goalColumns+`
    FROM performance_goals
    WHERE due_date IS NOT NULL AND due_date < $1 AND status <> 'Completed'
    ORDER BY due_date, id
  `, today)
}

func (s *Store) listGoals(ctx context.Context, query string, args ...any) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) GetGoal(ctx context.Context, id int64) (*Goal, error) {
	g, err := scanGoal(s.DB.QueryRow(ctx, `SELECT `+goalColumns+` FROM performance_goals WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, id int64, in UpdateGoalInput) (*Goal, error) {
	var p querier.Patch
	if in.Title.Set {
		p.Set("title", in.Title.Value)
	}
	if in.Description.Set {
		p.Set("description", in.Description.Ptr())
	}
	if in.DueDate.Set {
		p.Set("due_date", in.DueDate.Ptr())
	}
	if in.Status.Set {
		p.Set("status", in.Status.Value)
	}
	if p.Empty() {
		return s.GetGoal(ctx, id)
	}
	where := p.Arg(id)
	g, err := scanGoal(s.DB.QueryRow(ctx, `UPDATE performance_goals SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+goalColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM performance_goals WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const reviewColumns = `id, employee_id, reviewer_id, review_date, overall_rating, comments, created_at`

func scanReview(row scanner) (Review, error) {
	var r Review
	err := row.Scan(&r.ID, &r.EmployeeID, &r.ReviewerID, &r.ReviewDate, &r.OverallRating, &r.Comments, &r.CreatedAt)
	return r, err
}

func (s *Store) CreateReview(ctx context.Context, in CreateReviewInput) (Review, error) {
	return scanReview(s.DB.QueryRow(ctx, `
    INSERT INTO performance_reviews (employee_id, reviewer_id, review_date, overall_rating, comments)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING `+reviewColumns, in.EmployeeID, in.ReviewerID, in.ReviewDate, in.OverallRating, in.Comments))
}

func (s *Store) ListReviews(ctx context.Context) ([]Review, error) {
	return s.listReviews(ctx, `SELECT `+reviewColumns+` FROM performance_reviews ORDER BY review_date DESC, id DESC`)
}

func (s *Store) ListReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error) {
	return s.listReviews(ctx, `
    SELECT `+reviewColumns+`
    FROM performance_reviews
    WHERE employee_id = $1
    ORDER BY review_date DESC, id DESC
  `, employeeID)
}

func (s *Store) ListReviewsByReviewer(ctx context.Context, reviewerID string) ([]Review, error) {
	return s.listReviews(ctx, `
    SELECT `+reviewColumns+`
    FROM performance_reviews
    WHERE reviewer_id = $1
    ORDER BY review_date DESC, id DESC
  `, reviewerID)
}

func (s *Store) listReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetReview(ctx context.Context, id int64) (*Review, error) {
	r, err := scanReview(s.DB.QueryRow(ctx, `SELECT `+reviewColumns+` FROM performance_reviews WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) UpdateReview(ctx context.Context, id int64, in UpdateReviewInput) (*Review, error) {
	var p querier.Patch
	if in.ReviewDate.Set {
		p.Set("review_date", in.ReviewDate.Value)
	}
	if in.OverallRating.Set {
		p.Set("overall_rating", in.OverallRating.Value)
	}
	if in.Comments.Set {
		p.Set("comments", in.Comments.Ptr())
	}
	if p.Empty() {
		return s.GetReview(ctx, id)
	}
	where := p.Arg(id)
	r, err := scanReview(s.DB.QueryRow(ctx, `UPDATE performance_reviews SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+reviewColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) DeleteReview(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
