package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/news/model"
	"foodee-backend/pkg/database"
)

type NewsRepository interface {
	Create(ctx context.Context, n *model.News) error
	Update(ctx context.Context, n *model.News) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.News, error)
	// List mới nhất trước
	List(ctx context.Context) ([]model.News, error)
	SearchByTitle(ctx context.Context, title string) ([]model.News, error)
	// ExistsByTitle so sánh không phân biệt hoa thường, bỏ qua excludeID
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) NewsRepository {
	return &postgresRepository{pool: pool}
}

const selectNews = `SELECT id, title, description, image_url, created_at FROM news`

func scanNews(row pgx.Row) (*model.News, error) {
	var n model.News
	if err := row.Scan(&n.ID, &n.Title, &n.Description, &n.ImageURL, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresRepository) Create(ctx context.Context, n *model.News) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO news (title, description, image_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, n.Title, n.Description, n.ImageURL, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrNewsTitleExists.Wrap(err)
		}
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, n *model.News) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `
		UPDATE news SET title = $2, description = $3, image_url = $4, created_at = $5
		WHERE id = $1
	`, n.ID, n.Title, n.Description, n.ImageURL, n.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrNewsTitleExists.Wrap(err)
		}
		return fmt.Errorf("update news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNewsNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNewsNotFound
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.News, error) {
	n, err := scanNews(database.Conn(ctx, r.pool).QueryRow(ctx, selectNews+` WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) query(ctx context.Context, where string, args ...any) ([]model.News, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, selectNews+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	list := []model.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		list = append(list, *n)
	}
	return list, rows.Err()
}

func (r *postgresRepository) List(ctx context.Context) ([]model.News, error) {
	return r.query(ctx, "")
}

func (r *postgresRepository) SearchByTitle(ctx context.Context, title string) ([]model.News, error) {
	return r.query(ctx, ` WHERE title ILIKE '%' || $1 || '%'`, title)
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM news WHERE LOWER(title) = LOWER($1) AND id <> $2)`,
		title, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check news title: %w", err)
	}
	return exists, nil
}
