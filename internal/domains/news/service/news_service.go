package service

import (
	"context"
	"strings"
	"time"

	"foodee-backend/internal/domains/news/model"
	"foodee-backend/internal/domains/news/repository"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/cache"
	"foodee-backend/pkg/logger"
)

const (
	newsListCacheKey = "news:all"
	newsCacheTTL     = 5 * time.Minute
)

type NewsService interface {
	List(ctx context.Context) ([]model.NewsDTO, error)
	Get(ctx context.Context, id int64) (*model.NewsDTO, error)
	Search(ctx context.Context, title string) ([]model.NewsDTO, error)
	Create(ctx context.Context, p shared.Principal, req model.NewsRequest) (*model.NewsDTO, error)
	Update(ctx context.Context, p shared.Principal, id int64, req model.NewsRequest) (*model.NewsDTO, error)
	Delete(ctx context.Context, p shared.Principal, id int64) error
}

type newsService struct {
	repo  repository.NewsRepository
	cache cache.Cache
	now   func() time.Time
}

func NewNewsService(repo repository.NewsRepository, cache cache.Cache) NewsService {
	return &newsService{repo: repo, cache: cache, now: time.Now}
}

func (s *newsService) List(ctx context.Context) ([]model.NewsDTO, error) {
	var cached []model.NewsDTO
	if found, err := s.cache.Get(ctx, newsListCacheKey, &cached); err != nil {
		logger.Warn("Cache GET failed", map[string]interface{}{"key": newsListCacheKey, "error": err.Error()})
	} else if found {
		return cached, nil
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := model.ToDTOs(list)
	if err := s.cache.Set(ctx, newsListCacheKey, dtos, newsCacheTTL); err != nil {
		logger.Warn("Cache SET failed", map[string]interface{}{"key": newsListCacheKey, "error": err.Error()})
	}
	return dtos, nil
}

func (s *newsService) Get(ctx context.Context, id int64) (*model.NewsDTO, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := n.ToDTO()
	return &dto, nil
}

func (s *newsService) Search(ctx context.Context, title string) ([]model.NewsDTO, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, model.ErrEmptySearchTitle
	}
	list, err := s.repo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return model.ToDTOs(list), nil
}

func (s *newsService) Create(ctx context.Context, p shared.Principal, req model.NewsRequest) (*model.NewsDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	req.Title = strings.TrimSpace(req.Title)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}
	if err := s.checkTitle(ctx, req.Title, 0); err != nil {
		return nil, err
	}

	n := &model.News{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   s.timestamp(req.Timestamp),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	logger.Info("News created", map[string]interface{}{"news_id": n.ID, "admin_id": p.UserID})
	dto := n.ToDTO()
	return &dto, nil
}

func (s *newsService) Update(ctx context.Context, p shared.Principal, id int64, req model.NewsRequest) (*model.NewsDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	req.Title = strings.TrimSpace(req.Title)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTitle(ctx, req.Title, id); err != nil {
		return nil, err
	}

	n.Title = req.Title
	n.Description = req.Description
	n.ImageURL = req.ImageURL
	n.CreatedAt = s.timestamp(req.Timestamp)
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	dto := n.ToDTO()
	return &dto, nil
}

func (s *newsService) Delete(ctx context.Context, p shared.Principal, id int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	logger.Info("News deleted", map[string]interface{}{"news_id": id, "admin_id": p.UserID})
	return nil
}

func (s *newsService) checkTitle(ctx context.Context, title string, excludeID int64) error {
	exists, err := s.repo.ExistsByTitle(ctx, title, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrNewsTitleExists
	}
	return nil
}

func (s *newsService) timestamp(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return s.now()
	}
	return *t
}

func (s *newsService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, newsListCacheKey); err != nil {
		logger.Warn("Cache DELETE failed", map[string]interface{}{"key": newsListCacheKey, "error": err.Error()})
	}
}
