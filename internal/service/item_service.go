package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"inventory-api/internal/domain"
	"inventory-api/internal/validation"
)

// ItemService runs create/update/delete as load-mutate-save cycles against the
// repository. It keeps no item state between calls.
type ItemService struct {
	repo  domain.ItemRepository
	log   *zap.Logger
	write *semaphore.Weighted // one read-modify-write cycle at a time in this process
	now   func() time.Time
	newID func() string
}

func NewItemService(repo domain.ItemRepository, l *zap.Logger) *ItemService {
	if l == nil {
		l = zap.NewNop()
	}
	return &ItemService{
		repo:  repo,
		log:   l,
		write: semaphore.NewWeighted(1),
		now:   time.Now,
		newID: NewItemID,
	}
}

// NewItemID returns the creation time in unix millis followed by nine random
// lowercase hex characters. Collisions are possible but not expected.
func NewItemID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}

func (s *ItemService) List(_ context.Context) ([]domain.Item, error) {
	return s.repo.LoadAll(), nil
}

func (s *ItemService) Get(_ context.Context, id string) (*domain.Item, error) {
	it := s.repo.FindByID(id)
	if it == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return it, nil
}

func (s *ItemService) Create(ctx context.Context, in domain.ItemInput) (*domain.Item, error) {
	if errs := validation.ValidateItem(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.write.Release(1)

	items := s.repo.LoadAll()
	if s.repo.FindByCode(in.Code) != nil {
		return nil, &domain.DuplicateCodeError{Code: in.Code}
	}

	now := s.now()
	it := domain.Item{
		ID:        s.newID(),
		Name:      in.Name,
		Code:      in.Code,
		Category:  in.Category,
		Stock:     *in.Stock,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items = append(items, it)
	if err := s.repo.SaveAll(items); err != nil {
		return nil, err
	}
	itemMutations.WithLabelValues("create").Inc()
	s.log.Info("item created", zap.String("id", it.ID), zap.String("code", it.Code))
	return &it, nil
}

// Update merges the present patch fields onto the stored item. An empty
// patch only refreshes UpdatedAt.
func (s *ItemService) Update(ctx context.Context, id string, patch domain.ItemPatch) (*domain.Item, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.write.Release(1)

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return nil, &domain.NotFoundError{ID: id}
	}
	current := items[idx]
	merged := patch.ApplyTo(current)

	if !patch.Empty() {
		if errs := validation.ValidateItem(merged.Input()); len(errs) > 0 {
			return nil, domain.NewValidationError(errs)
		}
	}
	if patch.Code != nil && *patch.Code != current.Code {
		if other := s.repo.FindByCode(*patch.Code); other != nil && other.ID != id {
			return nil, &domain.DuplicateCodeError{Code: *patch.Code}
		}
	}

	merged.UpdatedAt = s.now()
	items[idx] = merged
	if err := s.repo.SaveAll(items); err != nil {
		return nil, err
	}
	itemMutations.WithLabelValues("update").Inc()
	s.log.Info("item updated", zap.String("id", id))
	return &merged, nil
}

// Delete removes an item whose stock is zero.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.write.Release(1)

	items := s.repo.LoadAll()
	idx := indexOf(items, id)
	if idx < 0 {
		return &domain.NotFoundError{ID: id}
	}
	if stock := items[idx].Stock; stock > 0 {
		return &domain.ConstraintViolationError{ID: id, Stock: stock}
	}

	kept := make([]domain.Item, 0, len(items)-1)
	kept = append(kept, items[:idx]...)
	kept = append(kept, items[idx+1:]...)
	if err := s.repo.SaveAll(kept); err != nil {
		return err
	}
	itemMutations.WithLabelValues("delete").Inc()
	s.log.Info("item deleted", zap.String("id", id))
	return nil
}

func (s *ItemService) lock(ctx context.Context) error {
	if err := s.write.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "acquire item store")
	}
	return nil
}

func indexOf(items []domain.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
