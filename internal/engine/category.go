package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/devlogdesk/devlog/internal/models"
)

// CreateCategory registers a new category. Names are unique
// case-insensitively.
func (e *Engine) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ValidationError{Msg: "category name is required"}
	}
	existing, err := e.store.Categories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return models.Category{}, ConflictError{Msg: fmt.Sprintf("category %q already exists", c.Name)}
		}
	}
	cat := models.Category{
		ID:        e.newCategoryID(name),
		Name:      name,
		CreatedAt: e.now().UTC(),
	}
	if err := e.store.CreateCategory(ctx, cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// ListCategories returns all categories, oldest first.
func (e *Engine) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if !categories[i].CreatedAt.Equal(categories[j].CreatedAt) {
			return categories[i].CreatedAt.Before(categories[j].CreatedAt)
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// RenameCategory changes a category's name, keeping names unique
// case-insensitively.
func (e *Engine) RenameCategory(ctx context.Context, id, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ValidationError{Msg: "category name is required"}
	}
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	var target *models.Category
	for i := range categories {
		if categories[i].ID == id {
			target = &categories[i]
			continue
		}
		if strings.EqualFold(categories[i].Name, name) {
			return models.Category{}, ConflictError{Msg: fmt.Sprintf("category %q already exists", categories[i].Name)}
		}
	}
	if target == nil {
		return models.Category{}, NotFoundError{Resource: "category", ID: id}
	}
	target.Name = name
	if err := e.store.UpdateCategory(ctx, *target); err != nil {
		return models.Category{}, err
	}
	return *target, nil
}

// DeleteCategory removes a category. While other categories exist a
// replacement is mandatory and all entries referencing the deleted
// category move to it atomically. Deleting the last category deletes its
// entries instead.
func (e *Engine) DeleteCategory(ctx context.Context, id, replacementID string) error {
	replacementID = strings.TrimSpace(replacementID)
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return err
	}
	found := false
	replacementLive := false
	for _, c := range categories {
		if c.ID == id {
			found = true
		} else if c.ID == replacementID {
			replacementLive = true
		}
	}
	if !found {
		return NotFoundError{Resource: "category", ID: id}
	}
	if len(categories) == 1 {
		// Last category: entries filed under it go with it.
		return e.store.DeleteCategory(ctx, id, "")
	}
	if replacementID == "" {
		return ValidationError{Msg: "a replacement category is required"}
	}
	if replacementID == id {
		return ValidationError{Msg: "replacement category must differ from the deleted one"}
	}
	if !replacementLive {
		return NotFoundError{Resource: "replacement category", ID: replacementID}
	}
	return e.store.DeleteCategory(ctx, id, replacementID)
}
