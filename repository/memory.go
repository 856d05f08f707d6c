package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories with the same contract as the Mongo ones,
// including CAS semantics on cart saves. Used by the test suites and handy
// for running the API without a database.

func timeNow() time.Time { return time.Now().UTC() }

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[primitive.ObjectID]models.Product)}
}

func (r *MemoryProductRepository) Insert(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.products[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) Find(_ context.Context, f ProductFilter) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" && textScore(p, f.Search) == 0 {
			continue
		}
		matched = append(matched, p)
	}
	sortProducts(matched, f.Sort)

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryProductRepository) FindByCategory(_ context.Context, category string, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Product{}
	for _, p := range r.products {
		if p.IsActive && p.Category == category {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, SortNewest)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryProductRepository) Search(_ context.Context, query string, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type scored struct {
		p     models.Product
		score int
	}
	matched := []scored{}
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if s := textScore(p, query); s > 0 {
			matched = append(matched, scored{p: p, score: s})
		}
	}
	// Score descending, then newest-first, then _id: same tie-break order
	// as the Mongo text search.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		if !matched[i].p.CreatedAt.Equal(matched[j].p.CreatedAt) {
			return matched[i].p.CreatedAt.After(matched[j].p.CreatedAt)
		}
		return matched[i].p.ID.Hex() > matched[j].p.ID.Hex()
	})

	products := []models.Product{}
	for _, m := range matched {
		products = append(products, m.p)
		if len(products) == limit {
			break
		}
	}
	return products, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, id primitive.ObjectID, u ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyUpdate(&p, u)
	p.UpdatedAt = timeNow()
	r.products[id] = p
	return &p, nil
}

func (r *MemoryProductRepository) SoftDelete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = timeNow()
	r.products[id] = p
	return &p, nil
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := []models.Product{}
	for _, p := range r.products {
		products = append(products, p)
	}
	sortProducts(products, SortNewest)
	return products, nil
}

// textScore counts how many query terms hit name, description or brand.
// A crude stand-in for Mongo's textScore, good enough to rank tests.
func textScore(p models.Product, query string) int {
	haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Brand)
	score := 0
	for _, term := range strings.Fields(strings.ToLower(query)) {
		score += strings.Count(haystack, term)
	}
	return score
}

func sortProducts(products []models.Product, key string) {
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case SortRating:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case SortPopular:
			if a.Reviews != b.Reviews {
				return a.Reviews > b.Reviews
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID.Hex() > b.ID.Hex()
	})
}

func applyUpdate(p *models.Product, u ProductUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		p.OriginalPrice = *u.OriginalPrice
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Ingredients != nil {
		p.Ingredients = *u.Ingredients
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Reviews != nil {
		p.Reviews = *u.Reviews
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
}

type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]models.Cart)}
}

func (r *MemoryCartRepository) FindByUserID(_ context.Context, userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cart.Items = append([]models.CartItem(nil), cart.Items...)
	return &cart, nil
}

func (r *MemoryCartRepository) Insert(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[cart.UserID]; ok {
		return ErrDuplicate
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = stored
	return nil
}

func (r *MemoryCartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.carts[cart.UserID]
	if !ok || stored.Version != cart.Version {
		return ErrConflict
	}
	cart.Version++
	cart.UpdatedAt = timeNow()
	next := *cart
	next.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = next
	return nil
}

func (r *MemoryCartRepository) FindAll(_ context.Context) ([]models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	carts := []models.Cart{}
	for _, cart := range r.carts {
		cart.Items = append([]models.CartItem(nil), cart.Items...)
		carts = append(carts, cart)
	}
	sort.Slice(carts, func(i, j int) bool { return carts[i].UserID < carts[j].UserID })
	return carts, nil
}
