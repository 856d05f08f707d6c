package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/hanam197/cosmetic-ecommerce-web-be/cache"
	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"github.com/hanam197/cosmetic-ecommerce-web-be/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageLimit   = 10
	maxPageLimit       = 100
	defaultSearchLimit = 20
)

// ProductService owns catalog validation, defaults and listing rules.
// The cache is optional; when present, product detail reads go through it.
type ProductService struct {
	products repository.ProductRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewProductService(products repository.ProductRepository, c cache.Cache, cacheTTL time.Duration) *ProductService {
	return &ProductService{products: products, cache: c, cacheTTL: cacheTTL}
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         *float64
	OriginalPrice *float64
	Category      string
	Stock         *int
	Image         string
	Images        []string
	Ingredients   []string
	Brand         string
}

type ListParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string
}

type ListResult struct {
	Products   []models.Product
	Pagination models.Pagination
}

// List returns one page of active products. Page floors at 1, limit
// defaults to 10 and is clamped to [1,100].
func (s *ProductService) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = defaultPageLimit
	}
	p.Limit = clampLimit(p.Limit)

	filter := repository.ProductFilter{
		Category: p.Category,
		Search:   strings.TrimSpace(p.Search),
		Sort:     p.Sort,
		Page:     p.Page,
		Limit:    p.Limit,
	}
	products, total, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, unexpected("failed to fetch products", err)
	}
	return &ListResult{
		Products:   products,
		Pagination: models.NewPagination(p.Page, p.Limit, total),
	}, nil
}

// GetByID returns an active product. Soft-deleted products read as absent.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, invalidf("invalid product id")
	}

	if p := s.cachedProduct(ctx, id); p != nil {
		return p, nil
	}

	p, err := s.products.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundf("product not found")
	}
	if err != nil {
		return nil, unexpected("failed to fetch product", err)
	}
	if !p.IsActive {
		return nil, notFoundf("product not found")
	}

	s.cacheProduct(ctx, id, p)
	return p, nil
}

// Create validates and stores a new product. originalPrice defaults to
// price, stock to 0, list fields to empty lists.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" ||
		in.Price == nil || in.Category == "" {
		return nil, invalidf("name, description, price and category are required")
	}

	now := time.Now().UTC()
	p := &models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Images:      in.Images,
		Ingredients: in.Ingredients,
		Brand:       strings.TrimSpace(in.Brand),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.OriginalPrice = p.Price
	if in.OriginalPrice != nil {
		p.OriginalPrice = *in.OriginalPrice
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Ingredients == nil {
		p.Ingredients = []string{}
	}

	if err := p.Validate(); err != nil {
		return nil, invalidf("%s", err.Error())
	}

	if err := s.products.Insert(ctx, p); err != nil {
		return nil, unexpected("failed to create product", err)
	}
	return p, nil
}

// Update applies a partial update. The identifier and creation timestamp
// are immutable; updatedAt is refreshed by the repository.
func (s *ProductService) Update(ctx context.Context, id string, u repository.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, invalidf("invalid product id")
	}
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}

	p, err := s.products.Update(ctx, oid, u)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundf("product not found")
	}
	if err != nil {
		return nil, unexpected("failed to update product", err)
	}

	s.invalidate(ctx, id)
	return p, nil
}

// SoftDelete flags the product inactive; the record stays in storage.
func (s *ProductService) SoftDelete(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, invalidf("invalid product id")
	}

	p, err := s.products.SoftDelete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundf("product not found")
	}
	if err != nil {
		return nil, unexpected("failed to delete product", err)
	}

	s.invalidate(ctx, id)
	return p, nil
}

// ByCategory lists active products of one category, newest first.
func (s *ProductService) ByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	if limit == 0 {
		limit = defaultPageLimit
	}
	limit = clampLimit(limit)

	products, err := s.products.FindByCategory(ctx, category, limit)
	if err != nil {
		return nil, unexpected("failed to fetch products by category", err)
	}
	return products, nil
}

// Search runs a relevance-ranked full-text search over active products.
func (s *ProductService) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalidf("search query is required")
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}
	limit = clampLimit(limit)

	products, err := s.products.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, unexpected("failed to search products", err)
	}
	return products, nil
}

// Export returns every product, inactive ones included, for the admin
// Excel export.
func (s *ProductService) Export(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, unexpected("failed to fetch products", err)
	}
	return products, nil
}

func (s *ProductService) cachedProduct(ctx context.Context, id string) *models.Product {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, productCacheKey(id))
	if err != nil {
		return nil
	}
	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

func (s *ProductService) cacheProduct(ctx context.Context, id string, p *models.Product) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	// Best effort: a failed cache write must not fail the read.
	_ = s.cache.Set(ctx, productCacheKey(id), raw, s.cacheTTL)
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, productCacheKey(id))
}

func productCacheKey(id string) string { return "product:" + id }

func validateUpdate(u *repository.ProductUpdate) error {
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		if len(trimmed) < 3 || len(trimmed) > 100 {
			return invalidf("product name must be between 3 and 100 characters")
		}
		*u.Name = trimmed
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return invalidf("product description must not be empty")
	}
	if u.Price != nil && *u.Price < 0 {
		return invalidf("price must not be negative")
	}
	if u.OriginalPrice != nil && *u.OriginalPrice < 0 {
		return invalidf("original price must not be negative")
	}
	if u.Category != nil && !models.IsValidCategory(*u.Category) {
		return invalidf("invalid category %q", *u.Category)
	}
	if u.Stock != nil && *u.Stock < 0 {
		return invalidf("stock must not be negative")
	}
	if u.Rating != nil {
		if *u.Rating < 0 {
			*u.Rating = 0
		}
		if *u.Rating > 5 {
			*u.Rating = 5
		}
	}
	if u.Reviews != nil && *u.Reviews < 0 {
		return invalidf("reviews must not be negative")
	}
	return nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
