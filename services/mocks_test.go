package services

import (
	"context"
	"sync"

	"github.com/lehoangkhoi01/fashion-shop-be/cache"
	"github.com/lehoangkhoi01/fashion-shop-be/errs"
	"github.com/lehoangkhoi01/fashion-shop-be/models"
	"github.com/lehoangkhoi01/fashion-shop-be/repository"
)

// fakeInventoryRepo is an in-memory InventoryRepository with real version
// checking, so interleaved read-modify-write cycles conflict the way the
// database would.
type fakeInventoryRepo struct {
	mu              sync.Mutex
	records         map[uint]*models.Inventory
	forcedConflicts int
	getCalls        int
	updateCalls     int
	createCalls     int
	getErr          error
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: make(map[uint]*models.Inventory)}
}

func (f *fakeInventoryRepo) seed(productID uint, quantity int) {
	f.records[productID] = &models.Inventory{
		BaseModel: models.BaseModel{ID: productID},
		ProductID: productID,
		Quantity:  quantity,
		Version:   1,
	}
}

func (f *fakeInventoryRepo) GetByProductID(ctx context.Context, productID uint) (*models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	inv, ok := f.records[productID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInventoryRepo) Create(ctx context.Context, inv *models.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if inv.Version == 0 {
		inv.Version = 1
	}
	cp := *inv
	f.records[inv.ProductID] = &cp
	return nil
}

func (f *fakeInventoryRepo) UpdateWithVersion(ctx context.Context, inv *models.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.forcedConflicts > 0 {
		f.forcedConflicts--
		return repository.ErrVersionConflict
	}
	stored, ok := f.records[inv.ProductID]
	if !ok || stored.Version != inv.Version {
		return repository.ErrVersionConflict
	}
	cp := *inv
	cp.Version++
	f.records[inv.ProductID] = &cp
	inv.Version++
	return nil
}

func (f *fakeInventoryRepo) quantity(productID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if inv, ok := f.records[productID]; ok {
		return inv.Quantity
	}
	return -1
}

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products    map[uint]*models.Product
	getCalls    int
	listCalls   int
	created     []*models.Product
	softDeleted []uint
	nextID      uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*models.Product), nextID: 1}
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	f.listCalls++
	out := make([]models.Product, 0, len(f.products))
	for id := uint(1); id < f.nextID; id++ {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListPaged(ctx context.Context, page, pageSize int) ([]models.Product, int64, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = f.nextID
	f.nextID++
	cp := *product
	f.products[product.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(ctx context.Context, product *models.Product) error {
	delete(f.products, product.ID)
	f.softDeleted = append(f.softDeleted, product.ID)
	return nil
}

// fakeCatalogRepo is an in-memory CatalogRepository.
type fakeCatalogRepo struct {
	catalogs  map[uint]*models.Catalog
	listCalls int
	getCalls  int
	nextID    uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{catalogs: make(map[uint]*models.Catalog), nextID: 1}
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uint) (*models.Catalog, error) {
	f.getCalls++
	cat, ok := f.catalogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cat
	return &cp, nil
}

func (f *fakeCatalogRepo) ListAll(ctx context.Context) ([]models.Catalog, error) {
	f.listCalls++
	out := make([]models.Catalog, 0, len(f.catalogs))
	for id := uint(1); id < f.nextID; id++ {
		if cat, ok := f.catalogs[id]; ok {
			out = append(out, *cat)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Create(ctx context.Context, catalog *models.Catalog) error {
	catalog.ID = f.nextID
	f.nextID++
	cp := *catalog
	f.catalogs[catalog.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, catalog *models.Catalog) error {
	cp := *catalog
	f.catalogs[catalog.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) SoftDelete(ctx context.Context, catalog *models.Catalog) error {
	delete(f.catalogs, catalog.ID)
	return nil
}

// fakeOrderRepo is an in-memory OrderRepository.
type fakeOrderRepo struct {
	orders    map[uint]*models.Order
	created   []*models.Order
	createErr error
	nextID    uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for id := uint(1); id < f.nextID; id++ {
		order, ok := f.orders[id]
		if !ok {
			continue
		}
		if order.UserID != nil && *order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindPaged(ctx context.Context, page, pageSize int) ([]models.Order, int64, error) {
	var all []models.Order
	for id := uint(1); id < f.nextID; id++ {
		if order, ok := f.orders[id]; ok {
			all = append(all, *order)
		}
	}
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = f.nextID
	f.nextID++
	cp := *order
	f.orders[order.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

// stockCall records one stock mutation.
type stockCall struct {
	productID uint
	quantity  int
}

// fakeStock implements StockManager with simple levels and injectable
// failures.
type fakeStock struct {
	levels      map[uint]int
	checkCalls  []stockCall
	deductCalls []stockCall
	addCalls    []stockCall
	deductErrAt map[uint]error
}

func newFakeStock() *fakeStock {
	return &fakeStock{
		levels:      make(map[uint]int),
		deductErrAt: make(map[uint]error),
	}
}

func (f *fakeStock) CheckStock(ctx context.Context, productID uint, quantity int) (bool, error) {
	f.checkCalls = append(f.checkCalls, stockCall{productID, quantity})
	level, ok := f.levels[productID]
	return ok && level >= quantity, nil
}

func (f *fakeStock) DeductStock(ctx context.Context, productID uint, quantity int) error {
	if err := f.deductErrAt[productID]; err != nil {
		return err
	}
	level, ok := f.levels[productID]
	if !ok {
		return &errs.NotFoundError{Resource: "Inventory for product", ID: productID}
	}
	if level < quantity {
		return &errs.InsufficientStockError{ProductID: productID, Requested: quantity, Available: level}
	}
	f.levels[productID] = level - quantity
	f.deductCalls = append(f.deductCalls, stockCall{productID, quantity})
	return nil
}

func (f *fakeStock) AddStock(ctx context.Context, productID uint, quantity int) error {
	f.levels[productID] += quantity
	f.addCalls = append(f.addCalls, stockCall{productID, quantity})
	return nil
}

// fakeCache is an in-memory Cache with injectable failures.
type fakeCache struct {
	entries   map[string][]byte
	getErr    error
	setErr    error
	removeErr error
	getCalls  int
	setCalls  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return data, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, opts cache.Options) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeCache) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) has(key string) bool {
	_, ok := f.entries[key]
	return ok
}
