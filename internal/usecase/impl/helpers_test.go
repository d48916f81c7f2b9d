package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"machone/config"
	"machone/internal/domain/entity"
	"machone/internal/domain/repository"
	"machone/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Search = &config.SearchConfig{
		SimilarityThreshold: 0.3,
		DefaultPageSize:     20,
		MaxPageSize:         100,
		MinQueryLength:      2,
	}

	return cfg
}

// stubTxManager runs the callback against a fixed factory, without any real
// transaction semantics.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// stubFactory hands out the repositories the test wired in.
type stubFactory struct {
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	garageRepo     repository.GarageRepository
}

func (f *stubFactory) UserRepo() repository.UserRepository             { return f.userRepo }
func (f *stubFactory) CollectionRepo() repository.CollectionRepository { return f.collectionRepo }
func (f *stubFactory) GarageRepo() repository.GarageRepository         { return f.garageRepo }

// stubUserRepo answers from an in-memory map keyed by email and nickname.
type stubUserRepo struct {
	byEmail    map[string]*entity.User
	byNickname map[string]*entity.User
	byID       map[uuid.UUID]*entity.User
	hashes     map[string]string

	createErr  error
	createdTo  *entity.User
	lookupErrs map[string]error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    make(map[string]*entity.User),
		byNickname: make(map[string]*entity.User),
		byID:       make(map[uuid.UUID]*entity.User),
		hashes:     make(map[string]string),
		lookupErrs: make(map[string]error),
	}
}

func (r *stubUserRepo) add(user *entity.User, passwordHash string) {
	r.byEmail[user.Email] = user
	r.byNickname[user.Nickname] = user
	r.byID[user.ID] = user
	r.hashes[user.Email] = passwordHash
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if err, ok := r.lookupErrs["email"]; ok {
		return nil, err
	}
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByNickname(_ context.Context, nickname string) (*entity.User, error) {
	if err, ok := r.lookupErrs["nickname"]; ok {
		return nil, err
	}
	if user, ok := r.byNickname[nickname]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindCredentialByEmail(_ context.Context, email string) (*entity.User, string, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, "", repository.ErrUserNotFound
	}

	return user, r.hashes[email], nil
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User, passwordHash string) error {
	if r.createErr != nil {
		return r.createErr
	}

	user.ID = uuid.New()
	r.add(user, passwordHash)
	r.createdTo = user

	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	r.byID[user.ID] = user

	return nil
}

func (r *stubUserRepo) IncrementVisitCount(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; ok {
		return nil
	}

	return repository.ErrUserNotFound
}

// stubHasher marks digests with a reversible prefix so tests can assert on
// them without real bcrypt cost.
type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues predictable tokens.
type stubTokenService struct {
	issueErr error
	issued   []uuid.UUID
}

func (s *stubTokenService) Issue(userID uuid.UUID, _ entity.Role) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued = append(s.issued, userID)

	return "token-for-" + userID.String(), nil
}

func (s *stubTokenService) Verify(_ string) (*service.Claims, error) {
	panic("not used in these tests")
}

// stubDiecastRepo scripts both search strategies.
type stubDiecastRepo struct {
	similarityResults []*entity.DiecastSummary
	similarityTotal   int64
	similarityErr     error

	substringResults []*entity.DiecastSummary
	substringTotal   int64
	substringErr     error

	similarityCalls int
	substringCalls  int
	lastThreshold   float64

	diecasts map[uuid.UUID]*entity.Diecast

	created []*entity.Diecast
}

func (r *stubDiecastRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Diecast, error) {
	if diecast, ok := r.diecasts[id]; ok {
		return diecast, nil
	}

	return nil, repository.ErrDiecastNotFound
}

func (r *stubDiecastRepo) Create(_ context.Context, diecast *entity.Diecast) error {
	if diecast.ID == uuid.Nil {
		diecast.ID = uuid.New()
	}
	if r.diecasts == nil {
		r.diecasts = make(map[uuid.UUID]*entity.Diecast)
	}
	r.diecasts[diecast.ID] = diecast
	r.created = append(r.created, diecast)

	return nil
}

func (r *stubDiecastRepo) SearchBySimilarity(_ context.Context, _ string, threshold float64, limit, offset int) ([]*entity.DiecastSummary, error) {
	r.similarityCalls++
	r.lastThreshold = threshold
	if r.similarityErr != nil {
		return nil, r.similarityErr
	}

	return pageOf(r.similarityResults, limit, offset), nil
}

func (r *stubDiecastRepo) CountBySimilarity(_ context.Context, _ string, threshold float64) (int64, error) {
	r.lastThreshold = threshold
	if r.similarityErr != nil {
		return 0, r.similarityErr
	}

	return r.similarityTotal, nil
}

func (r *stubDiecastRepo) SearchBySubstring(_ context.Context, _ string, limit, offset int) ([]*entity.DiecastSummary, error) {
	r.substringCalls++
	if r.substringErr != nil {
		return nil, r.substringErr
	}

	return pageOf(r.substringResults, limit, offset), nil
}

func (r *stubDiecastRepo) CountBySubstring(_ context.Context, _ string) (int64, error) {
	if r.substringErr != nil {
		return 0, r.substringErr
	}

	return r.substringTotal, nil
}

func (r *stubDiecastRepo) IncrementVisitCount(_ context.Context, id uuid.UUID) error {
	if _, ok := r.diecasts[id]; ok {
		return nil
	}

	return repository.ErrDiecastNotFound
}

type garageKey struct {
	userID    uuid.UUID
	diecastID uuid.UUID
}

// stubGarageRepo keeps ownership records in insertion order so list paging is
// deterministic.
type stubGarageRepo struct {
	items map[garageKey]*entity.GarageItem
	order []garageKey

	createErr error
}

func newStubGarageRepo() *stubGarageRepo {
	return &stubGarageRepo{items: make(map[garageKey]*entity.GarageItem)}
}

func (r *stubGarageRepo) Find(_ context.Context, userID, diecastID uuid.UUID) (*entity.GarageItem, error) {
	if item, ok := r.items[garageKey{userID, diecastID}]; ok {
		return item, nil
	}

	return nil, repository.ErrGarageItemNotFound
}

func (r *stubGarageRepo) Create(_ context.Context, item *entity.GarageItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := garageKey{item.UserID, item.DiecastID}
	r.items[key] = item
	r.order = append(r.order, key)

	return nil
}

func (r *stubGarageRepo) Update(_ context.Context, item *entity.GarageItem) error {
	key := garageKey{item.UserID, item.DiecastID}
	if _, ok := r.items[key]; !ok {
		return repository.ErrGarageItemNotFound
	}
	r.items[key] = item

	return nil
}

func (r *stubGarageRepo) Delete(_ context.Context, userID, diecastID uuid.UUID) error {
	key := garageKey{userID, diecastID}
	if _, ok := r.items[key]; !ok {
		return repository.ErrGarageItemNotFound
	}
	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

func (r *stubGarageRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageItem, error) {
	var all []*entity.GarageItem
	for _, key := range r.order {
		if key.userID == userID {
			all = append(all, r.items[key])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (r *stubGarageRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for key := range r.items {
		if key.userID == userID {
			n++
		}
	}

	return n, nil
}

func (r *stubGarageRepo) ListCardsByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.GarageCard, error) {
	items, err := r.ListByUser(context.Background(), userID, limit, offset)
	if err != nil {
		return nil, err
	}
	cards := make([]*entity.GarageCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, &entity.GarageCard{
			Diecast:  entity.DiecastSummary{ID: item.DiecastID},
			Modality: item.Modality,
			Quantity: item.Quantity,
		})
	}

	return cards, nil
}

// stubCollectionRepo keeps collections and items in memory.
type stubCollectionRepo struct {
	collections map[uuid.UUID]*entity.Collection

	createErr  error
	addItemErr error
}

func newStubCollectionRepo() *stubCollectionRepo {
	return &stubCollectionRepo{collections: make(map[uuid.UUID]*entity.Collection)}
}

func (r *stubCollectionRepo) add(collection *entity.Collection) {
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	r.collections[collection.ID] = collection
}

func (r *stubCollectionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Collection, error) {
	if collection, ok := r.collections[id]; ok {
		return collection, nil
	}

	return nil, repository.ErrCollectionNotFound
}

func (r *stubCollectionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	var out []*entity.Collection
	for _, collection := range r.collections {
		if collection.UserID == userID {
			out = append(out, collection)
		}
	}

	return out, nil
}

func (r *stubCollectionRepo) MaxDisplayOrder(_ context.Context, userID uuid.UUID) (int, error) {
	maxOrder := 0
	for _, collection := range r.collections {
		if collection.UserID == userID && collection.DisplayOrder > maxOrder {
			maxOrder = collection.DisplayOrder
		}
	}

	return maxOrder, nil
}

func (r *stubCollectionRepo) Create(_ context.Context, collection *entity.Collection) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(collection)

	return nil
}

func (r *stubCollectionRepo) Update(_ context.Context, collection *entity.Collection) error {
	if _, ok := r.collections[collection.ID]; !ok {
		return repository.ErrCollectionNotFound
	}
	r.collections[collection.ID] = collection

	return nil
}

func (r *stubCollectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.collections[id]; !ok {
		return repository.ErrCollectionNotFound
	}
	delete(r.collections, id)

	return nil
}

func (r *stubCollectionRepo) MaxItemPosition(_ context.Context, collectionID uuid.UUID) (int, error) {
	maxPosition := 0
	if collection, ok := r.collections[collectionID]; ok {
		for _, item := range collection.Items {
			if item.Position > maxPosition {
				maxPosition = item.Position
			}
		}
	}

	return maxPosition, nil
}

func (r *stubCollectionRepo) AddItem(_ context.Context, item *entity.CollectionItem) error {
	if r.addItemErr != nil {
		return r.addItemErr
	}
	collection, ok := r.collections[item.CollectionID]
	if !ok {
		return repository.ErrCollectionNotFound
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	collection.Items = append(collection.Items, item)

	return nil
}

func (r *stubCollectionRepo) RemoveItem(_ context.Context, collectionID, itemID uuid.UUID) error {
	collection, ok := r.collections[collectionID]
	if !ok {
		return repository.ErrCollectionNotFound
	}
	for i, item := range collection.Items {
		if item.ID == itemID {
			collection.Items = append(collection.Items[:i], collection.Items[i+1:]...)

			return nil
		}
	}

	return repository.ErrCollectionItemNotFound
}

// stubWishlistRepo keeps wishlist entries in insertion order.
type stubWishlistRepo struct {
	entries map[garageKey]*entity.WishlistItem
	order   []garageKey

	createErr error
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{entries: make(map[garageKey]*entity.WishlistItem)}
}

func (r *stubWishlistRepo) Create(_ context.Context, item *entity.WishlistItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := garageKey{item.UserID, item.DiecastID}
	r.entries[key] = item
	r.order = append(r.order, key)

	return nil
}

func (r *stubWishlistRepo) Delete(_ context.Context, userID, diecastID uuid.UUID) error {
	key := garageKey{userID, diecastID}
	if _, ok := r.entries[key]; !ok {
		return repository.ErrWishlistItemNotFound
	}
	delete(r.entries, key)

	return nil
}

func (r *stubWishlistRepo) Exists(_ context.Context, userID, diecastID uuid.UUID) (bool, error) {
	_, ok := r.entries[garageKey{userID, diecastID}]

	return ok, nil
}

func (r *stubWishlistRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.DiecastSummary, error) {
	var out []*entity.DiecastSummary
	for _, key := range r.order {
		if key.userID == userID {
			out = append(out, &entity.DiecastSummary{ID: key.diecastID})
		}
	}

	return out, nil
}

func pageOf(all []*entity.DiecastSummary, limit, offset int) []*entity.DiecastSummary {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end]
}
