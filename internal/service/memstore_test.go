package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-payhook/internal/domain"
	"github.com/fsdevblog/groph-payhook/internal/repository/repoargs"
	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

// memStore хранилище в памяти с семантикой postgres-репозиториев: условные обновления, уникальные индексы,
// откат транзакции при ошибке. Транзакции выполняются строго последовательно.
type memStore struct {
	mu        sync.Mutex
	clock     time.Time
	sales     map[int64]*domain.Sale
	products  map[int64]*domain.Product
	wallets   map[int64]*domain.Wallet
	recharges map[int64]*domain.WalletRecharge
	ledger    []domain.WalletTransaction
}

func newMemStore() *memStore {
	return &memStore{
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		sales:     make(map[int64]*domain.Sale),
		products:  make(map[int64]*domain.Product),
		wallets:   make(map[int64]*domain.Wallet),
		recharges: make(map[int64]*domain.WalletRecharge),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	c.clock = m.clock
	for id, s := range m.sales {
		cp := *s
		cp.Items = append([]domain.SaleItem(nil), s.Items...)
		c.sales[id] = &cp
	}
	for id, p := range m.products {
		cp := *p
		cp.Variations = append([]domain.Variation(nil), p.Variations...)
		c.products[id] = &cp
	}
	for id, w := range m.wallets {
		cp := *w
		c.wallets[id] = &cp
	}
	for id, r := range m.recharges {
		cp := *r
		c.recharges[id] = &cp
	}
	c.ledger = append([]domain.WalletTransaction(nil), m.ledger...)
	return c
}

func (m *memStore) restore(from *memStore) {
	m.clock = from.clock
	m.sales = from.sales
	m.products = from.products
	m.wallets = from.wallets
	m.recharges = from.recharges
	m.ledger = from.ledger
}

// ledgerSum сумма записей журнала по кошельку.
func (m *memStore) ledgerSum(walletID int64) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := decimal.Zero
	for _, e := range m.ledger {
		if e.WalletID == walletID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

func (m *memStore) ledgerEntries(walletID int64) []domain.WalletTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.WalletTransaction
	for _, e := range m.ledger {
		if e.WalletID == walletID {
			res = append(res, e)
		}
	}
	return res
}

func (m *memStore) sale(id int64) domain.Sale {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.sales[id]
}

func (m *memStore) variation(productID int64, idx int) domain.Variation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[productID].Variations[idx]
}

func (m *memStore) wallet(id int64) domain.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.wallets[id]
}

func (m *memStore) recharge(id int64) domain.WalletRecharge {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.recharges[id]
}

type memUOW struct {
	store *memStore
}

func (u *memUOW) Register(uow.RepositoryName, uow.RepositoryFactory) error { return nil }

func (u *memUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return memTX{store: u.store}.Get(name)
}

func (u *memUOW) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, memTX{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

type memTX struct {
	store *memStore
}

func (t memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.SaleRepoName:
		return &memSaleRepo{m: t.store}, nil
	case repoargs.ProductRepoName:
		return &memProductRepo{m: t.store}, nil
	case repoargs.WalletRepoName:
		return &memWalletRepo{m: t.store}, nil
	case repoargs.WalletRechargeRepoName:
		return &memRechargeRepo{m: t.store}, nil
	case repoargs.WalletTransactionRepoName:
		return &memLedgerRepo{m: t.store}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memstore/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("[memstore/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}

type memSaleRepo struct{ m *memStore }

func (r *memSaleRepo) copySale(s *domain.Sale) *domain.Sale {
	cp := *s
	cp.Items = append([]domain.SaleItem(nil), s.Items...)
	return &cp
}

func (r *memSaleRepo) LockByPaymentID(_ context.Context, paymentID string) (*domain.Sale, error) {
	for _, s := range r.m.sales {
		if s.PaymentID != "" && s.PaymentID == paymentID {
			return r.copySale(s), nil
		}
	}
	return nil, notFound("sale by payment %s", paymentID)
}

func (r *memSaleRepo) LockUnlinkedByID(_ context.Context, saleID int64) (*domain.Sale, error) {
	s, ok := r.m.sales[saleID]
	if !ok || s.PaymentID != "" {
		return nil, notFound("unlinked sale %d", saleID)
	}
	return r.copySale(s), nil
}

func (r *memSaleRepo) AttachPayment(_ context.Context, saleID int64, paymentID string) error {
	for _, s := range r.m.sales {
		if s.PaymentID == paymentID {
			return duplicate("sale payment %s", paymentID)
		}
	}
	s, ok := r.m.sales[saleID]
	if !ok || s.PaymentID != "" {
		return notFound("unlinked sale %d", saleID)
	}
	s.PaymentID = paymentID
	return nil
}

func (r *memSaleRepo) UpdatePaymentStatus(_ context.Context, args repoargs.SalePaymentStatusUpdate) (bool, error) {
	s, ok := r.m.sales[args.ID]
	if !ok || s.PaymentStatus != args.From {
		return false, nil
	}
	s.PaymentStatus = args.To
	s.PaymentStatusDetail = args.StatusDetail
	s.PaymentMethodID = args.PaymentMethodID
	s.UpdatedAt = r.m.tick()
	return true, nil
}

type memProductRepo struct{ m *memStore }

func (r *memProductRepo) LockByID(_ context.Context, productID int64) (*domain.Product, error) {
	p, ok := r.m.products[productID]
	if !ok {
		return nil, notFound("product %d", productID)
	}
	cp := *p
	cp.Variations = append([]domain.Variation(nil), p.Variations...)
	return &cp, nil
}

func (r *memProductRepo) SaveVariations(_ context.Context, productID int64, variations []domain.Variation) error {
	p, ok := r.m.products[productID]
	if !ok {
		return notFound("product %d", productID)
	}
	p.Variations = append([]domain.Variation(nil), variations...)
	p.UpdatedAt = r.m.tick()
	return nil
}

type memWalletRepo struct{ m *memStore }

func (r *memWalletRepo) Credit(_ context.Context, walletID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	w, ok := r.m.wallets[walletID]
	if !ok {
		return nil, notFound("wallet %d", walletID)
	}
	w.Balance = w.Balance.Add(amount)
	w.UpdatedAt = r.m.tick()
	cp := *w
	return &cp, nil
}

type memRechargeRepo struct{ m *memStore }

func (r *memRechargeRepo) LockByPaymentID(_ context.Context, paymentID string) (*domain.WalletRecharge, error) {
	for _, rc := range r.m.recharges {
		if rc.PaymentID != "" && rc.PaymentID == paymentID {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, notFound("recharge by payment %s", paymentID)
}

func (r *memRechargeRepo) LockLatestPending(
	_ context.Context,
	walletID int64,
	amount decimal.Decimal,
) (*domain.WalletRecharge, error) {
	var found *domain.WalletRecharge
	for _, rc := range r.m.recharges {
		if rc.WalletID != walletID || rc.Status != domain.RechargeStatusPending || rc.PaymentID != "" ||
			!rc.Amount.Equal(amount) {
			continue
		}
		if found == nil || rc.CreatedAt.After(found.CreatedAt) ||
			(rc.CreatedAt.Equal(found.CreatedAt) && rc.ID > found.ID) {
			found = rc
		}
	}
	if found == nil {
		return nil, notFound("pending recharge of wallet %d", walletID)
	}
	cp := *found
	return &cp, nil
}

func (r *memRechargeRepo) AttachPayment(_ context.Context, rechargeID int64, paymentID string) error {
	for _, rc := range r.m.recharges {
		if rc.PaymentID == paymentID {
			return duplicate("recharge payment %s", paymentID)
		}
	}
	rc, ok := r.m.recharges[rechargeID]
	if !ok || rc.PaymentID != "" {
		return notFound("unlinked recharge %d", rechargeID)
	}
	rc.PaymentID = paymentID
	return nil
}

func (r *memRechargeRepo) UpdateStatus(_ context.Context, args repoargs.RechargeStatusUpdate) (bool, error) {
	rc, ok := r.m.recharges[args.ID]
	if !ok || rc.Status != args.From {
		return false, nil
	}
	rc.Status = args.To
	if args.ApprovedAt != nil {
		at := *args.ApprovedAt
		rc.ApprovedAt = &at
	}
	rc.UpdatedAt = r.m.tick()
	return true, nil
}

type memLedgerRepo struct{ m *memStore }

func (r *memLedgerRepo) Create(_ context.Context, args repoargs.WalletTransactionCreate) (*domain.WalletTransaction, error) {
	for _, e := range r.m.ledger {
		if e.ID == args.ID || (e.RechargeID != 0 && e.RechargeID == args.RechargeID && e.Kind == args.Kind) {
			return nil, duplicate("wallet transaction for recharge %d", args.RechargeID)
		}
	}
	entry := domain.WalletTransaction{
		ID:          args.ID,
		CreatedAt:   r.m.tick(),
		WalletID:    args.WalletID,
		RechargeID:  args.RechargeID,
		Kind:        args.Kind,
		Amount:      args.Amount,
		Description: args.Description,
	}
	r.m.ledger = append(r.m.ledger, entry)
	return &entry, nil
}

// staticFetcher отдает заранее заданные платежи.
type staticFetcher struct {
	payments map[string]*PaymentDetails
	err      error
}

func (f *staticFetcher) FetchPayment(_ context.Context, paymentID string) (*PaymentDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: unexpected status code 404", paymentID)
	}
	cp := *p
	return &cp, nil
}
