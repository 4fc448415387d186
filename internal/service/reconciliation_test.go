package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-payhook/internal/domain"
)

// ReconciliationTestSuite прогоняет сверку целиком (PaymentService -> Sale/Recharge/Inventory) поверх
// хранилища в памяти.
type ReconciliationTestSuite struct {
	suite.Suite
	store    *memStore
	fetcher  *staticFetcher
	services *AppServices
}

func TestReconciliationSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationTestSuite))
}

func (s *ReconciliationTestSuite) SetupTest() {
	s.store = newMemStore()
	s.fetcher = &staticFetcher{payments: make(map[string]*PaymentDetails)}
	s.services = Factory(&memUOW{store: s.store}, s.fetcher, 0, newTestLogger())
}

func (s *ReconciliationTestSuite) paymentID() string {
	return gofakeit.Numerify("##########")
}

func (s *ReconciliationTestSuite) addSale(id int64, paymentID string, items ...domain.SaleItem) {
	s.store.sales[id] = &domain.Sale{
		ID:            id,
		PaymentID:     paymentID,
		PaymentStatus: domain.PaymentStatusPending,
		Items:         items,
	}
}

func (s *ReconciliationTestSuite) addProduct(id int64, variations ...domain.Variation) {
	s.store.products[id] = &domain.Product{ID: id, Variations: variations}
}

func (s *ReconciliationTestSuite) addWallet(id int64, balance string) {
	b := decimal.RequireFromString(balance)
	s.store.wallets[id] = &domain.Wallet{ID: id, OwnerID: gofakeit.UUID(), Balance: b}
	if b.IsPositive() {
		// баланс, появившийся раньше, тоже отражен в журнале.
		s.store.ledger = append(s.store.ledger, domain.WalletTransaction{
			ID:       uuid.New(),
			WalletID: id,
			Kind:     domain.TransactionKindRechargeCredit,
			Amount:   b,
		})
	}
}

func (s *ReconciliationTestSuite) addRecharge(id, walletID int64, amount string, paymentID string) {
	s.store.recharges[id] = &domain.WalletRecharge{
		ID:        id,
		CreatedAt: s.store.tick(),
		WalletID:  walletID,
		Amount:    decimal.RequireFromString(amount),
		PaymentID: paymentID,
		Status:    domain.RechargeStatusPending,
	}
}

func (s *ReconciliationTestSuite) addPayment(id string, status domain.PaymentStatusType, amount string, meta map[string]any) {
	s.fetcher.payments[id] = &PaymentDetails{
		PaymentID:       id,
		Status:          status,
		StatusDetail:    "accredited",
		PaymentMethodID: "pix",
		Amount:          decimal.RequireFromString(amount),
		Metadata:        meta,
	}
}

func rechargeMeta(walletID int64) map[string]any {
	return map[string]any{MetadataRechargeKey: true, MetadataWalletKey: walletID}
}

func (s *ReconciliationTestSuite) TestFirstAndDuplicateApproval() {
	pid := s.paymentID()
	s.addProduct(1, domain.Variation{Size: "M", SKU: "P-M", Quantity: 5, Available: true})
	s.addSale(10, pid, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 2})
	s.addPayment(pid, domain.PaymentStatusApproved, "80.00", nil)

	first, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(FlowOrder, first.Flow)
	s.Equal(domain.TransitionApply, first.Sale.Decision)
	s.Equal(domain.PaymentStatusApproved, s.store.sale(10).PaymentStatus)
	s.Equal(domain.Variation{Size: "M", SKU: "P-M", Quantity: 3, Available: true}, s.store.variation(1, 0))

	second, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(domain.TransitionNoop, second.Sale.Decision)
	s.Equal(domain.PaymentStatusApproved, s.store.sale(10).PaymentStatus)
	s.Equal(3, s.store.variation(1, 0).Quantity)
}

func (s *ReconciliationTestSuite) TestConcurrentDuplicateSettlement() {
	pid := s.paymentID()
	s.addProduct(1, domain.Variation{Size: "M", SKU: "P-M", Quantity: 50, Available: true})
	s.addSale(10, pid, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 4})
	s.addPayment(pid, domain.PaymentStatusApproved, "80.00", nil)

	const deliveries = 20
	var wg sync.WaitGroup
	errs := make(chan error, deliveries)
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}
	s.Equal(46, s.store.variation(1, 0).Quantity)
}

func (s *ReconciliationTestSuite) TestOversellClamp() {
	pid := s.paymentID()
	s.addProduct(1,
		domain.Variation{Size: "S", SKU: "P-S", Quantity: 4, Available: true},
		domain.Variation{Size: "M", SKU: "P-M", Quantity: 1, Available: true},
	)
	s.addSale(10, pid, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 3})
	s.addPayment(pid, domain.PaymentStatusApproved, "80.00", nil)

	_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)

	s.Equal(domain.Variation{Size: "M", SKU: "P-M", Quantity: 0, Available: false}, s.store.variation(1, 1))
	s.Equal(domain.Variation{Size: "S", SKU: "P-S", Quantity: 4, Available: true}, s.store.variation(1, 0))
}

func (s *ReconciliationTestSuite) TestPendingThenApproved() {
	pid := s.paymentID()
	s.addProduct(1, domain.Variation{Size: "M", SKU: "P-M", Quantity: 5, Available: true})
	s.addSale(10, pid, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 1})

	s.addPayment(pid, domain.PaymentStatusInProcess, "80.00", nil)
	_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusInProcess, s.store.sale(10).PaymentStatus)
	s.Equal(5, s.store.variation(1, 0).Quantity)

	s.addPayment(pid, domain.PaymentStatusApproved, "80.00", nil)
	_, err = s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(4, s.store.variation(1, 0).Quantity)

	// запоздавшее in_process после approved ничего не меняет.
	s.addPayment(pid, domain.PaymentStatusInProcess, "80.00", nil)
	res, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(domain.TransitionNoop, res.Sale.Decision)
	s.Equal(domain.PaymentStatusApproved, s.store.sale(10).PaymentStatus)
}

func (s *ReconciliationTestSuite) TestRechargeApproval() {
	pid := s.paymentID()
	s.addWallet(3, "50.00")
	s.addRecharge(7, 3, "100.00", "")
	s.addPayment(pid, domain.PaymentStatusApproved, "100.00", rechargeMeta(3))

	res, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.Equal(FlowRecharge, res.Flow)
	s.True(res.Recharge.Linked)

	recharge := s.store.recharge(7)
	s.Equal(domain.RechargeStatusApproved, recharge.Status)
	s.Equal(pid, recharge.PaymentID)
	s.NotNil(recharge.ApprovedAt)

	s.Equal("150", s.store.wallet(3).Balance.String())

	var fromRecharge []domain.WalletTransaction
	for _, e := range s.store.ledgerEntries(3) {
		if e.RechargeID == 7 {
			fromRecharge = append(fromRecharge, e)
		}
	}
	s.Require().Len(fromRecharge, 1)
	s.Equal("100", fromRecharge[0].Amount.String())
	s.True(s.store.ledgerSum(3).Equal(s.store.wallet(3).Balance))
}

func (s *ReconciliationTestSuite) TestConcurrentDuplicateRecharge() {
	pid := s.paymentID()
	s.addWallet(3, "0")
	s.addRecharge(7, 3, "25.50", "")
	s.addPayment(pid, domain.PaymentStatusApproved, "25.50", rechargeMeta(3))

	const deliveries = 20
	var wg sync.WaitGroup
	errs := make(chan error, deliveries)
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}
	s.Equal("25.5", s.store.wallet(3).Balance.String())
	s.Len(s.store.ledgerEntries(3), 1)
	s.True(s.store.ledgerSum(3).Equal(s.store.wallet(3).Balance))
}

func (s *ReconciliationTestSuite) TestLedgerConsistencyAcrossRecharges() {
	s.addWallet(3, "0")
	amounts := []string{"10.00", "20.00", "10.00", "5.25"}
	statuses := []domain.PaymentStatusType{
		domain.PaymentStatusApproved,
		domain.PaymentStatusRejected,
		domain.PaymentStatusApproved,
		domain.PaymentStatusInProcess,
	}

	for i, amount := range amounts {
		rechargeID := int64(i + 1)
		s.addRecharge(rechargeID, 3, amount, "")
		pid := s.paymentID()
		s.addPayment(pid, statuses[i], amount, rechargeMeta(3))

		_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
		s.Require().NoError(err)
		s.True(s.store.ledgerSum(3).Equal(s.store.wallet(3).Balance), "ledger diverged after recharge %d", rechargeID)
	}

	s.Equal("20", s.store.wallet(3).Balance.String())
	s.Equal(domain.RechargeStatusRejected, s.store.recharge(2).Status)
	s.Equal(domain.RechargeStatusPending, s.store.recharge(4).Status)
	// in_process тоже привязывает платеж к заявке.
	s.NotEmpty(s.store.recharge(4).PaymentID)
}

func (s *ReconciliationTestSuite) TestSameAmountPicksMostRecent() {
	pid := s.paymentID()
	s.addWallet(3, "0")
	s.addRecharge(1, 3, "40.00", "")
	s.addRecharge(2, 3, "40.00", "")
	s.addPayment(pid, domain.PaymentStatusApproved, "40.00", rechargeMeta(3))

	_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)

	s.Equal(domain.RechargeStatusApproved, s.store.recharge(2).Status)
	s.Equal(domain.RechargeStatusPending, s.store.recharge(1).Status)
	s.Empty(s.store.recharge(1).PaymentID)
}

func (s *ReconciliationTestSuite) TestRoutingCorrectness() {
	orderPID := s.paymentID()
	rechargePID := s.paymentID()

	s.addProduct(1, domain.Variation{Size: "M", SKU: "P-M", Quantity: 5, Available: true})
	s.addSale(10, orderPID, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 1})
	s.addWallet(3, "0")
	s.addRecharge(7, 3, "30.00", "")

	// платеж заказа с той же суммой и кошельком в metadata, но без признака пополнения.
	s.addPayment(orderPID, domain.PaymentStatusApproved, "30.00", map[string]any{MetadataWalletKey: int64(3)})
	res, err := s.services.PaymentService.Reconcile(s.T().Context(), orderPID)
	s.Require().NoError(err)
	s.Equal(FlowOrder, res.Flow)
	s.Equal(domain.RechargeStatusPending, s.store.recharge(7).Status)
	s.True(s.store.wallet(3).Balance.IsZero())

	s.addPayment(rechargePID, domain.PaymentStatusApproved, "30.00", rechargeMeta(3))
	res, err = s.services.PaymentService.Reconcile(s.T().Context(), rechargePID)
	s.Require().NoError(err)
	s.Equal(FlowRecharge, res.Flow)
	s.Equal(4, s.store.variation(1, 0).Quantity)
	s.Equal(orderPID, s.store.sale(10).PaymentID)
}

func (s *ReconciliationTestSuite) TestSaleLinkedByExternalReference() {
	pid := s.paymentID()
	s.addProduct(1, domain.Variation{Size: "L", SKU: "P-L", Quantity: 2, Available: true})
	s.addSale(10, "", domain.SaleItem{ProductID: 1, Size: "L", SKU: "P-L", Quantity: 1})
	s.addPayment(pid, domain.PaymentStatusApproved, "80.00", nil)
	s.fetcher.payments[pid].ExternalReference = "10"

	res, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().NoError(err)
	s.True(res.Sale.Linked)
	s.Equal(pid, s.store.sale(10).PaymentID)
	s.Equal(1, s.store.variation(1, 0).Quantity)
}

func (s *ReconciliationTestSuite) TestUnmatchedPayment() {
	orderPID := s.paymentID()
	rechargePID := s.paymentID()
	s.addWallet(3, "10.00")
	s.addRecharge(7, 3, "30.00", "")

	s.addPayment(orderPID, domain.PaymentStatusApproved, "30.00", nil)
	_, err := s.services.PaymentService.Reconcile(s.T().Context(), orderPID)
	s.Require().ErrorIs(err, domain.ErrSaleNotFound)

	s.addPayment(rechargePID, domain.PaymentStatusApproved, "31.00", rechargeMeta(3))
	_, err = s.services.PaymentService.Reconcile(s.T().Context(), rechargePID)
	s.Require().ErrorIs(err, domain.ErrRechargeNotFound)

	s.Equal("10", s.store.wallet(3).Balance.String())
	s.Empty(s.store.recharge(7).PaymentID)
}

func (s *ReconciliationTestSuite) TestFetchFailureMutatesNothing() {
	pid := s.paymentID()
	s.addProduct(1, domain.Variation{Size: "M", SKU: "P-M", Quantity: 5, Available: true})
	s.addSale(10, pid, domain.SaleItem{ProductID: 1, Size: "M", SKU: "P-M", Quantity: 2})
	s.fetcher.err = errors.New("context deadline exceeded")

	_, err := s.services.PaymentService.Reconcile(s.T().Context(), pid)
	s.Require().ErrorIs(err, domain.ErrIntegration)
	s.Equal(domain.PaymentStatusPending, s.store.sale(10).PaymentStatus)
	s.Equal(5, s.store.variation(1, 0).Quantity)
}
