package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-payhook/pkg/uow"
)

type AppServices struct {
	PaymentService   *PaymentService
	SaleService      *SaleService
	RechargeService  *RechargeService
	InventoryService *InventoryService
}

func Factory(unitOfWork uow.UOW, fetcher PaymentFetcher, fetchTimeout time.Duration, l *logrus.Logger) *AppServices {
	inventoryService := NewInventoryService(l)
	saleService := NewSaleService(unitOfWork, inventoryService, l)
	rechargeService := NewRechargeService(unitOfWork, l)

	paymentService := NewPaymentService(fetcher, saleService, rechargeService, l).
		SetFetchTimeout(fetchTimeout)

	return &AppServices{
		PaymentService:   paymentService,
		SaleService:      saleService,
		RechargeService:  rechargeService,
		InventoryService: inventoryService,
	}
}
