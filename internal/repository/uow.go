package repository

import (
	"context"

	"gorm.io/gorm"
)

// ==================== 事务支持 ====================

// LedgerUnitOfWork 余额/提现工作单元（事务）
// 提现申请的「扫入流水 + 创建提现单」必须落在同一事务里
type LedgerUnitOfWork struct {
	db          *gorm.DB
	Balances    SellerBalanceRepository
	Withdrawals SellerWithdrawalRepository
}

// NewLedgerUnitOfWork 创建工作单元
func NewLedgerUnitOfWork(db *gorm.DB) *LedgerUnitOfWork {
	return &LedgerUnitOfWork{
		db:          db,
		Balances:    NewSellerBalanceRepository(db),
		Withdrawals: NewSellerWithdrawalRepository(db),
	}
}

// Transaction 执行事务
func (u *LedgerUnitOfWork) Transaction(ctx context.Context, fn func(uow *LedgerUnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txUow := &LedgerUnitOfWork{
			db:          tx,
			Balances:    NewSellerBalanceRepository(tx),
			Withdrawals: NewSellerWithdrawalRepository(tx),
		}
		return fn(txUow)
	})
}

// OrderUnitOfWork 下单工作单元（事务）
// 「订单落库 + 扣减库存 + 生成余额流水」必须落在同一事务里，
// 任何一步失败即整体回滚，不留下半截订单
type OrderUnitOfWork struct {
	db       *gorm.DB
	Orders   OrderRepository
	Products ProductRepository
	Balances SellerBalanceRepository
}

// NewOrderUnitOfWork 创建工作单元
func NewOrderUnitOfWork(db *gorm.DB) *OrderUnitOfWork {
	return &OrderUnitOfWork{
		db:       db,
		Orders:   NewOrderRepository(db),
		Products: NewProductRepository(db),
		Balances: NewSellerBalanceRepository(db),
	}
}

// Transaction 执行事务
func (u *OrderUnitOfWork) Transaction(ctx context.Context, fn func(uow *OrderUnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txUow := &OrderUnitOfWork{
			db:       tx,
			Orders:   NewOrderRepository(tx),
			Products: NewProductRepository(tx),
			Balances: NewSellerBalanceRepository(tx),
		}
		return fn(txUow)
	})
}

// AccountUnitOfWork 店铺/收款账户工作单元（事务）
// 「同一卖家最多一个启用中的资源」检查和落库必须落在同一事务里
type AccountUnitOfWork struct {
	db           *gorm.DB
	Shops        ShopRepository
	BankAccounts BankAccountRepository
}

// NewAccountUnitOfWork 创建工作单元
func NewAccountUnitOfWork(db *gorm.DB) *AccountUnitOfWork {
	return &AccountUnitOfWork{
		db:           db,
		Shops:        NewShopRepository(db),
		BankAccounts: NewBankAccountRepository(db),
	}
}

// Transaction 执行事务
func (u *AccountUnitOfWork) Transaction(ctx context.Context, fn func(uow *AccountUnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txUow := &AccountUnitOfWork{
			db:           tx,
			Shops:        NewShopRepository(tx),
			BankAccounts: NewBankAccountRepository(tx),
		}
		return fn(txUow)
	})
}
