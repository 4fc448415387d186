package repoargs

type RepositoryName string

const (
	SaleRepoName              RepositoryName = "sale"
	ProductRepoName           RepositoryName = "product"
	WalletRepoName            RepositoryName = "wallet"
	WalletRechargeRepoName    RepositoryName = "wallet_recharge"
	WalletTransactionRepoName RepositoryName = "wallet_transaction"
)
