package service

import (
	"context"

	identitymodels "quorumid/internal/identity/models"
	"quorumid/internal/recovery/models"
	id "quorumid/pkg/domain"
)

// RecoveryStoreTx provides the transactional boundary for completing a
// recovery. Implementations may wrap a database transaction or, in-memory, a
// coarse lock with an undo journal. Either way every write staged through
// TxStores becomes visible together or not at all.
type RecoveryStoreTx interface {
	RunInTx(ctx context.Context, fn func(stores TxStores) error) error
}

// TxStores is the store access available inside a transaction.
type TxStores struct {
	Identities IdentityTxStore
	Requests   RequestStore
}

// IdentityTxStore is the identity surface the transfer needs.
type IdentityTxStore interface {
	FindByAddress(ctx context.Context, address id.Address) (*identitymodels.Identity, error)
	Exists(ctx context.Context, address id.Address) (bool, error)
	Create(ctx context.Context, identity *identitymodels.Identity) error
	Update(ctx context.Context, identity *identitymodels.Identity) error
	Delete(ctx context.Context, address id.Address) error
	SetVerified(ctx context.Context, address id.Address, verified bool) error
}

// RequestStore persists pending recovery requests.
type RequestStore interface {
	Save(ctx context.Context, request *models.Request) error
	FindByOldAddress(ctx context.Context, oldAddress id.Address) (*models.Request, error)
	Delete(ctx context.Context, oldAddress id.Address) error
}
