package token

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ custos.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from the genesis and
// save it in the database.
//
//   "token": [
//     {"address": "<hex>", "owner": "<hex>", "mint": "CUS", "balance": 1000}
//   ]
func (*Initializer) FromGenesis(opts custos.Options, db custos.KVStore) error {
	accounts := []struct {
		Address custos.Address `json:"address"`
		Owner   custos.Address `json:"owner"`
		Mint    string         `json:"mint"`
		Balance uint64         `json:"balance"`
	}{}
	if err := opts.ReadOptions("token", &accounts); err != nil {
		return errors.Wrap(err, "cannot read token genesis")
	}

	ctrl := NewController()
	for i, a := range accounts {
		if err := ctrl.CreateAccount(db, a.Address, a.Owner, a.Mint); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if a.Balance == 0 {
			continue
		}
		if err := ctrl.Issue(db, a.Address, a.Balance); err != nil {
			return errors.Wrapf(err, "issue #%d", i)
		}
	}
	return nil
}
