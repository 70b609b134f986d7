package exchange

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
)

// Querier answers read only questions about the exchange.
type Querier struct {
	bucket orm.Bucket
}

// NewQuerier returns a querier over the exchange state.
func NewQuerier() Querier {
	return Querier{bucket: NewBucket()}
}

// GetExchangedTotal returns the total amount of sobz ever swapped for
// value tokens.
func (q Querier) GetExchangedTotal(db dorium.ReadOnlyKVStore) (int64, error) {
	state, err := loadState(q.bucket, db)
	if err != nil {
		return 0, err
	}
	return state.Exchanged, nil
}

// GetState returns the full exchange configuration.
func (q Querier) GetState(db dorium.ReadOnlyKVStore) (*State, error) {
	return loadState(q.bucket, db)
}

// RegisterQuery will register this bucket as "/exchange"
func RegisterQuery(qr dorium.QueryRouter) {
	qr.Register("exchange", rawQuerier{bucket: NewBucket()})
}

// rawQuerier exposes the stored bytes for host level queries.
type rawQuerier struct {
	bucket orm.Bucket
}

var _ dorium.QueryHandler = rawQuerier{}

func (q rawQuerier) Query(db dorium.ReadOnlyKVStore, mod string, data []byte) ([]dorium.Model, error) {
	switch mod {
	case dorium.KeyQueryMod:
		key := q.bucket.DBKey(stateKey)
		value := db.Get(key)
		if value == nil {
			return nil, nil
		}
		return []dorium.Model{{Key: key, Value: value}}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
