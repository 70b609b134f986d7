package escrow

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
)

// Querier answers read only questions about stored escrows. Decided
// escrows are retained and show up in all queries with their final
// status.
type Querier struct {
	bucket orm.Bucket
}

// NewQuerier returns a querier over the escrow bucket.
func NewQuerier() Querier {
	return Querier{bucket: NewBucket()}
}

// GetDetail loads a single escrow by id. It returns ErrNotFound when
// the id was never used.
func (q Querier) GetDetail(db dorium.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	var escrow Escrow
	if err := q.bucket.Get(db, id, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// ListIDs returns the ids of all escrows in ascending byte order.
func (q Querier) ListIDs(db dorium.ReadOnlyKVStore) [][]byte {
	return q.bucket.Keys(db)
}

// ListDetails returns all escrows ordered by id.
func (q Querier) ListDetails(db dorium.ReadOnlyKVStore) ([]*Escrow, error) {
	var res []*Escrow
	err := q.bucket.Visit(db, func(key, value []byte) error {
		var escrow Escrow
		if err := q.bucket.Parse(value, &escrow); err != nil {
			return errors.Wrapf(err, "escrow %X", key)
		}
		res = append(res, &escrow)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr dorium.QueryRouter) {
	qr.Register("escrows", rawQuerier{bucket: NewBucket()})
}

// rawQuerier exposes the stored bytes for host level queries.
type rawQuerier struct {
	bucket orm.Bucket
}

var _ dorium.QueryHandler = rawQuerier{}

func (q rawQuerier) Query(db dorium.ReadOnlyKVStore, mod string, data []byte) ([]dorium.Model, error) {
	switch mod {
	case dorium.KeyQueryMod:
		key := q.bucket.DBKey(data)
		value := db.Get(key)
		if value == nil {
			return nil, nil
		}
		return []dorium.Model{{Key: key, Value: value}}, nil
	case dorium.PrefixQueryMod:
		// data scopes the result set, nil means the whole bucket
		var models []dorium.Model
		err := q.bucket.VisitPrefix(db, data, func(key, value []byte) error {
			models = append(models, dorium.Model{
				Key:   q.bucket.DBKey(key),
				Value: value,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return models, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
