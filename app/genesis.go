package app

import (
	"encoding/json"
	"os"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Genesis file format, designed to be overlayed with the host genesis
type Genesis struct {
	ChainID    string         `json:"chain_id"`
	AppOptions dorium.Options `json:"app_options"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := json.Unmarshal(bytes, &gen); err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one
// function
func ChainInitializers(inis ...dorium.Initializer) dorium.Initializer {
	return chainInitializer{inis}
}

type chainInitializer struct {
	inis []dorium.Initializer
}

// FromGenesis will pass opts to all initializers in the list, aborting
// at the first error.
func (c chainInitializer) FromGenesis(opts dorium.Options, db dorium.KVStore) error {
	for _, i := range c.inis {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
