package jsonplaceholder

import (
	"fmt"

	"placeholder/app/requestapi"
)

// shaped is a model that can check the minimal shape of a decoded value.
type shaped[T any] interface {
	*T
	ValidateShape() error
}

func decodeOne[T any, P shaped[T]](resp *requestapi.Response) (*T, error) {
	var v T
	if err := resp.Decode(&v); err != nil {
		return nil, err
	}
	if err := P(&v).ValidateShape(); err != nil {
		return nil, resp.DecodeError(err)
	}
	return &v, nil
}

func decodeList[T any, P shaped[T]](resp *requestapi.Response) ([]T, error) {
	var vs []T
	if err := resp.Decode(&vs); err != nil {
		return nil, err
	}
	if vs == nil {
		vs = []T{}
	}
	for i := range vs {
		if err := P(&vs[i]).ValidateShape(); err != nil {
			return nil, resp.DecodeError(fmt.Errorf("item %d: %w", i, err))
		}
	}
	return vs, nil
}
