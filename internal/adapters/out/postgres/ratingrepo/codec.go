package ratingrepo

import (
	"encoding/json"

	"fulfillment/internal/core/domain/model/rating"
)

// Encode serializes a result in its row form, for stores outside PostgreSQL.
func Encode(r *rating.ShoppingResult) ([]byte, error) {
	dto, err := fromDomain(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dto)
}

// Decode restores a result written by Encode.
func Decode(data []byte) (*rating.ShoppingResult, error) {
	var dto ShoppingResultDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}
