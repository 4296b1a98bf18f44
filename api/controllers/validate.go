package controllers

import (
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/bloomandblossom/florist-backend/pkg/errors"
)

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+field)
	}
	return id, nil
}
