package recipe

import (
	"AI-Recipe-Backend/domain"
	"crypto/sha256"

	"github.com/google/uuid"
)

// AiRecipeID derives a deterministic pseudo-id for a recipe that has not been
// persisted yet: the SHA-256 digest of the name, laid out as a UUID. The same
// name always maps to the same id, so repeated views accumulate in one bucket.
func AiRecipeID(recipeName string) uuid.UUID {
	sum := sha256.Sum256([]byte(recipeName))
	id, _ := uuid.FromBytes(sum[:16])
	return id
}

func ParseRecipeID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, domain.ErrParseUUID
	}
	return parsed, nil
}
