package get_appointments

import (
	"strings"

	"github.com/google/uuid"
)

// ParseIDs парсит список ID через запятую, пустые элементы пропускаются
func ParseIDs(raw string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
