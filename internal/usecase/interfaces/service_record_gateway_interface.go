package interfaces

import (
	"context"

	"casa_em_dia/internal/domain/entities"
)

// IServiceRecordGateway abstracts persistence for ServiceRecord.
//
// Contract notes:
//   - List returns the full filtered collection; callers replace their
//     snapshot with it wholesale.
//   - Update returns a zero-valued record when the id does not exist
//     (zero ID means "not found"); Delete reports the same through its
//     boolean result.

type IServiceRecordGateway interface {
	List(ctx context.Context, filter entities.RecordFilter) ([]entities.ServiceRecord, error)
	Create(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	Update(ctx context.Context, id string, r entities.ServiceRecord) (entities.ServiceRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}
