package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/usecase/interfaces"
)

var (
	ErrRecordNotFound      = errors.New("service record not found")
	ErrInvalidRecordID     = errors.New("invalid record id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidServiceDate  = errors.New("invalid service date")
	ErrServiceDateInFuture = errors.New("service date is in the future")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidStatus       = errors.New("invalid record status")
	ErrDescriptionTooLong  = errors.New("description too long")
	ErrServiceTypeTooLong  = errors.New("service type too long")
)

const (
	maxDescriptionLen = 1000
	maxServiceTypeLen = 120
	maxAmount         = 1_000_000
)

// RecordInput is the mutable portion of a service record accepted by Create
// and Update.
type RecordInput struct {
	CustomerID  string
	ServiceDate time.Time
	ServiceType string
	Description string
	Amount      float64
	Status      entities.RecordStatus
	PhotoPath   string
}

// Validate applies the local rules checked before any gateway call. A
// validation failure short-circuits the mutation: the gateway is never
// reached.
func (in RecordInput) Validate(now time.Time) error {
	if strings.TrimSpace(in.CustomerID) == "" {
		return ErrInvalidCustomerID
	}
	if in.ServiceDate.IsZero() {
		return ErrInvalidServiceDate
	}
	if in.ServiceDate.After(now) {
		return ErrServiceDateInFuture
	}
	if in.Amount < 0 || in.Amount > maxAmount {
		return ErrInvalidAmount
	}
	switch in.Status {
	case "", entities.RecordStatusAgendado, entities.RecordStatusConcluido, entities.RecordStatusCancelado:
	default:
		return ErrInvalidStatus
	}
	if len(in.Description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if len(in.ServiceType) > maxServiceTypeLen {
		return ErrServiceTypeTooLong
	}
	return nil
}

// RecordSnapshot is what a view consumer sees between refreshes: the current
// collection plus loading and error flags. Err set alongside a non-empty
// collection means the last refresh failed and the records are stale but
// still usable.
type RecordSnapshot struct {
	Records []entities.ServiceRecord
	Loading bool
	Err     error
}

// IRecordCacheUseCase exposes one consumer's view of the service record
// collection.

type IRecordCacheUseCase interface {
	Fetch(ctx context.Context, filter entities.RecordFilter) ([]entities.ServiceRecord, error)
	Refetch(ctx context.Context, silent bool) error
	Create(ctx context.Context, input RecordInput) (entities.ServiceRecord, error)
	Update(ctx context.Context, id string, input RecordInput) (entities.ServiceRecord, error)
	Delete(ctx context.Context, id string) error
	Snapshot() RecordSnapshot
	SetView(filter entities.RecordFilter, spec entities.RecordSort)
	View() []entities.ServiceRecord
	Maintenance(now time.Time) []entities.MaintenanceStatus
	DueMaintenance(now time.Time, categories []string) []entities.MaintenanceStatus
	Close()
}

// RecordCache holds one consumer's in-memory snapshot of the persisted
// service records. Every live instance subscribes to the shared broadcaster;
// after any successful mutation, every other instance silently re-fetches its
// own filtered view. Consistency across instances is eventual: Notify returns
// before the triggered refetches resolve.
type RecordCache struct {
	name        string
	gateway     interfaces.IServiceRecordGateway
	broadcaster interfaces.IChangeBroadcaster
	cycles      entities.CycleTable
	log         *logrus.Entry
	sub         interfaces.Subscription

	mu         sync.Mutex
	records    []entities.ServiceRecord
	fetched    bool
	inFlight   int
	lastErr    error
	lastFilter entities.RecordFilter
	viewFilter entities.RecordFilter
	viewSort   entities.RecordSort
}

var _ IRecordCacheUseCase = (*RecordCache)(nil)

// NewRecordCache builds a cache for one view area and registers it with the
// broadcaster. Callers own the teardown: Close unsubscribes.
func NewRecordCache(name string, gateway interfaces.IServiceRecordGateway, broadcaster interfaces.IChangeBroadcaster, cycles entities.CycleTable) *RecordCache {
	if cycles == nil {
		cycles = entities.DefaultCycleTable()
	}
	c := &RecordCache{
		name:        name,
		gateway:     gateway,
		broadcaster: broadcaster,
		cycles:      cycles,
		log:         logrus.WithField("cache", name),
	}
	if broadcaster != nil {
		c.sub = broadcaster.Subscribe(c.onRecordsChanged)
	}
	return c
}

// Close releases the broadcaster subscription. Symmetric with NewRecordCache;
// a cache left unclosed keeps receiving refetch signals.
func (c *RecordCache) Close() {
	if c.sub != nil {
		c.sub.Unsubscribe()
	}
}

// Fetch replaces the snapshot with the gateway's filtered collection. On
// failure the previous snapshot is retained (stale-but-available) and the
// error flag is set; only a first-ever fetch failure leaves the snapshot
// empty. Overlapping fetches are accepted: whichever resolves last writes
// the snapshot.
func (c *RecordCache) Fetch(ctx context.Context, filter entities.RecordFilter) ([]entities.ServiceRecord, error) {
	return c.doFetch(ctx, filter, false)
}

// Refetch re-runs the last fetch with its remembered filter. silent marks
// broadcaster-triggered refreshes, which must not produce user-facing noise;
// it only affects logging, never the snapshot semantics.
func (c *RecordCache) Refetch(ctx context.Context, silent bool) error {
	c.mu.Lock()
	filter := c.lastFilter
	c.mu.Unlock()
	_, err := c.doFetch(ctx, filter, silent)
	return err
}

func (c *RecordCache) doFetch(ctx context.Context, filter entities.RecordFilter, silent bool) ([]entities.ServiceRecord, error) {
	c.mu.Lock()
	c.inFlight++
	c.lastFilter = filter
	c.mu.Unlock()

	records, err := c.gateway.List(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	if err != nil {
		c.lastErr = err
		if !c.fetched {
			c.records = nil
		}
		if silent {
			c.log.WithError(err).Debug("silent refetch failed, keeping stale snapshot")
		} else {
			c.log.WithError(err).Warn("fetch failed, keeping stale snapshot")
		}
		return nil, err
	}

	c.records = records
	c.fetched = true
	c.lastErr = nil
	if silent {
		c.log.WithField("count", len(records)).Debug("silent refetch settled")
	} else {
		c.log.WithField("count", len(records)).Info("snapshot refreshed")
	}
	return copyRecords(records), nil
}

// Create validates locally, persists through the gateway, re-fetches this
// instance's own snapshot and then notifies every other live cache.
func (c *RecordCache) Create(ctx context.Context, input RecordInput) (entities.ServiceRecord, error) {
	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return entities.ServiceRecord{}, err
	}

	created, err := c.gateway.Create(ctx, c.toRecord(uuid.NewString(), input, now, now))
	if err != nil {
		c.setErr(err)
		return entities.ServiceRecord{}, err
	}

	c.afterMutation(ctx, "create")
	return created, nil
}

func (c *RecordCache) Update(ctx context.Context, id string, input RecordInput) (entities.ServiceRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRecord{}, ErrInvalidRecordID
	}
	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return entities.ServiceRecord{}, err
	}

	updated, err := c.gateway.Update(ctx, id, c.toRecord(id, input, time.Time{}, now))
	if err != nil {
		c.setErr(err)
		return entities.ServiceRecord{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRecord{}, ErrRecordNotFound
	}

	c.afterMutation(ctx, "update")
	return updated, nil
}

func (c *RecordCache) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}

	deleted, err := c.gateway.Delete(ctx, id)
	if err != nil {
		c.setErr(err)
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}

	c.afterMutation(ctx, "delete")
	return nil
}

// afterMutation implements the consistency contract: canonical re-fetch of
// this instance first, then a payload-free fan-out so every other instance
// re-fetches its own view. A refetch failure does not fail the mutation; the
// error lands on the cache's error flag like any other failed refresh.
func (c *RecordCache) afterMutation(ctx context.Context, op string) {
	if err := c.Refetch(ctx, false); err != nil {
		c.log.WithError(err).WithField("op", op).Warn("post-mutation refetch failed")
	}
	if c.broadcaster != nil {
		c.broadcaster.Notify()
	}
}

// onRecordsChanged is the broadcaster callback. The refetch runs outside the
// notifier's call stack; subscribers can be signaled several times in quick
// succession and each refetch is idempotent on the snapshot.
func (c *RecordCache) onRecordsChanged() {
	go func() {
		// Error already recorded on the cache flag; nothing else to do here.
		_ = c.Refetch(context.Background(), true)
	}()
}

// Snapshot returns the current collection plus loading/error flags. The
// returned slice is a copy; consumers cannot mutate cache state through it.
func (c *RecordCache) Snapshot() RecordSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return RecordSnapshot{
		Records: copyRecords(c.records),
		Loading: c.inFlight > 0,
		Err:     c.lastErr,
	}
}

// SetView installs the consumer-side filter and sort applied on top of the
// snapshot by View.
func (c *RecordCache) SetView(filter entities.RecordFilter, spec entities.RecordSort) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewFilter = filter
	c.viewSort = spec
}

// View derives the ordered visible slice from the current snapshot.
func (c *RecordCache) View() []entities.ServiceRecord {
	c.mu.Lock()
	records := copyRecords(c.records)
	filter := c.viewFilter
	spec := c.viewSort
	c.mu.Unlock()
	return ApplyPipeline(records, filter, spec)
}

// Maintenance derives the ranked maintenance statuses from the current view.
func (c *RecordCache) Maintenance(now time.Time) []entities.MaintenanceStatus {
	return PredictMaintenance(c.View(), c.cycles, now)
}

// DueMaintenance derives the "due only" variant, optionally restricted to a
// category subset.
func (c *RecordCache) DueMaintenance(now time.Time, categories []string) []entities.MaintenanceStatus {
	return PredictDueMaintenance(c.View(), c.cycles, now, categories)
}

func (c *RecordCache) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}

func (c *RecordCache) toRecord(id string, input RecordInput, createdAt, updatedAt time.Time) entities.ServiceRecord {
	return entities.ServiceRecord{
		ID:          id,
		CustomerID:  strings.TrimSpace(input.CustomerID),
		ServiceDate: input.ServiceDate,
		ServiceType: strings.TrimSpace(input.ServiceType),
		Description: input.Description,
		Amount:      input.Amount,
		Status:      input.Status,
		PhotoPath:   input.PhotoPath,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func copyRecords(records []entities.ServiceRecord) []entities.ServiceRecord {
	if records == nil {
		return nil
	}
	out := make([]entities.ServiceRecord, len(records))
	copy(out, records)
	return out
}
