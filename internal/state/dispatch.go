package state

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/forgeline/forgetop/internal/forgeline"
	"github.com/forgeline/forgetop/internal/resource"
)

// Fallback display messages, used only when neither the server nor the
// transport produced one.
const (
	fallbackStatus     = "Failed to reach Forgeline server"
	fallbackBoms       = "Failed to load BOMs"
	fallbackBomDetail  = "Failed to load BOM details"
	fallbackReadiness  = "Failed to load production readiness"
	fallbackAllocs     = "Failed to load inventory allocations"
	fallbackAllocate   = "Allocation request failed"
	fallbackOrders     = "Failed to load orders"
	fallbackConfirm    = "Fulfillment confirmation failed"
	fallbackPricing    = "Failed to load pricing records"
	fallbackProducts   = "Failed to load product catalog"
	fallbackCompliance = "Failed to load compliance records"
)

// Dispatcher binds the Forgeline client to the store's containers: one
// method per fetch operation. Every dispatch runs Begin, performs exactly
// one API call, and ends in exactly one Resolve or Fail. There are no
// retries here; the only recovery path is the user re-triggering the
// originating action.
type Dispatcher struct {
	client forgeline.API
	store  *Store
	log    logrus.FieldLogger

	// Last list queries, kept so a successful mutation can reload the
	// affected list with the parameters currently on screen.
	mu         sync.Mutex
	allocQuery forgeline.ListQuery
	orderQuery forgeline.ListQuery
}

// NewDispatcher builds a dispatcher over the given client and store.
func NewDispatcher(client forgeline.API, store *Store, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{client: client, store: store, log: log}
}

// RefreshStatus fetches server status for the header.
func (d *Dispatcher) RefreshStatus(ctx context.Context) error {
	seq := d.store.Status.Begin()
	status, err := d.client.FetchStatus(ctx)
	if err != nil {
		d.fail(d.store.Status.Fail(seq, normalize(err, fallbackStatus)), "status", err)
		return err
	}
	d.store.Status.Resolve(seq, *status)
	return nil
}

// LoadBoms fetches one page of the BOM catalog.
func (d *Dispatcher) LoadBoms(ctx context.Context, query forgeline.ListQuery) error {
	seq := d.store.Boms.Begin()
	items, page, err := d.client.ListBoms(ctx, query)
	if err != nil {
		d.fail(d.store.Boms.Fail(seq, normalize(err, fallbackBoms)), "boms", err)
		return err
	}
	d.store.Boms.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// LoadBomDetail fetches and flattens one BOM's detail payload.
func (d *Dispatcher) LoadBomDetail(ctx context.Context, bomID string) error {
	seq := d.store.BomDetail.Begin()
	detail, err := d.client.FetchBomDetail(ctx, bomID)
	if err != nil {
		d.fail(d.store.BomDetail.Fail(seq, normalize(err, fallbackBomDetail)), "bom detail", err)
		return err
	}
	d.store.BomDetail.Resolve(seq, *detail)
	return nil
}

// LoadBomReadiness fetches the readiness verdict for one BOM. Derived
// fields (bottleneck count, readiness flag) are computed here, at
// fulfillment time, and cached with the data.
func (d *Dispatcher) LoadBomReadiness(ctx context.Context, bomID string) error {
	seq := d.store.Readiness.Begin()
	readiness, err := d.client.FetchBomReadiness(ctx, bomID)
	if err != nil {
		d.fail(d.store.Readiness.Fail(seq, normalize(err, fallbackReadiness)), "readiness", err)
		return err
	}
	d.store.Readiness.Resolve(seq, NewReadinessView(*readiness))
	return nil
}

// LoadAllocations fetches one page of inventory allocations.
func (d *Dispatcher) LoadAllocations(ctx context.Context, query forgeline.ListQuery) error {
	d.mu.Lock()
	d.allocQuery = query
	d.mu.Unlock()

	seq := d.store.Allocations.Begin()
	items, page, err := d.client.ListAllocations(ctx, query)
	if err != nil {
		d.fail(d.store.Allocations.Fail(seq, normalize(err, fallbackAllocs)), "allocations", err)
		return err
	}
	d.store.Allocations.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// Allocate runs stock allocation for an order, then reloads the allocation
// list with the query currently on screen. A failure lands in the
// allocation container's error field.
func (d *Dispatcher) Allocate(ctx context.Context, orderID string, req forgeline.AllocateRequest) (*forgeline.AllocateResult, error) {
	seq := d.store.Allocations.Begin()
	result, err := d.client.AllocateOrder(ctx, orderID, req)
	if err != nil {
		d.fail(d.store.Allocations.Fail(seq, normalize(err, fallbackAllocate)), "allocate", err)
		return nil, err
	}

	d.mu.Lock()
	query := d.allocQuery
	d.mu.Unlock()
	// The reload supersedes the mutation's dispatch token.
	if err := d.LoadAllocations(ctx, query); err != nil {
		return result, err
	}
	return result, nil
}

// LoadOrders fetches one page of outbound orders.
func (d *Dispatcher) LoadOrders(ctx context.Context, query forgeline.ListQuery) error {
	d.mu.Lock()
	d.orderQuery = query
	d.mu.Unlock()

	seq := d.store.Orders.Begin()
	items, page, err := d.client.ListOrders(ctx, query)
	if err != nil {
		d.fail(d.store.Orders.Fail(seq, normalize(err, fallbackOrders)), "orders", err)
		return err
	}
	d.store.Orders.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// ConfirmFulfillment posts a fulfillment confirmation, then reloads the
// order list.
func (d *Dispatcher) ConfirmFulfillment(ctx context.Context, orderID string, req forgeline.ConfirmRequest) (*forgeline.Order, error) {
	seq := d.store.Orders.Begin()
	updated, err := d.client.ConfirmFulfillment(ctx, orderID, req)
	if err != nil {
		d.fail(d.store.Orders.Fail(seq, normalize(err, fallbackConfirm)), "confirm", err)
		return nil, err
	}

	d.mu.Lock()
	query := d.orderQuery
	d.mu.Unlock()
	if err := d.LoadOrders(ctx, query); err != nil {
		return updated, err
	}
	return updated, nil
}

// LoadPricing fetches one page of pricing records.
func (d *Dispatcher) LoadPricing(ctx context.Context, query forgeline.ListQuery) error {
	seq := d.store.Pricing.Begin()
	items, page, err := d.client.ListPricing(ctx, query)
	if err != nil {
		d.fail(d.store.Pricing.Fail(seq, normalize(err, fallbackPricing)), "pricing", err)
		return err
	}
	d.store.Pricing.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// LoadProducts fetches one page of the product/SKU catalog.
func (d *Dispatcher) LoadProducts(ctx context.Context, query forgeline.ListQuery) error {
	seq := d.store.Products.Begin()
	items, page, err := d.client.ListProducts(ctx, query)
	if err != nil {
		d.fail(d.store.Products.Fail(seq, normalize(err, fallbackProducts)), "products", err)
		return err
	}
	d.store.Products.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// LoadCompliance fetches one page of compliance records.
func (d *Dispatcher) LoadCompliance(ctx context.Context, query forgeline.ListQuery) error {
	seq := d.store.Compliance.Begin()
	items, page, err := d.client.ListComplianceRecords(ctx, query)
	if err != nil {
		d.fail(d.store.Compliance.Fail(seq, normalize(err, fallbackCompliance)), "compliance", err)
		return err
	}
	d.store.Compliance.ResolvePage(seq, items, pageInfo(page))
	return nil
}

// LoadComplianceRecord fetches one compliance record.
func (d *Dispatcher) LoadComplianceRecord(ctx context.Context, recordID string) error {
	seq := d.store.ComplianceDetail.Begin()
	record, err := d.client.FetchComplianceRecord(ctx, recordID)
	if err != nil {
		d.fail(d.store.ComplianceDetail.Fail(seq, normalize(err, fallbackCompliance)), "compliance record", err)
		return err
	}
	d.store.ComplianceDetail.Resolve(seq, *record)
	return nil
}

func (d *Dispatcher) fail(applied bool, operation string, err error) {
	entry := d.log.WithField("op", operation)
	if !applied {
		entry.WithError(err).Debug("stale dispatch failure dropped")
		return
	}
	entry.WithError(err).Warn("fetch failed")
}

// normalize resolves whatever the client returned into the container's
// single failure shape, preferring the server message, then the transport
// error text, then the per-resource fallback. This happens exactly once,
// here at the fetch-operation boundary.
func normalize(err error, fallback string) resource.Failure {
	var apiErr *forgeline.APIError
	if errors.As(err, &apiErr) {
		return resource.NewFailure(apiErr.Message, apiErr.TraceID, fallback)
	}
	if err != nil {
		return resource.NewFailure(err.Error(), "", fallback)
	}
	return resource.NewFailure("", "", fallback)
}
