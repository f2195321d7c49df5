package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/forgetop/internal/forgeline"
)

// fakeAPI implements forgeline.API with per-method hooks. Unset hooks fail
// the call so tests only exercise the operations they configure.
type fakeAPI struct {
	fetchStatus     func(ctx context.Context) (*forgeline.SystemStatus, error)
	listBoms        func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.BomListItem, *forgeline.Pagination, error)
	fetchDetail     func(ctx context.Context, bomID string) (*forgeline.BomDetail, error)
	fetchReadiness  func(ctx context.Context, bomID string) (*forgeline.Readiness, error)
	listAllocations func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.Allocation, *forgeline.Pagination, error)
	allocateOrder   func(ctx context.Context, orderID string, req forgeline.AllocateRequest) (*forgeline.AllocateResult, error)
	listOrders      func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.Order, *forgeline.Pagination, error)
	confirm         func(ctx context.Context, orderID string, req forgeline.ConfirmRequest) (*forgeline.Order, error)
	listPricing     func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.PricingRecord, *forgeline.Pagination, error)
	listProducts    func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.Product, *forgeline.Pagination, error)
	listCompliance  func(ctx context.Context, query forgeline.ListQuery) ([]forgeline.ComplianceRecord, *forgeline.Pagination, error)
	fetchCompliance func(ctx context.Context, recordID string) (*forgeline.ComplianceRecord, error)
}

var errUnexpectedCall = errors.New("unexpected api call")

func (f *fakeAPI) FetchStatus(ctx context.Context) (*forgeline.SystemStatus, error) {
	if f.fetchStatus == nil {
		return nil, errUnexpectedCall
	}
	return f.fetchStatus(ctx)
}

func (f *fakeAPI) ListBoms(ctx context.Context, q forgeline.ListQuery) ([]forgeline.BomListItem, *forgeline.Pagination, error) {
	if f.listBoms == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listBoms(ctx, q)
}

func (f *fakeAPI) FetchBomDetail(ctx context.Context, bomID string) (*forgeline.BomDetail, error) {
	if f.fetchDetail == nil {
		return nil, errUnexpectedCall
	}
	return f.fetchDetail(ctx, bomID)
}

func (f *fakeAPI) FetchBomReadiness(ctx context.Context, bomID string) (*forgeline.Readiness, error) {
	if f.fetchReadiness == nil {
		return nil, errUnexpectedCall
	}
	return f.fetchReadiness(ctx, bomID)
}

func (f *fakeAPI) ListAllocations(ctx context.Context, q forgeline.ListQuery) ([]forgeline.Allocation, *forgeline.Pagination, error) {
	if f.listAllocations == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listAllocations(ctx, q)
}

func (f *fakeAPI) AllocateOrder(ctx context.Context, orderID string, req forgeline.AllocateRequest) (*forgeline.AllocateResult, error) {
	if f.allocateOrder == nil {
		return nil, errUnexpectedCall
	}
	return f.allocateOrder(ctx, orderID, req)
}

func (f *fakeAPI) ListOrders(ctx context.Context, q forgeline.ListQuery) ([]forgeline.Order, *forgeline.Pagination, error) {
	if f.listOrders == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listOrders(ctx, q)
}

func (f *fakeAPI) ConfirmFulfillment(ctx context.Context, orderID string, req forgeline.ConfirmRequest) (*forgeline.Order, error) {
	if f.confirm == nil {
		return nil, errUnexpectedCall
	}
	return f.confirm(ctx, orderID, req)
}

func (f *fakeAPI) ListPricing(ctx context.Context, q forgeline.ListQuery) ([]forgeline.PricingRecord, *forgeline.Pagination, error) {
	if f.listPricing == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listPricing(ctx, q)
}

func (f *fakeAPI) ListProducts(ctx context.Context, q forgeline.ListQuery) ([]forgeline.Product, *forgeline.Pagination, error) {
	if f.listProducts == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listProducts(ctx, q)
}

func (f *fakeAPI) ListComplianceRecords(ctx context.Context, q forgeline.ListQuery) ([]forgeline.ComplianceRecord, *forgeline.Pagination, error) {
	if f.listCompliance == nil {
		return nil, nil, errUnexpectedCall
	}
	return f.listCompliance(ctx, q)
}

func (f *fakeAPI) FetchComplianceRecord(ctx context.Context, recordID string) (*forgeline.ComplianceRecord, error) {
	if f.fetchCompliance == nil {
		return nil, errUnexpectedCall
	}
	return f.fetchCompliance(ctx, recordID)
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDispatcher(api forgeline.API) (*Dispatcher, *Store) {
	store := NewStore()
	return NewDispatcher(api, store, quietLogger()), store
}

func TestRefreshStatus_FillsContainer(t *testing.T) {
	api := &fakeAPI{
		fetchStatus: func(ctx context.Context) (*forgeline.SystemStatus, error) {
			return &forgeline.SystemStatus{Version: "2.0.1", OpenOrders: 4}, nil
		},
	}
	d, store := newTestDispatcher(api)

	require.NoError(t, d.RefreshStatus(context.Background()))

	snap := store.Status.Snapshot()
	assert.True(t, snap.HasData)
	assert.Equal(t, "2.0.1", snap.Data.Version)
	assert.Equal(t, 4, snap.Data.OpenOrders)
}

func TestLoadBoms_ResolvesPageFromResponse(t *testing.T) {
	api := &fakeAPI{
		listBoms: func(ctx context.Context, q forgeline.ListQuery) ([]forgeline.BomListItem, *forgeline.Pagination, error) {
			assert.Equal(t, 2, q.Page)
			return []forgeline.BomListItem{{ID: "b-1", BomNumber: "BOM-001"}},
				&forgeline.Pagination{Page: 2, Limit: 25, TotalRecords: 60, TotalPages: 3}, nil
		},
	}
	d, store := newTestDispatcher(api)

	require.NoError(t, d.LoadBoms(context.Background(), forgeline.ListQuery{Page: 2, Limit: 25}))

	snap := store.Boms.Snapshot()
	require.Len(t, snap.Data.Items, 1)
	assert.Equal(t, "BOM-001", snap.Data.Items[0].BomNumber)
	assert.Equal(t, 60, TotalRecords(snap))
	assert.True(t, HasMorePages(snap))
}

func TestLoadBoms_FailureKeepsPriorPage(t *testing.T) {
	healthy := true
	api := &fakeAPI{
		listBoms: func(ctx context.Context, q forgeline.ListQuery) ([]forgeline.BomListItem, *forgeline.Pagination, error) {
			if healthy {
				return []forgeline.BomListItem{{ID: "b-1"}}, &forgeline.Pagination{Page: 1, TotalPages: 1}, nil
			}
			return nil, nil, fmt.Errorf("connection refused")
		},
	}
	d, store := newTestDispatcher(api)

	require.NoError(t, d.LoadBoms(context.Background(), forgeline.ListQuery{Page: 1}))
	healthy = false
	require.Error(t, d.LoadBoms(context.Background(), forgeline.ListQuery{Page: 1}))

	snap := store.Boms.Snapshot()
	assert.True(t, snap.HasData, "last good page must survive a failed reload")
	require.Len(t, snap.Data.Items, 1)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, "connection refused", snap.Failure.Message)
}

func TestNormalize_MessagePrecedence(t *testing.T) {
	apiErr := &forgeline.APIError{Status: 422, Message: "Insufficient stock", TraceID: "trc-9"}
	failure := normalize(apiErr, fallbackAllocate)
	assert.Equal(t, "Insufficient stock", failure.Message)
	assert.Equal(t, "trc-9", failure.TraceID)

	failure = normalize(&forgeline.APIError{Status: 500}, fallbackAllocate)
	assert.Equal(t, fallbackAllocate, failure.Message, "blank server message falls to the resource fallback")

	failure = normalize(fmt.Errorf("dial tcp: timeout"), fallbackAllocate)
	assert.Equal(t, "dial tcp: timeout", failure.Message)

	failure = normalize(fmt.Errorf("wrapped: %w", apiErr), fallbackAllocate)
	assert.Equal(t, "Insufficient stock", failure.Message, "wrapped APIError must still unwrap")
}

func TestAllocate_SuccessReloadsListWithSavedQuery(t *testing.T) {
	var reloadQuery *forgeline.ListQuery
	api := &fakeAPI{
		listAllocations: func(ctx context.Context, q forgeline.ListQuery) ([]forgeline.Allocation, *forgeline.Pagination, error) {
			reloadQuery = &q
			return []forgeline.Allocation{{ID: "al-1", OrderID: "ord-5"}}, &forgeline.Pagination{Page: 2, TotalPages: 2}, nil
		},
		allocateOrder: func(ctx context.Context, orderID string, req forgeline.AllocateRequest) (*forgeline.AllocateResult, error) {
			return &forgeline.AllocateResult{OrderID: orderID, AllocationIDs: []string{"al-1"}}, nil
		},
	}
	d, store := newTestDispatcher(api)

	// Establish the on-screen query, then mutate.
	onScreen := forgeline.ListQuery{Page: 2, Limit: 10, Search: "ord"}
	require.NoError(t, d.LoadAllocations(context.Background(), onScreen))

	result, err := d.Allocate(context.Background(), "ord-5", forgeline.AllocateRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"al-1"}, result.AllocationIDs)

	require.NotNil(t, reloadQuery)
	assert.Equal(t, onScreen, *reloadQuery, "reload must reuse the query currently on screen")

	snap := store.Allocations.Snapshot()
	assert.True(t, snap.HasData)
	assert.Nil(t, snap.Failure)
	assert.False(t, snap.Loading)
}

func TestAllocate_FailureLandsInAllocationContainer(t *testing.T) {
	api := &fakeAPI{
		allocateOrder: func(ctx context.Context, orderID string, req forgeline.AllocateRequest) (*forgeline.AllocateResult, error) {
			return nil, &forgeline.APIError{Status: 422, Message: "Insufficient stock", TraceID: "trc-2"}
		},
	}
	d, store := newTestDispatcher(api)

	_, err := d.Allocate(context.Background(), "ord-5", forgeline.AllocateRequest{})
	require.Error(t, err)

	snap := store.Allocations.Snapshot()
	require.NotNil(t, snap.Failure)
	assert.Equal(t, "Insufficient stock", snap.Failure.Message)
	assert.Equal(t, "trc-2", snap.Failure.TraceID)
	assert.False(t, snap.Loading)
}

func TestConfirmFulfillment_SuccessReloadsOrders(t *testing.T) {
	listCalls := 0
	api := &fakeAPI{
		listOrders: func(ctx context.Context, q forgeline.ListQuery) ([]forgeline.Order, *forgeline.Pagination, error) {
			listCalls++
			return []forgeline.Order{{ID: "ord-1", FulfillmentStatus: "fulfilled"}}, &forgeline.Pagination{Page: 1, TotalPages: 1}, nil
		},
		confirm: func(ctx context.Context, orderID string, req forgeline.ConfirmRequest) (*forgeline.Order, error) {
			assert.Equal(t, "fulfilled", req.FulfillmentStatus)
			return &forgeline.Order{ID: orderID, FulfillmentStatus: "fulfilled"}, nil
		},
	}
	d, store := newTestDispatcher(api)

	require.NoError(t, d.LoadOrders(context.Background(), forgeline.ListQuery{Page: 1}))

	updated, err := d.ConfirmFulfillment(context.Background(), "ord-1", forgeline.ConfirmRequest{
		OrderStatus: "closed", ShipmentStatus: "shipped", FulfillmentStatus: "fulfilled",
	})
	require.NoError(t, err)
	assert.Equal(t, "fulfilled", updated.FulfillmentStatus)
	assert.Equal(t, 2, listCalls, "initial load plus post-confirm reload")

	snap := store.Orders.Snapshot()
	assert.Equal(t, "fulfilled", snap.Data.Items[0].FulfillmentStatus)
}

func TestLoadBomReadiness_DerivesViewFields(t *testing.T) {
	api := &fakeAPI{
		fetchReadiness: func(ctx context.Context, bomID string) (*forgeline.Readiness, error) {
			return &forgeline.Readiness{
				BomID:          bomID,
				Ready:          false,
				BuildableUnits: 3,
				Metadata: forgeline.ReadinessMetadata{
					BottleneckParts: []forgeline.BottleneckPart{
						{PartNumber: "P-200"},
						{PartNumber: "P-300"},
					},
					Warehouse: "WH-EAST",
				},
			}, nil
		},
	}
	d, store := newTestDispatcher(api)

	require.NoError(t, d.LoadBomReadiness(context.Background(), "b-7"))

	snap := store.Readiness.Snapshot()
	assert.Equal(t, 2, snap.Data.BottleneckCount)
	assert.False(t, snap.Data.IsReadyForProduction)
	assert.Equal(t, "WH-EAST", snap.Data.Warehouse)
}
