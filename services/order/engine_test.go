package order

import (
	"context"
	"testing"

	"campora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoProviderOrder() models.Order {
	return models.Order{
		ID:           "order-1",
		OrderGroupID: 12345678,
		CustomerID:   "cust-1",
		Items: []models.LineItem{
			{ServiceID: "svc-1", ServiceName: "Lakeside Pitch", ServicePrice: 40, Quantity: 2, ProviderID: "prov-1", Status: models.ItemPending},
			{ServiceID: "svc-2", ServiceName: "Canoe Rental", ServicePrice: 25, Quantity: 1, ProviderID: "prov-2", Status: models.ItemPending},
		},
		Status:     models.ItemPending,
		TotalPrice: 105,
	}
}

func newTestService(repo *fakeOrderRepo) *DefaultOrderService {
	return &DefaultOrderService{
		Repo:    repo,
		Ratings: newFakeRatingRepo(),
		Carts:   newFakeCartRepo(),
	}
}

// First provider confirms their item: only one of two items meets the
// threshold, so the order reflects the just-applied status.
func TestApplyStatusChangeSingleProviderConfirm(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)

	actor := models.Actor{ID: "prov-1", Role: models.RoleProvider}
	updated, err := svc.ApplyStatusChange(context.Background(), "order-1", actor, models.ItemConfirmed, "")
	require.NoError(t, err)

	assert.Equal(t, models.ItemConfirmed, updated.Items[0].Status)
	assert.Equal(t, models.ItemPending, updated.Items[1].Status)
	assert.Equal(t, models.ItemConfirmed, updated.Status)

	stored := repo.get("order-1")
	assert.Equal(t, updated.Items, stored.Items)
	assert.Equal(t, models.ItemConfirmed, stored.Status)
}

// Second provider confirms too: now the confirmed threshold holds.
func TestApplyStatusChangeBothProvidersConfirm(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)

	ctx := context.Background()
	_, err := svc.ApplyStatusChange(ctx, "order-1", models.Actor{ID: "prov-1", Role: models.RoleProvider}, models.ItemConfirmed, "")
	require.NoError(t, err)
	updated, err := svc.ApplyStatusChange(ctx, "order-1", models.Actor{ID: "prov-2", Role: models.RoleProvider}, models.ItemConfirmed, "")
	require.NoError(t, err)

	assert.Equal(t, models.ItemConfirmed, updated.Items[0].Status)
	assert.Equal(t, models.ItemConfirmed, updated.Items[1].Status)
	assert.Equal(t, models.ItemConfirmed, updated.Status)
}

// Progression to ready: the intermediate [ready, confirmed] state misses
// the ready threshold and reflects the write that just landed; once both
// providers are ready the threshold takes over.
func TestApplyStatusChangeReadyProgression(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)

	ctx := context.Background()
	p1 := models.Actor{ID: "prov-1", Role: models.RoleProvider}
	p2 := models.Actor{ID: "prov-2", Role: models.RoleProvider}

	_, err := svc.ApplyStatusChange(ctx, "order-1", p1, models.ItemConfirmed, "")
	require.NoError(t, err)
	_, err = svc.ApplyStatusChange(ctx, "order-1", p2, models.ItemConfirmed, "")
	require.NoError(t, err)

	intermediate, err := svc.ApplyStatusChange(ctx, "order-1", p1, models.ItemReady, "")
	require.NoError(t, err)
	assert.Equal(t, models.ItemReady, intermediate.Items[0].Status)
	assert.Equal(t, models.ItemConfirmed, intermediate.Items[1].Status)
	assert.Equal(t, models.ItemReady, intermediate.Status)

	final, err := svc.ApplyStatusChange(ctx, "order-1", p2, models.ItemReady, "")
	require.NoError(t, err)
	assert.Equal(t, models.ItemReady, final.Status)
}

// Admin cancellation sweeps every item and persists the reason.
func TestApplyStatusChangeAdminCancel(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := twoProviderOrder()
	ord.Items[0].Status = models.ItemConfirmed
	repo.put(ord)
	svc := newTestService(repo)

	admin := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	updated, err := svc.ApplyStatusChange(context.Background(), "order-1", admin, models.ItemCancelled, "out of stock")
	require.NoError(t, err)

	for _, item := range updated.Items {
		assert.Equal(t, models.ItemCancelled, item.Status)
	}
	assert.Equal(t, models.ItemCancelled, updated.Status)
	assert.Equal(t, "out of stock", updated.CancellationReason)

	stored := repo.get("order-1")
	assert.Equal(t, "out of stock", stored.CancellationReason)
}

// A provider never mutates foreign items, and item identity is preserved
// across mutations.
func TestApplyStatusChangeAuthorizationScoping(t *testing.T) {
	repo := newFakeOrderRepo()
	original := twoProviderOrder()
	repo.put(original)
	svc := newTestService(repo)

	actor := models.Actor{ID: "prov-2", Role: models.RoleProvider}
	updated, err := svc.ApplyStatusChange(context.Background(), "order-1", actor, models.ItemReady, "")
	require.NoError(t, err)

	assert.Equal(t, models.ItemPending, updated.Items[0].Status, "foreign item must not change")
	assert.Equal(t, models.ItemReady, updated.Items[1].Status)

	for i, item := range updated.Items {
		assert.Equal(t, original.Items[i].ServiceID, item.ServiceID)
		assert.Equal(t, original.Items[i].ServicePrice, item.ServicePrice)
		assert.Equal(t, original.Items[i].Quantity, item.Quantity)
		assert.Equal(t, original.Items[i].ProviderID, item.ProviderID)
	}
	assert.Len(t, updated.Items, len(original.Items))
}

// Touching only foreign items is a silent no-op on those items, not an
// error: the operation still succeeds and re-derives from the full set.
func TestApplyStatusChangeForeignOnlyIsNoop(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := twoProviderOrder()
	ord.Items = ord.Items[:1] // only prov-1's item
	repo.put(ord)
	svc := newTestService(repo)

	actor := models.Actor{ID: "prov-2", Role: models.RoleProvider}
	updated, err := svc.ApplyStatusChange(context.Background(), "order-1", actor, models.ItemConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, models.ItemPending, updated.Items[0].Status)
}

// Reapplying the same status is observationally idempotent.
func TestApplyStatusChangeIdempotent(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)

	ctx := context.Background()
	actor := models.Actor{ID: "prov-1", Role: models.RoleProvider}

	first, err := svc.ApplyStatusChange(ctx, "order-1", actor, models.ItemConfirmed, "")
	require.NoError(t, err)
	second, err := svc.ApplyStatusChange(ctx, "order-1", actor, models.ItemConfirmed, "")
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Status, second.Status)
}

// The reason is persisted whenever supplied, even outside cancellation.
func TestApplyStatusChangeReasonPersistedUnconditionally(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)

	actor := models.Actor{ID: "prov-1", Role: models.RoleProvider}
	updated, err := svc.ApplyStatusChange(context.Background(), "order-1", actor, models.ItemConfirmed, "customer called ahead")
	require.NoError(t, err)
	assert.Equal(t, "customer called ahead", updated.CancellationReason)
}

func TestApplyStatusChangeErrors(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(twoProviderOrder())
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.ApplyStatusChange(ctx, "missing", models.Actor{ID: "prov-1", Role: models.RoleProvider}, models.ItemConfirmed, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.ApplyStatusChange(ctx, "order-1", models.Actor{ID: "cust-1", Role: models.RoleCustomer}, models.ItemConfirmed, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ApplyStatusChange(ctx, "order-1", models.Actor{ID: "prov-1", Role: models.RoleProvider}, "shipped", "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	// A failed write leaves the stored document untouched.
	repo.writeErr = assert.AnError
	_, err = svc.ApplyStatusChange(ctx, "order-1", models.Actor{ID: "prov-1", Role: models.RoleProvider}, models.ItemReady, "")
	require.Error(t, err)
	stored := repo.get("order-1")
	assert.Equal(t, models.ItemPending, stored.Items[0].Status)
}
