package order

import (
	"testing"

	"campora/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateItem(t *testing.T) {
	item := models.LineItem{ServiceID: "svc-1", ProviderID: "prov-1"}

	assert.True(t, CanMutateItem(models.Actor{ID: "admin-1", Role: models.RoleAdmin}, item))
	assert.True(t, CanMutateItem(models.Actor{ID: "prov-1", Role: models.RoleProvider}, item))
	assert.False(t, CanMutateItem(models.Actor{ID: "prov-2", Role: models.RoleProvider}, item))
	assert.False(t, CanMutateItem(models.Actor{ID: "cust-1", Role: models.RoleCustomer}, item))
	assert.False(t, CanMutateItem(models.Actor{ID: "prov-1", Role: models.RoleCustomer}, item))
}

func TestCanChangeStatus(t *testing.T) {
	assert.True(t, CanChangeStatus(models.Actor{Role: models.RoleAdmin}))
	assert.True(t, CanChangeStatus(models.Actor{Role: models.RoleProvider}))
	assert.False(t, CanChangeStatus(models.Actor{Role: models.RoleCustomer}))
}
