package authz

import (
	"errors"
	"testing"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

func TestIsManager(t *testing.T) {
	tests := []struct {
		name  string
		roles model.Roles
		want  bool
	}{
		{
			name:  "group plus staff plus superuser",
			roles: model.Roles{Active: true, Manager: true, Staff: true, Superuser: true},
			want:  true,
		},
		{
			name:  "group without staff",
			roles: model.Roles{Active: true, Manager: true, Superuser: true},
			want:  false,
		},
		{
			name:  "group without superuser",
			roles: model.Roles{Active: true, Manager: true, Staff: true},
			want:  false,
		},
		{
			name:  "staff and superuser without group",
			roles: model.Roles{Active: true, Staff: true, Superuser: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsManager(tt.roles); got != tt.want {
				t.Errorf("IsManager() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	manager := model.Roles{Active: true, Manager: true, Staff: true, Superuser: true}
	customer := model.Roles{Active: true, Customer: true}
	delivery := model.Roles{Active: true, Delivery: true}

	tests := []struct {
		name    string
		roles   model.Roles
		action  Action
		allowed bool
	}{
		{"anyone active reads catalog", customer, ActionCatalogRead, true},
		{"delivery reads catalog", delivery, ActionCatalogRead, true},
		{"manager manages catalog", manager, ActionCatalogManage, true},
		{"customer cannot manage catalog", customer, ActionCatalogManage, false},
		{"delivery cannot manage catalog", delivery, ActionCatalogManage, false},
		{"manager manages groups", manager, ActionGroupManage, true},
		{"customer cannot manage groups", customer, ActionGroupManage, false},
		{"manager reassigns delivery", manager, ActionReassignDelivery, true},
		{"delivery cannot reassign delivery", delivery, ActionReassignDelivery, false},
		{"manager views reports", manager, ActionViewReports, true},
		{"customer cannot view reports", customer, ActionViewReports, false},
		{"manager views all carts", manager, ActionViewAllCarts, true},
		{"customer cannot view all carts", customer, ActionViewAllCarts, false},
		{"customer uses cart", customer, ActionCartUse, true},
		{"delivery cannot use cart", delivery, ActionCartUse, false},
		{"customer checks out", customer, ActionCheckout, true},
		{"manager without customer group cannot check out", manager, ActionCheckout, false},
		{"customer rates", customer, ActionRate, true},
		{"delivery cannot rate", delivery, ActionRate, false},
		{"delivery marks delivered", delivery, ActionMarkDelivered, true},
		{"customer cannot mark delivered", customer, ActionMarkDelivered, false},
		{"delivery toggles readiness", delivery, ActionToggleReady, true},
		{"customer cannot toggle readiness", customer, ActionToggleReady, false},
		{
			"inactive manager is denied everything",
			model.Roles{Manager: true, Staff: true, Superuser: true},
			ActionCatalogRead,
			false,
		},
		{
			"inactive customer cannot use cart",
			model.Roles{Customer: true},
			ActionCartUse,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.roles, tt.action)
			if tt.allowed && err != nil {
				t.Errorf("Authorize() = %v, want nil", err)
			}
			if !tt.allowed && !errors.Is(err, ErrForbidden) {
				t.Errorf("Authorize() = %v, want ErrForbidden", err)
			}
		})
	}
}
